package store

import (
	"gorm.io/gorm"

	"github.com/secureshop/backend/internal/hash"
	"github.com/secureshop/backend/internal/models"
)

// Seed inserts the fixture users and products on an empty database. The
// admin password comes from configuration so no credential lives in the
// source tree.
func Seed(db *gorm.DB, adminPassword string) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		adminHash, err := hash.HashPassword(adminPassword)
		if err != nil {
			return err
		}
		customerHash, err := hash.HashPassword("user123")
		if err != nil {
			return err
		}
		users := []models.User{
			{Username: "admin", PasswordHash: adminHash, Email: "admin@ecommerce.com", Role: models.RoleAdmin},
			{Username: "user", PasswordHash: customerHash, Email: "user@example.com", Role: models.RoleCustomer},
		}
		if err := db.Create(&users).Error; err != nil {
			return err
		}
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		products := []models.Product{
			{Name: "Laptop HP", Price: 799, Stock: 10, Category: "electronics"},
			{Name: "iPhone 14", Price: 999, Stock: 15, Category: "electronics"},
			{Name: "T-Shirt Nike", Price: 29, Stock: 50, Category: "clothing"},
			{Name: "Chaussures Adidas", Price: 89, Stock: 30, Category: "clothing"},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
	}

	return nil
}
