package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/secureshop/backend/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) FindProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	pattern := "%" + strings.ToLower(query) + "%"
	err := s.db.WithContext(ctx).
		Where("lower(name) LIKE ?", pattern).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *GormStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

func (s *GormStore) DeleteProduct(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}

func (s *GormStore) CreateReview(ctx context.Context, review *models.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

func (s *GormStore) ReviewsByProduct(ctx context.Context, productID int) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStore) Checkout(ctx context.Context, userID uint, productID, quantity int) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Conditional decrement: the stock check and the mutation are one
		// statement, so parallel checkouts can never drive stock negative.
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", productID, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		order = models.Order{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			Total:     product.Price * float64(quantity),
			Date:      time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) CountStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *GormStore) CreateSession(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *GormStore) FindSession(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if session.Revoked {
		return nil, ErrNotFound
	}
	if time.Now().Unix() > session.ExpiresAt {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (s *GormStore) RevokeSession(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}
