package models

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Username     string `gorm:"unique;not null"           json:"username"`
	PasswordHash string `gorm:"not null"                  json:"-"`
	Email        string `gorm:"not null"                  json:"email"`
	Role         string `gorm:"not null;default:customer" json:"role"`
}

type Product struct {
	ID       int     `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name     string  `gorm:"not null"                  json:"name"`
	Price    float64 `gorm:"not null"                  json:"price"`
	Stock    int     `gorm:"not null;check:stock >= 0" json:"stock"`
	Category string  `gorm:"index"                     json:"category"`
}

type Order struct {
	ID        uint      `gorm:"primaryKey"                  json:"id"`
	UserID    uint      `gorm:"index;not null"              json:"userId"`
	ProductID int       `gorm:"not null"                    json:"productId"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	Total     float64   `gorm:"not null"                    json:"total"`
	Date      time.Time `gorm:"not null"                    json:"date"`
}

// Review IDs come from the creation timestamp (UnixMilli), not a database
// sequence.
type Review struct {
	ID        int64     `gorm:"primaryKey"     json:"id"`
	ProductID int       `gorm:"index;not null" json:"productId"`
	UserID    uint      `gorm:"not null"       json:"userId"`
	Rating    int       `gorm:"not null"       json:"rating"`
	Comment   string    `gorm:"size:500"       json:"comment"`
	Date      time.Time `gorm:"not null"       json:"date"`
}

type Session struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"unique;not null" json:"-"`
	UserID    uint   `gorm:"index;not null"  json:"userId"`
	Username  string `gorm:"not null"        json:"username"`
	Role      string `gorm:"not null"        json:"role"`
	ExpiresAt int64  `gorm:"not null"        json:"expiresAt"`
	Revoked   bool   `gorm:"default:false"   json:"-"`
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

func (s *Session) Principal() Principal {
	return Principal{ID: s.UserID, Username: s.Username, Role: s.Role}
}
