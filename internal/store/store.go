// Package store holds the repository interface the handlers depend on and
// its gorm-backed implementation. Handlers never touch *gorm.DB directly so
// the storage backend can be swapped without touching route logic.
package store

import (
	"context"
	"errors"

	"github.com/secureshop/backend/internal/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSessionExpired    = errors.New("session expired")
)

type Stats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalProducts int64 `json:"totalProducts"`
	TotalOrders   int64 `json:"totalOrders"`
}

type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, id int) (*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id int) error

	CreateReview(ctx context.Context, review *models.Review) error
	ReviewsByProduct(ctx context.Context, productID int) ([]models.Review, error)

	// Checkout decrements stock and appends the order in a single
	// transaction. It fails with ErrNotFound when the product does not
	// exist and ErrInsufficientStock when the requested quantity exceeds
	// the remaining stock, in which case nothing is mutated.
	Checkout(ctx context.Context, userID uint, productID, quantity int) (*models.Order, error)

	CountStats(ctx context.Context) (*Stats, error)

	CreateSession(ctx context.Context, session *models.Session) error
	FindSession(ctx context.Context, token string) (*models.Session, error)
	RevokeSession(ctx context.Context, token string) error
}
