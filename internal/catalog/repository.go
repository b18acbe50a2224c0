package catalog

import (
	"context"

	"github.com/shopmint/shopmint/internal/domain"
)

// Repository defines the interface for product data operations.
// The repository owns id assignment and timestamps.
type Repository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) (*domain.Product, error)
}
