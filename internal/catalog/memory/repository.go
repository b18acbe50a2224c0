// Package memory provides an in-memory product repository. Records live
// for the process lifetime and are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopmint/shopmint/internal/catalog"
	"github.com/shopmint/shopmint/internal/domain"
)

// Repository is an in-memory implementation of catalog.Repository.
// Insertion order is preserved for listing.
type Repository struct {
	mu       sync.RWMutex
	products []*domain.Product
}

// NewRepository creates an in-memory product repository, optionally
// pre-populated with seed records. Seed records without an id get one
// assigned.
func NewRepository(seed ...*domain.Product) *Repository {
	r := &Repository{
		products: make([]*domain.Product, 0, len(seed)),
	}
	for _, p := range seed {
		stored := *p
		if stored.ID == "" {
			stored.ID = uuid.NewString()
		}
		r.products = append(r.products, &stored)
	}
	return r
}

// SampleProducts returns the demo catalog the store is seeded with.
func SampleProducts() []*domain.Product {
	created := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	return []*domain.Product{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro",
			Color:       "Space Black",
			Price:       999,
			Quantity:    10,
			ShopName:    "Apple Store",
			Brand:       "Apple",
			Description: "Latest iPhone with advanced features and titanium design",
			Category:    "Electronics",
			Images: []string{
				"https://via.placeholder.com/300x300",
				"https://via.placeholder.com/300x300",
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:          "2",
			Name:        "Samsung Galaxy S24",
			Color:       "Titanium Gray",
			Price:       899,
			Quantity:    15,
			ShopName:    "Samsung Store",
			Brand:       "Samsung",
			Description: "Premium Android smartphone with AI features",
			Category:    "Electronics",
			Images: []string{
				"https://via.placeholder.com/300x300",
				"https://via.placeholder.com/300x300",
			},
			CreatedAt: created.AddDate(0, 0, 5),
			UpdatedAt: created.AddDate(0, 0, 5),
		},
		{
			ID:          "3",
			Name:        "MacBook Air M2",
			Color:       "Space Gray",
			Price:       1199,
			Quantity:    8,
			ShopName:    "Apple Store",
			Brand:       "Apple",
			Description: "Lightweight and powerful laptop with M2 chip",
			Category:    "Electronics",
			Images: []string{
				"https://via.placeholder.com/300x300",
				"https://via.placeholder.com/300x300",
			},
			CreatedAt: created.AddDate(0, 0, 10),
			UpdatedAt: created.AddDate(0, 0, 10),
		},
	}
}

// ListProducts returns all products in insertion order.
func (r *Repository) ListProducts(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		found := *p
		out = append(out, &found)
	}
	return out, nil
}

// GetProductByID returns the product with the given id, or
// ErrProductNotFound.
func (r *Repository) GetProductByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

// CreateProduct appends a new product. The repository owns id assignment
// and timestamps.
func (r *Repository) CreateProduct(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := *product
	r.products = append(r.products, &stored)

	return nil
}

// UpdateProduct replaces the stored record and refreshes its UpdatedAt.
func (r *Repository) UpdateProduct(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			product.UpdatedAt = time.Now()
			stored := *product
			r.products[i] = &stored
			return nil
		}
	}
	return catalog.ErrProductNotFound
}

// DeleteProduct removes the product and returns the deleted record.
func (r *Repository) DeleteProduct(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			deleted := *p
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}
