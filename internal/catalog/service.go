// Package catalog provides HTTP handlers and business logic for the
// product catalog.
package catalog

import (
	"context"
	"strings"

	"github.com/shopmint/shopmint/internal/domain"
)

// UpdateProductInput represents a partial product update. Nil fields keep
// the stored value.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Color       *string  `json:"color"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
	ShopName    *string  `json:"shopName"`
	Brand       *string  `json:"brand"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Images      []string `json:"images"`
}

// Service implements catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListProducts returns all products.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

// GetProduct returns the product with the given id.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

// CountProducts returns the number of products in the store.
func (s *Service) CountProducts(ctx context.Context) (int, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

// CreateProduct validates the payload and stores a new product. String
// fields are trimmed before storage.
func (s *Service) CreateProduct(ctx context.Context, in *ProductInput) (*domain.Product, error) {
	if err := ValidateProduct(in); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Color:       strings.TrimSpace(in.Color),
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		ShopName:    strings.TrimSpace(in.ShopName),
		Brand:       strings.TrimSpace(in.Brand),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Images:      in.Images,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct merges the partial payload over the stored record,
// validates the merged result and stores it.
func (s *Service) UpdateProduct(ctx context.Context, id string, in *UpdateProductInput) (*domain.Product, error) {
	existing, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Color != nil {
		merged.Color = *in.Color
	}
	if in.Price != nil {
		merged.Price = *in.Price
	}
	if in.Quantity != nil {
		merged.Quantity = *in.Quantity
	}
	if in.ShopName != nil {
		merged.ShopName = *in.ShopName
	}
	if in.Brand != nil {
		merged.Brand = *in.Brand
	}
	if in.Description != nil {
		merged.Description = *in.Description
	}
	if in.Category != nil {
		merged.Category = *in.Category
	}
	if in.Images != nil {
		merged.Images = in.Images
	}

	candidate := &ProductInput{
		Name:        merged.Name,
		Color:       merged.Color,
		Price:       &merged.Price,
		Quantity:    &merged.Quantity,
		ShopName:    merged.ShopName,
		Brand:       merged.Brand,
		Description: merged.Description,
		Category:    merged.Category,
		Images:      merged.Images,
	}
	if err := ValidateProduct(candidate); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// DeleteProduct removes the product and returns the deleted record.
func (s *Service) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.DeleteProduct(ctx, id)
}
