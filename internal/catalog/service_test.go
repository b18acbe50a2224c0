package catalog

import (
	"context"
	"testing"

	"github.com/shopmint/shopmint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	products map[string]*domain.Product
	nextID   string
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		products: make(map[string]*domain.Product),
		nextID:   "test-product-id",
	}
}

func (m *mockRepository) ListProducts(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepository) GetProductByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := m.products[id]; ok {
		found := *p
		return &found, nil
	}
	return nil, ErrProductNotFound
}

func (m *mockRepository) CreateProduct(_ context.Context, product *domain.Product) error {
	product.ID = m.nextID
	m.products[product.ID] = product
	return nil
}

func (m *mockRepository) UpdateProduct(_ context.Context, product *domain.Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockRepository) DeleteProduct(_ context.Context, id string) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	delete(m.products, id)
	return p, nil
}

func TestCreateProduct_TrimsFields(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	in := validProductInput()
	in.Name = "  Keyboard  "
	in.ShopName = " Peripherals Inc "

	product, err := service.CreateProduct(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Keyboard", product.Name)
	assert.Equal(t, "Peripherals Inc", product.ShopName)
	assert.Equal(t, "test-product-id", product.ID)
}

func TestCreateProduct_InvalidPayloadSkipsStore(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	in := validProductInput()
	in.Images = []string{}

	product, err := service.CreateProduct(context.Background(), in)

	assert.Nil(t, product)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, repo.products)
}

func TestUpdateProduct_MergesPartialPayload(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	created, err := service.CreateProduct(context.Background(), validProductInput())
	require.NoError(t, err)

	updated, err := service.UpdateProduct(context.Background(), created.ID, &UpdateProductInput{
		Price:    ptr(59.90),
		Quantity: ptr(3.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 59.90, updated.Price)
	assert.Equal(t, 3.0, updated.Quantity)
	assert.Equal(t, created.Name, updated.Name, "absent fields keep stored values")
	assert.Equal(t, created.Images, updated.Images)
}

func TestUpdateProduct_RejectsInvalidMerge(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	created, err := service.CreateProduct(context.Background(), validProductInput())
	require.NoError(t, err)

	_, err = service.UpdateProduct(context.Background(), created.ID, &UpdateProductInput{
		Price: ptr(0.0),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Price must be greater than 0", vErr.Message)

	stored, err := service.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Price, stored.Price, "rejected update must not change the store")
}

func TestUpdateProduct_NotFound(t *testing.T) {
	service := NewService(newMockRepository())

	_, err := service.UpdateProduct(context.Background(), "missing", &UpdateProductInput{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct_ReturnsDeletedRecord(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	created, err := service.CreateProduct(context.Background(), validProductInput())
	require.NoError(t, err)

	deleted, err := service.DeleteProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = service.GetProduct(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCountProducts(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	count, err := service.CountProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = service.CreateProduct(context.Background(), validProductInput())
	require.NoError(t, err)

	count, err = service.CountProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
