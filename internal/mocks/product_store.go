package mocks

import (
	"context"

	"github.com/google/uuid"

	"catalogapi/internal/domain"
	"catalogapi/internal/store"
)

// MockProductStore implements store.ProductStore for testing.
// Each method delegates to the corresponding function field when set;
// otherwise it returns the zero value. Call counters let tests assert
// that the store was (or was not) reached.
type MockProductStore struct {
	ListPageFn   func(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindByNameFn func(ctx context.Context, term string) ([]*domain.Product, error)
	CreateFn     func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateFn     func(ctx context.Context, id uuid.UUID, product *domain.Product) (*domain.Product, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	ListPageCalls   int
	GetByIDCalls    int
	FindByNameCalls int
	CreateCalls     int
	UpdateCalls     int
	DeleteCalls     int
}

// Ensure MockProductStore implements store.ProductStore interface
var _ store.ProductStore = (*MockProductStore)(nil)

// ListPage implements the store.ProductStore interface
func (m *MockProductStore) ListPage(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Product, error) {
	m.ListPageCalls++
	if m.ListPageFn != nil {
		return m.ListPageFn(ctx, offset, limit)
	}
	return nil, nil
}

// GetByID implements the store.ProductStore interface
func (m *MockProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.GetByIDCalls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrProductNotFound
}

// FindByName implements the store.ProductStore interface
func (m *MockProductStore) FindByName(
	ctx context.Context,
	term string,
) ([]*domain.Product, error) {
	m.FindByNameCalls++
	if m.FindByNameFn != nil {
		return m.FindByNameFn(ctx, term)
	}
	return nil, nil
}

// Create implements the store.ProductStore interface
func (m *MockProductStore) Create(
	ctx context.Context,
	product *domain.Product,
) (*domain.Product, error) {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	return product, nil
}

// Update implements the store.ProductStore interface
func (m *MockProductStore) Update(
	ctx context.Context,
	id uuid.UUID,
	product *domain.Product,
) (*domain.Product, error) {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, product)
	}
	return nil, store.ErrProductNotFound
}

// Delete implements the store.ProductStore interface
func (m *MockProductStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil, store.ErrProductNotFound
}
