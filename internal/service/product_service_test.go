package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogapi/internal/domain"
	"catalogapi/internal/mocks"
	"catalogapi/internal/service"
	"catalogapi/internal/store"
)

func newTestService(productStore store.ProductStore) service.ProductService {
	return service.NewProductService(productStore, slog.Default())
}

func TestProductService_List_PaginationDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		offset     int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{
			name:       "omitted values fall back to defaults",
			offset:     0,
			limit:      0,
			wantOffset: 0,
			wantLimit:  5,
		},
		{
			name:       "explicit values pass through",
			offset:     10,
			limit:      20,
			wantOffset: 10,
			wantLimit:  20,
		},
		{
			name:       "negative offset normalized",
			offset:     -3,
			limit:      20,
			wantOffset: 0,
			wantLimit:  20,
		},
		{
			name:       "limit capped",
			offset:     0,
			limit:      5000,
			wantOffset: 0,
			wantLimit:  100,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotOffset, gotLimit int
			productStore := &mocks.MockProductStore{
				ListPageFn: func(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
					gotOffset, gotLimit = offset, limit
					return []*domain.Product{}, nil
				},
			}

			svc := newTestService(productStore)

			_, err := svc.List(context.Background(), tt.offset, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, gotOffset)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestProductService_Create_SetsOwnerFromIdentity(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	categoryID := uuid.New()

	var created *domain.Product
	productStore := &mocks.MockProductStore{
		CreateFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			created = product
			return product, nil
		},
	}

	svc := newTestService(productStore)

	product, err := svc.Create(context.Background(), ownerID, service.ProductParams{
		Name:       "Pen",
		CategoryID: categoryID,
		Price:      2.50,
		Available:  true,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, ownerID, created.UserID)
	assert.Equal(t, ownerID, product.UserID)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestProductService_Create_InvalidInputNeverReachesStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  service.ProductParams
		wantErr error
	}{
		{
			name: "missing name",
			params: service.ProductParams{
				CategoryID: uuid.New(),
				Price:      1,
			},
			wantErr: domain.ErrEmptyProductName,
		},
		{
			name: "missing category",
			params: service.ProductParams{
				Name:  "Pen",
				Price: 1,
			},
			wantErr: domain.ErrEmptyCategoryID,
		},
		{
			name: "negative price",
			params: service.ProductParams{
				Name:       "Pen",
				CategoryID: uuid.New(),
				Price:      -1,
			},
			wantErr: domain.ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			productStore := &mocks.MockProductStore{}
			svc := newTestService(productStore)

			_, err := svc.Create(context.Background(), uuid.New(), tt.params)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, productStore.CreateCalls, "store must not be reached on invalid input")
		})
	}
}

func TestProductService_Update_ValidatesBeforeStore(t *testing.T) {
	t.Parallel()

	productStore := &mocks.MockProductStore{}
	svc := newTestService(productStore)

	_, err := svc.Update(context.Background(), uuid.New(), service.ProductParams{
		CategoryID: uuid.New(),
		Price:      1,
	})

	assert.ErrorIs(t, err, domain.ErrEmptyProductName)
	assert.Zero(t, productStore.UpdateCalls)
}

func TestProductService_Update_PassesReplacementThrough(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	categoryID := uuid.New()

	var gotID uuid.UUID
	var gotProduct *domain.Product
	productStore := &mocks.MockProductStore{
		UpdateFn: func(ctx context.Context, updateID uuid.UUID, product *domain.Product) (*domain.Product, error) {
			gotID = updateID
			gotProduct = product
			return product, nil
		},
	}

	svc := newTestService(productStore)

	_, err := svc.Update(context.Background(), id, service.ProductParams{
		Name:       "Pen Deluxe",
		CategoryID: categoryID,
		Price:      3.75,
		Available:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "Pen Deluxe", gotProduct.Name)
	assert.Equal(t, uuid.Nil, gotProduct.UserID, "owner must never come from update input")
}

func TestProductService_Get_PropagatesNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mocks.MockProductStore{})

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_Search_EmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	productStore := &mocks.MockProductStore{
		FindByNameFn: func(ctx context.Context, term string) ([]*domain.Product, error) {
			return []*domain.Product{}, nil
		},
	}
	svc := newTestService(productStore)

	products, err := svc.Search(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_Delete_ReturnsRemovedRecord(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	removed := &domain.Product{ID: id, Name: "Pen"}
	productStore := &mocks.MockProductStore{
		DeleteFn: func(ctx context.Context, deleteID uuid.UUID) (*domain.Product, error) {
			assert.Equal(t, id, deleteID)
			return removed, nil
		},
	}

	svc := newTestService(productStore)

	product, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, removed, product)
}
