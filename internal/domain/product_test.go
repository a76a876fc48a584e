package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Parallel()

	categoryID := uuid.New()
	ownerID := uuid.New()

	tests := []struct {
		name        string
		productName string
		categoryID  uuid.UUID
		ownerID     uuid.UUID
		price       float64
		wantErr     error
	}{
		{
			name:        "valid product",
			productName: "Pen",
			categoryID:  categoryID,
			ownerID:     ownerID,
			price:       2.50,
			wantErr:     nil,
		},
		{
			name:        "empty name",
			productName: "",
			categoryID:  categoryID,
			ownerID:     ownerID,
			price:       2.50,
			wantErr:     ErrEmptyProductName,
		},
		{
			name:        "missing category",
			productName: "Pen",
			categoryID:  uuid.Nil,
			ownerID:     ownerID,
			price:       2.50,
			wantErr:     ErrEmptyCategoryID,
		},
		{
			name:        "missing owner",
			productName: "Pen",
			categoryID:  categoryID,
			ownerID:     uuid.Nil,
			price:       2.50,
			wantErr:     ErrEmptyOwnerID,
		},
		{
			name:        "negative price",
			productName: "Pen",
			categoryID:  categoryID,
			ownerID:     ownerID,
			price:       -1,
			wantErr:     ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product, err := NewProduct(tt.productName, tt.categoryID, tt.ownerID, tt.price, "", true)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, product)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, product.ID)
			assert.Equal(t, tt.ownerID, product.UserID)
			assert.Equal(t, tt.categoryID, product.CategoryID)
			assert.False(t, product.CreatedAt.IsZero())
			assert.Equal(t, product.CreatedAt, product.UpdatedAt)
		})
	}
}

func TestProductValidate_ZeroPriceIsValid(t *testing.T) {
	t.Parallel()

	product, err := NewProduct("Freebie", uuid.New(), uuid.New(), 0, "giveaway", true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Price)
}
