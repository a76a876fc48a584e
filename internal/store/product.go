package store

import (
	"context"

	"github.com/google/uuid"

	"catalogapi/internal/domain"
)

// ProductStore defines the interface for product data persistence.
// All read operations return products with their user and category
// references expanded (User as a {name, email} summary, Category in full).
type ProductStore interface {
	// ListPage retrieves a page of products ordered by name ascending.
	// Offset must be non-negative and limit positive; callers are expected
	// to apply pagination defaults before calling.
	ListPage(ctx context.Context, offset, limit int) ([]*domain.Product, error)

	// GetByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// FindByName retrieves all products whose name contains the given term,
	// matched case-insensitively. The term is treated as a literal substring,
	// not a pattern. An empty result is a valid, non-error outcome.
	FindByName(ctx context.Context, term string) ([]*domain.Product, error)

	// Create saves a new product to the store. The product must already
	// carry its owner ID and pass domain validation.
	// Returns ErrInvalidEntity if a referenced category or user does not
	// exist, ErrDuplicate on unique constraint violations.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// Update performs a full replacement of the product's mutable fields
	// (name, category, price, description, availability). The owner is
	// never changed. Returns the updated product with references expanded,
	// or ErrProductNotFound if no product with that ID exists.
	Update(ctx context.Context, id uuid.UUID, product *domain.Product) (*domain.Product, error)

	// Delete removes a product from the store by its ID and returns the
	// removed record. Returns ErrProductNotFound if the product does not
	// exist. This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}
