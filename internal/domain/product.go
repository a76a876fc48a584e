package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common product validation errors
var (
	ErrEmptyProductID   = errors.New("product ID cannot be empty")
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrEmptyCategoryID  = errors.New("category ID cannot be empty")
	ErrEmptyOwnerID     = errors.New("owner ID cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// UserSummary is the projection of a product's owner embedded in read
// responses. Only name and email are exposed; the full user record stays
// with the user resource.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Category represents a product category. Category management is owned by a
// separate resource; this type exists so reads can expand the reference.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product represents a catalog product owned by the user that created it.
// User and Category are populated on reads by expanding the stored
// references; they are nil on a product that has not been loaded from the
// store.
type Product struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	CategoryID  uuid.UUID    `json:"category_id"`
	UserID      uuid.UUID    `json:"user_id"`
	Price       float64      `json:"price"`
	Description string       `json:"description,omitempty"`
	Available   bool         `json:"available"`
	User        *UserSummary `json:"user,omitempty"`
	Category    *Category    `json:"category,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewProduct creates a new Product owned by ownerID.
// It generates a new UUID for the product ID and sets the creation/update
// timestamps. The owner comes from the verified identity of the caller and
// is never taken from client input. Returns an error if validation fails.
func NewProduct(
	name string,
	categoryID uuid.UUID,
	ownerID uuid.UUID,
	price float64,
	description string,
	available bool,
) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		ID:          uuid.New(),
		Name:        name,
		CategoryID:  categoryID,
		UserID:      ownerID,
		Price:       price,
		Description: description,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product has valid data.
// Returns an error if any field fails validation.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProductID
	}

	if p.Name == "" {
		return ErrEmptyProductName
	}

	if p.CategoryID == uuid.Nil {
		return ErrEmptyCategoryID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyOwnerID
	}

	if p.Price < 0 {
		return ErrNegativePrice
	}

	return nil
}
