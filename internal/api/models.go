package api

import (
	"time"

	"catalogapi/internal/domain"
)

// ProductRequest represents the request body for creating or updating a
// product. Updates are full replacements, so the same shape serves both.
// Any user/owner field present in client input is ignored; ownership comes
// from the authenticated identity.
type ProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	CategoryID  string   `json:"category_id" validate:"required,uuid"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Description string   `json:"description"`
	Available   *bool    `json:"available"`
}

// UserSummaryResponse is the owner projection embedded in product responses.
type UserSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CategoryResponse is the expanded category embedded in product responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductResponse represents the response data for a product.
type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Price       float64              `json:"price"`
	Description string               `json:"description,omitempty"`
	Available   bool                 `json:"available"`
	User        *UserSummaryResponse `json:"user,omitempty"`
	Category    *CategoryResponse    `json:"category,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// productToResponse converts a domain.Product to a ProductResponse.
func productToResponse(product *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Available:   product.Available,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if product.User != nil {
		resp.User = &UserSummaryResponse{
			ID:    product.User.ID.String(),
			Name:  product.User.Name,
			Email: product.User.Email,
		}
	}

	if product.Category != nil {
		resp.Category = &CategoryResponse{
			ID:        product.Category.ID.String(),
			Name:      product.Category.Name,
			CreatedAt: product.Category.CreatedAt,
			UpdatedAt: product.Category.UpdatedAt,
		}
	}

	return resp
}

// productsToResponse converts a slice of domain products, preserving order.
func productsToResponse(products []*domain.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, productToResponse(product))
	}
	return responses
}
