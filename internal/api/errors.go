package api

import (
	"errors"
	"net/http"

	"catalogapi/internal/domain"
	"catalogapi/internal/service/auth"
	"catalogapi/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrEmptyCategoryID),
		errors.Is(err, domain.ErrEmptyOwnerID),
		errors.Is(err, domain.ErrNegativePrice):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, store.ErrProductNotFound):
		return "Product not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	case store.IsDuplicateError(err):
		return "Product already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Referenced category or user does not exist"

	case errors.Is(err, domain.ErrEmptyProductName):
		return "Product name is required"

	case errors.Is(err, domain.ErrEmptyCategoryID):
		return "Product category is required"

	case errors.Is(err, domain.ErrNegativePrice):
		return "Product price cannot be negative"

	default:
		return "An unexpected error occurred"
	}
}
