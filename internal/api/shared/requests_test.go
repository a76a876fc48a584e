package shared_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogapi/internal/api/shared"
)

type createRequest struct {
	Name       string  `json:"name" validate:"required"`
	CategoryID string  `json:"category_id" validate:"required,uuid"`
	Price      float64 `json:"price" validate:"gte=0"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(
			http.MethodPost,
			"/products",
			strings.NewReader(`{"name":"Pen","price":2.5}`),
		)

		var body createRequest
		require.NoError(t, shared.DecodeJSON(req, &body))
		assert.Equal(t, "Pen", body.Name)
		assert.Equal(t, 2.5, body.Price)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{broken`))

		var body createRequest
		assert.Error(t, shared.DecodeJSON(req, &body))
	})
}

func TestViolationsFromError(t *testing.T) {
	t.Parallel()

	t.Run("reports violations in field declaration order", func(t *testing.T) {
		t.Parallel()

		err := shared.Validate.Struct(createRequest{Price: -1})
		require.Error(t, err)

		violations := shared.ViolationsFromError(err)
		require.Len(t, violations, 3)
		assert.Equal(t, shared.FieldViolation{Field: "Name", Rule: "required"}, violations[0])
		assert.Equal(t, shared.FieldViolation{Field: "CategoryID", Rule: "required"}, violations[1])
		assert.Equal(t, shared.FieldViolation{Field: "Price", Rule: "gte"}, violations[2])
	})

	t.Run("non-uuid category reported with the uuid rule", func(t *testing.T) {
		t.Parallel()

		err := shared.Validate.Struct(createRequest{Name: "Pen", CategoryID: "nope", Price: 1})
		require.Error(t, err)

		violations := shared.ViolationsFromError(err)
		require.Len(t, violations, 1)
		assert.Equal(t, shared.FieldViolation{Field: "CategoryID", Rule: "uuid"}, violations[0])
	})

	t.Run("non-validator error yields a generic violation", func(t *testing.T) {
		t.Parallel()

		violations := shared.ViolationsFromError(assert.AnError)
		require.Len(t, violations, 1)
		assert.Equal(t, "body", violations[0].Field)
	})

	t.Run("nil error yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, shared.ViolationsFromError(nil))
	})
}
