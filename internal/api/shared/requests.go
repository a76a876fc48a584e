package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance for request structs.
var Validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ViolationsFromError converts a validator error into an ordered list of
// field-level violations. Field order follows struct declaration order,
// which is how validator reports them. A non-validator error yields a
// single generic violation so callers always get a non-empty list.
func ViolationsFromError(err error) []FieldViolation {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldViolation{{Field: "body", Rule: "invalid"}}
	}

	violations := make([]FieldViolation, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, FieldViolation{
			Field: fieldErr.Field(),
			Rule:  fieldErr.Tag(),
		})
	}
	return violations
}
