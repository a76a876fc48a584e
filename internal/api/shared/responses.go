package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"catalogapi/internal/redact"
)

// ErrorBody is the err member of the response envelope. Violations is only
// populated for validation failures.
type ErrorBody struct {
	Message    string           `json:"message"`
	Violations []FieldViolation `json:"violations,omitempty"`
}

// FieldViolation describes a single field-level validation failure, in the
// order the fields were declared on the request struct.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Envelope is the uniform response wrapper for every endpoint:
// {ok, payload} on success, {ok, err} on failure. The original API used a
// different success key for search and loosely-shaped err objects; both are
// deliberately normalized here.
type Envelope struct {
	OK      bool       `json:"ok"`
	Payload any        `json:"payload,omitempty"`
	Err     *ErrorBody `json:"err,omitempty"`
	TraceID string     `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithPayload writes a success envelope with the given payload.
func RespondWithPayload(w http.ResponseWriter, r *http.Request, status int, payload any) {
	RespondWithJSON(w, r, status, Envelope{OK: true, Payload: payload})
}

// RespondWithError writes a failure envelope with the given status and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, Envelope{
		OK:      false,
		Err:     &ErrorBody{Message: message},
		TraceID: traceID,
	})
}

// RespondWithViolations writes a 400 failure envelope carrying the ordered
// list of field-level validation violations.
func RespondWithViolations(w http.ResponseWriter, r *http.Request, violations []FieldViolation) {
	RespondWithJSON(w, r, http.StatusBadRequest, Envelope{
		OK: false,
		Err: &ErrorBody{
			Message:    "Validation failed",
			Violations: violations,
		},
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes a failure envelope and logs the detailed
// error. The full error goes to the log (redacted); the client only sees
// the sanitized userMessage.
//
// Log level strategy:
// - 5xx errors: ERROR level
// - 4xx errors: DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, Envelope{
		OK:      false,
		Err:     &ErrorBody{Message: userMessage},
		TraceID: traceID,
	})
}
