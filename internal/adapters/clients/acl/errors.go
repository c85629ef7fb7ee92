package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/plazasales/storefront/internal/adapters/clients"
	"github.com/plazasales/storefront/internal/domain"
)

// ErrorEnvelope is the backend's error body: `{status, message, errors}`.
// errors is either a field→message object or a list of messages.
type ErrorEnvelope struct {
	Status  json.Number     `json:"status"`
	Message json.RawMessage `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

// Text returns the message; NestJS-style backends send a list of messages
// for validation failures, which is joined.
func (e *ErrorEnvelope) Text() string {
	if len(e.Message) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(e.Message, &s); err == nil {
		return s
	}

	var list []string
	if err := json.Unmarshal(e.Message, &list); err == nil {
		return strings.Join(list, "; ")
	}

	return ""
}

// FieldErrors returns per-field messages when the backend sent them, sorted by
// field. Safe on a nil envelope.
func (e *ErrorEnvelope) FieldErrors() []domain.FieldError {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}

	var byField map[string]string
	if err := json.Unmarshal(e.Errors, &byField); err != nil {
		return nil
	}

	fields := make([]domain.FieldError, 0, len(byField))
	for f, m := range byField {
		fields = append(fields, domain.FieldError{Field: f, Message: m})
	}

	slices.SortFunc(fields, func(a, b domain.FieldError) int { return strings.Compare(a.Field, b.Field) })

	return fields
}

// ParseErrorEnvelope decodes an error body. Returns nil if the body carries nothing useful.
func ParseErrorEnvelope(body io.Reader) *ErrorEnvelope {
	if body == nil {
		return nil
	}

	var env ErrorEnvelope
	if err := json.NewDecoder(io.LimitReader(body, 1<<16)).Decode(&env); err != nil {
		return nil
	}

	if env.Text() == "" && len(env.Errors) == 0 {
		return nil
	}

	return &env
}

// MapHTTPError translates a failed backend call into a domain error.
//
//   - clientErr set: the client gave up (open circuit, transport failure) → unavailable
//   - the caller's own deadline or cancellation passes through untouched
//   - 404 → not found for entity/key
//   - 400, 422 → validation, with field details when present
//   - 409 → conflict
//   - 401, 403 → forbidden (the backend rejects reCAPTCHA tokens with 403)
//   - 429, 5xx → unavailable
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entity, key string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	return mapStatusCode(resp.StatusCode, ParseErrorEnvelope(resp.Body), serviceName, operation, entity, key)
}

func mapClientError(err error, serviceName, operation string) error {
	var reason string

	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		reason = "circuit breaker open during " + operation
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		reason = "max retries exceeded during " + operation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", operation, err)
	default:
		reason = fmt.Sprintf("%s failed: %v", operation, err)
	}

	return domain.NewUnavailableError(serviceName, reason)
}

// statusMessages is used when the backend's error body has no message.
var statusMessages = map[int]string{
	http.StatusNotFound:            "resource not found",
	http.StatusConflict:            "resource conflict",
	http.StatusBadRequest:          "invalid request",
	http.StatusUnprocessableEntity: "invalid request",
	http.StatusForbidden:           "access denied",
	http.StatusUnauthorized:        "authentication required",
	http.StatusServiceUnavailable:  "service temporarily unavailable",
}

func mapStatusCode(status int, env *ErrorEnvelope, serviceName, operation, entity, key string) error {
	message, ok := statusMessages[status]
	if !ok {
		message = fmt.Sprintf("%s failed with status %d", operation, status)
	}

	if env != nil && env.Text() != "" {
		message = env.Text()
	}

	switch status {
	case http.StatusNotFound:
		if entity == "" {
			entity = serviceName
		}

		return domain.NewNotFoundError(entity, key)

	case http.StatusConflict:
		return domain.NewConflictError(entity, message)

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if fields := env.FieldErrors(); len(fields) > 0 {
			return &domain.ValidationError{Fields: fields}
		}

		return domain.NewValidationError("", message)

	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewForbiddenError(operation, message)

	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")
	}

	if status >= http.StatusInternalServerError {
		return domain.NewUnavailableError(serviceName, message)
	}

	return domain.NewValidationError("", message)
}
