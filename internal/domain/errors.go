// Package domain contains the storefront's records, rules and errors.
// Domain errors describe storefront failures, not HTTP failures; adapters map them
// to transport status codes.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Each error kind has a sentinel; the typed errors below unwrap to it.
var (
	// ErrNotFound indicates the requested record does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the backend refused a submission as a duplicate.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates submitted input is malformed.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the backend refused the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates the backend or another dependency cannot be reached.
	ErrUnavailable = errors.New("unavailable")

	// ErrCaptchaRejected indicates the reCAPTCHA token did not pass verification.
	ErrCaptchaRejected = errors.New("captcha rejected")
)

// NotFoundError names the missing record.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
	}

	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError is the error for entity looked up by key, a slug or an id.
func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// ConflictError describes a refused duplicate submission.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// FieldError is a single invalid form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every invalid field of a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Fields) {
	case 0:
		return "validation failed"
	case 1:
		if e.Fields[0].Field == "" {
			return "validation failed: " + e.Fields[0].Message
		}
		return fmt.Sprintf("validation failed for %s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}

	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}

	return "validation failed for " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Add appends a field error and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// OrNil returns nil when no field failed, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

// NewValidationError is a ValidationError with a single field. An empty field
// names the submission as a whole.
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// ForbiddenError describes an operation the backend refused.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("operation %q forbidden: %s", e.Operation, e.Reason)
	}

	return fmt.Sprintf("operation %q forbidden", e.Operation)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// UnavailableError names the dependency that could not serve the request.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// CaptchaError carries the verifier's reason for rejecting a token.
type CaptchaError struct {
	Action string
	Reason string
}

func (e *CaptchaError) Error() string {
	return fmt.Sprintf("captcha rejected for %s: %s", e.Action, e.Reason)
}

func (e *CaptchaError) Unwrap() error {
	return ErrCaptchaRejected
}

func NewCaptchaError(action, reason string) error {
	return &CaptchaError{Action: action, Reason: reason}
}

// IsNotFound reports a missing product, blog, career or other record.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports a refused duplicate such as a repeat subscription.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }

// IsUnavailable reports that a dependency, usually the backend API, could not
// answer. Handlers turn it into 503.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

func IsCaptchaRejected(err error) bool { return errors.Is(err, ErrCaptchaRejected) }
