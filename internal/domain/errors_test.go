package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = map[string]func(error) bool{
	"not found":   IsNotFound,
	"conflict":    IsConflict,
	"validation":  IsValidation,
	"forbidden":   IsForbidden,
	"unavailable": IsUnavailable,
	"captcha":     IsCaptchaRejected,
}

// TestErrorKinds checks each constructor's message and that exactly one kind
// predicate matches it, even after wrapping.
func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind string
		msg  string
	}{
		{NewNotFoundError("product", "blast-chiller-x2"), "not found", `product "blast-chiller-x2" not found`},
		{NewNotFoundError("brand", ""), "not found", "brand not found"},
		{NewConflictError("newsletter", "already subscribed"), "conflict", "newsletter conflict: already subscribed"},
		{NewValidationError("email", "invalid format"), "validation", "validation failed for email: invalid format"},
		{NewValidationError("", "name should not be empty"), "validation", "validation failed: name should not be empty"},
		{NewForbiddenError("apply", "closed"), "forbidden", `operation "apply" forbidden: closed`},
		{NewForbiddenError("apply", ""), "forbidden", `operation "apply" forbidden`},
		{NewUnavailableError("backend-api", "circuit open"), "unavailable", `service "backend-api" unavailable: circuit open`},
		{NewUnavailableError("minio", ""), "unavailable", `service "minio" unavailable`},
		{NewCaptchaError("contact_form", "score too low"), "captcha", "captcha rejected for contact_form: score too low"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.msg, tt.err.Error())

			for _, err := range []error{tt.err, fmt.Errorf("page: %w", fmt.Errorf("section: %w", tt.err))} {
				for kind, is := range kinds {
					assert.Equal(t, kind == tt.kind, is(err), "%s predicate on %v", kind, err)
				}
			}
		})
	}
}

func TestErrorKinds_Nil(t *testing.T) {
	for kind, is := range kinds {
		assert.False(t, is(nil), kind)
	}
}

func TestNotFoundError_KeepsLookup(t *testing.T) {
	wrapped := fmt.Errorf("career page: %w", NewNotFoundError("career", "sales-engineer"))

	var nf *NotFoundError
	require.ErrorAs(t, wrapped, &nf)
	assert.Equal(t, "career", nf.Entity)
	assert.Equal(t, "sales-engineer", nf.Key)
}

func TestValidationError_Collects(t *testing.T) {
	v := &ValidationError{}
	assert.NoError(t, v.OrNil())
	assert.Equal(t, "validation failed", v.Error())

	err := v.Add("email", "required").Add("phone", "required").OrNil()

	require.Error(t, err)
	assert.Equal(t, "validation failed for email, phone", err.Error())
	assert.Equal(t, []FieldError{{"email", "required"}, {"phone", "required"}}, v.Fields)
}
