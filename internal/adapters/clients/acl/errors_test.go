package acl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/adapters/clients"
	"github.com/plazasales/storefront/internal/domain"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestMapHTTPError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, `{"status":404,"message":"Product not found"}`, domain.IsNotFound},
		{"conflict", http.StatusConflict, `{"status":409,"message":"already subscribed"}`, domain.IsConflict},
		{"bad request", http.StatusBadRequest, `{"status":400,"message":"email must be an email"}`, domain.IsValidation},
		{"unprocessable", http.StatusUnprocessableEntity, ``, domain.IsValidation},
		{"unauthorized", http.StatusUnauthorized, ``, domain.IsForbidden},
		{"forbidden", http.StatusForbidden, `{"message":"recaptcha failed"}`, domain.IsForbidden},
		{"rate limited", http.StatusTooManyRequests, ``, domain.IsUnavailable},
		{"server error", http.StatusInternalServerError, `not json`, domain.IsUnavailable},
		{"bad gateway", http.StatusBadGateway, ``, domain.IsUnavailable},
		{"other 4xx", http.StatusTeapot, ``, domain.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(response(tt.status, tt.body), nil, "backend-api", "op", "product", "ups-1kva")

			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
		})
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, MapHTTPError(response(http.StatusOK, `{}`), nil, "backend-api", "op", "", ""))
}

func TestMapHTTPError_NotFoundNamesEntity(t *testing.T) {
	err := MapHTTPError(response(http.StatusNotFound, ``), nil, "backend-api", "get product", "product", "ups-1kva")

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "product", nf.Entity)
	assert.Equal(t, "ups-1kva", nf.Key)
}

func TestMapHTTPError_NotFoundFallsBackToService(t *testing.T) {
	err := MapHTTPError(response(http.StatusNotFound, ``), nil, "backend-api", "list ads", "", "")

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "backend-api", nf.Entity)
}

func TestMapHTTPError_FieldErrors(t *testing.T) {
	body := `{"status":400,"message":"invalid","errors":{"phone":"too short","email":"invalid"}}`

	err := MapHTTPError(response(http.StatusBadRequest, body), nil, "backend-api", "submit inquiry", "", "")

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Fields, 2)
	assert.Equal(t, "email", ve.Fields[0].Field)
	assert.Equal(t, "phone", ve.Fields[1].Field)
}

func TestMapHTTPError_MessageList(t *testing.T) {
	body := `{"statusCode":400,"message":["name should not be empty","email must be an email"]}`

	err := MapHTTPError(response(http.StatusBadRequest, body), nil, "backend-api", "subscribe", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name should not be empty; email must be an email")
}

func TestMapHTTPError_ClientErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"circuit open", clients.ErrCircuitOpen, "circuit breaker open"},
		{"retries", fmt.Errorf("%w: dial tcp", clients.ErrMaxRetriesExceeded), "max retries exceeded"},
		{"other", errors.New("boom"), "list blogs failed: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(nil, tt.err, "backend-api", "list blogs", "", "")

			assert.True(t, domain.IsUnavailable(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestMapHTTPError_CallerDeadlinePassesThrough(t *testing.T) {
	err := MapHTTPError(nil, &url.Error{Op: "Get", URL: "http://backend/blog", Err: context.DeadlineExceeded},
		"backend-api", "list blogs", "", "")

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, domain.IsUnavailable(err))
}

func TestMapHTTPError_NilResponse(t *testing.T) {
	assert.True(t, domain.IsUnavailable(MapHTTPError(nil, nil, "backend-api", "op", "", "")))
}

func TestParseErrorEnvelope(t *testing.T) {
	assert.Nil(t, ParseErrorEnvelope(nil))
	assert.Nil(t, ParseErrorEnvelope(strings.NewReader(`{}`)))
	assert.Nil(t, ParseErrorEnvelope(strings.NewReader(`<html>`)))

	env := ParseErrorEnvelope(strings.NewReader(`{"status":"500","message":"db down"}`))
	require.NotNil(t, env)
	assert.Equal(t, "db down", env.Text())
	assert.Empty(t, env.FieldErrors())
}
