package dto

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/logging"
)

const (
	// HeaderRecaptchaToken carries the reCAPTCHA v3 token on protected submissions.
	HeaderRecaptchaToken = "X-Recaptcha-Token"

	headerRequestID = "X-Request-ID"
	ginKeyTraceID   = "trace_id"

	genericMessage = "Something went wrong"
)

// MapError maps an error to an HTTP status code and error envelope.
// Domain errors keep their message; anything unrecognised gets a generic one.
func MapError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, "request validation failed")

		var verr *domain.ValidationError
		if errors.As(err, &verr) && len(verr.Fields) > 0 {
			resp.Error.Details = make(map[string]string, len(verr.Fields))
			for _, f := range verr.Fields {
				resp.Error.Details[f.Field] = f.Message
			}
		}

		return http.StatusBadRequest, resp

	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		)

	case errors.Is(err, ErrBinding):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, "malformed request")

	case domain.IsCaptchaRejected(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeCaptcha, "captcha verification failed")

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			"service temporarily unavailable",
		)

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timed out")

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, genericMessage)
	}
}

// RespondWithError writes the error envelope for err with the request's trace ID.
// Server-side failures are logged with the full cause.
func RespondWithError(c *gin.Context, err error) {
	status, resp := envelope(c, err)
	c.JSON(status, resp)
}

// AbortWithError stops the handler chain and writes the error envelope.
func AbortWithError(c *gin.Context, err error) {
	status, resp := envelope(c, err)
	c.AbortWithStatusJSON(status, resp)
}

func envelope(c *gin.Context, err error) (int, *ErrorResponse) {
	status, resp := MapError(err)
	resp.TraceID = GetTraceID(c)

	logger := logging.FromContext(c.Request.Context())

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request failed",
			"error", err.Error(),
			"status", status,
			"trace_id", resp.TraceID,
		)
	case status == http.StatusForbidden:
		logger.Warn("request rejected", "error", err.Error())
	}

	return status, resp
}

// GetTraceID returns the request's trace ID: the active span's, then one stored
// on the gin context, then the inbound request ID.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}

	if v, ok := c.Get(ginKeyTraceID); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}

	if c.Request != nil {
		return c.GetHeader(headerRequestID)
	}

	return ""
}

// CaptchaProof reads the reCAPTCHA token and client address from the request.
func CaptchaProof(c *gin.Context) domain.CaptchaProof {
	return domain.CaptchaProof{
		Token:    c.GetHeader(HeaderRecaptchaToken),
		RemoteIP: c.ClientIP(),
	}
}
