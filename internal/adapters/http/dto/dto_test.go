package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorEnvelopeShape(t *testing.T) {
	plain, err := json.Marshal(NewErrorResponse(ErrorCodeNotFound, "product solar-fridge not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"product solar-fridge not found"}}`, string(plain))

	resp := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed",
		map[string]string{"email": "must be a valid email address"})
	resp.TraceID = "4bf92f3577b34da6a3ce929d0e0e4736"

	detailed, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"error": {
			"code": "VALIDATION_ERROR",
			"message": "request validation failed",
			"details": {"email": "must be a valid email address"}
		},
		"traceId": "4bf92f3577b34da6a3ce929d0e0e4736"
	}`, string(detailed))
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{name: "none", setup: func(*gin.Context) {}, want: ""},
		{
			name:  "request id header",
			setup: func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "req-9") },
			want:  "req-9",
		},
		{
			name: "gin key wins over header",
			setup: func(c *gin.Context) {
				c.Set("trace_id", "trace-1")
				c.Request.Header.Set("X-Request-ID", "req-9")
			},
			want: "trace-1",
		},
		{
			name:  "non-string gin key is ignored",
			setup: func(c *gin.Context) { c.Set("trace_id", 42) },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil)
			tt.setup(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

// TestMapError tests the error to status and envelope mapping.
func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:        "not found",
			err:         domain.NewNotFoundError("product", "solar-fridge"),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: "solar-fridge",
		},
		{
			name:        "conflict",
			err:         domain.NewConflictError("career", "no longer accepting applications"),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: "no longer accepting applications",
		},
		{
			name: "validation with every field",
			err: (&domain.ValidationError{}).
				Add("email", "must be a valid email address").
				Add("message", "is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "request validation failed",
			wantDetails: map[string]string{
				"email":   "must be a valid email address",
				"message": "is required",
			},
		},
		{
			name:        "wrapped captcha rejection hides the reason",
			err:         fmt.Errorf("contact: %w", domain.NewCaptchaError(domain.CaptchaActionContact, "score 0.1")),
			wantStatus:  http.StatusForbidden,
			wantCode:    ErrorCodeCaptcha,
			wantMessage: "captcha verification failed",
		},
		{
			name:        "forbidden",
			err:         domain.NewForbiddenError("upload", "file type"),
			wantStatus:  http.StatusForbidden,
			wantCode:    ErrorCodeForbidden,
			wantMessage: "upload",
		},
		{
			name:        "unavailable hides the backend",
			err:         domain.NewUnavailableError("backend", "dial tcp 10.0.0.4:443"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: "temporarily unavailable",
		},
		{
			name:        "deadline exceeded",
			err:         fmt.Errorf("listing products: %w", context.DeadlineExceeded),
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    ErrorCodeTimeout,
			wantMessage: "timed out",
		},
		{
			name:        "binding",
			err:         fmt.Errorf("%w: unexpected EOF", ErrBinding),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeBadRequest,
			wantMessage: "malformed request",
		},
		{
			name:        "anything else",
			err:         errors.New("nil map write"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMessage)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}

	t.Run("nil", func(t *testing.T) {
		status, resp := MapError(nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, resp)
	})
}

// TestRespondWithError tests writing the envelope with the trace ID.
func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-123")

	RespondWithError(c, domain.NewNotFoundError("blog", "gone"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, ErrorCodeNotFound, response.Error.Code)
	assert.Equal(t, "trace-123", response.TraceID)
}

// TestAbortWithError tests that the chain stops.
func TestAbortWithError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	AbortWithError(c, domain.NewValidationError("visitor", "no visitor identity"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestCaptchaProof tests reading the token and client address.
func TestCaptchaProof(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.RemoteAddr = "198.51.100.7:4040"
	c.Request.Header.Set(HeaderRecaptchaToken, "tok")

	assert.Equal(t, domain.CaptchaProof{Token: "tok", RemoteIP: "198.51.100.7"}, CaptchaProof(c))
}

// TestPageRequestQuery tests clamping the page size.
func TestPageRequestQuery(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
		want domain.PageQuery
	}{
		{name: "zero values pass through", req: PageRequest{}, want: domain.PageQuery{}},
		{name: "within range", req: PageRequest{Page: 3, Limit: 25}, want: domain.PageQuery{Page: 3, Limit: 25}},
		{name: "above max", req: PageRequest{Page: 1, Limit: 500}, want: domain.PageQuery{Page: 1, Limit: MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Query())
		})
	}
}

// TestNewPagination tests page metadata.
func TestNewPagination(t *testing.T) {
	tests := []struct {
		name                            string
		page, limit, total, totalPages int
		want                            Pagination
	}{
		{
			name: "computes total pages",
			page: 1, limit: 16, total: 33,
			want: Pagination{Page: 1, Limit: 16, Total: 33, TotalPages: 3, HasMore: true},
		},
		{
			name: "keeps given total pages",
			page: 2, limit: 10, total: 12, totalPages: 2,
			want: Pagination{Page: 2, Limit: 10, Total: 12, TotalPages: 2, HasMore: false},
		},
		{
			name: "page below one",
			page: 0, limit: 10, total: 0,
			want: Pagination{Page: 1, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.limit, tt.total, tt.totalPages))
		})
	}
}

// TestNewPaginatedResponse tests that items are mapped and never nil.
func TestNewPaginatedResponse(t *testing.T) {
	got := NewPaginatedResponse([]domain.Ad(nil), NewPagination(1, 10, 0, 0), NewAdResponse)

	require.NotNil(t, got.Items)
	assert.Empty(t, got.Items)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"items":[]`)
}

// TestResponseConversions spot-checks the JSON shapes the storefront renders.
func TestResponseConversions(t *testing.T) {
	t.Run("seo drops invalid json-ld", func(t *testing.T) {
		got := NewSEOResponse(domain.SEOMetadata{Title: "About", JSONLD: []byte("{broken")})

		assert.Nil(t, got.JSONLD)
		assert.NotNil(t, got.Keywords)
	})

	t.Run("product refs", func(t *testing.T) {
		got := NewProductResponse(domain.Product{
			Slug:     "solar-fridge",
			Brand:    &domain.BrandRef{ID: "b-1", Name: "Vestfrost", Slug: "vestfrost", Logo: "logo.png"},
			Category: &domain.CategoryRef{ID: "c-1", Title: "Vaccine", Slug: "vaccine"},
		})

		assert.Equal(t, &Ref{ID: "b-1", Name: "Vestfrost", Slug: "vestfrost", Image: "logo.png"}, got.Brand)
		assert.Equal(t, "Vaccine", got.Category.Name)
		assert.Nil(t, got.Subcategory)
		assert.NotNil(t, got.Images)
	})

	t.Run("attachment from nil header", func(t *testing.T) {
		assert.Nil(t, NewAttachment(nil))
	})

	t.Run("filter passes every parameter", func(t *testing.T) {
		q := ProductsQuery{Page: 2, Brands: "a", Subcategories: "b", Technology: "iot"}

		assert.Equal(t, domain.ProductFilter{Page: 2, Brands: "a", Subcategories: "b", Technology: "iot"}, q.Filter())
	})
}


func TestValidate_WireNames(t *testing.T) {
	err := Validate(&ContactRequest{Message: strings.Repeat("x", 5001)})
	require.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, map[string]string{"message": "must be at most 5000 characters"}, ValidationErrors(err))

	err = Validate(&ProductsQuery{Limit: 101, Page: -1})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"limit": "must be less than or equal to 100",
		"page":  "must be greater than or equal to 1",
	}, ValidationErrors(err))
}

func TestValidate_SlugLists(t *testing.T) {
	tests := []struct {
		name  string
		query ProductsQuery
		field string
	}{
		{name: "single slug", query: ProductsQuery{Brand: "vestfrost"}},
		{name: "list with spaces", query: ProductsQuery{Categories: "vaccine, solar-direct-drive"}},
		{name: "trailing comma", query: ProductsQuery{Subcategories: "ups,"}},
		{name: "underscore and digits", query: ProductsQuery{Brands: "b_medical,dometic2"}},
		{name: "markup", query: ProductsQuery{Category: "<b>"}, field: "category"},
		{name: "path", query: ProductsQuery{Brands: "a,../etc"}, field: "brands"},
		{name: "leading hyphen", query: ProductsQuery{Subcategory: "-ups"}, field: "subcategory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.query)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, "must be a comma-separated list of slugs", ValidationErrors(err)[tt.field])
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	bind := func(body string) error {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/newsletter/subscribe", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		var req NewsletterRequest
		return BindAndValidate(c, &req)
	}

	assert.NoError(t, bind(`{"name":"Gita","email":"gita@example.com"}`))
	assert.ErrorIs(t, bind(`{"name":`), ErrBinding)
	assert.ErrorIs(t, bind(`{"name":"`+strings.Repeat("g", 201)+`"}`), ErrValidation)
}

func TestBindQueryAndValidate(t *testing.T) {
	bind := func(query string) (SEOQuery, error) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/seo?"+query, nil)

		var q SEOQuery
		err := BindQueryAndValidate(c, &q)

		return q, err
	}

	q, err := bind("page=2&limit=5&entityType=blog")
	require.NoError(t, err)
	assert.Equal(t, SEOQuery{Page: 2, Limit: 5, EntityType: "blog"}, q)

	_, err = bind("page=two")
	assert.ErrorIs(t, err, ErrBinding)

	_, err = bind("limit=1000")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidationErrors_NotAValidatorError(t *testing.T) {
	assert.Empty(t, ValidationErrors(errors.New("boom")))
	assert.Empty(t, ValidationErrors(fmt.Errorf("%w: eof", ErrBinding)))
}
