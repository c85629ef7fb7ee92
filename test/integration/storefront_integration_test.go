//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/adapters/http/middleware"
)

const productSlug = "vestfrost-reefer-mk2"

func productFixture() map[string]any {
	return map[string]any{
		"product": map[string]any{
			"id":               7,
			"title":            "Vestfrost Reefer MK2",
			"slug":             productSlug,
			"shortDescription": "Solar direct drive vaccine refrigerator",
			"productType":      "PHYSICAL",
			"coverImage":       "https://cdn.plazasales.test/mk2.jpg",
			"brand":            map[string]any{"id": 1, "name": "Vestfrost", "slug": "vestfrost"},
			"downloads": []map[string]any{
				{"id": 1, "title": "User manual", "fileType": "pdf", "downloadUrl": "https://cdn.plazasales.test/mk2.pdf"},
			},
		},
		"similarProducts": []map[string]any{
			{"id": 8, "title": "Vestfrost MK3", "slug": "vestfrost-mk3"},
		},
	}
}

func careerFixture(status string) map[string]any {
	return map[string]any{
		"career": map[string]any{
			"id":          "c-1",
			"title":       "Cold Chain Engineer",
			"slug":        "cold-chain-engineer",
			"location":    "Kathmandu",
			"jobType":     "full_time",
			"salaryRange": "Negotiable",
			"deadline":    time.Now().Add(30 * 24 * time.Hour).UTC().Format(time.RFC3339),
			"status":      status,
		},
	}
}

func decodeErrorBody(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", body)

	return resp
}

func TestProductDetail(t *testing.T) {
	t.Run("composes product with related items and fallback seo", func(t *testing.T) {
		s := newStack(t)
		s.backend.handle(http.MethodGet, "/product/"+productSlug, http.StatusOK, productFixture())

		resp, body := s.get(t, "/api/v1/products/"+productSlug)
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

		var page dto.ProductDetailResponse
		require.NoError(t, json.Unmarshal(body, &page))

		assert.Equal(t, "Vestfrost Reefer MK2", page.Product.Title)
		require.Len(t, page.Related, 1)
		assert.Equal(t, "vestfrost-mk3", page.Related[0].Slug)
		assert.NotEmpty(t, page.SEO.Title)
		assert.Len(t, page.Downloads.Manuals, 1)
	})

	t.Run("unknown product is a not found envelope", func(t *testing.T) {
		s := newStack(t)

		resp, body := s.get(t, "/api/v1/products/does-not-exist")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, dto.ErrorCodeNotFound, decodeErrorBody(t, body).Error.Code)
	})

	t.Run("backend failure is retried then reported unavailable", func(t *testing.T) {
		s := newStack(t)
		s.backend.handle(http.MethodGet, "/product/"+productSlug, http.StatusBadGateway,
			`{"status":502,"message":"upstream exploded"}`)

		resp, body := s.get(t, "/api/v1/products/"+productSlug)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		errResp := decodeErrorBody(t, body)
		assert.Equal(t, dto.ErrorCodeUnavailable, errResp.Error.Code)
		assert.NotContains(t, errResp.Error.Message, "upstream exploded")
		assert.Equal(t, 3, s.backend.calls(http.MethodGet, "/product/"+productSlug))
	})

	t.Run("request and correlation ids reach the backend", func(t *testing.T) {
		s := newStack(t)
		s.backend.handle(http.MethodGet, "/product/"+productSlug, http.StatusOK, productFixture())

		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, s.server.URL+"/api/v1/products/"+productSlug, nil)
		require.NoError(t, err)
		req.Header.Set(middleware.HeaderRequestID, "req-integration-1")
		req.Header.Set(middleware.HeaderCorrelationID, "corr-integration-1")

		resp, err := s.client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "req-integration-1", resp.Header.Get(middleware.HeaderRequestID))

		upstream, _ := s.backend.lastRequest()
		require.NotNil(t, upstream)
		assert.Equal(t, "req-integration-1", upstream.Header.Get(middleware.HeaderRequestID))
		assert.Equal(t, "corr-integration-1", upstream.Header.Get(middleware.HeaderCorrelationID))
	})
}

func TestHomePage_DegradesFailedSections(t *testing.T) {
	s := newStack(t)
	s.backend.handle(http.MethodGet, "/product/get-all-products", http.StatusOK, map[string]any{
		"data": map[string]any{
			"products": []map[string]any{{"id": 1, "title": "Reefer", "slug": "reefer"}},
			"total":    1,
		},
	})
	s.backend.handle(http.MethodGet, "/category/get-all-categories", http.StatusInternalServerError, `{"message":"db down"}`)
	s.backend.handle(http.MethodGet, "/brand/get-all-brands", http.StatusOK, `{"data":{"brands":[{"id":1,"name":"Vestfrost","slug":"vestfrost"}]}}`)

	resp, body := s.get(t, "/api/v1/pages/home")
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

	var page dto.HomePageResponse
	require.NoError(t, json.Unmarshal(body, &page))

	assert.Len(t, page.LatestProducts, 1)
	assert.Len(t, page.Brands, 1)
	assert.NotNil(t, page.Categories)
	assert.Empty(t, page.Categories)
	assert.NotNil(t, page.Blogs)
	assert.Empty(t, page.Blogs)
}

func TestSavedJobs_RoundTrip(t *testing.T) {
	s := newStack(t)
	s.backend.handle(http.MethodGet, "/career/cold-chain-engineer", http.StatusOK, careerFixture("OPEN"))

	toggle := func() dto.SavedJobsResponse {
		resp, body := s.do(t, http.MethodPost, "/api/v1/careers/cold-chain-engineer/save", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

		var out dto.SavedJobsResponse
		require.NoError(t, json.Unmarshal(body, &out))

		return out
	}

	first := toggle()
	require.NotNil(t, first.Saved)
	assert.True(t, *first.Saved)
	require.Len(t, first.SavedJobs, 1)
	assert.Equal(t, "Cold Chain Engineer", first.SavedJobs[0].Title)

	resp, body := s.get(t, "/api/v1/visitor/saved-jobs")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed dto.SavedJobsResponse
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Len(t, listed.SavedJobs, 1)

	second := toggle()
	require.NotNil(t, second.Saved)
	assert.False(t, *second.Saved)
	assert.Empty(t, second.SavedJobs)

	t.Run("a new visitor starts with nothing saved", func(t *testing.T) {
		s.client = newCookieClient()

		resp, body := s.get(t, "/api/v1/visitor/saved-jobs")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"savedJobs":[]}`, string(body))
	})
}

func applicationBody(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	require.NoError(t, mw.WriteField("name", "Sita Rai"))
	require.NoError(t, mw.WriteField("email", "sita@example.com"))
	require.NoError(t, mw.WriteField("phone", "9801111111"))

	part, err := mw.CreateFormFile(dto.FieldResume, "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7 resume"))
	require.NoError(t, err)

	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestCareerApplication(t *testing.T) {
	apply := func(t *testing.T, s *stack) (*http.Response, []byte) {
		t.Helper()

		body, contentType := applicationBody(t)

		req, err := http.NewRequestWithContext(t.Context(), http.MethodPost,
			s.server.URL+"/api/v1/careers/cold-chain-engineer/apply", body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", contentType)

		resp, err := s.client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var out bytes.Buffer
		_, err = out.ReadFrom(resp.Body)
		require.NoError(t, err)

		return resp, out.Bytes()
	}

	t.Run("without attachment storage", func(t *testing.T) {
		s := newStack(t)
		s.backend.handle(http.MethodGet, "/career/cold-chain-engineer", http.StatusOK, careerFixture("OPEN"))

		resp, body := apply(t, s)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "body: %s", body)
		assert.Zero(t, s.backend.calls(http.MethodPost, "/career/apply"))
	})

	t.Run("closed opening", func(t *testing.T) {
		s := newStack(t)
		s.backend.handle(http.MethodGet, "/career/cold-chain-engineer", http.StatusOK, careerFixture("CLOSED"))

		resp, body := apply(t, s)
		require.Equal(t, http.StatusConflict, resp.StatusCode, "body: %s", body)
		assert.Equal(t, dto.ErrorCodeConflict, decodeErrorBody(t, body).Error.Code)
	})
}

func TestReadiness(t *testing.T) {
	t.Run("ready when the backend answers", func(t *testing.T) {
		s := newStack(t)
		s.backend.handle(http.MethodGet, "/category/get-all-categories", http.StatusOK, `{"categories":[],"total":0}`)

		resp, body := s.get(t, "/-/ready")
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
	})

	t.Run("not ready when the backend fails", func(t *testing.T) {
		s := newStack(t)
		s.backend.handle(http.MethodGet, "/category/get-all-categories", http.StatusServiceUnavailable, `{"message":"maintenance"}`)

		resp, body := s.get(t, "/-/ready")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "body: %s", body)
		assert.Contains(t, string(body), "backend-api")
	})
}
