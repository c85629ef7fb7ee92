package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/mocks"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func TestSubmissionHandler_Contact(t *testing.T) {
	body := `{"fullname":"Ram Thapa","email":"ram@example.com","countryCode":"NP",` +
		`"phoneNo":"9801234567","message":"Need a quote","purpose":"sales"}`

	t.Run("accepted", func(t *testing.T) {
		svc := mocks.NewMockSubmissionService(t)
		svc.EXPECT().SubmitContact(mock.Anything, &domain.ContactForm{
			Fullname:    "Ram Thapa",
			Email:       "ram@example.com",
			CountryCode: "NP",
			PhoneNo:     "9801234567",
			Message:     "Need a quote",
			Purpose:     "sales",
		}, domain.CaptchaProof{Token: "tok", RemoteIP: "192.0.2.1"}).Return(nil)

		req := jsonRequest(http.MethodPost, "/api/v1/contact", body)
		req.Header.Set(dto.HeaderRecaptchaToken, "tok")

		w := serve(t, NewSubmissionHandler(svc), req)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := mocks.NewMockSubmissionService(t)

		w := serve(t, NewSubmissionHandler(svc), jsonRequest(http.MethodPost, "/api/v1/contact", `{"fullname":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeBadRequest, decodeError(t, w).Error.Code)
	})

	t.Run("oversized message", func(t *testing.T) {
		svc := mocks.NewMockSubmissionService(t)
		big := `{"message":"` + strings.Repeat("x", 5001) + `"}`

		w := serve(t, NewSubmissionHandler(svc), jsonRequest(http.MethodPost, "/api/v1/contact", big))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Details, "message")
	})
}

func TestSubmissionHandler_Inquiry(t *testing.T) {
	svc := mocks.NewMockSubmissionService(t)
	svc.EXPECT().SubmitInquiry(mock.Anything, mock.MatchedBy(func(inq *domain.Inquiry) bool {
		return inq.ProductID == "p-1" && inq.Email == "hari@example.com"
	}), mock.Anything).Return(domain.NewUnavailableError("backend", "502"))

	req := jsonRequest(http.MethodPost, "/api/v1/inquiries", `{"productId":"p-1","email":"hari@example.com"}`)
	w := serve(t, NewSubmissionHandler(svc), req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubmissionHandler_Newsletter(t *testing.T) {
	t.Run("subscribe", func(t *testing.T) {
		svc := mocks.NewMockSubmissionService(t)
		svc.EXPECT().SubscribeNewsletter(mock.Anything, &domain.NewsletterSignup{Name: "Gita", Email: "gita@example.com"}).
			Return(nil)

		req := jsonRequest(http.MethodPost, "/api/v1/newsletter/subscribe", `{"name":"Gita","email":"gita@example.com"}`)
		w := serve(t, NewSubmissionHandler(svc), req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("dismiss", func(t *testing.T) {
		svc := mocks.NewMockSubmissionService(t)
		svc.EXPECT().DismissNewsletter(mock.Anything).Return(nil)

		w := serve(t, NewSubmissionHandler(svc), httptest.NewRequest(http.MethodPost, "/api/v1/newsletter/dismiss", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("status", func(t *testing.T) {
		svc := mocks.NewMockSubmissionService(t)
		svc.EXPECT().NewsletterStatus(mock.Anything).Return(&domain.NewsletterStatus{
			ShouldPrompt: true,
			PromptDelay:  2 * time.Second,
		}, nil)

		w := serve(t, NewSubmissionHandler(svc), httptest.NewRequest(http.MethodGet, "/api/v1/visitor/newsletter", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"shouldPrompt":true,"promptDelayMs":2000,"subscribed":false,"dismissed":false}`, w.Body.String())
	})
}

func TestAdHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svc := mocks.NewMockAdService(t)
		svc.EXPECT().Ads(mock.Anything, domain.PageQuery{Page: 1, Limit: 10}).
			Return(&domain.AdPage{Ads: []domain.Ad{{ID: "ad-1"}}, Total: 1}, nil)

		w := serve(t, NewAdHandler(svc), httptest.NewRequest(http.MethodGet, "/api/v1/ads", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"ad-1"`)
	})

	t.Run("click", func(t *testing.T) {
		svc := mocks.NewMockAdService(t)
		svc.EXPECT().RecordAdClick(mock.Anything, "ad-1", domain.CaptchaProof{Token: "tok", RemoteIP: "192.0.2.1"}).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/ads/ad-1/click", nil)
		req.Header.Set(dto.HeaderRecaptchaToken, "tok")

		w := serve(t, NewAdHandler(svc), req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("impression without token", func(t *testing.T) {
		svc := mocks.NewMockAdService(t)
		svc.EXPECT().RecordAdImpression(mock.Anything, "ad-1", mock.Anything).
			Return(domain.NewCaptchaError(domain.CaptchaActionAdImpression, "missing-input-response"))

		w := serve(t, NewAdHandler(svc), httptest.NewRequest(http.MethodPost, "/api/v1/ads/ad-1/impression", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrorCodeCaptcha, decodeError(t, w).Error.Code)
	})
}
