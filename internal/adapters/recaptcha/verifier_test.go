package recaptcha

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/adapters/clients"
	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/config"
)

func newVerifier(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := clients.New(&clients.Config{
		BaseURL:     srv.URL,
		ServiceName: "recaptcha",
		Timeout:     time.Second,
		Retry:       config.RetryConfig{MaxAttempts: 1, InitialInterval: 10 * time.Millisecond, MaxInterval: 100 * time.Millisecond, Multiplier: 2},
		Circuit:     config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	})
	require.NoError(t, err)

	v, err := New(config.RecaptchaConfig{Enabled: true, Secret: "s3cret", MinScore: 0.5}, client, nil)
	require.NoError(t, err)

	return v
}

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func TestVerify_SendsForm(t *testing.T) {
	var form url.Values

	v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		reply(`{"success":true,"score":0.9,"action":"contact_form"}`)(w, r)
	})

	err := v.Verify(context.Background(), "tok", domain.CaptchaActionContact, "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "s3cret", form.Get("secret"))
	assert.Equal(t, "tok", form.Get("response"))
	assert.Equal(t, "10.0.0.1", form.Get("remoteip"))
}

func TestVerify_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"unsuccessful", `{"success":false,"error-codes":["timeout-or-duplicate"]}`, "timeout-or-duplicate"},
		{"unsuccessful without codes", `{"success":false}`, "verification failed"},
		{"low score", `{"success":true,"score":0.1,"action":"ad_click"}`, "score 0.10 below 0.50"},
		{"wrong action", `{"success":true,"score":0.9,"action":"login"}`, "action mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVerifier(t, reply(tt.body))

			err := v.Verify(context.Background(), "tok", domain.CaptchaActionAdClick, "")

			require.Error(t, err)
			assert.True(t, domain.IsCaptchaRejected(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestVerify_MissingToken(t *testing.T) {
	calls := 0
	v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		reply(`{"success":true,"score":1}`)(w, r)
	})

	err := v.Verify(context.Background(), "  ", domain.CaptchaActionApplication, "")

	assert.True(t, domain.IsCaptchaRejected(err))
	assert.Zero(t, calls)
}

func TestVerify_UpstreamFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) }},
		{"garbage", reply(`<html>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVerifier(t, tt.handler)

			err := v.Verify(context.Background(), "tok", domain.CaptchaActionContact, "")

			assert.True(t, domain.IsUnavailable(err))
		})
	}
}

func TestVerify_Disabled(t *testing.T) {
	v, err := New(config.RecaptchaConfig{Enabled: false}, nil, nil)
	require.NoError(t, err)

	assert.NoError(t, v.Verify(context.Background(), "", domain.CaptchaActionContact, ""))
}

func TestNew_RequiresClientWhenEnabled(t *testing.T) {
	_, err := New(config.RecaptchaConfig{Enabled: true, Secret: "x"}, nil, nil)

	assert.Error(t, err)
}

func TestNew_DefaultsScore(t *testing.T) {
	v, err := New(config.RecaptchaConfig{}, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, DefaultMinScore, v.minScore, 0.0001)
}
