// Package recaptcha verifies reCAPTCHA v3 tokens against the siteverify API.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/plazasales/storefront/internal/adapters/clients"
	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/config"
	"github.com/plazasales/storefront/internal/ports"
)

// DefaultMinScore is used when the configured threshold is zero.
const DefaultMinScore = 0.5

var _ ports.CaptchaVerifier = (*Verifier)(nil)

// Verifier checks tokens through the resilient client. A disabled verifier
// accepts everything.
type Verifier struct {
	client   *clients.Client
	secret   string
	minScore float64
	enabled  bool
	logger   *slog.Logger
}

type siteverifyResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	Hostname    string   `json:"hostname"`
	ChallengeTS string   `json:"challenge_ts"`
	ErrorCodes  []string `json:"error-codes"`
}

// New creates a verifier. client must target the siteverify URL and may be
// nil only when verification is disabled.
func New(cfg config.RecaptchaConfig, client *clients.Client, logger *slog.Logger) (*Verifier, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Enabled && client == nil {
		return nil, fmt.Errorf("recaptcha: client is required when verification is enabled")
	}

	minScore := cfg.MinScore
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	return &Verifier{
		client:   client,
		secret:   cfg.Secret,
		minScore: minScore,
		enabled:  cfg.Enabled,
		logger:   logger,
	}, nil
}

// Verify implements ports.CaptchaVerifier.
func (v *Verifier) Verify(ctx context.Context, token, action, remoteIP string) error {
	if !v.enabled {
		return nil
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.NewCaptchaError(action, "missing token")
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	resp, err := v.client.PostForm(ctx, "", form)
	if err != nil {
		return domain.NewUnavailableError(v.client.ServiceName(), fmt.Sprintf("siteverify: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.NewUnavailableError(v.client.ServiceName(), fmt.Sprintf("siteverify returned %d", resp.StatusCode))
	}

	var out siteverifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&out); err != nil {
		return domain.NewUnavailableError(v.client.ServiceName(), fmt.Sprintf("decoding siteverify: %v", err))
	}

	if err := v.judge(&out, action); err != nil {
		v.logger.WarnContext(ctx, "captcha rejected",
			slog.String("action", action),
			slog.Float64("score", out.Score),
			slog.Any("error_codes", out.ErrorCodes),
		)
		return err
	}

	return nil
}

func (v *Verifier) judge(out *siteverifyResponse, action string) error {
	switch {
	case !out.Success:
		reason := "verification failed"
		if len(out.ErrorCodes) > 0 {
			reason = strings.Join(out.ErrorCodes, ", ")
		}
		return domain.NewCaptchaError(action, reason)

	case out.Score < v.minScore:
		return domain.NewCaptchaError(action, fmt.Sprintf("score %.2f below %.2f", out.Score, v.minScore))

	case action != "" && out.Action != action:
		return domain.NewCaptchaError(action, fmt.Sprintf("action mismatch: got %q", out.Action))
	}

	return nil
}
