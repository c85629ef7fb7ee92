package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

// Ad events, as counted by the ad events metric.
const (
	adEventClick      = "click"
	adEventImpression = "impression"
)

var _ ports.AdService = (*AdService)(nil)

// AdService lists ads and forwards ad events.
type AdService struct {
	base

	ads     ports.AdClient
	captcha ports.CaptchaVerifier
}

// NewAdService creates an AdService.
func NewAdService(ads ports.AdClient, captcha ports.CaptchaVerifier, cfg *ServiceConfig) *AdService {
	return &AdService{
		base:    newBase(cfg, "app.AdService"),
		ads:     ads,
		captcha: captcha,
	}
}

// Ads lists one page of ads.
func (s *AdService) Ads(ctx context.Context, q domain.PageQuery) (*domain.AdPage, error) {
	page, err := s.ads.ListAds(ctx, q.WithDefaults(listingAdsLimit))
	if err != nil {
		return nil, fmt.Errorf("listing ads: %w", err)
	}

	page.Ads = nonNil(page.Ads)

	return page, nil
}

// RecordAdClick forwards a click after verifying the captcha.
func (s *AdService) RecordAdClick(ctx context.Context, id string, proof domain.CaptchaProof) error {
	return s.record(ctx, adEventClick, domain.CaptchaActionAdClick, id, proof, s.ads.RecordClick)
}

// RecordAdImpression forwards an impression after verifying the captcha.
func (s *AdService) RecordAdImpression(ctx context.Context, id string, proof domain.CaptchaProof) error {
	return s.record(ctx, adEventImpression, domain.CaptchaActionAdImpression, id, proof, s.ads.RecordImpression)
}

func (s *AdService) record(
	ctx context.Context,
	event, action, id string,
	proof domain.CaptchaProof,
	forward func(ctx context.Context, id, captchaToken string) error,
) (err error) {
	defer func() { s.metrics.AdEvent(event, outcome(err)) }()

	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "ad id is required")
	}

	if err := s.captcha.Verify(ctx, proof.Token, action, proof.RemoteIP); err != nil {
		return err
	}

	if err := forward(ctx, id, proof.Token); err != nil {
		return fmt.Errorf("recording ad %s: %w", event, err)
	}

	return nil
}
