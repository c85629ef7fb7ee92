package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

const seoPageSize = 10

var _ ports.SEOService = (*SEOService)(nil)

// SEOService serves SEO metadata.
type SEOService struct {
	base

	seo ports.SEOClient
}

// NewSEOService creates an SEOService.
func NewSEOService(seo ports.SEOClient, cfg *ServiceConfig) *SEOService {
	return &SEOService{
		base: newBase(cfg, "app.SEOService"),
		seo:  seo,
	}
}

// ListSEO lists SEO records, optionally filtered by search text and entity type.
func (s *SEOService) ListSEO(ctx context.Context, q domain.SEOQuery) (*domain.SEOPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}

	if q.Limit < 1 {
		q.Limit = seoPageSize
	}

	q.Search = strings.TrimSpace(q.Search)
	q.EntityType = strings.TrimSpace(q.EntityType)

	page, err := s.seo.ListSEO(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing seo: %w", err)
	}

	page.Records = nonNil(page.Records)

	return page, nil
}

// SEOBySlug returns the record for one page or entity.
func (s *SEOService) SEOBySlug(ctx context.Context, slug string) (*domain.SEOMetadata, error) {
	return s.seo.GetSEO(ctx, slug)
}

// SiteSEO returns the site-wide records and the JSON-LD of the first.
func (s *SEOService) SiteSEO(ctx context.Context) (*domain.SiteSEO, error) {
	records, err := s.seo.SiteSEO(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading site seo: %w", err)
	}

	site := &domain.SiteSEO{Records: nonNil(records)}
	if len(records) > 0 {
		site.JSONLD = records[0].JSONLD
	}

	return site, nil
}
