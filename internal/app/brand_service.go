package app

import (
	"context"
	"log/slog"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

var _ ports.BrandService = (*BrandService)(nil)

// BrandService composes the brand pages.
type BrandService struct {
	base

	brands ports.BrandClient
}

// NewBrandService creates a BrandService.
func NewBrandService(brands ports.BrandClient, cfg *ServiceConfig) *BrandService {
	return &BrandService{
		base:   newBase(cfg, "app.BrandService"),
		brands: brands,
	}
}

// BrandsPage lists brands. A backend failure yields an empty list.
func (s *BrandService) BrandsPage(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.brands.ListBrands(ctx)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "brand list unavailable", slog.Any("error", err))
		s.metrics.Degraded("brands", "brands")

		return []domain.Brand{}, nil
	}

	return nonNil(brands), nil
}

// BrandDetail returns the brand page. Any backend failure is reported as
// not found, so the page 404s instead of erroring.
func (s *BrandService) BrandDetail(ctx context.Context, slug string) (*domain.BrandDetailPage, error) {
	brand, err := s.brands.GetBrand(ctx, slug)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.log(ctx).WarnContext(ctx, "brand lookup failed",
				slog.String("slug", slug),
				slog.Any("error", err),
			)
		}

		return nil, domain.NewNotFoundError("brand", slug)
	}

	page := &domain.BrandDetailPage{
		Brand:           *brand,
		IsSaaS:          brand.IsSaaS(),
		Pricing:         []domain.PricingPlan{},
		PopularProducts: []domain.Product{},
	}

	if page.IsSaaS {
		page.Pricing = nonNil(domain.BrandPricing(brand))
	} else {
		page.PopularProducts = nonNil(brand.PopularProducts)
	}

	return page, nil
}
