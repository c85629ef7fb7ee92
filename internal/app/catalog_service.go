package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/richtext"
	"github.com/plazasales/storefront/internal/ports"
)

// Home and listing page sizes.
const (
	homeProductsLimit   = 8
	homeCategoriesLimit = 10
	homeBlogsLimit      = 6
	listingAdsLimit     = 10
)

var _ ports.CatalogService = (*CatalogService)(nil)

// CatalogService composes the home, product listing and product pages.
type CatalogService struct {
	base

	catalog ports.CatalogClient
	brands  ports.BrandClient
	blogs   ports.BlogClient
	ads     ports.AdClient
	seo     ports.SEOClient
	flags   ports.FeatureFlags
	sheets  ports.SpecSheetRenderer
}

// CatalogDeps are the ports CatalogService reads from.
type CatalogDeps struct {
	Catalog ports.CatalogClient
	Brands  ports.BrandClient
	Blogs   ports.BlogClient
	Ads     ports.AdClient
	SEO     ports.SEOClient
	Flags   ports.FeatureFlags
	Sheets  ports.SpecSheetRenderer
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(deps CatalogDeps, cfg *ServiceConfig) *CatalogService {
	return &CatalogService{
		base:    newBase(cfg, "app.CatalogService"),
		catalog: deps.Catalog,
		brands:  deps.Brands,
		blogs:   deps.Blogs,
		ads:     deps.Ads,
		seo:     deps.SEO,
		flags:   deps.Flags,
		sheets:  deps.Sheets,
	}
}

// HomePage fetches every section concurrently. Each section that fails is
// served empty.
func (s *CatalogService) HomePage(ctx context.Context) (*domain.HomePage, error) {
	var (
		products   *domain.ProductPage
		categories *domain.CategoryPage
		brands     []domain.Brand
		blogs      *domain.BlogPage
		site       []domain.SEOMetadata
	)

	err := Compose(ctx, "home", s.degraded("home"),
		Optional("products", &products, func(ctx context.Context) (*domain.ProductPage, error) {
			return s.catalog.ListProducts(ctx, domain.NormalizedFilter{Page: 1, Limit: homeProductsLimit})
		}),
		Optional("categories", &categories, func(ctx context.Context) (*domain.CategoryPage, error) {
			return s.catalog.ListCategories(ctx, domain.PageQuery{Page: 1, Limit: homeCategoriesLimit})
		}),
		Optional("brands", &brands, s.brands.ListBrands),
		Optional("blogs", &blogs, func(ctx context.Context) (*domain.BlogPage, error) {
			return s.blogs.ListBlogs(ctx, domain.PageQuery{Page: 1, Limit: homeBlogsLimit})
		}),
		Optional("site-seo", &site, s.seo.SiteSEO),
	)
	if err != nil {
		return nil, err
	}

	page := &domain.HomePage{
		LatestProducts: []domain.Product{},
		Categories:     []domain.Category{},
		Brands:         []domain.Brand{},
		Blogs:          []domain.BlogSummary{},
	}

	if products != nil {
		page.LatestProducts = nonNil(products.Products)
	}

	if categories != nil {
		page.Categories = nonNil(categories.Categories)
	}

	if brands != nil {
		page.Brands = brands
	}

	if blogs != nil {
		page.Blogs = summarizeBlogs(blogs.Blogs)
	}

	if len(site) > 0 {
		page.SiteJSONLD = site[0].JSONLD
	}

	return page, nil
}

// ProductsPage lists one page of products with the sidebar facets. Products
// and brands are required; ads are dropped when they fail or are disabled.
func (s *CatalogService) ProductsPage(ctx context.Context, filter domain.ProductFilter) (*domain.ProductsPage, error) {
	n := filter.Normalize()

	var (
		products *domain.ProductPage
		brands   []domain.Brand
		ads      *domain.AdPage
	)

	sections := []Section{
		Required("products", &products, func(ctx context.Context) (*domain.ProductPage, error) {
			return s.catalog.ListProducts(ctx, n)
		}),
		Required("brands", &brands, s.brands.ListBrands),
	}

	if s.flags == nil || s.flags.IsEnabled(ctx, ports.FlagProductsPageAds, true) {
		sections = append(sections, Optional("ads", &ads, func(ctx context.Context) (*domain.AdPage, error) {
			return s.ads.ListAds(ctx, domain.PageQuery{Page: 1, Limit: listingAdsLimit})
		}))
	}

	if err := Compose(ctx, "products", s.degraded("products"), sections...); err != nil {
		return nil, err
	}

	page := &domain.ProductsPage{
		Products:      nonNil(products.Products),
		Total:         products.Total,
		TotalPages:    domain.TotalPages(products.Total, n.Limit),
		Filter:        n,
		Brands:        nonNil(brands),
		Categories:    nonNil(domain.FacetCategories(brands, n.Brand)),
		Subcategories: nonNil(domain.FacetSubcategories(brands, n.Brand, n.Categories)),
		Ads:           []domain.Ad{},
	}

	if ads != nil {
		page.Ads = nonNil(ads.Ads)
	}

	return page, nil
}

// ProductDetail returns the product page. SEO metadata falls back to values
// derived from the product when no record exists.
func (s *CatalogService) ProductDetail(ctx context.Context, slug string) (*domain.ProductDetailPage, error) {
	var (
		detail *domain.ProductDetail
		seo    *domain.SEOMetadata
	)

	err := Compose(ctx, "product", s.degraded("product"),
		Required("product", &detail, func(ctx context.Context) (*domain.ProductDetail, error) {
			return s.catalog.GetProduct(ctx, slug)
		}),
		Optional("seo", &seo, func(ctx context.Context) (*domain.SEOMetadata, error) {
			return seoOrNil(ctx, s.seo, slug)
		}),
	)
	if err != nil {
		return nil, err
	}

	p := detail.Product

	page := &domain.ProductDetailPage{
		Product:   p,
		Related:   nonNil(detail.Related),
		Pricing:   pricingOf(&p),
		Downloads: domain.GroupDownloads(p.Downloads),
	}

	if seo != nil {
		page.SEO = *seo
	} else {
		page.SEO = s.productSEO(&p)
	}

	return page, nil
}

// ProductSpecSheet renders the product's specification workbook to w.
func (s *CatalogService) ProductSpecSheet(ctx context.Context, slug string, w io.Writer) error {
	detail, err := s.catalog.GetProduct(ctx, slug)
	if err != nil {
		return fmt.Errorf("loading product: %w", err)
	}

	p := detail.Product

	in := &ports.SpecSheetInput{
		Product:   &p,
		Pricing:   pricingOf(&p),
		Downloads: domain.GroupDownloads(p.Downloads),
	}

	if err := s.sheets.Render(ctx, in, w); err != nil {
		s.log(ctx).ErrorContext(ctx, "rendering spec sheet failed",
			slog.String("slug", slug),
			slog.Any("error", err),
		)

		return fmt.Errorf("rendering spec sheet: %w", err)
	}

	return nil
}

// pricingOf prefers the feature document and falls back to the specification,
// which older products use to carry the plan.
func pricingOf(p *domain.Product) *domain.PricingPlan {
	plan, ok := domain.ParsePricing(p.ProductType, p.Feature)
	if !ok {
		plan, ok = domain.ParsePricing(p.ProductType, p.Specification)
	}

	if !ok {
		return nil
	}

	plan.Key = p.Slug

	return &plan
}

func (s *CatalogService) productSEO(p *domain.Product) domain.SEOMetadata {
	desc := richtext.Description(p.Summary)
	if desc == "" {
		desc = richtext.Description(p.Description)
	}

	m := domain.SEOMetadata{
		Slug:        p.Slug,
		EntityType:  "product",
		Title:       p.Title,
		Description: desc,
		Canonical:   s.url(pathProduct, p.Slug),
	}

	if len(p.Images) > 0 {
		m.OGImage = p.Images[0]
	}

	return m
}

// seoOrNil treats a missing SEO record as absent rather than failed.
func seoOrNil(ctx context.Context, client ports.SEOClient, slug string) (*domain.SEOMetadata, error) {
	m, err := client.GetSEO(ctx, slug)
	if domain.IsNotFound(err) {
		return nil, nil
	}

	return m, err
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
