package ports

import (
	"context"
	"io"

	"github.com/plazasales/storefront/internal/domain"
)

// CatalogService composes the home, product listing and product pages.
type CatalogService interface {
	HomePage(ctx context.Context) (*domain.HomePage, error)
	ProductsPage(ctx context.Context, filter domain.ProductFilter) (*domain.ProductsPage, error)
	ProductDetail(ctx context.Context, slug string) (*domain.ProductDetailPage, error)

	// ProductSpecSheet writes the product's XLSX specification to w.
	ProductSpecSheet(ctx context.Context, slug string, w io.Writer) error
}

// BrandService composes the brand pages.
type BrandService interface {
	BrandsPage(ctx context.Context) ([]domain.Brand, error)
	BrandDetail(ctx context.Context, slug string) (*domain.BrandDetailPage, error)
}

// BlogService composes the blog pages.
type BlogService interface {
	BlogsPage(ctx context.Context, q domain.PageQuery) (*domain.BlogListPage, error)
	BlogDetail(ctx context.Context, slug string) (*domain.BlogDetailPage, error)
}

// CareerService composes the career pages and runs the application flow.
type CareerService interface {
	CareersPage(ctx context.Context) ([]domain.CareerView, error)
	CareerDetail(ctx context.Context, slug string) (*domain.CareerView, error)
	ToggleSavedJob(ctx context.Context, slug string) (*domain.SavedJobsView, error)
	SavedJobs(ctx context.Context) ([]domain.SavedJob, error)
	Apply(ctx context.Context, slug string, form *domain.ApplicationForm, proof domain.CaptchaProof) error
}

// SubmissionService handles contact, inquiry and newsletter flows.
type SubmissionService interface {
	SubmitContact(ctx context.Context, form *domain.ContactForm, proof domain.CaptchaProof) error
	SubmitInquiry(ctx context.Context, inq *domain.Inquiry, proof domain.CaptchaProof) error
	SubscribeNewsletter(ctx context.Context, signup *domain.NewsletterSignup) error
	DismissNewsletter(ctx context.Context) error
	NewsletterStatus(ctx context.Context) (*domain.NewsletterStatus, error)
}

// AdService lists ads and forwards engagement events.
type AdService interface {
	Ads(ctx context.Context, q domain.PageQuery) (*domain.AdPage, error)
	RecordAdClick(ctx context.Context, id string, proof domain.CaptchaProof) error
	RecordAdImpression(ctx context.Context, id string, proof domain.CaptchaProof) error
}

// SEOService serves SEO metadata to the rendering layer.
type SEOService interface {
	ListSEO(ctx context.Context, q domain.SEOQuery) (*domain.SEOPage, error)
	SEOBySlug(ctx context.Context, slug string) (*domain.SEOMetadata, error)
	SiteSEO(ctx context.Context) (*domain.SiteSEO, error)
}
