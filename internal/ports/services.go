// Package ports defines the contracts between the application layer and the
// adapters. Every method takes a context first and returns domain types;
// failures are reported with the domain error taxonomy.
package ports

import (
	"context"
	"io"
	"time"

	"github.com/plazasales/storefront/internal/domain"
)

// CatalogClient reads products and categories from the storefront backend.
type CatalogClient interface {
	// ListProducts returns one page of the product listing. When the filter
	// carries a search term the backend search endpoint is used instead.
	ListProducts(ctx context.Context, filter domain.NormalizedFilter) (*domain.ProductPage, error)

	// GetProduct returns the product and its related products.
	// Returns domain.ErrNotFound for an unknown slug.
	GetProduct(ctx context.Context, slug string) (*domain.ProductDetail, error)

	ListCategories(ctx context.Context, q domain.PageQuery) (*domain.CategoryPage, error)
}

// BrandClient reads brands.
type BrandClient interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	GetBrand(ctx context.Context, slug string) (*domain.Brand, error)
}

// BlogClient reads blogs.
type BlogClient interface {
	ListBlogs(ctx context.Context, q domain.PageQuery) (*domain.BlogPage, error)
	GetBlog(ctx context.Context, slug string) (*domain.BlogDetail, error)
}

// CareerClient reads openings and forwards applications.
type CareerClient interface {
	ListCareers(ctx context.Context) ([]domain.Career, error)
	GetCareer(ctx context.Context, slug string) (*domain.Career, error)

	// SubmitApplication forwards an application whose attachments are already
	// stored; only ResumeURL and CoverLetterURL are sent.
	SubmitApplication(ctx context.Context, app *domain.JobApplication) error
}

// AdClient reads ads and records engagement. captchaToken is forwarded as is.
type AdClient interface {
	ListAds(ctx context.Context, q domain.PageQuery) (*domain.AdPage, error)
	RecordClick(ctx context.Context, id, captchaToken string) error
	RecordImpression(ctx context.Context, id, captchaToken string) error
}

// SEOClient reads search-engine metadata.
type SEOClient interface {
	ListSEO(ctx context.Context, q domain.SEOQuery) (*domain.SEOPage, error)
	GetSEO(ctx context.Context, slug string) (*domain.SEOMetadata, error)
	SiteSEO(ctx context.Context) ([]domain.SEOMetadata, error)
}

// SubmissionClient forwards visitor submissions.
type SubmissionClient interface {
	SubmitContact(ctx context.Context, msg *domain.ContactMessage, captchaToken string) error
	SubmitInquiry(ctx context.Context, inq *domain.Inquiry, captchaToken string) error
	SubscribeNewsletter(ctx context.Context, signup *domain.NewsletterSignup) error
}

// CaptchaVerifier checks a reCAPTCHA token for an expected action.
// A rejected token yields a *domain.CaptchaError.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, action, remoteIP string) error
}

// StoredObject describes an uploaded file.
type StoredObject struct {
	Key  string
	Size int64
}

// FileStore keeps application attachments in object storage.
type FileStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (*StoredObject, error)
	Delete(ctx context.Context, key string) error

	// PresignGet returns a time-limited download URL for key.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// VisitorStore persists anonymous visitor state.
type VisitorStore interface {
	// Load returns the visitor's state; an unknown visitor yields an empty state.
	Load(ctx context.Context, visitorID string) (*domain.VisitorState, error)

	// SaveJob and RemoveJob are idempotent.
	SaveJob(ctx context.Context, visitorID string, job domain.SavedJob) error
	RemoveJob(ctx context.Context, visitorID, careerID string) error

	MarkNewsletterDismissed(ctx context.Context, visitorID string, at time.Time) error

	// MarkNewsletterSubscribed records the first subscription time; later calls keep it.
	MarkNewsletterSubscribed(ctx context.Context, visitorID string, at time.Time) error
}

// SpecSheetInput is everything rendered into a product specification workbook.
type SpecSheetInput struct {
	Product   *domain.Product
	Pricing   *domain.PricingPlan
	Downloads domain.DownloadGroups
}

// SpecSheetRenderer renders a product specification workbook.
type SpecSheetRenderer interface {
	Render(ctx context.Context, in *SpecSheetInput, w io.Writer) error
}
