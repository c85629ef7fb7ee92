package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/plazasales/storefront/internal/adapters/clients"
	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

// Backend REST paths.
const (
	pathProducts    = "/product/get-all-products"
	pathSearch      = "/product/search"
	pathProduct     = "/product/"
	pathCategories  = "/category/get-all-categories"
	pathBrands      = "/brand/get-all-brands"
	pathBrand       = "/brand/"
	pathBlogs       = "/blog/get-all-blogs"
	pathBlog        = "/blog/"
	pathCareers     = "/career/get-all-careers"
	pathCareer      = "/career/"
	pathApply       = "/career/apply"
	pathContact     = "/contact"
	pathInquiry     = "/inquiry"
	pathNewsletter  = "/newsletter/subscribe"
	pathAds         = "/ads/get-ads"
	pathAd          = "/ads/"
	pathSEO         = "/seo-metadata"
	pathSiteSEO     = "/seo-metadata/site-seo"
	headerRecaptcha = "X-Recaptcha-Token"
)

// Backend adapts the storefront REST API to the downstream ports.
type Backend struct {
	BaseAdapter
}

var (
	_ ports.CatalogClient    = (*Backend)(nil)
	_ ports.BrandClient      = (*Backend)(nil)
	_ ports.BlogClient       = (*Backend)(nil)
	_ ports.CareerClient     = (*Backend)(nil)
	_ ports.AdClient         = (*Backend)(nil)
	_ ports.SEOClient        = (*Backend)(nil)
	_ ports.SubmissionClient = (*Backend)(nil)
	_ ports.HealthChecker    = (*Backend)(nil)
)

// NewBackend creates the backend adapter. Panics if client is nil.
func NewBackend(client *clients.Client, logger *slog.Logger) *Backend {
	if client == nil {
		panic("acl.NewBackend: client is required")
	}

	return &Backend{BaseAdapter: NewBaseAdapter(client, logger)}
}

func pageValues(page, limit int) url.Values {
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
}

func escape(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}

// ListProducts implements ports.CatalogClient.
func (b *Backend) ListProducts(ctx context.Context, f domain.NormalizedFilter) (*domain.ProductPage, error) {
	q := pageValues(f.Page, f.Limit)
	path := pathProducts

	if f.IsSearch() {
		path = pathSearch
		q.Set("search", f.Search)
	}

	if f.Brand != "" {
		q.Set("brand", f.Brand)
	}
	if len(f.Categories) == 1 {
		q.Set("category", f.Categories[0])
	} else if len(f.Categories) > 1 {
		q.Set("categories", strings.Join(f.Categories, ","))
	}
	if f.Subcategory != "" {
		q.Set("subcategory", f.Subcategory)
	}
	if f.Technology != "" {
		q.Set("technology", f.Technology)
	}

	var env productsEnvelope
	if err := b.getJSON(ctx, path, q, target{operation: "list products"}, &env); err != nil {
		return nil, err
	}

	return &domain.ProductPage{
		Products: TranslateSlice(env.Data.Products, toProduct),
		Total:    env.Data.Total,
	}, nil
}

// GetProduct implements ports.CatalogClient.
func (b *Backend) GetProduct(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	var env productEnvelope
	t := target{operation: "get product", entity: "product", key: slug}

	if err := b.getJSON(ctx, pathProduct+escape(slug), nil, t, &env); err != nil {
		return nil, err
	}

	if env.Product.Slug == "" && env.Product.ID == "" {
		return nil, domain.NewNotFoundError("product", slug)
	}

	related := env.SimilarProducts
	if len(related) == 0 {
		related = env.RelatedProducts
	}

	return &domain.ProductDetail{
		Product: toProduct(&env.Product),
		Related: TranslateSlice(related, toProduct),
	}, nil
}

// ListCategories implements ports.CatalogClient.
func (b *Backend) ListCategories(ctx context.Context, q domain.PageQuery) (*domain.CategoryPage, error) {
	var env categoriesEnvelope
	if err := b.getJSON(ctx, pathCategories, pageValues(q.Page, q.Limit), target{operation: "list categories"}, &env); err != nil {
		return nil, err
	}

	return &domain.CategoryPage{
		Categories: TranslateSlice(env.Categories, toCategory),
		Total:      env.Total,
	}, nil
}

// ListBrands implements ports.BrandClient.
func (b *Backend) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var env brandsEnvelope
	if err := b.getJSON(ctx, pathBrands, nil, target{operation: "list brands"}, &env); err != nil {
		return nil, err
	}

	return TranslateSlice(env.Data.Brands, toBrand), nil
}

// GetBrand implements ports.BrandClient.
func (b *Backend) GetBrand(ctx context.Context, slug string) (*domain.Brand, error) {
	var env brandEnvelope
	t := target{operation: "get brand", entity: "brand", key: slug}

	if err := b.getJSON(ctx, pathBrand+escape(slug), nil, t, &env); err != nil {
		return nil, err
	}

	if env.Brand.Slug == "" && env.Brand.ID == "" {
		return nil, domain.NewNotFoundError("brand", slug)
	}

	brand := toBrand(&env.Brand)

	return &brand, nil
}

// ListBlogs implements ports.BlogClient.
func (b *Backend) ListBlogs(ctx context.Context, q domain.PageQuery) (*domain.BlogPage, error) {
	var env blogsEnvelope
	if err := b.getJSON(ctx, pathBlogs, pageValues(q.Page, q.Limit), target{operation: "list blogs"}, &env); err != nil {
		return nil, err
	}

	return &domain.BlogPage{Blogs: TranslateSlice(env.Blogs, toBlog), Total: env.Total}, nil
}

// GetBlog implements ports.BlogClient.
func (b *Backend) GetBlog(ctx context.Context, slug string) (*domain.BlogDetail, error) {
	var env blogEnvelope
	t := target{operation: "get blog", entity: "blog", key: slug}

	if err := b.getJSON(ctx, pathBlog+escape(slug), nil, t, &env); err != nil {
		return nil, err
	}

	if env.Blog.Slug == "" && env.Blog.ID == "" {
		return nil, domain.NewNotFoundError("blog", slug)
	}

	return &domain.BlogDetail{
		Blog:    toBlog(&env.Blog),
		Similar: TranslateSlice(env.SimilarBlogs, toBlog),
	}, nil
}

// ListCareers implements ports.CareerClient.
func (b *Backend) ListCareers(ctx context.Context) ([]domain.Career, error) {
	var env careersEnvelope
	if err := b.getJSON(ctx, pathCareers, nil, target{operation: "list careers"}, &env); err != nil {
		return nil, err
	}

	return TranslateSlice(env.Careers, toCareer), nil
}

// GetCareer implements ports.CareerClient.
func (b *Backend) GetCareer(ctx context.Context, slug string) (*domain.Career, error) {
	var env careerEnvelope
	t := target{operation: "get career", entity: "career", key: slug}

	if err := b.getJSON(ctx, pathCareer+escape(slug), nil, t, &env); err != nil {
		return nil, err
	}

	if env.Career.Slug == "" && env.Career.ID == "" {
		return nil, domain.NewNotFoundError("career", slug)
	}

	c := toCareer(&env.Career)

	return &c, nil
}

// SubmitApplication implements ports.CareerClient. The backend takes the
// same multipart form the browser used to send, with attachment URLs.
func (b *Backend) SubmitApplication(ctx context.Context, app *domain.JobApplication) error {
	fields := map[string]string{
		"name":           app.Name,
		"email":          app.Email,
		"phone":          app.Phone,
		"position":       app.Position,
		"careerId":       app.CareerID,
		"resumeUrl":      app.ResumeURL,
		"coverLetterUrl": app.CoverLetterURL,
	}

	return b.postMultipart(ctx, pathApply, fields, target{operation: "submit application", entity: "career", key: app.CareerID}, nil)
}

// ListAds implements ports.AdClient.
func (b *Backend) ListAds(ctx context.Context, q domain.PageQuery) (*domain.AdPage, error) {
	var env adsEnvelope
	if err := b.getJSON(ctx, pathAds, pageValues(q.Page, q.Limit), target{operation: "list ads"}, &env); err != nil {
		return nil, err
	}

	return &domain.AdPage{Ads: TranslateSlice(env.Data.Ads, toAd), Total: env.Data.Total}, nil
}

// RecordClick implements ports.AdClient.
func (b *Backend) RecordClick(ctx context.Context, id, captchaToken string) error {
	return b.adEvent(ctx, id, "click", captchaToken)
}

// RecordImpression implements ports.AdClient.
func (b *Backend) RecordImpression(ctx context.Context, id, captchaToken string) error {
	return b.adEvent(ctx, id, "impression", captchaToken)
}

func (b *Backend) adEvent(ctx context.Context, id, event, token string) error {
	t := target{operation: "record ad " + event, entity: "ad", key: id}

	return b.postJSON(ctx, pathAd+escape(id)+"/"+event, struct{}{}, recaptchaHeader(token), t, nil)
}

// ListSEO implements ports.SEOClient.
func (b *Backend) ListSEO(ctx context.Context, q domain.SEOQuery) (*domain.SEOPage, error) {
	v := pageValues(q.Page, q.Limit)
	v.Set("search", q.Search)
	if q.EntityType != "" {
		v.Set("entityType", q.EntityType)
	}

	var env seoListEnvelope
	if err := b.getJSON(ctx, pathSEO, v, target{operation: "list seo metadata"}, &env); err != nil {
		return nil, err
	}

	return &domain.SEOPage{Records: TranslateSlice(env.SEOMetadata, toSEO), Total: env.Total}, nil
}

// GetSEO implements ports.SEOClient.
func (b *Backend) GetSEO(ctx context.Context, slug string) (*domain.SEOMetadata, error) {
	var env seoEnvelope
	t := target{operation: "get seo metadata", entity: "seo metadata", key: slug}

	if err := b.getJSON(ctx, pathSEO+"/"+escape(slug), nil, t, &env); err != nil {
		return nil, err
	}

	if env.SEOMetadata.Slug == "" && env.SEOMetadata.ID == "" {
		return nil, domain.NewNotFoundError("seo metadata", slug)
	}

	m := toSEO(&env.SEOMetadata)

	return &m, nil
}

// SiteSEO implements ports.SEOClient.
func (b *Backend) SiteSEO(ctx context.Context) ([]domain.SEOMetadata, error) {
	var env seoListEnvelope
	if err := b.getJSON(ctx, pathSiteSEO, nil, target{operation: "get site seo"}, &env); err != nil {
		return nil, err
	}

	return TranslateSlice(env.SEOMetadata, toSEO), nil
}

type contactBody struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phoneNo"`
	Address  string `json:"address,omitempty"`
	Message  string `json:"message"`
	Purpose  string `json:"purpose,omitempty"`
}

type inquiryBody struct {
	ProductID string `json:"productId,omitempty"`
	BrandID   string `json:"brandId,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	Message   string `json:"message"`
}

type newsletterBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubmitContact implements ports.SubmissionClient.
func (b *Backend) SubmitContact(ctx context.Context, msg *domain.ContactMessage, captchaToken string) error {
	body := contactBody{
		Fullname: msg.Fullname,
		Email:    msg.Email,
		PhoneNo:  msg.PhoneNo,
		Address:  msg.Address,
		Message:  msg.Message,
		Purpose:  msg.Purpose,
	}

	return b.postJSON(ctx, pathContact, body, recaptchaHeader(captchaToken), target{operation: "submit contact"}, nil)
}

// SubmitInquiry implements ports.SubmissionClient.
func (b *Backend) SubmitInquiry(ctx context.Context, inq *domain.Inquiry, captchaToken string) error {
	body := inquiryBody{
		ProductID: inq.ProductID,
		BrandID:   inq.BrandID,
		Name:      inq.Name,
		Email:     inq.Email,
		Phone:     inq.Phone,
		Address:   inq.Address,
		Message:   inq.Message,
	}

	return b.postJSON(ctx, pathInquiry, body, recaptchaHeader(captchaToken), target{operation: "submit inquiry"}, nil)
}

// SubscribeNewsletter implements ports.SubmissionClient. An address the
// backend already knows comes back as a conflict.
func (b *Backend) SubscribeNewsletter(ctx context.Context, s *domain.NewsletterSignup) error {
	body := newsletterBody{Name: s.Name, Email: s.Email}

	return b.postJSON(ctx, pathNewsletter, body, nil, target{operation: "subscribe newsletter", entity: "newsletter subscription"}, nil)
}

func recaptchaHeader(token string) http.Header {
	if token == "" {
		return nil
	}

	return http.Header{headerRecaptcha: {token}}
}
