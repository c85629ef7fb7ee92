package dto

import (
	"encoding/json"
	"time"

	"github.com/plazasales/storefront/internal/domain"
)

// ProductsQuery is the product listing query. Singular and plural filters are
// both accepted; the singular one wins.
type ProductsQuery struct {
	Page          int    `form:"page" json:"page" validate:"omitempty,gte=1"`
	Limit         int    `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
	Search        string `form:"search" json:"search" validate:"max=200"`
	Brand         string `form:"brand" json:"brand" validate:"max=100,slugs"`
	Brands        string `form:"brands" json:"brands" validate:"max=500,slugs"`
	Category      string `form:"category" json:"category" validate:"max=100,slugs"`
	Categories    string `form:"categories" json:"categories" validate:"max=500,slugs"`
	Subcategory   string `form:"subcategory" json:"subcategory" validate:"max=100,slugs"`
	Subcategories string `form:"subcategories" json:"subcategories" validate:"max=500,slugs"`
	Technology    string `form:"technology" json:"technology" validate:"max=100"`
}

// Filter converts the query to the domain filter.
func (q ProductsQuery) Filter() domain.ProductFilter {
	return domain.ProductFilter{
		Page:          q.Page,
		Limit:         q.Limit,
		Search:        q.Search,
		Brand:         q.Brand,
		Brands:        q.Brands,
		Category:      q.Category,
		Categories:    q.Categories,
		Subcategory:   q.Subcategory,
		Subcategories: q.Subcategories,
		Technology:    q.Technology,
	}
}

// Ref is a short reference to a brand, category or subcategory.
type Ref struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}

// ProductResponse is a product as rendered in listings and detail pages.
type ProductResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Summary       string    `json:"summary,omitempty"`
	Description   string    `json:"description,omitempty"`
	Specification string    `json:"specification,omitempty"`
	ProductType   string    `json:"productType"`
	Images        []string  `json:"images"`
	Brand         *Ref      `json:"brand,omitempty"`
	Category      *Ref      `json:"category,omitempty"`
	Subcategory   *Ref      `json:"subcategory,omitempty"`
	Technologies  []string  `json:"technologies"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

// NewProductResponse converts a domain product.
func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Summary:       p.Summary,
		Description:   p.Description,
		Specification: p.Specification,
		ProductType:   string(p.ProductType),
		Images:        orEmpty(p.Images),
		Brand:         brandRef(p.Brand),
		Category:      categoryRef(p.Category),
		Subcategory:   categoryRef(p.Subcategory),
		Technologies:  orEmpty(p.Technologies),
		CreatedAt:     p.CreatedAt,
	}
}

func brandRef(b *domain.BrandRef) *Ref {
	if b == nil {
		return nil
	}

	return &Ref{ID: b.ID, Name: b.Name, Slug: b.Slug, Image: b.Logo}
}

func categoryRef(c *domain.CategoryRef) *Ref {
	if c == nil {
		return nil
	}

	return &Ref{ID: c.ID, Name: c.Title, Slug: c.Slug}
}

// CategoryResponse is a category with its subcategories.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Slug          string                `json:"slug"`
	Image         string                `json:"image,omitempty"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// SubcategoryResponse is a subcategory facet.
type SubcategoryResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	CategorySlug string `json:"categorySlug,omitempty"`
}

// NewCategoryResponse converts a domain category.
func NewCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:            c.ID,
		Title:         c.Title,
		Slug:          c.Slug,
		Image:         c.Image,
		Subcategories: mapSlice(c.Subcategories, NewSubcategoryResponse),
	}
}

// NewSubcategoryResponse converts a domain subcategory.
func NewSubcategoryResponse(s domain.Subcategory) SubcategoryResponse {
	return SubcategoryResponse(s)
}

// BrandResponse is a brand card.
type BrandResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Logo        string             `json:"logo,omitempty"`
	Description string             `json:"description,omitempty"`
	USP         string             `json:"usp,omitempty"`
	Categories  []CategoryResponse `json:"categories"`
}

// NewBrandResponse converts a domain brand.
func NewBrandResponse(b domain.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Logo:        b.Logo,
		Description: b.Description,
		USP:         b.USP,
		Categories:  mapSlice(b.Categories, NewCategoryResponse),
	}
}

// BrandsResponse is the brands page payload.
type BrandsResponse struct {
	Brands []BrandResponse `json:"brands"`
}

// NewBrandsResponse converts the brand list.
func NewBrandsResponse(brands []domain.Brand) *BrandsResponse {
	return &BrandsResponse{Brands: mapSlice(brands, NewBrandResponse)}
}

// AdResponse is an advertisement slot.
type AdResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Link      string    `json:"link,omitempty"`
	Placement string    `json:"placement,omitempty"`
	StartsAt  time.Time `json:"startsAt,omitzero"`
	EndsAt    time.Time `json:"endsAt,omitzero"`
}

// NewAdResponse converts a domain ad.
func NewAdResponse(a domain.Ad) AdResponse {
	return AdResponse(a)
}

// HomePageResponse is the home page payload.
type HomePageResponse struct {
	LatestProducts []ProductResponse     `json:"latestProducts"`
	Categories     []CategoryResponse    `json:"categories"`
	Brands         []BrandResponse       `json:"brands"`
	Blogs          []BlogSummaryResponse `json:"blogs"`
	JSONLD         json.RawMessage       `json:"jsonLd,omitempty"`
}

// NewHomePageResponse converts the composed home page.
func NewHomePageResponse(p *domain.HomePage) *HomePageResponse {
	return &HomePageResponse{
		LatestProducts: mapSlice(p.LatestProducts, NewProductResponse),
		Categories:     mapSlice(p.Categories, NewCategoryResponse),
		Brands:         mapSlice(p.Brands, NewBrandResponse),
		Blogs:          mapSlice(p.Blogs, NewBlogSummaryResponse),
		JSONLD:         rawJSON(p.SiteJSONLD),
	}
}

// AppliedFilter echoes the resolved product filter.
type AppliedFilter struct {
	Search      string   `json:"search,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Technology  string   `json:"technology,omitempty"`
}

// ProductsPageResponse is the product listing payload with its facets.
type ProductsPageResponse struct {
	Products      []ProductResponse     `json:"products"`
	Pagination    Pagination            `json:"pagination"`
	Filter        AppliedFilter         `json:"filter"`
	Brands        []BrandResponse       `json:"brands"`
	Categories    []CategoryResponse    `json:"categories"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	Ads           []AdResponse          `json:"ads"`
}

// NewProductsPageResponse converts the composed products page.
func NewProductsPageResponse(p *domain.ProductsPage) *ProductsPageResponse {
	return &ProductsPageResponse{
		Products:   mapSlice(p.Products, NewProductResponse),
		Pagination: NewPagination(p.Filter.Page, p.Filter.Limit, p.Total, p.TotalPages),
		Filter: AppliedFilter{
			Search:      p.Filter.Search,
			Brand:       p.Filter.Brand,
			Categories:  p.Filter.Categories,
			Subcategory: p.Filter.Subcategory,
			Technology:  p.Filter.Technology,
		},
		Brands:        mapSlice(p.Brands, NewBrandResponse),
		Categories:    mapSlice(p.Categories, NewCategoryResponse),
		Subcategories: mapSlice(p.Subcategories, NewSubcategoryResponse),
		Ads:           mapSlice(p.Ads, NewAdResponse),
	}
}

// DownloadResponse is a downloadable product file.
type DownloadResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Summary      string           `json:"summary,omitempty"`
	FileType     string           `json:"fileType"`
	Version      string           `json:"version,omitempty"`
	Size         string           `json:"size,omitempty"`
	ReleasedOn   time.Time        `json:"releasedOn,omitzero"`
	Platforms    []string         `json:"platforms,omitempty"`
	DownloadURL  string           `json:"downloadUrl"`
	Mirrors      []MirrorResponse `json:"mirrors,omitempty"`
	MinOSVersion string           `json:"minOsVersion,omitempty"`
	Deprecated   bool             `json:"deprecated,omitempty"`
	Note         string           `json:"note,omitempty"`
}

// NewDownloadResponse converts a domain download. Size is humanized.
func NewDownloadResponse(d domain.Download) DownloadResponse {
	return DownloadResponse{
		ID:           d.ID,
		Title:        d.Title,
		Summary:      d.Summary,
		FileType:     d.FileType,
		Version:      d.Version,
		Size:         domain.FormatFileSize(d.SizeBytes),
		ReleasedOn:   d.ReleasedOn,
		Platforms:    d.Platforms,
		DownloadURL:  d.DownloadURL,
		Mirrors:      mapSlice(d.Mirrors, NewMirrorResponse),
		MinOSVersion: d.MinOSVersion,
		Deprecated:   d.Deprecated,
		Note:         d.Note,
	}
}

// MirrorResponse is an alternative download location.
type MirrorResponse struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NewMirrorResponse converts a domain mirror.
func NewMirrorResponse(m domain.Mirror) MirrorResponse {
	return MirrorResponse(m)
}

// DownloadsResponse is the tabbed downloads section.
type DownloadsResponse struct {
	Software   []DownloadResponse `json:"software"`
	Manuals    []DownloadResponse `json:"manuals"`
	CAD        []DownloadResponse `json:"cadDrawings"`
	Other      []DownloadResponse `json:"other"`
	DefaultTab string             `json:"defaultTab,omitempty"`
}

// ProductDetailResponse is the product page payload.
type ProductDetailResponse struct {
	Product   ProductResponse     `json:"product"`
	Related   []ProductResponse   `json:"relatedProducts"`
	Pricing   *domain.PricingPlan `json:"pricing,omitempty"`
	Downloads DownloadsResponse   `json:"downloads"`
	SEO       SEOResponse         `json:"seo"`
}

// NewProductDetailResponse converts the composed product page.
func NewProductDetailResponse(p *domain.ProductDetailPage) *ProductDetailResponse {
	return &ProductDetailResponse{
		Product: NewProductResponse(p.Product),
		Related: mapSlice(p.Related, NewProductResponse),
		Pricing: p.Pricing,
		Downloads: DownloadsResponse{
			Software:   mapSlice(p.Downloads.Software, NewDownloadResponse),
			Manuals:    mapSlice(p.Downloads.Manuals, NewDownloadResponse),
			CAD:        mapSlice(p.Downloads.CAD, NewDownloadResponse),
			Other:      mapSlice(p.Downloads.Other, NewDownloadResponse),
			DefaultTab: p.Downloads.DefaultTab,
		},
		SEO: NewSEOResponse(p.SEO),
	}
}

// BrandDetailResponse is the brand page payload. SaaS brands carry pricing
// plans; the others carry popular products.
type BrandDetailResponse struct {
	Brand           BrandResponse        `json:"brand"`
	IsSaaS          bool                 `json:"isSaas"`
	Pricing         []domain.PricingPlan `json:"pricing"`
	PopularProducts []ProductResponse    `json:"popularProducts"`
}

// NewBrandDetailResponse converts the composed brand page.
func NewBrandDetailResponse(p *domain.BrandDetailPage) *BrandDetailResponse {
	return &BrandDetailResponse{
		Brand:           NewBrandResponse(p.Brand),
		IsSaaS:          p.IsSaaS,
		Pricing:         orEmpty(p.Pricing),
		PopularProducts: mapSlice(p.PopularProducts, NewProductResponse),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func rawJSON(b []byte) json.RawMessage {
	if len(b) == 0 || !json.Valid(b) {
		return nil
	}

	return json.RawMessage(b)
}
