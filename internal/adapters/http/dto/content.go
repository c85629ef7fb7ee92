package dto

import (
	"encoding/json"
	"time"

	"github.com/plazasales/storefront/internal/domain"
)

// MediaAssetResponse is an image or video embedded in a blog.
type MediaAssetResponse struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

// BlogResponse is a full blog post.
type BlogResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	Content     string               `json:"content"`
	Thumbnail   string               `json:"thumbnail,omitempty"`
	Author      string               `json:"author,omitempty"`
	MediaAssets []MediaAssetResponse `json:"mediaAssets"`
	PublishedAt time.Time            `json:"publishedAt,omitzero"`
}

// NewBlogResponse converts a domain blog.
func NewBlogResponse(b domain.Blog) BlogResponse {
	return BlogResponse{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Content:   b.Content,
		Thumbnail: b.Thumbnail,
		Author:    b.Author,
		MediaAssets: mapSlice(b.MediaAssets, func(m domain.MediaAsset) MediaAssetResponse {
			return MediaAssetResponse(m)
		}),
		PublishedAt: b.PublishedAt,
	}
}

// BlogSummaryResponse is a blog card: no body, an excerpt and reading time instead.
type BlogSummaryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Author      string    `json:"author,omitempty"`
	Excerpt     string    `json:"excerpt"`
	ReadingTime int       `json:"readingTime"`
	PublishedAt time.Time `json:"publishedAt,omitzero"`
}

// NewBlogSummaryResponse converts a blog summary.
func NewBlogSummaryResponse(s domain.BlogSummary) BlogSummaryResponse {
	return BlogSummaryResponse{
		ID:          s.Blog.ID,
		Title:       s.Blog.Title,
		Slug:        s.Blog.Slug,
		Thumbnail:   s.Blog.Thumbnail,
		Author:      s.Blog.Author,
		Excerpt:     s.Excerpt,
		ReadingTime: s.ReadingTime,
		PublishedAt: s.Blog.PublishedAt,
	}
}

// NewBlogListResponse converts a page of blog summaries.
func NewBlogListResponse(p *domain.BlogListPage, limit int) *PaginatedResponse[BlogSummaryResponse] {
	return NewPaginatedResponse(p.Blogs, NewPagination(p.Page, limit, p.Total, p.TotalPages), NewBlogSummaryResponse)
}

// BlogDetailResponse is the blog page payload.
type BlogDetailResponse struct {
	Blog        BlogResponse          `json:"blog"`
	ReadingTime int                   `json:"readingTime"`
	WordCount   int                   `json:"wordCount"`
	Similar     []BlogSummaryResponse `json:"similarBlogs"`
	SEO         SEOResponse           `json:"seo"`
}

// NewBlogDetailResponse converts the composed blog page.
func NewBlogDetailResponse(p *domain.BlogDetailPage) *BlogDetailResponse {
	return &BlogDetailResponse{
		Blog:        NewBlogResponse(p.Blog),
		ReadingTime: p.ReadingTime,
		WordCount:   p.WordCount,
		Similar:     mapSlice(p.Similar, NewBlogSummaryResponse),
		SEO:         NewSEOResponse(p.SEO),
	}
}

const seoPageSize = 10

// SEOQuery is the SEO listing query.
type SEOQuery struct {
	Page       int    `form:"page" json:"page" validate:"omitempty,gte=1"`
	Limit      int    `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
	Search     string `form:"search" json:"search" validate:"max=200"`
	EntityType string `form:"entityType" json:"entityType" validate:"max=50"`
}

// Query converts to the domain query with the listing defaults applied.
func (q SEOQuery) Query() domain.SEOQuery {
	page := (PageRequest{Page: q.Page, Limit: q.Limit}).Query().WithDefaults(seoPageSize)

	return domain.SEOQuery{Page: page.Page, Limit: page.Limit, Search: q.Search, EntityType: q.EntityType}
}

// SEOResponse is the metadata a page renders into its head.
type SEOResponse struct {
	ID          string          `json:"id,omitempty"`
	Slug        string          `json:"slug,omitempty"`
	EntityType  string          `json:"entityType,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Keywords    []string        `json:"keywords"`
	Canonical   string          `json:"canonical,omitempty"`
	OGImage     string          `json:"ogImage,omitempty"`
	JSONLD      json.RawMessage `json:"jsonLd,omitempty"`
}

// NewSEOResponse converts domain SEO metadata. Invalid JSON-LD is dropped.
func NewSEOResponse(m domain.SEOMetadata) SEOResponse {
	return SEOResponse{
		ID:          m.ID,
		Slug:        m.Slug,
		EntityType:  m.EntityType,
		Title:       m.Title,
		Description: m.Description,
		Keywords:    orEmpty(m.Keywords),
		Canonical:   m.Canonical,
		OGImage:     m.OGImage,
		JSONLD:      rawJSON(m.JSONLD),
	}
}

// SiteSEOResponse is the site-wide SEO payload.
type SiteSEOResponse struct {
	Records []SEOResponse   `json:"records"`
	JSONLD  json.RawMessage `json:"jsonLd,omitempty"`
}

// NewSiteSEOResponse converts site SEO.
func NewSiteSEOResponse(s *domain.SiteSEO) *SiteSEOResponse {
	return &SiteSEOResponse{
		Records: mapSlice(s.Records, NewSEOResponse),
		JSONLD:  rawJSON(s.JSONLD),
	}
}
