package app

import (
	"context"
	"fmt"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/richtext"
	"github.com/plazasales/storefront/internal/ports"
)

const (
	blogsPageSize = 10

	// excerptLength bounds blog card excerpts, in runes.
	excerptLength = 180
)

var _ ports.BlogService = (*BlogService)(nil)

// BlogService composes the blog pages.
type BlogService struct {
	base

	blogs ports.BlogClient
	seo   ports.SEOClient
}

// NewBlogService creates a BlogService.
func NewBlogService(blogs ports.BlogClient, seo ports.SEOClient, cfg *ServiceConfig) *BlogService {
	return &BlogService{
		base:  newBase(cfg, "app.BlogService"),
		blogs: blogs,
		seo:   seo,
	}
}

// BlogsPage lists one page of blog cards.
func (s *BlogService) BlogsPage(ctx context.Context, q domain.PageQuery) (*domain.BlogListPage, error) {
	q = q.WithDefaults(blogsPageSize)

	page, err := s.blogs.ListBlogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing blogs: %w", err)
	}

	return &domain.BlogListPage{
		Blogs:      summarizeBlogs(page.Blogs),
		Total:      page.Total,
		Page:       q.Page,
		TotalPages: domain.TotalPages(page.Total, q.Limit),
	}, nil
}

// BlogDetail returns an article with its similar blogs and SEO metadata.
func (s *BlogService) BlogDetail(ctx context.Context, slug string) (*domain.BlogDetailPage, error) {
	var (
		detail *domain.BlogDetail
		seo    *domain.SEOMetadata
	)

	err := Compose(ctx, "blog", s.degraded("blog"),
		Required("blog", &detail, func(ctx context.Context) (*domain.BlogDetail, error) {
			return s.blogs.GetBlog(ctx, slug)
		}),
		Optional("seo", &seo, func(ctx context.Context) (*domain.SEOMetadata, error) {
			return seoOrNil(ctx, s.seo, slug)
		}),
	)
	if err != nil {
		return nil, err
	}

	b := detail.Blog

	page := &domain.BlogDetailPage{
		Blog:        b,
		ReadingTime: readingTime(&b),
		WordCount:   richtext.WordCount(b.Content),
		Similar:     summarizeBlogs(detail.Similar),
	}

	if seo != nil {
		page.SEO = *seo
	} else {
		page.SEO = domain.SEOMetadata{
			Slug:        b.Slug,
			EntityType:  "blog",
			Title:       b.Title,
			Description: richtext.Description(b.Content),
			Canonical:   s.url(pathBlog, b.Slug),
			OGImage:     b.Thumbnail,
		}
	}

	return page, nil
}

// readingTime prefers the backend's estimate.
func readingTime(b *domain.Blog) int {
	if b.EstimatedReadTime > 0 {
		return b.EstimatedReadTime
	}

	return richtext.ReadingTime(b.Content)
}

func summarizeBlogs(blogs []domain.Blog) []domain.BlogSummary {
	out := make([]domain.BlogSummary, 0, len(blogs))

	for i := range blogs {
		out = append(out, domain.BlogSummary{
			Blog:        blogs[i],
			Excerpt:     richtext.Excerpt(blogs[i].Content, excerptLength),
			ReadingTime: readingTime(&blogs[i]),
		})
	}

	return out
}
