package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/mocks"
)

func TestBlogService_BlogsPage(t *testing.T) {
	long := "<p>" + strings.Repeat("vaccine cold chain logistics ", 120) + "</p>"

	blogs := mocks.NewMockBlogClient(t)
	blogs.EXPECT().ListBlogs(mock.Anything, domain.PageQuery{Page: 1, Limit: 10}).Return(&domain.BlogPage{
		Blogs: []domain.Blog{
			{Slug: "long-read", Content: long},
			{Slug: "backend-estimate", Content: "<p>short</p>", EstimatedReadTime: 7},
		},
		Total: 21,
	}, nil)

	svc := NewBlogService(blogs, mocks.NewMockSEOClient(t), testConfig())

	page, err := svc.BlogsPage(context.Background(), domain.PageQuery{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Blogs, 2)

	assert.True(t, strings.HasSuffix(page.Blogs[0].Excerpt, "…"))
	assert.LessOrEqual(t, len([]rune(page.Blogs[0].Excerpt)), excerptLength+1)
	assert.Equal(t, 3, page.Blogs[0].ReadingTime, "480 words at 200 wpm")

	assert.Equal(t, 7, page.Blogs[1].ReadingTime)
}

func TestBlogService_BlogsPage_Error(t *testing.T) {
	blogs := mocks.NewMockBlogClient(t)
	blogs.EXPECT().ListBlogs(mock.Anything, mock.Anything).Return(nil, domain.NewUnavailableError("backend", "timeout"))

	_, err := NewBlogService(blogs, mocks.NewMockSEOClient(t), testConfig()).
		BlogsPage(context.Background(), domain.PageQuery{Page: 2, Limit: 5})

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestBlogService_BlogDetail(t *testing.T) {
	detail := &domain.BlogDetail{
		Blog: domain.Blog{
			Slug:      "cold-chain-101",
			Title:     "Cold Chain 101",
			Content:   "<p>Keep vaccines between two and eight degrees.</p>",
			Thumbnail: "https://cdn.test/thumb.png",
		},
		Similar: []domain.Blog{{Slug: "reefer-maintenance"}},
	}

	t.Run("seo fallback", func(t *testing.T) {
		blogs := mocks.NewMockBlogClient(t)
		seo := mocks.NewMockSEOClient(t)

		blogs.EXPECT().GetBlog(mock.Anything, "cold-chain-101").Return(detail, nil)
		seo.EXPECT().GetSEO(mock.Anything, "cold-chain-101").Return(nil, domain.NewNotFoundError("seo", "cold-chain-101"))

		page, err := NewBlogService(blogs, seo, testConfig()).BlogDetail(context.Background(), "cold-chain-101")

		require.NoError(t, err)
		assert.Equal(t, 7, page.WordCount)
		assert.Equal(t, 1, page.ReadingTime)
		assert.Len(t, page.Similar, 1)
		assert.Equal(t, "Cold Chain 101", page.SEO.Title)
		assert.Equal(t, "https://plazasales.test/blogs/cold-chain-101", page.SEO.Canonical)
		assert.Equal(t, "https://cdn.test/thumb.png", page.SEO.OGImage)
	})

	t.Run("seo record", func(t *testing.T) {
		blogs := mocks.NewMockBlogClient(t)
		seo := mocks.NewMockSEOClient(t)

		blogs.EXPECT().GetBlog(mock.Anything, "cold-chain-101").Return(detail, nil)
		seo.EXPECT().GetSEO(mock.Anything, "cold-chain-101").Return(&domain.SEOMetadata{Title: "Custom"}, nil)

		page, err := NewBlogService(blogs, seo, testConfig()).BlogDetail(context.Background(), "cold-chain-101")

		require.NoError(t, err)
		assert.Equal(t, "Custom", page.SEO.Title)
	})

	t.Run("missing blog", func(t *testing.T) {
		blogs := mocks.NewMockBlogClient(t)
		seo := mocks.NewMockSEOClient(t)

		blogs.EXPECT().GetBlog(mock.Anything, "gone").Return(nil, domain.NewNotFoundError("blog", "gone"))
		seo.EXPECT().GetSEO(mock.Anything, "gone").Return(nil, domain.NewNotFoundError("seo", "gone")).Maybe()

		_, err := NewBlogService(blogs, seo, testConfig()).BlogDetail(context.Background(), "gone")

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}
