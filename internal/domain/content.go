package domain

import "time"

// Blog is an article published on the storefront.
type Blog struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Thumbnail string
	Author    string

	// EstimatedReadTime is in minutes; zero when the backend did not provide it.
	EstimatedReadTime int

	MediaAssets []MediaAsset
	PublishedAt time.Time
}

// MediaAsset is an image or video embedded in a blog.
type MediaAsset struct {
	URL  string
	Type string
	Alt  string
}

// BlogDetail is a blog with the similar blogs the backend suggests.
type BlogDetail struct {
	Blog    Blog
	Similar []Blog
}

// BlogPage is one page of blogs.
type BlogPage struct {
	Blogs []Blog
	Total int
}

// Ad is a promotional banner shown on listing pages.
type Ad struct {
	ID        string
	Title     string
	Image     string
	Link      string
	Placement string
	StartsAt  time.Time
	EndsAt    time.Time
}

// AdPage is one page of ads.
type AdPage struct {
	Ads   []Ad
	Total int
}

// SEOMetadata is the search-engine metadata for one page or entity.
type SEOMetadata struct {
	ID          string
	Slug        string
	EntityType  string
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	OGImage     string

	// JSONLD is the raw structured-data document, passed through untouched.
	JSONLD []byte
}

// SEOQuery filters the SEO metadata list.
type SEOQuery struct {
	Page       int
	Limit      int
	Search     string
	EntityType string
}

// SEOPage is one page of SEO records.
type SEOPage struct {
	Records []SEOMetadata
	Total   int
}

// PageQuery is plain pagination.
type PageQuery struct {
	Page  int
	Limit int
}

// WithDefaults fills in page 1 and the given limit when unset.
func (q PageQuery) WithDefaults(limit int) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}

	if q.Limit < 1 {
		q.Limit = limit
	}

	return q
}
