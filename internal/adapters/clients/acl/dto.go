package acl

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/plazasales/storefront/internal/domain"
)

// Backend DTOs. They mirror the REST payloads and never leave this package.

// flexString accepts a JSON string or number; the backend is not consistent
// about ids and byte sizes.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	*f = flexString(b)

	return nil
}

// flexStrings accepts a list of strings or a single comma-separated string.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*f = list
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil //nolint:nilerr // unknown shapes are dropped rather than failing the page
	}

	*f = domain.SplitList(s)

	return nil
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

type refDTO struct {
	ID    flexString `json:"id"`
	Name  string     `json:"name"`
	Title string     `json:"title"`
	Slug  string     `json:"slug"`
	Logo  string     `json:"logo"`
}

type downloadDTO struct {
	ID           flexString  `json:"id"`
	Title        string      `json:"title"`
	Summary      string      `json:"summary"`
	FileType     string      `json:"fileType"`
	Version      string      `json:"version"`
	SizeBytes    flexString  `json:"sizeBytes"`
	ReleasedOn   string      `json:"releasedOn"`
	Platforms    flexStrings `json:"platforms"`
	DownloadURL  string      `json:"downloadUrl"`
	MinOSVersion string      `json:"minOsVersion"`
	Deprecated   bool        `json:"deprecated"`
	Note         string      `json:"note"`
	Mirrors      []struct {
		Label string `json:"label"`
		URL   string `json:"url"`
	} `json:"mirrors"`
}

type productDTO struct {
	ID               flexString    `json:"id"`
	Name             string        `json:"name"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	ShortDescription string        `json:"shortDescription"`
	Summary          string        `json:"summary"`
	Description      string        `json:"description"`
	Specification    string        `json:"specification"`
	Feature          string        `json:"feature"`
	ProductType      string        `json:"productType"`
	CoverImage       string        `json:"coverImage"`
	Gallery          flexStrings   `json:"gallery"`
	Brand            *refDTO       `json:"brand"`
	Category         *refDTO       `json:"category"`
	Subcategory      *refDTO       `json:"subcategory"`
	Technologies     flexStrings   `json:"technologies"`
	Downloads        []downloadDTO `json:"downloads"`
	CreatedAt        string        `json:"createdAt"`
}

type subcategoryDTO struct {
	ID    flexString `json:"id"`
	Title string     `json:"title"`
	Name  string     `json:"name"`
	Slug  string     `json:"slug"`
}

type categoryDTO struct {
	ID            flexString       `json:"id"`
	Title         string           `json:"title"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	CoverImage    string           `json:"coverImage"`
	Image         string           `json:"image"`
	SubCategories []subcategoryDTO `json:"subCategories"`
	Subcategories []subcategoryDTO `json:"subcategories"`
}

type brandDTO struct {
	ID              flexString    `json:"id"`
	Name            string        `json:"name"`
	Slug            string        `json:"slug"`
	Logo            string        `json:"logo"`
	Description     string        `json:"description"`
	USP             string        `json:"usp"`
	Categories      []categoryDTO `json:"categories"`
	PopularProducts []productDTO  `json:"popularProducts"`
}

type blogDTO struct {
	ID                flexString `json:"id"`
	Title             string     `json:"title"`
	Slug              string     `json:"slug"`
	Content           string     `json:"content"`
	Description       string     `json:"description"`
	CoverImage        string     `json:"coverImage"`
	Author            string     `json:"author"`
	EstimatedReadTime int        `json:"estimatedReadTime"`
	PublishedAt       string     `json:"publishedAt"`
	CreatedAt         string     `json:"createdAt"`
	MediaAssets       []struct {
		URL  string `json:"url"`
		Type string `json:"type"`
		Alt  string `json:"alt"`
	} `json:"mediaAssets"`
}

type careerDTO struct {
	ID           flexString `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Location     string     `json:"location"`
	JobType      string     `json:"jobType"`
	SalaryRange  string     `json:"salaryRange"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Deadline     string     `json:"deadline"`
	Status       string     `json:"status"`
}

type adDTO struct {
	ID        flexString `json:"id"`
	Title     string     `json:"title"`
	Image     string     `json:"image"`
	ImageURL  string     `json:"imageUrl"`
	Link      string     `json:"link"`
	TargetURL string     `json:"targetUrl"`
	Placement string     `json:"placement"`
	StartsAt  string     `json:"startsAt"`
	EndsAt    string     `json:"endsAt"`
}

type seoDTO struct {
	ID           flexString      `json:"id"`
	Slug         string          `json:"slug"`
	EntityType   string          `json:"entityType"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Keywords     flexStrings     `json:"keywords"`
	CanonicalURL string          `json:"canonicalUrl"`
	JSONLD       json.RawMessage `json:"jsonLd"`
	OpenGraph    *struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
		Image string `json:"image"`
	} `json:"openGraph"`
}

// Response envelopes.

type productsEnvelope struct {
	Data struct {
		Products []productDTO `json:"products"`
		Total    int          `json:"total"`
	} `json:"data"`
}

type productEnvelope struct {
	Product         productDTO   `json:"product"`
	SimilarProducts []productDTO `json:"similarProducts"`
	RelatedProducts []productDTO `json:"relatedProducts"`
}

type categoriesEnvelope struct {
	Categories []categoryDTO `json:"categories"`
	Total      int           `json:"total"`
}

type brandsEnvelope struct {
	Data struct {
		Brands []brandDTO `json:"brands"`
	} `json:"data"`
}

type brandEnvelope struct {
	Brand brandDTO `json:"brand"`
}

type blogsEnvelope struct {
	Blogs []blogDTO `json:"blogs"`
	Total int       `json:"total"`
}

type blogEnvelope struct {
	Blog         blogDTO   `json:"blog"`
	SimilarBlogs []blogDTO `json:"similarBlogs"`
}

type careersEnvelope struct {
	Careers []careerDTO `json:"careers"`
}

type careerEnvelope struct {
	Career careerDTO `json:"career"`
}

type adsEnvelope struct {
	Data struct {
		Ads   []adDTO `json:"ads"`
		Total int     `json:"total"`
	} `json:"data"`
}

type seoListEnvelope struct {
	SEOMetadata []seoDTO `json:"seoMetadata"`
	Total       int      `json:"total"`
}

type seoEnvelope struct {
	SEOMetadata seoDTO `json:"seoMetadata"`
}

// Translations.

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func toBrandRef(r *refDTO) *domain.BrandRef {
	if r == nil {
		return nil
	}

	return &domain.BrandRef{ID: string(r.ID), Name: firstOf(r.Name, r.Title), Slug: r.Slug, Logo: r.Logo}
}

func toCategoryRef(r *refDTO) *domain.CategoryRef {
	if r == nil {
		return nil
	}

	return &domain.CategoryRef{ID: string(r.ID), Title: firstOf(r.Title, r.Name), Slug: r.Slug}
}

func toDownload(d *downloadDTO) domain.Download {
	out := domain.Download{
		ID:           string(d.ID),
		Title:        d.Title,
		Summary:      d.Summary,
		FileType:     strings.ToLower(strings.TrimPrefix(d.FileType, ".")),
		Version:      d.Version,
		SizeBytes:    string(d.SizeBytes),
		ReleasedOn:   parseTime(d.ReleasedOn),
		Platforms:    d.Platforms,
		DownloadURL:  d.DownloadURL,
		MinOSVersion: d.MinOSVersion,
		Deprecated:   d.Deprecated,
		Note:         d.Note,
	}

	for _, m := range d.Mirrors {
		out.Mirrors = append(out.Mirrors, domain.Mirror{Label: m.Label, URL: m.URL})
	}

	return out
}

func toProduct(p *productDTO) domain.Product {
	images := make([]string, 0, len(p.Gallery)+1)
	if p.CoverImage != "" {
		images = append(images, p.CoverImage)
	}
	images = append(images, p.Gallery...)

	return domain.Product{
		ID:            string(p.ID),
		Title:         firstOf(p.Name, p.Title),
		Slug:          p.Slug,
		Summary:       firstOf(p.ShortDescription, p.Summary),
		Description:   p.Description,
		Specification: firstOf(p.Specification, p.Feature),
		Feature:       p.Feature,
		ProductType:   domain.ProductType(strings.ToUpper(firstOf(p.ProductType, string(domain.ProductTypeProduct)))),
		Images:        images,
		Brand:         toBrandRef(p.Brand),
		Category:      toCategoryRef(p.Category),
		Subcategory:   toCategoryRef(p.Subcategory),
		Technologies:  p.Technologies,
		Downloads:     TranslateSlice(p.Downloads, toDownload),
		CreatedAt:     parseTime(p.CreatedAt),
	}
}

func toCategory(c *categoryDTO) domain.Category {
	subs := c.SubCategories
	if len(subs) == 0 {
		subs = c.Subcategories
	}

	out := domain.Category{
		ID:    string(c.ID),
		Title: firstOf(c.Title, c.Name),
		Slug:  c.Slug,
		Image: firstOf(c.CoverImage, c.Image),
	}

	for _, s := range subs {
		out.Subcategories = append(out.Subcategories, domain.Subcategory{
			ID:           string(s.ID),
			Title:        firstOf(s.Title, s.Name),
			Slug:         s.Slug,
			CategorySlug: c.Slug,
		})
	}

	return out
}

func toBrand(b *brandDTO) domain.Brand {
	return domain.Brand{
		ID:              string(b.ID),
		Name:            b.Name,
		Slug:            b.Slug,
		Logo:            b.Logo,
		Description:     b.Description,
		USP:             b.USP,
		Categories:      TranslateSlice(b.Categories, toCategory),
		PopularProducts: TranslateSlice(b.PopularProducts, toProduct),
	}
}

func toBlog(b *blogDTO) domain.Blog {
	out := domain.Blog{
		ID:                string(b.ID),
		Title:             b.Title,
		Slug:              b.Slug,
		Content:           firstOf(b.Content, b.Description),
		Thumbnail:         b.CoverImage,
		Author:            b.Author,
		EstimatedReadTime: b.EstimatedReadTime,
		PublishedAt:       parseTime(firstOf(b.PublishedAt, b.CreatedAt)),
	}

	for _, m := range b.MediaAssets {
		out.MediaAssets = append(out.MediaAssets, domain.MediaAsset{URL: m.URL, Type: m.Type, Alt: m.Alt})
	}

	return out
}

func toCareer(c *careerDTO) domain.Career {
	return domain.Career{
		ID:           string(c.ID),
		Title:        c.Title,
		Slug:         c.Slug,
		Location:     c.Location,
		JobType:      domain.JobType(strings.ToUpper(c.JobType)),
		SalaryRange:  c.SalaryRange,
		Description:  c.Description,
		Requirements: c.Requirements,
		Deadline:     parseTime(c.Deadline),
		Status:       c.Status,
	}
}

func toAd(a *adDTO) domain.Ad {
	return domain.Ad{
		ID:        string(a.ID),
		Title:     a.Title,
		Image:     firstOf(a.Image, a.ImageURL),
		Link:      firstOf(a.Link, a.TargetURL),
		Placement: a.Placement,
		StartsAt:  parseTime(a.StartsAt),
		EndsAt:    parseTime(a.EndsAt),
	}
}

func toSEO(s *seoDTO) domain.SEOMetadata {
	out := domain.SEOMetadata{
		ID:          string(s.ID),
		Slug:        s.Slug,
		EntityType:  s.EntityType,
		Title:       s.Title,
		Description: s.Description,
		Keywords:    s.Keywords,
		Canonical:   s.CanonicalURL,
	}

	if raw := bytes.TrimSpace(s.JSONLD); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		out.JSONLD = raw
	}

	if og := s.OpenGraph; og != nil {
		out.OGImage = og.Image
		if out.OGImage == "" && len(og.Images) > 0 {
			out.OGImage = og.Images[0].URL
		}
	}

	return out
}
