package domain

import "time"

// HomePage is the landing page composition. Every section may be empty when
// its backend call failed.
type HomePage struct {
	LatestProducts []Product
	Categories     []Category
	Brands         []Brand
	Blogs          []BlogSummary
	SiteJSONLD     []byte
}

// ProductsPage is the product listing with its sidebar facets.
type ProductsPage struct {
	Products      []Product
	Total         int
	TotalPages    int
	Filter        NormalizedFilter
	Brands        []Brand
	Categories    []Category
	Subcategories []Subcategory
	Ads           []Ad
}

// ProductDetailPage is a product page. Pricing is nil when the product has no
// parseable pricing document.
type ProductDetailPage struct {
	Product   Product
	Related   []Product
	Pricing   *PricingPlan
	Downloads DownloadGroups
	SEO       SEOMetadata
}

// BrandDetailPage is a brand page. SaaS brands show pricing plans, others
// their popular products.
type BrandDetailPage struct {
	Brand           Brand
	IsSaaS          bool
	Pricing         []PricingPlan
	PopularProducts []Product
}

// BlogSummary is a blog card: the blog plus derived text.
type BlogSummary struct {
	Blog        Blog
	Excerpt     string
	ReadingTime int
}

// BlogListPage is one page of blog cards.
type BlogListPage struct {
	Blogs      []BlogSummary
	Total      int
	Page       int
	TotalPages int
}

// BlogDetailPage is a single article.
type BlogDetailPage struct {
	Blog        Blog
	ReadingTime int
	WordCount   int
	Similar     []BlogSummary
	SEO         SEOMetadata
}

// CareerView is an opening as shown to one visitor.
type CareerView struct {
	Career       Career
	JobTypeLabel string
	Open         bool
	Saved        bool
	ShareURL     string
}

// SavedJobsView is the visitor's saved list after a toggle.
type SavedJobsView struct {
	Saved     bool
	SavedJobs []SavedJob
}

// NewsletterStatus tells the rendering layer whether to show the newsletter dialog.
type NewsletterStatus struct {
	ShouldPrompt bool
	PromptDelay  time.Duration
	Subscribed   bool
	Dismissed    bool
}

// SiteSEO is the site-wide SEO records plus the JSON-LD of the first one.
type SiteSEO struct {
	Records []SEOMetadata
	JSONLD  []byte
}

// reCAPTCHA v3 actions the storefront's forms execute.
const (
	CaptchaActionContact      = "contact_form"
	CaptchaActionApplication  = "career_application"
	CaptchaActionAdClick      = "ad_click"
	CaptchaActionAdImpression = "ad_impression"
)

// CaptchaProof is the reCAPTCHA token a browser attached to a submission.
type CaptchaProof struct {
	Token    string
	RemoteIP string
}

// ContactForm is the contact page form before the phone number is composed.
type ContactForm struct {
	Fullname    string
	Email       string
	CountryCode string
	PhoneNo     string
	Address     string
	Message     string
	Purpose     string
}

// ApplicationForm is the career application form as submitted.
type ApplicationForm struct {
	Name        string
	Email       string
	Phone       string
	Resume      *Attachment
	CoverLetter *Attachment
}
