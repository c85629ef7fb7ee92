package domain

import (
	"strings"
	"time"
)

// ProductType distinguishes physical products from subscription offerings.
type ProductType string

// Product types published by the catalog.
const (
	ProductTypeProduct ProductType = "PRODUCT"
	ProductTypeService ProductType = "SERVICE"
	ProductTypeSaaS    ProductType = "SAAS"
)

// HasPricing reports whether products of this type carry a JSON pricing document.
func (t ProductType) HasPricing() bool {
	return t == ProductTypeService || t == ProductTypeSaaS
}

// Product is a catalog entry as published by the backend.
type Product struct {
	ID          string
	Title       string
	Slug        string
	Summary     string
	Description string

	// Specification is CKEditor HTML, or a pricing document for SERVICE and SAAS products.
	Specification string

	// Feature is the SAAS pricing document shown on brand pages.
	Feature string

	ProductType  ProductType
	Images       []string
	Brand        *BrandRef
	Category     *CategoryRef
	Subcategory  *CategoryRef
	Technologies []string
	Downloads    []Download
	CreatedAt    time.Time
}

// BrandRef is the brand summary embedded in a product.
type BrandRef struct {
	ID   string
	Name string
	Slug string
	Logo string
}

// CategoryRef is the category summary embedded in a product.
type CategoryRef struct {
	ID    string
	Title string
	Slug  string
}

// Brand is a manufacturer or partner whose products the storefront lists.
type Brand struct {
	ID              string
	Name            string
	Slug            string
	Logo            string
	Description     string
	USP             string
	Categories      []Category
	PopularProducts []Product
}

// IsSaaS reports whether the brand sells software subscriptions, which switches the
// brand page from popular products to pricing plans.
func (b *Brand) IsSaaS() bool {
	return strings.Contains(strings.ToLower(b.USP), "saas")
}

// Category groups products; brands carry their own category trees.
type Category struct {
	ID            string
	Title         string
	Slug          string
	Image         string
	Subcategories []Subcategory
}

// Subcategory is a child of a category.
type Subcategory struct {
	ID           string
	Title        string
	Slug         string
	CategorySlug string
}

// ProductPage is one page of products plus the total across all pages.
type ProductPage struct {
	Products []Product
	Total    int
}

// ProductDetail is a product with the related products the backend suggests.
type ProductDetail struct {
	Product Product
	Related []Product
}

// CategoryPage is one page of categories.
type CategoryPage struct {
	Categories []Category
	Total      int
}
