package domain

import "strings"

// ProductsPageSize is the number of products shown per listing page.
const ProductsPageSize = 16

// ProductFilter is the product listing query as it arrives from the storefront URL.
// Singular and plural parameters coexist because older links use the singular form.
type ProductFilter struct {
	Page          int
	Limit         int
	Search        string
	Brand         string
	Brands        string
	Category      string
	Categories    string
	Subcategory   string
	Subcategories string
	Technology    string
}

// NormalizedFilter is the resolved filter sent to the backend.
type NormalizedFilter struct {
	Page        int
	Limit       int
	Search      string
	Brand       string
	Categories  []string
	Subcategory string
	Technology  string
}

// Normalize resolves singular/plural precedence and pagination defaults.
func (f ProductFilter) Normalize() NormalizedFilter {
	n := NormalizedFilter{
		Page:        f.Page,
		Limit:       f.Limit,
		Search:      strings.TrimSpace(f.Search),
		Brand:       firstNonEmpty(f.Brand, f.Brands),
		Subcategory: firstNonEmpty(f.Subcategory, f.Subcategories),
		Technology:  strings.TrimSpace(f.Technology),
	}

	if n.Page < 1 {
		n.Page = 1
	}

	if n.Limit < 1 {
		n.Limit = ProductsPageSize
	}

	switch {
	case strings.TrimSpace(f.Category) != "":
		n.Categories = []string{strings.TrimSpace(f.Category)}
	case f.Categories != "":
		n.Categories = SplitList(f.Categories)
	}

	return n
}

// IsSearch reports whether the listing should use the search endpoint.
func (n NormalizedFilter) IsSearch() bool {
	return n.Search != ""
}

// SplitList splits a comma-separated query value, dropping blanks.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// TotalPages returns ceil(total/limit), or 0 for a non-positive limit.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}

	return (total + limit - 1) / limit
}

// FacetCategories returns the categories offered in the listing sidebar. Without a
// selected brand it is the union across brands, de-duplicated by id in first-seen order.
func FacetCategories(brands []Brand, selectedBrand string) []Category {
	seen := make(map[string]bool)
	var out []Category

	for _, b := range brandsInScope(brands, selectedBrand) {
		for _, c := range b.Categories {
			if seen[c.ID] {
				continue
			}

			seen[c.ID] = true
			c.Subcategories = nil
			out = append(out, c)
		}
	}

	return out
}

// FacetSubcategories returns the subcategories offered in the sidebar for the selected
// brand and categories, each tagged with the slug of its parent category.
func FacetSubcategories(brands []Brand, selectedBrand string, selectedCategories []string) []Subcategory {
	wanted := make(map[string]bool, len(selectedCategories))
	for _, c := range selectedCategories {
		wanted[c] = true
	}

	seen := make(map[string]bool)
	var out []Subcategory

	for _, b := range brandsInScope(brands, selectedBrand) {
		for _, c := range b.Categories {
			if len(wanted) > 0 && !wanted[c.Slug] {
				continue
			}

			for _, s := range c.Subcategories {
				if seen[s.ID] {
					continue
				}

				seen[s.ID] = true
				s.CategorySlug = c.Slug
				out = append(out, s)
			}
		}
	}

	return out
}

func brandsInScope(brands []Brand, selected string) []Brand {
	if selected == "" {
		return brands
	}

	for _, b := range brands {
		if b.Slug == selected {
			return []Brand{b}
		}
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
