package domain

import (
	"encoding/json"
	"regexp"
	"strings"
)

// PricingPlan is the pricing document attached to SERVICE and SAAS products.
type PricingPlan struct {
	Key       string           `json:"-"`
	Title     string           `json:"title"`
	ShortDesc string           `json:"shortDesc"`
	Packages  []PricingPackage `json:"packages"`
}

// PricingPackage is one tier of a plan. Price is monthly.
type PricingPackage struct {
	Title          string   `json:"title"`
	Price          float64  `json:"price"`
	YearlyDiscount float64  `json:"yearlyDiscount"`
	Features       []string `json:"features"`
}

// YearlyTotal is the price for twelve months after the yearly discount.
func (p PricingPackage) YearlyTotal() float64 {
	return p.Price * 12 * (1 - p.YearlyDiscount/100)
}

// YearlyMonthly is the per-month price when billed yearly.
func (p PricingPackage) YearlyMonthly() float64 {
	return p.YearlyTotal() / 12
}

// PopularIndex is the position of the highlighted middle package.
func (pl PricingPlan) PopularIndex() int {
	return len(pl.Packages) / 2
}

// MaxDiscount is the largest yearly discount across packages.
func (pl PricingPlan) MaxDiscount() float64 {
	var best float64
	for _, p := range pl.Packages {
		if p.YearlyDiscount > best {
			best = p.YearlyDiscount
		}
	}

	return best
}

// ParsePricing decodes a pricing document. It returns false when the product type has
// no pricing or the document is not a usable plan; pages then fall back to the HTML
// specification.
func ParsePricing(productType ProductType, document string) (PricingPlan, bool) {
	if !productType.HasPricing() || strings.TrimSpace(document) == "" {
		return PricingPlan{}, false
	}

	var plan PricingPlan
	if err := json.Unmarshal([]byte(document), &plan); err != nil {
		return PricingPlan{}, false
	}

	if plan.Packages == nil {
		return PricingPlan{}, false
	}

	return plan, true
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// BrandPricing collects one plan per SAAS popular product that carries a feature document.
func BrandPricing(b *Brand) []PricingPlan {
	var plans []PricingPlan

	for _, p := range b.PopularProducts {
		if p.ProductType != ProductTypeSaaS || p.Feature == "" {
			continue
		}

		plan, ok := ParsePricing(p.ProductType, p.Feature)
		if !ok {
			continue
		}

		plan.Key = p.Slug
		if plan.Key == "" {
			plan.Key = whitespaceRun.ReplaceAllString(strings.ToLower(p.Title), "-")
		}

		if plan.Key == "" {
			continue
		}

		plans = append(plans, plan)
	}

	return plans
}
