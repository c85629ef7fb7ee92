package ports

import (
	"context"
)

// Storefront feature flags.
const (
	// FlagNewsletterPrompt enables the delayed newsletter dialog.
	FlagNewsletterPrompt = "newsletter-prompt"

	// FlagProductsPageAds enables ads on the product listing.
	FlagProductsPageAds = "products-page-ads"
)

// FeatureFlags evaluates boolean feature flags.
//
//	if flags.IsEnabled(ctx, ports.FlagProductsPageAds, true) {
//	    ads, err = s.ads.ListAds(ctx, q)
//	}
type FeatureFlags interface {
	// IsEnabled returns defaultValue when the flag is unknown.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
}

// Visitor identifies the anonymous browser behind a request.
type Visitor struct {
	// ID is the visitor's UUID from the signed cookie.
	ID string

	// New is true when the identity was issued on this request.
	New bool
}

type visitorKey struct{}

// WithVisitor stores the visitor in ctx.
func WithVisitor(ctx context.Context, v *Visitor) context.Context {
	return context.WithValue(ctx, visitorKey{}, v)
}

// VisitorFromContext returns the visitor, or nil when the request has none.
func VisitorFromContext(ctx context.Context) *Visitor {
	if v, ok := ctx.Value(visitorKey{}).(*Visitor); ok {
		return v
	}

	return nil
}
