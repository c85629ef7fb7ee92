package flags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plazasales/storefront/internal/ports"
)

func TestStatic_IsEnabled(t *testing.T) {
	source := map[string]bool{"Products-Page-Ads": false}
	s := NewStatic(source)
	ctx := context.Background()

	assert.False(t, s.IsEnabled(ctx, ports.FlagProductsPageAds, true))
	assert.True(t, s.IsEnabled(ctx, ports.FlagNewsletterPrompt, true))
	assert.False(t, s.IsEnabled(ctx, "unknown", false))

	source["products-page-ads"] = true
	assert.False(t, s.IsEnabled(ctx, ports.FlagProductsPageAds, true))
}

func TestStatic_Set(t *testing.T) {
	s := NewStatic(nil)

	s.Set(ports.FlagNewsletterPrompt, false)

	assert.False(t, s.IsEnabled(context.Background(), ports.FlagNewsletterPrompt, true))
	assert.Equal(t, map[string]bool{"newsletter-prompt": false}, s.Snapshot())
}
