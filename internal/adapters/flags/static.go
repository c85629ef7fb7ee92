// Package flags evaluates feature flags from the features section of the
// configuration.
package flags

import (
	"context"
	"maps"
	"strings"
	"sync"

	"github.com/plazasales/storefront/internal/ports"
)

var _ ports.FeatureFlags = (*Static)(nil)

// Static answers flag lookups from a fixed set loaded at startup. Names are
// matched case-insensitively.
type Static struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewStatic copies flags so later changes to the map are not observed.
func NewStatic(flags map[string]bool) *Static {
	s := &Static{flags: make(map[string]bool, len(flags))}
	for k, v := range flags {
		s.flags[strings.ToLower(k)] = v
	}

	return s
}

// IsEnabled returns the configured value, or defaultValue for unknown flags.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.flags[strings.ToLower(flag)]; ok {
		return v
	}

	return defaultValue
}

// Set overrides one flag at runtime.
func (s *Static) Set(flag string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[strings.ToLower(flag)] = enabled
}

// Snapshot returns a copy of the configured flags.
func (s *Static) Snapshot() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.flags)
}
