package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorefrontMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := NewStorefrontMetrics(reg)
	require.NoError(t, err)

	m.Submission("contact", OutcomeAccepted)
	m.Submission("contact", OutcomeAccepted)
	m.Submission("contact", OutcomeCaptcha)
	m.AdEvent("click", OutcomeAccepted)
	m.Degraded("products", "ads")

	assert.InDelta(t, 2, testutil.ToFloat64(m.submissions.WithLabelValues("contact", OutcomeAccepted)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.submissions.WithLabelValues("contact", OutcomeCaptcha)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.adEvents.WithLabelValues("click", OutcomeAccepted)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.degraded.WithLabelValues("products", "ads")), 0)
}

func TestNewStorefrontMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewStorefrontMetrics(reg)
	require.NoError(t, err)

	_, err = NewStorefrontMetrics(reg)
	assert.Error(t, err)
}

func TestStorefrontMetrics_NilSafe(t *testing.T) {
	var m *StorefrontMetrics

	assert.NotPanics(t, func() {
		m.Submission("newsletter", OutcomeFailed)
		m.AdEvent("impression", OutcomeFailed)
		m.Degraded("home", "blogs")
	})
}

func TestNew_DisabledShutdown(t *testing.T) {
	p, err := New(t.Context(), &Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, p.Shutdown(t.Context()))
}
