package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeCaptcha  = "captcha_rejected"
	OutcomeFailed   = "failed"
)

// StorefrontMetrics counts storefront form submissions and ad events for the
// /-/metrics scrape.
type StorefrontMetrics struct {
	submissions *prometheus.CounterVec
	adEvents    *prometheus.CounterVec
	degraded    *prometheus.CounterVec
}

// NewStorefrontMetrics registers the storefront counters with reg.
func NewStorefrontMetrics(reg prometheus.Registerer) (*StorefrontMetrics, error) {
	m := &StorefrontMetrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_submissions_total",
				Help: "Form submissions by form and outcome.",
			},
			[]string{"form", "outcome"},
		),
		adEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_ad_events_total",
				Help: "Ad clicks and impressions forwarded to the backend.",
			},
			[]string{"event", "outcome"},
		),
		degraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_page_sections_degraded_total",
				Help: "Optional page sections served empty because the backend failed.",
			},
			[]string{"page", "section"},
		),
	}

	for _, c := range []prometheus.Collector{m.submissions, m.adEvents, m.degraded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Submission records the outcome of a form submission.
func (m *StorefrontMetrics) Submission(form, outcome string) {
	if m == nil {
		return
	}

	m.submissions.WithLabelValues(form, outcome).Inc()
}

// AdEvent records a forwarded ad click or impression.
func (m *StorefrontMetrics) AdEvent(event, outcome string) {
	if m == nil {
		return
	}

	m.adEvents.WithLabelValues(event, outcome).Inc()
}

// Degraded records a page section replaced by an empty default.
func (m *StorefrontMetrics) Degraded(page, section string) {
	if m == nil {
		return
	}

	m.degraded.WithLabelValues(page, section).Inc()
}
