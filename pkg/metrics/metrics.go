package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	submissionsTotal *prometheus.CounterVec
	fieldChecks      *prometheus.CounterVec
	contactLinks     prometheus.Counter
	handoffLatency   prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Submit cycles by terminal outcome",
		}, []string{"outcome"}),
		fieldChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "field_checks_total",
			Help:      "Live field validations by field and result",
		}, []string{"field", "valid"}),
		contactLinks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "contact_links_total",
			Help:      "Floating contact button redirects",
		}),
		handoffLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "submit_duration_seconds",
			Help:      "Time from submit to terminal outcome, loading delay included",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 1.5, 2, 5, 10},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.fieldChecks, m.contactLinks, m.handoffLatency)
	return m
}

func (m *BookingMetrics) ObserveSubmission(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
	m.handoffLatency.Observe(seconds)
}

func (m *BookingMetrics) ObserveFieldCheck(field string, valid bool) {
	if m == nil {
		return
	}
	label := "false"
	if valid {
		label = "true"
	}
	m.fieldChecks.WithLabelValues(field, label).Inc()
}

func (m *BookingMetrics) ObserveContactLink() {
	if m == nil {
		return
	}
	m.contactLinks.Inc()
}
