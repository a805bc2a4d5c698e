package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMetricsCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveSubmission("success", 1.02)
	m.ObserveSubmission("success", 1.01)
	m.ObserveSubmission("weekend_rejected", 0.001)
	m.ObserveFieldCheck("phone", false)
	m.ObserveContactLink()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, f := range families {
		byName[f.GetName()] = f
	}

	subs := byName["clinic_booking_submissions_total"]
	require.NotNil(t, subs)
	counts := map[string]float64{}
	for _, metric := range subs.GetMetric() {
		counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, 2.0, counts["success"])
	assert.Equal(t, 1.0, counts["weekend_rejected"])

	hist := byName["clinic_booking_submit_duration_seconds"]
	require.NotNil(t, hist)
	assert.Equal(t, uint64(3), hist.GetMetric()[0].GetHistogram().GetSampleCount())

	assert.Equal(t, 1.0, byName["clinic_booking_contact_links_total"].GetMetric()[0].GetCounter().GetValue())
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveSubmission("success", 1)
	m.ObserveFieldCheck("name", true)
	m.ObserveContactLink()
}
