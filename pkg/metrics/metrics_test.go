package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.IncSlotSummary(SummaryResultOK)
	m.IncSlotSummary(SummaryResultOK)
	m.IncSlotSummary(SummaryResultOutOfWindow)
	m.IncReservation(ReservationResultUnavailable)
	m.AddStaleSpanFallbacks(3)
	m.AddStaleSpanFallbacks(0)
	m.ObserveDBQuery("query", 5*time.Millisecond, errors.New("boom"))
	m.ObserveHTTPRequest("GET", "/api/v1/slots", "200", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SlotSummaryTotal.WithLabelValues(SummaryResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotSummaryTotal.WithLabelValues(SummaryResultOutOfWindow)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues(ReservationResultUnavailable)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StaleSpanFallbacksTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrorsTotal.WithLabelValues("query")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/slots", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncSlotSummary(SummaryResultOK)
		m.IncReservation(ReservationResultCreated)
		m.AddStaleSpanFallbacks(1)
		m.ObserveDBQuery("exec", time.Millisecond, nil)
		m.ObserveHTTPRequest("GET", "/", "200", time.Millisecond)
		m.SetDBPoolStats(1, 1, 0)
	})
}
