package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.Settlement("paid")
	m.Settlement("paid")
	m.Invoice("created")
	m.RentalExpired()
	m.Job("expire_rentals", "ok", time.Second)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SettlementOutcomes.WithLabelValues("paid")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.InvoicesGenerated.WithLabelValues("created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RentalsExpired))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.JobsProcessed.WithLabelValues("expire_rentals", "ok")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Settlement("paid")
		m.Invoice("created")
		m.Rent("ok")
		m.RentalExpired()
		m.Job("k", "ok", 0)
		m.Error("x")
	})
}
