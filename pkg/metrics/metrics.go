package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SettlementOutcomes *prometheus.CounterVec
	InvoicesGenerated  *prometheus.CounterVec
	RentPayments       *prometheus.CounterVec
	RentalsExpired     prometheus.Counter
	JobsProcessed      *prometheus.CounterVec
	JobDuration        *prometheus.HistogramVec
	Errors             *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds the metrics singleton and registers it with the default registerer.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = New(namespace, prometheus.DefaultRegisterer)
	})
	return metricsInstance
}

// New builds a Metrics set registered with reg.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SettlementOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_outcomes_total",
			Help:      "Invoice settlement attempts by outcome.",
		}, []string{"outcome"}),
		InvoicesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_generated_total",
			Help:      "Units visited by invoice generation, by result.",
		}, []string{"result"}),
		RentPayments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rent_payments_total",
			Help:      "Peer rent payments by status.",
		}, []string{"status"}),
		RentalsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rentals_expired_total",
			Help:      "Tenants deactivated by the expiry sweep.",
		}),
		JobsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_processed_total",
			Help:      "Scheduled jobs run, by kind and status.",
		}, []string{"kind", "status"}),
		JobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Duration of scheduled jobs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total errors grouped by component.",
		}, []string{"component"}),
	}

	reg.MustRegister(
		m.SettlementOutcomes,
		m.InvoicesGenerated,
		m.RentPayments,
		m.RentalsExpired,
		m.JobsProcessed,
		m.JobDuration,
		m.Errors,
	)
	return m
}

func (m *Metrics) Settlement(outcome string) {
	if m != nil {
		m.SettlementOutcomes.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) Invoice(result string) {
	if m != nil {
		m.InvoicesGenerated.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) Rent(status string) {
	if m != nil {
		m.RentPayments.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) RentalExpired() {
	if m != nil {
		m.RentalsExpired.Inc()
	}
}

func (m *Metrics) Job(kind, status string, took time.Duration) {
	if m != nil {
		m.JobsProcessed.WithLabelValues(kind, status).Inc()
		m.JobDuration.WithLabelValues(kind).Observe(took.Seconds())
	}
}

func (m *Metrics) Error(component string) {
	if m != nil {
		m.Errors.WithLabelValues(component).Inc()
	}
}
