package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CheckoutMetrics holds the RED metrics for the checkout use case plus
// failure counters for the best-effort stores.
type CheckoutMetrics struct {
	Checkouts       *prometheus.CounterVec
	Duration        *prometheus.HistogramVec
	AuditFailures   prometheus.Counter
	ArchiveFailures prometheus.Counter
}

// NewCheckoutMetrics registers the checkout collectors with reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkouts_total",
		Help: "Total number of checkout attempts by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pos_checkout_duration_seconds",
		Help:    "Duration of checkout execution in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	auditFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_audit_append_failed_total",
		Help: "Count of audit log append failures.",
	})
	archiveFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_order_archive_failed_total",
		Help: "Count of order archive write failures.",
	})

	reg.MustRegister(checkouts, duration, auditFailures, archiveFailures)
	return &CheckoutMetrics{
		Checkouts:       checkouts,
		Duration:        duration,
		AuditFailures:   auditFailures,
		ArchiveFailures: archiveFailures,
	}
}

// Handler exposes the default registry for the optional /metrics listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
