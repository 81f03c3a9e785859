package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Renewal monitor metrics

	ScanCycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "agencydesk",
		Name:      "scan_cycle_duration_seconds",
		Help:      "Time taken for one full renewal scan across all owners.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	})

	OwnersScannedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agencydesk",
		Name:      "owners_scanned_total",
		Help:      "Owners processed by the renewal scan, by outcome.",
	}, []string{"outcome"})

	ExpiringItems = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "agencydesk",
		Name:      "expiring_items",
		Help:      "Items inside the lookahead window at the last scan, by tier.",
	}, []string{"tier"})

	RemindersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agencydesk",
		Name:      "reminders_total",
		Help:      "Reminder dispatch outcomes.",
	}, []string{"outcome"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "agencydesk",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agencydesk",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		ScanCycleDuration,
		OwnersScannedTotal,
		ExpiringItems,
		RemindersTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}
