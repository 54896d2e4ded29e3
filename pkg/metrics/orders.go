package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Orders entering the lifecycle
	OrdersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	OrdersPaidTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_paid_total",
		Help: "Total number of orders marked paid",
	})

	OrdersDeliveredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_delivered_total",
		Help: "Total number of orders marked delivered",
	})

	PaymentValidationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_validation_failures_total",
		Help: "Payment method/result validation failures by payment type",
	}, []string{"payment_type"})

	// Latency of the admin stats aggregation
	AdminStatsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "admin_stats_duration_seconds",
		Help:    "Latency of the admin dashboard stats aggregation",
		Buckets: prometheus.DefBuckets,
	})

	AdminStatsCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "admin_stats_cache_hits_total",
		Help: "Admin stats responses served from the Redis cache",
	})
)

func Init() {
	prometheus.MustRegister(
		OrdersCreatedTotal,
		OrdersPaidTotal,
		OrdersDeliveredTotal,
		PaymentValidationFailures,
		AdminStatsDuration,
		AdminStatsCacheHits,
	)
}
