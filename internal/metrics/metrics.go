package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewShipmentsCreatedTotal returns a Prometheus counter for the number of shipments created through the API
func NewShipmentsCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shipments_created_total",
		Help: "Total number of shipments created through the API",
	})
}

// NewShipmentsInStore returns a Prometheus gauge for the current number of shipments held in memory
func NewShipmentsInStore() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "shipments_in_store",
		Help: "Current number of shipments held in memory",
	})
}
