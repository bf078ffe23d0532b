package app

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/store"
)

// StatsWorker periodically publishes the shipment store size as a gauge.
type StatsWorker struct {
	store  *store.ShipmentStore
	gauge  prometheus.Gauge
	logger logx.Logger
}

// NewStatsWorker returns a new StatsWorker.
func NewStatsWorker(s *store.ShipmentStore, gauge prometheus.Gauge, logger logx.Logger) *StatsWorker {
	return &StatsWorker{
		store:  s,
		gauge:  gauge,
		logger: logger,
	}
}

// Run publishes stats every interval until ctx is done.
func (w *StatsWorker) Run(ctx context.Context, interval time.Duration) {
	w.publish()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.publish()
		}
	}
}

func (w *StatsWorker) publish() {
	n := w.store.Len()
	w.gauge.Set(float64(n))
	w.logger.Debug("store stats", logx.Int("shipments", n))
}
