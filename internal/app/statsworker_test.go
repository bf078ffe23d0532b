package app

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"erp-monolith/internal/domain"
	"erp-monolith/internal/logx"
	"erp-monolith/internal/store"
)

func TestStatsWorker_PublishesStoreSize(t *testing.T) {
	t.Parallel()

	s := store.NewShipmentStore()
	_, err := s.Create(domain.ShipmentCreate{Carrier: "UPS"})
	require.NoError(t, err)
	_, err = s.Create(domain.ShipmentCreate{Carrier: "FedEx"})
	require.NoError(t, err)

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "statsworker_test_gauge"})
	w := NewStatsWorker(s, gauge, logx.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// an already-cancelled context still gets the initial publish
	w.Run(ctx, time.Hour)

	require.Equal(t, float64(2), testutil.ToFloat64(gauge))
}

func TestStatsWorker_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	s := store.NewShipmentStore()
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "statsworker_cancel_test_gauge"})
	w := NewStatsWorker(s, gauge, logx.Nop())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
