package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"erp-monolith/internal/config"
	"erp-monolith/internal/http/handlers"
	"erp-monolith/internal/http/router"
	"erp-monolith/internal/metrics"
	"erp-monolith/internal/store"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		logFatalf: log.Fatalf,
	}
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStore(container); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

// registerCollector registers c with the default registry, reusing the
// already-registered collector when containers are built more than once.
func registerCollector[C prometheus.Collector](c C) C {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func registerCore(container *dig.Container, ctx context.Context) error {
	if err := container.Provide(
		func() prometheus.Counter { return registerCollector(metrics.NewRateLimitExceededTotal()) },
		dig.Name("rate_limit_exceeded_total"),
	); err != nil {
		return fmt.Errorf("provide rate limit counter: %w", err)
	}
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		func() prometheus.Counter { return registerCollector(metrics.NewShipmentsCreatedTotal()) },
		func() prometheus.Gauge { return registerCollector(metrics.NewShipmentsInStore()) },
	)
}

func registerStore(container *dig.Container) error {
	return provideAll(container,
		store.NewShipmentStore,
		handlers.NewShipmentUsecase,
		NewStatsWorker,
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewHRHandler,
		handlers.NewPayrollHandler,
		handlers.NewAccountingHandler,
		handlers.NewFinanceHandler,
		handlers.NewBillingHandler,
		handlers.NewProcurementHandler,
		handlers.NewSupplyChainHandler,
		handlers.NewInventoryHandler,
		handlers.NewV2Handler,
		handlers.NewShipmentHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouterDeps,
		router.New,
		serverProvider,
	)
}
