// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"

	planapp "github.com/nutriforge/v1/internal/application/plan"
	"github.com/nutriforge/v1/internal/infrastructure/ai/openai"
	"github.com/nutriforge/v1/internal/infrastructure/cache"
	cataloginfra "github.com/nutriforge/v1/internal/infrastructure/catalog"
	"github.com/nutriforge/v1/internal/infrastructure/config"
	"github.com/nutriforge/v1/internal/infrastructure/http/apiserver"
	"github.com/nutriforge/v1/internal/infrastructure/monitoring"
	"github.com/nutriforge/v1/internal/ports/inbound"
	"github.com/nutriforge/v1/internal/ports/outbound"
	"github.com/nutriforge/v1/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	CacheModule,
	CatalogModule,
	AIModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MetricsModule provides the Prometheus registry and pipeline collectors
var MetricsModule = fx.Provide(
	func() *prometheus.Registry {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg
	},
	func(reg *prometheus.Registry) *monitoring.Metrics {
		return monitoring.NewMetrics(reg)
	},
)

// CacheModule provides the Redis store and the generation cache
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*cache.RedisStore, error) {
		return cache.NewRedisStore(&cfg.Redis, log)
	},
	func(store *cache.RedisStore) outbound.CacheRepository { return store },
	func(store outbound.CacheRepository, cfg *config.Config, metrics *monitoring.Metrics, log *zap.Logger) (outbound.GenerationCache, error) {
		// A generation run covers the provider call plus validation; give it
		// headroom beyond the provider timeout alone.
		genTimeout := cfg.AI.Timeout + cfg.AI.Timeout/2
		return cache.NewGenerationCache(store, cfg.Cache, genTimeout, metrics, log)
	},
)

// CatalogModule provides the exercise catalog
var CatalogModule = fx.Provide(
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) (*cataloginfra.InMemoryCatalog, error) {
			return cataloginfra.NewInMemoryCatalog(cfg.Catalog.File, log)
		},
		fx.As(new(outbound.ExerciseCatalog)),
	),
)

// AIModule provides the generative provider client
var AIModule = fx.Provide(
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) (*openai.Client, error) {
			return openai.NewClient(&cfg.AI, log)
		},
		fx.As(new(outbound.AIService)),
	),
)

// ServiceModule provides the plan generation service
var ServiceModule = fx.Provide(
	fx.Annotate(
		planapp.NewService,
		fx.As(new(inbound.PlanService)),
	),
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	store *cache.RedisStore,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting NutriForge application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down NutriForge application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}
			if err := store.Close(); err != nil {
				log.Error("Failed to close cache store", zap.Error(err))
			}

			_ = log.Sync()
			return nil
		},
	})
}
