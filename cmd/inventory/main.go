package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/link/inventory-platform/internal/inventory"
	"github.com/link/inventory-platform/internal/inventory/client"
	httpDelivery "github.com/link/inventory-platform/internal/inventory/delivery/http"
	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/internal/inventory/repository"
	"github.com/link/inventory-platform/kafka"
	"github.com/link/inventory-platform/pkg/config"
	"github.com/link/inventory-platform/pkg/database"
	"github.com/link/inventory-platform/pkg/logger"
	"github.com/link/inventory-platform/pkg/middleware"
	"github.com/link/inventory-platform/pkg/resilience"
	"github.com/link/inventory-platform/pkg/tracing"
)

const (
	serviceName    = "inventory-service"
	serviceVersion = "1.0.0"
	shutdownGrace  = 10 * time.Second
)

// Config is the inventory service configuration.
type Config struct {
	config.Common `mapstructure:",squash"`

	Product struct {
		Service client.Config `mapstructure:"service"`
	} `mapstructure:"product"`
	Resilience resilience.Config  `mapstructure:"resilience"`
	Kafka      kafka.Config       `mapstructure:"kafka"`
	Redis      client.CacheConfig `mapstructure:"redis"`
}

func defaults() map[string]any {
	d := config.CommonDefaults("8081", "inventorydb")

	product := client.DefaultConfig()
	d["product.service.url"] = product.URL
	d["product.service.response-timeout"] = product.ResponseTimeout
	d["product.service.block-timeout"] = product.BlockTimeout

	r := resilience.DefaultConfig()
	d["resilience.circuit-breaker.failure-threshold"] = r.CircuitBreaker.FailureThreshold
	d["resilience.circuit-breaker.open-timeout"] = r.CircuitBreaker.OpenTimeout
	d["resilience.circuit-breaker.half-open-max-requests"] = r.CircuitBreaker.HalfOpenMaxRequests
	d["resilience.circuit-breaker.interval"] = r.CircuitBreaker.Interval
	d["resilience.retry.max-attempts"] = r.Retry.MaxAttempts
	d["resilience.retry.initial-interval"] = r.Retry.InitialInterval
	d["resilience.retry.max-interval"] = r.Retry.MaxInterval
	d["resilience.retry.multiplier"] = r.Retry.Multiplier
	d["resilience.rate-limiter.rate"] = r.RateLimiter.Rate
	d["resilience.rate-limiter.burst"] = r.RateLimiter.Burst

	d["kafka.brokers"] = []string{}
	d["kafka.topic"] = kafka.TopicInventoryChanged

	d["redis.addr"] = ""
	d["redis.password"] = ""
	d["redis.db"] = 0
	d["redis.ttl"] = 10 * time.Minute

	return d
}

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Inventory service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: inventory.yaml in ., ./config or /etc/inventory)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			RunE: func(_ *cobra.Command, _ []string) error {
				return migrate()
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Inventory service failed")
		os.Exit(1)
	}
}

func loadConfig() (Config, error) {
	var cfg Config

	v, err := config.Load("inventory", configPath, defaults())
	if err != nil {
		return cfg, err
	}
	if err := config.Decode(v, &cfg); err != nil {
		return cfg, err
	}

	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.Log.Level)

	// The time limiter of the product call follows the configured response timeout.
	cfg.Resilience.Timeout = cfg.Product.Service.ResponseTimeout
	cfg.Product.Service.APIKey = cfg.App.API.Key

	return cfg, cfg.Validate()
}

func openDatabase(cfg database.Config) (*gorm.DB, error) {
	db, err := database.NewGormConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := repository.NewGormInventoryRepository(db).AutoMigrate(); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.DB)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	logger.Logger.Info().Str("driver", cfg.DB.Driver).Msg("Inventory schema migrated")
	return nil
}

// productCache returns nil when redis is not configured or unreachable; the
// client then runs without a fallback.
func productCache(ctx context.Context, cfg client.CacheConfig) (client.ProductCache, func()) {
	if cfg.Addr == "" {
		logger.Logger.Info().Msg("Redis not configured, product fallback cache disabled")
		return nil, func() {}
	}

	rdb, err := client.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unavailable, product fallback cache disabled")
		return nil, func() {}
	}

	logger.Logger.Info().Str("addr", cfg.Addr).Dur("ttl", cfg.TTL).Msg("Product fallback cache enabled")
	return client.NewRedisProductCache(rdb, cfg.TTL), func() { _ = rdb.Close() }
}

type movementPublisher interface {
	domain.StockMovementPublisher
	Close() error
}

func stockPublisher(cfg kafka.Config) (movementPublisher, error) {
	if len(cfg.Brokers) == 0 {
		logger.Logger.Info().Msg("Kafka not configured, stock movements are not published")
		return kafka.NoopPublisher{}, nil
	}

	publisher, err := kafka.NewPublisher(cfg)
	if err != nil {
		return nil, err
	}

	logger.Logger.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("Stock movement publisher ready")
	return publisher, nil
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.Log.Level).
		Str("product_service", cfg.Product.Service.URL).
		Msg("Starting inventory service")

	tp, err := tracing.InitTracer(serviceName, serviceVersion, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to flush traces")
		}
	}()

	db, err := openDatabase(cfg.DB)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	logger.Logger.Info().Msg("Database initialized successfully")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	breakers := resilience.NewRegistry(registry)
	policy := breakers.Policy(client.ProductServicePolicy, cfg.Resilience)

	cache, closeCache := productCache(ctx, cfg.Redis)
	defer closeCache()
	catalog := client.NewProductClient(cfg.Product.Service, policy, cache)

	publisher, err := stockPublisher(cfg.Kafka)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to close stock movement publisher")
		}
	}()

	handler, err := inventory.InitializeHTTPHandler(db, catalog, publisher)
	if err != nil {
		return err
	}

	router := mux.NewRouter()
	mwConfig := middleware.DefaultConfig(serviceName, cfg.App.API.Key, middleware.NewHTTPMetrics("inventory_service", registry))
	if cfg.HTTP.RequestTimeout > 0 {
		mwConfig.TimeoutDuration = cfg.HTTP.RequestTimeout
	}
	middleware.Register(router, mwConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, sqlDB, breakers)
	httpDelivery.RegisterSwaggerDocs(router)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return run(ctx, &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           middleware.CORS(mwConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
	})
}

// run serves until ctx is cancelled and then drains in-flight requests.
func run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().
			Str("addr", srv.Addr).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
