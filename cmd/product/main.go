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

	"github.com/link/inventory-platform/internal/product"
	httpDelivery "github.com/link/inventory-platform/internal/product/delivery/http"
	"github.com/link/inventory-platform/internal/product/repository"
	"github.com/link/inventory-platform/pkg/config"
	"github.com/link/inventory-platform/pkg/database"
	"github.com/link/inventory-platform/pkg/logger"
	"github.com/link/inventory-platform/pkg/middleware"
	"github.com/link/inventory-platform/pkg/tracing"
)

const (
	serviceName    = "product-service"
	serviceVersion = "1.0.0"
	shutdownGrace  = 10 * time.Second
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "product",
		Short:         "Product catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: product.yaml in ., ./config or /etc/product)")

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
		logger.Logger.Error().Err(err).Msg("Product service failed")
		os.Exit(1)
	}
}

func loadConfig() (config.Common, error) {
	var cfg config.Common

	v, err := config.Load("product", configPath, config.CommonDefaults("8080", "productdb"))
	if err != nil {
		return cfg, err
	}
	if err := config.Decode(v, &cfg); err != nil {
		return cfg, err
	}

	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.Log.Level)

	return cfg, cfg.Validate()
}

func openDatabase(cfg database.Config) (*gorm.DB, error) {
	db, err := database.NewGormConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := repository.NewGormProductRepository(db).AutoMigrate(); err != nil {
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

	logger.Logger.Info().Str("driver", cfg.DB.Driver).Msg("Product schema migrated")
	return nil
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.Log.Level).
		Msg("Starting product service")

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

	handler, err := product.InitializeHTTPHandler(db)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := mux.NewRouter()
	mwConfig := middleware.DefaultConfig(serviceName, cfg.App.API.Key, middleware.NewHTTPMetrics("product_service", registry))
	if cfg.HTTP.RequestTimeout > 0 {
		mwConfig.TimeoutDuration = cfg.HTTP.RequestTimeout
	}
	middleware.Register(router, mwConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, sqlDB)
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
