package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/sfltools/price-data/internal/api"
	"github.com/sfltools/price-data/internal/config"
	"github.com/sfltools/price-data/internal/database"
	"github.com/sfltools/price-data/internal/ingest"
	"github.com/sfltools/price-data/internal/store"
	"github.com/sfltools/price-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/tracker.yaml", "path to config file")
	flag.Parse()

	// .env is optional; deployments can set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting price tracker",
		"version", version.String(),
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("connecting to database",
		"host", cfg.Database.Postgres.Host,
		"port", cfg.Database.Postgres.Port,
		"database", cfg.Database.Postgres.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database.Postgres)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.Error("failed to set up schema", "error", err)
		os.Exit(1)
	}
	logger.Info("database ready")

	priceStore := store.NewPostgres(pool, logger)

	client := api.NewClient(
		cfg.API.PricesURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithMaxRetries(cfg.API.MaxRetries),
	)

	ingester := ingest.New(ingest.Config{
		Interval: cfg.Poller.Interval,
		Timeout:  cfg.Poller.Timeout,
	}, client, priceStore, logger)

	if err := ingester.Start(ctx); err != nil {
		logger.Error("failed to start ingester", "error", err)
		os.Exit(1)
	}

	opsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: newOpsHandler(cfg.Metrics.Path, pool),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting metrics server", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
		if err := opsServer.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return opsServer.Shutdown(shutdownCtx)
	})

	logger.Info("tracker running",
		"instance_id", cfg.Instance.ID,
		"interval", cfg.Poller.Interval,
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Metrics.Port),
	)

	if err := g.Wait(); err != nil {
		logger.Error("metrics server error", "error", err)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	if err := ingester.Stop(stopCtx); err != nil {
		logger.Warn("ingester did not stop cleanly", "error", err)
	}

	logger.Info("tracker stopped")
}

// newOpsHandler serves Prometheus metrics and a health check.
func newOpsHandler(metricsPath string, pool *pgxpool.Pool) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(metricsPath, promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string         `json:"status"`
			Components map[string]any `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]any),
		}

		if err := pool.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["postgres"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["postgres"] = "connected"
		}

		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	return mux
}
