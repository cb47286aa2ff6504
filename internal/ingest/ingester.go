package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sfltools/price-data/internal/metrics"
	"github.com/sfltools/price-data/internal/model"
)

// PriceSource provides upstream snapshots.
type PriceSource interface {
	GetPrices(ctx context.Context) (*model.Snapshot, error)
}

// ObservationStore persists one cycle's rows as a single atomic batch.
type ObservationStore interface {
	InsertObservations(ctx context.Context, obs []model.PriceObservation) error
}

// Config holds ingester configuration.
type Config struct {
	Interval time.Duration // Time between cycles (default: 15m)
	Timeout  time.Duration // Per-cycle deadline (default: 30s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 15 * time.Minute,
		Timeout:  30 * time.Second,
	}
}

// Ingester periodically fetches a price snapshot, reconciles it into
// per-item observations, and commits them as one batch. Cycles run on a
// single goroutine, so they can never overlap even if one runs long.
type Ingester struct {
	cfg    Config
	source PriceSource
	store  ObservationStore
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Ingester.
func New(cfg Config, source PriceSource, store ObservationStore, logger *slog.Logger) *Ingester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingester{
		cfg:    cfg,
		source: source,
		store:  store,
		logger: logger,
	}
}

// Start begins the ingestion loop.
func (in *Ingester) Start(ctx context.Context) error {
	in.ctx, in.cancel = context.WithCancel(ctx)

	in.wg.Add(1)
	go in.run()

	in.logger.Info("ingester started", "interval", in.cfg.Interval)
	return nil
}

// Stop gracefully shuts down the ingester, waiting for an in-flight
// cycle to finish or the given context to expire.
func (in *Ingester) Stop(ctx context.Context) error {
	if in.cancel != nil {
		in.cancel()
	}

	done := make(chan struct{})
	go func() {
		in.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		in.logger.Info("ingester stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main ingestion loop.
func (in *Ingester) run() {
	defer in.wg.Done()

	ticker := time.NewTicker(in.cfg.Interval)
	defer ticker.Stop()

	// Ingest immediately on start.
	in.runCycle()

	for {
		select {
		case <-in.ctx.Done():
			return
		case <-ticker.C:
			in.runCycle()
		}
	}
}

// runCycle executes one fetch → reconcile → insert cycle. Any failure
// is logged and the cycle is skipped; the loop always continues.
func (in *Ingester) runCycle() {
	cycleID := uuid.New().String()
	start := time.Now()
	logger := in.logger.With("cycle_id", cycleID)

	ctx, cancel := context.WithTimeout(in.ctx, in.cfg.Timeout)
	defer cancel()

	snap, err := in.source.GetPrices(ctx)
	if err != nil {
		metrics.RecordCycle(metrics.CycleFetchError, time.Since(start))
		logger.Error("failed to fetch price snapshot", "error", err)
		return
	}

	// Capture time for the whole cycle, shared by every row.
	obs := Reconcile(snap, start)
	if len(obs) == 0 {
		metrics.RecordCycle(metrics.CycleEmpty, time.Since(start))
		logger.Info("empty snapshot, nothing to insert", "updated_text", snap.UpdatedText)
		return
	}

	if err := in.store.InsertObservations(ctx, obs); err != nil {
		metrics.RecordCycle(metrics.CycleInsertError, time.Since(start))
		logger.Error("failed to insert observations", "error", err, "rows", len(obs))
		return
	}

	metrics.RecordCycle(metrics.CycleOK, time.Since(start))
	metrics.AddRowsInserted(len(obs))
	logger.Info("cycle complete",
		"rows", len(obs),
		"markets", len(snap.Markets),
		"updated_text", snap.UpdatedText,
		"duration", time.Since(start),
	)
}
