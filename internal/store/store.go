package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sfltools/price-data/internal/model"
)

// Postgres persists and queries price observations in the item_prices table.
type Postgres struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgres creates a store backed by the given pool.
func NewPostgres(db *pgxpool.Pool, logger *slog.Logger) *Postgres {
	if logger == nil {
		logger = slog.Default()
	}
	return &Postgres{
		db:     db,
		logger: logger,
	}
}

// InsertObservations writes one cycle's rows inside a single
// transaction. Either every row commits or none do, so readers never
// observe a partial cycle.
func (s *Postgres) InsertObservations(ctx context.Context, obs []model.PriceObservation) error {
	if len(obs) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cycle transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, o := range obs {
		batch.Queue(`
			INSERT INTO item_prices (item_name, p2p_price, seq_price, ge_price, timestamp, updated_text)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, o.ItemName, o.P2PPrice, o.SeqPrice, o.GEPrice, o.Timestamp, o.UpdatedText)
	}

	results := tx.SendBatch(ctx, batch)
	for range obs {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("insert observation: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cycle batch: %w", err)
	}

	return nil
}

// ListItems returns the distinct set of item names ever observed,
// lexicographically ordered.
func (s *Postgres) ListItems(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT item_name FROM item_prices ORDER BY item_name
	`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan item name: %w", err)
		}
		items = append(items, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

// PriceHistory returns all observations for one item within
// [from, to], ordered by timestamp ascending. An unknown item yields
// an empty slice, not an error.
func (s *Postgres) PriceHistory(ctx context.Context, item string, from, to time.Time) ([]model.PriceObservation, error) {
	rows, err := s.db.Query(ctx, `
		SELECT item_name, p2p_price, seq_price, ge_price, timestamp, updated_text
		FROM item_prices
		WHERE item_name = $1 AND timestamp BETWEEN $2 AND $3
		ORDER BY timestamp
	`, item, from, to)
	if err != nil {
		return nil, fmt.Errorf("query price history: %w", err)
	}
	defer rows.Close()

	history := []model.PriceObservation{}
	for rows.Next() {
		var o model.PriceObservation
		var updated *string
		if err := rows.Scan(&o.ItemName, &o.P2PPrice, &o.SeqPrice, &o.GEPrice, &o.Timestamp, &updated); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		if updated != nil {
			o.UpdatedText = *updated
		}
		history = append(history, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observations: %w", err)
	}

	return history, nil
}
