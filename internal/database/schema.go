package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the item_prices table and its lookup index if
// they do not exist. The tracker runs this once at startup so a fresh
// database needs no manual migration step.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const tableSQL = `
		CREATE TABLE IF NOT EXISTS item_prices (
			id           BIGSERIAL PRIMARY KEY,
			item_name    TEXT NOT NULL,
			p2p_price    NUMERIC(20, 8),
			seq_price    NUMERIC(20, 8),
			ge_price     NUMERIC(20, 8),
			timestamp    TIMESTAMPTZ NOT NULL,
			updated_text TEXT
		)
	`
	if _, err := pool.Exec(ctx, tableSQL); err != nil {
		return fmt.Errorf("create item_prices table: %w", err)
	}

	// Supports the per-item history window query.
	const indexSQL = `
		CREATE INDEX IF NOT EXISTS item_prices_item_name_timestamp_idx
		ON item_prices (item_name, timestamp)
	`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return fmt.Errorf("create item_prices index: %w", err)
	}

	return nil
}
