package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sfltools/price-data/internal/model"
)

// GetPrices fetches the current price snapshot for all markets.
func (c *Client) GetPrices(ctx context.Context) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := c.get(ctx, &snap); err != nil {
		return nil, fmt.Errorf("get prices: %w", err)
	}

	// A document without a data object is an empty snapshot, not an error.
	if snap.Markets == nil {
		snap.Markets = map[string]map[string]decimal.Decimal{}
	}

	return &snap, nil
}
