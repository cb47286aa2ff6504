package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Names of the three markets the tracker stores prices for. Snapshots
// may carry additional markets; those are tolerated but have no column.
const (
	MarketP2P = "p2p"
	MarketSeq = "seq"
	MarketGE  = "ge"
)

// Snapshot is one fetched upstream document: every market's current
// prices at a point in time, plus an opaque freshness label.
type Snapshot struct {
	UpdatedText string                                `json:"updated_text"`
	Markets     map[string]map[string]decimal.Decimal `json:"data"`
}

// Prices returns the price map for a market, or nil if the snapshot
// does not carry it.
func (s *Snapshot) Prices(market string) map[string]decimal.Decimal {
	return s.Markets[market]
}

// PriceObservation is one persisted row: one item's known prices across
// markets at one cycle's timestamp. A nil price means the item was not
// traded in that market during the cycle. Rows are append-only.
type PriceObservation struct {
	ItemName    string
	P2PPrice    *decimal.Decimal
	SeqPrice    *decimal.Decimal
	GEPrice     *decimal.Decimal
	Timestamp   time.Time
	UpdatedText string
}

// HasPrice reports whether at least one market price is populated.
// Rows without any price are never inserted.
func (o *PriceObservation) HasPrice() bool {
	return o.P2PPrice != nil || o.SeqPrice != nil || o.GEPrice != nil
}
