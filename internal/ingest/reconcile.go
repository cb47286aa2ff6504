package ingest

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sfltools/price-data/internal/model"
)

// Reconcile merges a snapshot's market maps into one observation per
// item. Every item in the union of all markets is visited exactly once,
// so an item listed in two or three markets still yields a single row.
// Items carried only by markets without a price column produce no row.
//
// All rows share the snapshot's freshness label and the cycle timestamp
// ts. Output is sorted by item name so batches are deterministic.
func Reconcile(snap *model.Snapshot, ts time.Time) []model.PriceObservation {
	names := make(map[string]struct{})
	for _, prices := range snap.Markets {
		for name := range prices {
			names[name] = struct{}{}
		}
	}

	p2p := snap.Prices(model.MarketP2P)
	seq := snap.Prices(model.MarketSeq)
	ge := snap.Prices(model.MarketGE)

	obs := make([]model.PriceObservation, 0, len(names))
	for name := range names {
		o := model.PriceObservation{
			ItemName:    name,
			P2PPrice:    lookup(p2p, name),
			SeqPrice:    lookup(seq, name),
			GEPrice:     lookup(ge, name),
			Timestamp:   ts,
			UpdatedText: snap.UpdatedText,
		}
		if !o.HasPrice() {
			continue
		}
		obs = append(obs, o)
	}

	sort.Slice(obs, func(i, j int) bool {
		return obs[i].ItemName < obs[j].ItemName
	})

	return obs
}

func lookup(prices map[string]decimal.Decimal, name string) *decimal.Decimal {
	if p, ok := prices[name]; ok {
		return &p
	}
	return nil
}
