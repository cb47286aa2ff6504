package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sfltools/price-data/internal/model"
)

// displayTimeFormat is the day-first format the chart page expects.
const displayTimeFormat = "02/01/2006 15:04:05"

// defaultHistoryDays is the lookback window when ?days is omitted.
const defaultHistoryDays = 30

var discountFactor = decimal.NewFromFloat(0.9)

// historyEntry is one observation formatted for display: prices rounded
// to 4 decimals, nil for markets the item was not traded in.
type historyEntry struct {
	ItemName    string   `json:"item_name"`
	P2PPrice    *float64 `json:"p2p_price"`
	P2PDiscount *float64 `json:"p2p_discount"`
	SeqPrice    *float64 `json:"seq_price"`
	GEPrice     *float64 `json:"ge_price"`
	Timestamp   string   `json:"timestamp"`
}

// handleItems returns every item name ever observed, sorted.
func (s *Server) handleItems(c *gin.Context) {
	items, err := s.store.ListItems(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list items", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// handlePriceHistory returns one item's observations within the
// lookback window, with display formatting applied.
func (s *Server) handlePriceHistory(c *gin.Context) {
	item := c.Query("item")
	if item == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
		return
	}

	days := defaultHistoryDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = parsed
	}

	now := time.Now()
	from := now.AddDate(0, 0, -days)

	history, err := s.store.PriceHistory(c.Request.Context(), item, from, now)
	if err != nil {
		s.logger.Error("failed to fetch price history", "error", err, "item", item)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch price history"})
		return
	}

	entries := make([]historyEntry, 0, len(history))
	for _, o := range history {
		entries = append(entries, formatObservation(o))
	}
	c.JSON(http.StatusOK, entries)
}

// formatObservation applies the read-time display rules: 4-decimal
// rounding, the 10% peer-to-peer discount, and day-first timestamps.
func formatObservation(o model.PriceObservation) historyEntry {
	e := historyEntry{
		ItemName:  o.ItemName,
		SeqPrice:  round4(o.SeqPrice),
		GEPrice:   round4(o.GEPrice),
		Timestamp: o.Timestamp.Format(displayTimeFormat),
	}
	if o.P2PPrice != nil {
		rounded := o.P2PPrice.Round(4)
		e.P2PPrice = toFloat(rounded)
		e.P2PDiscount = toFloat(rounded.Mul(discountFactor).Round(4))
	}
	return e
}

func round4(p *decimal.Decimal) *float64 {
	if p == nil {
		return nil
	}
	return toFloat(p.Round(4))
}

func toFloat(d decimal.Decimal) *float64 {
	f, _ := d.Float64()
	return &f
}
