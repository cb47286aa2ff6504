package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sfltools/price-data/internal/config"
	"github.com/sfltools/price-data/internal/model"
)

// stubStore returns canned data and records query arguments.
type stubStore struct {
	items   []string
	history []model.PriceObservation
	err     error

	gotItem string
	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubStore) ListItems(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubStore) PriceHistory(ctx context.Context, item string, from, to time.Time) ([]model.PriceObservation, error) {
	s.gotItem = item
	s.gotFrom = from
	s.gotTo = to
	if s.err != nil {
		return nil, s.err
	}
	return s.history, nil
}

func newTestServer(t *testing.T, store Store) *Server {
	t.Helper()
	cfg := config.ServerConfig{
		Port:        8090,
		StaticDir:   t.TempDir(),
		CORSOrigins: []string{"*"},
	}
	return New(cfg, store, nil)
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func dec(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestHandleItems(t *testing.T) {
	store := &stubStore{items: []string{"Potato", "Sunflower", "Wood"}}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/items")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var items []string
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(items) != 3 || items[0] != "Potato" || items[2] != "Wood" {
		t.Errorf("items = %v, want [Potato Sunflower Wood]", items)
	}
}

func TestHandleItems_StoreError(t *testing.T) {
	store := &stubStore{err: errors.New("db down")}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/items")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in the body")
	}
}

func TestHandlePriceHistory_MissingItem(t *testing.T) {
	store := &stubStore{}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/price_history")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in the body")
	}
}

func TestHandlePriceHistory_InvalidDays(t *testing.T) {
	store := &stubStore{}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/price_history?item=Sunflower&days=soon")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlePriceHistory_StoreError(t *testing.T) {
	store := &stubStore{err: errors.New("db down")}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/price_history?item=Sunflower")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestHandlePriceHistory_Formatting(t *testing.T) {
	ts := time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC)
	store := &stubStore{history: []model.PriceObservation{
		{
			ItemName:  "Sunflower",
			P2PPrice:  dec(100.0),
			Timestamp: ts,
		},
		{
			ItemName:  "Sunflower",
			P2PPrice:  dec(0.123456),
			SeqPrice:  dec(3.0),
			GEPrice:   dec(2.0),
			Timestamp: ts.Add(time.Hour),
		},
	}}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/price_history?item=Sunflower")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var entries []historyEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.P2PPrice == nil || *first.P2PPrice != 100.0 {
		t.Errorf("P2PPrice = %v, want 100", first.P2PPrice)
	}
	if first.P2PDiscount == nil || *first.P2PDiscount != 90.0 {
		t.Errorf("P2PDiscount = %v, want 90", first.P2PDiscount)
	}
	if first.SeqPrice != nil || first.GEPrice != nil {
		t.Error("seq/ge prices should be null when absent")
	}
	if first.Timestamp != "01/06/2025 14:30:05" {
		t.Errorf("Timestamp = %q, want %q", first.Timestamp, "01/06/2025 14:30:05")
	}

	second := entries[1]
	if second.P2PPrice == nil || *second.P2PPrice != 0.1235 {
		t.Errorf("P2PPrice = %v, want 0.1235 (rounded to 4 decimals)", second.P2PPrice)
	}
	if second.SeqPrice == nil || *second.SeqPrice != 3.0 {
		t.Errorf("SeqPrice = %v, want 3", second.SeqPrice)
	}
	if second.GEPrice == nil || *second.GEPrice != 2.0 {
		t.Errorf("GEPrice = %v, want 2", second.GEPrice)
	}
}

func TestHandlePriceHistory_DiscountAbsentWithoutP2P(t *testing.T) {
	store := &stubStore{history: []model.PriceObservation{
		{
			ItemName:  "Wood",
			GEPrice:   dec(2.0),
			Timestamp: time.Now(),
		},
	}}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/price_history?item=Wood")

	var raw []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if raw[0]["p2p_discount"] != nil {
		t.Errorf("p2p_discount = %v, want null", raw[0]["p2p_discount"])
	}
	if raw[0]["p2p_price"] != nil {
		t.Errorf("p2p_price = %v, want null", raw[0]["p2p_price"])
	}
}

func TestHandlePriceHistory_Window(t *testing.T) {
	t.Run("default 30 days", func(t *testing.T) {
		store := &stubStore{}
		s := newTestServer(t, store)

		doRequest(t, s, "/api/price_history?item=Sunflower")

		window := store.gotTo.Sub(store.gotFrom)
		want := 30 * 24 * time.Hour
		if window < want-time.Hour || window > want+time.Hour {
			t.Errorf("window = %v, want about %v", window, want)
		}
	})

	t.Run("days=0 returns empty array", func(t *testing.T) {
		store := &stubStore{}
		s := newTestServer(t, store)

		rec := doRequest(t, s, "/api/price_history?item=Sunflower&days=0")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := rec.Body.String(); got != "[]" {
			t.Errorf("body = %q, want []", got)
		}
	})
}

func TestHandlePriceHistory_UnknownItem(t *testing.T) {
	store := &stubStore{}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/price_history?item=Nonexistent")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for unknown item", rec.Code)
	}
	if got := rec.Body.String(); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
	if store.gotItem != "Nonexistent" {
		t.Errorf("queried item = %q, want Nonexistent", store.gotItem)
	}
}

func TestRequestIDHeader(t *testing.T) {
	store := &stubStore{}
	s := newTestServer(t, store)

	rec := doRequest(t, s, "/api/items")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("X-Request-ID = %q, want fixed-id", got)
	}
}
