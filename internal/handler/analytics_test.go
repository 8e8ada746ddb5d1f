package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tradejournal/internal/analytics"
	"tradejournal/internal/metrics"
	"tradejournal/internal/models"
)

func seedTrade(t *testing.T, store *memStore, owner, side, strategy string, day int, price, exit int64) {
	t.Helper()
	trade := metrics.Enrich(models.Trade{
		Owner:    owner,
		Symbol:   "SEED",
		Side:     side,
		Quantity: 10,
		Price:    decimal.NewFromInt(price),
		Exit:     decimal.NewFromInt(exit),
		Strategy: strategy,
		Date:     time.Date(2026, 8, day, 10, 0, 0, 0, time.UTC),
	}, false, time.Now().UTC())
	if err := store.InsertTrade(context.Background(), &trade); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestAnalytics_EmptySentinel(t *testing.T) {
	r := newTestRouter(newMemStore(), "user-1")
	w := doJSON(t, r, http.MethodGet, "/api/analytics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var res analytics.Result
	dataOf(t, w, &res)
	if res.HasData {
		t.Fatalf("hasData=true for empty set")
	}
}

func TestAnalytics_FilteredAggregation(t *testing.T) {
	store := newMemStore()
	seedTrade(t, store, "user-1", models.SideBuy, "A", 1, 100, 110)  // +100
	seedTrade(t, store, "user-1", models.SideBuy, "B", 2, 200, 190)  // -100
	seedTrade(t, store, "user-1", models.SideSell, "A", 3, 100, 90)  // +100
	seedTrade(t, store, "user-2", models.SideBuy, "A", 1, 100, 999)  // other owner

	r := newTestRouter(store, "user-1")

	w := doJSON(t, r, http.MethodGet, "/api/analytics", nil)
	var res analytics.Result
	dataOf(t, w, &res)
	if !res.HasData || res.Summary.TotalTrades != 3 {
		t.Fatalf("result=%+v want 3 trades for user-1 only", res.Summary)
	}
	if res.Summary.NetPnL.Cmp(decimal.NewFromInt(100)) != 0 {
		t.Fatalf("netPnl=%s want=100", res.Summary.NetPnL)
	}
	if last := res.EquityCurve[len(res.EquityCurve)-1]; last.CumulativePnL.Cmp(res.Summary.NetPnL) != 0 {
		t.Fatalf("curve end %s != netPnl", last.CumulativePnL)
	}

	w = doJSON(t, r, http.MethodGet, "/api/analytics?strategy=A", nil)
	dataOf(t, w, &res)
	if res.Summary.TotalTrades != 2 || res.Summary.NetPnL.Cmp(decimal.NewFromInt(200)) != 0 {
		t.Fatalf("strategy filter: %+v", res.Summary)
	}
	// The curve restarts from zero over the filtered set.
	if res.EquityCurve[0].CumulativePnL.Cmp(decimal.NewFromInt(100)) != 0 {
		t.Fatalf("curve[0]=%s want=100", res.EquityCurve[0].CumulativePnL)
	}

	w = doJSON(t, r, http.MethodGet, "/api/analytics?side=SELL", nil)
	dataOf(t, w, &res)
	if res.Summary.TotalTrades != 1 {
		t.Fatalf("side filter: %+v", res.Summary)
	}

	w = doJSON(t, r, http.MethodGet, "/api/analytics?from=2026-08-02&to=2026-08-02", nil)
	dataOf(t, w, &res)
	if res.Summary == nil || res.Summary.TotalTrades != 1 || res.Summary.LosingTrades != 1 {
		t.Fatalf("date filter: %+v", res.Summary)
	}

	w = doJSON(t, r, http.MethodGet, "/api/analytics?from=2030-01-01&to=2030-01-02", nil)
	dataOf(t, w, &res)
	if res.HasData {
		t.Fatalf("future window must hit the empty sentinel")
	}
}
