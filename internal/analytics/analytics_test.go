package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(n int) time.Time {
	return time.Date(2026, 3, n, 10, 0, 0, 0, time.UTC)
}

func buyTrade(id uint64, n int, strategy string, pnl int64) models.Trade {
	return models.Trade{
		ID:       id,
		Symbol:   "TEST",
		Side:     models.SideBuy,
		Strategy: strategy,
		Date:     day(n),
		PnL:      d(pnl),
		Risk:     d(50),
		Reward:   d(100),
	}
}

func TestCompute_Empty(t *testing.T) {
	res := Compute(nil)
	if res.HasData {
		t.Fatalf("empty set must report hasData=false")
	}
	if res.Summary != nil || res.ByStrategy != nil || res.EquityCurve != nil {
		t.Fatalf("empty result must carry no aggregates: %+v", res)
	}
}

func TestCompute_ThreeTradeScenario(t *testing.T) {
	trades := []models.Trade{
		buyTrade(1, 1, "A", 100),
		buyTrade(2, 2, "B", -50),
		buyTrade(3, 3, "A", 100),
	}
	res := Compute(trades)
	if !res.HasData {
		t.Fatalf("hasData=false")
	}
	s := res.Summary
	if s.TotalTrades != 3 || s.WinningTrades != 2 || s.LosingTrades != 1 {
		t.Fatalf("counts=%d/%d/%d want 3/2/1", s.TotalTrades, s.WinningTrades, s.LosingTrades)
	}
	if s.NetPnL.Cmp(d(150)) != 0 {
		t.Fatalf("netPnl=%s want=150", s.NetPnL)
	}
	if s.TotalProfit.Cmp(d(200)) != 0 {
		t.Fatalf("totalProfit=%s want=200", s.TotalProfit)
	}
	if s.TotalLoss.Cmp(d(-50)) != 0 {
		t.Fatalf("totalLoss=%s want=-50 (kept negative)", s.TotalLoss)
	}
	if s.BestTrade == nil || s.BestTrade.ID != 1 {
		t.Fatalf("bestTrade=%+v want earliest pnl=100 trade (id 1)", s.BestTrade)
	}
	if s.WorstTrade == nil || s.WorstTrade.ID != 2 {
		t.Fatalf("worstTrade=%+v want id 2", s.WorstTrade)
	}
	if s.AvgPnL.Cmp(d(50)) != 0 {
		t.Fatalf("avgPnl=%s want=50", s.AvgPnL)
	}

	if len(res.ByStrategy) != 2 {
		t.Fatalf("byStrategy len=%d want=2", len(res.ByStrategy))
	}
	// First occurrence order: A before B.
	a := res.ByStrategy[0]
	if a.Strategy != "A" || a.Trades != 2 || a.NetPnL.Cmp(d(200)) != 0 {
		t.Fatalf("strategy A rollup=%+v", a)
	}
	if a.WinRate.Cmp(d(100)) != 0 {
		t.Fatalf("strategy A winRate=%s want=100", a.WinRate)
	}
	b := res.ByStrategy[1]
	if b.Strategy != "B" || b.Trades != 1 || b.Losses != 1 {
		t.Fatalf("strategy B rollup=%+v", b)
	}

	curve := res.EquityCurve
	if len(curve) != 3 {
		t.Fatalf("curve len=%d want=3", len(curve))
	}
	want := []int64{100, 50, 150}
	for i, w := range want {
		if curve[i].CumulativePnL.Cmp(d(w)) != 0 {
			t.Fatalf("curve[%d]=%s want=%d", i, curve[i].CumulativePnL, w)
		}
	}
	if curve[2].CumulativePnL.Cmp(s.NetPnL) != 0 {
		t.Fatalf("curve end %s != netPnl %s", curve[2].CumulativePnL, s.NetPnL)
	}
}

func TestCompute_RollupConsistency(t *testing.T) {
	trades := []models.Trade{
		buyTrade(1, 1, "scalp", 40),
		buyTrade(2, 2, "", -10),
		buyTrade(3, 3, "swing", 0),
		buyTrade(4, 4, "scalp", -25),
	}
	res := Compute(trades)
	s := res.Summary

	var groupTrades int
	groupPnL := decimal.Zero
	for _, g := range res.ByStrategy {
		groupTrades += g.Trades
		groupPnL = groupPnL.Add(g.NetPnL)
	}
	if groupTrades != s.TotalTrades {
		t.Fatalf("sum(byStrategy.trades)=%d want=%d", groupTrades, s.TotalTrades)
	}
	if groupPnL.Cmp(s.NetPnL) != 0 {
		t.Fatalf("sum(byStrategy.netPnl)=%s want=%s", groupPnL, s.NetPnL)
	}

	// Zero-pnl trade counts toward neither wins nor losses.
	if s.WinningTrades != 1 || s.LosingTrades != 2 {
		t.Fatalf("wins/losses=%d/%d want 1/2", s.WinningTrades, s.LosingTrades)
	}

	// Empty strategy groups under the reserved bucket.
	found := false
	for _, g := range res.ByStrategy {
		if g.Strategy == UnknownStrategy {
			found = true
			if g.Trades != 1 || g.NetPnL.Cmp(d(-10)) != 0 {
				t.Fatalf("unknown bucket=%+v", g)
			}
		}
	}
	if !found {
		t.Fatalf("missing %q bucket: %+v", UnknownStrategy, res.ByStrategy)
	}
}

func TestCompute_AvgRMultipleExcludesZeroRisk(t *testing.T) {
	zeroRisk := buyTrade(1, 1, "A", 10)
	zeroRisk.Risk = decimal.Zero
	zeroRisk.Reward = d(100)

	twoR := buyTrade(2, 2, "A", 10)
	twoR.Risk = d(50)
	twoR.Reward = d(100)

	res := Compute([]models.Trade{zeroRisk, twoR})
	// Only the second trade participates: 100/50 = 2.
	if res.Summary.AvgRMultiple.Cmp(d(2)) != 0 {
		t.Fatalf("avgRMultiple=%s want=2", res.Summary.AvgRMultiple)
	}

	res = Compute([]models.Trade{zeroRisk})
	if !res.Summary.AvgRMultiple.IsZero() {
		t.Fatalf("avgRMultiple=%s want=0 when no trade has risk", res.Summary.AvgRMultiple)
	}
}

func TestCompute_BestTradeTieKeepsEarliest(t *testing.T) {
	trades := []models.Trade{
		buyTrade(5, 1, "A", 100),
		buyTrade(6, 2, "B", 100),
	}
	res := Compute(trades)
	if res.Summary.BestTrade.ID != 5 {
		t.Fatalf("bestTrade id=%d want=5 (first encountered)", res.Summary.BestTrade.ID)
	}
	if res.Summary.WorstTrade.ID != 5 {
		t.Fatalf("worstTrade id=%d want=5 (first encountered)", res.Summary.WorstTrade.ID)
	}
}

func TestCompute_WinRate(t *testing.T) {
	trades := []models.Trade{
		buyTrade(1, 1, "A", 10),
		buyTrade(2, 2, "A", 10),
		buyTrade(3, 3, "A", -5),
		buyTrade(4, 4, "A", -5),
	}
	res := Compute(trades)
	if res.Summary.WinRate.Cmp(d(50)) != 0 {
		t.Fatalf("winRate=%s want=50", res.Summary.WinRate)
	}
	if res.Summary.AvgRisk.Cmp(d(50)) != 0 {
		t.Fatalf("avgRisk=%s want=50", res.Summary.AvgRisk)
	}
	if res.Summary.AvgReward.Cmp(d(100)) != 0 {
		t.Fatalf("avgReward=%s want=100", res.Summary.AvgReward)
	}
}
