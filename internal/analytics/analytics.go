package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

// UnknownStrategy is the rollup bucket for trades without a strategy tag.
const UnknownStrategy = "Unknown"

// TradeRef is the summary projection of a single trade carried by the
// best/worst pointers.
type TradeRef struct {
	ID       uint64          `json:"id"`
	Symbol   string          `json:"symbol"`
	PnL      decimal.Decimal `json:"pnl"`
	Strategy string          `json:"strategy"`
	Side     string          `json:"side"`
	Date     time.Time       `json:"date"`
}

type Summary struct {
	TotalTrades   int             `json:"totalTrades"`
	WinningTrades int             `json:"winningTrades"`
	LosingTrades  int             `json:"losingTrades"`
	WinRate       decimal.Decimal `json:"winRate"`
	NetPnL        decimal.Decimal `json:"netPnl"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalLoss     decimal.Decimal `json:"totalLoss"`
	AvgRisk       decimal.Decimal `json:"avgRisk"`
	AvgReward     decimal.Decimal `json:"avgReward"`
	AvgRMultiple  decimal.Decimal `json:"avgRMultiple"`
	AvgPnL        decimal.Decimal `json:"avgPnl"`
	BestTrade     *TradeRef       `json:"bestTrade"`
	WorstTrade    *TradeRef       `json:"worstTrade"`
}

type StrategyStats struct {
	Strategy    string          `json:"strategy"`
	Trades      int             `json:"trades"`
	Wins        int             `json:"wins"`
	Losses      int             `json:"losses"`
	NetPnL      decimal.Decimal `json:"netPnl"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	TotalLoss   decimal.Decimal `json:"totalLoss"`
	WinRate     decimal.Decimal `json:"winRate"`
	AvgPnL      decimal.Decimal `json:"avgPnl"`
}

type EquityPoint struct {
	Date          time.Time       `json:"date"`
	CumulativePnL decimal.Decimal `json:"cumulativePnl"`
}

type Result struct {
	HasData     bool            `json:"hasData"`
	Summary     *Summary        `json:"summary,omitempty"`
	ByStrategy  []StrategyStats `json:"byStrategy,omitempty"`
	EquityCurve []EquityPoint   `json:"equityCurve,omitempty"`
}

var hundred = decimal.NewFromInt(100)

// Compute reduces a date-ascending trade slice into the analytics result in a
// single pass. The input order is load-bearing: it defines the equity curve
// sequence, the first-encountered tie-break for best/worst, and the emission
// order of the per-strategy rollup (first occurrence).
//
// The curve is a running total over this slice only; a different filter
// restarts it from zero.
func Compute(trades []models.Trade) Result {
	if len(trades) == 0 {
		return Result{HasData: false}
	}

	sum := &Summary{TotalTrades: len(trades)}

	var (
		totalRisk      decimal.Decimal
		totalReward    decimal.Decimal
		totalRMultiple decimal.Decimal
		rMultipleN     int64
		cumulative     decimal.Decimal
	)

	groups := map[string]*StrategyStats{}
	var groupOrder []string
	curve := make([]EquityPoint, 0, len(trades))

	for _, t := range trades {
		pnl := t.PnL

		sum.NetPnL = sum.NetPnL.Add(pnl)
		switch {
		case pnl.IsPositive():
			sum.WinningTrades++
			sum.TotalProfit = sum.TotalProfit.Add(pnl)
		case pnl.IsNegative():
			sum.LosingTrades++
			sum.TotalLoss = sum.TotalLoss.Add(pnl)
		}

		totalRisk = totalRisk.Add(t.Risk)
		totalReward = totalReward.Add(t.Reward)
		if !t.Risk.IsZero() {
			totalRMultiple = totalRMultiple.Add(t.Reward.Div(t.Risk))
			rMultipleN++
		}

		// Strict comparisons keep the first encountered trade on ties,
		// which is the earliest by date given the input order.
		if sum.BestTrade == nil || pnl.GreaterThan(sum.BestTrade.PnL) {
			sum.BestTrade = refOf(t)
		}
		if sum.WorstTrade == nil || pnl.LessThan(sum.WorstTrade.PnL) {
			sum.WorstTrade = refOf(t)
		}

		key := strings.TrimSpace(t.Strategy)
		if key == "" {
			key = UnknownStrategy
		}
		g, ok := groups[key]
		if !ok {
			g = &StrategyStats{Strategy: key}
			groups[key] = g
			groupOrder = append(groupOrder, key)
		}
		g.Trades++
		g.NetPnL = g.NetPnL.Add(pnl)
		switch {
		case pnl.IsPositive():
			g.Wins++
			g.TotalProfit = g.TotalProfit.Add(pnl)
		case pnl.IsNegative():
			g.Losses++
			g.TotalLoss = g.TotalLoss.Add(pnl)
		}

		cumulative = cumulative.Add(pnl)
		curve = append(curve, EquityPoint{Date: t.Date, CumulativePnL: cumulative})
	}

	n := decimal.NewFromInt(int64(sum.TotalTrades))
	// TotalTrades is never zero here (the empty set short-circuited above);
	// the guard mirrors the per-group derivation below.
	if sum.TotalTrades > 0 {
		sum.WinRate = decimal.NewFromInt(int64(sum.WinningTrades)).Div(n).Mul(hundred)
		sum.AvgRisk = totalRisk.Div(n)
		sum.AvgReward = totalReward.Div(n)
		sum.AvgPnL = sum.NetPnL.Div(n)
	}
	if rMultipleN > 0 {
		sum.AvgRMultiple = totalRMultiple.Div(decimal.NewFromInt(rMultipleN))
	}

	byStrategy := make([]StrategyStats, 0, len(groupOrder))
	for _, key := range groupOrder {
		g := groups[key]
		gn := decimal.NewFromInt(int64(g.Trades))
		g.WinRate = decimal.NewFromInt(int64(g.Wins)).Div(gn).Mul(hundred)
		g.AvgPnL = g.NetPnL.Div(gn)
		byStrategy = append(byStrategy, *g)
	}

	return Result{
		HasData:     true,
		Summary:     sum,
		ByStrategy:  byStrategy,
		EquityCurve: curve,
	}
}

func refOf(t models.Trade) *TradeRef {
	return &TradeRef{
		ID:       t.ID,
		Symbol:   t.Symbol,
		PnL:      t.PnL,
		Strategy: t.Strategy,
		Side:     t.Side,
		Date:     t.Date,
	}
}
