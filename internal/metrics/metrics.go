package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

// Notional capital for a position is entry price * quantity at an assumed 5x
// leverage factor.
var leverageFactor = decimal.NewFromInt(5)

var hundred = decimal.NewFromInt(100)

// Enrich recomputes every derived column of a trade from its raw fields.
// It is deterministic given now: the same inputs always produce the same
// outputs, so calling it twice is a no-op. When isNew is set and the trade
// carries no date, the trade is stamped with now.
//
// Percent fields are left nil when capital is zero; the ratio is undefined
// there and clients render it as N/A.
func Enrich(t models.Trade, isNew bool, now time.Time) models.Trade {
	qty := decimal.NewFromInt(t.Quantity)

	t.CapitalUsed = t.Price.Mul(qty).Div(leverageFactor)

	if t.Side == models.SideSell {
		t.Risk = t.Stoploss.Sub(t.Price).Abs().Mul(qty)
		t.Reward = t.Price.Sub(t.Target).Abs().Mul(qty)
		t.PnL = t.Price.Sub(t.Exit).Mul(qty)
	} else {
		t.Risk = t.Price.Sub(t.Stoploss).Abs().Mul(qty)
		t.Reward = t.Target.Sub(t.Price).Abs().Mul(qty)
		t.PnL = t.Exit.Sub(t.Price).Mul(qty)
	}

	t.RiskPercent = percentOf(t.Risk, t.CapitalUsed)
	t.RewardPercent = percentOf(t.Reward, t.CapitalUsed)
	t.PnLPercent = percentOf(t.PnL, t.CapitalUsed)

	if isNew && t.Date.IsZero() {
		t.Date = now
	}

	return t
}

func percentOf(part, base decimal.Decimal) *decimal.Decimal {
	if base.IsZero() {
		return nil
	}
	v := part.Div(base).Mul(hundred)
	return &v
}
