package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is one logged position. The metric columns are derived from the raw
// fields on every write and are never accepted from the client.
type Trade struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Owner string `gorm:"type:varchar(128);not null;index" json:"owner"`

	Symbol      string          `gorm:"type:varchar(40);not null" json:"symbol"`
	Side        string          `gorm:"type:varchar(4);not null;index" json:"side"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"price"`
	Target      decimal.Decimal `gorm:"type:numeric(30,10)" json:"target"`
	Stoploss    decimal.Decimal `gorm:"type:numeric(30,10)" json:"stoploss"`
	Exit        decimal.Decimal `gorm:"type:numeric(30,10)" json:"exit"`
	// Strategy is a denormalized copy of the tag text, not a reference into
	// the strategies table. Deleting a Strategy leaves this untouched.
	Strategy   string    `gorm:"type:varchar(100);index" json:"strategy"`
	ExitReason string    `gorm:"type:varchar(100)" json:"exitReason"`
	Date       time.Time `gorm:"type:timestamptz;not null;index" json:"date"`
	Rating     int       `gorm:"not null" json:"rating"`

	// Derived by the metrics calculator. Explicit column names because default
	// GORM naming turns "PnL" into "pn_l". Percent columns are NULL when the
	// capital base is zero and the ratio is undefined.
	CapitalUsed   decimal.Decimal  `gorm:"type:numeric(30,10)" json:"capitalUsed"`
	Risk          decimal.Decimal  `gorm:"type:numeric(30,10)" json:"risk"`
	Reward        decimal.Decimal  `gorm:"type:numeric(30,10)" json:"reward"`
	PnL           decimal.Decimal  `gorm:"column:pnl;type:numeric(30,10)" json:"pnl"`
	RiskPercent   *decimal.Decimal `gorm:"type:numeric(20,10)" json:"riskPercent"`
	RewardPercent *decimal.Decimal `gorm:"type:numeric(20,10)" json:"rewardPercent"`
	PnLPercent    *decimal.Decimal `gorm:"column:pnl_percent;type:numeric(20,10)" json:"pnlPercent"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updatedAt"`
}

func (Trade) TableName() string {
	return "trades"
}

const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)
