package repository

import (
	"context"
	"time"

	"tradejournal/internal/models"
)

// ListTradesParams is the composed trade filter. Date bounds are inclusive.
type ListTradesParams struct {
	From     *time.Time
	To       *time.Time
	Strategy *string
	Side     *string
	// Asc orders by (date, id) ascending; the id tie-break keeps equal-date
	// trades in insertion order, which the equity curve relies on.
	Asc bool
}

// Repository is the document-store boundary. Every method takes the owner id
// as a mandatory parameter so an unscoped query cannot be expressed.
type Repository interface {
	InsertTrade(ctx context.Context, item *models.Trade) error
	GetTradeByID(ctx context.Context, owner string, id uint64) (*models.Trade, error)
	ListTrades(ctx context.Context, owner string, params ListTradesParams) ([]models.Trade, error)
	UpdateTrade(ctx context.Context, owner string, item *models.Trade) (bool, error)
	DeleteTrade(ctx context.Context, owner string, id uint64) (bool, error)

	ListStrategies(ctx context.Context, owner string) ([]models.Strategy, error)
	// GetOrCreateStrategy is idempotent under a same-case name match; created
	// reports whether a new row was written.
	GetOrCreateStrategy(ctx context.Context, owner, name string) (item *models.Strategy, created bool, err error)
	DeleteStrategy(ctx context.Context, owner string, id uint64) (bool, error)
}
