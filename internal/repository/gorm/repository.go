package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- trades -----------------------------------------------------------------

func (s *Store) InsertTrade(ctx context.Context, item *models.Trade) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetTradeByID(ctx context.Context, owner string, id uint64) (*models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Trade
	err := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Where("id = ?", id).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListTrades(ctx context.Context, owner string, params repository.ListTradesParams) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Trade{}).Where("owner = ?", owner)
	if params.From != nil && !params.From.IsZero() {
		query = query.Where("date >= ?", *params.From)
	}
	if params.To != nil && !params.To.IsZero() {
		query = query.Where("date <= ?", *params.To)
	}
	if params.Strategy != nil && strings.TrimSpace(*params.Strategy) != "" {
		query = query.Where("strategy = ?", strings.TrimSpace(*params.Strategy))
	}
	if params.Side != nil && strings.TrimSpace(*params.Side) != "" {
		query = query.Where("side = ?", strings.TrimSpace(*params.Side))
	}
	if params.Asc {
		query = query.Order("date ASC").Order("id ASC")
	} else {
		query = query.Order("date DESC").Order("id DESC")
	}
	var items []models.Trade
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateTrade replaces every mutable column of the owned row. Save writes the
// full struct so cleared optional fields (including NULLed percent columns)
// persist.
func (s *Store) UpdateTrade(ctx context.Context, owner string, item *models.Trade) (bool, error) {
	if s == nil || s.db == nil || item == nil {
		return false, nil
	}
	var existing models.Trade
	err := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Where("id = ?", item.ID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	item.Owner = existing.Owner
	item.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) DeleteTrade(ctx context.Context, owner string, id uint64) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	res := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Where("id = ?", id).
		Delete(&models.Trade{})
	return res.RowsAffected > 0, res.Error
}

// --- strategies -------------------------------------------------------------

func (s *Store) ListStrategies(ctx context.Context, owner string) ([]models.Strategy, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Strategy
	err := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetOrCreateStrategy(ctx context.Context, owner, name string) (*models.Strategy, bool, error) {
	if s == nil || s.db == nil {
		return nil, false, nil
	}
	name = strings.TrimSpace(name)
	var item models.Strategy
	err := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Where("name = ?", name).
		First(&item).Error
	if err == nil {
		return &item, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	item = models.Strategy{Owner: owner, Name: name}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		// Lost a race against a concurrent create of the same (owner, name);
		// the unique index guarantees the winner is the row we want.
		var existing models.Strategy
		if ferr := s.db.WithContext(ctx).
			Where("owner = ?", owner).
			Where("name = ?", name).
			First(&existing).Error; ferr == nil {
			return &existing, false, nil
		}
		return nil, false, err
	}
	return &item, true, nil
}

func (s *Store) DeleteStrategy(ctx context.Context, owner string, id uint64) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	res := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Where("id = ?", id).
		Delete(&models.Strategy{})
	return res.RowsAffected > 0, res.Error
}
