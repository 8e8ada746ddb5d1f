package models

import "time"

// Strategy is a per-owner tag used for input suggestions. It carries no
// referential link to trades; the list is a convenience index only.
type Strategy struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Owner string `gorm:"type:varchar(128);not null;uniqueIndex:idx_strategies_owner_name" json:"owner"`
	Name  string `gorm:"type:varchar(100);not null;uniqueIndex:idx_strategies_owner_name" json:"name"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updatedAt"`
}

func (Strategy) TableName() string {
	return "strategies"
}
