package models

import (
	"time"

	"summit/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Rows are removed physically,
// so there is no DeletedAt column.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every model for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Goal{},
		&FocusArea{},
		&Habit{},
		&HabitLog{},
		&Reflection{},
		&Wisdom{},
	}
}
