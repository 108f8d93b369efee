package models

// HabitFrequency describes how often a habit is expected to be done.
type HabitFrequency string

const (
	HabitFrequencyDaily  HabitFrequency = "daily"
	HabitFrequencyWeekly HabitFrequency = "weekly"
)

// Valid reports whether f is a known frequency.
func (f HabitFrequency) Valid() bool {
	return f == HabitFrequencyDaily || f == HabitFrequencyWeekly
}

// Habit is a recurring activity the user checks off.
type Habit struct {
	Base
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Frequency   HabitFrequency `gorm:"type:varchar(16);not null;default:'daily'" json:"frequency"`
	FocusAreaID *string        `gorm:"type:varchar(36);index" json:"focus_area_id"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
}

// HabitLog records whether a habit was done on a given day. There is at most
// one log per habit and date.
type HabitLog struct {
	Base
	HabitID   string `gorm:"type:varchar(36);not null;uniqueIndex:idx_habit_logs_habit_date" json:"habit_id"`
	Date      string `gorm:"type:varchar(10);not null;uniqueIndex:idx_habit_logs_habit_date" json:"date"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	Note      string `json:"note"`
}
