package models

// ReflectionKind distinguishes morning notes from evening reflections.
type ReflectionKind string

const (
	ReflectionKindMorning ReflectionKind = "morning"
	ReflectionKindEvening ReflectionKind = "evening"
)

// Valid reports whether k is a known kind.
func (k ReflectionKind) Valid() bool {
	return k == ReflectionKindMorning || k == ReflectionKindEvening
}

// Reflection is a dated journal entry, one per kind and day.
type Reflection struct {
	Base
	Kind    ReflectionKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_reflections_kind_date" json:"kind"`
	Date    string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_reflections_kind_date" json:"date"`
	Content string         `json:"content"`
	Mood    *int           `gorm:"check:chk_reflections_mood,mood BETWEEN 1 AND 10" json:"mood"`
}
