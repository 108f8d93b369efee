package models

// FocusArea is a category tag such as "Health & Fitness" that goals and habits
// can point at.
type FocusArea struct {
	Base
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}
