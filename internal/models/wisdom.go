package models

// Wisdom is an entry in the quotations library.
type Wisdom struct {
	Base
	Quote      string `gorm:"not null" json:"quote"`
	Author     string `json:"author"`
	Source     string `json:"source"`
	IsFavorite bool   `gorm:"not null;default:false" json:"is_favorite"`
}

// TableName keeps the uncountable noun as the table name.
func (Wisdom) TableName() string {
	return "wisdom"
}
