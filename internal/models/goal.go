package models

// GoalType is the tier of a goal in the annual → monthly → weekly hierarchy.
type GoalType string

const (
	GoalTypeAnnual  GoalType = "annual"
	GoalTypeMonthly GoalType = "monthly"
	GoalTypeWeekly  GoalType = "weekly"
)

// Valid reports whether t is one of the three recognized tiers.
func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeAnnual, GoalTypeMonthly, GoalTypeWeekly:
		return true
	}
	return false
}

// ParentType returns the tier a parent of this type must have. Annual goals
// have no parent tier.
func (t GoalType) ParentType() (GoalType, bool) {
	switch t {
	case GoalTypeMonthly:
		return GoalTypeAnnual, true
	case GoalTypeWeekly:
		return GoalTypeMonthly, true
	}
	return "", false
}

// GoalPriority ranks goals for display.
type GoalPriority string

const (
	GoalPriorityHigh   GoalPriority = "high"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityLow    GoalPriority = "low"
)

// Valid reports whether p is a known priority.
func (p GoalPriority) Valid() bool {
	switch p {
	case GoalPriorityHigh, GoalPriorityMedium, GoalPriorityLow:
		return true
	}
	return false
}

// Goal is a trackable objective. Goals with children carry the rounded mean
// of their children's progress once a progress update has been propagated.
type Goal struct {
	Base
	Type            GoalType     `gorm:"type:varchar(16);not null;index;check:chk_goals_type,type IN ('annual','monthly','weekly')" json:"type"`
	Title           string       `gorm:"not null;check:chk_goals_title,title <> ''" json:"title"`
	Description     string       `json:"description"`
	SuccessCriteria string       `json:"success_criteria"`
	TargetDate      string       `json:"target_date"`
	ParentID        *string      `gorm:"type:varchar(36);index" json:"parent_id"`
	Progress        int          `gorm:"not null;default:0;check:chk_goals_progress,progress >= 0 AND progress <= 100" json:"progress"`
	Priority        GoalPriority `gorm:"type:varchar(16);not null;default:'medium';check:chk_goals_priority,priority IN ('high','medium','low')" json:"priority"`
	TargetYear      *int         `gorm:"index" json:"target_year"`
	TargetMonth     *int         `gorm:"check:chk_goals_month,target_month BETWEEN 1 AND 12" json:"target_month"`
	TargetWeek      *int         `gorm:"check:chk_goals_week,target_week BETWEEN 1 AND 53" json:"target_week"`
	FocusAreaID     *string      `gorm:"type:varchar(36);index" json:"focus_area_id"`
}

// GoalWithChildren is a goal together with its direct children.
type GoalWithChildren struct {
	Goal
	Children []Goal `json:"children"`
}
