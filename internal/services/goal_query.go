package services

import (
	"strings"

	apperrors "summit/internal/errors"
	"summit/internal/models"
	"summit/internal/period"
	"summit/internal/repositories"
)

// GoalQuery is the period-oriented listing request. ParentID accepts a goal
// ID or "null"/"none" for top-level goals. Date, when set together with Type,
// fills the period fields that fit the type and were not given explicitly.
type GoalQuery struct {
	Type        *models.GoalType
	ParentID    string
	TargetYear  *int
	TargetMonth *int
	TargetWeek  *int
	Date        string
}

// Resolve validates the query and turns it into a repository filter.
func (q GoalQuery) Resolve() (repositories.GoalFilter, error) {
	var filter repositories.GoalFilter

	if q.Type != nil {
		if !q.Type.Valid() {
			return filter, apperrors.ErrInvalidGoalType
		}
		t := *q.Type
		filter.Type = &t
	}

	switch strings.ToLower(q.ParentID) {
	case "":
	case "null", "none":
		filter.NoParent = true
	default:
		id := q.ParentID
		filter.ParentID = &id
	}

	year, month, week := q.TargetYear, q.TargetMonth, q.TargetWeek
	if q.Date != "" {
		if q.Type == nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "date requires a goal type")
		}
		d, err := period.ParseDate(q.Date)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}

		switch *q.Type {
		case models.GoalTypeAnnual:
			year = orInt(year, d.Year())
		case models.GoalTypeMonthly:
			year = orInt(year, d.Year())
			month = orInt(month, int(d.Month()))
		case models.GoalTypeWeekly:
			isoYear, isoWeek := period.ISOWeek(d)
			year = orInt(year, isoYear)
			week = orInt(week, isoWeek)
		}
	}

	if month != nil && (*month < 1 || *month > 12) {
		return filter, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "target_month must be between 1 and 12")
	}
	if week != nil && (*week < 1 || *week > period.MaxISOWeek) {
		return filter, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "target_week must be between 1 and 53")
	}

	filter.TargetYear = year
	filter.TargetMonth = month
	filter.TargetWeek = week
	return filter, nil
}

func orInt(v *int, fallback int) *int {
	if v != nil {
		return v
	}
	return &fallback
}
