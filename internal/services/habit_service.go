package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "summit/internal/errors"
	"summit/internal/models"
	"summit/internal/pagination"
	"summit/internal/period"
)

// habitService handles habits and habit logs.
type habitService struct {
	db         *gorm.DB
	focusAreas FocusAreaServicer
}

// NewHabitService creates a new HabitServicer.
func NewHabitService(db *gorm.DB, focusAreas FocusAreaServicer) HabitServicer {
	return &habitService{db: db, focusAreas: focusAreas}
}

// CreateHabit creates a new active habit.
func (s *habitService) CreateHabit(ctx context.Context, name, description string, frequency models.HabitFrequency, focusAreaID *string) (*models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "habit name is required")
	}
	if frequency == "" {
		frequency = models.HabitFrequencyDaily
	}
	if !frequency.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "frequency must be daily or weekly")
	}

	focusAreaID = nonEmpty(focusAreaID)
	if focusAreaID != nil {
		if _, err := s.focusAreas.GetFocusAreaByID(ctx, *focusAreaID); err != nil {
			return nil, err
		}
	}

	habit := &models.Habit{
		Name:        name,
		Description: description,
		Frequency:   frequency,
		FocusAreaID: focusAreaID,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(habit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return habit, nil
}

// ListHabits returns a paginated list of habits, oldest first.
func (s *habitService) ListHabits(ctx context.Context, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Habit], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Habit{})
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var habits []models.Habit
	if err := base.Order("created_at ASC").Scopes(pagination.Paginate(page)).Find(&habits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(habits, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetHabitByID retrieves a habit by ID.
func (s *habitService) GetHabitByID(ctx context.Context, id string) (*models.Habit, error) {
	var habit models.Habit
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHabitNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &habit, nil
}

// UpdateHabit updates the provided fields of a habit.
func (s *habitService) UpdateHabit(ctx context.Context, id string, name, description *string, frequency *models.HabitFrequency, isActive *bool) (*models.Habit, error) {
	habit, err := s.GetHabitByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "habit name cannot be empty")
		}
		updates["name"] = trimmed
	}
	if description != nil {
		updates["description"] = *description
	}
	if frequency != nil {
		if !frequency.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "frequency must be daily or weekly")
		}
		updates["frequency"] = *frequency
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(habit).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return habit, nil
}

// DeleteHabit deletes a habit together with its logs.
func (s *habitService) DeleteHabit(ctx context.Context, id string) error {
	habit, err := s.GetHabitByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.HabitLog{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(habit).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// LogHabit records the habit's state for a day, replacing any earlier log
// for the same day.
func (s *habitService) LogHabit(ctx context.Context, habitID, date string, completed bool, note string) (*models.HabitLog, error) {
	if _, err := period.ParseDate(date); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if _, err := s.GetHabitByID(ctx, habitID); err != nil {
		return nil, err
	}

	entry := &models.HabitLog{
		HabitID:   habitID,
		Date:      date,
		Completed: completed,
		Note:      note,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "note", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stored models.HabitLog
	if err := s.db.WithContext(ctx).Where("habit_id = ? AND date = ?", habitID, date).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}

// GetHabitLogs returns a habit's logs within an optional inclusive date range.
func (s *habitService) GetHabitLogs(ctx context.Context, habitID string, r HabitLogRange) ([]models.HabitLog, error) {
	if _, err := s.GetHabitByID(ctx, habitID); err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Where("habit_id = ?", habitID)
	if r.From != "" {
		if _, err := period.ParseDate(r.From); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		q = q.Where("date >= ?", r.From)
	}
	if r.To != "" {
		if _, err := period.ParseDate(r.To); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		q = q.Where("date <= ?", r.To)
	}

	logs := []models.HabitLog{}
	if err := q.Order("date ASC").Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return logs, nil
}
