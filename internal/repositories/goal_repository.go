// Package repositories holds the gorm-backed persistence layer for goals.
package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "summit/internal/errors"
	"summit/internal/models"
)

// GoalFilter narrows a goal listing. Nil fields are not applied.
type GoalFilter struct {
	Type        *models.GoalType
	ParentID    *string
	NoParent    bool
	TargetYear  *int
	TargetMonth *int
	TargetWeek  *int
}

// GoalUpdate carries the editable goal fields. Nil fields are left untouched.
type GoalUpdate struct {
	Title           *string
	Description     *string
	Progress        *int
	Priority        *models.GoalPriority
	SuccessCriteria *string
	TargetDate      *string
	FocusAreaID     *string
}

// GoalRepository is the storage contract for goals.
type GoalRepository interface {
	Transaction(ctx context.Context, fn func(repo GoalRepository) error) error
	Create(ctx context.Context, goal *models.Goal) error
	Update(ctx context.Context, id string, update GoalUpdate) (*models.Goal, error)
	SetProgress(ctx context.Context, id string, progress int) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Goal, error)
	ListChildren(ctx context.Context, parentID string) ([]models.Goal, error)
	List(ctx context.Context, filter GoalFilter) ([]models.Goal, error)
	DetachChildren(ctx context.Context, parentID string) error
}

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a GoalRepository on the given handle.
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Transaction runs fn with a repository bound to a single database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise; fn's error is returned unchanged.
func (r *goalRepository) Transaction(ctx context.Context, fn func(repo GoalRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&goalRepository{db: tx})
	})
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) error {
	if goal.Priority == "" {
		goal.Priority = models.GoalPriorityMedium
	}
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (r *goalRepository) Update(ctx context.Context, id string, update GoalUpdate) (*models.Goal, error) {
	goal, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Progress != nil {
		updates["progress"] = *update.Progress
	}
	if update.Priority != nil {
		updates["priority"] = *update.Priority
	}
	if update.SuccessCriteria != nil {
		updates["success_criteria"] = *update.SuccessCriteria
	}
	if update.TargetDate != nil {
		updates["target_date"] = *update.TargetDate
	}
	if update.FocusAreaID != nil {
		if *update.FocusAreaID == "" {
			updates["focus_area_id"] = nil
		} else {
			updates["focus_area_id"] = *update.FocusAreaID
		}
	}

	if err := r.db.WithContext(ctx).Model(goal).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return r.GetByID(ctx, id)
}

func (r *goalRepository) SetProgress(ctx context.Context, id string, progress int) error {
	res := r.db.WithContext(ctx).Model(&models.Goal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"progress": progress, "updated_at": time.Now()})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Goal{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

func (r *goalRepository) ListChildren(ctx context.Context, parentID string) ([]models.Goal, error) {
	return r.List(ctx, GoalFilter{ParentID: &parentID})
}

func (r *goalRepository) List(ctx context.Context, filter GoalFilter) ([]models.Goal, error) {
	q := r.db.WithContext(ctx).Model(&models.Goal{})
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.NoParent {
		q = q.Where("parent_id IS NULL")
	} else if filter.ParentID != nil {
		q = q.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.TargetYear != nil {
		q = q.Where("target_year = ?", *filter.TargetYear)
	}
	if filter.TargetMonth != nil {
		q = q.Where("target_month = ?", *filter.TargetMonth)
	}
	if filter.TargetWeek != nil {
		q = q.Where("target_week = ?", *filter.TargetWeek)
	}

	goals := []models.Goal{}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// DetachChildren clears the parent reference of every direct child of parentID.
func (r *goalRepository) DetachChildren(ctx context.Context, parentID string) error {
	err := r.db.WithContext(ctx).Model(&models.Goal{}).
		Where("parent_id = ?", parentID).
		Updates(map[string]interface{}{"parent_id": nil, "updated_at": time.Now()}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
