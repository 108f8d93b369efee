package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "summit/internal/errors"
	"summit/internal/models"
)

// focusAreaService handles focus area business logic.
type focusAreaService struct {
	db *gorm.DB
}

// NewFocusAreaService creates a new FocusAreaServicer.
func NewFocusAreaService(db *gorm.DB) FocusAreaServicer {
	return &focusAreaService{db: db}
}

// CreateFocusArea creates a new focus area with a unique name.
func (s *focusAreaService) CreateFocusArea(ctx context.Context, name, description, icon, color string) (*models.FocusArea, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "focus area name is required")
	}
	if err := s.ensureUniqueName(ctx, name, ""); err != nil {
		return nil, err
	}

	area := &models.FocusArea{
		Name:        name,
		Description: description,
		Icon:        icon,
		Color:       color,
	}
	if err := s.db.WithContext(ctx).Create(area).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return area, nil
}

// ListFocusAreas returns all focus areas sorted by name.
func (s *focusAreaService) ListFocusAreas(ctx context.Context) ([]models.FocusArea, error) {
	areas := []models.FocusArea{}
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&areas).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return areas, nil
}

// GetFocusAreaByID retrieves a focus area by ID.
func (s *focusAreaService) GetFocusAreaByID(ctx context.Context, id string) (*models.FocusArea, error) {
	var area models.FocusArea
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFocusAreaNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &area, nil
}

// UpdateFocusArea updates the provided fields of a focus area.
func (s *focusAreaService) UpdateFocusArea(ctx context.Context, id string, name, description, icon, color *string) (*models.FocusArea, error) {
	area, err := s.GetFocusAreaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "focus area name cannot be empty")
		}
		if trimmed != area.Name {
			if err := s.ensureUniqueName(ctx, trimmed, id); err != nil {
				return nil, err
			}
		}
		updates["name"] = trimmed
	}
	if description != nil {
		updates["description"] = *description
	}
	if icon != nil {
		updates["icon"] = *icon
	}
	if color != nil {
		updates["color"] = *color
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(area).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return area, nil
}

// DeleteFocusArea deletes a focus area. Goals and habits that reference it
// keep the ID.
func (s *focusAreaService) DeleteFocusArea(ctx context.Context, id string) error {
	area, err := s.GetFocusAreaByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(area).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *focusAreaService) ensureUniqueName(ctx context.Context, name, exceptID string) error {
	q := s.db.WithContext(ctx).Model(&models.FocusArea{}).Where("name = ?", name)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateFocusArea
	}
	return nil
}
