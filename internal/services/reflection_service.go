package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "summit/internal/errors"
	"summit/internal/models"
	"summit/internal/period"
)

// reflectionService handles morning notes and evening reflections.
type reflectionService struct {
	db *gorm.DB
}

// NewReflectionService creates a new ReflectionServicer.
func NewReflectionService(db *gorm.DB) ReflectionServicer {
	return &reflectionService{db: db}
}

// UpsertReflection writes the reflection of the given kind for a day,
// replacing the existing one if present.
func (s *reflectionService) UpsertReflection(ctx context.Context, kind models.ReflectionKind, date, content string, mood *int) (*models.Reflection, error) {
	if err := validateReflectionKey(kind, date); err != nil {
		return nil, err
	}
	if mood != nil && (*mood < 1 || *mood > 10) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "mood must be between 1 and 10")
	}

	entry := &models.Reflection{
		Kind:    kind,
		Date:    date,
		Content: content,
		Mood:    mood,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "mood", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetReflection(ctx, kind, date)
}

// GetReflection returns the reflection of a kind for a day.
func (s *reflectionService) GetReflection(ctx context.Context, kind models.ReflectionKind, date string) (*models.Reflection, error) {
	if err := validateReflectionKey(kind, date); err != nil {
		return nil, err
	}

	var entry models.Reflection
	if err := s.db.WithContext(ctx).Where("kind = ? AND date = ?", kind, date).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReflectionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// ListReflections returns reflections newest day first.
func (s *reflectionService) ListReflections(ctx context.Context, filter ReflectionFilter) ([]models.Reflection, error) {
	q := s.db.WithContext(ctx).Model(&models.Reflection{})
	if filter.Kind != nil {
		if !filter.Kind.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be morning or evening")
		}
		q = q.Where("kind = ?", *filter.Kind)
	}
	if filter.From != "" {
		if _, err := period.ParseDate(filter.From); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		q = q.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		if _, err := period.ParseDate(filter.To); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		q = q.Where("date <= ?", filter.To)
	}

	entries := []models.Reflection{}
	if err := q.Order("date DESC").Order("kind ASC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// DeleteReflection removes the reflection of a kind for a day.
func (s *reflectionService) DeleteReflection(ctx context.Context, kind models.ReflectionKind, date string) error {
	entry, err := s.GetReflection(ctx, kind, date)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func validateReflectionKey(kind models.ReflectionKind, date string) error {
	if !kind.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be morning or evening")
	}
	if _, err := period.ParseDate(date); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}
