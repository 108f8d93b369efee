package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "summit/internal/errors"
	"summit/internal/models"
	"summit/internal/pagination"
)

// wisdomService handles the quotations library.
type wisdomService struct {
	db *gorm.DB
}

// NewWisdomService creates a new WisdomServicer.
func NewWisdomService(db *gorm.DB) WisdomServicer {
	return &wisdomService{db: db}
}

// CreateWisdom adds a quote to the library.
func (s *wisdomService) CreateWisdom(ctx context.Context, quote, author, source string, isFavorite bool) (*models.Wisdom, error) {
	quote = strings.TrimSpace(quote)
	if quote == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quote is required")
	}

	entry := &models.Wisdom{
		Quote:      quote,
		Author:     author,
		Source:     source,
		IsFavorite: isFavorite,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// ListWisdom returns a paginated, optionally filtered list of quotes, newest first.
func (s *wisdomService) ListWisdom(ctx context.Context, page pagination.PageRequest, filter WisdomFilter) (*pagination.PageResponse[models.Wisdom], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Wisdom{})
	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		base = base.Where("LOWER(quote) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}
	if filter.Favorite != nil {
		base = base.Where("is_favorite = ?", *filter.Favorite)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.Wisdom
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetWisdomByID retrieves a quote by ID.
func (s *wisdomService) GetWisdomByID(ctx context.Context, id string) (*models.Wisdom, error) {
	var entry models.Wisdom
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWisdomNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// GetRandomWisdom returns one quote chosen at random.
func (s *wisdomService) GetRandomWisdom(ctx context.Context) (*models.Wisdom, error) {
	var entry models.Wisdom
	if err := s.db.WithContext(ctx).Order("RANDOM()").First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrWisdomNotFound, "The wisdom library is empty")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// UpdateWisdom updates the provided fields of a quote.
func (s *wisdomService) UpdateWisdom(ctx context.Context, id string, quote, author, source *string, isFavorite *bool) (*models.Wisdom, error) {
	entry, err := s.GetWisdomByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if quote != nil {
		trimmed := strings.TrimSpace(*quote)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quote cannot be empty")
		}
		updates["quote"] = trimmed
	}
	if author != nil {
		updates["author"] = *author
	}
	if source != nil {
		updates["source"] = *source
	}
	if isFavorite != nil {
		updates["is_favorite"] = *isFavorite
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(entry).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return entry, nil
}

// DeleteWisdom removes a quote.
func (s *wisdomService) DeleteWisdom(ctx context.Context, id string) error {
	entry, err := s.GetWisdomByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
