package services

import (
	"context"
	"strings"

	"summit/internal/config"
	apperrors "summit/internal/errors"
	"summit/internal/logger"
	"summit/internal/models"
	"summit/internal/period"
	"summit/internal/repositories"
)

// goalService handles goal CRUD and hierarchy reads.
type goalService struct {
	goals        repositories.GoalRepository
	focusAreas   FocusAreaServicer
	deletePolicy config.DeletePolicy
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(goals repositories.GoalRepository, focusAreas FocusAreaServicer, deletePolicy config.DeletePolicy) GoalServicer {
	if deletePolicy == "" {
		deletePolicy = config.DeletePolicyKeep
	}
	return &goalService{goals: goals, focusAreas: focusAreas, deletePolicy: deletePolicy}
}

// CreateGoal validates and persists a new goal.
func (s *goalService) CreateGoal(ctx context.Context, input CreateGoalInput) (*models.Goal, error) {
	if !input.Type.Valid() {
		return nil, apperrors.ErrInvalidGoalType
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal title is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = models.GoalPriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "priority must be high, medium or low")
	}

	progress := 0
	if input.Progress != nil {
		progress = *input.Progress
	}
	if err := validateProgress(progress); err != nil {
		return nil, err
	}

	if err := validatePeriod(input.Type, input.TargetYear, input.TargetMonth, input.TargetWeek); err != nil {
		return nil, err
	}

	parentID := nonEmpty(input.ParentID)
	if err := s.checkParent(ctx, input.Type, parentID); err != nil {
		return nil, err
	}

	focusAreaID := nonEmpty(input.FocusAreaID)
	if focusAreaID != nil {
		if _, err := s.focusAreas.GetFocusAreaByID(ctx, *focusAreaID); err != nil {
			return nil, err
		}
	}

	goal := &models.Goal{
		Type:            input.Type,
		Title:           title,
		Description:     input.Description,
		SuccessCriteria: input.SuccessCriteria,
		TargetDate:      input.TargetDate,
		ParentID:        parentID,
		Progress:        progress,
		Priority:        priority,
		TargetYear:      input.TargetYear,
		TargetMonth:     input.TargetMonth,
		TargetWeek:      input.TargetWeek,
		FocusAreaID:     focusAreaID,
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// checkParent enforces the annual → monthly → weekly tier order.
func (s *goalService) checkParent(ctx context.Context, goalType models.GoalType, parentID *string) error {
	if parentID == nil {
		return nil
	}

	wantType, ok := goalType.ParentType()
	if !ok {
		return apperrors.WithMessage(apperrors.ErrInvalidParentTier, "annual goals cannot have a parent")
	}

	parent, err := s.goals.GetByID(ctx, *parentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.WithMessage(apperrors.ErrGoalNotFound, "parent goal not found")
		}
		return err
	}
	if parent.Type != wantType {
		return apperrors.WithMessage(apperrors.ErrInvalidParentTier,
			"a "+string(goalType)+" goal's parent must be a "+string(wantType)+" goal")
	}
	return nil
}

// UpdateGoal applies a partial update. Progress written here is stored as-is
// and is not propagated to ancestors.
func (s *goalService) UpdateGoal(ctx context.Context, id string, update repositories.GoalUpdate) (*models.Goal, error) {
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal title cannot be empty")
		}
		update.Title = &title
	}
	if update.Progress != nil {
		if err := validateProgress(*update.Progress); err != nil {
			return nil, err
		}
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "priority must be high, medium or low")
	}
	if update.FocusAreaID != nil && *update.FocusAreaID != "" {
		if _, err := s.focusAreas.GetFocusAreaByID(ctx, *update.FocusAreaID); err != nil {
			return nil, err
		}
	}

	return s.goals.Update(ctx, id, update)
}

// DeleteGoal removes a goal and handles its children per the delete policy.
func (s *goalService) DeleteGoal(ctx context.Context, id string) error {
	switch s.deletePolicy {
	case config.DeletePolicyDetach:
		return s.goals.Transaction(ctx, func(repo repositories.GoalRepository) error {
			if _, err := repo.GetByID(ctx, id); err != nil {
				return err
			}
			if err := repo.DetachChildren(ctx, id); err != nil {
				return err
			}
			return repo.Delete(ctx, id)
		})
	case config.DeletePolicyCascade:
		return s.goals.Transaction(ctx, func(repo repositories.GoalRepository) error {
			ids, err := collectSubtree(ctx, repo, id)
			if err != nil {
				return err
			}
			for _, goalID := range ids {
				if err := repo.Delete(ctx, goalID); err != nil {
					return err
				}
			}
			logger.Get().Debugw("cascade deleted goal subtree", "goal_id", id, "count", len(ids))
			return nil
		})
	default:
		return s.goals.Delete(ctx, id)
	}
}

// collectSubtree returns id followed by all of its descendants.
func collectSubtree(ctx context.Context, repo repositories.GoalRepository, id string) ([]string, error) {
	if _, err := repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	seen := map[string]bool{id: true}
	ids := []string{id}
	for i := 0; i < len(ids); i++ {
		children, err := repo.ListChildren(ctx, ids[i])
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if !seen[child.ID] {
				seen[child.ID] = true
				ids = append(ids, child.ID)
			}
		}
	}
	return ids, nil
}

// GetGoalByID returns a single goal.
func (s *goalService) GetGoalByID(ctx context.Context, id string) (*models.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

// ListGoals returns goals matching the query, newest first.
func (s *goalService) ListGoals(ctx context.Context, query GoalQuery) ([]models.Goal, error) {
	filter, err := query.Resolve()
	if err != nil {
		return nil, err
	}
	return s.goals.List(ctx, filter)
}

// GetGoalWithChildren returns a goal with its direct children.
func (s *goalService) GetGoalWithChildren(ctx context.Context, id string) (*models.GoalWithChildren, error) {
	goal, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	children, err := s.goals.ListChildren(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.GoalWithChildren{Goal: *goal, Children: children}, nil
}

// GetGoalHierarchy returns the ancestor chain of a goal ordered root → leaf.
// The walk stops at a dangling parent reference or a repeated goal.
func (s *goalService) GetGoalHierarchy(ctx context.Context, id string) ([]models.Goal, error) {
	goal, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	chain := []models.Goal{*goal}
	seen := map[string]bool{goal.ID: true}
	for current := goal; current.ParentID != nil && !seen[*current.ParentID]; {
		parent, err := s.goals.GetByID(ctx, *current.ParentID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				break
			}
			return nil, err
		}
		seen[parent.ID] = true
		chain = append(chain, *parent)
		current = parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

func validateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return apperrors.ErrInvalidProgress
	}
	return nil
}

// validatePeriod checks that only the period fields belonging to the goal
// type are set and that they are in range.
func validatePeriod(goalType models.GoalType, year, month, week *int) error {
	switch goalType {
	case models.GoalTypeAnnual:
		if month != nil || week != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "annual goals only take target_year")
		}
	case models.GoalTypeMonthly:
		if week != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "monthly goals take target_year and target_month")
		}
	case models.GoalTypeWeekly:
		if month != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "weekly goals take target_year and target_week")
		}
	}

	if year != nil && (*year < 1 || *year > 9999) {
		return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "target_year is out of range")
	}
	if month != nil && (*month < 1 || *month > 12) {
		return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "target_month must be between 1 and 12")
	}
	if week != nil {
		maxWeek := period.MaxISOWeek
		if year != nil {
			maxWeek = period.WeeksInYear(*year)
		}
		if *week < 1 || *week > maxWeek {
			return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "target_week is not a week of the target year")
		}
	}
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
