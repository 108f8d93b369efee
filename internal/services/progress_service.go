package services

import (
	"context"
	"math"
	"sync"

	apperrors "summit/internal/errors"
	"summit/internal/logger"
	"summit/internal/models"
	"summit/internal/repositories"
)

// progressService writes a goal's progress and recomputes its ancestors.
type progressService struct {
	goals repositories.GoalRepository

	// mu serializes propagations so two updates under the same parent cannot
	// interleave their read-mean-write steps.
	mu sync.Mutex
}

// NewProgressService creates a new ProgressServicer.
func NewProgressService(goals repositories.GoalRepository) ProgressServicer {
	return &progressService{goals: goals}
}

// SetProgress stores progress on the goal, then sets its parent to the rounded
// mean of the parent's children, then does the same for the grandparent. The
// walk is exactly two levels deep, matching the annual → monthly → weekly
// tiers. All writes happen in one transaction.
func (s *progressService) SetProgress(ctx context.Context, goalID string, progress int) (int, error) {
	if err := validateProgress(progress); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.goals.Transaction(ctx, func(repo repositories.GoalRepository) error {
		if err := repo.SetProgress(ctx, goalID, progress); err != nil {
			return err
		}
		goal, err := repo.GetByID(ctx, goalID)
		if err != nil {
			return err
		}

		parent, err := recomputeParent(ctx, repo, goal)
		if err != nil || parent == nil {
			return err
		}
		_, err = recomputeParent(ctx, repo, parent)
		return err
	})
	if err != nil {
		return 0, err
	}

	logger.Get().Debugw("goal progress updated", "goal_id", goalID, "progress", progress)
	return progress, nil
}

// recomputeParent sets child's parent to the rounded mean of the parent's
// direct children and returns the parent. It returns nil when there is
// nothing to update: no parent, a dangling parent reference, or no children.
func recomputeParent(ctx context.Context, repo repositories.GoalRepository, child *models.Goal) (*models.Goal, error) {
	if child.ParentID == nil {
		return nil, nil
	}

	parent, err := repo.GetByID(ctx, *child.ParentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			logger.Get().Warnw("goal references a missing parent", "goal_id", child.ID, "parent_id", *child.ParentID)
			return nil, nil
		}
		return nil, err
	}

	siblings, err := repo.ListChildren(ctx, parent.ID)
	if err != nil {
		return nil, err
	}
	if len(siblings) == 0 {
		return nil, nil
	}

	mean := roundedMean(siblings)
	if err := repo.SetProgress(ctx, parent.ID, mean); err != nil {
		return nil, err
	}
	parent.Progress = mean
	return parent, nil
}

func roundedMean(goals []models.Goal) int {
	sum := 0
	for _, g := range goals {
		sum += g.Progress
	}
	return int(math.Round(float64(sum) / float64(len(goals))))
}
