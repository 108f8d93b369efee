package services

import (
	"context"

	"summit/internal/models"
	"summit/internal/pagination"
	"summit/internal/repositories"
)

// CreateGoalInput holds the fields accepted when creating a goal.
type CreateGoalInput struct {
	Type            models.GoalType
	Title           string
	Description     string
	SuccessCriteria string
	TargetDate      string
	ParentID        *string
	Progress        *int
	Priority        models.GoalPriority
	TargetYear      *int
	TargetMonth     *int
	TargetWeek      *int
	FocusAreaID     *string
}

// GoalServicer defines the contract for goal CRUD and hierarchy reads.
type GoalServicer interface {
	CreateGoal(ctx context.Context, input CreateGoalInput) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id string, update repositories.GoalUpdate) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
	GetGoalByID(ctx context.Context, id string) (*models.Goal, error)
	ListGoals(ctx context.Context, query GoalQuery) ([]models.Goal, error)
	GetGoalWithChildren(ctx context.Context, id string) (*models.GoalWithChildren, error)
	GetGoalHierarchy(ctx context.Context, id string) ([]models.Goal, error)
}

// ProgressServicer defines the contract for progress propagation.
type ProgressServicer interface {
	SetProgress(ctx context.Context, goalID string, progress int) (int, error)
}

// FocusAreaServicer defines the contract for focus area management.
type FocusAreaServicer interface {
	CreateFocusArea(ctx context.Context, name, description, icon, color string) (*models.FocusArea, error)
	ListFocusAreas(ctx context.Context) ([]models.FocusArea, error)
	GetFocusAreaByID(ctx context.Context, id string) (*models.FocusArea, error)
	UpdateFocusArea(ctx context.Context, id string, name, description, icon, color *string) (*models.FocusArea, error)
	DeleteFocusArea(ctx context.Context, id string) error
}

// HabitLogRange bounds a habit log listing by inclusive YYYY-MM-DD dates.
type HabitLogRange struct {
	From string
	To   string
}

// HabitServicer defines the contract for habits and their daily logs.
type HabitServicer interface {
	CreateHabit(ctx context.Context, name, description string, frequency models.HabitFrequency, focusAreaID *string) (*models.Habit, error)
	ListHabits(ctx context.Context, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Habit], error)
	GetHabitByID(ctx context.Context, id string) (*models.Habit, error)
	UpdateHabit(ctx context.Context, id string, name, description *string, frequency *models.HabitFrequency, isActive *bool) (*models.Habit, error)
	DeleteHabit(ctx context.Context, id string) error
	LogHabit(ctx context.Context, habitID, date string, completed bool, note string) (*models.HabitLog, error)
	GetHabitLogs(ctx context.Context, habitID string, r HabitLogRange) ([]models.HabitLog, error)
}

// ReflectionFilter narrows a reflection listing.
type ReflectionFilter struct {
	Kind *models.ReflectionKind
	From string
	To   string
}

// ReflectionServicer defines the contract for morning notes and evening reflections.
type ReflectionServicer interface {
	UpsertReflection(ctx context.Context, kind models.ReflectionKind, date, content string, mood *int) (*models.Reflection, error)
	GetReflection(ctx context.Context, kind models.ReflectionKind, date string) (*models.Reflection, error)
	ListReflections(ctx context.Context, filter ReflectionFilter) ([]models.Reflection, error)
	DeleteReflection(ctx context.Context, kind models.ReflectionKind, date string) error
}

// WisdomFilter narrows a wisdom listing.
type WisdomFilter struct {
	Search   string
	Favorite *bool
}

// WisdomServicer defines the contract for the quotations library.
type WisdomServicer interface {
	CreateWisdom(ctx context.Context, quote, author, source string, isFavorite bool) (*models.Wisdom, error)
	ListWisdom(ctx context.Context, page pagination.PageRequest, filter WisdomFilter) (*pagination.PageResponse[models.Wisdom], error)
	GetWisdomByID(ctx context.Context, id string) (*models.Wisdom, error)
	GetRandomWisdom(ctx context.Context) (*models.Wisdom, error)
	UpdateWisdom(ctx context.Context, id string, quote, author, source *string, isFavorite *bool) (*models.Wisdom, error)
	DeleteWisdom(ctx context.Context, id string) error
}
