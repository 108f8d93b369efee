package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"summit/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// CreateTestGoal creates a goal of the given type with an optional parent and
// the given starting progress.
func CreateTestGoal(t *testing.T, db *gorm.DB, goalType models.GoalType, parentID *string, progress int) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Type:     goalType,
		Title:    fmt.Sprintf("Test %s goal %d", goalType, nextID()),
		ParentID: parentID,
		Progress: progress,
		Priority: models.GoalPriorityMedium,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestGoalInPeriod creates a parentless goal carrying the given period markers.
func CreateTestGoalInPeriod(t *testing.T, db *gorm.DB, goalType models.GoalType, year, month, week *int) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Type:        goalType,
		Title:       fmt.Sprintf("Test %s goal %d", goalType, nextID()),
		Priority:    models.GoalPriorityMedium,
		TargetYear:  year,
		TargetMonth: month,
		TargetWeek:  week,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// ReloadGoal reads the goal back from the database.
func ReloadGoal(t *testing.T, db *gorm.DB, id string) *models.Goal {
	t.Helper()

	var goal models.Goal
	if err := db.Where("id = ?", id).First(&goal).Error; err != nil {
		t.Fatalf("failed to reload goal %s: %v", id, err)
	}
	return &goal
}

// CreateTestFocusArea creates a focus area with a unique name.
func CreateTestFocusArea(t *testing.T, db *gorm.DB) *models.FocusArea {
	t.Helper()

	area := &models.FocusArea{
		Name:  fmt.Sprintf("Focus Area %d", nextID()),
		Color: "#22c55e",
	}
	if err := db.Create(area).Error; err != nil {
		t.Fatalf("failed to create test focus area: %v", err)
	}
	return area
}

// CreateTestHabit creates an active daily habit.
func CreateTestHabit(t *testing.T, db *gorm.DB) *models.Habit {
	t.Helper()

	habit := &models.Habit{
		Name:      fmt.Sprintf("Test Habit %d", nextID()),
		Frequency: models.HabitFrequencyDaily,
		IsActive:  true,
	}
	if err := db.Create(habit).Error; err != nil {
		t.Fatalf("failed to create test habit: %v", err)
	}
	return habit
}

// CreateTestWisdom creates a quote.
func CreateTestWisdom(t *testing.T, db *gorm.DB, quote, author string) *models.Wisdom {
	t.Helper()

	w := &models.Wisdom{Quote: quote, Author: author}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("failed to create test wisdom: %v", err)
	}
	return w
}
