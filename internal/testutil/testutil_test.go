package testutil_test

import (
	"testing"

	"summit/internal/errors"
	"summit/internal/models"
	"summit/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	for _, table := range []string{"goals", "focus_areas", "habits", "habit_logs", "reflections", "wisdom"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	db1 := testutil.SetupTestDB(t)
	db2 := testutil.SetupTestDB(t)

	testutil.CreateTestGoal(t, db1, models.GoalTypeAnnual, nil, 0)

	var count int64
	if err := db2.Model(&models.Goal{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected second database to be empty, got %d goals", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)

	annual := testutil.CreateTestGoal(t, db, models.GoalTypeAnnual, nil, 10)
	if annual.ID == "" {
		t.Fatal("goal should have an ID")
	}
	monthly := testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, &annual.ID, 0)
	if monthly.ParentID == nil || *monthly.ParentID != annual.ID {
		t.Errorf("expected parent %s, got %v", annual.ID, monthly.ParentID)
	}

	reloaded := testutil.ReloadGoal(t, db, annual.ID)
	if reloaded.Progress != 10 {
		t.Errorf("expected progress 10, got %d", reloaded.Progress)
	}

	area := testutil.CreateTestFocusArea(t, db)
	if area.ID == "" {
		t.Error("focus area should have an ID")
	}

	habit := testutil.CreateTestHabit(t, db)
	if !habit.IsActive {
		t.Error("expected habit to be active")
	}
}

func TestStoreRejectsOutOfRangeProgress(t *testing.T) {
	db := testutil.SetupTestDB(t)

	goal := &models.Goal{Type: models.GoalTypeWeekly, Title: "Too much", Progress: 101, Priority: models.GoalPriorityLow}
	if err := db.Create(goal).Error; err == nil {
		t.Error("expected check constraint violation for progress 101")
	}

	goal = &models.Goal{Type: "daily", Title: "Bad type", Priority: models.GoalPriorityLow}
	if err := db.Create(goal).Error; err == nil {
		t.Error("expected check constraint violation for unknown type")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrGoalNotFound, "custom message")
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
