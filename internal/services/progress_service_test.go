package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"summit/internal/models"
	"summit/internal/repositories"
	"summit/internal/testutil"
)

func TestSetProgress(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		goal := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, nil, 0)

		for _, p := range []int{0, 1, 37, 99, 100} {
			got, err := svc.SetProgress(context.Background(), goal.ID, p)
			testutil.AssertNoError(t, err)
			if got != p {
				t.Errorf("expected returned progress %d, got %d", p, got)
			}
			if reloaded := testutil.ReloadGoal(t, db, goal.ID); reloaded.Progress != p {
				t.Errorf("expected stored progress %d, got %d", p, reloaded.Progress)
			}
		}
	})

	t.Run("refreshes_updated_at", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		goal := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, nil, 0)
		time.Sleep(2 * time.Millisecond)

		_, err := svc.SetProgress(context.Background(), goal.ID, 10)
		testutil.AssertNoError(t, err)

		if reloaded := testutil.ReloadGoal(t, db, goal.ID); !reloaded.UpdatedAt.After(goal.UpdatedAt) {
			t.Error("expected updated_at to move forward")
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		goal := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, nil, 5)

		for _, p := range []int{-1, 101} {
			_, err := svc.SetProgress(context.Background(), goal.ID, p)
			testutil.AssertAppError(t, err, "INVALID_PROGRESS")
		}
		if reloaded := testutil.ReloadGoal(t, db, goal.ID); reloaded.Progress != 5 {
			t.Errorf("expected progress untouched at 5, got %d", reloaded.Progress)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))

		_, err := svc.SetProgress(context.Background(), "missing", 50)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestSetProgress_Propagation(t *testing.T) {
	t.Run("single_chain", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		annual := testutil.CreateTestGoal(t, db, models.GoalTypeAnnual, nil, 0)
		monthly := testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, &annual.ID, 0)
		weekly := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 0)

		_, err := svc.SetProgress(context.Background(), weekly.ID, 80)
		testutil.AssertNoError(t, err)

		if got := testutil.ReloadGoal(t, db, monthly.ID).Progress; got != 80 {
			t.Errorf("expected monthly progress 80, got %d", got)
		}
		if got := testutil.ReloadGoal(t, db, annual.ID).Progress; got != 80 {
			t.Errorf("expected annual progress 80, got %d", got)
		}
	})

	t.Run("mean_of_siblings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		monthly := testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, nil, 0)
		first := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 40)
		testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 60)

		_, err := svc.SetProgress(context.Background(), first.ID, 60)
		testutil.AssertNoError(t, err)

		if got := testutil.ReloadGoal(t, db, monthly.ID).Progress; got != 60 {
			t.Errorf("expected monthly progress 60, got %d", got)
		}
	})

	t.Run("rounds_to_nearest", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		monthly := testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, nil, 0)
		a := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 0)
		testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 50)
		testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 50)

		// (33 + 50 + 50) / 3 = 44.33
		_, err := svc.SetProgress(context.Background(), a.ID, 33)
		testutil.AssertNoError(t, err)
		if got := testutil.ReloadGoal(t, db, monthly.ID).Progress; got != 44 {
			t.Errorf("expected 44, got %d", got)
		}

		// (35 + 50 + 50) / 3 = 45 exactly; (36 + 50 + 50) / 3 = 45.33
		_, err = svc.SetProgress(context.Background(), a.ID, 35)
		testutil.AssertNoError(t, err)
		if got := testutil.ReloadGoal(t, db, monthly.ID).Progress; got != 45 {
			t.Errorf("expected 45, got %d", got)
		}
	})

	t.Run("half_rounds_up", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		monthly := testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, nil, 0)
		a := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 0)
		testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 50)

		// (45 + 50) / 2 = 47.5
		_, err := svc.SetProgress(context.Background(), a.ID, 45)
		testutil.AssertNoError(t, err)
		if got := testutil.ReloadGoal(t, db, monthly.ID).Progress; got != 48 {
			t.Errorf("expected 48, got %d", got)
		}
	})

	t.Run("grandparent_uses_all_monthly_children", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		annual := testutil.CreateTestGoal(t, db, models.GoalTypeAnnual, nil, 0)
		march := testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, &annual.ID, 0)
		testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, &annual.ID, 20)
		week := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &march.ID, 0)

		_, err := svc.SetProgress(context.Background(), week.ID, 100)
		testutil.AssertNoError(t, err)

		if got := testutil.ReloadGoal(t, db, march.ID).Progress; got != 100 {
			t.Errorf("expected march progress 100, got %d", got)
		}
		if got := testutil.ReloadGoal(t, db, annual.ID).Progress; got != 60 {
			t.Errorf("expected annual progress 60, got %d", got)
		}
	})

	t.Run("stops_after_two_levels", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))

		// Built directly in the store to get a four-level chain the API would reject.
		top := testutil.CreateTestGoal(t, db, models.GoalTypeAnnual, nil, 7)
		grandparent := testutil.CreateTestGoal(t, db, models.GoalTypeAnnual, &top.ID, 0)
		parent := testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, &grandparent.ID, 0)
		leaf := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &parent.ID, 0)

		_, err := svc.SetProgress(context.Background(), leaf.ID, 90)
		testutil.AssertNoError(t, err)

		if got := testutil.ReloadGoal(t, db, parent.ID).Progress; got != 90 {
			t.Errorf("expected parent progress 90, got %d", got)
		}
		if got := testutil.ReloadGoal(t, db, grandparent.ID).Progress; got != 90 {
			t.Errorf("expected grandparent progress 90, got %d", got)
		}
		if got := testutil.ReloadGoal(t, db, top.ID).Progress; got != 7 {
			t.Errorf("expected great-grandparent untouched at 7, got %d", got)
		}
	})

	t.Run("dangling_parent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		missing := "00000000-0000-7000-8000-000000000000"
		leaf := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &missing, 0)

		got, err := svc.SetProgress(context.Background(), leaf.ID, 30)
		testutil.AssertNoError(t, err)
		if got != 30 {
			t.Errorf("expected 30, got %d", got)
		}
	})

	t.Run("self_parent_is_bounded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewProgressService(repositories.NewGoalRepository(db))
		goal := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, nil, 0)
		if err := db.Model(goal).Update("parent_id", goal.ID).Error; err != nil {
			t.Fatalf("failed to create self reference: %v", err)
		}

		_, err := svc.SetProgress(context.Background(), goal.ID, 40)
		testutil.AssertNoError(t, err)
		if got := testutil.ReloadGoal(t, db, goal.ID).Progress; got != 40 {
			t.Errorf("expected 40, got %d", got)
		}
	})
}

func TestSetProgress_Concurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewProgressService(repositories.NewGoalRepository(db))
	monthly := testutil.CreateTestGoal(t, db, models.GoalTypeMonthly, nil, 0)
	a := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 0)
	b := testutil.CreateTestGoal(t, db, models.GoalTypeWeekly, &monthly.ID, 0)

	var wg sync.WaitGroup
	for _, id := range []string{a.ID, b.ID} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := svc.SetProgress(context.Background(), id, 100); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	if got := testutil.ReloadGoal(t, db, monthly.ID).Progress; got != 100 {
		t.Errorf("expected monthly progress 100 after both updates, got %d", got)
	}
}
