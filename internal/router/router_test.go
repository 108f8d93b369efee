package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"summit/internal/config"
	"summit/internal/logger"
	"summit/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func setupRouter(t *testing.T, policy config.DeletePolicy) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return New(db, &config.Config{
		Env:              "test",
		CORSOrigins:      []string{"*"},
		GoalDeletePolicy: policy,
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode object: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func decodeArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode array: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

// createGoal posts body and returns the new goal's id.
func createGoal(t *testing.T, r *gin.Engine, body string) string {
	t.Helper()
	rec := do(t, r, http.MethodPost, "/api/v1/goals", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create goal: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	id, _ := decodeObject(t, rec)["id"].(string)
	if id == "" {
		t.Fatal("create goal: empty id")
	}
	return id
}

func goalProgress(t *testing.T, r *gin.Engine, id string) float64 {
	t.Helper()
	rec := do(t, r, http.MethodGet, "/api/v1/goals/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get goal %s: expected 200, got %d", id, rec.Code)
	}
	p, _ := decodeObject(t, rec)["progress"].(float64)
	return p
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	body := decodeObject(t, rec)
	if msg, ok := body["error"].(string); !ok || msg == "" {
		t.Errorf("expected error message, got %v", body)
	}
	if body["code"] != code {
		t.Errorf("expected code %q, got %v", code, body["code"])
	}
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, config.DeletePolicyKeep)
	rec := do(t, r, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if decodeObject(t, rec)["status"] != "ok" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	r := setupRouter(t, config.DeletePolicyKeep)
	expectError(t, do(t, r, http.MethodGet, "/api/v1/nope", ""), http.StatusNotFound, "NOT_FOUND")
}

func TestProgressFlow(t *testing.T) {
	r := setupRouter(t, config.DeletePolicyKeep)

	annual := createGoal(t, r, `{"type":"annual","title":"Run a marathon","target_year":2025}`)
	monthly := createGoal(t, r, `{"type":"monthly","title":"Base miles","parent_id":"`+annual+`","target_year":2025,"target_month":3}`)
	weekly := createGoal(t, r, `{"type":"weekly","title":"Three runs","parent_id":"`+monthly+`","target_year":2025,"target_week":10}`)

	t.Run("single_chain", func(t *testing.T) {
		rec := do(t, r, http.MethodPut, "/api/v1/goals/"+weekly+"/progress", `{"progress":80}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decodeObject(t, rec)
		if body["success"] != true || body["progress"] != float64(80) {
			t.Errorf("unexpected body %v", body)
		}
		if p := goalProgress(t, r, monthly); p != 80 {
			t.Errorf("monthly progress: expected 80, got %v", p)
		}
		if p := goalProgress(t, r, annual); p != 80 {
			t.Errorf("annual progress: expected 80, got %v", p)
		}
	})

	t.Run("siblings_average", func(t *testing.T) {
		sibling := createGoal(t, r, `{"type":"weekly","title":"Stretch","parent_id":"`+monthly+`","target_year":2025,"target_week":11}`)
		rec := do(t, r, http.MethodPut, "/api/v1/goals/"+sibling+"/progress", `{"progress":40}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if p := goalProgress(t, r, monthly); p != 60 {
			t.Errorf("monthly progress: expected 60, got %v", p)
		}
		if p := goalProgress(t, r, annual); p != 60 {
			t.Errorf("annual progress: expected 60, got %v", p)
		}
	})

	t.Run("rejects_bad_values", func(t *testing.T) {
		for _, body := range []string{`{"progress":101}`, `{"progress":-1}`, `{"progress":50.5}`, `{"progress":"fifty"}`, `{}`} {
			rec := do(t, r, http.MethodPut, "/api/v1/goals/"+weekly+"/progress", body)
			expectError(t, rec, http.StatusBadRequest, "INVALID_PROGRESS")
		}
		if p := goalProgress(t, r, weekly); p != 80 {
			t.Errorf("weekly progress changed to %v after rejected updates", p)
		}
	})

	t.Run("missing_goal", func(t *testing.T) {
		rec := do(t, r, http.MethodPut, "/api/v1/goals/does-not-exist/progress", `{"progress":10}`)
		expectError(t, rec, http.StatusNotFound, "GOAL_NOT_FOUND")
	})
}

func TestGoalReads(t *testing.T) {
	r := setupRouter(t, config.DeletePolicyKeep)

	annual := createGoal(t, r, `{"type":"annual","title":"Learn Go","target_year":2025}`)
	monthly := createGoal(t, r, `{"type":"monthly","title":"Concurrency","parent_id":"`+annual+`","target_year":2025,"target_month":1}`)
	weekly := createGoal(t, r, `{"type":"weekly","title":"Channels","parent_id":"`+monthly+`","target_year":2025,"target_week":1}`)

	t.Run("with_children", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/v1/goals/"+annual+"/with-children", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		children, _ := decodeObject(t, rec)["children"].([]interface{})
		if len(children) != 1 {
			t.Fatalf("expected 1 child, got %d", len(children))
		}
	})

	t.Run("hierarchy", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/v1/goals/"+weekly+"/hierarchy", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		chain := decodeArray(t, rec)
		if len(chain) != 3 || chain[0]["id"] != annual || chain[2]["id"] != weekly {
			t.Errorf("unexpected chain %v", chain)
		}
	})

	t.Run("week_from_date", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/v1/goals?type=weekly&date=2024-12-30", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		goals := decodeArray(t, rec)
		if len(goals) != 1 || goals[0]["id"] != weekly {
			t.Errorf("expected the week 1 goal, got %v", goals)
		}
	})

	t.Run("month_filter", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/v1/goals?type=monthly&target_year=2025&target_month=2", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if goals := decodeArray(t, rec); len(goals) != 0 {
			t.Errorf("expected no goals for February, got %d", len(goals))
		}
	})

	t.Run("top_level", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/v1/goals?parent_id=null", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		goals := decodeArray(t, rec)
		if len(goals) != 1 || goals[0]["id"] != annual {
			t.Errorf("expected only the annual goal, got %v", goals)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/v1/goals?target_month=13", "")
		expectError(t, rec, http.StatusBadRequest, "INVALID_PERIOD")
	})

	t.Run("missing_ids", func(t *testing.T) {
		for _, path := range []string{"/api/v1/goals/missing", "/api/v1/goals/missing/with-children", "/api/v1/goals/missing/hierarchy"} {
			expectError(t, do(t, r, http.MethodGet, path, ""), http.StatusNotFound, "GOAL_NOT_FOUND")
		}
	})
}

func TestGoalWrites(t *testing.T) {
	r := setupRouter(t, config.DeletePolicyDetach)

	annual := createGoal(t, r, `{"type":"annual","title":"Read more"}`)

	t.Run("invalid_type", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/v1/goals", `{"type":"daily","title":"x"}`)
		expectError(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("wrong_tier", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/v1/goals", `{"type":"weekly","title":"x","parent_id":"`+annual+`"}`)
		expectError(t, rec, http.StatusBadRequest, "INVALID_PARENT_TIER")
	})

	t.Run("update", func(t *testing.T) {
		rec := do(t, r, http.MethodPut, "/api/v1/goals/"+annual, `{"title":"Read 24 books","priority":"high"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decodeObject(t, rec)
		if body["title"] != "Read 24 books" || body["priority"] != "high" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("delete_detaches_children", func(t *testing.T) {
		monthly := createGoal(t, r, `{"type":"monthly","title":"Two books","parent_id":"`+annual+`"}`)

		rec := do(t, r, http.MethodDelete, "/api/v1/goals/"+annual, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if decodeObject(t, rec)["success"] != true {
			t.Errorf("unexpected body %s", rec.Body.String())
		}

		rec = do(t, r, http.MethodGet, "/api/v1/goals/"+monthly, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected child to survive, got %d", rec.Code)
		}
		if parent := decodeObject(t, rec)["parent_id"]; parent != nil {
			t.Errorf("expected parent_id cleared, got %v", parent)
		}

		expectError(t, do(t, r, http.MethodDelete, "/api/v1/goals/"+annual, ""), http.StatusNotFound, "GOAL_NOT_FOUND")
	})
}

func TestSupportingResources(t *testing.T) {
	r := setupRouter(t, config.DeletePolicyKeep)

	t.Run("focus_area_conflict", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/v1/focus-areas", `{"name":"Health","color":"#22aa44"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		rec = do(t, r, http.MethodPost, "/api/v1/focus-areas", `{"name":"Health"}`)
		expectError(t, rec, http.StatusConflict, "DUPLICATE_FOCUS_AREA")
	})

	t.Run("habit_logs", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/v1/habits", `{"name":"Meditate"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		id, _ := decodeObject(t, rec)["id"].(string)

		for _, date := range []string{"2025-03-01", "2025-03-02"} {
			rec = do(t, r, http.MethodPut, "/api/v1/habits/"+id+"/logs/"+date, `{"completed":true}`)
			if rec.Code != http.StatusOK {
				t.Fatalf("log %s: expected 200, got %d: %s", date, rec.Code, rec.Body.String())
			}
		}
		rec = do(t, r, http.MethodGet, "/api/v1/habits/"+id+"/logs?from=2025-03-02", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if logs := decodeArray(t, rec); len(logs) != 1 {
			t.Errorf("expected 1 log, got %d", len(logs))
		}

		rec = do(t, r, http.MethodPut, "/api/v1/habits/"+id+"/logs/2025-02-30", `{"completed":true}`)
		expectError(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("reflection_upsert", func(t *testing.T) {
		rec := do(t, r, http.MethodPut, "/api/v1/reflections/evening/2025-03-01", `{"content":"Good day","mood":8}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		rec = do(t, r, http.MethodGet, "/api/v1/reflections/evening/2025-03-01", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if decodeObject(t, rec)["content"] != "Good day" {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
		expectError(t, do(t, r, http.MethodGet, "/api/v1/reflections/morning/2025-03-01", ""), http.StatusNotFound, "REFLECTION_NOT_FOUND")
	})

	t.Run("wisdom_random", func(t *testing.T) {
		expectError(t, do(t, r, http.MethodGet, "/api/v1/wisdom/random", ""), http.StatusNotFound, "WISDOM_NOT_FOUND")

		rec := do(t, r, http.MethodPost, "/api/v1/wisdom", `{"quote":"Well begun is half done.","author":"Aristotle"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		rec = do(t, r, http.MethodGet, "/api/v1/wisdom/random", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if decodeObject(t, rec)["author"] != "Aristotle" {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouter(t, config.DeletePolicyKeep)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/goals", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("unexpected allow-origin %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
