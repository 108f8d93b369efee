package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "summit/internal/errors"
	"summit/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestErrorHandler(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/", func(c *gin.Context) { _ = c.Error(apperrors.ErrGoalNotFound) })

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		body := decode(t, rec)
		if body["code"] != "GOAL_NOT_FOUND" || body["error"] != "Goal not found" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/", func(c *gin.Context) { _ = c.Error(errors.New("secret detail")) })

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if body := decode(t, rec); body["code"] != "INTERNAL_ERROR" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("response already written", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/", func(c *gin.Context) {
			_ = c.Error(errors.New("ignored"))
			c.JSON(http.StatusTeapot, gin.H{"ok": true})
		})

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusTeapot {
			t.Fatalf("expected handler status to win, got %d", rec.Code)
		}
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(*gin.Context) { panic("boom") })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := decode(t, rec); body["code"] != "INTERNAL_ERROR" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestNotFound(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFound())

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decode(t, rec); body["code"] != "NOT_FOUND" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRequestLogging(t *testing.T) {
	t.Run("generates an ID", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestLogging())
		var seen string
		r.GET("/", func(c *gin.Context) {
			seen = RequestID(c)
			c.Status(http.StatusOK)
		})

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		got := rec.Header().Get("X-Request-ID")
		if got == "" || got != seen {
			t.Errorf("expected matching request IDs, header=%q context=%q", got, seen)
		}
	})

	t.Run("reuses the incoming ID", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestLogging())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := serve(r, req)

		if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
	})
}

func TestCORS(t *testing.T) {
	preflight := func(r *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/goals", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		return serve(r, req)
	}

	t.Run("allow all", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"*"}))

		rec := preflight(r, "http://example.com")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected *, got %q", got)
		}
	})

	t.Run("listed origin", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"http://localhost:5173"}))

		rec := preflight(r, "http://localhost:5173")
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("expected the origin to be echoed, got %q", got)
		}

		rec = preflight(r, "http://evil.example")
		if rec.Code != http.StatusForbidden {
			t.Errorf("expected 403 for unlisted origin, got %d", rec.Code)
		}
	})
}
