package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dentalogix/dentalogix-api/internal/middlewares"
)

func corsHandler(allowed string) http.Handler {
	return middlewares.Cors(allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCors(t *testing.T) {
	t.Run("EmptyOriginAllowsAll", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		corsHandler("").ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
	})

	t.Run("ConfiguredOriginReflected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://dentalogix.example")
		rec := httptest.NewRecorder()
		corsHandler("https://dentalogix.example").ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dentalogix.example" {
			t.Errorf("Allow-Origin = %q, want configured origin", got)
		}
		if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("credentials should be allowed for the configured origin")
		}
	})

	t.Run("OtherOriginNotReflected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		corsHandler("https://dentalogix.example").ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want unset for unknown origins", got)
		}
	})

	t.Run("PreflightShortCircuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		rec := httptest.NewRecorder()
		corsHandler("").ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("preflight status = %d, want 204", rec.Code)
		}
	})
}
