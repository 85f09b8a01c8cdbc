package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubVerifier struct {
	accept string
}

func (v stubVerifier) VerifyAPIKey(presented string) bool {
	return v.accept != "" && presented == v.accept
}

// TestRequireAPIKey tests the protected-endpoint guard.
//
// WHY: The guard must fail closed; anything but an exact match on the stored
// key denies access before the handler runs.
func TestRequireAPIKey(t *testing.T) {
	newGuarded := func(accept string) (http.Handler, *bool) {
		reached := false
		handler := RequireAPIKey(stubVerifier{accept: accept})(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			}))
		return handler, &reached
	}

	t.Run("allows the matching key", func(t *testing.T) {
		handler, reached := newGuarded("secret")

		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		req.Header.Set("X-API-Key", "secret")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK || !*reached {
			t.Errorf("Expected request to pass, got %d (reached=%v)", w.Code, *reached)
		}
	})

	t.Run("rejects a wrong key", func(t *testing.T) {
		handler, reached := newGuarded("secret")

		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		req.Header.Set("X-API-Key", "wrong")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized || *reached {
			t.Errorf("Expected 401 without handler execution, got %d (reached=%v)", w.Code, *reached)
		}
	})

	t.Run("rejects a missing key", func(t *testing.T) {
		handler, reached := newGuarded("secret")

		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized || *reached {
			t.Errorf("Expected 401 without handler execution, got %d (reached=%v)", w.Code, *reached)
		}
	})

	t.Run("rejects everything when no key is configured", func(t *testing.T) {
		handler, reached := newGuarded("")

		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		req.Header.Set("X-API-Key", "")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized || *reached {
			t.Errorf("Expected 401 without handler execution, got %d (reached=%v)", w.Code, *reached)
		}
	})
}
