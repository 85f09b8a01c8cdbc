package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/astrabot/odin-insight/internal/locale"
	"github.com/astrabot/odin-insight/internal/testutil"
)

func TestLocaleHandler_Strings(t *testing.T) {
	catalog, err := locale.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() returned unexpected error: %v", err)
	}
	handler := NewLocaleHandler(catalog)

	t.Run("serves the english string table", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/locale/en",
			map[string]string{"lang": "en"})
		w := httptest.NewRecorder()

		handler.Strings(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var strings map[string]string
		testutil.DecodeJSONResponse(t, w, &strings)
		if strings["profitLoss"] == "" {
			t.Error("Expected a profitLoss translation")
		}
	})

	t.Run("serves the chinese string table", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/locale/zh",
			map[string]string{"lang": "zh"})
		w := httptest.NewRecorder()

		handler.Strings(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for an unsupported language", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/locale/fr",
			map[string]string{"lang": "fr"})
		w := httptest.NewRecorder()

		handler.Strings(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
