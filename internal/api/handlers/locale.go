package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/astrabot/odin-insight/internal/api/response"
	"github.com/astrabot/odin-insight/internal/apperrors"
	"github.com/astrabot/odin-insight/internal/locale"
)

// LocaleHandler serves translated UI strings.
type LocaleHandler struct {
	catalog *locale.Catalog
}

// NewLocaleHandler creates a new LocaleHandler with the provided catalog.
func NewLocaleHandler(catalog *locale.Catalog) *LocaleHandler {
	return &LocaleHandler{
		catalog: catalog,
	}
}

// Strings handles GET requests for the full string table of one language.
//
// Endpoint: GET /api/locale/{lang}
// Response: 200 OK with a flat map of message ID to translated string
// Error: 404 Not Found if the language is not supported
func (h *LocaleHandler) Strings(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")

	strings, err := h.catalog.Strings(lang)
	if err != nil {
		if errors.Is(err, apperrors.ErrLocaleNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLocaleNotFound.Error(), lang)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to load locale", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, strings)
}
