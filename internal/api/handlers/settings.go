package handlers

import (
	"net/http"

	"github.com/astrabot/odin-insight/internal/api/request"
	"github.com/astrabot/odin-insight/internal/api/response"
	"github.com/astrabot/odin-insight/internal/apperrors"
	"github.com/astrabot/odin-insight/internal/service"
	"github.com/astrabot/odin-insight/internal/validation"
)

// SettingsHandler handles HTTP requests for settings endpoints.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings handles GET requests to retrieve the current settings.
// Missing or unreadable stored settings come back as the defaults.
//
// Endpoint: GET /api/settings
// Response: 200 OK with Settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT requests to change settings. Fields omitted from
// the request body keep their current value.
//
// Endpoint: PUT /api/settings
// Request Body: UpdateSettingsRequest (statsEnabled, language)
// Response: 200 OK with the updated Settings
// Error: 400 Bad Request if validation fails or the request body is invalid
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateSettingsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateSettings(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	settings, err := h.settingsService.GetSettings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	if req.StatsEnabled != nil {
		settings.StatsEnabled = *req.StatsEnabled
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}

	if err := h.settingsService.UpdateSettings(r.Context(), settings); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, settings)
}
