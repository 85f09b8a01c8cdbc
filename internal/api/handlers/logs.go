package handlers

import (
	"net/http"
	"strconv"

	"github.com/astrabot/odin-insight/internal/api/response"
	"github.com/astrabot/odin-insight/internal/apperrors"
	"github.com/astrabot/odin-insight/internal/service"
)

// LogHandler handles HTTP requests for the event log.
type LogHandler struct {
	eventLogService *service.EventLogService
}

// NewLogHandler creates a new LogHandler with the provided service dependency.
func NewLogHandler(eventLogService *service.EventLogService) *LogHandler {
	return &LogHandler{
		eventLogService: eventLogService,
	}
}

// GetLogs handles GET requests to retrieve recent event log entries,
// newest first.
//
// Endpoint: GET /api/logs?limit={n} (API key required)
// Response: 200 OK with array of EventLogEntry
// Error: 500 Internal Server Error if retrieval fails
func (h *LogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.RespondError(w, http.StatusBadRequest, "invalid limit", raw)
			return
		}
		limit = parsed
	}

	entries, err := h.eventLogService.GetEntries(limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveLogs.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}
