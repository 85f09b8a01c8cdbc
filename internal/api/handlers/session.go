package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/astrabot/odin-insight/internal/api/request"
	"github.com/astrabot/odin-insight/internal/api/response"
	"github.com/astrabot/odin-insight/internal/apperrors"
	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/odin"
	"github.com/astrabot/odin-insight/internal/service"
	"github.com/astrabot/odin-insight/internal/session"
	"github.com/astrabot/odin-insight/internal/validation"
)

// SessionHandler handles HTTP requests for viewing sessions and holder
// statistics. It is the HTTP adapter over the session manager; statistics
// semantics live in the session and stats packages.
type SessionHandler struct {
	sessions        *session.Manager
	remarkService   *service.RemarkService
	settingsService *service.SettingsService
	rates           *odin.RateClient
}

// NewSessionHandler creates a new SessionHandler with the provided dependencies.
func NewSessionHandler(
	sessions *session.Manager,
	remarkService *service.RemarkService,
	settingsService *service.SettingsService,
	rates *odin.RateClient,
) *SessionHandler {
	return &SessionHandler{
		sessions:        sessions,
		remarkService:   remarkService,
		settingsService: settingsService,
		rates:           rates,
	}
}

// SessionResponse represents a session snapshot for API responses.
type SessionResponse struct {
	ID            string   `json:"id"`
	TokenID       string   `json:"tokenId"`
	ObserverState string   `json:"observerState"`
	Price         *float64 `json:"price,omitempty"`
	HolderCount   int      `json:"holderCount"`
}

// StartSession handles POST requests to start (or restart) a viewing session
// for a token. Restarting discards all statistics cached by the previous
// session for that token.
//
// Endpoint: POST /api/session
// Request Body: StartSessionRequest (tokenId)
// Response: 201 Created with SessionResponse
// Error: 400 Bad Request if the token ID is missing or invalid
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.StartSessionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTokenID(req.TokenID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	s, err := h.sessions.Start(req.TokenID)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to start session", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, h.snapshot(s))
}

// GetSession handles GET requests for a session snapshot.
//
// Endpoint: GET /api/session/{tokenId}
// Response: 200 OK with SessionResponse
// Error: 404 Not Found if no session exists for the token
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	tokenID := chi.URLParam(r, "tokenId")

	s, err := h.sessions.Get(tokenID)
	if err != nil {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrSessionNotFound.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, h.snapshot(s))
}

// EndSession handles DELETE requests to tear a session down.
//
// Endpoint: DELETE /api/session/{tokenId}
// Response: 204 No Content
// Error: 404 Not Found if no session exists for the token
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	tokenID := chi.URLParam(r, "tokenId")

	if err := h.sessions.End(tokenID); err != nil {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrSessionNotFound.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// HolderStats handles GET requests for one holder's statistics within a
// session, computing them on first access. Accounts without activity for the
// token return 200 with absent=true rather than an error: "no data" is a
// signal, not a failure.
//
// Endpoint: GET /api/session/{tokenId}/holder/{accountId}
// Response: 200 OK with HolderStatsResponse or {"absent": true}
// Error: 400 Bad Request if the account ID is invalid (validated by middleware)
// Error: 403 Forbidden if statistics display is disabled in settings
// Error: 404 Not Found if no session exists for the token
func (h *SessionHandler) HolderStats(w http.ResponseWriter, r *http.Request) {
	tokenID := chi.URLParam(r, "tokenId")
	accountID := chi.URLParam(r, "accountId")

	settings, err := h.settingsService.GetSettings()
	if err == nil && !settings.StatsEnabled {
		response.RespondError(w, http.StatusForbidden, apperrors.ErrStatsDisabled.Error(), "")
		return
	}

	s, err := h.sessions.Get(tokenID)
	if err != nil {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrSessionNotFound.Error(), err.Error())
		return
	}

	holderStats, err := s.HolderStats(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStatsAbsent) {
			response.RespondJSON(w, http.StatusOK, map[string]bool{"absent": true})
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveStats.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, h.enrich(s, holderStats))
}

// WarmHolders handles POST requests to batch-load statistics for many
// holders, typically the visible holder list of a token page.
//
// Endpoint: POST /api/session/{tokenId}/holders
// Request Body: WarmHoldersRequest (accountIds)
// Response: 200 OK with array of HolderStatsResponse (absent accounts omitted)
// Error: 404 Not Found if no session exists for the token
func (h *SessionHandler) WarmHolders(w http.ResponseWriter, r *http.Request) {
	tokenID := chi.URLParam(r, "tokenId")

	req, err := parseJSON[request.WarmHoldersRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	s, err := h.sessions.Get(tokenID)
	if err != nil {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrSessionNotFound.Error(), err.Error())
		return
	}

	loaded, err := s.WarmHolders(r.Context(), req.AccountIDs)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveStats.Error(), err.Error())
		return
	}

	enriched := make([]model.HolderStatsResponse, 0, len(loaded))
	for _, holderStats := range loaded {
		enriched = append(enriched, h.enrich(s, holderStats))
	}

	response.RespondJSON(w, http.StatusOK, enriched)
}

// snapshot builds a SessionResponse from a session.
func (h *SessionHandler) snapshot(s *session.Session) SessionResponse {
	resp := SessionResponse{
		ID:            s.ID,
		TokenID:       s.TokenID,
		ObserverState: s.ObserverState(),
		HolderCount:   len(s.CachedStats()),
	}

	if price, known := s.CurrentPrice(); known {
		resp.Price = &price
	}

	return resp
}

// enrich attaches display data to raw statistics: whether a market price is
// known, the USD value of the profit/loss when an exchange rate is available,
// and the account's remark when one exists.
func (h *SessionHandler) enrich(s *session.Session, holderStats model.HolderStats) model.HolderStatsResponse {
	resp := model.HolderStatsResponse{HolderStats: holderStats}

	_, resp.PriceKnown = s.CurrentPrice()

	if satToUSD, known := h.rates.SatToUSD(); known {
		usd := holderStats.ProfitLoss * satToUSD
		resp.ProfitLossUSD = &usd
	}

	if remark, err := h.remarkService.GetRemark(holderStats.AccountID); err == nil {
		resp.Remark = remark
	}

	return resp
}
