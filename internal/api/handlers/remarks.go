package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/astrabot/odin-insight/internal/api/request"
	"github.com/astrabot/odin-insight/internal/api/response"
	"github.com/astrabot/odin-insight/internal/apperrors"
	"github.com/astrabot/odin-insight/internal/service"
	"github.com/astrabot/odin-insight/internal/validation"
)

// RemarkHandler handles HTTP requests for remark endpoints.
type RemarkHandler struct {
	remarkService *service.RemarkService
}

// NewRemarkHandler creates a new RemarkHandler with the provided service dependency.
func NewRemarkHandler(remarkService *service.RemarkService) *RemarkHandler {
	return &RemarkHandler{
		remarkService: remarkService,
	}
}

// AllRemarks handles GET requests to retrieve every stored remark.
//
// Endpoint: GET /api/remark
// Response: 200 OK with array of Remark
// Error: 500 Internal Server Error if retrieval fails
func (h *RemarkHandler) AllRemarks(w http.ResponseWriter, _ *http.Request) {
	remarks, err := h.remarkService.GetAllRemarks()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRemarks.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, remarks)
}

// GetRemark handles GET requests to retrieve the remark for one account.
//
// Endpoint: GET /api/remark/{accountId}
// Response: 200 OK with Remark
// Error: 400 Bad Request if the account ID is invalid (validated by middleware)
// Error: 404 Not Found if no remark exists for the account
func (h *RemarkHandler) GetRemark(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")

	remark, err := h.remarkService.GetRemark(accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRemarkNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrRemarkNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRemark.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, remark)
}

// SaveRemark handles PUT requests to create or update an account's remark.
//
// Endpoint: PUT /api/remark/{accountId}
// Request Body: SaveRemarkRequest (username, remark)
// Response: 200 OK with the saved Remark
// Error: 400 Bad Request if validation fails or the request body is invalid
// Error: 500 Internal Server Error if the save fails
func (h *RemarkHandler) SaveRemark(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")

	req, err := parseJSON[request.SaveRemarkRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSaveRemark(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	remark, err := h.remarkService.SaveRemark(r.Context(), accountID, req.Username, req.Remark)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveRemark.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, remark)
}

// DeleteRemark handles DELETE requests to remove an account's remark.
//
// Endpoint: DELETE /api/remark/{accountId}
// Response: 204 No Content
// Error: 400 Bad Request if the account ID is invalid (validated by middleware)
// Error: 404 Not Found if no remark exists for the account
func (h *RemarkHandler) DeleteRemark(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")

	err := h.remarkService.DeleteRemark(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRemarkNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrRemarkNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteRemark.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Export handles GET requests to download the remark list in the portable
// JSON shape, compatible with the extension's export format.
//
// Endpoint: GET /api/remark/export
// Response: 200 OK with array of RemarkExport
// Error: 500 Internal Server Error if retrieval fails
func (h *RemarkHandler) Export(w http.ResponseWriter, _ *http.Request) {
	exported, err := h.remarkService.Export()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRemarks.Error(), err.Error())
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="remarks.json"`)
	response.RespondJSON(w, http.StatusOK, exported)
}

// Import handles POST requests to replace the remark list with an uploaded
// export. The whole import is transactional: a malformed entry rejects the
// payload without touching stored remarks.
//
// Endpoint: POST /api/remark/import (API key required)
// Request Body: ImportRemarksRequest (remarks)
// Response: 200 OK with {"imported": n}
// Error: 400 Bad Request if the payload is not a valid remark list
// Error: 500 Internal Server Error if the import fails
func (h *RemarkHandler) Import(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ImportRemarksRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	count, err := h.remarkService.Import(r.Context(), req.Remarks)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyAccountID) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrFailedToImportRemarks.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportRemarks.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]int{"imported": count})
}
