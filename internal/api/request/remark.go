package request

import "github.com/astrabot/odin-insight/internal/model"

// SaveRemarkRequest represents the request body for creating or updating a remark.
type SaveRemarkRequest struct {
	Username string `json:"username"`
	Remark   string `json:"remark"`
}

// ImportRemarksRequest represents the request body for importing a remark list.
// The payload is the extension's export format, an array of remark entries.
type ImportRemarksRequest struct {
	Remarks []model.RemarkExport `json:"remarks"`
}
