package model

import "time"

// Remark is a user-supplied annotation attached to a trading account.
type Remark struct {
	AccountID string    `json:"accountId"`
	Username  string    `json:"username"`
	Remark    string    `json:"remark"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// RemarkExport is the portable JSON shape used by import/export. It matches
// the extension's export format so existing remark lists round-trip.
type RemarkExport struct {
	AccountID string `json:"userId"`
	Username  string `json:"username"`
	Remark    string `json:"remark"`
}
