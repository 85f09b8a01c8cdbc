package request

// StartSessionRequest represents the request body for starting a viewing session.
type StartSessionRequest struct {
	TokenID string `json:"tokenId"`
}

// WarmHoldersRequest represents the request body for batch-loading holder statistics.
type WarmHoldersRequest struct {
	AccountIDs []string `json:"accountIds"`
}
