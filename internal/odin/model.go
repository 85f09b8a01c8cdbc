// Package odin provides clients for the public odin.fun platform APIs:
// the paginated per-account activity feed and the BTC/USD exchange rate.
package odin

import "github.com/astrabot/odin-insight/internal/model"

// Scaling constants declared by the upstream platform. Raw integer amounts in
// the activity feed carry AmountMultiplier; prices are expressed in sats, with
// SatsPerBTC sats to one BTC.
const (
	AmountMultiplier = 1000
	SatsPerBTC       = 1e8
)

// ActivityResponse represents one page of the activity feed as returned by
// GET /user/{id}/activity. The endpoint shape is an external-compatibility
// constraint; any mismatch is treated as a failed fetch.
type ActivityResponse struct {
	Count int              `json:"count"`
	Data  []model.Activity `json:"data"`
	Limit int              `json:"limit"`
	Page  int              `json:"page"`
}

// rateResponse is the coingecko simple-price response for bitcoin in USD.
type rateResponse struct {
	Bitcoin struct {
		USD float64 `json:"usd"`
	} `json:"bitcoin"`
}
