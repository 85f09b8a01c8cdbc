package model

// HolderStats holds the aggregated trading statistics for one account on one
// token, computed once per viewing session from the account's activity history.
//
// TotalBought/TotalSold are token quantities, TotalBoughtValue/TotalSoldValue
// are BTC amounts, and the average prices are sats per token. ProfitLoss (BTC)
// and ROI (percent) are volatile: they are re-derived from the stable fields
// and the current market price on every price change, never stored as ground
// truth.
type HolderStats struct {
	TokenID          string  `json:"tokenId"`
	AccountID        string  `json:"accountId"`
	TotalBought      float64 `json:"totalBought"`
	TotalSold        float64 `json:"totalSold"`
	TotalBoughtValue float64 `json:"totalBoughtValue"`
	TotalSoldValue   float64 `json:"totalSoldValue"`
	AvgBuyPrice      float64 `json:"avgBuyPrice"`
	AvgSellPrice     float64 `json:"avgSellPrice"`
	ProfitLoss       float64 `json:"profitLoss"`
	ROI              float64 `json:"roi"`
}

// Holding returns the currently held (unsold) token quantity.
func (s HolderStats) Holding() float64 {
	return s.TotalBought - s.TotalSold
}

// HolderStatsResponse enriches HolderStats with display data for API responses.
// USD figures are present only when a BTC/USD rate is available; PriceKnown is
// false while the price observer has not located a market price, in which case
// ProfitLoss and ROI carry realized figures only.
type HolderStatsResponse struct {
	HolderStats
	PriceKnown    bool     `json:"priceKnown"`
	ProfitLossUSD *float64 `json:"profitLossUsd,omitempty"`
	Remark        *Remark  `json:"remark,omitempty"`
}
