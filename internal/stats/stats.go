// Package stats implements the profit/loss aggregation engine. It folds an
// account's trade activity into weighted-average cost-basis statistics and
// derives realized and unrealized profit/loss against a current market price.
package stats

import (
	"math"
	"sort"

	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/odin"
)

// Compute aggregates an account's activity, filtered to one token, into
// HolderStats. The second return value is false when no activity matches the
// token, signalling "no tradable activity" rather than an error.
//
// The cost basis is a simple lifetime average: a full sell-down followed by
// re-buys keeps averaging over the whole history. That matches the upstream
// platform's figures and is deliberate.
//
// Volatile fields (ProfitLoss, ROI) are derived for the given currentPrice
// (sats per token); pass 0 when no price is known, which leaves unrealized
// P/L at zero so only realized figures are reported.
func Compute(activities []model.Activity, tokenID string, currentPrice float64) (model.HolderStats, bool) {
	filtered := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if a.Token.ID == tokenID {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == 0 {
		return model.HolderStats{}, false
	}

	// The feed is newest-first. The sums below are order-insensitive, but
	// chronological order keeps replay deterministic.
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Time.Before(filtered[j].Time)
	})

	s := model.HolderStats{TokenID: tokenID}

	for _, a := range filtered {
		quantity := math.Floor(float64(a.AmountToken) / odin.AmountMultiplier)
		value := float64(a.AmountBTC) / odin.AmountMultiplier

		switch a.Action {
		case model.ActionBuy:
			s.TotalBought += quantity
			s.TotalBoughtValue += value
		case model.ActionSell:
			s.TotalSold += quantity
			s.TotalSoldValue += value
		}
	}

	if s.TotalBought > 0 {
		s.AvgBuyPrice = round2(s.TotalBoughtValue / s.TotalBought * odin.SatsPerBTC)
	}
	if s.TotalSold > 0 {
		s.AvgSellPrice = round2(s.TotalSoldValue / s.TotalSold * odin.SatsPerBTC)
	}

	s.ProfitLoss, s.ROI = Rederive(s, currentPrice)

	return s, true
}

// Rederive recomputes the two volatile fields from the stable totals and the
// given current market price (sats per token). It is a pure function of its
// inputs and is what the price observer calls on every price change, for every
// cached account, to avoid re-fetching or re-aggregating raw activity.
//
// Realized P/L values sold quantity against the average buy price; unrealized
// P/L values the remaining holding at the current price. ROI is total P/L over
// total invested, as a percentage rounded to two decimals.
func Rederive(s model.HolderStats, currentPrice float64) (profitLoss, roi float64) {
	buyValueOfSold := s.AvgBuyPrice / odin.SatsPerBTC * s.TotalSold
	realized := s.TotalSoldValue - buyValueOfSold

	var unrealized float64
	if currentPrice > 0 {
		unrealized = (currentPrice - s.AvgBuyPrice) / odin.SatsPerBTC * s.Holding()
	}

	profitLoss = realized + unrealized

	if s.TotalBoughtValue > 0 {
		roi = round2(profitLoss / s.TotalBoughtValue * 100)
	}

	return profitLoss, roi
}

// round2 rounds to two decimal places, the platform's display precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
