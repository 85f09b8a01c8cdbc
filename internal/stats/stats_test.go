package stats_test

import (
	"testing"
	"time"

	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/stats"
	"github.com/astrabot/odin-insight/internal/testutil"
)

// TestCompute_NoMatchingActivity tests the "no tradable activity" signal.
//
// WHY: Accounts with no history for the viewed token must be distinguishable
// from accounts that traded and broke even, so callers can cache and report
// absence instead of zeros.
func TestCompute_NoMatchingActivity(t *testing.T) {
	t.Run("returns false for empty activity", func(t *testing.T) {
		_, ok := stats.Compute(nil, "tok1", 0)
		if ok {
			t.Error("Expected ok=false for empty activity")
		}
	})

	t.Run("returns false when all activity is for other tokens", func(t *testing.T) {
		activities := []model.Activity{
			testutil.NewActivity("other").Buy(5000, 100000).Build(),
		}

		_, ok := stats.Compute(activities, "tok1", 0)
		if ok {
			t.Error("Expected ok=false when no activity matches the token")
		}
	})

	t.Run("filters out other tokens from mixed activity", func(t *testing.T) {
		activities := []model.Activity{
			testutil.NewActivity("tok1").Buy(1000, 100000).Build(),
			testutil.NewActivity("other").Buy(9000, 900000).Build(),
		}

		s, ok := stats.Compute(activities, "tok1", 0)
		if !ok {
			t.Fatal("Expected ok=true")
		}
		if s.TotalBought != 1 {
			t.Errorf("Expected TotalBought 1, got %v", s.TotalBought)
		}
	})
}

// TestCompute_BuyOnly tests aggregation of a pure accumulation history.
//
// WHY: Most holders never sell. Their entire profit/loss is unrealized, so
// the sell-side fields must stay zero and total P/L must track the market
// price alone.
func TestCompute_BuyOnly(t *testing.T) {
	activities := []model.Activity{
		testutil.NewActivity("tok1").Buy(1000, 100000).Build(),
	}

	t.Run("single buy aggregates raw amounts", func(t *testing.T) {
		s, ok := stats.Compute(activities, "tok1", 0)
		if !ok {
			t.Fatal("Expected ok=true")
		}

		if s.TotalBought != 1 {
			t.Errorf("Expected TotalBought 1, got %v", s.TotalBought)
		}
		if s.TotalBoughtValue != 100 {
			t.Errorf("Expected TotalBoughtValue 100, got %v", s.TotalBoughtValue)
		}
		if s.AvgBuyPrice != 1e10 {
			t.Errorf("Expected AvgBuyPrice 1e10, got %v", s.AvgBuyPrice)
		}
		if s.TotalSold != 0 || s.TotalSoldValue != 0 || s.AvgSellPrice != 0 {
			t.Errorf("Expected zero sell side, got sold=%v value=%v avg=%v",
				s.TotalSold, s.TotalSoldValue, s.AvgSellPrice)
		}
	})

	t.Run("no price leaves profit/loss at zero", func(t *testing.T) {
		s, _ := stats.Compute(activities, "tok1", 0)

		if s.ProfitLoss != 0 {
			t.Errorf("Expected zero ProfitLoss without a price, got %v", s.ProfitLoss)
		}
		if s.ROI != 0 {
			t.Errorf("Expected zero ROI without a price, got %v", s.ROI)
		}
	})

	t.Run("total profit/loss equals unrealized when nothing was sold", func(t *testing.T) {
		// Price 1.1e10 sats/token against a 1e10 cost basis on 1 held unit.
		s, _ := stats.Compute(activities, "tok1", 1.1e10)

		want := (1.1e10 - 1e10) / 1e8 * 1 // 100
		if s.ProfitLoss != want {
			t.Errorf("Expected ProfitLoss %v, got %v", want, s.ProfitLoss)
		}
		if s.ROI != 100 {
			t.Errorf("Expected ROI 100, got %v", s.ROI)
		}
	})
}

// TestCompute_BuySellScenario tests a full round trip with realized and
// unrealized components.
//
// WHY: The realized/unrealized split is the core of the engine. This pins a
// hand-computed scenario so regressions in either component are caught.
func TestCompute_BuySellScenario(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// Buy 10 units for 500, sell 4 units for 240. Cost basis 50/unit, so the
	// sale realizes 240 - 200 = 40 with 6 units still held.
	activities := []model.Activity{
		testutil.NewActivity("tok1").Sell(4000, 240000).At(base.Add(time.Hour)).Build(),
		testutil.NewActivity("tok1").Buy(10000, 500000).At(base).Build(),
	}

	t.Run("aggregates both sides", func(t *testing.T) {
		s, ok := stats.Compute(activities, "tok1", 0)
		if !ok {
			t.Fatal("Expected ok=true")
		}

		if s.TotalBought != 10 || s.TotalBoughtValue != 500 {
			t.Errorf("Expected bought 10/500, got %v/%v", s.TotalBought, s.TotalBoughtValue)
		}
		if s.TotalSold != 4 || s.TotalSoldValue != 240 {
			t.Errorf("Expected sold 4/240, got %v/%v", s.TotalSold, s.TotalSoldValue)
		}
		if s.AvgBuyPrice != 5e9 {
			t.Errorf("Expected AvgBuyPrice 5e9, got %v", s.AvgBuyPrice)
		}
		if s.AvgSellPrice != 6e9 {
			t.Errorf("Expected AvgSellPrice 6e9, got %v", s.AvgSellPrice)
		}
		if s.Holding() != 6 {
			t.Errorf("Expected holding 6, got %v", s.Holding())
		}
	})

	t.Run("no price reports realized only", func(t *testing.T) {
		s, _ := stats.Compute(activities, "tok1", 0)

		if s.ProfitLoss != 40 {
			t.Errorf("Expected realized-only ProfitLoss 40, got %v", s.ProfitLoss)
		}
		if s.ROI != 8 {
			t.Errorf("Expected ROI 8, got %v", s.ROI)
		}
	})

	t.Run("price adds unrealized component", func(t *testing.T) {
		// (5.5e9 - 5e9) / 1e8 * 6 held = 30 unrealized on top of 40 realized.
		s, _ := stats.Compute(activities, "tok1", 5.5e9)

		if s.ProfitLoss != 70 {
			t.Errorf("Expected ProfitLoss 70, got %v", s.ProfitLoss)
		}
		if s.ROI != 14 {
			t.Errorf("Expected ROI 14.00, got %v", s.ROI)
		}
	})
}

// TestCompute_Rounding tests quantity flooring and price rounding.
//
// WHY: Quantities floor to whole display units while values keep their
// fractions, and average prices round to the platform's two-decimal display
// precision. Mixing these up skews every downstream figure.
func TestCompute_Rounding(t *testing.T) {
	t.Run("quantity floors, value does not", func(t *testing.T) {
		activities := []model.Activity{
			testutil.NewActivity("tok1").Buy(1500, 1500).Build(),
		}

		s, _ := stats.Compute(activities, "tok1", 0)

		if s.TotalBought != 1 {
			t.Errorf("Expected floored quantity 1, got %v", s.TotalBought)
		}
		if s.TotalBoughtValue != 1.5 {
			t.Errorf("Expected unfloored value 1.5, got %v", s.TotalBoughtValue)
		}
	})

	t.Run("average price rounds to two decimals", func(t *testing.T) {
		// 100 value over 3 units: 3333333333.33... sats/token.
		activities := []model.Activity{
			testutil.NewActivity("tok1").Buy(3000, 100000).Build(),
		}

		s, _ := stats.Compute(activities, "tok1", 0)

		if s.AvgBuyPrice != 3333333333.33 {
			t.Errorf("Expected AvgBuyPrice 3333333333.33, got %v", s.AvgBuyPrice)
		}
	})
}

// TestCompute_SellOnly tests a history with no buys.
//
// WHY: Airdropped or transferred holdings show sells without buys. ROI has no
// invested denominator then and must report zero instead of dividing by zero.
func TestCompute_SellOnly(t *testing.T) {
	activities := []model.Activity{
		testutil.NewActivity("tok1").Sell(2000, 100000).Build(),
	}

	s, ok := stats.Compute(activities, "tok1", 0)
	if !ok {
		t.Fatal("Expected ok=true")
	}

	if s.ProfitLoss != 100 {
		t.Errorf("Expected ProfitLoss 100 (all proceeds), got %v", s.ProfitLoss)
	}
	if s.ROI != 0 {
		t.Errorf("Expected ROI 0 with no buys, got %v", s.ROI)
	}
}

// TestRederive tests the volatile-field recomputation used on price changes.
//
// WHY: Every observed price change re-derives cached statistics without
// touching raw activity. Rederive must be pure, stable under repetition, and
// monotonic in the price while units are held.
func TestRederive(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		testutil.NewActivity("tok1").Buy(10000, 500000).At(base).Build(),
		testutil.NewActivity("tok1").Sell(4000, 240000).At(base.Add(time.Hour)).Build(),
	}

	t.Run("matches Compute for the same price", func(t *testing.T) {
		s, _ := stats.Compute(activities, "tok1", 5.5e9)

		profitLoss, roi := stats.Rederive(s, 5.5e9)

		if profitLoss != s.ProfitLoss || roi != s.ROI {
			t.Errorf("Rederive disagrees with Compute: got %v/%v, want %v/%v",
				profitLoss, roi, s.ProfitLoss, s.ROI)
		}
	})

	t.Run("is stable under repetition", func(t *testing.T) {
		s, _ := stats.Compute(activities, "tok1", 5.5e9)

		first, firstROI := stats.Rederive(s, 7e9)
		s.ProfitLoss, s.ROI = first, firstROI
		second, secondROI := stats.Rederive(s, 7e9)

		if first != second || firstROI != secondROI {
			t.Errorf("Rederive not stable: %v/%v then %v/%v", first, firstROI, second, secondROI)
		}
	})

	t.Run("is monotonic in the price while units are held", func(t *testing.T) {
		s, _ := stats.Compute(activities, "tok1", 0)

		prev, _ := stats.Rederive(s, 1e9)
		for _, p := range []float64{2e9, 5e9, 5.5e9, 9e9} {
			cur, _ := stats.Rederive(s, p)
			if cur < prev {
				t.Errorf("ProfitLoss decreased from %v to %v at price %v", prev, cur, p)
			}
			prev = cur
		}
	})

	t.Run("dropping the price removes the unrealized component", func(t *testing.T) {
		s, _ := stats.Compute(activities, "tok1", 5.5e9)

		profitLoss, _ := stats.Rederive(s, 0)

		if profitLoss != 40 {
			t.Errorf("Expected realized-only 40 with price 0, got %v", profitLoss)
		}
	})
}
