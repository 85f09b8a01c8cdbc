package testutil

import (
	"time"

	"github.com/astrabot/odin-insight/internal/model"
)

// ActivityBuilder provides a fluent interface for creating test activities.
//
// Example usage:
//
//	// A buy of 5 display units for 100 sats
//	activity := testutil.NewActivity("tok1").
//	    Buy(5000, 100000).
//	    At(baseTime).
//	    Build()
type ActivityBuilder struct {
	activity model.Activity
}

// NewActivity creates an ActivityBuilder for the given token with sensible defaults.
func NewActivity(tokenID string) *ActivityBuilder {
	return &ActivityBuilder{
		activity: model.Activity{
			Time: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Token: model.Token{
				ID:     tokenID,
				Ticker: "TEST",
				Name:   "Test Token",
			},
			Action: model.ActionBuy,
		},
	}
}

// Buy marks the activity as a buy with raw token and BTC amounts.
func (b *ActivityBuilder) Buy(amountToken, amountBTC int64) *ActivityBuilder {
	b.activity.Action = model.ActionBuy
	b.activity.AmountToken = amountToken
	b.activity.AmountBTC = amountBTC
	return b
}

// Sell marks the activity as a sell with raw token and BTC amounts.
func (b *ActivityBuilder) Sell(amountToken, amountBTC int64) *ActivityBuilder {
	b.activity.Action = model.ActionSell
	b.activity.AmountToken = amountToken
	b.activity.AmountBTC = amountBTC
	return b
}

// At sets the activity timestamp.
func (b *ActivityBuilder) At(t time.Time) *ActivityBuilder {
	b.activity.Time = t
	return b
}

// Build returns the constructed activity.
func (b *ActivityBuilder) Build() model.Activity {
	return b.activity
}

// RemarkBuilder provides a fluent interface for creating test remarks.
//
// Example usage:
//
//	remark := testutil.NewRemark().
//	    WithAccountID("ab3cx-q2hnf").
//	    WithRemark("known whale").
//	    Build()
type RemarkBuilder struct {
	remark model.Remark
}

// NewRemark creates a RemarkBuilder with sensible defaults.
func NewRemark() *RemarkBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &RemarkBuilder{
		remark: model.Remark{
			AccountID: MakeAccountID(),
			Username:  "tester",
			Remark:    "test remark",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithAccountID sets a custom account ID.
func (b *RemarkBuilder) WithAccountID(id string) *RemarkBuilder {
	b.remark.AccountID = id
	return b
}

// WithUsername sets a custom username.
func (b *RemarkBuilder) WithUsername(username string) *RemarkBuilder {
	b.remark.Username = username
	return b
}

// WithRemark sets the remark text.
func (b *RemarkBuilder) WithRemark(text string) *RemarkBuilder {
	b.remark.Remark = text
	return b
}

// Build returns the constructed remark.
func (b *RemarkBuilder) Build() model.Remark {
	return b.remark
}
