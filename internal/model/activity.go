package model

import "time"

// Trade action values as reported by the activity feed.
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
)

// Token identifies the tradable instrument an activity refers to.
// Only the fields the aggregation relies on are decoded.
type Token struct {
	ID     string `json:"id"`
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// Activity represents one trade event from the upstream activity feed.
// Raw integer amounts carry the source's fixed multiplier and must be
// divided out before use.
type Activity struct {
	Time        time.Time `json:"time"`
	Token       Token     `json:"token"`
	AmountToken int64     `json:"amount_token"`
	AmountBTC   int64     `json:"amount_btc"`
	Action      string    `json:"action"`
}
