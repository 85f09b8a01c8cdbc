package model

import "time"

// EventLogEntry is one record in the fire-and-forget action log.
type EventLogEntry struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Action    string    `json:"action"`
	AccountID string    `json:"accountId,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
