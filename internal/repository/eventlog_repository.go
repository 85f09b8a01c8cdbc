package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/astrabot/odin-insight/internal/model"
)

// EventLogRepository provides data access methods for the event_log table.
type EventLogRepository struct {
	db *sql.DB
}

// NewEventLogRepository creates a new EventLogRepository with the provided database connection.
func NewEventLogRepository(db *sql.DB) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// InsertEntry appends one entry to the event log.
func (r *EventLogRepository) InsertEntry(ctx context.Context, e *model.EventLogEntry) error {
	query := `
		INSERT INTO event_log (id, time, action, account_id, detail)
		VALUES (?, ?, ?, ?, ?)
	`

	var accountID sql.NullString
	if e.AccountID != "" {
		accountID = sql.NullString{String: e.AccountID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Time.Format(time.RFC3339),
		e.Action,
		accountID,
		e.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event log entry: %w", err)
	}

	return nil
}

// GetEntries retrieves the newest event log entries up to limit.
func (r *EventLogRepository) GetEntries(limit int) ([]model.EventLogEntry, error) {
	query := `
		SELECT id, time, action, account_id, detail
		FROM event_log
		ORDER BY time DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query event_log table: %w", err)
	}
	defer rows.Close()

	entries := []model.EventLogEntry{}

	for rows.Next() {
		var e model.EventLogEntry
		var timeStr string
		var accountID, detail sql.NullString

		if err := rows.Scan(&e.ID, &timeStr, &e.Action, &accountID, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan event_log table results: %w", err)
		}

		e.Time, err = ParseTime(timeStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse time: %w", err)
		}
		if accountID.Valid {
			e.AccountID = accountID.String
		}
		if detail.Valid {
			e.Detail = detail.String
		}

		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event_log table: %w", err)
	}

	return entries, nil
}
