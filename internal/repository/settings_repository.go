package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SettingsRepository provides data access methods for the settings table,
// a simple key/value store.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetValue retrieves the raw value for a settings key.
// The second return value is false when the key is not present.
func (r *SettingsRepository) GetValue(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query settings table: %w", err)
	}
	return value, true, nil
}

// SetValue inserts or replaces the value for a settings key.
func (r *SettingsRepository) SetValue(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}
