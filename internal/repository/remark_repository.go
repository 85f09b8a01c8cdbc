package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/astrabot/odin-insight/internal/model"
)

// RemarkRepository provides data access methods for the remark table.
type RemarkRepository struct {
	db *sql.DB
}

// NewRemarkRepository creates a new RemarkRepository with the provided database connection.
func NewRemarkRepository(db *sql.DB) *RemarkRepository {
	return &RemarkRepository{db: db}
}

// GetRemark retrieves the remark for one account.
// Returns sql.ErrNoRows wrapped as a nil remark when no remark exists.
func (r *RemarkRepository) GetRemark(accountID string) (*model.Remark, error) {
	query := `
		SELECT account_id, username, remark, created_at, updated_at
		FROM remark
		WHERE account_id = ?
	`

	var remark model.Remark
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRow(query, accountID).Scan(
		&remark.AccountID,
		&remark.Username,
		&remark.Remark,
		&createdAtStr,
		&updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query remark table: %w", err)
	}

	remark.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	remark.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &remark, nil
}

// GetAllRemarks retrieves every stored remark, most recently updated first.
func (r *RemarkRepository) GetAllRemarks() ([]model.Remark, error) {
	query := `
		SELECT account_id, username, remark, created_at, updated_at
		FROM remark
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query remark table: %w", err)
	}
	defer rows.Close()

	remarks := []model.Remark{}

	for rows.Next() {
		var remark model.Remark
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&remark.AccountID,
			&remark.Username,
			&remark.Remark,
			&createdAtStr,
			&updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan remark table results: %w", err)
		}

		remark.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		remark.UpdatedAt, err = ParseTime(updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		remarks = append(remarks, remark)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating remark table: %w", err)
	}

	return remarks, nil
}

// UpsertRemark inserts or replaces the remark for an account, preserving the
// original creation time on update.
func (r *RemarkRepository) UpsertRemark(ctx context.Context, remark *model.Remark) error {
	query := `
		INSERT INTO remark (account_id, username, remark, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(account_id) DO UPDATE SET
			username = excluded.username,
			remark = excluded.remark,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		remark.AccountID,
		remark.Username,
		remark.Remark,
		remark.CreatedAt.Format(time.RFC3339),
		remark.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert remark: %w", err)
	}

	return nil
}

// DeleteRemark removes the remark for an account.
// Returns the number of rows affected so callers can detect "not found".
func (r *RemarkRepository) DeleteRemark(ctx context.Context, accountID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM remark WHERE account_id = ?`, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete remark: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected, nil
}

// ReplaceAll deletes every remark and inserts the given set in one
// transaction. Used by import.
func (r *RemarkRepository) ReplaceAll(ctx context.Context, remarks []model.Remark) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	//nolint:errcheck // Rollback after commit is a no-op.
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM remark`); err != nil {
		return fmt.Errorf("failed to clear remark table: %w", err)
	}

	insert := `
		INSERT INTO remark (account_id, username, remark, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, remark := range remarks {
		_, err := tx.ExecContext(ctx, insert,
			remark.AccountID,
			remark.Username,
			remark.Remark,
			remark.CreatedAt.Format(time.RFC3339),
			remark.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert remark for %s: %w", remark.AccountID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import transaction: %w", err)
	}

	return nil
}
