package service

import (
	"context"
	"fmt"
	"time"

	"github.com/astrabot/odin-insight/internal/apperrors"
	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/repository"
)

// RemarkService handles remark-related business logic: per-account
// annotations and their JSON import/export.
type RemarkService struct {
	remarkRepo *repository.RemarkRepository
	eventLog   *EventLogService
}

// NewRemarkService creates a new RemarkService with the provided dependencies.
func NewRemarkService(remarkRepo *repository.RemarkRepository, eventLog *EventLogService) *RemarkService {
	return &RemarkService{
		remarkRepo: remarkRepo,
		eventLog:   eventLog,
	}
}

// GetRemark retrieves the remark for one account.
// Returns apperrors.ErrRemarkNotFound when none exists.
func (s *RemarkService) GetRemark(accountID string) (*model.Remark, error) {
	if accountID == "" {
		return nil, apperrors.ErrEmptyAccountID
	}

	remark, err := s.remarkRepo.GetRemark(accountID)
	if err != nil {
		return nil, err
	}
	if remark == nil {
		return nil, apperrors.ErrRemarkNotFound
	}

	return remark, nil
}

// GetAllRemarks retrieves every stored remark.
func (s *RemarkService) GetAllRemarks() ([]model.Remark, error) {
	return s.remarkRepo.GetAllRemarks()
}

// SaveRemark creates or updates the remark for an account.
func (s *RemarkService) SaveRemark(ctx context.Context, accountID, username, text string) (*model.Remark, error) {
	if accountID == "" {
		return nil, apperrors.ErrEmptyAccountID
	}

	// Second precision matches the RFC3339 storage format, so returned
	// timestamps are identical to what a later read sees.
	now := time.Now().UTC().Truncate(time.Second)
	remark := &model.Remark{
		AccountID: accountID,
		Username:  username,
		Remark:    text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if existing, err := s.remarkRepo.GetRemark(accountID); err == nil && existing != nil {
		remark.CreatedAt = existing.CreatedAt
	}

	if err := s.remarkRepo.UpsertRemark(ctx, remark); err != nil {
		return nil, fmt.Errorf("failed to save remark: %w", err)
	}

	s.eventLog.Log(ctx, "add_remark", accountID, "")

	return remark, nil
}

// DeleteRemark removes the remark for an account.
func (s *RemarkService) DeleteRemark(ctx context.Context, accountID string) error {
	if accountID == "" {
		return apperrors.ErrEmptyAccountID
	}

	affected, err := s.remarkRepo.DeleteRemark(ctx, accountID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrRemarkNotFound
	}

	s.eventLog.Log(ctx, "delete_remark", accountID, "")

	return nil
}

// Export returns all remarks in the portable export shape.
func (s *RemarkService) Export() ([]model.RemarkExport, error) {
	remarks, err := s.remarkRepo.GetAllRemarks()
	if err != nil {
		return nil, err
	}

	exported := make([]model.RemarkExport, 0, len(remarks))
	for _, remark := range remarks {
		exported = append(exported, model.RemarkExport{
			AccountID: remark.AccountID,
			Username:  remark.Username,
			Remark:    remark.Remark,
		})
	}

	return exported, nil
}

// Import replaces the stored remark list with the given export. Entries with
// an empty account ID are rejected before anything is written.
func (s *RemarkService) Import(ctx context.Context, imported []model.RemarkExport) (int, error) {
	now := time.Now().UTC().Truncate(time.Second)
	remarks := make([]model.Remark, 0, len(imported))

	for _, e := range imported {
		if e.AccountID == "" {
			return 0, fmt.Errorf("%w: import entry without account ID", apperrors.ErrEmptyAccountID)
		}
		remarks = append(remarks, model.Remark{
			AccountID: e.AccountID,
			Username:  e.Username,
			Remark:    e.Remark,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.remarkRepo.ReplaceAll(ctx, remarks); err != nil {
		return 0, err
	}

	s.eventLog.Log(ctx, "import_remarks", "", fmt.Sprintf("%d entries", len(remarks)))

	return len(remarks), nil
}
