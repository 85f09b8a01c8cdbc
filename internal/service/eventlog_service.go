package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/repository"
)

// defaultLogLimit caps how many entries a log query returns.
const defaultLogLimit = 500

// EventLogService appends user-action events to the fire-and-forget log.
// The log is advisory: failures to record are logged locally and never
// propagated to the caller.
type EventLogService struct {
	eventLogRepo *repository.EventLogRepository
}

// NewEventLogService creates a new EventLogService with the provided repository.
func NewEventLogService(eventLogRepo *repository.EventLogRepository) *EventLogService {
	return &EventLogService{eventLogRepo: eventLogRepo}
}

// Log appends an event. Fire-and-forget: errors are swallowed after logging.
func (s *EventLogService) Log(ctx context.Context, action, accountID, detail string) {
	entry := &model.EventLogEntry{
		ID:        uuid.New().String(),
		Time:      time.Now().UTC(),
		Action:    action,
		AccountID: accountID,
		Detail:    detail,
	}

	if err := s.eventLogRepo.InsertEntry(ctx, entry); err != nil {
		log.Printf("failed to record event %s: %v", action, err)
	}
}

// GetEntries retrieves the newest log entries. limit <= 0 uses the default.
func (s *EventLogService) GetEntries(limit int) ([]model.EventLogEntry, error) {
	if limit <= 0 || limit > defaultLogLimit {
		limit = defaultLogLimit
	}
	return s.eventLogRepo.GetEntries(limit)
}
