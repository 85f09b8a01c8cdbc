package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/repository"
	"github.com/astrabot/odin-insight/internal/testutil"
)

// TestEventLogRepository tests appending and reading the event log.
func TestEventLogRepository(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	insert := func(t *testing.T, repo *repository.EventLogRepository, action string, at time.Time) {
		t.Helper()
		entry := model.EventLogEntry{
			ID:        testutil.MakeID(),
			Time:      at,
			Action:    action,
			AccountID: "acct1",
			Detail:    "detail",
		}
		if err := repo.InsertEntry(context.Background(), &entry); err != nil {
			t.Fatalf("InsertEntry() returned unexpected error: %v", err)
		}
	}

	t.Run("returns newest entries first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewEventLogRepository(db)

		insert(t, repo, "add_remark", base)
		insert(t, repo, "delete_remark", base.Add(time.Hour))

		entries, err := repo.GetEntries(10)
		if err != nil {
			t.Fatalf("GetEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(entries))
		}
		if entries[0].Action != "delete_remark" {
			t.Errorf("Expected newest entry first, got %s", entries[0].Action)
		}
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewEventLogRepository(db)

		for i := range 5 {
			insert(t, repo, "add_remark", base.Add(time.Duration(i)*time.Minute))
		}

		entries, err := repo.GetEntries(3)
		if err != nil {
			t.Fatalf("GetEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Errorf("Expected 3 entries, got %d", len(entries))
		}
	})

	t.Run("empty account ID stores as NULL and reads back empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewEventLogRepository(db)

		entry := model.EventLogEntry{
			ID:     testutil.MakeID(),
			Time:   base,
			Action: "import_remarks",
		}
		if err := repo.InsertEntry(context.Background(), &entry); err != nil {
			t.Fatalf("InsertEntry() returned unexpected error: %v", err)
		}

		entries, err := repo.GetEntries(1)
		if err != nil {
			t.Fatalf("GetEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("Expected 1 entry, got %d", len(entries))
		}
		if entries[0].AccountID != "" {
			t.Errorf("Expected empty AccountID, got %q", entries[0].AccountID)
		}
	})
}
