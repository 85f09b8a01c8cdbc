package repository_test

import (
	"context"
	"testing"

	"github.com/astrabot/odin-insight/internal/repository"
	"github.com/astrabot/odin-insight/internal/testutil"
)

// TestSettingsRepository tests the key/value settings store.
//
// WHY: Settings reads happen on nearly every request. A missing key must
// read as "not present" rather than an error so callers can substitute
// defaults.
func TestSettingsRepository(t *testing.T) {
	t.Run("missing key reads as not present", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		value, ok, err := repo.GetValue("missing")
		if err != nil {
			t.Fatalf("GetValue() returned unexpected error: %v", err)
		}
		if ok {
			t.Errorf("Expected ok=false for missing key, got value %q", value)
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		if err := repo.SetValue(context.Background(), "settings", `{"statsEnabled":true}`); err != nil {
			t.Fatalf("SetValue() returned unexpected error: %v", err)
		}

		value, ok, err := repo.GetValue("settings")
		if err != nil {
			t.Fatalf("GetValue() returned unexpected error: %v", err)
		}
		if !ok || value != `{"statsEnabled":true}` {
			t.Errorf("Expected stored value, got %q (ok=%v)", value, ok)
		}
	})

	t.Run("set overwrites an existing key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		if err := repo.SetValue(context.Background(), "key", "first"); err != nil {
			t.Fatalf("SetValue() returned unexpected error: %v", err)
		}
		if err := repo.SetValue(context.Background(), "key", "second"); err != nil {
			t.Fatalf("SetValue() returned unexpected error: %v", err)
		}

		value, _, err := repo.GetValue("key")
		if err != nil {
			t.Fatalf("GetValue() returned unexpected error: %v", err)
		}
		if value != "second" {
			t.Errorf("Expected overwritten value, got %q", value)
		}
		testutil.AssertRowCount(t, db, "settings", 1)
	})
}
