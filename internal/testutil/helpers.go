package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/astrabot/odin-insight/internal/repository"
	"github.com/astrabot/odin-insight/internal/service"
)

func NewTestEventLogService(t *testing.T, db *sql.DB) *service.EventLogService {
	t.Helper()

	eventLogRepo := repository.NewEventLogRepository(db)

	return service.NewEventLogService(eventLogRepo)
}

func NewTestRemarkService(t *testing.T, db *sql.DB) *service.RemarkService {
	t.Helper()

	remarkRepo := repository.NewRemarkRepository(db)
	eventLog := NewTestEventLogService(t, db)

	return service.NewRemarkService(remarkRepo, eventLog)
}

// NewTestSettingsService creates a SettingsService without API key storage.
func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingsRepo := repository.NewSettingsRepository(db)
	svc, err := service.NewSettingsService(settingsRepo, "")
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}

	return svc
}

// NewTestSettingsServiceWithFernet creates a SettingsService with a freshly
// generated Fernet key so API key round trips can be tested.
func NewTestSettingsServiceWithFernet(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingsRepo := repository.NewSettingsRepository(db)
	svc, err := service.NewSettingsService(settingsRepo, GenerateFernetKey(t))
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}

	return svc
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.New().String()
}

// MakeAccountID generates a principal-like account identifier for testing.
//
// Example usage:
//
//	id := testutil.MakeAccountID()
//	// Returns something like: "ab3cx-q2hnf-..."
func MakeAccountID() string {
	return randomLowerAlphanumeric(5) + "-" + randomLowerAlphanumeric(5) + "-" + randomLowerAlphanumeric(5)
}

// MakeTokenID generates a token identifier for testing.
func MakeTokenID() string {
	return randomLowerAlphanumeric(4)
}

// randomLowerAlphanumeric generates a random lowercase alphanumeric string.
func randomLowerAlphanumeric(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz234567"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
