package service

import (
	"database/sql"

	"github.com/astrabot/odin-insight/internal/database"
	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version and available features.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	var dbVersion string
	if err := s.db.QueryRow("SELECT sqlite_version()").Scan(&dbVersion); err != nil {
		return model.VersionInfo{}, err
	}

	return model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  dbVersion,
		Features: map[string]bool{
			"holder_statistics": true,
			"remarks":           true,
			"live_price":        true,
			"websocket_updates": true,
		},
	}, nil
}
