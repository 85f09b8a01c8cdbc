package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/repository"
)

// Settings table keys.
const (
	settingsKey = "settings"
	apiKeyKey   = "api_key"
)

// apiKeyTTL bounds how old an encrypted API key token may be before it is
// considered unreadable and must be set again.
const apiKeyTTL = 365 * 24 * time.Hour

// SettingsService handles the persisted user preferences and the
// fernet-encrypted developer API key.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	fernetKey    *fernet.Key
}

// NewSettingsService creates a new SettingsService. fernetKey may be empty,
// which disables API key storage (and with it the protected endpoints).
func NewSettingsService(settingsRepo *repository.SettingsRepository, fernetKey string) (*SettingsService, error) {
	s := &SettingsService{settingsRepo: settingsRepo}

	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("invalid fernet key: %w", err)
		}
		s.fernetKey = key
	}

	return s, nil
}

// GetSettings retrieves the persisted settings. A missing or malformed value
// resets to defaults: the corruption is logged, never surfaced.
func (s *SettingsService) GetSettings() (model.Settings, error) {
	raw, found, err := s.settingsRepo.GetValue(settingsKey)
	if err != nil {
		return model.Settings{}, err
	}
	if !found {
		return model.DefaultSettings(), nil
	}

	var settings model.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("malformed persisted settings, resetting to defaults: %v", err)
		return model.DefaultSettings(), nil
	}

	return settings, nil
}

// UpdateSettings persists the given settings.
func (s *SettingsService) UpdateSettings(ctx context.Context, settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return s.settingsRepo.SetValue(ctx, settingsKey, string(data))
}

// SetAPIKey stores the developer API key fernet-encrypted at rest.
func (s *SettingsService) SetAPIKey(ctx context.Context, apiKey string) error {
	if s.fernetKey == nil {
		return fmt.Errorf("api key storage requires a configured fernet key")
	}

	token, err := fernet.EncryptAndSign([]byte(apiKey), s.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt api key: %w", err)
	}

	return s.settingsRepo.SetValue(ctx, apiKeyKey, string(token))
}

// VerifyAPIKey checks a presented key against the stored one. When no key has
// been stored or no fernet key is configured, verification always fails.
func (s *SettingsService) VerifyAPIKey(presented string) bool {
	if s.fernetKey == nil || presented == "" {
		return false
	}

	token, found, err := s.settingsRepo.GetValue(apiKeyKey)
	if err != nil || !found {
		return false
	}

	stored := fernet.VerifyAndDecrypt([]byte(token), apiKeyTTL, []*fernet.Key{s.fernetKey})
	if stored == nil {
		return false
	}

	return string(stored) == presented
}
