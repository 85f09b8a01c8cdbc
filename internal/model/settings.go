package model

// Settings holds the user-facing preferences persisted between sessions.
type Settings struct {
	StatsEnabled bool   `json:"statsEnabled"`
	Language     string `json:"language"`
}

// DefaultSettings returns the settings applied on first run or after a
// malformed persisted value is reset.
func DefaultSettings() Settings {
	return Settings{
		StatsEnabled: true,
		Language:     "en",
	}
}
