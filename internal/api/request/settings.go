package request

// UpdateSettingsRequest represents the request body for updating settings.
// Fields are optional; omitted fields keep their current value.
type UpdateSettingsRequest struct {
	StatsEnabled *bool   `json:"statsEnabled,omitempty"`
	Language     *string `json:"language,omitempty"`
}
