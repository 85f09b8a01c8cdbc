package validation

import (
	"fmt"

	"github.com/astrabot/odin-insight/internal/api/request"
	"github.com/astrabot/odin-insight/internal/locale"
)

// ValidateUpdateSettings validates a settings update request.
// All fields are optional; a provided language must be supported.
func ValidateUpdateSettings(req request.UpdateSettingsRequest) error {
	errors := make(map[string]string)

	if req.Language != nil {
		supported := false
		for _, lang := range locale.SupportedLanguages {
			if lang == *req.Language {
				supported = true
				break
			}
		}
		if !supported {
			errors["language"] = fmt.Sprintf("unsupported language: %s", *req.Language)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
