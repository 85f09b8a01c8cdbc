// Package locale serves the localized display strings used by the UI.
// Catalogs are embedded go-i18n message files, one per supported language.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/astrabot/odin-insight/internal/apperrors"
)

//go:embed locales/*.json
var localeFS embed.FS

// SupportedLanguages lists the languages with a catalog, default first.
var SupportedLanguages = []string{"en", "zh"}

// messageIDs enumerates every display string the UI requests. Kept in one
// place so Strings can build a complete catalog per language.
var messageIDs = []string{
	"pageTitle",
	"exportButton", "importButton", "editButton", "deleteButton",
	"cancelButton", "confirmButton", "saveButton",
	"addRemarkButton", "editRemarkButton",
	"idHeader", "usernameHeader", "remarkHeader", "actionsHeader",
	"editRemarkTitle", "deleteRemarkTitle", "deleteRemarkMessage",
	"exportFailTitle", "exportFailMessage",
	"importTitle", "importFailTitle", "remarkInputPrompt",
	"noRemarks", "invalidDataFormat", "invalidJson",
	"switchLanguage", "remarksList",
	"totalBuySell", "avgBuySell", "profitLoss", "priceUnavailable",
}

// Catalog resolves display strings for the supported languages.
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog loads the embedded message files into a bundle.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, lang := range SupportedLanguages {
		filename := fmt.Sprintf("locales/%s.json", lang)
		if _, err := bundle.LoadMessageFileFS(localeFS, filename); err != nil {
			return nil, fmt.Errorf("failed to load locale %s: %w", lang, err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// Supported reports whether the language has a catalog.
func (c *Catalog) Supported(lang string) bool {
	for _, supported := range SupportedLanguages {
		if supported == lang {
			return true
		}
	}
	return false
}

// Strings returns the full display-string map for one language.
// Returns apperrors.ErrLocaleNotFound for unsupported languages.
func (c *Catalog) Strings(lang string) (map[string]string, error) {
	if !c.Supported(lang) {
		return nil, apperrors.ErrLocaleNotFound
	}

	localizer := i18n.NewLocalizer(c.bundle, lang)
	strings := make(map[string]string, len(messageIDs))

	for _, id := range messageIDs {
		message, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			// Missing IDs fall back to the default language via the
			// localizer; a hard failure means the catalog is broken.
			return nil, fmt.Errorf("failed to localize %s: %w", id, err)
		}
		strings[id] = message
	}

	return strings, nil
}
