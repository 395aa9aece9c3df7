package driving

import "github.com/custodia-labs/chartlens-cli/internal/i18n"

// SettingsService manages the persisted UI preferences.
type SettingsService interface {
	// Language returns the stored UI language, or the default when nothing
	// valid is stored.
	Language() i18n.Language

	// SetLanguage validates and persists the UI language.
	SetLanguage(lang i18n.Language) error
}
