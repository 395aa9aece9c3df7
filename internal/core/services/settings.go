package services

import (
	"fmt"

	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/chartlens-cli/internal/i18n"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLanguage = "ui.language"
)

// SettingsService manages persisted UI preferences.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Language returns the stored UI language. A missing or invalid stored
// value falls back to the default language rather than failing.
func (s *SettingsService) Language() i18n.Language {
	if s.configStore == nil {
		return i18n.Default
	}
	lang := i18n.Language(s.configStore.GetString(keyLanguage))
	if !lang.IsValid() {
		return i18n.Default
	}
	return lang
}

// SetLanguage validates and persists the UI language.
func (s *SettingsService) SetLanguage(lang i18n.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language %q", lang)
	}
	if s.configStore == nil {
		return fmt.Errorf("no config store configured")
	}
	if err := s.configStore.Set(keyLanguage, lang.String()); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}
