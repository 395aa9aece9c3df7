package cli

import (
	"fmt"

	"github.com/custodia-labs/chartlens-cli/internal/adapters/driven/records/memory"
	"github.com/custodia-labs/chartlens-cli/internal/core/services"
	"github.com/custodia-labs/chartlens-cli/internal/i18n"
)

// fakeSettings is an in-memory driving.SettingsService for command tests.
type fakeSettings struct {
	language i18n.Language
	setErr   error
}

func (f *fakeSettings) Language() i18n.Language {
	if f.language == "" {
		return i18n.Default
	}
	return f.language
}

func (f *fakeSettings) SetLanguage(lang i18n.Language) error {
	if f.setErr != nil {
		return f.setErr
	}
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language %q", lang)
	}
	f.language = lang
	return nil
}

// setupTestServices wires the demo batch into the command tree and returns a
// cleanup function restoring the previous services.
func setupTestServices() func() {
	oldReview := reviewService
	oldSettings := settingsService

	reviewService = services.NewReviewService(memory.NewDemoClient(), nil)
	settingsService = &fakeSettings{}

	return func() {
		reviewService = oldReview
		settingsService = oldSettings
	}
}
