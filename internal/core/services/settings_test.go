package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chartlens-cli/internal/i18n"
)

// mapStore is an in-memory config store for tests.
type mapStore struct {
	values map[string]any
	setErr error
}

func newMapStore() *mapStore {
	return &mapStore{values: make(map[string]any)}
}

func (s *mapStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *mapStore) GetString(key string) string {
	if v, ok := s.values[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

func (s *mapStore) Set(key string, value any) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *mapStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

func TestSettingsService_Language_Default(t *testing.T) {
	svc := NewSettingsService(newMapStore())
	assert.Equal(t, i18n.Default, svc.Language())
}

func TestSettingsService_Language_NilStore(t *testing.T) {
	svc := NewSettingsService(nil)
	assert.Equal(t, i18n.Default, svc.Language())
}

func TestSettingsService_Language_InvalidStoredValue(t *testing.T) {
	store := newMapStore()
	store.values[keyLanguage] = "klingon"
	svc := NewSettingsService(store)
	assert.Equal(t, i18n.Default, svc.Language())
}

func TestSettingsService_SetLanguage_RoundTrip(t *testing.T) {
	store := newMapStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.SetLanguage(i18n.Czech))
	assert.Equal(t, i18n.Czech, svc.Language())
	assert.Equal(t, "cs", store.GetString(keyLanguage))
}

func TestSettingsService_SetLanguage_Invalid(t *testing.T) {
	svc := NewSettingsService(newMapStore())
	assert.Error(t, svc.SetLanguage(i18n.Language("xx")))
}

func TestSettingsService_SetLanguage_StoreFailure(t *testing.T) {
	store := newMapStore()
	store.setErr = errors.New("disk full")
	svc := NewSettingsService(store)
	assert.Error(t, svc.SetLanguage(i18n.English))
}
