package driven

// ConfigStore persists key-value configuration such as the record API base
// URL and the UI language preference.
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when absent.
	GetString(key string) string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Delete removes a key and persists the change.
	Delete(key string) error
}
