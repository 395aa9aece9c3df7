// Package i18n provides the language preference type and the plural-form
// selection algorithm used for document and question counts. Only the
// selection logic lives here; display strings stay with their views.
package i18n

// Language is a two-letter UI language code.
type Language string

// Supported languages.
const (
	// English is the default when no preference is stored.
	English Language = "en"

	// Czech matches the language of the source record corpus.
	Czech Language = "cs"
)

// Default is the language used when no valid preference is stored.
const Default = English

// IsValid returns true if the language is supported.
func (l Language) IsValid() bool {
	switch l {
	case English, Czech:
		return true
	default:
		return false
	}
}

// String returns the two-letter code.
func (l Language) String() string {
	return string(l)
}

// Description returns a human-readable name for the language.
func (l Language) Description() string {
	switch l {
	case English:
		return "English"
	case Czech:
		return "Čeština"
	default:
		return "Unknown"
	}
}

// PluralIndex selects the plural form index for a count.
//
// English: 0 = one, 1 = other.
// Czech: 0 = one (n == 1), 1 = few (2 <= n <= 4), 2 = other.
// Unsupported languages use the English rule.
func PluralIndex(lang Language, n int) int {
	if n < 0 {
		n = -n
	}

	switch lang {
	case Czech:
		switch {
		case n == 1:
			return 0
		case n >= 2 && n <= 4:
			return 1
		default:
			return 2
		}
	default:
		if n == 1 {
			return 0
		}
		return 1
	}
}

// Plural picks the form for n from forms using PluralIndex. Callers pass one
// form per index their language needs; when too few forms are supplied the
// last one is used.
func Plural(lang Language, n int, forms ...string) string {
	if len(forms) == 0 {
		return ""
	}
	idx := PluralIndex(lang, n)
	if idx >= len(forms) {
		idx = len(forms) - 1
	}
	return forms[idx]
}
