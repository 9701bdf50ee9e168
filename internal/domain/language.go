package domain

import "golang.org/x/text/language"

// Language is the display language of every user-facing line.
type Language int

const (
	English Language = iota
	Japanese
)

// Languages lists every supported language in catalog order.
func Languages() []Language {
	return []Language{English, Japanese}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case English, Japanese:
		return true
	}
	return false
}

// Tag returns the BCP 47 tag used to address the catalog.
// Unknown values map to English.
func (l Language) Tag() language.Tag {
	switch l {
	case Japanese:
		return language.Japanese
	default:
		return language.English
	}
}

func (l Language) String() string {
	switch l {
	case English:
		return "en"
	case Japanese:
		return "ja"
	default:
		return "unknown"
	}
}
