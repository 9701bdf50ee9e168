package output

import "countdown/internal/domain"

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + formatting for a given language.
type T interface {
	// T renders the message identified by id in lang.
	// args fill the template's printf verbs, in order.
	T(lang domain.Language, id domain.MessageID, args ...any) string
}
