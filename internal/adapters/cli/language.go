package cli

import (
	"strings"

	"countdown/internal/config"
	"countdown/internal/domain"
)

// LanguageFromArgs scans args[1:] left to right and returns the language
// selected by the first selecting token. ok is false when no token selects
// one.
//
// Selecting tokens are --japanese, --english, --lang=ja, --lang=en, and -l
// followed by ja or en.
func LanguageFromArgs(args []string) (lang domain.Language, ok bool) {
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case flagJapanese, flagLangJA:
			return domain.Japanese, true
		case flagEnglish, flagLangEN:
			return domain.English, true
		case flagShortL:
			if i+1 < len(args) {
				switch args[i+1] {
				case valueJA:
					return domain.Japanese, true
				case valueEN:
					return domain.English, true
				}
			}
		}
	}
	return domain.English, false
}

// LanguageFromLocale inspects LC_ALL, LC_MESSAGES then LANG and returns
// Japanese if any of them mentions "ja". Anything else is English.
func LanguageFromLocale(env config.Locale) domain.Language {
	for _, v := range []string{env.LCAll, env.LCMessages, env.Lang} {
		if strings.Contains(v, valueJA) {
			return domain.Japanese
		}
	}
	return domain.English
}

// ResolveLanguage picks the display language: command-line flags first, then
// the locale environment, then English.
func ResolveLanguage(args []string, env config.Locale) domain.Language {
	if lang, ok := LanguageFromArgs(args); ok {
		return lang
	}
	return LanguageFromLocale(env)
}
