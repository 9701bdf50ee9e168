package cli

const (
	flagLangJA   = "--lang=ja"
	flagLangEN   = "--lang=en"
	flagJapanese = "--japanese"
	flagEnglish  = "--english"
	flagShortL   = "-l"

	valueJA = "ja"
	valueEN = "en"
)

// FilterArgs returns args without the language selection tokens, preserving
// the order of everything else (argv[0] included).
//
// "-l" is always dropped; the token after it is dropped with it only when it
// is "ja" or "en", otherwise it is kept and scanned normally.
func FilterArgs(args []string) []string {
	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case flagLangJA, flagLangEN, flagJapanese, flagEnglish:
			continue
		case flagShortL:
			if i+1 < len(args) && isLangValue(args[i+1]) {
				i++
			}
			continue
		}
		filtered = append(filtered, args[i])
	}
	return filtered
}

func isLangValue(s string) bool {
	return s == valueJA || s == valueEN
}
