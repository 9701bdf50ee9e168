package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"countdown/internal/domain"
	"countdown/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var catalogFiles = []string{"active.en.toml", "active.ja.toml"}

// Ensure Catalog implements the output.T port.
var _ output.T = (*Catalog)(nil)

// Catalog is the fixed (language, message) → printf template table.
//
// Templates are resolved once from the go-i18n bundle when the catalog is
// built; lookups afterwards never touch the bundle.
type Catalog struct {
	templates map[domain.Language][]string
}

// NewCatalog loads the embedded active.*.toml files and checks that every
// (language, message) pair has a non-empty template with the expected
// number of verbs.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(domain.English.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range catalogFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}
	return newCatalog(bundle)
}

func newCatalog(bundle *i18n.Bundle) (*Catalog, error) {
	c := &Catalog{templates: make(map[domain.Language][]string, len(domain.Languages()))}

	for _, lang := range domain.Languages() {
		localizer := i18n.NewLocalizer(bundle, lang.Tag().String())
		templates := make([]string, domain.MessageCount())

		for _, id := range domain.AllMessageIDs() {
			// A fallback to the default language is reported as an error
			// too, so a missing Japanese entry fails here.
			msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id.Key()})
			if err != nil {
				return nil, fmt.Errorf("%w: %s/%s: %v", domain.ErrIncompleteCatalog, lang, id, err)
			}
			if strings.TrimSpace(msg) == "" {
				return nil, fmt.Errorf("%w: %s/%s is empty", domain.ErrIncompleteCatalog, lang, id)
			}
			if n := countVerbs(msg); n != id.Arity() {
				return nil, fmt.Errorf("%w: %s/%s has %d verbs, want %d",
					domain.ErrIncompleteCatalog, lang, id, n, id.Arity())
			}
			templates[id] = msg
		}
		c.templates[lang] = templates
	}
	return c, nil
}

// Lookup returns the template for (lang, id). Unknown languages fall back to
// English; invalid ids yield domain.InvalidMessage.
func (c *Catalog) Lookup(lang domain.Language, id domain.MessageID) string {
	if !id.Valid() {
		return domain.InvalidMessage
	}
	if !lang.Valid() {
		lang = domain.English
	}
	return c.templates[lang][id]
}

// T renders the message identified by id in lang.
func (c *Catalog) T(lang domain.Language, id domain.MessageID, args ...any) string {
	if !id.Valid() {
		return domain.InvalidMessage
	}
	return fmt.Sprintf(c.Lookup(lang, id), args...)
}

// countVerbs counts printf verbs in s, ignoring literal "%%".
func countVerbs(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}
