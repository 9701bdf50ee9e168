package i18n

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"countdown/internal/domain"
)

func loadedBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range catalogFiles {
		_, err := bundle.LoadMessageFileFS(localeFS, file)
		require.NoError(t, err, file)
	}
	return bundle
}

func TestNewCatalog_EveryPairPresent(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	for _, lang := range domain.Languages() {
		for _, id := range domain.AllMessageIDs() {
			tmpl := c.Lookup(lang, id)
			assert.NotEmpty(t, tmpl, "%s/%s", lang, id)
			assert.Equal(t, id.Arity(), countVerbs(tmpl), "%s/%s", lang, id)
		}
	}
}

func TestCatalog_LanguagesDiffer(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	assert.Equal(t, "Usage: %s <seconds>", c.Lookup(domain.English, domain.MsgUsage))
	assert.Equal(t, "使用法: %s <秒数>", c.Lookup(domain.Japanese, domain.MsgUsage))
	assert.Equal(t, c.Lookup(domain.English, domain.MsgSeparator), c.Lookup(domain.Japanese, domain.MsgSeparator))
}

func TestCatalog_InvalidID(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	for _, lang := range append(domain.Languages(), domain.Language(42)) {
		for _, id := range []domain.MessageID{-1, domain.MessageID(domain.MessageCount()), 1000} {
			assert.Equal(t, domain.InvalidMessage, c.Lookup(lang, id))
			assert.Equal(t, domain.InvalidMessage, c.T(lang, id, 1, 2))
		}
	}
}

func TestCatalog_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	assert.Equal(t, c.Lookup(domain.English, domain.MsgHeader), c.Lookup(domain.Language(9), domain.MsgHeader))
}

func TestCatalog_T(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	tests := []struct {
		lang domain.Language
		id   domain.MessageID
		args []any
		want string
	}{
		{domain.English, domain.MsgRemainingTime, []any{3, 4242}, "Remaining time: 3 seconds (PID: 4242)"},
		{domain.Japanese, domain.MsgRemainingTime, []any{3, 4242}, "残り時間: 3秒 (PID: 4242)"},
		{domain.English, domain.MsgHeader, []any{"Linux"}, "=== Linux Test Program ==="},
		{domain.Japanese, domain.MsgHeader, []any{"Windows"}, "=== Windows テストプログラム ==="},
		{domain.English, domain.MsgErrorPositive, nil, "Error: Please specify a positive integer"},
		{domain.Japanese, domain.MsgCountdownStart, []any{10}, "カウントダウン開始: 10秒"},
	}
	for _, tt := range tests {
		t.Run(tt.lang.String()+"/"+tt.id.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, c.T(tt.lang, tt.id, tt.args...))
		})
	}
}

func TestNewCatalog_MissingTranslation(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	_, err := bundle.LoadMessageFileFS(localeFS, "active.en.toml")
	require.NoError(t, err)
	// Register Japanese with a single entry so the language exists but is partial.
	require.NoError(t, bundle.AddMessages(language.Japanese, &i18n.Message{ID: "Usage", Other: "使用法: %s"}))

	_, err = newCatalog(bundle)
	require.ErrorIs(t, err, domain.ErrIncompleteCatalog)
}

func TestNewCatalog_ArityMismatch(t *testing.T) {
	bundle := loadedBundle(t)
	require.NoError(t, bundle.AddMessages(language.Japanese, &i18n.Message{ID: "RemainingTime", Other: "残り時間: %d秒"}))

	_, err := newCatalog(bundle)
	require.ErrorIs(t, err, domain.ErrIncompleteCatalog)
	assert.Contains(t, err.Error(), "RemainingTime")
}

func TestCountVerbs(t *testing.T) {
	assert.Equal(t, 0, countVerbs("plain"))
	assert.Equal(t, 0, countVerbs("100%%"))
	assert.Equal(t, 2, countVerbs("%d of %s"))
	assert.Equal(t, 1, countVerbs("%%%d"))
}
