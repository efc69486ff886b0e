package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultBundleLoadsEmbeddedLocales(t *testing.T) {
	b := Default()
	require.NotNil(t, b)

	assert.True(t, b.HasLanguage(language.English))
	assert.True(t, b.HasLanguage(language.German))
	assert.Equal(t, language.English, b.GetDefaultLanguage())
	assert.Equal(t, []language.Tag{language.German, language.English}, b.Languages())
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	b := Default()
	for key := range b.translations[language.English] {
		assert.True(t, b.HasKey(language.German, key), "missing key %q in de", key)
	}
	for key := range b.translations[language.German] {
		assert.True(t, b.HasKey(language.English, key), "extra key %q in de", key)
	}
}

func TestBundleTranslate(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, "Option ‘verbose’ already exists", b.T("optarg.error.option_exists", "verbose"))
	assert.Equal(t, "Option ‘verbose’ existiert bereits", b.TL(language.German, "optarg.error.option_exists", "verbose"))
	// regional variants fall back to their base language
	assert.Equal(t, "Aufruf:", b.TL(language.MustParse("de-CH"), "optarg.msg.usage"))
	assert.Equal(t, "unknown.key", b.T("unknown.key"))
}

func TestBundleMessageFallback(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, "Usage:", b.Message(language.French, "optarg.msg.usage"))
	assert.Equal(t, "Aufruf:", b.Message(language.German, "optarg.msg.usage"))
	assert.Equal(t, "nope", b.Message(language.German, "nope"))
}

func TestBundleAddLanguage(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	full := make(map[string]string)
	for key, value := range b.translations[language.English] {
		full[key] = "ES " + value
	}

	t.Run("complete translations are accepted", func(t *testing.T) {
		require.NoError(t, b.AddLanguage(language.Spanish, full))
		assert.True(t, b.HasLanguage(language.Spanish))
		assert.Equal(t, "ES Usage:", b.TL(language.Spanish, "optarg.msg.usage"))
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		partial := map[string]string{"optarg.msg.usage": "Utilisation:"}
		err := b.AddLanguage(language.French, partial)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTranslations))
		assert.Contains(t, err.Error(), "missing key")
		assert.False(t, b.HasLanguage(language.French))
	})

	t.Run("extra key is rejected", func(t *testing.T) {
		extra := make(map[string]string, len(full)+1)
		for k, v := range full {
			extra[k] = v
		}
		extra["optarg.msg.bogus"] = "bogus"
		err := b.AddLanguage(language.Italian, extra)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extra key")
		assert.False(t, b.HasLanguage(language.Italian))
	})

	t.Run("existing languages are merged", func(t *testing.T) {
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"optarg.msg.usage": "Synopsis:"}))
		assert.Equal(t, "Synopsis:", b.T("optarg.msg.usage"))
		assert.Equal(t, "Option ‘x’ not present", b.T("optarg.error.option_not_present", "x"))
	})

	assert.Equal(t, "Usage:", Default().T("optarg.msg.usage"), "default bundle must not be affected")
}

func TestEmptyBundle(t *testing.T) {
	b := NewEmptyBundle()

	assert.Empty(t, b.Languages())
	assert.Equal(t, "some.key", b.T("some.key"))
	assert.Equal(t, "some.key", b.TL(language.German, "some.key"))
	assert.False(t, b.HasKey(language.English, "some.key"))

	require.NoError(t, b.AddLanguage(language.English, map[string]string{"some.key": "value %d"}))
	assert.Equal(t, "value 3", b.T("some.key", 3))

	b.SetDefaultLanguage(language.German)
	assert.Equal(t, language.German, b.GetDefaultLanguage())
}
