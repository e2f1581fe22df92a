package i18n

import (
	"embed"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

//go:embed testdata
var testFS embed.FS

//go:embed testdata_bad
var badFS embed.FS

//go:embed testdata_nodefault
var noDefaultFS embed.FS

func TestDefaultBundle(t *testing.T) {
	b := Default()
	require.NotNil(t, b)

	t.Run("ships English, German and French", func(t *testing.T) {
		for _, lang := range []language.Tag{language.English, language.German, language.French} {
			assert.True(t, b.HasLanguage(lang), "missing %s", lang)
		}
	})

	t.Run("contains the diagnostic keys", func(t *testing.T) {
		for _, key := range []string{
			"clip.error.unknown_option",
			"clip.error.missing_value",
			"clip.warning.scalar_overwritten",
		} {
			assert.True(t, b.HasKey(language.English, key), "missing key %q", key)
		}
	})

	t.Run("renders English by default", func(t *testing.T) {
		got := b.T("clip.error.unknown_option", "--foo")
		assert.Equal(t, "unknown option '--foo'", got)
	})

	t.Run("renders a requested language", func(t *testing.T) {
		got := b.TL(language.German, "clip.error.duplicate_option", "verbose")
		assert.Equal(t, "Option 'verbose' ist bereits deklariert", got)

		got = b.TL(language.French, "clip.error.empty_input")
		assert.Equal(t, "une saisie vide est invalide", got)
	})

	t.Run("matches regional variants", func(t *testing.T) {
		got := b.TL(language.AmericanEnglish, "clip.error.empty_input")
		assert.Equal(t, "empty input is invalid", got)

		got = b.TL(language.MustParse("de-AT"), "clip.error.empty_input")
		assert.Equal(t, "leere Eingabe ist ungültig", got)
	})

	t.Run("unsupported language falls back to the default", func(t *testing.T) {
		got := b.TL(language.Japanese, "clip.error.empty_input")
		assert.Equal(t, "empty input is invalid", got)
	})
}

func TestNewBundleWithFS(t *testing.T) {
	b, err := NewBundleWithFS(testFS, "testdata")
	require.NoError(t, err)

	assert.Equal(t, "hello world", b.T("test.greeting", "world"))
	assert.Equal(t, "hallo world", b.TL(language.German, "test.greeting", "world"))
	assert.Equal(t, "3 Einträge", b.TL(language.German, "test.count", 3))
}

func TestNewBundleWithFS_InvalidLanguageFile(t *testing.T) {
	_, err := NewBundleWithFS(badFS, "testdata_bad")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestNewBundleWithFS_MissingDefaultLanguage(t *testing.T) {
	_, err := NewBundleWithFS(noDefaultFS, "testdata_nodefault")
	assert.Error(t, err)
}

func TestAddLanguage(t *testing.T) {
	fresh := func(t *testing.T) (*Bundle, map[string]string) {
		b, err := NewBundle()
		require.NoError(t, err)
		full := make(map[string]string, len(b.translations[language.English]))
		for k, v := range b.translations[language.English] {
			full[k] = v
		}
		return b, full
	}

	t.Run("full key set is accepted", func(t *testing.T) {
		b, full := fresh(t)
		err := b.AddLanguage(language.Spanish, full)
		assert.NoError(t, err)
		assert.True(t, b.HasLanguage(language.Spanish))
	})

	t.Run("missing keys are rejected and rolled back", func(t *testing.T) {
		b, full := fresh(t)
		delete(full, "clip.error.unknown_option")

		err := b.AddLanguage(language.Italian, full)
		assert.ErrorIs(t, err, ErrInvalidTranslations)
		assert.Contains(t, err.Error(), "missing key")
		assert.False(t, b.HasLanguage(language.Italian))
	})

	t.Run("extra keys are rejected", func(t *testing.T) {
		b, full := fresh(t)
		full["clip.error.not_a_real_key"] = "x"

		err := b.AddLanguage(language.Portuguese, full)
		assert.ErrorIs(t, err, ErrInvalidTranslations)
		assert.Contains(t, err.Error(), "extra key")
		assert.False(t, b.HasLanguage(language.Portuguese))
	})

	t.Run("empty translations are rejected", func(t *testing.T) {
		b, _ := fresh(t)
		err := b.AddLanguage(language.Dutch, map[string]string{})
		assert.ErrorIs(t, err, ErrInvalidTranslations)
	})

	t.Run("merging into a registered language overrides keys", func(t *testing.T) {
		b, _ := fresh(t)
		err := b.AddLanguage(language.English, map[string]string{
			"clip.error.unknown_option": "no such option: %s",
		})
		require.NoError(t, err)
		assert.Equal(t, "no such option: --foo", b.T("clip.error.unknown_option", "--foo"))
	})
}

func TestSetDefaultLanguage(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	b.SetDefaultLanguage(language.German)
	got := b.T("clip.error.empty_input")
	assert.Equal(t, "leere Eingabe ist ungültig", got)
}

func TestLanguages(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, []language.Tag{language.German, language.English, language.French}, b.Languages())
}

func TestEmptyBundle(t *testing.T) {
	b := NewEmptyBundle()

	assert.Equal(t, "some.key", b.T("some.key"), "empty bundle echoes keys")

	err := b.AddLanguage(language.English, map[string]string{"some.key": "some value"})
	require.NoError(t, err)
	assert.Equal(t, "some value", b.T("some.key"))
}

func TestBundleConcurrentAccess(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = b.T("clip.error.unknown_option", "--x")
				_ = b.TL(language.French, "clip.error.empty_input")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			_ = b.AddLanguage(language.English, map[string]string{
				"clip.error.unknown_option": "unknown option '%s'",
			})
		}
	}()
	wg.Wait()
}
