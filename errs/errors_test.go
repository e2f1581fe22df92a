package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/remkop/clip/i18n"
)

func TestSentinelRendering(t *testing.T) {
	err := ErrUnknownOption.WithArgs("--foo")
	assert.Equal(t, "unknown option '--foo'", err.Error())

	err = ErrTooFewValues.WithArgs("--coords", 2, 1)
	assert.Equal(t, "'--coords' expects at least 2 values but got 1", err.Error())
}

func TestSentinelIdentity(t *testing.T) {
	carrier := ErrConversionFailed.WithArgs("abc", "--port").Wrap(ErrParseInt.WithArgs("abc"))

	assert.True(t, errors.Is(carrier, ErrConversionFailed))
	assert.True(t, errors.Is(carrier, ErrParseInt), "the parse detail is reachable through Unwrap")
	assert.False(t, errors.Is(carrier, ErrMissingValue))
}

func TestUpdateMessageProvider(t *testing.T) {
	defer UpdateMessageProvider(i18n.NewMessageProvider(i18n.Default(), language.English))

	originalMsg := ErrEmptyInput.Error()

	bundle, err := i18n.NewBundle()
	assert.NoError(t, err)
	bundle.SetDefaultLanguage(language.German)
	UpdateMessageProvider(i18n.NewMessageProvider(bundle, language.German))

	newMsg := ErrEmptyInput.Error()
	assert.NotEqual(t, originalMsg, newMsg)
	assert.Equal(t, "leere Eingabe ist ungültig", newMsg)

	withArgs := ErrUnknownOption.WithArgs("--foo")
	assert.Equal(t, "unbekannte Option '--foo'", withArgs.Error())
}

func TestEveryKeyHasACatalogEntry(t *testing.T) {
	b := i18n.Default()
	for _, e := range sysErrors.All {
		assert.True(t, b.HasKey(language.English, e.Key()), "missing catalog entry for %s", e.Key())
	}
}
