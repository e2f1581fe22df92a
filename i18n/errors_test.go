package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslatableErrors(t *testing.T) {
	err := NewError("test.error")

	// Test Error()
	if err.Error() == "" {
		t.Error("Error() should return message")
	}

	// Test WithArgs()
	err2 := err.WithArgs("arg1", "arg2")
	if len(err2.Args()) != 2 {
		t.Error("WithArgs() failed")
	}

	// Test Wrap()
	wrapped := err.Wrap(errors.New("inner"))
	if wrapped.Unwrap() == nil {
		t.Error("Wrap() failed")
	}

	// Test Is()
	if !errors.Is(wrapped, err) {
		t.Error("Is() failed")
	}
}

func TestError_Key(t *testing.T) {
	err := NewError("error_key_123")

	assert.Equal(t, "error_key_123", err.Key())
	assert.Equal(t, "error_key_123", err.Error(), "unknown keys should render as themselves")
}

func TestError_Rendering(t *testing.T) {
	bundle := NewEmptyBundle()
	assert.NoError(t, bundle.AddLanguage(language.English, map[string]string{
		"error.outer":     "outer error",
		"error.inner":     "inner error",
		"error.with_args": "error with %s",
	}))
	provider := NewMessageProvider(bundle, language.English)

	t.Run("args are formatted into the template", func(t *testing.T) {
		err := NewError("error.with_args")
		err.SetProvider(provider)

		assert.Equal(t, "error with value", err.WithArgs("value").Error())
	})

	t.Run("wrapped cause is appended", func(t *testing.T) {
		inner := NewError("error.inner")
		inner.SetProvider(provider)
		outer := NewError("error.outer")
		outer.SetProvider(provider)

		got := outer.Wrap(inner).Error()
		assert.Equal(t, "outer error: inner error", got)
	})

	t.Run("wrapped non-translatable error", func(t *testing.T) {
		outer := NewError("error.outer")
		outer.SetProvider(provider)

		got := outer.Wrap(errors.New("plain cause")).Error()
		assert.Equal(t, "outer error: plain cause", got)
	})
}

func TestError_IsThroughWrapping(t *testing.T) {
	sentinel := NewError("test.sentinel")

	t.Run("derived carriers match the sentinel", func(t *testing.T) {
		carrier := sentinel.WithArgs("x").Wrap(errors.New("cause"))
		assert.True(t, errors.Is(carrier, sentinel))
	})

	t.Run("fmt.Errorf chains reach the sentinel", func(t *testing.T) {
		carrier := fmt.Errorf("context: %w", sentinel.WithArgs("x"))
		assert.True(t, errors.Is(carrier, sentinel))
	})

	t.Run("distinct sentinels do not match", func(t *testing.T) {
		other := NewError("test.sentinel")
		assert.False(t, errors.Is(sentinel.WithArgs("x"), other))
	})

	t.Run("errors.As finds a TranslatableError", func(t *testing.T) {
		carrier := fmt.Errorf("context: %w", sentinel.Wrap(errors.New("cause")))

		var te TranslatableError
		assert.True(t, errors.As(carrier, &te))
		assert.Equal(t, "test.sentinel", te.Key())
	})
}

func TestError_SetProvider(t *testing.T) {
	bundle := NewEmptyBundle()
	bundle.SetDefaultLanguage(language.German)
	assert.NoError(t, bundle.AddLanguage(language.German, map[string]string{
		"test.message": "deutsche Meldung",
	}))

	err := NewError("test.message")
	err.SetProvider(NewMessageProvider(bundle, language.German))

	assert.Equal(t, "deutsche Meldung", err.Error())

	// A nil provider leaves the current one in place.
	err.SetProvider(nil)
	assert.Equal(t, "deutsche Meldung", err.Error())
}

func TestSetDefaultMessageProvider(t *testing.T) {
	defer SetDefaultMessageProvider(nil)

	bundle := NewEmptyBundle()
	assert.NoError(t, bundle.AddLanguage(language.English, map[string]string{
		"test.custom": "custom message",
	}))
	newProvider := NewMessageProvider(bundle, language.English)
	SetDefaultMessageProvider(newProvider)

	assert.Equal(t, newProvider, getDefaultProvider())
	assert.Equal(t, "custom message", NewError("test.custom").Error())
}
