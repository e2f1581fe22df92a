package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is resolved through a
// message catalog at render time.
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	SetProvider(provider MessageProvider)
}

// MessageProvider defines an interface for getting default messages.
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError is a translatable error with optional formatting arguments and
// error wrapping support. Package-level sentinel values are created with
// NewError; call sites derive carriers from them:
//
//	err := NewError("clip.error.example")
//	err = err.WithArgs("value").Wrap(cause)
//
// errors.Is reports true between a derived carrier and its sentinel.
type TrError struct {
	// sentinel anchors errors.Is comparisons across WithArgs/Wrap copies
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable sentinel error from a catalog key.
func NewError(key string) *TrError {
	defaultMsg := getDefaultProvider().GetMessage(key)
	sentinel := errors.New(defaultMsg)
	return &TrError{
		sentinel:        sentinel,
		key:             key,
		messageProvider: getDefaultProvider(),
	}
}

// Error returns the rendered message, formatted with args if provided.
func (e *TrError) Error() string {
	msg := e.messageProvider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error carrying format arguments.
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a copy of the error wrapping a cause.
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is comparison against the sentinel.
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel || target == e
}

// SetProvider replaces the provider this error renders through.
func (e *TrError) SetProvider(provider MessageProvider) {
	if provider != nil {
		e.messageProvider = provider
	}
}

// Key returns the catalog key.
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments.
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped cause, if any.
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by NewError sentinels.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = &DefaultMessageProvider{
			bundle: Default(),
			lang:   language.English,
		}
	}
	return defaultProvider
}

// DefaultMessageProvider resolves messages from a Bundle in a fixed language.
type DefaultMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewMessageProvider returns a provider rendering keys from bundle in lang.
func NewMessageProvider(bundle *Bundle, lang language.Tag) *DefaultMessageProvider {
	return &DefaultMessageProvider{bundle: bundle, lang: lang}
}

// GetMessage returns the raw message template for key, or the key itself when
// no translation exists.
func (p *DefaultMessageProvider) GetMessage(key string) string {
	if msg, ok := p.bundle.lookup(p.lang, key); ok {
		return msg
	}
	return key
}
