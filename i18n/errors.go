package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is looked up by key at the time it is rendered
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider resolves a translation key to an unformatted message
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError is a translatable error carrying optional format arguments and a wrapped cause.
// All copies derived from the same NewError call share a sentinel, so errors.Is matches
// the package-level variable regardless of the arguments attached later.
//
// Example usage:
//
//	var ErrOptionExists = NewError("optarg.error.option_exists")
//	err := ErrOptionExists.WithArgs("verbose")
type TrError struct {
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
	// nil means the package default provider at the time Error is called
	messageProvider MessageProvider
}

// DefaultMessageProvider implements MessageProvider using a bundle and a fixed language
type DefaultMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewMessageProvider returns a provider reading messages in lang from bundle
func NewMessageProvider(bundle *Bundle, lang language.Tag) *DefaultMessageProvider {
	return &DefaultMessageProvider{bundle: bundle, lang: lang}
}

func (p *DefaultMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}
	return p.bundle.Message(p.lang, key)
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the translated message, formatted with args if provided
func (e *TrError) Error() string {
	provider := e.messageProvider
	if provider == nil {
		provider = getDefaultProvider()
	}
	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := e.clone()
	c.args = args
	return c
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	c := e.clone()
	c.wrapped = err
	return c
}

// WithProvider returns a copy of the error rendering its message through p
func (e *TrError) WithProvider(p MessageProvider) *TrError {
	c := e.clone()
	c.messageProvider = p
	return c
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) clone() *TrError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors without an explicit one.
// Passing nil restores the English provider backed by the embedded bundle.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	p := defaultProvider
	defaultProviderMux.RUnlock()
	if p != nil {
		return p
	}

	return &DefaultMessageProvider{
		bundle: Default(),
		lang:   language.English,
	}
}
