package intl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-intl/pkg/catalog"
)

// ErrMissingTranslation reports a key with no usable value in the requested
// locale or its fallback.
var ErrMissingTranslation = errors.New("intl: missing translation")

// Translator resolves a key to one locale's message at runtime. Generated
// accessors are the typed way in; Translator is the dynamic one, for hosts
// that pick keys at runtime (template helpers, server-side rendering). Args
// carry named substitution values as maps.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorOption customises a catalog-backed Translator.
type TranslatorOption func(*setTranslator)

// WithFallbackLocale consults another locale when the requested one has no
// value for a key. Typically the workspace's source locale.
func WithFallbackLocale(locale string) TranslatorOption {
	return func(t *setTranslator) {
		t.fallback = locale
	}
}

// NewTranslator builds a Translator over a loaded catalog. The catalog is
// read, never mutated; reloading the workspace means building a new
// Translator.
func NewTranslator(set *catalog.Set, options ...TranslatorOption) Translator {
	t := &setTranslator{set: set}
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

type setTranslator struct {
	set      *catalog.Set
	fallback string
}

func (t *setTranslator) Translate(locale, key string, args ...any) (string, error) {
	if t.set == nil {
		return "", errors.New("intl: translator has no catalog")
	}
	value := t.lookup(locale, key)
	if value == "" && t.fallback != "" && t.fallback != locale {
		value = t.lookup(t.fallback, key)
	}
	if value == "" {
		return "", fmt.Errorf("%w: %q in locale %s", ErrMissingTranslation, key, locale)
	}
	return substitute(value, args), nil
}

func (t *setTranslator) lookup(locale, key string) string {
	entry, ok := t.set.EntryFor(locale, key)
	if !ok {
		return ""
	}
	return entry.Value
}

// substitute replaces {name} tokens with values from any map arguments.
// Tokens without a value stay literal, matching how documents carry them.
func substitute(value string, args []any) string {
	if len(args) == 0 || !strings.Contains(value, "{") {
		return value
	}
	pairs := make([]string, 0, 2*len(args))
	for _, arg := range args {
		switch vals := arg.(type) {
		case map[string]any:
			for name, v := range vals {
				pairs = append(pairs, "{"+name+"}", fmt.Sprint(v))
			}
		case map[string]string:
			for name, v := range vals {
				pairs = append(pairs, "{"+name+"}", v)
			}
		}
	}
	if len(pairs) == 0 {
		return value
	}
	return strings.NewReplacer(pairs...).Replace(value)
}
