package catalog

import "errors"

// Sentinel errors reported by Set operations. Callers branch with errors.Is;
// the wrapped message carries the offending key or locale.
var (
	// ErrDuplicateKey signals an AddKey or RenameKey target that already
	// exists in at least one document of the set.
	ErrDuplicateKey = errors.New("catalog: duplicate key")

	// ErrUnknownKey signals an operation against a key no document carries.
	ErrUnknownKey = errors.New("catalog: unknown key")

	// ErrUnknownLocale signals an operation against a locale the set does not
	// contain.
	ErrUnknownLocale = errors.New("catalog: unknown locale")

	// ErrDuplicateLocale signals an attempt to add a document for a locale
	// that is already present.
	ErrDuplicateLocale = errors.New("catalog: duplicate locale")
)
