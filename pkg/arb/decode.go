package arb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-intl/pkg/catalog"
)

const (
	localeKey       = "@@locale"
	contextKey      = "@@context"
	lastModifiedKey = "@@last_modified"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// entryMeta is the wire shape of an "@key" metadata object. Fields beyond
// these are not part of the catalog model and are dropped.
type entryMeta struct {
	Description  string                         `json:"description,omitempty"`
	Placeholders map[string]catalog.Placeholder `json:"placeholders,omitempty"`
}

// Decode parses one document from raw bytes. Entries keep their file order.
// Top-level string values become entries, "@key" objects attach metadata to
// their base entry regardless of where they appear, "@@" keys populate
// document metadata, and any other top-level value is ignored. The returned
// document's Locale is whatever "@@locale" declared, possibly empty; use
// DecodeNamed when a file name is available to drive locale derivation.
//
// A UTF-8 byte order mark is tolerated since editors routinely add one.
// Invalid JSON yields a *ParseError. A duplicated key keeps the last value,
// matching ordinary JSON object semantics. Metadata without a base entry is
// dropped.
func Decode(data []byte) (*catalog.Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Offset: dec.InputOffset(), Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &ParseError{Offset: dec.InputOffset(), Err: fmt.Errorf("top level must be an object, found %v", tok)}
	}

	doc := &catalog.Document{}
	pending := make(map[string]entryMeta)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Offset: dec.InputOffset(), Err: err}
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &ParseError{Offset: dec.InputOffset(), Err: fmt.Errorf("object key is not a string: %v", keyTok)}
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &ParseError{Offset: dec.InputOffset(), Err: err}
		}

		switch {
		case strings.HasPrefix(key, "@@"):
			decodeDocMeta(doc, key, raw)
		case strings.HasPrefix(key, "@"):
			var meta entryMeta
			if err := json.Unmarshal(raw, &meta); err != nil {
				// Metadata of the wrong shape loses only itself, never
				// the base entry.
				continue
			}
			base := strings.TrimPrefix(key, "@")
			if base == "" {
				continue
			}
			if !attachMeta(doc, base, meta) {
				pending[base] = meta
			}
		default:
			var value string
			if err := json.Unmarshal(raw, &value); err != nil {
				// Non-string resources are outside the catalog model.
				continue
			}
			upsertEntry(doc, key, value)
			if meta, ok := pending[key]; ok {
				attachMeta(doc, key, meta)
				delete(pending, key)
			}
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, &ParseError{Offset: dec.InputOffset(), Err: err}
	}
	return doc, nil
}

// DecodeNamed decodes data and resolves the document's locale the way hosts
// discover files: the <prefix>_<lang>[_<REGION>] file name convention wins,
// "@@locale" is the fallback, and the sentinel default locale covers
// documents that declare neither. Location is set to name, and parse errors
// carry it.
func DecodeNamed(name, prefix string, data []byte) (*catalog.Document, error) {
	doc, err := Decode(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Location = name
		}
		return nil, err
	}

	doc.Location = name
	if locale := catalog.LocaleFromName(path.Base(name), prefix); locale != "" {
		doc.Locale = locale
	}
	if doc.Locale == "" {
		doc.Locale = catalog.DefaultLocale
	}
	return doc, nil
}

// decodeDocMeta folds one "@@" pair into document metadata. Unknown or
// oddly-typed pairs land in Meta.Extra untouched so encoding can replay
// them.
func decodeDocMeta(doc *catalog.Document, key string, raw json.RawMessage) {
	switch key {
	case localeKey:
		var s string
		if json.Unmarshal(raw, &s) == nil {
			doc.Locale = s
			return
		}
	case contextKey:
		var s string
		if json.Unmarshal(raw, &s) == nil {
			doc.Meta.Context = s
			return
		}
	case lastModifiedKey:
		var s string
		if json.Unmarshal(raw, &s) == nil {
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				doc.Meta.LastModified = ts
				return
			}
		}
	}

	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return
	}
	if doc.Meta.Extra == nil {
		doc.Meta.Extra = make(map[string]any)
	}
	doc.Meta.Extra[key] = val
}

// upsertEntry appends a new entry or, for a repeated key, overwrites the
// value in place.
func upsertEntry(doc *catalog.Document, key, value string) {
	for i := range doc.Entries {
		if doc.Entries[i].Key == key {
			doc.Entries[i].Value = value
			return
		}
	}
	doc.Entries = append(doc.Entries, catalog.Entry{Key: key, Value: value})
}

// attachMeta copies metadata onto an existing entry, reporting whether the
// entry was found.
func attachMeta(doc *catalog.Document, key string, meta entryMeta) bool {
	for i := range doc.Entries {
		if doc.Entries[i].Key == key {
			doc.Entries[i].Description = meta.Description
			doc.Entries[i].Placeholders = meta.Placeholders
			return true
		}
	}
	return false
}
