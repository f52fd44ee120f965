package catalog

import (
	"fmt"
	"sort"
)

// Set owns the documents of one workspace, keyed by locale tag. Iteration
// order is insertion order (the host's discovery order) and is observable
// wherever the catalog is enumerated per locale (tabular columns, generated
// implementations). Mutations are atomic: on error the set is untouched.
//
// Dirty tracking lives here rather than on documents so documents stay plain
// data; callers persist Dirty() and then ClearDirty().
type Set struct {
	docs  []*Document
	index map[string]int
	dirty map[string]struct{}
}

// NewSet builds a set from documents in the given order. Each document is
// validated and locales must be unique.
func NewSet(docs ...*Document) (*Set, error) {
	s := &Set{
		index: make(map[string]int, len(docs)),
		dirty: make(map[string]struct{}),
	}
	for _, doc := range docs {
		if err := s.Add(doc); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a document to the iteration order. Adding is not an edit, so
// the document is not marked dirty.
func (s *Set) Add(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("catalog: nil document")
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	if _, exists := s.index[doc.Locale]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateLocale, doc.Locale)
	}
	s.index[doc.Locale] = len(s.docs)
	s.docs = append(s.docs, doc)
	return nil
}

// Len returns the number of documents.
func (s *Set) Len() int { return len(s.docs) }

// Documents returns the documents in iteration order. The slice is a copy;
// the documents are shared.
func (s *Set) Documents() []*Document {
	out := make([]*Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Document returns the document for a locale.
func (s *Set) Document(locale string) (*Document, bool) {
	i, ok := s.index[locale]
	if !ok {
		return nil, false
	}
	return s.docs[i], true
}

// Locales returns the locale tags in iteration order.
func (s *Set) Locales() []string {
	out := make([]string, len(s.docs))
	for i, doc := range s.docs {
		out[i] = doc.Locale
	}
	return out
}

// Keys returns the canonical key list: the union of every document's keys in
// lexicographic order.
func (s *Set) Keys() []string {
	seen := make(map[string]struct{})
	for _, doc := range s.docs {
		for _, e := range doc.Entries {
			seen[e.Key] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasKey reports whether any document carries key.
func (s *Set) HasKey(key string) bool {
	for _, doc := range s.docs {
		if doc.HasKey(key) {
			return true
		}
	}
	return false
}

// AddKey introduces a new key: the origin locale receives the given value,
// every other document receives an empty value, and all documents share the
// description. Fails with ErrDuplicateKey when any document already carries
// the key and with ErrUnknownLocale when the origin locale is absent; the set
// is unchanged on failure.
func (s *Set) AddKey(key, originLocale, value, description string) error {
	if key == "" {
		return fmt.Errorf("catalog: empty key")
	}
	if _, ok := s.index[originLocale]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLocale, originLocale)
	}
	if s.HasKey(key) {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	for _, doc := range s.docs {
		e := Entry{Key: key, Description: description}
		if doc.Locale == originLocale {
			e.Value = value
		}
		if err := doc.append(e); err != nil {
			return err
		}
		s.markDirty(doc.Locale)
	}
	return nil
}

// UpdateValue overwrites one document's value for key. Values are the only
// per-locale field, so nothing propagates.
func (s *Set) UpdateValue(locale, key, value string) error {
	doc, ok := s.Document(locale)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLocale, locale)
	}
	if !doc.setValue(key, value) {
		return fmt.Errorf("%w: %q in locale %s", ErrUnknownKey, key, locale)
	}
	s.markDirty(locale)
	return nil
}

// UpdateDescription writes the description for key into every document.
// Documents missing the key receive a fresh empty-valued entry carrying the
// description and the canonical placeholders, healing drift instead of
// erroring. Fails with ErrUnknownKey only when no document contains the key
// at all.
func (s *Set) UpdateDescription(key, description string) error {
	if !s.HasKey(key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	_, canonPh := s.canonicalMeta(key)
	for _, doc := range s.docs {
		if doc.setDescription(key, description) {
			s.markDirty(doc.Locale)
			continue
		}
		e := Entry{Key: key, Description: description, Placeholders: canonPh}
		if err := doc.append(e.Clone()); err != nil {
			return err
		}
		s.markDirty(doc.Locale)
	}
	return nil
}

// UpdatePlaceholder declares or overwrites one placeholder for key in every
// document, with the same auto-heal semantics as UpdateDescription:
// placeholder metadata is shared per key, so documents missing the key gain
// an empty-valued entry carrying the canonical description before the
// placeholder lands.
func (s *Set) UpdatePlaceholder(key, name string, ph Placeholder) error {
	if name == "" {
		return fmt.Errorf("catalog: empty placeholder name")
	}
	if !s.HasKey(key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	canonDesc, canonPh := s.canonicalMeta(key)
	for _, doc := range s.docs {
		if !doc.HasKey(key) {
			e := Entry{Key: key, Description: canonDesc, Placeholders: canonPh}
			if err := doc.append(e.Clone()); err != nil {
				return err
			}
		}
		doc.setPlaceholder(key, name, ph)
		s.markDirty(doc.Locale)
	}
	return nil
}

// DeletePlaceholder removes the named placeholder from every document
// carrying key. Removing an absent placeholder is a no-op, not an error.
func (s *Set) DeletePlaceholder(key, name string) error {
	if !s.HasKey(key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	for _, doc := range s.docs {
		if doc.removePlaceholder(key, name) {
			s.markDirty(doc.Locale)
		}
	}
	return nil
}

// DeleteKey removes key from every document that carries it. Deleting a key
// that exists nowhere is a successful no-op; confirmation gating is a caller
// concern.
func (s *Set) DeleteKey(key string) error {
	for _, doc := range s.docs {
		if doc.remove(key) {
			s.markDirty(doc.Locale)
		}
	}
	return nil
}

// RenameKey rewrites oldKey to newKey in every document, preserving values,
// metadata, and entry positions. Fails with ErrUnknownKey when oldKey exists
// nowhere and ErrDuplicateKey when newKey exists anywhere.
func (s *Set) RenameKey(oldKey, newKey string) error {
	if newKey == "" {
		return fmt.Errorf("catalog: empty key")
	}
	if !s.HasKey(oldKey) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, oldKey)
	}
	if s.HasKey(newKey) {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, newKey)
	}
	for _, doc := range s.docs {
		if doc.rename(oldKey, newKey) {
			s.markDirty(doc.Locale)
		}
	}
	return nil
}

// AddLocale appends a new document for locale, seeded with every canonical
// key (empty values, canonical descriptions and placeholders) so the
// alignment invariant holds immediately. The new document is marked dirty.
func (s *Set) AddLocale(locale string) (*Document, error) {
	if locale == "" {
		return nil, fmt.Errorf("catalog: empty locale")
	}
	if _, exists := s.index[locale]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateLocale, locale)
	}

	doc := NewDocument(locale)
	for _, e := range s.CanonicalEntries() {
		e.Value = ""
		doc.Entries = append(doc.Entries, e)
	}
	s.index[locale] = len(s.docs)
	s.docs = append(s.docs, doc)
	s.markDirty(locale)
	return doc, nil
}

// CanonicalEntries merges the set into one entry per canonical key, in
// canonical (sorted) order. The merged Value is always empty: per-locale
// values must be read from the individual documents; only Key, Description,
// and Placeholders are meaningful at this level.
func (s *Set) CanonicalEntries() []Entry {
	keys := s.Keys()
	if len(keys) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		desc, ph := s.canonicalMeta(key)
		out = append(out, Entry{Key: key, Description: desc, Placeholders: ph})
	}
	return out
}

// EntryFor looks up one locale's entry for key.
func (s *Set) EntryFor(locale, key string) (Entry, bool) {
	doc, ok := s.Document(locale)
	if !ok {
		return Entry{}, false
	}
	return doc.Entry(key)
}

// MissingKeys returns the canonical keys that locale has not translated yet:
// absent entries and entries with an empty value, in canonical order.
func (s *Set) MissingKeys(locale string) ([]string, error) {
	doc, ok := s.Document(locale)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, locale)
	}
	var missing []string
	for _, key := range s.Keys() {
		if e, ok := doc.Entry(key); !ok || e.Value == "" {
			missing = append(missing, key)
		}
	}
	return missing, nil
}

// LocaleCoverage summarizes how much of the canonical key set one locale has
// translated.
type LocaleCoverage struct {
	Locale     string `json:"locale"`
	Translated int    `json:"translated"`
	Total      int    `json:"total"`
}

// Percent returns the coverage as 0-100, with an empty catalog counting as
// fully translated.
func (c LocaleCoverage) Percent() int {
	if c.Total == 0 {
		return 100
	}
	return c.Translated * 100 / c.Total
}

// Coverage reports per-locale translation counts in iteration order.
func (s *Set) Coverage() []LocaleCoverage {
	total := len(s.Keys())
	out := make([]LocaleCoverage, 0, len(s.docs))
	for _, doc := range s.docs {
		translated := 0
		for _, e := range doc.Entries {
			if e.Value != "" {
				translated++
			}
		}
		out = append(out, LocaleCoverage{Locale: doc.Locale, Translated: translated, Total: total})
	}
	return out
}

// SortEntries reorders every document's entries lexicographically by key.
// Documents that were already sorted are left untouched and stay clean.
func (s *Set) SortEntries() {
	for _, doc := range s.docs {
		if sort.SliceIsSorted(doc.Entries, func(i, j int) bool {
			return doc.Entries[i].Key < doc.Entries[j].Key
		}) {
			continue
		}
		sort.Slice(doc.Entries, func(i, j int) bool {
			return doc.Entries[i].Key < doc.Entries[j].Key
		})
		s.markDirty(doc.Locale)
	}
}

// Dirty returns the documents touched since the last ClearDirty, in iteration
// order.
func (s *Set) Dirty() []*Document {
	var out []*Document
	for _, doc := range s.docs {
		if _, ok := s.dirty[doc.Locale]; ok {
			out = append(out, doc)
		}
	}
	return out
}

// MarkDirty records an out-of-band edit to a locale's document so the next
// flush persists it.
func (s *Set) MarkDirty(locale string) {
	if _, ok := s.index[locale]; ok {
		s.markDirty(locale)
	}
}

// ClearDirty resets dirty tracking, typically after the host persisted every
// dirty document.
func (s *Set) ClearDirty() {
	s.dirty = make(map[string]struct{})
}

func (s *Set) markDirty(locale string) {
	s.dirty[locale] = struct{}{}
}

// canonicalMeta resolves the canonical description and placeholders for key:
// the first document in iteration order with a non-empty description wins,
// and likewise for placeholder maps. The returned map is a copy, never shared
// with a document. Both results are empty when no document defines them.
func (s *Set) canonicalMeta(key string) (string, map[string]Placeholder) {
	desc := ""
	var ph map[string]Placeholder
	for _, doc := range s.docs {
		e, ok := doc.Entry(key)
		if !ok {
			continue
		}
		if desc == "" && e.Description != "" {
			desc = e.Description
		}
		if ph == nil && len(e.Placeholders) > 0 {
			ph = make(map[string]Placeholder, len(e.Placeholders))
			for name, p := range e.Placeholders {
				ph[name] = p
			}
		}
		if desc != "" && ph != nil {
			break
		}
	}
	return desc, ph
}
