package catalog

import (
	"fmt"
	"time"
)

// Metadata holds document-wide fields from the persisted form. Extra keeps
// unknown "@@"-prefixed top-level keys as an uninterpreted extension map so
// round-tripping a document does not shed data this package never learned
// about.
type Metadata struct {
	LastModified time.Time      `json:"lastModified,omitempty"`
	Context      string         `json:"context,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// Document is one locale's ordered set of entries. It is pure data: all
// cross-document coordination happens in Set, and persistence is a caller
// concern keyed off Location, which the core treats as an opaque string.
type Document struct {
	Location string   `json:"location,omitempty"`
	Locale   string   `json:"locale"`
	Entries  []Entry  `json:"entries"`
	Meta     Metadata `json:"meta,omitempty"`
}

// NewDocument returns an empty document for the given locale.
func NewDocument(locale string) *Document {
	return &Document{Locale: locale}
}

// Entry returns a copy of the entry for key, reporting whether it exists.
func (d *Document) Entry(key string) (Entry, bool) {
	if i := d.indexOf(key); i >= 0 {
		return d.Entries[i].Clone(), true
	}
	return Entry{}, false
}

// HasKey reports whether the document carries key.
func (d *Document) HasKey(key string) bool {
	return d.indexOf(key) >= 0
}

// Keys returns every key in entry order.
func (d *Document) Keys() []string {
	if len(d.Entries) == 0 {
		return nil
	}
	keys := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Validate checks the single-document invariants: a locale tag is present and
// no two entries share a key.
func (d *Document) Validate() error {
	if d.Locale == "" {
		return fmt.Errorf("catalog: document %q has no locale", d.Location)
	}
	seen := make(map[string]struct{}, len(d.Entries))
	for _, e := range d.Entries {
		if e.Key == "" {
			return fmt.Errorf("catalog: document %q has an entry with an empty key", d.Location)
		}
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("catalog: document %q repeats key %q", d.Location, e.Key)
		}
		seen[e.Key] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Location: d.Location,
		Locale:   d.Locale,
		Meta:     d.Meta,
	}
	if d.Meta.Extra != nil {
		out.Meta.Extra = make(map[string]any, len(d.Meta.Extra))
		for k, v := range d.Meta.Extra {
			out.Meta.Extra[k] = v
		}
	}
	if d.Entries != nil {
		out.Entries = make([]Entry, len(d.Entries))
		for i, e := range d.Entries {
			out.Entries[i] = e.Clone()
		}
	}
	return out
}

func (d *Document) indexOf(key string) int {
	for i := range d.Entries {
		if d.Entries[i].Key == key {
			return i
		}
	}
	return -1
}

// append adds a new entry, rejecting duplicates.
func (d *Document) append(e Entry) error {
	if d.HasKey(e.Key) {
		return fmt.Errorf("%w: %q in locale %s", ErrDuplicateKey, e.Key, d.Locale)
	}
	d.Entries = append(d.Entries, e.Clone())
	return nil
}

// setValue overwrites the value for key in place, reporting whether the key
// existed.
func (d *Document) setValue(key, value string) bool {
	if i := d.indexOf(key); i >= 0 {
		d.Entries[i].Value = value
		return true
	}
	return false
}

// setDescription overwrites the description for key in place.
func (d *Document) setDescription(key, description string) bool {
	if i := d.indexOf(key); i >= 0 {
		d.Entries[i].Description = description
		return true
	}
	return false
}

// setPlaceholder declares or overwrites one placeholder on key.
func (d *Document) setPlaceholder(key, name string, ph Placeholder) bool {
	i := d.indexOf(key)
	if i < 0 {
		return false
	}
	if d.Entries[i].Placeholders == nil {
		d.Entries[i].Placeholders = make(map[string]Placeholder, 1)
	}
	d.Entries[i].Placeholders[name] = ph
	return true
}

// removePlaceholder drops one placeholder from key, reporting whether the
// placeholder existed.
func (d *Document) removePlaceholder(key, name string) bool {
	i := d.indexOf(key)
	if i < 0 || d.Entries[i].Placeholders == nil {
		return false
	}
	if _, ok := d.Entries[i].Placeholders[name]; !ok {
		return false
	}
	delete(d.Entries[i].Placeholders, name)
	if len(d.Entries[i].Placeholders) == 0 {
		d.Entries[i].Placeholders = nil
	}
	return true
}

// remove deletes the entry for key, preserving the order of the remainder.
func (d *Document) remove(key string) bool {
	i := d.indexOf(key)
	if i < 0 {
		return false
	}
	d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
	return true
}

// rename rewrites the key of an entry in place, keeping its position.
func (d *Document) rename(oldKey, newKey string) bool {
	if i := d.indexOf(oldKey); i >= 0 {
		d.Entries[i].Key = newKey
		return true
	}
	return false
}
