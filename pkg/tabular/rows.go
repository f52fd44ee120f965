// Package tabular converts a catalog set to and from a spreadsheet-shaped
// grid: one row per key with columns "key", "description", then one column
// per locale in set iteration order. The mapping is lossless for translation
// content, so a sheet exported, edited by translators, and imported back
// only changes what the edits changed.
package tabular

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-intl/pkg/catalog"
)

const (
	keyColumn         = "key"
	descriptionColumn = "description"
)

var (
	// ErrNoHeader reports an empty grid.
	ErrNoHeader = errors.New("tabular: no header row")
	// ErrNoKeyColumn reports a header without a "key" column.
	ErrNoKeyColumn = errors.New("tabular: no key column")
	// ErrNoMatchingLocales reports a header whose columns match none of the
	// set's locales. Importing such a sheet could only ever be a no-op, so
	// it is rejected as a likely mistake.
	ErrNoMatchingLocales = errors.New("tabular: no locale columns match the catalog")
)

// ToRows flattens the set into a grid: a header row, then one row per
// canonical key in sorted order. Cells for untranslated or absent entries
// are empty strings.
func ToRows(s *catalog.Set) [][]string {
	locales := s.Locales()
	header := make([]string, 0, 2+len(locales))
	header = append(header, keyColumn, descriptionColumn)
	header = append(header, locales...)

	rows := [][]string{header}
	for _, e := range s.CanonicalEntries() {
		row := make([]string, 0, len(header))
		row = append(row, e.Key, e.Description)
		for _, locale := range locales {
			value := ""
			if ent, ok := s.EntryFor(locale, e.Key); ok {
				value = ent.Value
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return rows
}

// FromRows applies a grid to the set. Locale columns are matched by exact
// tag against the set's locales; columns that match nothing are ignored, so
// a sheet carrying extra bookkeeping columns or locales from another
// workspace imports cleanly. Rows with an empty key cell are skipped. Keys
// the set does not know are introduced across every document; known keys
// get their matched cells and description applied. Only real changes touch
// the set, so re-importing an unmodified export leaves every document
// clean.
func FromRows(rows [][]string, s *catalog.Set) error {
	if len(rows) == 0 {
		return ErrNoHeader
	}

	keyCol, descCol := -1, -1
	type localeColumn struct {
		col    int
		locale string
	}
	var localeCols []localeColumn
	matched := make(map[string]struct{})

	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		switch {
		case name == keyColumn && keyCol < 0:
			keyCol = i
		case name == descriptionColumn && descCol < 0:
			descCol = i
		default:
			if _, ok := s.Document(name); !ok {
				continue
			}
			if _, dup := matched[name]; dup {
				continue
			}
			matched[name] = struct{}{}
			localeCols = append(localeCols, localeColumn{col: i, locale: name})
		}
	}
	if keyCol < 0 {
		return ErrNoKeyColumn
	}
	if len(localeCols) == 0 {
		return ErrNoMatchingLocales
	}
	sort.Slice(localeCols, func(i, j int) bool { return localeCols[i].col < localeCols[j].col })

	for n, row := range rows[1:] {
		key := strings.TrimSpace(cell(row, keyCol))
		if key == "" {
			continue
		}
		desc := cell(row, descCol)

		if !s.HasKey(key) {
			if err := s.AddKey(key, localeCols[0].locale, "", desc); err != nil {
				return fmt.Errorf("tabular: row %d: %w", n+2, err)
			}
		} else if descCol >= 0 {
			if current := canonicalDescription(s, key); current != desc {
				if err := s.UpdateDescription(key, desc); err != nil {
					return fmt.Errorf("tabular: row %d: %w", n+2, err)
				}
			}
		}

		for _, lc := range localeCols {
			value := cell(row, lc.col)
			current, ok := s.EntryFor(lc.locale, key)
			if !ok {
				// Entry missing from one document of an unaligned
				// catalog; heal the key before writing the cell.
				if err := s.UpdateDescription(key, canonicalDescription(s, key)); err != nil {
					return fmt.Errorf("tabular: row %d: %w", n+2, err)
				}
				current, _ = s.EntryFor(lc.locale, key)
			}
			if current.Value == value {
				continue
			}
			if err := s.UpdateValue(lc.locale, key, value); err != nil {
				return fmt.Errorf("tabular: row %d: %w", n+2, err)
			}
		}
	}
	return nil
}

func canonicalDescription(s *catalog.Set, key string) string {
	for _, locale := range s.Locales() {
		if e, ok := s.EntryFor(locale, key); ok && e.Description != "" {
			return e.Description
		}
	}
	return ""
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
