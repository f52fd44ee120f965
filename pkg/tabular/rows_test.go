package tabular

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intl/pkg/catalog"
)

func newGridSet(t *testing.T) *catalog.Set {
	t.Helper()
	en := catalog.NewDocument("en")
	en.Entries = []catalog.Entry{
		{Key: "greeting", Value: "Hello", Description: "Home screen"},
		{Key: "farewell", Value: "Goodbye"},
	}
	es := catalog.NewDocument("es")
	es.Entries = []catalog.Entry{
		{Key: "greeting", Value: "Hola", Description: "Home screen"},
		{Key: "farewell", Value: ""},
	}
	s, err := catalog.NewSet(en, es)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func TestToRowsLayout(t *testing.T) {
	s := newGridSet(t)

	got := ToRows(s)
	want := [][]string{
		{"key", "description", "en", "es"},
		{"farewell", "", "Goodbye", ""},
		{"greeting", "Home screen", "Hello", "Hola"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRowsAppliesMatchedCells(t *testing.T) {
	s := newGridSet(t)

	rows := [][]string{
		{"key", "description", "es"},
		{"farewell", "", "Adiós"},
	}
	if err := FromRows(rows, s); err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	e, _ := s.EntryFor("es", "farewell")
	if e.Value != "Adiós" {
		t.Fatalf("cell not applied: %q", e.Value)
	}
	en, _ := s.EntryFor("en", "farewell")
	if en.Value != "Goodbye" {
		t.Fatalf("unmatched locale must keep its value, got %q", en.Value)
	}
}

func TestFromRowsIntroducesNewKeysEverywhere(t *testing.T) {
	s := newGridSet(t)

	rows := [][]string{
		{"key", "description", "es"},
		{"cart_total", "Cart badge", "{count} art."},
	}
	if err := FromRows(rows, s); err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	es, _ := s.EntryFor("es", "cart_total")
	if es.Value != "{count} art." || es.Description != "Cart badge" {
		t.Fatalf("imported entry mismatch: %#v", es)
	}
	en, ok := s.EntryFor("en", "cart_total")
	if !ok {
		t.Fatalf("new key must reach every locale")
	}
	if en.Value != "" || en.Description != "Cart badge" {
		t.Fatalf("mirrored entry mismatch: %#v", en)
	}
}

func TestFromRowsResyncsEditedDescription(t *testing.T) {
	s := newGridSet(t)

	rows := [][]string{
		{"key", "description", "en"},
		{"greeting", "Casual greeting", "Hello"},
	}
	if err := FromRows(rows, s); err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	for _, locale := range s.Locales() {
		e, _ := s.EntryFor(locale, "greeting")
		if e.Description != "Casual greeting" {
			t.Fatalf("%s description not resynced: %q", locale, e.Description)
		}
	}
}

func TestFromRowsIgnoresUnknownColumnsAndBlankKeys(t *testing.T) {
	s := newGridSet(t)

	rows := [][]string{
		{"key", "description", "reviewer", "fr", "es"},
		{"greeting", "Home screen", "sam", "Bonjour", "Hola"},
		{"", "", "", "", "ghost"},
	}
	if err := FromRows(rows, s); err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	if s.HasKey("") {
		t.Fatalf("blank key row must be skipped")
	}
	if _, ok := s.Document("fr"); ok {
		t.Fatalf("unknown locale column must not create documents")
	}
	e, _ := s.EntryFor("es", "greeting")
	if e.Value != "Hola" {
		t.Fatalf("matched column should still apply, got %q", e.Value)
	}
}

func TestFromRowsErrors(t *testing.T) {
	s := newGridSet(t)

	if err := FromRows(nil, s); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader, got %v", err)
	}
	if err := FromRows([][]string{{"description", "en"}}, s); !errors.Is(err, ErrNoKeyColumn) {
		t.Fatalf("expected ErrNoKeyColumn, got %v", err)
	}
	if err := FromRows([][]string{{"key", "description", "fr", "de"}}, s); !errors.Is(err, ErrNoMatchingLocales) {
		t.Fatalf("expected ErrNoMatchingLocales, got %v", err)
	}
}

func TestFromRowsRoundTripIsIdentity(t *testing.T) {
	s := newGridSet(t)
	if err := s.UpdatePlaceholder("greeting", "name", catalog.Placeholder{Type: "String"}); err != nil {
		t.Fatalf("UpdatePlaceholder: %v", err)
	}
	s.ClearDirty()

	before := snapshotDocs(s)
	if err := FromRows(ToRows(s), s); err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	if diff := cmp.Diff(before, snapshotDocs(s)); diff != "" {
		t.Fatalf("round trip must not change the catalog (-want +got):\n%s", diff)
	}
	if dirty := s.Dirty(); len(dirty) != 0 {
		t.Fatalf("round trip must not dirty documents, got %d", len(dirty))
	}
}

func snapshotDocs(s *catalog.Set) []*catalog.Document {
	docs := s.Documents()
	out := make([]*catalog.Document, len(docs))
	for i, d := range docs {
		out[i] = d.Clone()
	}
	return out
}
