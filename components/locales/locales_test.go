package locales

import (
	"strings"
	"testing"
)

func TestLoadTags_DedupesSortsAndIgnoresComments(t *testing.T) {
	input := strings.NewReader(`
# Comment
pt-BR
en
pt-BR

es
`)

	tags, err := LoadTags(input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(tags))
	}
	if tags[0] != "en" || tags[1] != "es" || tags[2] != "pt-BR" {
		t.Fatalf("unexpected tags: %#v", tags)
	}
}

func TestDefaultTags_ContainsCommonEntries(t *testing.T) {
	tags, err := DefaultTags()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tags) < 80 {
		t.Fatalf("expected a reasonably sized list, got %d", len(tags))
	}

	for _, expected := range []string{"en", "es-419", "zh-Hans"} {
		if !containsString(tags, expected) {
			t.Fatalf("expected tag %q to be present", expected)
		}
	}
}

func TestSearch_MatchesDisplayName(t *testing.T) {
	tags := []string{"de", "es", "fr"}
	opts := NewOptions()

	results := Search(tags, "gErM", 10, opts)
	if len(results) != 1 || results[0] != "de" {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestSearch_PrefixBeforeContains(t *testing.T) {
	tags := []string{"en", "en-GB", "fr"}
	opts := NewOptions()

	// "en" is a prefix of both en tags but only a substring of "French";
	// prefix matches come first, ordered by display name.
	results := Search(tags, "en", 10, opts)
	want := []string{"en-GB", "en", "fr"}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d: %#v", len(want), len(results), results)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Fatalf("unexpected ordering at %d: got %q want %q (results: %#v)", i, results[i], want[i], results)
		}
	}
}

func TestSearch_EmptyQueryServesTopOfList(t *testing.T) {
	tags := []string{"de", "en", "es", "fr"}
	opts := NewOptions(WithDefaultLimit(2), WithMaxLimit(3))

	results := Search(tags, "", 0, opts)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %#v", len(results), results)
	}
	if results[0] != "de" || results[1] != "en" {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestSearch_EmptySearchNoneReturnsNothing(t *testing.T) {
	tags := []string{"de", "en"}
	opts := NewOptions(WithEmptySearchMode(EmptySearchNone))

	if results := Search(tags, "", 0, opts); len(results) != 0 {
		t.Fatalf("expected no results, got %#v", results)
	}
}

func TestSearchOptions_MapsValueAndLabel(t *testing.T) {
	tags := []string{"pt-BR"}
	opts := NewOptions()

	results := SearchOptions(tags, "braz", 10, opts)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Value != "pt-BR" || results[0].Label != "Brazilian Portuguese" {
		t.Fatalf("unexpected option: %#v", results[0])
	}
}

func containsString(haystack []string, needle string) bool {
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}
