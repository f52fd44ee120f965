package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLintFlagsUnmatchedTokens(t *testing.T) {
	en := NewDocument("en")
	en.Entries = []Entry{{
		Key:          "cart_total",
		Value:        "{count} of {total} items",
		Placeholders: map[string]Placeholder{"count": {Type: "int"}},
	}}
	es := NewDocument("es")
	es.Entries = []Entry{{
		Key:   "cart_total",
		Value: "{count} de {total}",
	}}
	s, err := NewSet(en, es)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	want := []Problem{
		{Kind: ProblemUnmatchedToken, Key: "cart_total", Locale: "en", Detail: "total"},
		{Kind: ProblemUnmatchedToken, Key: "cart_total", Locale: "es", Detail: "total"},
	}
	if diff := cmp.Diff(want, s.Lint()); diff != "" {
		t.Fatalf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestLintFlagsUnusedPlaceholders(t *testing.T) {
	en := NewDocument("en")
	en.Entries = []Entry{{
		Key:   "greeting",
		Value: "Hello",
		Placeholders: map[string]Placeholder{
			"name":  {Type: "String"},
			"title": {Type: "String"},
		},
	}}
	s, err := NewSet(en)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	want := []Problem{
		{Kind: ProblemUnusedPlaceholder, Key: "greeting", Detail: "name"},
		{Kind: ProblemUnusedPlaceholder, Key: "greeting", Detail: "title"},
	}
	if diff := cmp.Diff(want, s.Lint()); diff != "" {
		t.Fatalf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestLintPlaceholderUsedByAnyLocaleIsNotUnused(t *testing.T) {
	en := NewDocument("en")
	en.Entries = []Entry{{
		Key:          "greeting",
		Value:        "Hello",
		Placeholders: map[string]Placeholder{"name": {Type: "String"}},
	}}
	es := NewDocument("es")
	es.Entries = []Entry{{Key: "greeting", Value: "Hola {name}"}}
	s, err := NewSet(en, es)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	if problems := s.Lint(); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestLintFlagsDescriptionDrift(t *testing.T) {
	en := NewDocument("en")
	en.Entries = []Entry{{Key: "greeting", Value: "Hello", Description: "Casual"}}
	es := NewDocument("es")
	es.Entries = []Entry{{Key: "greeting", Value: "Hola", Description: "Formal"}}
	s, err := NewSet(en, es)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	want := []Problem{
		{Kind: ProblemDescriptionDrift, Key: "greeting", Detail: `"Casual" vs "Formal"`},
	}
	if diff := cmp.Diff(want, s.Lint()); diff != "" {
		t.Fatalf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestLintCleanSetReportsNothing(t *testing.T) {
	s := newAlignedSet(t)
	if err := s.UpdatePlaceholder("greeting", "name", Placeholder{Type: "String"}); err != nil {
		t.Fatalf("UpdatePlaceholder: %v", err)
	}
	if err := s.UpdateValue("en", "greeting", "Hello {name}"); err != nil {
		t.Fatalf("UpdateValue: %v", err)
	}

	if problems := s.Lint(); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestProblemStringIsReadable(t *testing.T) {
	p := Problem{Kind: ProblemUnmatchedToken, Key: "cart_total", Locale: "es", Detail: "total"}
	if got := p.String(); got != `es: token {total} in "cart_total" has no placeholder` {
		t.Fatalf("unexpected rendering: %q", got)
	}
}
