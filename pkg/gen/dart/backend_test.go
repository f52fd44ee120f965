package dart_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-intl/pkg/catalog"
	"github.com/goliatone/go-intl/pkg/gen"
	"github.com/goliatone/go-intl/pkg/gen/dart"
	"github.com/goliatone/go-intl/pkg/testsupport"
)

func fixtureContract(t *testing.T) gen.Contract {
	t.Helper()

	en := catalog.NewDocument("en")
	en.Entries = []catalog.Entry{
		{
			Key:          "cart_total",
			Value:        "{count} items in cart",
			Description:  "Cart badge label",
			Placeholders: map[string]catalog.Placeholder{"count": {Type: "int"}},
		},
		{Key: "farewell", Value: "Goodbye"},
		{
			Key:          "greeting",
			Value:        "Hi {name}",
			Description:  "Shown on the home screen",
			Placeholders: map[string]catalog.Placeholder{"name": {Type: "String"}},
		},
	}
	es := catalog.NewDocument("es")
	es.Entries = []catalog.Entry{
		{
			Key:          "cart_total",
			Value:        "{count} artículos",
			Description:  "Cart badge label",
			Placeholders: map[string]catalog.Placeholder{"count": {Type: "int"}},
		},
		{
			Key:          "greeting",
			Value:        "Hola {name}",
			Description:  "Shown on the home screen",
			Placeholders: map[string]catalog.Placeholder{"name": {Type: "String"}},
		},
	}

	s, err := catalog.NewSet(en, es)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return gen.Build(s, gen.Options{TypeName: "Messages"})
}

func TestBackend_GenerateContract(t *testing.T) {
	output, err := dart.New().Generate(testsupport.Context(), fixtureContract(t), gen.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	goldenPath := filepath.Join("testdata", "messages.dart.golden")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestBackend_StubMarker(t *testing.T) {
	output, err := dart.New().Generate(testsupport.Context(), fixtureContract(t), gen.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "=> 'TODO';") {
		t.Fatalf("missing translation should emit the stub marker:\n%s", output)
	}
}

func TestBackend_EscapesSingleQuotedText(t *testing.T) {
	en := catalog.NewDocument("en")
	en.Entries = []catalog.Entry{{
		Key:          "note",
		Value:        "It's $5,\nsee {name}",
		Placeholders: map[string]catalog.Placeholder{"name": {Type: "String"}},
	}}
	s, err := catalog.NewSet(en)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	output, err := dart.New().Generate(testsupport.Context(), gen.Build(s, gen.Options{}), gen.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `'It\'s \$5,\nsee ${name}'`) {
		t.Fatalf("escaping mismatch:\n%s", output)
	}
}

func TestBackend_Identity(t *testing.T) {
	backend := dart.New()
	if backend.Name() != "dart" {
		t.Fatalf("name mismatch: %q", backend.Name())
	}
	if got := backend.Filename("messages"); got != "messages.dart" {
		t.Fatalf("filename mismatch: %q", got)
	}
}
