package intl_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	intl "github.com/goliatone/go-intl"
	"github.com/goliatone/go-intl/pkg/catalog"
	"github.com/goliatone/go-intl/pkg/store"
	"github.com/goliatone/go-intl/pkg/testsupport"
	"github.com/goliatone/go-intl/pkg/workspace"
)

func TestNewStoreRoundTrip(t *testing.T) {
	s := intl.NewStore()
	path := filepath.Join(t.TempDir(), "app_en.arb")
	payload := []byte(`{"@@locale": "en", "greeting": "Hi"}`)

	if err := s.Save(testsupport.Context(), store.SourceFromFile(path), payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	file, err := s.Load(testsupport.Context(), store.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(file.Data()) != string(payload) {
		t.Errorf("loaded %q, want %q", file.Data(), payload)
	}
}

func TestNewStoreWithFileSystem(t *testing.T) {
	files := fstest.MapFS{
		"locales/app_en.arb": &fstest.MapFile{Data: []byte(`{"@@locale": "en"}`)},
	}
	s := intl.NewStore(store.WithFileSystem(files))

	file, err := s.Load(testsupport.Context(), store.SourceFromFS("locales/app_en.arb"))
	if err != nil {
		t.Fatalf("load from fs: %v", err)
	}
	if !strings.Contains(string(file.Data()), "@@locale") {
		t.Errorf("unexpected payload %q", file.Data())
	}
}

func translatorFixture(t *testing.T) *catalog.Set {
	t.Helper()
	set, err := catalog.NewSet()
	if err != nil {
		t.Fatalf("new set: %v", err)
	}
	for _, doc := range []*catalog.Document{
		{Locale: "en", Entries: []catalog.Entry{
			{Key: "farewell", Value: "Goodbye"},
			{Key: "greeting", Value: "Hi {name}"},
		}},
		{Locale: "es", Entries: []catalog.Entry{
			{Key: "farewell", Value: ""},
			{Key: "greeting", Value: "Hola {name}"},
		}},
	} {
		if err := set.Add(doc); err != nil {
			t.Fatalf("add %s: %v", doc.Locale, err)
		}
	}
	return set
}

func TestTranslatorSubstitutesTokens(t *testing.T) {
	tr := intl.NewTranslator(translatorFixture(t))

	got, err := tr.Translate("es", "greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Hola Ada" {
		t.Errorf("translated = %q, want %q", got, "Hola Ada")
	}

	// Tokens without a supplied value stay literal.
	got, err = tr.Translate("en", "greeting")
	if err != nil {
		t.Fatalf("translate without args: %v", err)
	}
	if got != "Hi {name}" {
		t.Errorf("translated = %q, want the literal token", got)
	}
}

func TestTranslatorFallbackLocale(t *testing.T) {
	set := translatorFixture(t)

	tr := intl.NewTranslator(set, intl.WithFallbackLocale("en"))
	got, err := tr.Translate("es", "farewell")
	if err != nil {
		t.Fatalf("translate with fallback: %v", err)
	}
	if got != "Goodbye" {
		t.Errorf("translated = %q, want the en fallback", got)
	}

	strict := intl.NewTranslator(set)
	if _, err := strict.Translate("es", "farewell"); !errors.Is(err, intl.ErrMissingTranslation) {
		t.Fatalf("err = %v, want ErrMissingTranslation", err)
	}
	if _, err := strict.Translate("fr", "farewell"); !errors.Is(err, intl.ErrMissingTranslation) {
		t.Fatalf("unknown locale err = %v, want ErrMissingTranslation", err)
	}
}

func TestGenerateAccessorsConvenience(t *testing.T) {
	dir := t.TempDir()
	arbDir := filepath.Join(dir, "locales")
	if err := os.MkdirAll(arbDir, 0o755); err != nil {
		t.Fatalf("create arb dir: %v", err)
	}
	payload := `{"@@locale": "en", "greeting": "Hi"}`
	if err := os.WriteFile(filepath.Join(arbDir, "app_en.arb"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := workspace.DefaultConfig()
	cfg.ARBDir = arbDir
	cfg.Generator.Output = filepath.Join(dir, "messages.go")

	path, err := intl.GenerateAccessors(testsupport.Context(), cfg, "")
	if err != nil {
		t.Fatalf("generate accessors: %v", err)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(source), "package messages") {
		t.Error("generated source missing package clause")
	}

	cfg.Report.Output = filepath.Join(dir, "coverage.html")
	reportPath, err := intl.RenderReport(testsupport.Context(), cfg)
	if err != nil {
		t.Fatalf("render report: %v", err)
	}
	page, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(page), "<!doctype html>") {
		t.Error("report is not an HTML page")
	}
}
