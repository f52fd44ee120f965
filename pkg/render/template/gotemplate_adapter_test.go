package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/goliatone/go-intl/pkg/render/template/gotemplate"
	"github.com/goliatone/go-intl/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("coverage", map[string]any{
			"locale":     "es",
			"translated": "2",
			"total":      "3",
		}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "coverage.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RenderDetectsInlineContent(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("{{ locale }} ready", map[string]any{"locale": "pt_BR"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if got != "pt_BR ready" {
		t.Fatalf("inline content mismatch: %q", got)
	}

	fromFile, err := engine.Render("coverage", map[string]any{
		"locale":     "es",
		"translated": "2",
		"total":      "3",
	})
	if err != nil {
		t.Fatalf("render by name: %v", err)
	}
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "coverage.golden"))
	if fromFile != want {
		t.Fatalf("render by name mismatch\nwant: %q\n got: %q", want, fromFile)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString("{{ count }} keys pending review", map[string]any{"count": "4"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "4 keys pending review" {
		t.Fatalf("render string mismatch: %q", got)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"source": "en"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-global.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("percent", func(input any, _ any) (any, error) {
		ratio, ok := input.(float64)
		if !ok {
			return nil, fmt.Errorf("percent wants a float, got %T", input)
		}
		return strconv.FormatFloat(ratio*100, 'f', -1, 64) + "%", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"ratio": 0.875}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-filter.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected an error when no template source is configured")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
