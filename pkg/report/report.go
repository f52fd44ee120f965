// Package report renders a static HTML overview of a translation catalog:
// overall key count, per-locale coverage, a key by locale matrix with
// descriptions, and lint findings.
package report

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-intl/pkg/catalog"
	rendertemplate "github.com/goliatone/go-intl/pkg/render/template"
	gotemplate "github.com/goliatone/go-intl/pkg/render/template/gotemplate"
)

const (
	templateName = "templates/report.html"

	defaultTitle = "Translation coverage"

	// Theme tokens become CSS custom properties under this prefix.
	cssVarPrefix = "--intl-"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	title            string
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
	generatedAt      time.Time
}

// WithTitle overrides the report heading.
func WithTitle(title string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(title)
		if trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme applies a go-theme renderer configuration. Theme tokens surface
// as CSS custom properties the stylesheet picks up.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithGeneratedAt pins the report timestamp, mainly so output stays
// reproducible.
func WithGeneratedAt(at time.Time) Option {
	return func(cfg *config) {
		cfg.generatedAt = at
	}
}

// Renderer turns a catalog set into a standalone HTML document.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	title       string
	theme       rendererTheme
	generatedAt time.Time
}

type rendererTheme struct {
	Name         string `json:"name,omitempty"`
	Variant      string `json:"variant,omitempty"`
	CSSVarsStyle string `json:"css_vars_style"`
}

// New constructs a report renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		title:      defaultTitle,
		templateFS: TemplatesFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templateRenderer := cfg.templateRenderer
	if templateRenderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("report: configure template renderer: %w", err)
		}
		templateRenderer = engine
	}

	return &Renderer{
		templates:   templateRenderer,
		title:       cfg.title,
		theme:       buildThemeContext(cfg.theme),
		generatedAt: cfg.generatedAt,
	}, nil
}

// Render produces the HTML document for the given set.
func (r *Renderer) Render(ctx context.Context, set *catalog.Set) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("report: catalog set is nil")
	}
	if r.templates == nil {
		return nil, fmt.Errorf("report: template renderer is nil")
	}

	data := map[string]any{
		"title":        r.title,
		"generated_at": r.stamp(),
		"key_count":    strconv.Itoa(len(set.Keys())),
		"locale_count": strconv.Itoa(set.Len()),
		"locales":      localeRows(set),
		"keys":         keyRows(set),
		"problems":     problemRows(set.Lint()),
		"theme":        r.theme,
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("report: render template: %w", err)
	}
	return []byte(rendered), nil
}

func (r *Renderer) stamp() string {
	at := r.generatedAt
	if at.IsZero() {
		at = time.Now()
	}
	return at.UTC().Format("2006-01-02 15:04 MST")
}

type localeRow struct {
	Tag         string `json:"tag"`
	DisplayName string `json:"display_name"`
	Translated  string `json:"translated"`
	Total       string `json:"total"`
	Percent     string `json:"percent"`
	Complete    bool   `json:"complete"`
}

func localeRows(set *catalog.Set) []localeRow {
	coverage := set.Coverage()
	rows := make([]localeRow, 0, len(coverage))
	for _, c := range coverage {
		rows = append(rows, localeRow{
			Tag:         c.Locale,
			DisplayName: catalog.DisplayName(c.Locale),
			Translated:  strconv.Itoa(c.Translated),
			Total:       strconv.Itoa(c.Total),
			Percent:     strconv.Itoa(c.Percent()),
			Complete:    c.Translated == c.Total,
		})
	}
	return rows
}

type keyRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cells       []bool `json:"cells"`
}

func keyRows(set *catalog.Set) []keyRow {
	docs := set.Documents()
	entries := set.CanonicalEntries()
	rows := make([]keyRow, 0, len(entries))
	for _, e := range entries {
		row := keyRow{
			Name:        e.Key,
			Description: SanitizeText(e.Description),
			Cells:       make([]bool, 0, len(docs)),
		}
		for _, doc := range docs {
			got, ok := doc.Entry(e.Key)
			row.Cells = append(row.Cells, ok && got.Value != "")
		}
		rows = append(rows, row)
	}
	return rows
}

type problemRow struct {
	Kind    string `json:"kind"`
	Key     string `json:"key"`
	Locale  string `json:"locale,omitempty"`
	Message string `json:"message"`
}

func problemRows(problems []catalog.Problem) []problemRow {
	rows := make([]problemRow, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, problemRow{
			Kind:    string(p.Kind),
			Key:     p.Key,
			Locale:  p.Locale,
			Message: SanitizeText(problemMessage(p)),
		})
	}
	return rows
}

func problemMessage(p catalog.Problem) string {
	switch p.Kind {
	case catalog.ProblemUnmatchedToken:
		return fmt.Sprintf("token {%s} has no declared placeholder", p.Detail)
	case catalog.ProblemUnusedPlaceholder:
		return fmt.Sprintf("placeholder %s is never referenced", p.Detail)
	case catalog.ProblemDescriptionDrift:
		return "descriptions diverge: " + p.Detail
	}
	return p.Detail
}

func buildThemeContext(cfg *theme.RendererConfig) rendererTheme {
	if cfg == nil {
		return rendererTheme{}
	}
	ctx := rendererTheme{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
	}
	vars := make(map[string]string, len(cfg.Tokens)+len(cfg.CSSVars))
	for name, value := range cfg.Tokens {
		vars[cssVarPrefix+name] = value
	}
	for name, value := range cfg.CSSVars {
		vars[name] = value
	}
	ctx.CSSVarsStyle = cssVarsStyle(vars)
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
