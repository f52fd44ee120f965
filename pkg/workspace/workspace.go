// Package workspace wires stores, codecs, and code generation into the
// pipelines a host drives: discover and decode documents, flush edits,
// exchange spreadsheet rounds, generate accessors, render reports.
//
// The workspace itself is synchronous and single-writer, like the catalog it
// manages. All blocking I/O happens at the store boundary; context is
// honoured between pipeline stages, never mid-mutation.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	intstore "github.com/goliatone/go-intl/internal/store"
	"github.com/goliatone/go-intl/pkg/arb"
	"github.com/goliatone/go-intl/pkg/catalog"
	"github.com/goliatone/go-intl/pkg/gen"
	"github.com/goliatone/go-intl/pkg/gen/dart"
	"github.com/goliatone/go-intl/pkg/gen/golang"
	"github.com/goliatone/go-intl/pkg/report"
	pkgstore "github.com/goliatone/go-intl/pkg/store"
	"github.com/goliatone/go-intl/pkg/tabular"
)

const defaultHTTPTimeout = 30 * time.Second

// Issue records a document the pipelines skipped or failed to persist. The
// catalog in memory stays authoritative either way; recovery is retrying or
// reloading, the host's choice.
type Issue struct {
	Location string
	Err      error
}

// IssueSink receives per-document issues. Pipelines never abort the whole
// run on one bad document; the sink is how hosts surface them.
type IssueSink func(Issue)

// Option customises the workspace configuration.
type Option func(*Workspace)

// WithStore injects a custom document store.
func WithStore(s pkgstore.Store) Option {
	return func(w *Workspace) {
		if s != nil {
			w.store = s
		}
	}
}

// WithBackends injects a registry of code generation backends.
func WithBackends(registry *gen.Registry) Option {
	return func(w *Workspace) {
		if registry != nil {
			w.backends = registry
		}
	}
}

// WithIssueSink registers a callback for skipped or failed documents.
func WithIssueSink(sink IssueSink) Option {
	return func(w *Workspace) {
		if sink != nil {
			w.sink = sink
		}
	}
}

// Workspace coordinates the document pipelines around one configuration. It
// applies sensible defaults (file store, golang and dart backends) while
// remaining open to dependency injection.
type Workspace struct {
	cfg      Config
	store    pkgstore.Store
	backends *gen.Registry
	sink     IssueSink
}

// New constructs a Workspace applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(cfg Config, options ...Option) *Workspace {
	w := &Workspace{cfg: cfg.withDefaults()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	w.applyDefaults()
	return w
}

func (w *Workspace) applyDefaults() {
	if w.store == nil {
		w.store = intstore.New(pkgstore.NewOptions(
			pkgstore.WithHTTPFallback(defaultHTTPTimeout),
		))
	}
	if w.backends == nil {
		w.backends = gen.NewRegistry()
		w.backends.MustRegister(golang.New())
		w.backends.MustRegister(dart.New())
	}
	if w.sink == nil {
		w.sink = func(Issue) {}
	}
}

// Config returns the effective configuration with defaults applied.
func (w *Workspace) Config() Config {
	return w.cfg
}

// Backends returns the registry of code generation backends.
func (w *Workspace) Backends() *gen.Registry {
	return w.backends
}

// Load discovers documents with the configured pattern and decodes them in
// discovery order. A document that cannot be read or parsed is skipped and
// reported through the issue sink; the rest of the catalog still loads.
func (w *Workspace) Load(ctx context.Context) (*catalog.Set, error) {
	if ctx == nil {
		return nil, errors.New("workspace: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sources, err := w.store.List(w.pattern())
	if err != nil {
		return nil, fmt.Errorf("workspace: discover documents: %w", err)
	}

	set, err := catalog.NewSet()
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		file, err := w.store.Load(ctx, src)
		if err != nil {
			w.sink(Issue{Location: src.Location(), Err: err})
			continue
		}
		doc, err := arb.DecodeNamed(src.Location(), w.cfg.Prefix, file.Data())
		if err != nil {
			w.sink(Issue{Location: src.Location(), Err: err})
			continue
		}
		if err := set.Add(doc); err != nil {
			w.sink(Issue{Location: src.Location(), Err: err})
			continue
		}
	}
	return set, nil
}

// Flush persists dirty documents one by one. A document that fails to encode
// or save is reported through the issue sink and stays dirty for a retry;
// in-memory state is never rolled back.
func (w *Workspace) Flush(ctx context.Context, set *catalog.Set) error {
	if ctx == nil {
		return errors.New("workspace: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if set == nil {
		return errors.New("workspace: catalog set is nil")
	}

	dirty := set.Dirty()

	var failed []string
	for _, doc := range dirty {
		location := doc.Location
		if location == "" {
			location = w.documentPath(doc.Locale)
			doc.Location = location
		}

		data, err := arb.Encode(doc)
		if err != nil {
			failed = append(failed, doc.Locale)
			w.sink(Issue{Location: location, Err: err})
			continue
		}
		if err := w.store.Save(ctx, pkgstore.SourceFromFile(location), data); err != nil {
			failed = append(failed, doc.Locale)
			w.sink(Issue{Location: location, Err: err})
			continue
		}
	}

	set.ClearDirty()
	for _, locale := range failed {
		set.MarkDirty(locale)
	}

	if len(failed) > 0 {
		return fmt.Errorf("workspace: %d of %d dirty documents failed to persist", len(failed), len(dirty))
	}
	return nil
}

// ExportCSV renders the set as a spreadsheet for a translation round and
// writes it to dest.
func (w *Workspace) ExportCSV(ctx context.Context, set *catalog.Set, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if set == nil {
		return errors.New("workspace: catalog set is nil")
	}

	data, err := tabular.MarshalCSV(set)
	if err != nil {
		return fmt.Errorf("workspace: export csv: %w", err)
	}
	if err := w.store.Save(ctx, pkgstore.SourceFromFile(dest), data); err != nil {
		return fmt.Errorf("workspace: write %s: %w", dest, err)
	}
	return nil
}

// ImportCSV merges a returned spreadsheet back into the set. The location can
// be a file path or an http(s) URL. Only changed cells dirty their documents.
func (w *Workspace) ImportCSV(ctx context.Context, set *catalog.Set, location string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if set == nil {
		return errors.New("workspace: catalog set is nil")
	}

	src, err := pkgstore.ParseSource(location)
	if err != nil {
		return err
	}
	file, err := w.store.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("workspace: fetch %s: %w", location, err)
	}
	if err := tabular.UnmarshalCSV(file.Data(), set); err != nil {
		return fmt.Errorf("workspace: import csv: %w", err)
	}
	return nil
}

// Generate builds typed accessor source with the configured backend and
// writes it to the configured output path. It returns the path written.
func (w *Workspace) Generate(ctx context.Context, set *catalog.Set) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if set == nil {
		return "", errors.New("workspace: catalog set is nil")
	}

	return w.GenerateWith(ctx, set, w.cfg.Generator.Backend)
}

// GenerateWith is Generate with an explicit backend name, so hosts can emit
// several targets from one catalog.
func (w *Workspace) GenerateWith(ctx context.Context, set *catalog.Set, backendName string) (string, error) {
	backend, err := w.backends.Get(backendName)
	if err != nil {
		return "", fmt.Errorf("workspace: backend %q: %w", backendName, err)
	}

	opts := gen.Options{
		TypeName: w.cfg.Generator.TypeName,
		Package:  w.cfg.Generator.Package,
	}
	output, err := backend.Generate(ctx, gen.Build(set, opts), opts)
	if err != nil {
		return "", fmt.Errorf("workspace: generate %s: %w", backend.Name(), err)
	}

	dest := w.cfg.Generator.Output
	if dest == "" || !strings.EqualFold(backendName, w.cfg.Generator.Backend) {
		dest = backend.Filename(strings.ToLower(w.cfg.Generator.TypeName))
	}
	if err := w.store.Save(ctx, pkgstore.SourceFromFile(dest), output); err != nil {
		return "", fmt.Errorf("workspace: write %s: %w", dest, err)
	}
	return dest, nil
}

// Report renders the HTML coverage report and writes it to the configured
// output path. It returns the path written.
func (w *Workspace) Report(ctx context.Context, set *catalog.Set) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if set == nil {
		return "", errors.New("workspace: catalog set is nil")
	}

	var options []report.Option
	if w.cfg.Report.Title != "" {
		options = append(options, report.WithTitle(w.cfg.Report.Title))
	}
	renderer, err := report.New(options...)
	if err != nil {
		return "", fmt.Errorf("workspace: configure report: %w", err)
	}
	output, err := renderer.Render(ctx, set)
	if err != nil {
		return "", fmt.Errorf("workspace: render report: %w", err)
	}

	dest := w.cfg.Report.Output
	if err := w.store.Save(ctx, pkgstore.SourceFromFile(dest), output); err != nil {
		return "", fmt.Errorf("workspace: write %s: %w", dest, err)
	}
	return dest, nil
}

func (w *Workspace) pattern() string {
	return filepath.Join(w.cfg.ARBDir, w.cfg.Pattern)
}

// documentPath names the file for a locale that has never been persisted,
// following the same convention locale derivation reads.
func (w *Workspace) documentPath(locale string) string {
	name := w.cfg.Prefix + "_" + locale + ".arb"
	if locale == catalog.DefaultLocale {
		name = w.cfg.Prefix + ".arb"
	}
	return filepath.Join(w.cfg.ARBDir, name)
}
