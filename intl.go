// Package intl manages aligned multi-locale translation documents: one
// canonical key set shared by every locale, per-locale values, lossless ARB
// persistence, spreadsheet round-trips, and typed accessor generation.
//
// The heavy lifting lives in the sub-packages (pkg/catalog, pkg/arb,
// pkg/tabular, pkg/gen, pkg/workspace); this package exposes the small entry
// points hosts need to wire them together.
package intl

import (
	"context"
	"io/fs"

	intstore "github.com/goliatone/go-intl/internal/store"
	"github.com/goliatone/go-intl/pkg/gen"
	"github.com/goliatone/go-intl/pkg/report"
	"github.com/goliatone/go-intl/pkg/store"
	"github.com/goliatone/go-intl/pkg/workspace"
)

// Config mirrors intl.yaml; alias exported via the root package for
// convenience.
type Config = workspace.Config

// Issue records a document a pipeline skipped or failed to persist.
type Issue = workspace.Issue

// IssueSink receives per-document issues from the pipelines.
type IssueSink = workspace.IssueSink

// NewWorkspace exposes the workspace constructor from the top-level module.
func NewWorkspace(cfg Config, options ...workspace.Option) *workspace.Workspace {
	return workspace.New(cfg, options...)
}

// NewStore constructs a document store using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewStore(options ...store.Option) store.Store {
	cfg := store.NewOptions(options...)
	return intstore.New(cfg)
}

// GenerateAccessors loads the configured documents and renders typed accessor
// source with the named backend (empty means the configured one), returning
// the path written. It is the simplest entry point for callers that just want
// generated code.
func GenerateAccessors(ctx context.Context, cfg Config, backendName string, options ...workspace.Option) (string, error) {
	ws := workspace.New(cfg, options...)
	set, err := ws.Load(ctx)
	if err != nil {
		return "", err
	}
	if backendName == "" {
		return ws.Generate(ctx, set)
	}
	return ws.GenerateWith(ctx, set, backendName)
}

// RenderReport loads the configured documents and writes the HTML coverage
// report, returning the path written.
func RenderReport(ctx context.Context, cfg Config, options ...workspace.Option) (string, error) {
	ws := workspace.New(cfg, options...)
	set, err := ws.Load(ctx)
	if err != nil {
		return "", err
	}
	return ws.Report(ctx, set)
}

// WithStore injects a custom document store into a workspace.
func WithStore(s store.Store) workspace.Option {
	return workspace.WithStore(s)
}

// WithBackends injects a registry of code generation backends.
func WithBackends(registry *gen.Registry) workspace.Option {
	return workspace.WithBackends(registry)
}

// WithIssueSink registers a callback for skipped or failed documents.
func WithIssueSink(sink IssueSink) workspace.Option {
	return workspace.WithIssueSink(sink)
}

// ReportTemplatesFS exposes the built-in coverage report templates so callers
// can reuse or extend them without importing the report package directly.
func ReportTemplatesFS() fs.FS {
	return report.TemplatesFS()
}
