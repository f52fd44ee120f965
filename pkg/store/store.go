// Package store abstracts where translation documents are read from and
// written to. The concrete implementation lives under internal/store; hosts
// construct one through the top-level intl package.
package store

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Store fetches, persists, and discovers translation documents. Load accepts
// any source kind; Save is restricted to file sources; List expands a glob
// pattern into file sources in sorted order.
type Store interface {
	Load(ctx context.Context, src Source) (File, error)
	Save(ctx context.Context, src Source, data []byte) error
	List(pattern string) ([]Source, error)
}

// Options configures how a Store resolves sources.
type Options struct {
	// FileSystem enables loading from an abstract filesystem; nil means fs
	// sources are disabled.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means URL sources are disabled unless AllowHTTPFallback
	// is true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles a default HTTP client when none is supplied.
	// Keeping this explicit preserves offline-first behaviour.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// Option mutates Options prior to construction.
type Option func(*Options)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) Option {
	return func(opts *Options) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewOptions applies a set of Option values and returns the resulting
// configuration.
func NewOptions(options ...Option) Options {
	cfg := Options{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
