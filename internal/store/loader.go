// Package store implements the pkg/store contract with file, fs.FS, and
// HTTP strategies.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"sort"
	"time"

	pkgstore "github.com/goliatone/go-intl/pkg/store"
)

// Loader delegates to file, fs.FS, or HTTP strategies depending on the
// source kind. Construction helpers live in the top-level intl package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ pkgstore.Store = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgstore.Options) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a File.
func (l *Loader) Load(ctx context.Context, src pkgstore.Source) (pkgstore.File, error) {
	if src == nil {
		return pkgstore.File{}, errors.New("store: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgstore.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgstore.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgstore.SourceKindURL:
		if !l.allowHTTP {
			return pkgstore.File{}, errors.New("store: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("store: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgstore.File{}, err
	}

	return pkgstore.NewFile(src, data)
}

// Save writes data to a file source, creating parent directories as needed.
// Other source kinds are read-only.
func (l *Loader) Save(ctx context.Context, src pkgstore.Source, data []byte) error {
	if src == nil {
		return errors.New("store: source is nil")
	}
	if src.Kind() != pkgstore.SourceKindFile {
		return fmt.Errorf("store: %s sources are read-only", src.Kind())
	}
	return saveFile(ctx, src.Location(), data)
}

// List expands a glob pattern into file sources in sorted order.
func (l *Loader) List(pattern string) ([]pkgstore.Source, error) {
	if pattern == "" {
		return nil, errors.New("store: glob pattern is required")
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("store: expand pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	sources := make([]pkgstore.Source, 0, len(matches))
	for _, match := range matches {
		sources = append(sources, pkgstore.SourceFromFile(match))
	}
	return sources, nil
}
