// Package catalog defines the multi-locale translation catalog: Placeholder,
// Entry, Document, and the Set that keeps a family of per-locale documents
// structurally aligned. All mutation goes through Set operations so the
// alignment invariants (every key everywhere, shared descriptions and
// placeholder metadata) hold after every successful call. The package is pure
// in-memory data plus synchronous transforms; persistence, discovery, and
// user interaction live with the callers.
package catalog
