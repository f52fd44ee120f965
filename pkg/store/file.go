package store

import (
	"errors"
)

// File pairs a loaded payload with its origin, so downstream decoding can
// report where a malformed document came from.
type File struct {
	source Source
	data   []byte
}

// NewFile constructs a File wrapper while validating the inputs.
func NewFile(src Source, data []byte) (File, error) {
	if src == nil {
		return File{}, errors.New("store: source is required")
	}
	if len(data) == 0 {
		return File{}, errors.New("store: payload is empty")
	}

	clone := append([]byte(nil), data...)
	return File{source: src, data: clone}, nil
}

// MustNewFile panics if the file cannot be created. Useful for tests.
func MustNewFile(src Source, data []byte) File {
	f, err := NewFile(src, data)
	if err != nil {
		panic(err)
	}
	return f
}

// Source returns the origin metadata for the payload.
func (f File) Source() Source {
	return f.source
}

// Data returns the raw payload bytes.
func (f File) Data() []byte {
	return f.data
}
