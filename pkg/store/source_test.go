package store_test

import (
	"testing"

	"github.com/goliatone/go-intl/pkg/store"
)

func TestParseSource(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantKind store.SourceKind
		wantErr  bool
	}{
		{name: "https url", input: "https://example.com/app_en.arb", wantKind: store.SourceKindURL},
		{name: "http url", input: "http://example.com/app_en.arb", wantKind: store.SourceKindURL},
		{name: "relative path", input: "arb/app_en.arb", wantKind: store.SourceKindFile},
		{name: "absolute path", input: "/tmp/app_en.arb", wantKind: store.SourceKindFile},
		{name: "empty", input: "", wantErr: true},
		{name: "invalid url escape", input: "http://example.com/%zz", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := store.ParseSource(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.input, err)
			}
			if src.Kind() != tc.wantKind {
				t.Fatalf("kind mismatch for %q: want %q, got %q", tc.input, tc.wantKind, src.Kind())
			}
		})
	}
}

func TestSourceFromURLPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an invalid URL")
		}
	}()
	store.SourceFromURL("://not-a-url")
}

func TestNewFile(t *testing.T) {
	if _, err := store.NewFile(nil, []byte("x")); err == nil {
		t.Fatal("expected an error for a nil source")
	}
	if _, err := store.NewFile(store.SourceFromFile("a.arb"), nil); err == nil {
		t.Fatal("expected an error for an empty payload")
	}

	payload := []byte(`{"greeting": "Hi"}`)
	file, err := store.NewFile(store.SourceFromFile("a.arb"), payload)
	if err != nil {
		t.Fatalf("new file: %v", err)
	}

	payload[0] = '!'
	if file.Data()[0] == '!' {
		t.Fatal("file payload shares memory with the caller's slice")
	}
}
