package arb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/goliatone/go-intl/pkg/catalog"
)

// Encode renders a document as indented ARB JSON with a stable layout:
// "@@locale" first, the remaining document metadata, then each entry in
// document order immediately followed by its "@key" metadata object when the
// entry carries any. Placeholder maps emit sorted by name, so encoding the
// same document twice produces identical bytes.
func Encode(doc *catalog.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("arb: nil document")
	}

	type field struct {
		key string
		val any
	}
	fields := []field{{localeKey, doc.Locale}}
	if doc.Meta.Context != "" {
		fields = append(fields, field{contextKey, doc.Meta.Context})
	}
	if !doc.Meta.LastModified.IsZero() {
		fields = append(fields, field{lastModifiedKey, doc.Meta.LastModified.Format(time.RFC3339)})
	}

	extraKeys := make([]string, 0, len(doc.Meta.Extra))
	for k := range doc.Meta.Extra {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		fields = append(fields, field{k, doc.Meta.Extra[k]})
	}

	for _, e := range doc.Entries {
		fields = append(fields, field{e.Key, e.Value})
		if e.HasMeta() {
			meta := entryMeta{Description: e.Description, Placeholders: e.Placeholders}
			fields = append(fields, field{"@" + e.Key, meta})
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		key, err := marshalInline(f.key, "")
		if err != nil {
			return nil, fmt.Errorf("arb: encode key %q: %w", f.key, err)
		}
		val, err := marshalInline(f.val, "  ")
		if err != nil {
			return nil, fmt.Errorf("arb: encode value for %q: %w", f.key, err)
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

// marshalInline marshals v without HTML escaping, indenting continuation
// lines with prefix so nested objects align under their key.
func marshalInline(v any, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
