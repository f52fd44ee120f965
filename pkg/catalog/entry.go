package catalog

import (
	"regexp"
	"sort"
)

// Placeholder describes one substitution token inside a value string. It has
// no identity of its own; the name is the map key it is stored under. All
// fields are optional; the zero value means "declared, nothing known".
type Placeholder struct {
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Example     string `json:"example,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsZero reports whether the placeholder carries no metadata at all.
func (p Placeholder) IsZero() bool {
	return p == Placeholder{}
}

// Entry is one key/value record inside a Document. Value is the literal
// translated text and may contain {name} tokens that reference Placeholders.
type Entry struct {
	Key          string                 `json:"key"`
	Value        string                 `json:"value"`
	Description  string                 `json:"description,omitempty"`
	Placeholders map[string]Placeholder `json:"placeholders,omitempty"`
}

// HasMeta reports whether the entry carries a description or any placeholder
// declarations, i.e. whether the persisted form needs a sibling "@key" object.
func (e Entry) HasMeta() bool {
	return e.Description != "" || len(e.Placeholders) > 0
}

// Clone returns a deep copy so callers can hand entries out without aliasing
// the placeholder map.
func (e Entry) Clone() Entry {
	out := e
	if e.Placeholders != nil {
		out.Placeholders = make(map[string]Placeholder, len(e.Placeholders))
		for name, ph := range e.Placeholders {
			out.Placeholders[name] = ph
		}
	}
	return out
}

// PlaceholderNames returns the declared placeholder names in sorted order.
func (e Entry) PlaceholderNames() []string {
	if len(e.Placeholders) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.Placeholders))
	for name := range e.Placeholders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tokenPattern matches {name} substitution tokens. Identifier-shaped names
// only; anything else stays literal text.
var tokenPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ValueSegment is one run of a value string: literal text when Token is
// empty, otherwise a {name} token reference.
type ValueSegment struct {
	Text  string
	Token string
}

// SplitValue slices a value into literal runs and {name} tokens, in order.
// Concatenating Text and "{Token}" runs reproduces the input exactly.
func SplitValue(value string) []ValueSegment {
	if value == "" {
		return nil
	}
	var out []ValueSegment
	last := 0
	for _, loc := range tokenPattern.FindAllStringSubmatchIndex(value, -1) {
		if loc[0] > last {
			out = append(out, ValueSegment{Text: value[last:loc[0]]})
		}
		out = append(out, ValueSegment{Token: value[loc[2]:loc[3]]})
		last = loc[1]
	}
	if last < len(value) {
		out = append(out, ValueSegment{Text: value[last:]})
	}
	return out
}

// Tokens returns the {name} tokens found in value, deduplicated, in order of
// first appearance.
func Tokens(value string) []string {
	matches := tokenPattern.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
