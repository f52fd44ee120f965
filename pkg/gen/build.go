package gen

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-intl/pkg/catalog"
)

// DefaultTypeName is used when Options.TypeName is empty.
const DefaultTypeName = "Messages"

// Build lowers a set into a Contract. Accessors follow canonical key order;
// locale targets follow set iteration order. The contract is a value
// snapshot: later set mutations never leak into it.
func Build(s *catalog.Set, opts Options) Contract {
	typeName := opts.TypeName
	if typeName == "" {
		typeName = DefaultTypeName
	}
	c := Contract{TypeName: typeName}

	entries := s.CanonicalEntries()
	used := make(map[string]bool, len(entries))
	for _, e := range entries {
		words := keyWords(e.Key)
		words = dedupeWords(words, used)
		c.Accessors = append(c.Accessors, Accessor{
			Key:         e.Key,
			Words:       words,
			Description: e.Description,
			Params:      paramsFor(s, e),
		})
	}

	for _, doc := range s.Documents() {
		lang, region := catalog.SplitTag(doc.Locale)
		target := LocaleTarget{Locale: doc.Locale, Language: lang, Region: region}
		for _, a := range c.Accessors {
			entry, ok := doc.Entry(a.Key)
			if !ok {
				target.Methods = append(target.Methods, Method{Key: a.Key, Stub: true})
				continue
			}
			target.Methods = append(target.Methods, Method{
				Key:  a.Key,
				Body: segments(entry.Value, a.Params),
			})
		}
		c.Locales = append(c.Locales, target)
	}
	return c
}

// paramsFor derives the parameter list for one canonical entry: declared
// placeholders only, ordered by first token appearance in the reference
// value (the first document in iteration order with a non-empty value for
// the key), with never-referenced placeholders appended by name.
func paramsFor(s *catalog.Set, e catalog.Entry) []Param {
	if len(e.Placeholders) == 0 {
		return nil
	}

	var order []string
	seen := make(map[string]struct{}, len(e.Placeholders))
	if ref, ok := referenceValue(s, e.Key); ok {
		for _, tok := range catalog.Tokens(ref) {
			if _, declared := e.Placeholders[tok]; !declared {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			order = append(order, tok)
		}
	}

	rest := make([]string, 0, len(e.Placeholders))
	for name := range e.Placeholders {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	params := make([]Param, len(order))
	for i, name := range order {
		params[i] = Param{Name: name, Type: paramTypeOf(e.Placeholders[name].Type)}
	}
	return params
}

// referenceValue finds the first non-empty value for key across the set in
// iteration order.
func referenceValue(s *catalog.Set, key string) (string, bool) {
	for _, locale := range s.Locales() {
		if e, ok := s.EntryFor(locale, key); ok && e.Value != "" {
			return e.Value, true
		}
	}
	return "", false
}

// paramTypeOf maps a declared placeholder type onto the neutral vocabulary.
func paramTypeOf(declared string) ParamType {
	switch declared {
	case "String":
		return ParamString
	case "int":
		return ParamInt
	case "double":
		return ParamDouble
	case "num":
		return ParamNum
	}
	return ParamObject
}

// segments splits a value into body segments. Tokens naming an accessor
// parameter become references; any other {token} stays literal text so the
// rendered string matches the catalog value verbatim.
func segments(value string, params []Param) []Segment {
	parts := catalog.SplitValue(value)
	if len(parts) == 0 {
		return nil
	}
	names := make(map[string]struct{}, len(params))
	for _, p := range params {
		names[p.Name] = struct{}{}
	}

	var out []Segment
	appendText := func(text string) {
		if n := len(out); n > 0 && out[n-1].Param == "" {
			out[n-1].Text += text
			return
		}
		out = append(out, Segment{Text: text})
	}
	for _, part := range parts {
		if part.Token == "" {
			appendText(part.Text)
			continue
		}
		if _, ok := names[part.Token]; ok {
			out = append(out, Segment{Param: part.Token})
			continue
		}
		appendText("{" + part.Token + "}")
	}
	return out
}

// keyWords splits a key into lowercase words on underscores, punctuation,
// and camelCase boundaries. A key with no usable characters becomes "key",
// and a leading digit gains the same prefix so every backend can form a
// legal identifier.
func keyWords(key string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = nil
		}
	}
	var prev rune
	for _, r := range key {
		switch {
		case unicode.IsLower(r) || unicode.IsDigit(r):
			current = append(current, r)
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				flush()
			}
			current = append(current, unicode.ToLower(r))
		default:
			flush()
		}
		prev = r
	}
	flush()

	if len(words) == 0 {
		return []string{"key"}
	}
	if r := rune(words[0][0]); unicode.IsDigit(r) {
		words = append([]string{"key"}, words...)
	}
	return words
}

// dedupeWords appends a numeric suffix when two keys mangle to the same
// identifier, keeping the first occurrence bare.
func dedupeWords(words []string, used map[string]bool) []string {
	id := strings.Join(words, "")
	if !used[id] {
		used[id] = true
		return words
	}
	for n := 2; ; n++ {
		candidate := id + strconv.Itoa(n)
		if !used[candidate] {
			used[candidate] = true
			return append(words, strconv.Itoa(n))
		}
	}
}
