// Package dart renders a gen.Contract as a single Dart source file: an
// abstract base class, one subclass per locale, and a lookup function that
// throws ArgumentError when no implementation matches. Parameterless
// accessors come out as getters; accessors with parameters take required
// named parameters and interpolate them with ${name}.
package dart

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-intl/pkg/gen"
)

const (
	backendName = "dart"
	header      = "// Code generated by go-intl. Do not edit."
)

// Backend implements gen.Backend for Dart output.
type Backend struct{}

// New returns the Dart source backend.
func New() *Backend { return &Backend{} }

// Name identifies the backend in a registry.
func (*Backend) Name() string { return backendName }

// Filename appends the Dart source extension.
func (*Backend) Filename(base string) string { return base + ".dart" }

// Generate renders the contract as dependency-free Dart.
func (*Backend) Generate(ctx context.Context, c gen.Contract, opts gen.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(header + "\n\n")

	writeBaseClass(&b, c)
	for _, target := range c.Locales {
		writeSubclass(&b, c, target)
	}
	writeLookup(&b, c)

	return []byte(b.String()), nil
}

func writeBaseClass(b *strings.Builder, c gen.Contract) {
	fmt.Fprintf(b, "abstract class %s {\n", c.TypeName)
	for i, a := range c.Accessors {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, line := range docLines(a.Description) {
			fmt.Fprintf(b, "  /// %s\n", line)
		}
		fmt.Fprintf(b, "  %s;\n", declaration(a))
	}
	b.WriteString("}\n\n")
}

func writeSubclass(b *strings.Builder, c gen.Contract, target gen.LocaleTarget) {
	name := className(c.TypeName, target)
	fmt.Fprintf(b, "class %s extends %s {\n", name, c.TypeName)
	for i, m := range target.Methods {
		if i > 0 {
			b.WriteString("\n")
		}
		a := c.Accessors[i]
		b.WriteString("  @override\n")
		fmt.Fprintf(b, "  %s => %s;\n", declaration(a), bodyLiteral(m))
	}
	b.WriteString("}\n\n")
}

func writeLookup(b *strings.Builder, c gen.Contract) {
	fmt.Fprintf(b, "%s lookup%s(String locale) {\n", c.TypeName, c.TypeName)
	b.WriteString("  final tag = locale.toLowerCase().replaceAll('-', '_');\n")

	if len(c.Locales) > 0 {
		b.WriteString("  switch (tag) {\n")
		for _, target := range c.Locales {
			fmt.Fprintf(b, "    case '%s':\n      return %s();\n",
				strings.ToLower(target.Locale), className(c.TypeName, target))
		}
		b.WriteString("  }\n")

		b.WriteString("  switch (tag.split('_').first) {\n")
		seen := make(map[string]bool, len(c.Locales))
		for _, target := range c.Locales {
			if seen[target.Language] {
				continue
			}
			seen[target.Language] = true
			fmt.Fprintf(b, "    case '%s':\n      return %s();\n",
				target.Language, className(c.TypeName, target))
		}
		b.WriteString("  }\n")
	}

	b.WriteString("  throw ArgumentError('unsupported locale: \\'$locale\\'');\n")
	b.WriteString("}\n")
}

// declaration renders the shared accessor signature: a getter when there are
// no parameters, otherwise a method with required named parameters.
func declaration(a gen.Accessor) string {
	name := accessorName(a)
	if !a.HasParams() {
		return "String get " + name
	}
	parts := make([]string, len(a.Params))
	for i, p := range a.Params {
		parts[i] = "required " + string(p.Type) + " " + p.Name
	}
	return fmt.Sprintf("String %s({%s})", name, strings.Join(parts, ", "))
}

// bodyLiteral renders one method body as a single-quoted Dart string with
// ${name} interpolation for parameter references.
func bodyLiteral(m gen.Method) string {
	if m.Stub {
		return quote(gen.StubText)
	}
	var b strings.Builder
	b.WriteByte('\'')
	for _, seg := range m.Body {
		if seg.Param != "" {
			b.WriteString("${" + seg.Param + "}")
			continue
		}
		escapeInto(&b, seg.Text)
	}
	b.WriteByte('\'')
	return b.String()
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	escapeInto(&b, s)
	b.WriteByte('\'')
	return b.String()
}

func escapeInto(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
}

func accessorName(a gen.Accessor) string {
	var b strings.Builder
	for i, w := range a.Words {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func className(typeName string, target gen.LocaleTarget) string {
	suffix := capitalize(target.Language) + capitalize(strings.ToLower(target.Region))
	if suffix == "" {
		suffix = "Default"
	}
	return typeName + suffix
}

func capitalize(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func docLines(description string) []string {
	if description == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n")
}
