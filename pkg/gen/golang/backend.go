// Package golang renders a gen.Contract as a single Go source file: an
// interface for the base contract, one zero-size implementation struct per
// locale, and a Match resolver that falls back from exact tag to bare
// language. Bodies with parameters use fmt.Sprintf with typed verbs; bodies
// without stay plain string literals.
package golang

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-intl/pkg/gen"
)

const (
	backendName    = "golang"
	header         = "// Code generated by go-intl. DO NOT EDIT."
	defaultPackage = "messages"
)

// Backend implements gen.Backend for Go output.
type Backend struct{}

// New returns the Go source backend.
func New() *Backend { return &Backend{} }

// Name identifies the backend in a registry.
func (*Backend) Name() string { return backendName }

// Filename appends the Go source extension.
func (*Backend) Filename(base string) string { return base + ".go" }

// Generate renders the contract. The output imports only fmt and strings, so
// generated files drop into any module without new dependencies.
func (*Backend) Generate(ctx context.Context, c gen.Contract, opts gen.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pkg := opts.Package
	if pkg == "" {
		pkg = defaultPackage
	}

	var b strings.Builder
	b.WriteString(header + "\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import (\n\t\"fmt\"\n\t\"strings\"\n)\n\n")

	writeInterface(&b, c)
	for _, target := range c.Locales {
		writeImpl(&b, c, target)
	}
	writeResolver(&b, c)

	return []byte(b.String()), nil
}

func writeInterface(b *strings.Builder, c gen.Contract) {
	fmt.Fprintf(b, "// %s is the locale-independent accessor surface.\n", c.TypeName)
	fmt.Fprintf(b, "type %s interface {\n", c.TypeName)
	for i, a := range c.Accessors {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, line := range docLines(a.Description) {
			fmt.Fprintf(b, "\t// %s\n", line)
		}
		fmt.Fprintf(b, "\t%s(%s) string\n", methodName(a), signature(a.Params))
	}
	b.WriteString("}\n\n")
}

func writeImpl(b *strings.Builder, c gen.Contract, target gen.LocaleTarget) {
	name := implName(c.TypeName, target)
	fmt.Fprintf(b, "// %s implements %s for the %s locale.\n", name, c.TypeName, target.Locale)
	fmt.Fprintf(b, "type %s struct{}\n\n", name)

	for i, m := range target.Methods {
		a := c.Accessors[i]
		fmt.Fprintf(b, "func (%s) %s(%s) string {\n", name, methodName(a), signature(a.Params))
		fmt.Fprintf(b, "\t%s\n", returnStatement(m, a))
		b.WriteString("}\n\n")
	}
}

func writeResolver(b *strings.Builder, c gen.Contract) {
	fmt.Fprintf(b, "// Match%s resolves a locale tag to its implementation, trying the exact\n", c.TypeName)
	b.WriteString("// tag first and the bare language second.\n")
	fmt.Fprintf(b, "func Match%s(locale string) (%s, error) {\n", c.TypeName, c.TypeName)
	b.WriteString("\ttag := strings.ToLower(strings.ReplaceAll(locale, \"-\", \"_\"))\n")

	if len(c.Locales) > 0 {
		b.WriteString("\tswitch tag {\n")
		for _, target := range c.Locales {
			fmt.Fprintf(b, "\tcase %q:\n\t\treturn %s{}, nil\n",
				strings.ToLower(target.Locale), implName(c.TypeName, target))
		}
		b.WriteString("\t}\n")

		b.WriteString("\tif i := strings.IndexByte(tag, '_'); i >= 0 {\n\t\ttag = tag[:i]\n\t}\n")
		b.WriteString("\tswitch tag {\n")
		seen := make(map[string]bool, len(c.Locales))
		for _, target := range c.Locales {
			if seen[target.Language] {
				continue
			}
			seen[target.Language] = true
			fmt.Fprintf(b, "\tcase %q:\n\t\treturn %s{}, nil\n",
				target.Language, implName(c.TypeName, target))
		}
		b.WriteString("\t}\n")
	}

	fmt.Fprintf(b, "\treturn nil, fmt.Errorf(\"%s: unsupported locale %%q\", locale)\n", strings.ToLower(c.TypeName))
	b.WriteString("}\n")
}

// returnStatement renders one method body. Parameterless bodies and stubs
// come out as plain literals; bodies referencing parameters become a
// fmt.Sprintf with one argument per reference, repeats included.
func returnStatement(m gen.Method, a gen.Accessor) string {
	if m.Stub {
		return "return " + strconv.Quote(gen.StubText)
	}

	types := make(map[string]gen.ParamType, len(a.Params))
	for _, p := range a.Params {
		types[p.Name] = p.Type
	}

	var format, raw strings.Builder
	var args []string
	for _, seg := range m.Body {
		if seg.Param == "" {
			raw.WriteString(seg.Text)
			format.WriteString(strings.ReplaceAll(seg.Text, "%", "%%"))
			continue
		}
		format.WriteString(verbFor(types[seg.Param]))
		args = append(args, seg.Param)
	}
	if len(args) == 0 {
		return "return " + strconv.Quote(raw.String())
	}
	return fmt.Sprintf("return fmt.Sprintf(%s, %s)", strconv.Quote(format.String()), strings.Join(args, ", "))
}

func signature(params []gen.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + typeFor(p.Type)
	}
	return strings.Join(parts, ", ")
}

func typeFor(t gen.ParamType) string {
	switch t {
	case gen.ParamString:
		return "string"
	case gen.ParamInt:
		return "int"
	case gen.ParamDouble, gen.ParamNum:
		return "float64"
	}
	return "any"
}

func verbFor(t gen.ParamType) string {
	switch t {
	case gen.ParamString:
		return "%s"
	case gen.ParamInt:
		return "%d"
	case gen.ParamDouble, gen.ParamNum:
		return "%g"
	}
	return "%v"
}

func methodName(a gen.Accessor) string {
	var b strings.Builder
	for _, w := range a.Words {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func implName(typeName string, target gen.LocaleTarget) string {
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
