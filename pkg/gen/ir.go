// Package gen turns a catalog set into strongly-typed accessor source. The
// set is first lowered into a language-neutral Contract: one Accessor per
// canonical key describing name, parameters, and documentation, plus one
// LocaleTarget per document holding pre-segmented method bodies. Backends
// then render the Contract into concrete source text, so everything about
// naming, parameter binding, and stubbing is decided once and tested
// independently of any target language's syntax.
package gen

import "context"

// StubText is the body emitted for a locale that lacks a translation. It is
// deliberately loud: shipping it is a bug the catalog's coverage tooling
// already points at.
const StubText = "TODO"

// ParamType is the language-neutral parameter type vocabulary. Backends map
// these onto their own type systems.
type ParamType string

const (
	ParamString ParamType = "String"
	ParamInt    ParamType = "int"
	ParamDouble ParamType = "double"
	ParamNum    ParamType = "num"
	// ParamObject is the catch-all for undeclared or unrecognized
	// placeholder types; backends render it as their loosest type.
	ParamObject ParamType = "Object"
)

// Param is one accessor parameter, named after the placeholder it binds.
type Param struct {
	Name string
	Type ParamType
}

// Accessor is the per-key slice of the contract: the mangled name as words
// (backends join them per their casing convention), the canonical
// description, and the parameter list shared by every locale's
// implementation.
type Accessor struct {
	Key         string
	Words       []string
	Description string
	Params      []Param
}

// HasParams reports whether the accessor takes arguments.
func (a Accessor) HasParams() bool { return len(a.Params) > 0 }

// Segment is one piece of a method body: literal text when Param is empty,
// otherwise a reference to the accessor parameter of that name.
type Segment struct {
	Text  string
	Param string
}

// Method is one locale's implementation of an accessor. A stub method has no
// body; backends emit StubText instead.
type Method struct {
	Key  string
	Body []Segment
	Stub bool
}

// LocaleTarget is one generated implementation: a locale tag, its split
// language and region, and a method per accessor in accessor order.
type LocaleTarget struct {
	Locale   string
	Language string
	Region   string
	Methods  []Method
}

// Contract is the full generation input: the accessor surface plus every
// locale implementation, in set iteration order.
type Contract struct {
	TypeName  string
	Accessors []Accessor
	Locales   []LocaleTarget
}

// Options carries host-level generation settings shared by all backends.
type Options struct {
	// TypeName names the generated contract type. Empty means "Messages".
	TypeName string
	// Package is the package, module, or library name for backends that
	// declare one.
	Package string
}

// Backend renders a Contract into source text for one target language.
// Implementations must be deterministic: the same contract and options
// always produce the same bytes.
type Backend interface {
	Name() string
	Filename(base string) string
	Generate(ctx context.Context, contract Contract, opts Options) ([]byte, error)
}
