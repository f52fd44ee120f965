package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intl/pkg/gen"
)

// DefaultConfigName is the file name pipelines look for.
const DefaultConfigName = "intl.yaml"

// Config mirrors intl.yaml. Zero values mean "use the default"; defaults are
// applied on load.
type Config struct {
	// ARBDir holds the translation documents.
	ARBDir string `yaml:"arb-dir"`
	// Pattern globs documents inside ARBDir.
	Pattern string `yaml:"pattern"`
	// Prefix is the file-name prefix locale derivation strips.
	Prefix string `yaml:"prefix"`
	// SourceLocale is the locale new keys are authored in.
	SourceLocale string `yaml:"source-locale"`

	Generator GeneratorConfig `yaml:"generator"`
	Report    ReportConfig    `yaml:"report"`
}

// GeneratorConfig selects and parameterises a code generation backend.
type GeneratorConfig struct {
	Backend  string `yaml:"backend"`
	Package  string `yaml:"package"`
	TypeName string `yaml:"type-name"`
	Output   string `yaml:"output"`
}

// ReportConfig controls the HTML coverage report.
type ReportConfig struct {
	Output string `yaml:"output"`
	Title  string `yaml:"title"`
}

// DefaultConfig returns the configuration used when intl.yaml is absent or
// leaves fields unset.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.ARBDir == "" {
		c.ARBDir = "locales"
	}
	if c.Pattern == "" {
		c.Pattern = "*.arb"
	}
	if c.Prefix == "" {
		c.Prefix = "app"
	}
	if c.SourceLocale == "" {
		c.SourceLocale = "en"
	}
	if c.Generator.Backend == "" {
		c.Generator.Backend = "golang"
	}
	if c.Generator.Package == "" {
		c.Generator.Package = "messages"
	}
	if c.Generator.TypeName == "" {
		c.Generator.TypeName = gen.DefaultTypeName
	}
	if c.Report.Output == "" {
		c.Report.Output = "coverage.html"
	}
	return c
}

// ParseConfig strictly decodes configuration bytes. Unknown fields are
// rejected so typos surface instead of silently falling back to defaults.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("workspace: parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadConfig reads path and parses it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("workspace: read config: %w", err)
	}
	return ParseConfig(data)
}

// StarterConfig is the commented intl.yaml scaffold the init command writes.
const StarterConfig = `# go-intl workspace configuration.
arb-dir: locales
pattern: "*.arb"
prefix: app
source-locale: en
generator:
  backend: golang
  package: messages
  type-name: Messages
  output: messages/messages.go
report:
  output: coverage.html
`
