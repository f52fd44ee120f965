package workspace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intl/pkg/workspace"
)

func TestParseConfig_EmptyInputMeansDefaults(t *testing.T) {
	cfg, err := workspace.ParseConfig(nil)
	if err != nil {
		t.Fatalf("parse empty config: %v", err)
	}
	if diff := cmp.Diff(workspace.DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfig_FillsUnsetFields(t *testing.T) {
	cfg, err := workspace.ParseConfig([]byte("arb-dir: translations\nsource-locale: de\n"))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.ARBDir != "translations" {
		t.Errorf("ARBDir = %q, want %q", cfg.ARBDir, "translations")
	}
	if cfg.SourceLocale != "de" {
		t.Errorf("SourceLocale = %q, want %q", cfg.SourceLocale, "de")
	}
	if cfg.Pattern != "*.arb" {
		t.Errorf("Pattern = %q, want %q", cfg.Pattern, "*.arb")
	}
	if cfg.Prefix != "app" {
		t.Errorf("Prefix = %q, want %q", cfg.Prefix, "app")
	}
	if cfg.Generator.Backend != "golang" {
		t.Errorf("Generator.Backend = %q, want %q", cfg.Generator.Backend, "golang")
	}
	if cfg.Generator.TypeName != "Messages" {
		t.Errorf("Generator.TypeName = %q, want %q", cfg.Generator.TypeName, "Messages")
	}
	if cfg.Report.Output != "coverage.html" {
		t.Errorf("Report.Output = %q, want %q", cfg.Report.Output, "coverage.html")
	}
}

func TestParseConfig_RejectsUnknownFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"top level typo", "arbdir: locales\n"},
		{"nested typo", "generator:\n  backends: golang\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := workspace.ParseConfig([]byte(tt.input))
			if err == nil {
				t.Fatal("expected an error for an unknown field")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Errorf("error %q does not mention config parsing", err)
			}
		})
	}
}

func TestParseConfig_StarterScaffoldIsValid(t *testing.T) {
	cfg, err := workspace.ParseConfig([]byte(workspace.StarterConfig))
	if err != nil {
		t.Fatalf("parse starter config: %v", err)
	}

	if cfg.Generator.Output != "messages/messages.go" {
		t.Errorf("Generator.Output = %q, want %q", cfg.Generator.Output, "messages/messages.go")
	}
	if diff := cmp.Diff(workspace.DefaultConfig().Pattern, cfg.Pattern); diff != "" {
		t.Errorf("pattern mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, workspace.DefaultConfigName)
	if err := os.WriteFile(path, []byte("prefix: shop\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := workspace.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Prefix != "shop" {
		t.Errorf("Prefix = %q, want %q", cfg.Prefix, "shop")
	}

	if _, err := workspace.LoadConfig(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
