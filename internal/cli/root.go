// Package cli implements the intl-cli command tree. Commands are thin: they
// load the workspace, call one catalog or pipeline operation, flush, and
// print a localized outcome. The catalog itself never prints.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-intl/pkg/catalog"
	"github.com/goliatone/go-intl/pkg/workspace"
)

var (
	cfgFile string
	cliLang string
)

var rootCmd = &cobra.Command{
	Use:   "intl-cli",
	Short: "Manage aligned translation documents",
	Long: `intl-cli keeps a workspace of per-locale translation documents
structurally aligned: one canonical key set, shared descriptions and
placeholder metadata, per-locale values.

Documents live in the configured arb-dir and follow the ARB naming
convention (app.arb, app_en.arb, app_es.arb, ...).

Getting started:
  intl-cli init                scaffold intl.yaml and the source locale
  intl-cli add greeting "Hi"   add a key, authored in the source locale
  intl-cli locales add es      add a locale seeded with every key
  intl-cli status              per-locale coverage`,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./intl.yaml)")
	rootCmd.PersistentFlags().StringVar(&cliLang, "lang", "", "language for CLI messages (default: en)")
}

// configPath resolves the --config flag, defaulting to ./intl.yaml.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return workspace.DefaultConfigName
}

// openConfig loads the workspace configuration. A missing default file means
// defaults; an explicitly given --config must exist.
func openConfig() (workspace.Config, error) {
	cfg, err := workspace.LoadConfig(configPath())
	if err != nil {
		if cfgFile == "" && errors.Is(err, os.ErrNotExist) {
			return workspace.DefaultConfig(), nil
		}
		return workspace.Config{}, err
	}
	return cfg, nil
}

// openWorkspace builds the workspace and loads the catalog. Documents that
// fail to load are skipped with a warning on stderr, not a failed command.
func openWorkspace(cmd *cobra.Command) (*workspace.Workspace, *catalog.Set, error) {
	cfg, err := openConfig()
	if err != nil {
		return nil, nil, err
	}
	ws := workspace.New(cfg, workspace.WithIssueSink(printIssue))
	set, err := ws.Load(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return ws, set, nil
}

func printIssue(issue workspace.Issue) {
	fmt.Fprintln(os.Stderr, tr("document-skipped", map[string]any{
		"Location": issue.Location,
		"Error":    issue.Err.Error(),
	}))
}

// ensureSourceLocale lets editing commands work before any document exists:
// an empty catalog grows the configured source locale on first use.
func ensureSourceLocale(ws *workspace.Workspace, set *catalog.Set) error {
	if set.Len() > 0 {
		return nil
	}
	_, err := set.AddLocale(ws.Config().SourceLocale)
	return err
}
