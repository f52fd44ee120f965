package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-intl/pkg/catalog"
	"github.com/goliatone/go-intl/pkg/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold intl.yaml and the source-locale document",
	Long: `Writes a commented intl.yaml next to you and seeds the arb-dir with an
empty document for the source locale. Refuses to overwrite an existing
configuration.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if _, err := os.Stat(path); err == nil {
		return errors.New(tr("config-exists", map[string]any{"Config": path}))
	}
	if err := os.WriteFile(path, []byte(workspace.StarterConfig), 0o644); err != nil {
		return err
	}

	cfg, err := workspace.ParseConfig([]byte(workspace.StarterConfig))
	if err != nil {
		return err
	}
	ws := workspace.New(cfg, workspace.WithIssueSink(printIssue))
	set, err := catalog.NewSet()
	if err != nil {
		return err
	}
	if _, err := set.AddLocale(cfg.SourceLocale); err != nil {
		return err
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}

	fmt.Println(tr("workspace-initialised", map[string]any{"Config": path}))
	return nil
}
