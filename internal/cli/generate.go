package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateBackend string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate typed accessor code from the catalog",
	Long: `Builds the accessor contract from the catalog and renders it with a code
generation backend. The backend, package, and output path come from
intl.yaml; --backend overrides the backend for one run.

Examples:
  intl-cli generate
  intl-cli generate --backend dart`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateBackend, "backend", "", "code generation backend (default: from config)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}

	var path string
	if generateBackend == "" {
		path, err = ws.Generate(cmd.Context(), set)
	} else {
		path, err = ws.GenerateWith(cmd.Context(), set, generateBackend)
	}
	if err != nil {
		return err
	}
	fmt.Println(tr("accessors-generated", map[string]any{"Path": path}))
	return nil
}
