package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Merge a returned translation round",
}

var importCSVCmd = &cobra.Command{
	Use:   "csv <path|url>",
	Short: "Merge an edited CSV sheet back into the catalog",
	Long: `Merges a sheet produced by "export csv" back into the documents. The
sheet can live on disk or behind an http(s) URL. Only cells that actually
changed touch their documents; keys the sheet does not mention are left
alone.

Examples:
  intl-cli import csv translations.csv
  intl-cli import csv https://sheets.example.com/round-4.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImportCSV,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importCSVCmd)
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	location := args[0]

	if err := ws.ImportCSV(cmd.Context(), set, location); err != nil {
		return err
	}
	changed := len(set.Dirty())
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(trn("sheet-imported", changed, map[string]any{"Path": location}))
	return nil
}
