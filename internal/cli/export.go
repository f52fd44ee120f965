package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const defaultSheetName = "translations.csv"

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog for a translation round",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv [dest]",
	Short: "Write the catalog as a CSV sheet",
	Long: `Flattens the catalog into a spreadsheet: one row per key with its
description, one column per locale. The sheet round-trips: edit it and
feed it back with "import csv".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExportCSV,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	dest := defaultSheetName
	if len(args) == 1 {
		dest = args[0]
	}

	if err := ws.ExportCSV(cmd.Context(), set, dest); err != nil {
		return err
	}
	fmt.Println(tr("sheet-exported", map[string]any{"Path": dest}))
	return nil
}
