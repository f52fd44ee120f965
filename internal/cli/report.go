package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the HTML coverage report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}

	path, err := ws.Report(cmd.Context(), set)
	if err != nil {
		return err
	}
	fmt.Println(tr("report-written", map[string]any{"Path": path}))
	return nil
}
