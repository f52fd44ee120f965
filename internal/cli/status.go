package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-intl/pkg/catalog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-locale translation coverage",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		fmt.Println(tr("status-empty", nil))
		return nil
	}

	for _, cov := range set.Coverage() {
		marker := "[+]"
		if cov.Translated < cov.Total {
			marker = "[-]"
		}
		label := fmt.Sprintf("%s (%s)", catalog.DisplayName(cov.Locale), cov.Locale)
		fmt.Printf("  %s %-28s %3d%%  %d/%d\n", marker, label, cov.Percent(), cov.Translated, cov.Total)
	}
	return nil
}
