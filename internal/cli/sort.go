package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort every document into canonical key order",
	Args:  cobra.NoArgs,
	RunE:  runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}

	set.SortEntries()
	changed := len(set.Dirty())
	if changed == 0 {
		fmt.Println(tr("already-sorted", nil))
		return nil
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(trn("documents-sorted", changed, nil))
	return nil
}
