package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Cross-check values, placeholders, and descriptions",
	Long: `Reports every place where the documents disagree with their metadata:
tokens without a declared placeholder, placeholders no value references,
and descriptions that diverge between locales. Exits non-zero when
problems are found.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	_, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}

	problems := set.Lint()
	if len(problems) == 0 {
		fmt.Println(tr("lint-clean", nil))
		return nil
	}
	for _, p := range problems {
		fmt.Printf("  %s\n", p)
	}
	return errors.New(trn("lint-problems", len(problems), nil))
}
