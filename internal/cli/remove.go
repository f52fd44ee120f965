package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <key>",
	Aliases: []string{"rm"},
	Short:   "Remove a key from every locale",
	Long: `Removes a key and its metadata from every locale document. Asks for
confirmation first; --yes skips the prompt for scripted use.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	key := args[0]

	if !removeYes {
		ok, err := prompter.Confirm(cmd.Context(), tr("confirm-remove", map[string]any{
			"Key":   key,
			"Count": set.Len(),
		}))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(tr("remove-cancelled", nil))
			return nil
		}
	}

	if err := set.DeleteKey(key); err != nil {
		return err
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(tr("key-removed", map[string]any{"Key": key}))
	return nil
}
