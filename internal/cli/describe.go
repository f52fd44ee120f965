package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <key> <description>",
	Short: "Set the shared description of a key",
	Long: `Writes the translator-facing description of a key into every locale.
Descriptions are canonical metadata: one text shared by all documents.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	key := args[0]
	description := strings.Join(args[1:], " ")

	if err := set.UpdateDescription(key, description); err != nil {
		return err
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(tr("description-set", map[string]any{"Key": key}))
	return nil
}
