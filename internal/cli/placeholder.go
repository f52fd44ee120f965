package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-intl/pkg/catalog"
)

var (
	placeholderType    string
	placeholderFormat  string
	placeholderExample string
	placeholderDesc    string
)

var placeholderCmd = &cobra.Command{
	Use:   "placeholder",
	Short: "Manage the placeholder metadata of a key",
	Long: `Placeholders declare the {tokens} a value interpolates. Declarations are
canonical metadata shared by every locale; the lint command cross-checks
them against the actual values.

Examples:
  intl-cli placeholder set greeting name --type String --example Ada
  intl-cli placeholder rm greeting name`,
}

var placeholderSetCmd = &cobra.Command{
	Use:   "set <key> <name>",
	Short: "Declare or update a placeholder on a key",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlaceholderSet,
}

var placeholderRmCmd = &cobra.Command{
	Use:   "rm <key> <name>",
	Short: "Remove a placeholder from a key",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlaceholderRm,
}

func init() {
	placeholderSetCmd.Flags().StringVar(&placeholderType, "type", "", "placeholder type (String, int, ...)")
	placeholderSetCmd.Flags().StringVar(&placeholderFormat, "format", "", "format hint (e.g. compactCurrency)")
	placeholderSetCmd.Flags().StringVar(&placeholderExample, "example", "", "example value for translators")
	placeholderSetCmd.Flags().StringVar(&placeholderDesc, "description", "", "what the placeholder holds")

	rootCmd.AddCommand(placeholderCmd)
	placeholderCmd.AddCommand(placeholderSetCmd)
	placeholderCmd.AddCommand(placeholderRmCmd)
}

func runPlaceholderSet(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	key, name := args[0], args[1]

	ph := catalog.Placeholder{
		Type:        placeholderType,
		Format:      placeholderFormat,
		Example:     placeholderExample,
		Description: placeholderDesc,
	}
	if err := set.UpdatePlaceholder(key, name, ph); err != nil {
		return err
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(tr("placeholder-set", map[string]any{"Key": key, "Name": name}))
	return nil
}

func runPlaceholderRm(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	key, name := args[0], args[1]

	if err := set.DeletePlaceholder(key, name); err != nil {
		return err
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(tr("placeholder-removed", map[string]any{"Key": key, "Name": name}))
	return nil
}
