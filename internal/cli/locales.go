package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-intl/pkg/catalog"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the locales in the workspace",
	Long: `Lists every locale document with its display name.

Examples:
  intl-cli locales
  intl-cli locales add pt_BR`,
	Args: cobra.NoArgs,
	RunE: runLocales,
}

var localesAddCmd = &cobra.Command{
	Use:   "add <locale>",
	Short: "Add a locale document seeded with every canonical key",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocalesAdd,
}

func init() {
	rootCmd.AddCommand(localesCmd)
	localesCmd.AddCommand(localesAddCmd)
}

func runLocales(cmd *cobra.Command, args []string) error {
	_, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		fmt.Println(tr("status-empty", nil))
		return nil
	}
	for _, locale := range set.Locales() {
		fmt.Printf("  %-10s %s\n", locale, catalog.DisplayName(locale))
	}
	return nil
}

func runLocalesAdd(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	locale := args[0]
	if _, err := set.AddLocale(locale); err != nil {
		return err
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(tr("locale-added", map[string]any{
		"Locale": locale,
		"Name":   catalog.DisplayName(locale),
	}))
	return nil
}
