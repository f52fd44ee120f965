package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <locale> <key> <value>",
	Short: "Set one locale's value for a key",
	Long: `Overwrites the value of a key in a single locale. Values are per-locale,
so nothing propagates to other documents.

Examples:
  intl-cli set es greeting "Hola {name}"
  intl-cli set es farewell Hasta luego`,
	Args: cobra.MinimumNArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	locale, key := args[0], args[1]
	value := strings.Join(args[2:], " ")

	if err := set.UpdateValue(locale, key, value); err != nil {
		return err
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(tr("value-set", map[string]any{"Key": key, "Locale": locale}))
	return nil
}
