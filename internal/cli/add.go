package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addDescription string

var addCmd = &cobra.Command{
	Use:   "add <key> [value]",
	Short: "Add a key to every locale, authored in the source locale",
	Long: `Adds a key to the canonical set. Every locale receives the key; the value
goes into the source locale, other locales start untranslated. With no value
argument the command prompts for one.

Examples:
  intl-cli add greeting "Hi {name}" --description "Greets the signed-in user"
  intl-cli add farewell`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "description", "", "translator-facing description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ws, set, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	if err := ensureSourceLocale(ws, set); err != nil {
		return err
	}

	key := args[0]
	source := ws.Config().SourceLocale

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		value, err = prompter.Input(cmd.Context(), tr("prompt-value", map[string]any{
			"Key":    key,
			"Locale": source,
		}))
		if err != nil {
			return err
		}
	}

	if err := set.AddKey(key, source, value, addDescription); err != nil {
		return err
	}
	if err := ws.Flush(cmd.Context(), set); err != nil {
		return err
	}
	fmt.Println(tr("key-added", map[string]any{"Key": key, "Locale": source}))
	return nil
}
