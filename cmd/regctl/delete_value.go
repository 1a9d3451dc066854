package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteValueCmd())
}

func newDeleteValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-value <path> <name>",
		Short: "Delete a registry value",
		Long: `The delete-value command removes a named value from the given key path.

Example:
  regctl delete-value "HKEY_CURRENT_USER\Software\MyApp" "Obsolete"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args)
		},
	}
	return cmd
}

func runDeleteValue(args []string) error {
	keyPath := args[0]
	valueName := args[1]

	f, cleanup, err := openFacade()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := f.DeleteValue(keyPath, valueName); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":    keyPath,
			"name":    valueName,
			"deleted": true,
		})
	}

	printInfo("%s deleted %s\n", renderSuccess("✓"), renderKey(keyPath+`\`+valueName))
	return nil
}
