package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <path>",
		Short: "List subkeys of a registry key",
		Long: `The keys command lists the direct child keys of the given key path.

Example:
  regctl keys "HKEY_CURRENT_USER\Software"
  regctl keys --store app.db "HKEY_LOCAL_MACHINE\SOFTWARE"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	keyPath := args[0]

	f, cleanup, err := openFacade()
	if err != nil {
		return err
	}
	defer cleanup()

	names, err := f.SubkeyNames(keyPath)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path": keyPath,
			"keys": names,
		})
	}

	for _, name := range names {
		printInfo("%s\n", name)
	}
	printVerbose("\n%d key(s)\n", len(names))
	return nil
}
