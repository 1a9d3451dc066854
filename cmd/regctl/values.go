package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <path>",
		Short: "List values of a registry key",
		Long: `The values command lists the value names stored at the given key path.

Example:
  regctl values "HKEY_CURRENT_USER\Software\MyApp"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

func runValues(args []string) error {
	keyPath := args[0]

	f, cleanup, err := openFacade()
	if err != nil {
		return err
	}
	defer cleanup()

	names, err := f.ValueNames(keyPath)
	if err != nil {
		return fmt.Errorf("failed to list values: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":   keyPath,
			"values": names,
		})
	}

	for _, name := range names {
		printInfo("%s\n", name)
	}
	printVerbose("\n%d value(s)\n", len(names))
	return nil
}
