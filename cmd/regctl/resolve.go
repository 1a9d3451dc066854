package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newResolveCmd())
}

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a key path into its root and subpath",
		Long: `The resolve command splits a fully-qualified key path into the
well-known root it names and the remaining subkey path, without touching
the store. Useful for checking how a path will be interpreted.

Example:
  regctl resolve "hkey_current_user\Software\MyApp"
  regctl resolve "HKEY_LOCAL_MACHINE\SOFTWARE"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args)
		},
	}
	return cmd
}

func runResolve(args []string) error {
	hive, subpath, err := registry.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"root":    hive.String(),
			"subpath": subpath,
		})
	}

	printInfo("Root:    %s\n", renderKey(hive.String()))
	printInfo("Subpath: %s\n", subpath)
	return nil
}
