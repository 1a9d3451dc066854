package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getDefault string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getDefault, "default", "", "Value returned when the key or value is missing")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Get a registry value",
		Long: `The get command reads a value at the given key path. A missing key or
value prints the default instead of failing.

Example:
  regctl get "HKEY_CURRENT_USER\Software\MyApp" "Version"
  regctl get "HKEY_CURRENT_USER\Software\MyApp" "Version" --default "unset"
  regctl get --store app.db "HKEY_LOCAL_MACHINE\SOFTWARE\App" "Retries"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	keyPath := args[0]
	valueName := args[1]

	f, cleanup, err := openFacade()
	if err != nil {
		return err
	}
	defer cleanup()

	v, err := f.GetValue(keyPath, valueName, getDefault)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":  keyPath,
			"name":  valueName,
			"value": v,
		})
	}

	printInfo("%v\n", v)
	return nil
}
