package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	noColor   bool
	storePath string
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Read and write registry values by key path",
	Long: `regctl reads and writes values in a hierarchical registry store addressed
by fully-qualified key paths such as "HKEY_CURRENT_USER\Software\MyApp".

By default it targets the platform registry (the live Windows registry on
Windows, a process-local store elsewhere). Pass --store to operate on a
portable file-backed registry database instead.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&storePath, "store", "", "Path to a file-backed registry database (default: platform registry)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// openFacade returns the facade selected by --store plus a cleanup func.
func openFacade() (*registry.Facade, func(), error) {
	if storePath == "" {
		return registry.Default(), func() {}, nil
	}
	printVerbose("Opening registry store: %s\n", storePath)
	store, err := registry.OpenStore(storePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store %s: %w", storePath, err)
	}
	return registry.New(store, registry.Options{}), func() { store.Close() }, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
