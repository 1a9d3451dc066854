package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "sz", "Value type (sz, expand_sz, multi_sz, dword, qword, binary)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <name> <value>",
		Short: "Set a registry value",
		Long: `The set command writes a value at the given key path, creating the key
chain if it does not exist yet.

Example:
  regctl set "HKEY_CURRENT_USER\Software\MyApp" "Version" "1.0.0"
  regctl set "HKEY_CURRENT_USER\Software\MyApp" "Enabled" 1 --type dword
  regctl set "HKEY_CURRENT_USER\Software\MyApp" "Data" "0102aa" --type binary
  regctl set "HKEY_CURRENT_USER\Software\MyApp" "Paths" "a,b,c" --type multi_sz`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	keyPath := args[0]
	valueName := args[1]
	valueStr := args[2]

	value, kind, err := parseValueArg(valueStr, setType)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}

	f, cleanup, err := openFacade()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := f.SetValue(keyPath, valueName, value, kind); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":    keyPath,
			"name":    valueName,
			"type":    kind.String(),
			"success": true,
		})
	}

	printInfo("%s %s = %v (%s)\n",
		renderSuccess("✓"), renderKey(keyPath+`\`+valueName), value, renderType(kind.String()))
	return nil
}

// parseValueArg converts a CLI value string into a Go value and registry type.
func parseValueArg(valueStr, typeStr string) (interface{}, registry.RegType, error) {
	switch strings.ToLower(typeStr) {
	case "sz", "reg_sz":
		return valueStr, registry.REG_SZ, nil

	case "expand_sz", "reg_expand_sz":
		return valueStr, registry.REG_EXPAND_SZ, nil

	case "multi_sz", "reg_multi_sz":
		return strings.Split(valueStr, ","), registry.REG_MULTI_SZ, nil

	case "dword", "reg_dword":
		val, err := strconv.ParseUint(valueStr, 0, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid DWORD value: %w", err)
		}
		return uint32(val), registry.REG_DWORD, nil

	case "qword", "reg_qword":
		val, err := strconv.ParseUint(valueStr, 0, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid QWORD value: %w", err)
		}
		return val, registry.REG_QWORD, nil

	case "binary", "reg_binary":
		s := strings.TrimPrefix(valueStr, "0x")
		s = strings.NewReplacer(" ", "", ",", "", ":", "").Replace(s)
		data, err := hex.DecodeString(s)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid BINARY value: %w", err)
		}
		return data, registry.REG_BINARY, nil

	default:
		return nil, 0, fmt.Errorf("unsupported value type: %s", typeStr)
	}
}
