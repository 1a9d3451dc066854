package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/registry"
)

func TestParseValueArg(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		typeStr  string
		expected interface{}
		kind     registry.RegType
	}{
		{
			name:     "string value",
			value:    "hello world",
			typeStr:  "sz",
			expected: "hello world",
			kind:     registry.REG_SZ,
		},
		{
			name:     "expandable string",
			value:    "%SystemRoot%\\system32",
			typeStr:  "expand_sz",
			expected: "%SystemRoot%\\system32",
			kind:     registry.REG_EXPAND_SZ,
		},
		{
			name:     "multi string",
			value:    "a,b,c",
			typeStr:  "multi_sz",
			expected: []string{"a", "b", "c"},
			kind:     registry.REG_MULTI_SZ,
		},
		{
			name:     "dword decimal",
			value:    "42",
			typeStr:  "dword",
			expected: uint32(42),
			kind:     registry.REG_DWORD,
		},
		{
			name:     "dword hex",
			value:    "0xff",
			typeStr:  "dword",
			expected: uint32(255),
			kind:     registry.REG_DWORD,
		},
		{
			name:     "qword",
			value:    "1099511627776",
			typeStr:  "qword",
			expected: uint64(1099511627776),
			kind:     registry.REG_QWORD,
		},
		{
			name:     "binary plain hex",
			value:    "0102aa",
			typeStr:  "binary",
			expected: []byte{0x01, 0x02, 0xaa},
			kind:     registry.REG_BINARY,
		},
		{
			name:     "binary with separators",
			value:    "0x01,02:aa",
			typeStr:  "binary",
			expected: []byte{0x01, 0x02, 0xaa},
			kind:     registry.REG_BINARY,
		},
		{
			name:     "reg_ prefixed type name",
			value:    "x",
			typeStr:  "REG_SZ",
			expected: "x",
			kind:     registry.REG_SZ,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, kind, err := parseValueArg(tt.value, tt.typeStr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestParseValueArgErrors(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		typeStr string
	}{
		{name: "unknown type", value: "x", typeStr: "blob"},
		{name: "dword not a number", value: "abc", typeStr: "dword"},
		{name: "dword overflow", value: "4294967296", typeStr: "dword"},
		{name: "qword not a number", value: "abc", typeStr: "qword"},
		{name: "binary odd length", value: "abc", typeStr: "binary"},
		{name: "binary not hex", value: "zz", typeStr: "binary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseValueArg(tt.value, tt.typeStr)
			require.Error(t, err)
		})
	}
}
