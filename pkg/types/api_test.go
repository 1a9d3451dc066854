package types

import (
	"errors"
	"testing"
)

func TestRegType_String(t *testing.T) {
	tests := []struct {
		name     string
		regType  RegType
		expected string
	}{
		{name: "REG_NONE", regType: REG_NONE, expected: "REG_NONE"},
		{name: "REG_SZ", regType: REG_SZ, expected: "REG_SZ"},
		{name: "REG_EXPAND_SZ", regType: REG_EXPAND_SZ, expected: "REG_EXPAND_SZ"},
		{name: "REG_BINARY", regType: REG_BINARY, expected: "REG_BINARY"},
		{name: "REG_DWORD", regType: REG_DWORD, expected: "REG_DWORD"},
		{name: "REG_DWORD_BE", regType: REG_DWORD_BE, expected: "REG_DWORD_BE"},
		{name: "REG_LINK", regType: REG_LINK, expected: "REG_LINK"},
		{name: "REG_MULTI_SZ", regType: REG_MULTI_SZ, expected: "REG_MULTI_SZ"},
		{name: "REG_QWORD", regType: REG_QWORD, expected: "REG_QWORD"},
		{name: "unknown type", regType: RegType(200), expected: "UNKNOWN_TYPE_200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.regType.String(); got != tt.expected {
				t.Errorf("RegType.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestHive_String(t *testing.T) {
	tests := []struct {
		name     string
		hive     Hive
		expected string
	}{
		{name: "classes root", hive: HiveClassesRoot, expected: "HKEY_CLASSES_ROOT"},
		{name: "current user", hive: HiveCurrentUser, expected: "HKEY_CURRENT_USER"},
		{name: "local machine", hive: HiveLocalMachine, expected: "HKEY_LOCAL_MACHINE"},
		{name: "users", hive: HiveUsers, expected: "HKEY_USERS"},
		{name: "performance data", hive: HivePerformanceData, expected: "HKEY_PERFORMANCE_DATA"},
		{name: "current config", hive: HiveCurrentConfig, expected: "HKEY_CURRENT_CONFIG"},
		{name: "unknown", hive: Hive(42), expected: "UNKNOWN_HIVE_42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hive.String(); got != tt.expected {
				t.Errorf("Hive.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_FormatAndUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &Error{Kind: ErrKindState, Msg: "operation failed", Err: cause}

	if got := err.Error(); got != "operation failed: underlying" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	bare := &Error{Kind: ErrKindInput, Msg: "bad input"}
	if got := bare.Error(); got != "bad input" {
		t.Errorf("Error() = %q", got)
	}

	var nilErr *Error
	if got := nilErr.Error(); got != "<nil>" {
		t.Errorf("nil Error() = %q", got)
	}
}

func TestSentinels_HaveDistinctKinds(t *testing.T) {
	if ErrKeyNameEmpty.Kind != ErrKindInput {
		t.Error("ErrKeyNameEmpty should be an input error")
	}
	if ErrInvalidKeyName.Kind != ErrKindBadName {
		t.Error("ErrInvalidKeyName should be a bad-name error")
	}
	if ErrNotFound.Kind != ErrKindNotFound {
		t.Error("ErrNotFound should be a not-found error")
	}
}
