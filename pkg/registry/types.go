package registry

import "github.com/joshuapare/regkit/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import pkg/registry

// Core types.
type (
	Hive    = types.Hive
	View    = types.View
	RegType = types.RegType
	Value   = types.Value
)

// Capability interfaces for custom backends.
type (
	Key     = types.Key
	Backend = types.Backend
)

// Hive constants.
const (
	ClassesRoot     = types.HiveClassesRoot
	CurrentUser     = types.HiveCurrentUser
	LocalMachine    = types.HiveLocalMachine
	Users           = types.HiveUsers
	PerformanceData = types.HivePerformanceData
	CurrentConfig   = types.HiveCurrentConfig
)

// View constants.
const (
	ViewDefault = types.ViewDefault
	View32      = types.View32
	View64      = types.View64
)

// Registry type constants.
const (
	REG_NONE      = types.REG_NONE
	REG_SZ        = types.REG_SZ
	REG_EXPAND_SZ = types.REG_EXPAND_SZ
	REG_BINARY    = types.REG_BINARY
	REG_DWORD     = types.REG_DWORD
	REG_DWORD_BE  = types.REG_DWORD_BE
	REG_LINK      = types.REG_LINK
	REG_MULTI_SZ  = types.REG_MULTI_SZ
	REG_QWORD     = types.REG_QWORD
)

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindInput    = types.ErrKindInput
	ErrKindBadName  = types.ErrKindBadName
	ErrKindNotFound = types.ErrKindNotFound
	ErrKindType     = types.ErrKindType
	ErrKindState    = types.ErrKindState
)

// Common error sentinels.
var (
	ErrKeyNameEmpty   = types.ErrKeyNameEmpty
	ErrInvalidKeyName = types.ErrInvalidKeyName
	ErrNotFound       = types.ErrNotFound
	ErrTypeMismatch   = types.ErrTypeMismatch
	ErrKeyClosed      = types.ErrKeyClosed
)
