package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInput    ErrKind = iota // absent/empty input where a key path was required
	ErrKindBadName                 // key path names no well-known registry root
	ErrKindNotFound                // missing key/value
	ErrKindType                    // value data doesn't match the requested RegType
	ErrKindState                   // invalid operation for current state (e.g., closed handle)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrKeyNameEmpty indicates the key path was empty where one was required.
	ErrKeyNameEmpty = &Error{Kind: ErrKindInput, Msg: "key name is empty"}
	// ErrInvalidKeyName indicates the key path's root segment matches no
	// well-known registry root.
	ErrInvalidKeyName = &Error{Kind: ErrKindBadName, Msg: "key name does not start with a valid registry root"}
	// ErrNotFound indicates a missing key or value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrTypeMismatch indicates value data incompatible with the requested type.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "registry value has different type"}
	// ErrKeyClosed indicates an operation on a handle that was already released.
	ErrKeyClosed = &Error{Kind: ErrKindState, Msg: "registry key is closed"}
)

// -----------------------------------------------------------------------------
// Roots & Views
// -----------------------------------------------------------------------------

// Hive identifies one of the six well-known registry roots.
type Hive int

const (
	HiveClassesRoot Hive = iota
	HiveCurrentUser
	HiveLocalMachine
	HiveUsers
	HivePerformanceData
	HiveCurrentConfig

	// HiveCount is the number of well-known roots.
	HiveCount = int(HiveCurrentConfig) + 1
)

// Canonical root key names as spelled by the platform.
const (
	NameClassesRoot     = "HKEY_CLASSES_ROOT"
	NameCurrentUser     = "HKEY_CURRENT_USER"
	NameLocalMachine    = "HKEY_LOCAL_MACHINE"
	NameUsers           = "HKEY_USERS"
	NamePerformanceData = "HKEY_PERFORMANCE_DATA"
	NameCurrentConfig   = "HKEY_CURRENT_CONFIG"
)

// String returns the canonical root key name (e.g., "HKEY_LOCAL_MACHINE").
func (h Hive) String() string {
	switch h {
	case HiveClassesRoot:
		return NameClassesRoot
	case HiveCurrentUser:
		return NameCurrentUser
	case HiveLocalMachine:
		return NameLocalMachine
	case HiveUsers:
		return NameUsers
	case HivePerformanceData:
		return NamePerformanceData
	case HiveCurrentConfig:
		return NameCurrentConfig
	default:
		return fmt.Sprintf("UNKNOWN_HIVE_%d", int(h))
	}
}

// View selects the 32-bit or 64-bit registry view on 64-bit platforms.
// ViewDefault uses the process's native view.
type View int

const (
	ViewDefault View = iota
	View32
	View64
)

// String implements the Stringer interface for View.
func (v View) String() string {
	switch v {
	case View32:
		return "32-bit"
	case View64:
		return "64-bit"
	default:
		return "default"
	}
}

// -----------------------------------------------------------------------------
// Value Types
// -----------------------------------------------------------------------------

// RegType enumerates Windows registry value types.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_BE                   RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
)

// String implements the Stringer interface for RegType.
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// Value is a typed registry value payload as stored: the declared RegType plus
// the raw data bytes (little-endian integers, UTF-16LE string kinds).
type Value struct {
	Type RegType
	Data []byte
}

// -----------------------------------------------------------------------------
// Backend capability (the surrounding key-handle type)
// -----------------------------------------------------------------------------

// Key is an open handle to a registry key. Handles returned by OpenSubKey and
// CreateSubKey are owned by the caller and must be released with Close; root
// handles returned by Backend.OpenBaseKey live for the process and are never
// closed by this library.
//
// Implementations must support independent calls from multiple goroutines;
// a single Key is not required to support concurrent mutation.
type Key interface {
	// OpenSubKey opens an existing subkey beneath this key. The path may
	// contain further backslash-separated segments. Returns ErrNotFound if
	// the subkey does not exist; a missing key must not fail any other way.
	OpenSubKey(path string) (Key, error)

	// CreateSubKey opens the subkey, creating it and any missing ancestors
	// if necessary. Creation is idempotent.
	CreateSubKey(path string) (Key, error)

	// GetValue returns the named value. Use "" for the default value.
	// Returns ErrNotFound if the value does not exist.
	GetValue(name string) (Value, error)

	// SetValue sets or replaces the named value.
	SetValue(name string, v Value) error

	// DeleteValue removes the named value. Returns ErrNotFound if absent.
	DeleteValue(name string) error

	// SubkeyNames lists the names of the direct child keys.
	SubkeyNames() ([]string, error)

	// ValueNames lists the names of the values stored at this key.
	ValueNames() ([]string, error)

	// Close releases the handle. Closing an already-closed handle returns
	// ErrKeyClosed; the façade guarantees each handle is closed exactly once.
	Close() error
}

// Backend provides access to the well-known registry roots. It is the seam
// between the path-resolution façade and an actual store (the live Windows
// registry, an in-memory tree, or a file-backed database).
type Backend interface {
	// OpenBaseKey returns a handle to a well-known root under the given view.
	// Root handles are process-lifetime: callers never close them.
	OpenBaseKey(h Hive, v View) (Key, error)

	// Close releases resources held by the backend itself (not the root
	// handles, which share the backend's lifetime).
	Close() error
}
