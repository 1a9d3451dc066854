//go:build windows

// Package winreg implements the registry backend over the live Windows
// registry via golang.org/x/sys/windows/registry.
//
// Subkeys opened with OpenSubKey carry read access; CreateSubKey grants
// write access. The configured view (WOW64) is applied to every subkey
// open/create beneath a root.
package winreg

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/joshuapare/regkit/pkg/types"
)

// Backend opens keys in the live Windows registry.
type Backend struct{}

var _ types.Backend = (*Backend)(nil)

// New returns a live-registry backend.
func New() *Backend { return &Backend{} }

// OpenBaseKey returns a handle to a predefined root key. Predefined handles
// are process-lifetime pseudo-handles: Close on them is a no-op.
func (b *Backend) OpenBaseKey(h types.Hive, v types.View) (types.Key, error) {
	var base registry.Key
	switch h {
	case types.HiveClassesRoot:
		base = registry.CLASSES_ROOT
	case types.HiveCurrentUser:
		base = registry.CURRENT_USER
	case types.HiveLocalMachine:
		base = registry.LOCAL_MACHINE
	case types.HiveUsers:
		base = registry.USERS
	case types.HivePerformanceData:
		base = registry.PERFORMANCE_DATA
	case types.HiveCurrentConfig:
		base = registry.CURRENT_CONFIG
	default:
		return nil, &types.Error{Kind: types.ErrKindInput, Msg: "unknown hive " + h.String()}
	}
	return &Key{k: base, view: v, predefined: true}, nil
}

// Close releases the backend. Predefined handles need no teardown.
func (b *Backend) Close() error { return nil }

// Key wraps an open registry.Key.
type Key struct {
	k          registry.Key
	view       types.View
	predefined bool
	closed     bool
}

var _ types.Key = (*Key)(nil)

func (k *Key) viewFlag() uint32 {
	switch k.view {
	case types.View32:
		return registry.WOW64_32KEY
	case types.View64:
		return registry.WOW64_64KEY
	default:
		return 0
	}
}

// OpenSubKey opens an existing subkey with read access.
func (k *Key) OpenSubKey(path string) (types.Key, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	sub, err := registry.OpenKey(k.k, path, registry.READ|k.viewFlag())
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("open subkey %q: %w", path, err)
	}
	return &Key{k: sub, view: k.view}, nil
}

// CreateSubKey opens the subkey with write access, creating the full chain
// as needed. RegCreateKeyEx is idempotent for existing keys.
func (k *Key) CreateSubKey(path string) (types.Key, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	sub, _, err := registry.CreateKey(k.k, path, registry.ALL_ACCESS|k.viewFlag())
	if err != nil {
		return nil, fmt.Errorf("create subkey %q: %w", path, err)
	}
	return &Key{k: sub, view: k.view}, nil
}

// GetValue returns the named value's declared type and raw bytes.
func (k *Key) GetValue(name string) (types.Value, error) {
	if k.closed {
		return types.Value{}, types.ErrKeyClosed
	}
	// First call sizes the buffer; the value can grow between the two calls,
	// so retry while the buffer comes back short.
	n, _, err := k.k.GetValue(name, nil)
	for err == nil {
		buf := make([]byte, n)
		var valtype uint32
		n, valtype, err = k.k.GetValue(name, buf)
		if err == nil {
			return types.Value{Type: types.RegType(valtype), Data: buf[:n]}, nil
		}
		if errors.Is(err, registry.ErrShortBuffer) {
			err = nil
		}
	}
	if errors.Is(err, registry.ErrNotExist) {
		return types.Value{}, types.ErrNotFound
	}
	return types.Value{}, fmt.Errorf("get value %q: %w", name, err)
}

// SetValue writes the raw bytes with the declared type via RegSetValueEx,
// preserving types the typed setters don't cover.
func (k *Key) SetValue(name string, v types.Value) error {
	if k.closed {
		return types.ErrKeyClosed
	}
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("set value %q: %w", name, err)
	}
	var dataPtr *byte
	if len(v.Data) > 0 {
		dataPtr = &v.Data[0]
	}
	err = windows.RegSetValueEx(
		windows.Handle(k.k), namePtr, 0, uint32(v.Type), dataPtr, uint32(len(v.Data)))
	if err != nil {
		return fmt.Errorf("set value %q: %w", name, err)
	}
	return nil
}

// DeleteValue removes the named value.
func (k *Key) DeleteValue(name string) error {
	if k.closed {
		return types.ErrKeyClosed
	}
	if err := k.k.DeleteValue(name); err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return types.ErrNotFound
		}
		return fmt.Errorf("delete value %q: %w", name, err)
	}
	return nil
}

// SubkeyNames lists direct child key names.
func (k *Key) SubkeyNames() ([]string, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	names, err := k.k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("read subkey names: %w", err)
	}
	return names, nil
}

// ValueNames lists value names at this key.
func (k *Key) ValueNames() ([]string, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	names, err := k.k.ReadValueNames(-1)
	if err != nil {
		return nil, fmt.Errorf("read value names: %w", err)
	}
	return names, nil
}

// Close releases the handle. Predefined root handles are not closed.
func (k *Key) Close() error {
	if k.closed {
		return types.ErrKeyClosed
	}
	k.closed = true
	if k.predefined {
		return nil
	}
	return k.k.Close()
}
