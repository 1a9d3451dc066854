package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joshuapare/regkit/internal/valcodec"
	"github.com/joshuapare/regkit/pkg/types"
)

// Options configures a Facade.
type Options struct {
	// View selects the registry view the roots are opened against.
	// The zero value is the process-default view.
	View types.View
}

// Facade exposes path-addressed get/set operations over a backend. Key paths
// take the form "HKEY_CURRENT_USER\Software\Vendor\App": the root segment is
// resolved to a singleton root handle, the remainder is handed to the
// backend's subkey open/create, and the per-call subkey handle is released
// before the operation returns, on every path.
type Facade struct {
	roots *RootKeys
}

// New creates a Facade over the given backend.
func New(backend types.Backend, opts Options) *Facade {
	return &Facade{roots: NewRootKeys(backend, opts.View)}
}

// GetValue reads the named value at keyName, decoded to its natural Go type
// (see valcodec.Decode). A missing subkey or a missing value is not an
// error: both return defaultValue. Use "" as valueName for the key's default
// value. Resolution failures (empty or invalid keyName) are returned before
// any handle is acquired.
func (f *Facade) GetValue(keyName, valueName string, defaultValue any) (any, error) {
	hive, subpath, err := Resolve(keyName)
	if err != nil {
		return nil, err
	}

	k, err := f.roots.Root(hive).OpenSubKey(subpath)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return defaultValue, nil
		}
		return nil, err
	}
	defer k.Close()

	v, err := k.GetValue(valueName)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return defaultValue, nil
		}
		return nil, err
	}
	return valcodec.Decode(v)
}

// SetValue writes the named value at keyName, creating the subkey chain if
// needed. kind selects the stored registry type; REG_NONE infers it from
// value's Go type. The write happens only after resolution, encoding, and
// handle acquisition all succeed, so a failed call leaves no partial effect;
// a failed write still releases the handle before the error is returned.
func (f *Facade) SetValue(keyName, valueName string, value any, kind types.RegType) error {
	hive, subpath, err := Resolve(keyName)
	if err != nil {
		return err
	}

	v, err := valcodec.Encode(kind, value)
	if err != nil {
		return err
	}

	// CreateSubKey is idempotent and, once resolution has succeeded, is
	// expected to succeed; a failure here is a backend consistency problem,
	// surfaced as an error rather than a fatal assertion.
	k, err := f.roots.Root(hive).CreateSubKey(subpath)
	if err != nil {
		return &types.Error{
			Kind: types.ErrKindState,
			Msg:  fmt.Sprintf("create subkey %q under %s", subpath, hive),
			Err:  err,
		}
	}
	defer k.Close()

	return k.SetValue(valueName, v)
}

// DeleteValue removes the named value at keyName. Returns ErrNotFound if the
// value does not exist; the subkey chain is created if missing, matching the
// write path's acquisition semantics.
func (f *Facade) DeleteValue(keyName, valueName string) error {
	hive, subpath, err := Resolve(keyName)
	if err != nil {
		return err
	}

	k, err := f.roots.Root(hive).CreateSubKey(subpath)
	if err != nil {
		return &types.Error{
			Kind: types.ErrKindState,
			Msg:  fmt.Sprintf("create subkey %q under %s", subpath, hive),
			Err:  err,
		}
	}
	defer k.Close()

	return k.DeleteValue(valueName)
}

// KeyExists reports whether the subkey named by keyName exists.
func (f *Facade) KeyExists(keyName string) (bool, error) {
	hive, subpath, err := Resolve(keyName)
	if err != nil {
		return false, err
	}

	k, err := f.roots.Root(hive).OpenSubKey(subpath)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	defer k.Close()
	return true, nil
}

// SubkeyNames lists the direct child key names of keyName.
func (f *Facade) SubkeyNames(keyName string) ([]string, error) {
	hive, subpath, err := Resolve(keyName)
	if err != nil {
		return nil, err
	}

	k, err := f.roots.Root(hive).OpenSubKey(subpath)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	return k.SubkeyNames()
}

// ValueNames lists the value names stored at keyName.
func (f *Facade) ValueNames(keyName string) ([]string, error) {
	hive, subpath, err := Resolve(keyName)
	if err != nil {
		return nil, err
	}

	k, err := f.roots.Root(hive).OpenSubKey(subpath)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	return k.ValueNames()
}

// -----------------------------------------------------------------------------
// Package-level operations over the process-default backend
// -----------------------------------------------------------------------------

var (
	defaultOnce   sync.Once
	defaultFacade *Facade
)

// Default returns the process-wide Facade over the platform backend: the
// live Windows registry on windows, an in-memory store elsewhere.
func Default() *Facade {
	defaultOnce.Do(func() {
		defaultFacade = New(defaultBackend(), Options{})
	})
	return defaultFacade
}

// GetValue reads a value through the process-default facade.
func GetValue(keyName, valueName string, defaultValue any) (any, error) {
	return Default().GetValue(keyName, valueName, defaultValue)
}

// SetValue writes a value through the process-default facade, inferring the
// registry type from value's Go type. Use Default().SetValue to pass an
// explicit type.
func SetValue(keyName, valueName string, value any) error {
	return Default().SetValue(keyName, valueName, value, types.REG_NONE)
}
