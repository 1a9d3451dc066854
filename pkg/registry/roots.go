package registry

import (
	"sync"

	"github.com/joshuapare/regkit/pkg/types"
)

// RootKeys holds the six well-known root handles for a backend. Each root is
// opened at most once, on first access, against the configured view, and is
// never closed for the life of the RootKeys: after initialization the
// handles are shared read-only state and safe for concurrent use without
// locking.
//
// Opening a well-known root is assumed to always succeed; a failure is a
// broken environment, not a recoverable condition, and panics.
type RootKeys struct {
	backend types.Backend
	view    types.View

	once [types.HiveCount]sync.Once
	keys [types.HiveCount]types.Key
}

// NewRootKeys creates the registry of root handles. No root is opened until
// it is first requested.
func NewRootKeys(backend types.Backend, view types.View) *RootKeys {
	return &RootKeys{backend: backend, view: view}
}

// Root returns the singleton handle for a well-known root, opening it on
// first access. The same handle instance is returned on every call.
func (r *RootKeys) Root(h types.Hive) types.Key {
	r.once[h].Do(func() {
		k, err := r.backend.OpenBaseKey(h, r.view)
		if err != nil {
			panic("registry: cannot open root " + h.String() + ": " + err.Error())
		}
		r.keys[h] = k
	})
	return r.keys[h]
}

// ClassesRoot returns the HKEY_CLASSES_ROOT handle.
func (r *RootKeys) ClassesRoot() types.Key { return r.Root(types.HiveClassesRoot) }

// CurrentUser returns the HKEY_CURRENT_USER handle.
func (r *RootKeys) CurrentUser() types.Key { return r.Root(types.HiveCurrentUser) }

// LocalMachine returns the HKEY_LOCAL_MACHINE handle.
func (r *RootKeys) LocalMachine() types.Key { return r.Root(types.HiveLocalMachine) }

// Users returns the HKEY_USERS handle.
func (r *RootKeys) Users() types.Key { return r.Root(types.HiveUsers) }

// PerformanceData returns the HKEY_PERFORMANCE_DATA handle.
func (r *RootKeys) PerformanceData() types.Key { return r.Root(types.HivePerformanceData) }

// CurrentConfig returns the HKEY_CURRENT_CONFIG handle.
func (r *RootKeys) CurrentConfig() types.Key { return r.Root(types.HiveCurrentConfig) }
