// Package memreg implements an in-memory registry backend: a case-insensitive
// tree of keys and typed values rooted at the six well-known hives.
//
// It is the default backend on platforms without a live registry, and the
// substrate for tests. All views map to the same tree.
package memreg

import (
	"sort"
	"strings"
	"sync"

	"github.com/joshuapare/regkit/pkg/types"
)

// Store is an in-memory registry. The zero value is not usable; construct
// with New. A single RWMutex guards the whole tree: operations are short and
// contention-free in practice.
type Store struct {
	mu    sync.RWMutex
	roots [types.HiveCount]*node
}

type node struct {
	name    string // display-cased name (roots use the canonical hive name)
	subkeys map[string]*node
	values  map[string]valueEntry
}

type valueEntry struct {
	name string // display-cased value name
	val  types.Value
}

func newNode(name string) *node {
	return &node{
		name:    name,
		subkeys: make(map[string]*node),
		values:  make(map[string]valueEntry),
	}
}

// New creates an empty in-memory registry with all six roots present.
func New() *Store {
	s := &Store{}
	for h := 0; h < types.HiveCount; h++ {
		s.roots[h] = newNode(types.Hive(h).String())
	}
	return s
}

var _ types.Backend = (*Store)(nil)

// OpenBaseKey returns a handle to a well-known root. The view argument is
// accepted for interface parity; an in-memory store has a single view.
func (s *Store) OpenBaseKey(h types.Hive, _ types.View) (types.Key, error) {
	if int(h) < 0 || int(h) >= types.HiveCount {
		return nil, &types.Error{Kind: types.ErrKindInput, Msg: "unknown hive " + h.String()}
	}
	return &Key{store: s, node: s.roots[h]}, nil
}

// Close releases the store. The tree is garbage-collected; nothing to do.
func (s *Store) Close() error { return nil }

// Key is a handle to a node in the store.
type Key struct {
	store  *Store
	node   *node
	closed bool
}

var _ types.Key = (*Key)(nil)

// OpenSubKey opens an existing subkey. Lookup is case-insensitive.
func (k *Key) OpenSubKey(path string) (types.Key, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	k.store.mu.RLock()
	defer k.store.mu.RUnlock()

	n := k.node
	for _, seg := range splitPath(path) {
		child, ok := n.subkeys[strings.ToLower(seg)]
		if !ok {
			return nil, types.ErrNotFound
		}
		n = child
	}
	return &Key{store: k.store, node: n}, nil
}

// CreateSubKey opens the subkey, creating the full chain as needed.
func (k *Key) CreateSubKey(path string) (types.Key, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	k.store.mu.Lock()
	defer k.store.mu.Unlock()

	n := k.node
	for _, seg := range splitPath(path) {
		lower := strings.ToLower(seg)
		child, ok := n.subkeys[lower]
		if !ok {
			child = newNode(seg)
			n.subkeys[lower] = child
		}
		n = child
	}
	return &Key{store: k.store, node: n}, nil
}

// GetValue returns the named value, "" addressing the default value.
func (k *Key) GetValue(name string) (types.Value, error) {
	if k.closed {
		return types.Value{}, types.ErrKeyClosed
	}
	k.store.mu.RLock()
	defer k.store.mu.RUnlock()

	entry, ok := k.node.values[strings.ToLower(name)]
	if !ok {
		return types.Value{}, types.ErrNotFound
	}
	// Copy so callers can't mutate stored data.
	data := make([]byte, len(entry.val.Data))
	copy(data, entry.val.Data)
	return types.Value{Type: entry.val.Type, Data: data}, nil
}

// SetValue sets or replaces the named value.
func (k *Key) SetValue(name string, v types.Value) error {
	if k.closed {
		return types.ErrKeyClosed
	}
	k.store.mu.Lock()
	defer k.store.mu.Unlock()

	data := make([]byte, len(v.Data))
	copy(data, v.Data)
	k.node.values[strings.ToLower(name)] = valueEntry{
		name: name,
		val:  types.Value{Type: v.Type, Data: data},
	}
	return nil
}

// DeleteValue removes the named value.
func (k *Key) DeleteValue(name string) error {
	if k.closed {
		return types.ErrKeyClosed
	}
	k.store.mu.Lock()
	defer k.store.mu.Unlock()

	lower := strings.ToLower(name)
	if _, ok := k.node.values[lower]; !ok {
		return types.ErrNotFound
	}
	delete(k.node.values, lower)
	return nil
}

// SubkeyNames lists direct child key names, sorted, in display case.
func (k *Key) SubkeyNames() ([]string, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	k.store.mu.RLock()
	defer k.store.mu.RUnlock()

	names := make([]string, 0, len(k.node.subkeys))
	for _, child := range k.node.subkeys {
		names = append(names, child.name)
	}
	sort.Strings(names)
	return names, nil
}

// ValueNames lists value names at this key, sorted, in display case.
func (k *Key) ValueNames() ([]string, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	k.store.mu.RLock()
	defer k.store.mu.RUnlock()

	names := make([]string, 0, len(k.node.values))
	for _, entry := range k.node.values {
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names, nil
}

// Close releases the handle. Double close returns ErrKeyClosed.
func (k *Key) Close() error {
	if k.closed {
		return types.ErrKeyClosed
	}
	k.closed = true
	k.node = nil
	return nil
}

// splitPath breaks a backslash-delimited subkey path into segments, skipping
// empty segments so trailing separators are tolerated.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, `\`)
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}
