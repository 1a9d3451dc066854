// Package boltreg implements a persistent registry backend over a bbolt
// database file. Each registry key is a bucket holding three entries: a "k"
// bucket of child keys (indexed by lowercased name), a "v" bucket of values,
// and an "n" key carrying the display-cased name. The six well-known roots
// are top-level buckets created at open time.
//
// Lookups are case-insensitive, matching registry semantics. All views map
// to the same database.
package boltreg

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/joshuapare/regkit/pkg/types"
)

var (
	bucketSubkeys = []byte("k")
	bucketValues  = []byte("v")
	keyDisplay    = []byte("n")
)

// Store is a registry backed by a bbolt database file.
type Store struct {
	db *bbolt.DB
}

var _ types.Backend = (*Store)(nil)

// Open opens (or creates) a registry database at path and ensures the six
// root buckets exist.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open registry database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for h := 0; h < types.HiveCount; h++ {
			name := types.Hive(h).String()
			b, err := tx.CreateBucketIfNotExists([]byte(strings.ToLower(name)))
			if err != nil {
				return err
			}
			if err := initKeyBucket(b, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create root buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenBaseKey returns a handle to a well-known root. The view argument is
// accepted for interface parity; a file-backed store has a single view.
func (s *Store) OpenBaseKey(h types.Hive, _ types.View) (types.Key, error) {
	if int(h) < 0 || int(h) >= types.HiveCount {
		return nil, &types.Error{Kind: types.ErrKindInput, Msg: "unknown hive " + h.String()}
	}
	return &Key{store: s, path: []string{strings.ToLower(h.String())}}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Key is a handle to a key in the database. The handle carries the lowercased
// bucket path from the root; each operation navigates inside its own
// transaction, so handles stay valid across transactions.
type Key struct {
	store  *Store
	path   []string
	closed bool
}

var _ types.Key = (*Key)(nil)

// OpenSubKey opens an existing subkey, verifying it exists.
func (k *Key) OpenSubKey(path string) (types.Key, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	full := append(append([]string{}, k.path...), lowered(splitPath(path))...)
	err := k.store.db.View(func(tx *bbolt.Tx) error {
		_, err := navigate(tx, full)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Key{store: k.store, path: full}, nil
}

// CreateSubKey opens the subkey, creating the full bucket chain as needed.
func (k *Key) CreateSubKey(path string) (types.Key, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	segs := splitPath(path)
	full := append(append([]string{}, k.path...), lowered(segs)...)
	err := k.store.db.Update(func(tx *bbolt.Tx) error {
		b, err := navigate(tx, k.path)
		if err != nil {
			return err
		}
		for _, seg := range segs {
			children := b.Bucket(bucketSubkeys)
			child, err := children.CreateBucketIfNotExists([]byte(strings.ToLower(seg)))
			if err != nil {
				return fmt.Errorf("create subkey %q: %w", seg, err)
			}
			if err := initKeyBucket(child, seg); err != nil {
				return err
			}
			b = child
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Key{store: k.store, path: full}, nil
}

// GetValue returns the named value.
func (k *Key) GetValue(name string) (types.Value, error) {
	if k.closed {
		return types.Value{}, types.ErrKeyClosed
	}
	var v types.Value
	err := k.store.db.View(func(tx *bbolt.Tx) error {
		b, err := navigate(tx, k.path)
		if err != nil {
			return err
		}
		raw := b.Bucket(bucketValues).Get([]byte(strings.ToLower(name)))
		if raw == nil {
			return types.ErrNotFound
		}
		v, _, err = decodeValue(raw)
		return err
	})
	if err != nil {
		return types.Value{}, err
	}
	return v, nil
}

// SetValue sets or replaces the named value.
func (k *Key) SetValue(name string, v types.Value) error {
	if k.closed {
		return types.ErrKeyClosed
	}
	return k.store.db.Update(func(tx *bbolt.Tx) error {
		b, err := navigate(tx, k.path)
		if err != nil {
			return err
		}
		return b.Bucket(bucketValues).Put([]byte(strings.ToLower(name)), encodeValue(name, v))
	})
}

// DeleteValue removes the named value.
func (k *Key) DeleteValue(name string) error {
	if k.closed {
		return types.ErrKeyClosed
	}
	return k.store.db.Update(func(tx *bbolt.Tx) error {
		b, err := navigate(tx, k.path)
		if err != nil {
			return err
		}
		values := b.Bucket(bucketValues)
		lower := []byte(strings.ToLower(name))
		if values.Get(lower) == nil {
			return types.ErrNotFound
		}
		return values.Delete(lower)
	})
}

// SubkeyNames lists direct child key names, sorted, in display case.
func (k *Key) SubkeyNames() ([]string, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	var names []string
	err := k.store.db.View(func(tx *bbolt.Tx) error {
		b, err := navigate(tx, k.path)
		if err != nil {
			return err
		}
		children := b.Bucket(bucketSubkeys)
		return children.ForEachBucket(func(name []byte) error {
			child := children.Bucket(name)
			if display := child.Get(keyDisplay); display != nil {
				names = append(names, string(display))
			} else {
				names = append(names, string(name))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// ValueNames lists value names at this key, sorted, in display case.
func (k *Key) ValueNames() ([]string, error) {
	if k.closed {
		return nil, types.ErrKeyClosed
	}
	var names []string
	err := k.store.db.View(func(tx *bbolt.Tx) error {
		b, err := navigate(tx, k.path)
		if err != nil {
			return err
		}
		return b.Bucket(bucketValues).ForEach(func(_, raw []byte) error {
			_, display, err := decodeValue(raw)
			if err != nil {
				return err
			}
			names = append(names, display)
			return nil
		})
	})
	if err != nil {
		return nil, err
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
	return nil
}

// navigate walks the lowercased bucket path from the transaction root.
// Returns ErrNotFound if any segment is missing.
func navigate(tx *bbolt.Tx, path []string) (*bbolt.Bucket, error) {
	if len(path) == 0 {
		return nil, types.ErrNotFound
	}
	b := tx.Bucket([]byte(path[0]))
	if b == nil {
		return nil, types.ErrNotFound
	}
	for _, seg := range path[1:] {
		children := b.Bucket(bucketSubkeys)
		if children == nil {
			return nil, types.ErrNotFound
		}
		b = children.Bucket([]byte(seg))
		if b == nil {
			return nil, types.ErrNotFound
		}
	}
	return b, nil
}

// initKeyBucket ensures the k/v sub-buckets and display name exist for a key
// bucket. Idempotent: an existing display name is left alone.
func initKeyBucket(b *bbolt.Bucket, display string) error {
	if _, err := b.CreateBucketIfNotExists(bucketSubkeys); err != nil {
		return err
	}
	if _, err := b.CreateBucketIfNotExists(bucketValues); err != nil {
		return err
	}
	if b.Get(keyDisplay) == nil {
		return b.Put(keyDisplay, []byte(display))
	}
	return nil
}

// Value payload layout: uint32 LE type, uint16 LE display-name length,
// display name bytes, raw data.
func encodeValue(name string, v types.Value) []byte {
	buf := make([]byte, 6+len(name)+len(v.Data))
	binary.LittleEndian.PutUint32(buf[0:], uint32(v.Type))
	binary.LittleEndian.PutUint16(buf[4:], uint16(len(name)))
	copy(buf[6:], name)
	copy(buf[6+len(name):], v.Data)
	return buf
}

func decodeValue(raw []byte) (types.Value, string, error) {
	if len(raw) < 6 {
		return types.Value{}, "", fmt.Errorf("value record too short: %d bytes", len(raw))
	}
	t := types.RegType(binary.LittleEndian.Uint32(raw[0:]))
	nameLen := int(binary.LittleEndian.Uint16(raw[4:]))
	if len(raw) < 6+nameLen {
		return types.Value{}, "", fmt.Errorf("value record truncated: %d bytes", len(raw))
	}
	name := string(raw[6 : 6+nameLen])
	data := make([]byte, len(raw)-6-nameLen)
	copy(data, raw[6+nameLen:])
	return types.Value{Type: t, Data: data}, name, nil
}

// splitPath breaks a backslash-delimited subkey path into segments in their
// original case, skipping empty segments. Bucket navigation lowercases at the
// point of use so display names keep their case.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	var segs []string
	for _, p := range strings.Split(path, `\`) {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

func lowered(segs []string) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = strings.ToLower(s)
	}
	return out
}
