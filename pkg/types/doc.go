// Package types defines the public API surface shared across regkit: typed
// errors, registry value types, hive/view identifiers, and the Key/Backend
// capability interfaces implemented by the storage backends.
//
// Most users should import pkg/registry instead, which re-exports the types
// needed for everyday use.
package types
