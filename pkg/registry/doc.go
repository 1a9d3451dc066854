/*
Package registry provides a path-addressed façade over a hierarchical
registry store: the live Windows registry, an in-memory tree, or a
file-backed database.

# Quick Start

Read and write values by fully-qualified key path:

	err := registry.SetValue(`HKEY_CURRENT_USER\Software\MyApp`, "Version", "1.0")

	v, err := registry.GetValue(`HKEY_CURRENT_USER\Software\MyApp`, "Version", "unknown")

# Key Paths

A key path is a canonical root name, optionally followed by a backslash and
a subkey path:

	HKEY_LOCAL_MACHINE
	HKEY_LOCAL_MACHINE\SOFTWARE\Vendor\App

Root names are matched case-insensitively. The six well-known roots are
HKEY_CLASSES_ROOT, HKEY_CURRENT_USER, HKEY_LOCAL_MACHINE, HKEY_USERS,
HKEY_PERFORMANCE_DATA, and HKEY_CURRENT_CONFIG. Anything else fails with
ErrInvalidKeyName before any key is touched.

# Facades and Backends

The package-level functions use the process-default backend (the live
registry on Windows, an in-memory store elsewhere). Construct a Facade
explicitly to target another backend or view:

	store, err := registry.OpenStore("registry.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

	f := registry.New(store, registry.Options{})
	err = f.SetDWord(`HKEY_LOCAL_MACHINE\SOFTWARE\App`, "Retries", 3)

Root handles are opened once, on first use, and live for the life of the
facade. Subkey handles are acquired per call and always released before the
call returns, including on error.

# Missing Keys and Values

GetValue never fails for a missing subkey or value: it returns the supplied
default. SetValue creates the full subkey chain as needed.
*/
package registry
