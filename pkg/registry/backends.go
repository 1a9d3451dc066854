package registry

import (
	"github.com/joshuapare/regkit/internal/boltreg"
	"github.com/joshuapare/regkit/internal/memreg"
	"github.com/joshuapare/regkit/pkg/types"
)

// NewInMemory returns an empty in-memory backend. Useful as a test substrate
// and as a process-local registry on platforms without a live one.
func NewInMemory() types.Backend {
	return memreg.New()
}

// OpenStore opens (or creates) a portable file-backed registry database at
// path, usable as a Backend for New. The caller owns the returned backend and
// must Close it.
func OpenStore(path string) (types.Backend, error) {
	return boltreg.Open(path)
}
