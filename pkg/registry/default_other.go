//go:build !windows

package registry

import (
	"github.com/joshuapare/regkit/internal/memreg"
	"github.com/joshuapare/regkit/pkg/types"
)

// defaultBackend is a process-local in-memory store on platforms without a
// live registry.
func defaultBackend() types.Backend {
	return memreg.New()
}
