//go:build windows

package registry

import (
	"github.com/joshuapare/regkit/internal/winreg"
	"github.com/joshuapare/regkit/pkg/types"
)

// defaultBackend is the live Windows registry.
func defaultBackend() types.Backend {
	return winreg.New()
}
