package engine

import (
	"sync"

	"github.com/thermokit/fluidprop/errors"
)

// Driver constructs an Engine bound to a native installation
// directory (the directory holding the shared library and the
// fluids/ and mixtures/ definition trees). Drivers receive component
// file lists through Config; the native package's PipeList helper
// builds the pipe-separated setup string the shared library expects
// from them.
type Driver func(dir string) (Engine, error)

var (
	driverMu sync.RWMutex
	driver   Driver
)

// RegisterDriver installs the native engine driver. Like database/sql
// drivers, the binding that performs dynamic loading ships separately
// and registers itself from an init function.
func RegisterDriver(d Driver) {
	driverMu.Lock()
	defer driverMu.Unlock()
	driver = d
}

// Open constructs an Engine for the given installation directory using
// the registered driver.
func Open(dir string) (Engine, error) {
	driverMu.RLock()
	d := driver
	driverMu.RUnlock()
	if d == nil {
		return nil, errors.NotFound(errors.PhaseResolve, "engine driver", "native")
	}
	return d(dir)
}
