package session

import (
	"sync"
	"sync/atomic"

	"github.com/thermokit/fluidprop/errors"
)

var (
	mu       sync.Mutex
	activeID uint64 // configuration currently loaded in the engine; 0 = none
	poisoned bool

	nextID atomic.Uint64
)

// NextID allocates a fresh configuration id. Ids are opaque, unique
// for the process lifetime, and never 0.
func NextID() uint64 {
	return nextID.Add(1)
}

// With runs body while holding exclusive access to the engine.
//
// If id differs from the configuration active in the engine, configure
// is invoked first and the active id is updated on its success. The
// lock is released on every exit path; a panic in configure or body
// poisons the session before propagating.
func With(id uint64, configure func() error, body func() error) error {
	mu.Lock()
	if poisoned {
		mu.Unlock()
		return errors.LockPoisoned()
	}
	defer func() {
		if r := recover(); r != nil {
			poisoned = true
			mu.Unlock()
			panic(r)
		}
		mu.Unlock()
	}()

	if activeID != id {
		if err := configure(); err != nil {
			return err
		}
		activeID = id
	}
	return body()
}

// Reset clears poisoning and forgets the active configuration, forcing
// the next caller to reconfigure from scratch. Deliberate recovery
// only; the caller asserts the engine is back in a known state.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	poisoned = false
	activeID = 0
}
