// Package session serializes access to the native engine.
//
// The engine holds one mutable global configuration and is not
// reentrant, so every engine touch in the process goes through one
// mutex. The session additionally remembers which configuration id was
// pushed last and skips the (expensive) reconfiguration call when a
// caller's configuration is already active.
//
// If a holder panics inside the critical section the engine's state
// can no longer be trusted: the session is marked poisoned, the panic
// propagates, and every later acquisition fails with a lock-poisoned
// error until Reset is called.
package session
