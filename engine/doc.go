// Package engine defines the contract of the native equation-of-state
// engine. The engine is an external collaborator: it holds exactly one
// mutable fluid configuration at a time, is not reentrant, and exposes
// the small fixed primitive set captured by the Engine interface.
//
// Every error-returning primitive reports a signed status code plus a
// message. Positive codes are hard failures and are propagated as
// structured errors; negative codes are advisory warnings, logged and
// otherwise ignored; zero is success. CheckStatus implements that
// convention for adapter implementations.
//
// This package does not load the native library itself. Concrete
// adapters register through RegisterDriver (the dynamic loading and
// symbol resolution live in the driver, outside this module's scope).
package engine
