// Package builder exposes the fluent surface used to assemble button, group
// and toolbar configurations.
//
// Builders validate every call before touching the configuration. Because Go
// has no exceptions, the first failure is latched: later calls on the same
// builder tree become no-ops and the error is reported by Err, Config and
// Render. Errors are *Error values that unwrap to ErrMissingArgument or
// ErrInvalidState.
package builder
