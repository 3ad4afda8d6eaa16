// Package errors provides structured error types for the tauri bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the command name, a host-provided payload
// when the host signaled the failure, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindInvalidVariant).
//		Cmd("plugin:window|set_size").
//		Detail("size must be a logical or physical value").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Host("plugin:event|listen", raw)
//	err := errors.Closed("invoke")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
