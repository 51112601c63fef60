package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// CompileError is the normalized, structured form of a compiler engine
// failure routed to the host's failure continuation.
type CompileError struct {
	// Message is the engine's top-level description of the failure.
	Message string

	// Data carries structured metadata attached to the failure, nil when the
	// engine supplied none.
	Data map[string]any

	// Cause is the underlying error, nil when the failure has no deeper
	// chain.
	Cause error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// NormalizeCompileError adapts an arbitrary engine error into a
// CompileError. Already-normalized errors pass through unchanged; zerr
// errors contribute their message and metadata; anything else becomes a
// bare message.
func NormalizeCompileError(err error) *CompileError {
	if err == nil {
		return nil
	}

	var ce *CompileError
	if errors.As(err, &ce) {
		return ce
	}

	var ze *zerr.Error
	if errors.As(err, &ze) {
		return &CompileError{
			Message: ze.Message(),
			Data:    ze.Metadata(),
			Cause:   errors.Unwrap(ze),
		}
	}

	return &CompileError{
		Message: err.Error(),
		Cause:   errors.Unwrap(err),
	}
}
