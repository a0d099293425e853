// Package errors provides typed errors for the hop project.
//
// This package defines domain-specific error types for the resolution
// pipeline (bad input, no matches, ambiguous matches). All error types
// implement the standard error interface and support errors.Is() and
// errors.As() from the standard library and cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InputError represents invalid user input, such as a search root that is
// not a directory or an out-of-range candidate index.
type InputError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// NewInputError creates a new InputError.
func NewInputError(message string) *InputError {
	return &InputError{Message: message}
}

// NewInputErrorf creates a new InputError with a formatted message.
func NewInputErrorf(format string, args ...any) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError represents a missing resource: no codebase matched the
// query, or the cache directory does not exist.
type NotFoundError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// NewNotFoundErrorf creates a new NotFoundError with a formatted message.
func NewNotFoundErrorf(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// AmbiguityError represents a query that matched more than one codebase and
// could not be narrowed down by filters or default rules. Candidates holds
// the rendered paths that were still in play.
type AmbiguityError struct {
	Message    string
	Candidates []string
}

// Error implements the error interface.
func (e *AmbiguityError) Error() string {
	return e.Message
}

// NewAmbiguityError creates a new AmbiguityError.
func NewAmbiguityError(message string, candidates []string) *AmbiguityError {
	return &AmbiguityError{Message: message, Candidates: candidates}
}

// IsInputError checks if an error or any error in its chain is an InputError.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsNotFoundError checks if an error or any error in its chain is a NotFoundError.
func IsNotFoundError(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// IsAmbiguityError checks if an error or any error in its chain is an AmbiguityError.
func IsAmbiguityError(err error) bool {
	var ambErr *AmbiguityError
	return errors.As(err, &ambErr)
}

// Re-export commonly used functions from cockroachdb/errors for convenience.
// This allows consumers to use hoperrors.Wrap() instead of importing two packages.
var (
	// New creates a new error with the given message.
	New = errors.New

	// Newf creates a new error with formatted message.
	Newf = errors.Newf

	// Wrap wraps an error with additional context.
	Wrap = errors.Wrap

	// Wrapf wraps an error with formatted additional context.
	Wrapf = errors.Wrapf

	// Is reports whether any error in err's chain matches target.
	Is = errors.Is

	// As finds the first error in err's chain that matches target.
	As = errors.As

	// Cause returns the root cause of an error.
	Cause = errors.Cause
)
