// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (input, digit,
// configuration) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types with a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess               = 0   // Indicates successful execution.
	ExitErrorGeneric          = 1   // Indicates a generic error.
	ExitErrorInputUnavailable = 2   // Indicates the input document could not be read.
	ExitErrorMalformedInput   = 3   // Indicates a structurally invalid input document.
	ExitErrorConfig           = 4   // Indicates a configuration error.
	ExitErrorInvalidDigit     = 5   // Indicates a digit that is not legal for its base.
	ExitErrorCanceled         = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputUnavailableError is returned when the input document cannot be
// located or read.
type InputUnavailableError struct {
	// Path is the location that was tried.
	Path string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns the error message for an InputUnavailableError.
func (e InputUnavailableError) Error() string {
	return fmt.Sprintf("input %q is unavailable: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying I/O error.
func (e InputUnavailableError) Unwrap() error { return e.Cause }

// MalformedInputError is returned when the input document is not valid
// structured data, or does not have the expected shape.
type MalformedInputError struct {
	// Message describes what is wrong with the document.
	Message string
	// Cause is the underlying parser error, if any.
	Cause error
}

// Error returns the error message for a MalformedInputError.
func (e MalformedInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed input: %s", e.Message)
}

// Unwrap returns the underlying parser error.
func (e MalformedInputError) Unwrap() error { return e.Cause }

// NewMalformedInputError creates a MalformedInputError with a formatted
// message and an optional cause.
//
// Parameters:
//   - cause: The underlying error (can be nil).
//   - format: A format string for the message.
//   - a: Arguments for the format string.
//
// Returns:
//   - error: A new MalformedInputError.
func NewMalformedInputError(cause error, format string, a ...any) error {
	return MalformedInputError{Message: fmt.Sprintf(format, a...), Cause: cause}
}

// MissingFieldError is returned when a required field of the input record
// is absent.
type MissingFieldError struct {
	// Field is the dotted path of the missing field (e.g. "keys.n", "r1.base").
	Field string
}

// Error returns the error message for a MissingFieldError.
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field '%s'", e.Field)
}

// InvalidDigitError is returned when a character of an encoded value has
// no digit weight, or a weight that is not strictly less than the base.
type InvalidDigitError struct {
	// Char is the offending character.
	Char rune
	// Position is the zero-based rune offset of Char in the value.
	Position int
	// Base is the declared base of the value.
	Base int
}

// Error returns the error message for an InvalidDigitError.
func (e InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit '%c' at position %d for base %d", e.Char, e.Position, e.Base)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code that reports it.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	var (
		unavailable InputUnavailableError
		malformed   MalformedInputError
		missing     MissingFieldError
		digit       InvalidDigitError
		cfg         ConfigError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &unavailable):
		return ExitErrorInputUnavailable
	case errors.As(err, &missing), errors.As(err, &malformed):
		return ExitErrorMalformedInput
	case errors.As(err, &digit):
		return ExitErrorInvalidDigit
	case errors.As(err, &cfg):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
