package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleError formats and prints a user-facing message for a failed run.
// It names the failure class so the user knows where to look, and returns
// the exit code matching the error type.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the error message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	code := ExitCodeFor(err)
	if code == ExitErrorCanceled {
		fmt.Fprintf(out, "%sStatus: Canceled.%s\n", colors.Yellow(), colors.Reset())
		return code
	}

	fmt.Fprintf(out, "%sError:%s %v\n", colors.Red(), colors.Reset(), err)

	var unavailable InputUnavailableError
	if errors.As(err, &unavailable) {
		fmt.Fprintf(out, "Please make sure %s%s%s exists and is readable.\n",
			colors.Yellow(), unavailable.Path, colors.Reset())
	}
	return code
}
