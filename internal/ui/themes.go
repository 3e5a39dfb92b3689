// Package ui provides theme and color support for the report and usage
// output. Colors are only emitted when the destination is a terminal and
// neither NO_COLOR nor -no-color asks otherwise.
package ui

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary highlights section headings.
	Primary string
	// Secondary is used for intermediate values such as decoded roots.
	Secondary string
	// Success marks the final constant term and confirmations.
	Success string
	// Warning is used for hints and the sign factor.
	Warning string
	// Error indicates failures.
	Error string
	// Info is used for the polynomial parameters.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name ("dark", "light" or "none").
// Unknown names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// IsTerminal reports whether w is a terminal. Anything other than an
// *os.File is treated as a pipe.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled decides whether output to w should be colored.
// NO_COLOR (https://no-color.org/) disables colors whatever its value.
func ColorEnabled(noColor bool, w io.Writer) bool {
	if noColor {
		return false
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return IsTerminal(w)
}

// InitTheme selects the dark theme when output to w may be colored and
// NoColorTheme otherwise.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
//   - w: The destination the report will be written to.
func InitTheme(noColor bool, w io.Writer) {
	enabled := ColorEnabled(noColor, w)

	themeMutex.Lock()
	defer themeMutex.Unlock()
	if enabled {
		currentTheme = DarkTheme
	} else {
		currentTheme = NoColorTheme
	}
}
