// Package testutil provides shared testing utilities used across the project.
package testutil

import "github.com/agbru/vieta/internal/ui"

// StripAnsiCodes removes ANSI escape codes from a string so that golden
// comparisons do not depend on the active color theme.
func StripAnsiCodes(s string) string {
	return ui.StripANSI(s)
}
