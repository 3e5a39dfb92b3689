package ui

import "regexp"

// ansiRegex matches CSI sequences: ESC [ followed by parameters and a final letter.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes ANSI escape codes from s. Reports written to files go
// through it so that they stay plain text whatever the active theme.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
