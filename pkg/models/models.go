// Package models defines the JSON report written by `vieta -json`.
//
// Every arbitrary-precision integer is rendered as a decimal string so that
// consumers never round it through a floating-point number.
package models

// Root describes one decoded root.
type Root struct {
	Index   int    `json:"index"`   // 1-based position in declaration order.
	ID      string `json:"id"`      // Entry name in the input document.
	Base    int    `json:"base"`    // Declared base, 2 to 36.
	Encoded string `json:"encoded"` // Digit string as written in the input.
	Value   string `json:"value"`   // Decoded value in base 10.
}

// Report is the machine-readable form of a constant term evaluation.
type Report struct {
	Source     string `json:"source"`
	N          int    `json:"n"`
	K          string `json:"k"`
	Roots      []Root `json:"roots"`
	Product    string `json:"product"`
	Sign       string `json:"sign"`
	Constant   string `json:"constant"`
	Engine     string `json:"engine"`
	DurationNS int64  `json:"duration_ns"`
}

// ErrorReport is written instead of a Report when the run fails.
type ErrorReport struct {
	Error    string `json:"error"`
	ExitCode int    `json:"exit_code"`
}
