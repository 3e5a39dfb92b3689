// Package cli renders evaluation results for the terminal: the
// human-readable report, the quiet single-line form, the JSON report and
// shell completion scripts.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/agbru/vieta/internal/ui"
	"github.com/agbru/vieta/internal/vieta"
	"github.com/agbru/vieta/pkg/models"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// DisplayReport prints the full report of an evaluation: the polynomial
// parameters, every decoded root, the product, the sign factor and the
// constant term, one item per line. Integers are printed in full.
//
// Parameters:
//   - out: The io.Writer for the output.
//   - src: The name of the input the problem was read from.
//   - res: The evaluation result.
func DisplayReport(out io.Writer, src string, res *vieta.Result) {
	fmt.Fprintf(out, "%sSuccessfully read data from %s ✅%s\n", ui.ColorGreen(), src, ui.ColorReset())

	fmt.Fprintf(out, "\n%sPolynomial Parameters:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  - Number of roots (n): %s%d%s\n", ui.ColorMagenta(), res.N, ui.ColorReset())
	fmt.Fprintf(out, "  - Leading coefficient (k): %s%s%s\n", ui.ColorMagenta(), res.K, ui.ColorReset())

	fmt.Fprintf(out, "\n%sConverted Roots (decimal):%s\n", ui.ColorBold(), ui.ColorReset())
	for _, r := range res.Roots {
		fmt.Fprintf(out, "  - Root %d: %s%s%s\n", r.Index, ui.ColorCyan(), r.Value, ui.ColorReset())
	}

	fmt.Fprintf(out, "\n%sCalculation:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  - Product of roots: %s%s%s\n", ui.ColorCyan(), res.Product, ui.ColorReset())
	fmt.Fprintf(out, "  - Sign factor (-1)^%d: %s%s%s\n", res.N, ui.ColorYellow(), res.Sign, ui.ColorReset())

	fmt.Fprintf(out, "\n%s%s## Final Constant Term: %s ##%s\n", ui.ColorBold(), ui.ColorGreen(), res.Constant, ui.ColorReset())
}

// DisplayQuietResult prints only the constant term, for scripts.
func DisplayQuietResult(out io.Writer, res *vieta.Result) {
	fmt.Fprintln(out, res.Constant.String())
}

// NewReport converts a result into its JSON model.
func NewReport(src string, res *vieta.Result) models.Report {
	roots := make([]models.Root, len(res.Roots))
	for i, r := range res.Roots {
		roots[i] = models.Root{
			Index:   r.Index,
			ID:      r.ID,
			Base:    r.Base,
			Encoded: r.Encoded,
			Value:   r.Value.String(),
		}
	}
	return models.Report{
		Source:     src,
		N:          res.N,
		K:          res.K.String(),
		Roots:      roots,
		Product:    res.Product.String(),
		Sign:       res.Sign.String(),
		Constant:   res.Constant.String(),
		Engine:     res.Engine,
		DurationNS: res.Duration.Nanoseconds(),
	}
}

// DisplayJSONReport writes the JSON report followed by a newline.
func DisplayJSONReport(out io.Writer, src string, res *vieta.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(src, res)); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// DisplayJSONError writes a JSON error document so that scripts reading
// stdout in JSON mode always receive valid JSON.
func DisplayJSONError(out io.Writer, err error, exitCode int) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(models.ErrorReport{Error: err.Error(), ExitCode: exitCode})
}

// CLIColorProvider adapts the current ui theme to apperrors.ColorProvider.
type CLIColorProvider struct{}

// Red returns the error color.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset escape code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }
