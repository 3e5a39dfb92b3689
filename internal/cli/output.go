package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/vieta/internal/ui"
	"github.com/agbru/vieta/internal/vieta"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Source names the input in the report header.
	Source string
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// JSON selects the JSON report instead of the text report.
	JSON bool
	// Quiet prints only the constant term.
	Quiet bool
}

// WriteReportToFile writes a header followed by the plain-text report to
// config.OutputFile, creating parent directories as needed.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(res *vieta.Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Vieta Constant Term Report\n")
	fmt.Fprintf(&buf, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&buf, "# Source: %s\n", config.Source)
	fmt.Fprintf(&buf, "# Engine: %s\n", res.Engine)
	fmt.Fprintf(&buf, "# Duration: %s\n", FormatExecutionDuration(res.Duration))
	fmt.Fprintf(&buf, "\n")

	if config.JSON {
		if err := DisplayJSONReport(&buf, config.Source, res); err != nil {
			return err
		}
	} else {
		var report bytes.Buffer
		DisplayReport(&report, config.Source, res)
		buf.WriteString(ui.StripANSI(report.String()))
	}

	if err := os.WriteFile(config.OutputFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplayResultWithConfig displays a result in the mode selected by config
// and saves it to a file if requested.
//
// Returns:
//   - error: An error if JSON encoding or file output fails.
func DisplayResultWithConfig(out io.Writer, res *vieta.Result, config OutputConfig) error {
	switch {
	case config.JSON:
		if err := DisplayJSONReport(out, config.Source, res); err != nil {
			return err
		}
	case config.Quiet:
		DisplayQuietResult(out, res)
	default:
		DisplayReport(out, config.Source, res)
	}

	if config.OutputFile != "" {
		if err := WriteReportToFile(res, config); err != nil {
			return err
		}
		if !config.Quiet && !config.JSON {
			fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
