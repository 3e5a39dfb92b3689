package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/vieta/internal/errors"
	"github.com/agbru/vieta/internal/testutil"
	"github.com/agbru/vieta/pkg/models"
)

const (
	twoRootsJSON = `{"keys":{"n":2,"k":"1"},"r1":{"base":"10","value":"4"},"r2":{"base":"2","value":"11"}}`
	threeRootsYAML = `keys:
  n: 3
  k: "2"
r1: {base: "16", value: "a"}
r2: {base: "8", value: "10"}
r3: {base: "10", value: "1"}
`
)

// writeInput stores content in a fresh temporary directory and returns its path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// runApp runs the whole command and returns the exit code with both outputs.
func runApp(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), append([]string{"vieta"}, args...), &out, &errOut)
	return code, testutil.StripAnsiCodes(out.String()), testutil.StripAnsiCodes(errOut.String())
}

// TestNew tests the New function for creating Application instances.
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("Valid args create application", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{"vieta", "-engine", "tree", "roots.json"}, &errBuf)
		if err != nil {
			t.Fatalf("New() returned unexpected error: %v", err)
		}
		if app.Config.Engine != "tree" || app.Config.Input != "roots.json" {
			t.Errorf("unexpected config: %+v", app.Config)
		}
		if app.Factory == nil || app.Loader == nil || app.Logger == nil {
			t.Error("Factory, Loader and Logger should be set")
		}
	})

	t.Run("Invalid flag is a configuration error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{"vieta", "-invalid-flag"}, &errBuf)
		if app != nil {
			t.Error("New() should return nil application on error")
		}
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected ConfigError, got %T: %v", err, err)
		}
	})

	t.Run("Help flag returns error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		_, err := New([]string{"vieta", "-h"}, &errBuf)
		if !IsHelpError(err) {
			t.Errorf("expected a help error, got %v", err)
		}
	})

	t.Run("Empty args slice handled correctly", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{}, &errBuf)
		if err != nil {
			t.Fatalf("New() should handle empty args without error, got: %v", err)
		}
		if app.Config.Input != "input.json" {
			t.Errorf("Expected default input.json, got %q", app.Config.Input)
		}
	})
}

// TestApplicationRun covers the run paths end to end with real input files.
func TestApplicationRun(t *testing.T) {
	t.Parallel()

	t.Run("Text report", func(t *testing.T) {
		t.Parallel()
		path := writeInput(t, "input.json", twoRootsJSON)
		code, out, errOut := runApp(t, path)
		if code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d, stderr = %q", code, errOut)
		}
		for _, want := range []string{
			"Successfully read data from " + path,
			"  - Root 1: 4\n",
			"  - Root 2: 3\n",
			"  - Product of roots: 12\n",
			"  - Sign factor (-1)^2: 1\n",
			"## Final Constant Term: 12 ##",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("YAML input, quiet", func(t *testing.T) {
		t.Parallel()
		path := writeInput(t, "input.yaml", threeRootsYAML)
		code, out, _ := runApp(t, "-q", path)
		if code != apperrors.ExitSuccess || out != "-160\n" {
			t.Errorf("got code %d output %q, want 0 and %q", code, out, "-160\n")
		}
	})

	t.Run("Engines agree", func(t *testing.T) {
		t.Parallel()
		path := writeInput(t, "input.yaml", threeRootsYAML)
		for _, engine := range []string{"sequential", "tree"} {
			code, out, _ := runApp(t, "-q", "-engine", engine, path)
			if code != apperrors.ExitSuccess || out != "-160\n" {
				t.Errorf("%s: got code %d output %q", engine, code, out)
			}
		}
	})

	t.Run("JSON report", func(t *testing.T) {
		t.Parallel()
		path := writeInput(t, "input.json", twoRootsJSON)
		code, out, _ := runApp(t, "-json", path)
		if code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		var report models.Report
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("invalid JSON output: %v\n%s", err, out)
		}
		if report.Constant != "12" || report.Product != "12" || len(report.Roots) != 2 {
			t.Errorf("unexpected report: %+v", report)
		}
	})

	t.Run("Report file", func(t *testing.T) {
		t.Parallel()
		path := writeInput(t, "input.json", twoRootsJSON)
		reportPath := filepath.Join(t.TempDir(), "reports", "out.txt")
		code, out, _ := runApp(t, "-o", reportPath, path)
		if code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		if !strings.Contains(out, "Report saved to: "+reportPath) {
			t.Errorf("missing confirmation:\n%s", out)
		}
		data, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "## Final Constant Term: 12 ##") {
			t.Errorf("report file incomplete:\n%s", data)
		}
	})
}

func TestApplicationRun_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		content   string
		missing   bool
		wantCode  int
		wantInErr string
	}{
		{"Missing input", "", true, apperrors.ExitErrorInputUnavailable, "Please make sure"},
		{"Malformed JSON", `{"keys":`, false, apperrors.ExitErrorMalformedInput, "malformed input"},
		{"Missing k", `{"keys":{"n":1}}`, false, apperrors.ExitErrorMalformedInput, "missing required field 'keys.k'"},
		{"Invalid digit", `{"keys":{"n":1,"k":1},"r1":{"base":10,"value":"g"}}`, false, apperrors.ExitErrorInvalidDigit, "invalid digit 'g' at position 0 for base 10"},
		{"Base out of range", `{"keys":{"n":1,"k":1},"r1":{"base":37,"value":"1"}}`, false, apperrors.ExitErrorMalformedInput, "r1.base"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "input.json")
			if !tt.missing {
				path = writeInput(t, "input.json", tt.content)
			}
			code, out, errOut := runApp(t, path)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, errOut)
			}
			if out != "" {
				t.Errorf("no report may be printed on failure, got %q", out)
			}
			if !strings.Contains(errOut, "Error:") || !strings.Contains(errOut, tt.wantInErr) {
				t.Errorf("stderr %q should contain %q", errOut, tt.wantInErr)
			}
		})
	}

	t.Run("JSON mode writes an error document", func(t *testing.T) {
		t.Parallel()
		code, out, _ := runApp(t, "-json", filepath.Join(t.TempDir(), "missing.json"))
		var report models.ErrorReport
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("invalid JSON error document: %v\n%s", err, out)
		}
		if report.ExitCode != code || code != apperrors.ExitErrorInputUnavailable {
			t.Errorf("exit code %d, report %+v", code, report)
		}
	})
}

func TestApplicationRun_Canceled(t *testing.T) {
	t.Parallel()
	path := writeInput(t, "input.json", twoRootsJSON)
	var errBuf, out bytes.Buffer
	app, err := New([]string{"vieta", path}, &errBuf)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := app.Run(ctx, &out); code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
	if !strings.Contains(errBuf.String(), "Canceled") {
		t.Errorf("stderr should report cancellation, got %q", errBuf.String())
	}
}

func TestExecute(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{"Version", []string{"--version"}, apperrors.ExitSuccess, "vieta " + Version, ""},
		{"Version JSON", []string{"-json", "-version"}, apperrors.ExitSuccess, `"go_version"`, ""},
		{"Help", []string{"-h"}, apperrors.ExitSuccess, "", "Usage:"},
		{"Unknown engine", []string{"-engine", "abacus"}, apperrors.ExitErrorConfig, "", "unrecognized engine"},
		{"Unknown flag", []string{"-n", "2"}, apperrors.ExitErrorConfig, "", "flag provided but not defined"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, out, errOut := runApp(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantOut != "" && !strings.Contains(out, tt.wantOut) {
				t.Errorf("stdout %q should contain %q", out, tt.wantOut)
			}
			if tt.wantErr != "" && !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr %q should contain %q", errOut, tt.wantErr)
			}
		})
	}
}

// TestIsHelpError tests the IsHelpError function.
func TestIsHelpError(t *testing.T) {
	t.Parallel()
	if IsHelpError(nil) {
		t.Error("nil is not a help error")
	}
	if IsHelpError(errors.New("other")) {
		t.Error("arbitrary errors are not help errors")
	}
}

func TestRunCompletion(t *testing.T) {
	t.Parallel()
	code, out, _ := runApp(t, "-completion", "bash")
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(out, "complete -F _vieta_completions vieta") || !strings.Contains(out, "sequential tree") {
		t.Errorf("unexpected completion script:\n%s", out)
	}
}

func TestRunCompletionInvalid(t *testing.T) {
	t.Parallel()
	code, _, errOut := runApp(t, "-completion", "tcsh")
	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errOut, "unsupported shell") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestSetupSignals(t *testing.T) {
	t.Parallel()
	ctx, stop := SetupSignals(context.Background())
	if ctx.Err() != nil {
		t.Fatal("context should not be canceled before a signal")
	}
	stop()
	if ctx.Err() == nil {
		t.Error("stop should cancel the context")
	}
}
