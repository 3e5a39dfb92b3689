// Package config provides the configuration management for the vieta
// application. It defines the configuration structure, parses command-line
// flags, applies VIETA_* environment overrides and validates the result.
//
// Running without any flag reads input.json from the working directory and
// prints the text report.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	apperrors "github.com/agbru/vieta/internal/errors"
	"github.com/agbru/vieta/internal/input"
	"github.com/agbru/vieta/internal/logging"
	"github.com/agbru/vieta/internal/vieta"
)

// EnvPrefix is the prefix for all environment variables used by vieta.
const EnvPrefix = "VIETA_"

// Default configuration values.
const (
	// DefaultInput is the document read when no path is given.
	DefaultInput = "input.json"
	// DefaultFormat detects the input syntax from the file name.
	DefaultFormat = string(input.FormatAuto)
	// DefaultEngine is the product engine used when none is selected.
	DefaultEngine = vieta.DefaultEngine
	// DefaultLogLevel keeps diagnostics quiet unless something is off.
	DefaultLogLevel = logging.DefaultLevel
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Input is the path of the input document, or "-" for standard input.
	Input string
	// Format is the input syntax: "auto", "json" or "yaml".
	Format string
	// Engine names the product engine.
	Engine string
	// JSONOutput, if true, prints a JSON report instead of the text report.
	JSONOutput bool
	// Quiet prints only the constant term.
	Quiet bool
	// OutputFile, if specified, also saves the report to this path.
	OutputFile string
	// NoColor disables colored output. NO_COLOR is honored as well.
	NoColor bool
	// LogLevel is the minimum level of diagnostics written to stderr.
	LogLevel string
	// Completion, if set, prints a completion script for the named shell
	// and exits.
	Completion string
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableEngines: The names of the registered product engines.
//
// Returns:
//   - error: An apperrors.ConfigError if the configuration is invalid.
func (c AppConfig) Validate(availableEngines []string) error {
	if strings.TrimSpace(c.Input) == "" {
		return apperrors.NewConfigError("input path cannot be empty")
	}
	if _, err := input.ParseFormat(c.Format); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if !slices.Contains(availableEngines, c.Engine) {
		return apperrors.NewConfigError("unrecognized engine: '%s'. Valid engines are: [%s]", c.Engine, strings.Join(availableEngines, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return nil
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// environment overrides for flags that were not given, and validates the
// result. A single positional argument is taken as the input path.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//   - availableEngines: Valid engine names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: flag.ErrHelp for -h, a parse error, or an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableEngines []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	engineHelp := fmt.Sprintf("Product engine, one of [%s].", strings.Join(availableEngines, ", "))

	config := AppConfig{}
	fs.StringVar(&config.Input, "input", DefaultInput, "Path of the input document (\"-\" reads standard input).")
	fs.StringVar(&config.Input, "i", DefaultInput, "Input path (shorthand).")
	fs.StringVar(&config.Format, "format", DefaultFormat, "Input format: auto, json or yaml.")
	fs.StringVar(&config.Engine, "engine", DefaultEngine, engineHelp)
	fs.BoolVar(&config.JSONOutput, "json", false, "Output the report in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the constant term.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level: debug, info, warn or error.")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish, powershell).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	inputSet := isFlagSet(fs, "input") || isFlagSet(fs, "i")
	switch rest := fs.Args(); {
	case len(rest) > 1:
		return AppConfig{}, reportInvalid(fs, errorWriter, apperrors.NewConfigError("expected at most one input path, got %d arguments", len(rest)))
	case len(rest) == 1 && inputSet:
		return AppConfig{}, reportInvalid(fs, errorWriter, apperrors.NewConfigError("input given both as -input and as argument %q", rest[0]))
	case len(rest) == 1:
		config.Input = rest[0]
		inputSet = true
	}

	applyEnvOverrides(&config, fs, inputSet)

	config.Engine = strings.ToLower(config.Engine)
	config.Format = strings.ToLower(config.Format)
	config.LogLevel = strings.ToLower(config.LogLevel)
	if err := config.Validate(availableEngines); err != nil {
		return AppConfig{}, reportInvalid(fs, errorWriter, err)
	}
	return config, nil
}

func reportInvalid(fs *flag.FlagSet, errorWriter io.Writer, err error) error {
	fmt.Fprintln(errorWriter, "Configuration error:", err)
	fs.Usage()
	return err
}
