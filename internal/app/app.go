package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agbru/vieta/internal/cli"
	"github.com/agbru/vieta/internal/config"
	apperrors "github.com/agbru/vieta/internal/errors"
	"github.com/agbru/vieta/internal/input"
	"github.com/agbru/vieta/internal/logging"
	"github.com/agbru/vieta/internal/service"
	"github.com/agbru/vieta/internal/ui"
	"github.com/agbru/vieta/internal/vieta"
)

// Application represents the vieta application instance.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Factory provides the product engines.
	Factory vieta.EngineFactory
	// Loader reads the input document.
	Loader service.ProblemLoader
	// Logger receives diagnostics on ErrWriter.
	Logger logging.Logger
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output and diagnostics.
//
// Returns:
//   - *Application: A new application instance.
//   - error: flag.ErrHelp, or an apperrors.ConfigError if parsing or
//     validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	factory := vieta.NewRegistry()

	programName := "vieta"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, factory.List())
	if err != nil {
		var cfgErr apperrors.ConfigError
		if IsHelpError(err) || errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, apperrors.NewConfigError("%v", err)
	}

	return &Application{
		Config:    cfg,
		Factory:   factory,
		Loader:    input.Loader{Format: input.Format(cfg.Format)},
		Logger:    logging.NewLogger(errWriter, "vieta", cfg.LogLevel),
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application: either it prints a completion script, or
// it loads the input, evaluates it and prints the report.
//
// Parameters:
//   - ctx: The parent context; SIGINT and SIGTERM cancel it.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor, out)

	return a.runSolve(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runSolve runs the pipeline once. Nothing is printed to out before the
// evaluation has fully succeeded.
func (a *Application) runSolve(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := SetupSignals(ctx)
	defer stopSignals()

	svc := service.NewSolverService(a.Factory, a.Loader, a.Logger)
	res, err := svc.Solve(ctx, a.Config.Engine, a.Config.Input)
	if err != nil {
		return a.handleError(err, out)
	}

	outputCfg := cli.OutputConfig{
		Source:     sourceName(a.Config.Input),
		OutputFile: a.Config.OutputFile,
		JSON:       a.Config.JSONOutput,
		Quiet:      a.Config.Quiet,
	}
	if err := cli.DisplayResultWithConfig(out, res, outputCfg); err != nil {
		return a.handleError(err, out)
	}
	return apperrors.ExitSuccess
}

// handleError reports err on ErrWriter and, in JSON mode, also writes a
// JSON error document to out.
func (a *Application) handleError(err error, out io.Writer) int {
	code := apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
	if a.Config.JSONOutput {
		if encErr := cli.DisplayJSONError(out, err, code); encErr != nil {
			a.Logger.Error("failed to write JSON error", encErr)
		}
	}
	return code
}

func sourceName(path string) string {
	if path == input.StdinPath {
		return "standard input"
	}
	return path
}

// IsHelpError checks if the error is a help flag error (--help was used).
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Execute is the whole command: version flag, configuration, run. It
// returns the process exit code.
//
// Parameters:
//   - ctx: The parent context.
//   - args: The full command line, program name included.
//   - out: The writer for standard output.
//   - errWriter: The writer for errors and diagnostics.
func Execute(ctx context.Context, args []string, out, errWriter io.Writer) int {
	if len(args) > 1 && HasVersionFlag(args[1:]) {
		if hasJSONFlag(args[1:]) {
			if err := PrintVersionJSON(out); err != nil {
				return apperrors.HandleError(err, errWriter, nil)
			}
			return apperrors.ExitSuccess
		}
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	application, err := New(args, errWriter)
	if err != nil {
		if IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitCodeFor(err)
	}
	return application.Run(ctx, out)
}
