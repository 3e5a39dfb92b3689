// Package service ties input loading and evaluation together behind a
// single call, so the application layer never touches parsing or engines
// directly.
package service

import (
	"context"

	apperrors "github.com/agbru/vieta/internal/errors"
	"github.com/agbru/vieta/internal/logging"
	"github.com/agbru/vieta/internal/vieta"
)

// ProblemLoader reads a problem from a path. input.Loader implements it.
type ProblemLoader interface {
	Load(path string) (*vieta.Problem, error)
}

// Service defines the interface for constant term evaluation.
type Service interface {
	// Solve loads the document at path and evaluates it with the named
	// product engine.
	//
	// Parameters:
	//   - ctx: The context for cancellation and tracing.
	//   - engineName: The name of the product engine to use.
	//   - path: The input document path.
	//
	// Returns:
	//   - *vieta.Result: The full evaluation result.
	//   - error: A configuration, input or decoding error.
	Solve(ctx context.Context, engineName, path string) (*vieta.Result, error)
}

// SolverService loads problems and evaluates them. It performs the whole
// pipeline synchronously and stops at the first error.
type SolverService struct {
	factory vieta.EngineFactory
	loader  ProblemLoader
	logger  logging.Logger
}

// Ensure SolverService implements Service interface.
var _ Service = (*SolverService)(nil)

// NewSolverService creates a new SolverService. A nil logger discards
// diagnostics.
func NewSolverService(factory vieta.EngineFactory, loader ProblemLoader, logger logging.Logger) *SolverService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &SolverService{
		factory: factory,
		loader:  loader,
		logger:  logger,
	}
}

// Solve resolves the engine first so that a bad engine name is reported
// before any input is read.
func (s *SolverService) Solve(ctx context.Context, engineName, path string) (*vieta.Result, error) {
	engine, err := s.factory.Get(engineName)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}

	problem, err := s.loader.Load(path)
	if err != nil {
		s.logger.Error("failed to load input", err, logging.String("path", path))
		return nil, err
	}
	s.logger.Info("input loaded",
		logging.String("path", path),
		logging.Int("n", problem.N),
		logging.Int("roots", len(problem.Roots)),
	)

	res, err := vieta.NewEvaluator(engine, s.logger).Evaluate(ctx, *problem)
	if err != nil {
		s.logger.Error("evaluation failed", err, logging.String("path", path))
		return nil, err
	}
	return res, nil
}
