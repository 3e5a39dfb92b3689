package vieta

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/vieta/internal/logging"
	"github.com/agbru/vieta/internal/radix"
)

// SignFactor returns (−1)ⁿ: +1 when n is even and −1 when n is odd.
// Negative n follows the same parity rule.
func SignFactor(n int) *big.Int {
	if n%2 == 0 {
		return big.NewInt(1)
	}
	return big.NewInt(-1)
}

// ConstantTerm applies Vieta's formula to already multiplied roots:
// k · (−1)ⁿ · product. The arguments are not modified.
func ConstantTerm(n int, k, product *big.Int) *big.Int {
	c := new(big.Int).Mul(k, SignFactor(n))
	return c.Mul(c, product)
}

// DecodeRoots decodes every root in declaration order. It stops at the
// first failure and wraps the error with the root identifier; the
// underlying apperrors.InvalidDigitError stays reachable with errors.As.
func DecodeRoots(ctx context.Context, roots []EncodedRoot) ([]DecodedRoot, error) {
	decoded := make([]DecodedRoot, 0, len(roots))
	for i, r := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := radix.Decode(r.Value, r.Base)
		if err != nil {
			return nil, fmt.Errorf("root %q: %w", r.ID, err)
		}
		decoded = append(decoded, DecodedRoot{
			Index:   i + 1,
			ID:      r.ID,
			Base:    r.Base,
			Encoded: r.Value,
			Value:   v,
		})
		rootsDecodedTotal.Inc()
	}
	return decoded, nil
}

// Evaluator computes constant terms with a given product engine. It wraps
// the pure formula with tracing, metrics and debug logging.
type Evaluator struct {
	engine ProductEngine
	logger logging.Logger
}

// NewEvaluator creates an Evaluator. A nil engine selects SequentialEngine
// and a nil logger discards diagnostics.
func NewEvaluator(engine ProductEngine, logger logging.Logger) *Evaluator {
	if engine == nil {
		engine = SequentialEngine{}
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Evaluator{engine: engine, logger: logger}
}

// Engine returns the product engine used by the evaluator.
func (e *Evaluator) Engine() ProductEngine { return e.engine }

// Evaluate decodes the roots of p, multiplies them and applies the sign
// factor and leading coefficient. An empty root list has product 1, so the
// constant is then k·(−1)ⁿ.
//
// Parameters:
//   - ctx: The context for tracing and cancellation between roots.
//   - p: The parsed problem; p.K must be non-nil.
//
// Returns:
//   - *Result: Every intermediate quantity of the evaluation.
//   - error: A decoding error (wrapping apperrors.InvalidDigitError or
//     radix.ErrBaseOutOfRange) or a context error.
func (e *Evaluator) Evaluate(ctx context.Context, p Problem) (res *Result, err error) {
	tracer := otel.Tracer("vieta")
	ctx, span := tracer.Start(ctx, "Evaluate")
	defer span.End()

	start := time.Now()
	engineName := e.engine.Name()
	defer func() {
		duration := time.Since(start)
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		evaluationsTotal.WithLabelValues(engineName, status).Inc()
		evaluationDuration.WithLabelValues(engineName).Observe(duration.Seconds())
		e.logger.Debug("evaluation completed",
			logging.String("engine", engineName),
			logging.Int("n", p.N),
			logging.Int("roots", len(p.Roots)),
			logging.Float64("duration", duration.Seconds()),
			logging.String("status", status),
		)
	}()

	if p.K == nil {
		return nil, errors.New("vieta: leading coefficient is nil")
	}
	span.SetAttributes(
		attribute.Int("vieta.n", p.N),
		attribute.Int("vieta.roots", len(p.Roots)),
		attribute.String("vieta.engine", engineName),
	)
	if p.N != len(p.Roots) {
		e.logger.Warn("declared root count differs from the number of root entries; sign uses n",
			logging.Int("n", p.N),
			logging.Int("entries", len(p.Roots)),
		)
	}

	roots, err := DecodeRoots(ctx, p.Roots)
	if err != nil {
		return nil, err
	}

	factors := make([]*big.Int, len(roots))
	for i := range roots {
		factors[i] = roots[i].Value
	}
	product, err := e.engine.Product(ctx, factors)
	if err != nil {
		return nil, err
	}

	return &Result{
		N:        p.N,
		K:        new(big.Int).Set(p.K),
		Roots:    roots,
		Product:  product,
		Sign:     SignFactor(p.N),
		Constant: ConstantTerm(p.N, p.K, product),
		Engine:   engineName,
		Duration: time.Since(start),
	}, nil
}
