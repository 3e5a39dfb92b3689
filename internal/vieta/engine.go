package vieta

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// DefaultEngine is the product engine used when none is configured.
const DefaultEngine = "sequential"

// ProductEngine multiplies decoded roots together. Implementations must
// return 1 for an empty slice, must not modify their inputs, and must all
// produce the same value for the same factors.
type ProductEngine interface {
	// Name returns the registry name of the engine.
	Name() string
	// Product returns the product of factors. The context is checked
	// between multiplications.
	Product(ctx context.Context, factors []*big.Int) (*big.Int, error)
}

// EngineFactory resolves product engines by name.
type EngineFactory interface {
	// Get returns the engine registered under name.
	Get(name string) (ProductEngine, error)
	// List returns the sorted names of all registered engines.
	List() []string
}

var (
	// builtinEngines holds engines registered at init time, including the
	// build-tag gated ones.
	builtinEngines   = map[string]func() ProductEngine{}
	builtinEnginesMu sync.Mutex
)

// RegisterEngine makes an engine available to every registry created
// afterwards with NewRegistry. It is meant to be called from init functions.
func RegisterEngine(name string, creator func() ProductEngine) {
	builtinEnginesMu.Lock()
	defer builtinEnginesMu.Unlock()
	builtinEngines[name] = creator
}

func init() {
	RegisterEngine("sequential", func() ProductEngine { return SequentialEngine{} })
	RegisterEngine("tree", func() ProductEngine { return TreeEngine{} })
}

// Registry is the default EngineFactory. Engines are created lazily and
// cached.
type Registry struct {
	mu       sync.RWMutex
	creators map[string]func() ProductEngine
	engines  map[string]ProductEngine
}

// Ensure Registry implements EngineFactory.
var _ EngineFactory = (*Registry)(nil)

// NewRegistry creates a registry holding every engine registered with
// RegisterEngine.
//
// Pre-registered engines:
//   - "sequential": left fold with big.Int.Mul
//   - "tree": balanced pairwise product tree
//   - "gmp": GNU MP multiplication (only with -tags gmp)
func NewRegistry() *Registry {
	builtinEnginesMu.Lock()
	defer builtinEnginesMu.Unlock()

	r := &Registry{
		creators: make(map[string]func() ProductEngine, len(builtinEngines)),
		engines:  make(map[string]ProductEngine),
	}
	for name, creator := range builtinEngines {
		r.creators[name] = creator
	}
	return r
}

// Register adds or replaces an engine in this registry only.
func (r *Registry) Register(name string, creator func() ProductEngine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[name] = creator
	delete(r.engines, name)
}

// Get returns the engine registered under name, creating it on first use.
func (r *Registry) Get(name string) (ProductEngine, error) {
	r.mu.RLock()
	if e, ok := r.engines[name]; ok {
		r.mu.RUnlock()
		return e, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.engines[name]; ok {
		return e, nil
	}
	creator, ok := r.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown product engine: %s", name)
	}
	e := creator()
	r.engines[name] = e
	return e, nil
}

// List returns a sorted list of all registered engine names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.creators))
	for name := range r.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SequentialEngine multiplies factors left to right.
type SequentialEngine struct{}

// Name returns "sequential".
func (SequentialEngine) Name() string { return "sequential" }

// Product folds the factors into an accumulator starting at 1.
func (SequentialEngine) Product(ctx context.Context, factors []*big.Int) (*big.Int, error) {
	acc := big.NewInt(1)
	for _, f := range factors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		acc.Mul(acc, f)
	}
	return acc, nil
}

// TreeEngine multiplies factors as a balanced binary tree, so that the
// operands of each multiplication have similar sizes. For many large roots
// this lets math/big use Karatsuba on balanced operands instead of growing
// one accumulator against small factors.
type TreeEngine struct{}

// Name returns "tree".
func (TreeEngine) Name() string { return "tree" }

// Product returns the product of factors.
func (TreeEngine) Product(ctx context.Context, factors []*big.Int) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return treeProduct(factors), nil
}

func treeProduct(factors []*big.Int) *big.Int {
	switch len(factors) {
	case 0:
		return big.NewInt(1)
	case 1:
		return new(big.Int).Set(factors[0])
	case 2:
		return new(big.Int).Mul(factors[0], factors[1])
	}
	mid := len(factors) / 2
	left := treeProduct(factors[:mid])
	return left.Mul(left, treeProduct(factors[mid:]))
}
