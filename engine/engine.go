package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/hupe1980/sorttrace/algorithm"
	"github.com/hupe1980/sorttrace/core"
	"github.com/hupe1980/sorttrace/logging"
)

// ErrUnknownAlgorithm is returned when Run is asked for a name that has not
// been registered.
var ErrUnknownAlgorithm = fmt.Errorf("unknown algorithm")

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger

	// Random seeds the randomized built-in algorithms (bogo). Inject a
	// deterministic source in tests to reproduce exact shuffle sequences.
	// Defaults to a time-seeded source.
	Random *rand.Rand

	// RegisterBuiltIns controls whether the built-in algorithm set is
	// registered at construction. Defaults to true; disable to build an
	// engine exposing only custom algorithms.
	RegisterBuiltIns bool
}

// Info describes one registered algorithm for pickers and CLI listings.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Engine owns the algorithm registry and executes runs. Each run constructs
// its own private container and trace, so concurrent Run calls need no
// coordination beyond the registry lock.
type Engine struct {
	algorithms map[string]algorithm.Algorithm
	mu         sync.RWMutex

	logger logging.Logger
}

// New creates an Engine with the built-in algorithms registered and optional
// configuration applied.
//
// Example:
//
//	eng := engine.New(
//	    engine.WithLogger(logging.NewSlogLogger(logging.LogLevelInfo, "text", false)),
//	    engine.WithRandom(rand.New(rand.NewSource(42))),
//	)
//	trace, err := eng.Run(ctx, "bubble", []float64{5, 3, 8, 1})
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Logger:           logging.NoOpLogger{},
		Random:           rand.New(rand.NewSource(time.Now().UnixNano())),
		RegisterBuiltIns: true,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	e := &Engine{
		algorithms: make(map[string]algorithm.Algorithm),
		logger:     opts.Logger,
	}

	if opts.RegisterBuiltIns {
		for _, a := range algorithm.BuiltIns(opts.Random) {
			e.Register(a)
		}
	}

	return e
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithRandom injects the seedable random source used by randomized algorithms.
func WithRandom(rng *rand.Rand) func(o *Options) {
	return func(o *Options) { o.Random = rng }
}

// Register adds an algorithm to the registry, making it available for Run.
// An algorithm with the same name replaces the previous registration.
// Registration is thread-safe; complete it before starting runs to avoid
// replacing algorithms mid-flight.
func (e *Engine) Register(a algorithm.Algorithm) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.algorithms[a.Name()] = a
}

// Get retrieves a registered algorithm by name. The boolean reports whether
// it exists. Exposed for introspection and advanced use cases.
func (e *Engine) Get(name string) (algorithm.Algorithm, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	a, ok := e.algorithms[name]
	return a, ok
}

// List returns the registered algorithms sorted by name.
func (e *Engine) List() []Info {
	e.mu.RLock()
	defer e.mu.RUnlock()
	infos := make([]Info, 0, len(e.algorithms))
	for _, a := range e.algorithms {
		infos = append(infos, Info{Name: a.Name(), Description: a.Description()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Run executes the named algorithm against a copy of values and returns the
// sealed trace. The input slice is never mutated.
//
// Error semantics follow the instrumentation contract:
//   - Unknown algorithm or cancelled context: error with nil trace, since no
//     run ever started.
//   - Algorithm failure (bad indices are programming errors in the algorithm,
//     invalid input is unusable caller data): the error is returned together
//     with the sealed partial trace, so callers can still show progress up to
//     the failure point.
//   - Non-convergence (capped bogo, declined miracle): not an error; the
//     trace's Converged flag is false and the terminal narrative step
//     describes the outcome.
func (e *Engine) Run(ctx context.Context, name string, values []float64) (*core.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a, ok := e.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	c := core.NewContainer(name, values)

	start := time.Now()
	runErr := a.Run(c)
	steps := c.StepCount()
	trace := c.Trace()

	logging.LogAlgorithmRun(e.logger, name, steps, time.Since(start), trace.Converged, runErr)

	if runErr != nil {
		return trace, fmt.Errorf("algorithm %q: %w", name, runErr)
	}
	return trace, nil
}
