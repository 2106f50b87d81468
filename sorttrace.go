// Package sorttrace provides a high-level façade over the run engine and the
// user-program sandbox, enabling rapid construction of sorting-visualization
// backends. Most applications interact with this package by:
//  1. Creating a SortTrace via New() (optionally overriding logger and random source)
//  2. Optionally registering custom algorithms alongside the built-ins
//  3. Running algorithms (Run) or sandboxed user programs (RunUserProgram /
//     RunPlainUserProgram) to produce traces
//
// The façade delegates orchestration to engine.Engine and isolation to
// sandbox.Sandbox while keeping setup and usage ergonomics concise. All
// defaults are safe for local development and testing; hosts typically supply
// a structured logger and, in tests, a seeded random source.
package sorttrace

import (
	"context"
	"math/rand"

	"github.com/hupe1980/sorttrace/algorithm"
	"github.com/hupe1980/sorttrace/core"
	"github.com/hupe1980/sorttrace/engine"
	"github.com/hupe1980/sorttrace/logging"
	"github.com/hupe1980/sorttrace/sandbox"
)

// Options configures the SortTrace instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// Random seeds the randomized built-in algorithms. Defaults to a
	// time-seeded source; inject a deterministic one in tests.
	Random *rand.Rand
}

// SortTrace is the high-level façade aggregating the engine and the sandbox.
type SortTrace struct {
	opts    Options
	engine  *engine.Engine
	sandbox *sandbox.Sandbox
}

// New creates a new SortTrace instance with optional overrides. All built-in
// algorithms are registered.
func New(optFns ...func(o *Options)) *SortTrace {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	eng := engine.New(func(o *engine.Options) {
		o.Logger = opts.Logger
		if opts.Random != nil {
			o.Random = opts.Random
		}
	})

	sb := sandbox.New(sandbox.WithLogger(opts.Logger))

	return &SortTrace{opts: opts, engine: eng, sandbox: sb}
}

// RegisterAlgorithm adds a custom algorithm to the underlying engine.
func (s *SortTrace) RegisterAlgorithm(a algorithm.Algorithm) { s.engine.Register(a) }

// Algorithms lists the registered algorithms sorted by name.
func (s *SortTrace) Algorithms() []engine.Info { return s.engine.List() }

// Run executes the named algorithm against a copy of values and returns the
// sealed trace. See engine.Engine.Run for error semantics.
func (s *SortTrace) Run(ctx context.Context, name string, values []float64) (*core.Trace, error) {
	return s.engine.Run(ctx, name, values)
}

// RunUserProgram executes caller code in instrumented mode: the function
// receives a handle exposing exactly the container primitives and every call
// records steps like a built-in algorithm.
func (s *SortTrace) RunUserProgram(fn sandbox.InstrumentedFunc, values []float64) (*core.Trace, error) {
	return s.sandbox.RunInstrumented(fn, values)
}

// RunPlainUserProgram executes caller code in uninstrumented mode: the
// function receives a plain value slice and returns the sorted sequence; only
// the initial and final snapshots are recorded.
func (s *SortTrace) RunPlainUserProgram(fn sandbox.UninstrumentedFunc, values []float64) (*core.Trace, error) {
	return s.sandbox.RunUninstrumented(fn, values)
}
