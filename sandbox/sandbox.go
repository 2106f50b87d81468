package sandbox

import (
	"fmt"
	"runtime/debug"
	"sort"
	"time"

	"github.com/hupe1980/sorttrace/core"
	"github.com/hupe1980/sorttrace/logging"
)

// userProgramName is the algorithm name recorded on traces produced by
// sandboxed user programs.
const userProgramName = "user-program"

// Handle exposes exactly the instrumented primitive operations to caller
// code. It is the only means the caller has of reading or mutating the
// backing values in instrumented mode.
type Handle interface {
	// Len returns the number of elements. Records no step.
	Len() int
	// Get returns the value at position i. Records no step.
	Get(i int) (float64, error)
	// Set overwrites the value at position i and records one step.
	Set(i int, value float64) error
	// Compare records one compare step and returns the sign of
	// values[i] - values[j].
	Compare(i, j int) (int, error)
	// Swap exchanges positions i and j, recording two steps (none if i == j).
	Swap(i, j int) error
	// MarkSorted permanently marks position i sorted in one step.
	MarkSorted(i int) error
	// MarkRangeSorted permanently marks [start, end] sorted in one step.
	MarkRangeSorted(start, end int) error
	// SetNextDescription overrides the narrative of the next recorded step.
	SetNextDescription(text string)
}

// handle adapts a container to the Handle interface. The wrapper is
// unexported so caller code cannot type-assert its way to the container's
// trace ownership methods.
type handle struct {
	c *core.Container
}

func (h handle) Len() int                             { return h.c.Len() }
func (h handle) Get(i int) (float64, error)           { return h.c.Get(i) }
func (h handle) Set(i int, value float64) error       { return h.c.Set(i, value) }
func (h handle) Compare(i, j int) (int, error)        { return h.c.Compare(i, j) }
func (h handle) Swap(i, j int) error                  { return h.c.Swap(i, j) }
func (h handle) MarkSorted(i int) error               { return h.c.MarkSorted(i) }
func (h handle) MarkRangeSorted(start, end int) error { return h.c.MarkRangeSorted(start, end) }
func (h handle) SetNextDescription(text string)       { h.c.SetNextDescription(text) }

// InstrumentedFunc is caller-supplied sorting logic operating through the
// instrumented handle.
type InstrumentedFunc func(h Handle) error

// UninstrumentedFunc is caller-supplied sorting logic operating on a plain
// value slice. It must return the sorted sequence.
type UninstrumentedFunc func(values []float64) []float64

// UserCodeError reports a failure inside caller-supplied code: a panic, a
// returned error, or a malformed result. The partial trace recorded before
// the failure is attached so progress stays inspectable.
type UserCodeError struct {
	Message   string
	Recovered any    // non-nil when the caller's code panicked
	Stack     []byte // goroutine stack captured at recovery
	Trace     *core.Trace
}

// Error implements the error interface.
func (e *UserCodeError) Error() string { return fmt.Sprintf("user code: %s", e.Message) }

// Options configures a Sandbox.
type Options struct {
	// Logger provides structured logging. Defaults to NoOp logger if nil.
	Logger logging.Logger
}

// Sandbox executes user programs and converts their failures into typed
// results. Safe for concurrent use: each run builds private state.
type Sandbox struct {
	logger logging.Logger
}

// New creates a Sandbox with optional overrides.
func New(optFns ...func(o *Options)) *Sandbox {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Sandbox{logger: opts.Logger}
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// RunInstrumented executes caller code against an instrumented handle over a
// copy of values. Steps are recorded exactly as for built-in algorithms,
// including the synthetic trailing all-sorted step at sealing time.
//
// A panic or returned error becomes a *UserCodeError; the sealed partial
// trace (steps recorded up to the failure) is returned alongside it and
// attached to the error. The failure never propagates past this boundary.
func (s *Sandbox) RunInstrumented(fn InstrumentedFunc, values []float64) (*core.Trace, error) {
	c := core.NewContainer(userProgramName, values)
	start := time.Now()

	var (
		fnErr     error
		recovered any
		stack     []byte
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				recovered = r
				stack = debug.Stack()
			}
		}()
		fnErr = fn(handle{c: c})
	}()

	trace := c.Trace()

	switch {
	case recovered != nil:
		trace.MarkNonConverged()
		ucErr := &UserCodeError{
			Message:   fmt.Sprintf("panic: %v", recovered),
			Recovered: recovered,
			Stack:     stack,
			Trace:     trace,
		}
		logging.LogSandboxRun(s.logger, "instrumented", trace.Len(), time.Since(start), ucErr)
		return trace, ucErr
	case fnErr != nil:
		trace.MarkNonConverged()
		ucErr := &UserCodeError{Message: fnErr.Error(), Trace: trace}
		logging.LogSandboxRun(s.logger, "instrumented", trace.Len(), time.Since(start), ucErr)
		return trace, ucErr
	default:
		logging.LogSandboxRun(s.logger, "instrumented", trace.Len(), time.Since(start), nil)
		return trace, nil
	}
}

// RunUninstrumented executes caller code against a plain copy of values and
// records exactly two steps: the initial snapshot and a final snapshot whose
// per-position sorted state reflects how the returned order compares to
// ascending order. No synthetic trailing step is appended; the computed final
// snapshot already plays that role and, unlike the synthetic step, it is
// honest about positions the caller left out of place.
//
// A panic or a malformed result (nil, or a length differing from the input)
// becomes a *UserCodeError with the initial-snapshot trace attached.
func (s *Sandbox) RunUninstrumented(fn UninstrumentedFunc, values []float64) (*core.Trace, error) {
	elements := core.NewElements(values)
	trace := core.NewTrace(userProgramName)
	_ = trace.Append(core.NewStep(elements, "Initial array state"))
	start := time.Now()

	plain := make([]float64, len(values))
	copy(plain, values)

	var (
		returned  []float64
		recovered any
		stack     []byte
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				recovered = r
				stack = debug.Stack()
			}
		}()
		returned = fn(plain)
	}()

	if recovered != nil {
		trace.MarkNonConverged()
		trace.Seal()
		ucErr := &UserCodeError{
			Message:   fmt.Sprintf("panic: %v", recovered),
			Recovered: recovered,
			Stack:     stack,
			Trace:     trace,
		}
		logging.LogSandboxRun(s.logger, "uninstrumented", trace.Len(), time.Since(start), ucErr)
		return trace, ucErr
	}
	if returned == nil || len(returned) != len(values) {
		trace.MarkNonConverged()
		trace.Seal()
		ucErr := &UserCodeError{
			Message: fmt.Sprintf("malformed result: expected %d values, got %d", len(values), len(returned)),
			Trace:   trace,
		}
		logging.LogSandboxRun(s.logger, "uninstrumented", trace.Len(), time.Since(start), ucErr)
		return trace, ucErr
	}

	final, sortedIndices := finalSnapshot(elements, returned)
	_ = trace.Append(core.NewSortedStep(final, sortedIndices, "Final array state"))
	if len(sortedIndices) != len(returned) {
		trace.MarkNonConverged()
	}
	trace.Seal()

	logging.LogSandboxRun(s.logger, "uninstrumented", trace.Len(), time.Since(start), nil)
	return trace, nil
}

// finalSnapshot builds the closing snapshot for uninstrumented mode. Each
// position is marked sorted only when it holds the value ascending order
// would place there. Identities are re-associated by value, first unconsumed
// match wins; values the caller introduced out of thin air get fresh IDs.
func finalSnapshot(original []core.Element, returned []float64) ([]core.Element, []int) {
	ascending := make([]float64, len(returned))
	copy(ascending, returned)
	sort.Float64s(ascending)

	consumed := make([]bool, len(original))
	snapshot := make([]core.Element, len(returned))
	var sortedIndices []int

	for i, v := range returned {
		id := ""
		for j, e := range original {
			if !consumed[j] && e.Value == v {
				consumed[j] = true
				id = e.ID
				break
			}
		}
		if id == "" {
			id = core.NewID()
		}

		state := core.StateDefault
		if v == ascending[i] {
			state = core.StateSorted
			sortedIndices = append(sortedIndices, i)
		}
		snapshot[i] = core.Element{Value: v, ID: id, State: state}
	}
	return snapshot, sortedIndices
}
