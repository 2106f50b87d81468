package testutil

import (
	"sort"

	"github.com/hupe1980/sorttrace/core"
)

// TraceBuilder provides a fluent helper for constructing traces in tests.
// Example:
//
//	tr := NewTraceBuilder("custom", 3, 1, 2).Compare(0, 1).Swap(0, 1).Build()
//
// Chain only the steps you need; the builder tracks a live snapshot and
// applies transient states the way the container would. It intentionally
// performs no validation, so tests can also build malformed traces for the
// evaluation package.
type TraceBuilder struct {
	trace    *core.Trace
	snapshot []core.Element
	sorted   []bool
}

// NewTraceBuilder creates a builder over fresh elements wrapping values.
func NewTraceBuilder(algorithm string, values ...float64) *TraceBuilder {
	return &TraceBuilder{
		trace:    core.NewTrace(algorithm),
		snapshot: core.NewElements(values),
		sorted:   make([]bool, len(values)),
	}
}

// Narrative appends a narrative-only step (chainable).
func (b *TraceBuilder) Narrative(description string) *TraceBuilder {
	b.append(core.NewStep(b.states(nil), description))
	return b
}

// Compare appends a compare step marking i and j (chainable).
func (b *TraceBuilder) Compare(i, j int) *TraceBuilder {
	snap := b.states(map[int]core.ElementState{i: core.StateComparing, j: core.StateComparing})
	b.append(core.NewCompareStep(snap, i, j, "compare"))
	return b
}

// Swap appends the pre/post step pair and exchanges the snapshot values (chainable).
func (b *TraceBuilder) Swap(i, j int) *TraceBuilder {
	pre := b.states(map[int]core.ElementState{i: core.StateSwapping, j: core.StateSwapping})
	b.append(core.NewSwapStep(pre, i, j, "swapping"))
	b.snapshot[i], b.snapshot[j] = b.snapshot[j], b.snapshot[i]
	b.append(core.NewSwapStep(b.states(nil), i, j, "swapped"))
	return b
}

// MarkSorted appends a sorted-marking step for i (chainable).
func (b *TraceBuilder) MarkSorted(i int) *TraceBuilder {
	b.sorted[i] = true
	b.append(core.NewSortedStep(b.states(nil), []int{i}, "sorted"))
	return b
}

// Step appends an arbitrary prebuilt step, bypassing snapshot tracking
// (chainable). Use it to inject malformed steps.
func (b *TraceBuilder) Step(s core.Step) *TraceBuilder {
	b.append(s)
	return b
}

// NonConverged flags the trace as non-converged (chainable).
func (b *TraceBuilder) NonConverged() *TraceBuilder {
	b.trace.MarkNonConverged()
	return b
}

// Build seals the trace, appending the synthetic trailing all-sorted step
// first, and returns it.
func (b *TraceBuilder) Build() *core.Trace {
	all := make([]int, len(b.snapshot))
	snap := make([]core.Element, len(b.snapshot))
	for i, e := range b.snapshot {
		e.State = core.StateSorted
		snap[i] = e
		all[i] = i
	}
	b.append(core.NewSortedStep(snap, all, "All elements sorted"))
	b.trace.Seal()
	return b.trace
}

// BuildRaw seals and returns the trace without a synthetic trailing step.
func (b *TraceBuilder) BuildRaw() *core.Trace {
	b.trace.Seal()
	return b.trace
}

func (b *TraceBuilder) append(s core.Step) { _ = b.trace.Append(s) }

func (b *TraceBuilder) states(transient map[int]core.ElementState) []core.Element {
	out := make([]core.Element, len(b.snapshot))
	for i, e := range b.snapshot {
		e.State = core.StateDefault
		if b.sorted[i] {
			e.State = core.StateSorted
		}
		if s, ok := transient[i]; ok {
			e.State = s
		}
		out[i] = e
	}
	return out
}

// Permutations returns every permutation of values using Heap's algorithm.
// Intended for short inputs in property-style tests.
func Permutations(values []float64) [][]float64 {
	var out [][]float64
	work := append([]float64(nil), values...)

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			out = append(out, append([]float64(nil), work...))
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
		}
	}
	if len(work) == 0 {
		return [][]float64{{}}
	}
	generate(len(work))
	return out
}

// SortedCopy returns an ascending copy of values.
func SortedCopy(values []float64) []float64 {
	out := append([]float64(nil), values...)
	sort.Float64s(out)
	return out
}

// IsAscending reports whether values are in ascending order.
func IsAscending(values []float64) bool {
	for i := 0; i+1 < len(values); i++ {
		if values[i] > values[i+1] {
			return false
		}
	}
	return true
}

// FinalValues extracts the value order of a trace's last snapshot. The
// synthetic trailing step fakes states, never values, so this is the real
// final mutation state of the run.
func FinalValues(t *core.Trace) []float64 {
	last, ok := t.Last()
	if !ok {
		return nil
	}
	out := make([]float64, len(last.Snapshot))
	for i, e := range last.Snapshot {
		out[i] = e.Value
	}
	return out
}
