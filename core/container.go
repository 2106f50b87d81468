package core

import (
	"fmt"
	"strconv"
)

// Container wraps a fixed-length sequence of numeric values with element
// identity and executes observably-instrumented primitive operations. Every
// observable mutation or comparison appends one or more steps to the trace
// the container owns.
//
// A Container is private to a single run: it is not safe for concurrent use
// and none is needed, because each run constructs its own. After Trace()
// returns, ownership of the recorded trace transfers to the caller and the
// container must not be used again.
type Container struct {
	elements []Element
	trace    *Trace

	// sorted tracks positions permanently marked sorted. The flag is
	// positional: swapping values through a sorted position does not move
	// the flag.
	sorted []bool

	nextDescription    string
	hasNextDescription bool
}

// NewContainer wraps the given values for one run of the named algorithm.
// Each value receives a fresh stable identity. The input slice is copied;
// the caller's slice is never mutated.
func NewContainer(algorithm string, values []float64) *Container {
	return &Container{
		elements: NewElements(values),
		trace:    NewTrace(algorithm),
		sorted:   make([]bool, len(values)),
	}
}

// Len returns the number of elements. Pure; records no step.
func (c *Container) Len() int { return len(c.elements) }

// Get returns the value at position i. Pure; records no step.
func (c *Container) Get(i int) (float64, error) {
	if !c.inBounds(i) {
		return 0, fmt.Errorf("%w: index %d outside [0,%d)", ErrOutOfRange, i, len(c.elements))
	}
	return c.elements[i].Value, nil
}

// Set overwrites the value at position i and records one step with a plain
// value-changed narrative.
func (c *Container) Set(i int, value float64) error {
	if !c.inBounds(i) {
		return fmt.Errorf("%w: index %d outside [0,%d)", ErrOutOfRange, i, len(c.elements))
	}
	c.elements[i].Value = value
	desc := c.takeDescription(fmt.Sprintf("Set value at position %d to %s", i, formatValue(value)))
	c.append(NewStep(c.snapshot(nil), desc))
	return nil
}

// Compare records one step marking positions i and j as comparing and returns
// the sign of values[i] - values[j]. It never mutates values, so repeated
// calls with the same indices yield the same sign.
func (c *Container) Compare(i, j int) (int, error) {
	if !c.inBounds(i) || !c.inBounds(j) {
		return 0, fmt.Errorf("%w: (%d,%d) outside [0,%d)", ErrInvalidIndices, i, j, len(c.elements))
	}
	vi, vj := c.elements[i].Value, c.elements[j].Value
	desc := c.takeDescription(fmt.Sprintf("Comparing elements at positions %d and %d", i, j))
	snap := c.snapshot(map[int]ElementState{i: StateComparing, j: StateComparing})
	c.append(NewCompareStep(snap, i, j, desc))
	switch {
	case vi < vj:
		return -1, nil
	case vi > vj:
		return 1, nil
	default:
		return 0, nil
	}
}

// Swap exchanges the elements at positions i and j, identity included, and
// records two steps: a pre-swap snapshot marking both positions as swapping
// and a post-swap snapshot after the values physically moved. Swapping a
// position with itself is a no-op that records nothing.
func (c *Container) Swap(i, j int) error {
	if !c.inBounds(i) || !c.inBounds(j) {
		return fmt.Errorf("%w: (%d,%d) outside [0,%d)", ErrInvalidIndices, i, j, len(c.elements))
	}
	if i == j {
		return nil
	}

	preDesc := c.takeDescription(fmt.Sprintf("Swapping elements at positions %d and %d", i, j))
	pre := c.snapshot(map[int]ElementState{i: StateSwapping, j: StateSwapping})
	c.append(NewSwapStep(pre, i, j, preDesc))

	c.elements[i], c.elements[j] = c.elements[j], c.elements[i]

	postDesc := fmt.Sprintf("Swapped: position %d is now %s, position %d is now %s",
		i, formatValue(c.elements[i].Value), j, formatValue(c.elements[j].Value))
	c.append(NewSwapStep(c.snapshot(nil), i, j, postDesc))
	return nil
}

// MarkSorted permanently marks position i as sorted and records one step
// listing it. Marking an already sorted position records a step but changes
// nothing (idempotent).
func (c *Container) MarkSorted(i int) error {
	if !c.inBounds(i) {
		return fmt.Errorf("%w: index %d outside [0,%d)", ErrOutOfRange, i, len(c.elements))
	}
	c.sorted[i] = true
	desc := c.takeDescription(fmt.Sprintf("Element at position %d is in its final position", i))
	c.append(NewSortedStep(c.snapshot(nil), []int{i}, desc))
	return nil
}

// MarkRangeSorted permanently marks every position in [start, end] as sorted
// in one step listing all affected positions.
func (c *Container) MarkRangeSorted(start, end int) error {
	if start < 0 || start > end || end >= len(c.elements) {
		return fmt.Errorf("%w: [%d,%d] within length %d", ErrInvalidRange, start, end, len(c.elements))
	}
	indices := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		c.sorted[i] = true
		indices = append(indices, i)
	}
	desc := c.takeDescription(fmt.Sprintf("Elements %d through %d are in their final positions", start, end))
	c.append(NewSortedStep(c.snapshot(nil), indices, desc))
	return nil
}

// SetNextDescription attaches text as the narrative for the next recorded
// step only. It is consumed exactly once, regardless of which operation
// records that step; calling it again before a step is recorded discards the
// earlier text.
func (c *Container) SetNextDescription(text string) {
	c.nextDescription = text
	c.hasNextDescription = true
}

// Note records a narrative-only step with the current snapshot. Not part of
// the primitive operation set; producers use it for commentary between
// operations (attempt counters, phase boundaries).
func (c *Container) Note(description string) {
	c.append(NewStep(c.snapshot(nil), c.takeDescription(description)))
}

// Fail records a terminal narrative step and flags the trace as
// non-converged. Used by runs that give up without reaching sorted order.
func (c *Container) Fail(description string) {
	c.append(NewStep(c.snapshot(nil), c.takeDescription(description)))
	c.trace.MarkNonConverged()
}

// Values returns a copy of the current value order. Pure; records no step.
func (c *Container) Values() []float64 {
	out := make([]float64, len(c.elements))
	for i, e := range c.elements {
		out[i] = e.Value
	}
	return out
}

// Trace appends the synthetic trailing step marking every element sorted,
// seals the trace and transfers ownership to the caller. The trailing step is
// appended regardless of whether the run actually reached sorted order; it is
// a presentation artifact for players that fade the whole array to the sorted
// color. Consumers checking real sortedness must look at the final snapshot
// values or the Converged flag. The container keeps no reference and must not
// be used after this call.
func (c *Container) Trace() *Trace {
	snap := make([]Element, len(c.elements))
	indices := make([]int, len(c.elements))
	for i, e := range c.elements {
		e.State = StateSorted
		snap[i] = e
		indices[i] = i
	}
	c.append(NewSortedStep(snap, indices, "All elements sorted"))

	t := c.trace
	t.Seal()
	c.trace = nil
	return t
}

// StepCount returns the number of steps recorded so far. Pure; used by the
// engine and sandbox for logging without touching the live trace.
func (c *Container) StepCount() int { return c.trace.Len() }

func (c *Container) inBounds(i int) bool { return i >= 0 && i < len(c.elements) }

// snapshot copies the live elements applying permanent sorted flags first and
// transient per-step markers second. A sorted position touched by a compare
// or swap shows the transient state for that step only; the permanent flag
// reasserts itself on the next snapshot.
func (c *Container) snapshot(transient map[int]ElementState) []Element {
	snap := make([]Element, len(c.elements))
	for i, e := range c.elements {
		e.State = StateDefault
		if c.sorted[i] {
			e.State = StateSorted
		}
		if s, ok := transient[i]; ok {
			e.State = s
		}
		snap[i] = e
	}
	return snap
}

// takeDescription consumes a pending SetNextDescription override, falling
// back to the operation's default narrative.
func (c *Container) takeDescription(def string) string {
	if c.hasNextDescription {
		c.hasNextDescription = false
		text := c.nextDescription
		c.nextDescription = ""
		return text
	}
	return def
}

func (c *Container) append(s Step) {
	// Append can only fail on a sealed trace, which the container never
	// exposes before sealing; ignore to keep primitive signatures clean.
	_ = c.trace.Append(s)
}

func formatValue(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
