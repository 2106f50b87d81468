package core

// Step is one immutable recorded snapshot of instrumentation state plus
// metadata about the operation that produced it. After construction it should
// be treated as immutable. It captures:
//
//   - Snapshot: a full copy of every element at the moment of recording
//   - CompareIndices / SwapIndices: the position pair touched by the
//     operation (at most one of the two is set per step)
//   - SortedIndices: positions newly marked as sorted by this step
//   - Description: the human readable narrative for playback
//
// Snapshot elements are value copies; a Step never shares element storage
// with another Step or with the live container, so later in-place mutation
// cannot corrupt an already recorded step.
type Step struct {
	Snapshot       []Element `json:"snapshot"`
	CompareIndices *[2]int   `json:"compare_indices,omitempty"`
	SwapIndices    *[2]int   `json:"swap_indices,omitempty"`
	SortedIndices  []int     `json:"sorted_indices,omitempty"`
	Description    string    `json:"description"`
}

// NewStep creates a narrative-only step from a snapshot. The snapshot slice
// is deep-copied at the constructor boundary.
func NewStep(snapshot []Element, description string) Step {
	return Step{Snapshot: copySnapshot(snapshot), Description: description}
}

// NewCompareStep creates a step recording a comparison of positions i and j.
func NewCompareStep(snapshot []Element, i, j int, description string) Step {
	s := NewStep(snapshot, description)
	s.CompareIndices = &[2]int{i, j}
	return s
}

// NewSwapStep creates a step recording an exchange of positions i and j.
func NewSwapStep(snapshot []Element, i, j int, description string) Step {
	s := NewStep(snapshot, description)
	s.SwapIndices = &[2]int{i, j}
	return s
}

// NewSortedStep creates a step recording positions newly marked sorted.
// The indices slice is copied.
func NewSortedStep(snapshot []Element, indices []int, description string) Step {
	s := NewStep(snapshot, description)
	s.SortedIndices = append([]int(nil), indices...)
	return s
}

// copySnapshot returns an independent copy of the given elements. Element is
// a pure value type, so copying the slice severs all sharing.
func copySnapshot(snapshot []Element) []Element {
	out := make([]Element, len(snapshot))
	copy(out, snapshot)
	return out
}
