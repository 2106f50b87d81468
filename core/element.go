package core

import "github.com/google/uuid"

// ElementState describes how a renderer should present an element in one
// snapshot. States are presentation hints, not correctness claims.
type ElementState string

const (
	// StateDefault is the resting state of an element.
	StateDefault ElementState = "default"
	// StateComparing marks the two positions touched by a Compare operation.
	StateComparing ElementState = "comparing"
	// StateSwapping marks the two positions about to be exchanged by Swap.
	StateSwapping ElementState = "swapping"
	// StateSorted marks a position that has reached its final place. Once a
	// position is marked sorted it never reverts for the rest of the run.
	StateSorted ElementState = "sorted"
)

// Element is one value in the instrumented sequence. The ID is assigned once
// when the container is created and follows the value through swaps, so
// consumers can key animations on identity rather than position.
type Element struct {
	Value float64      `json:"value"`
	ID    string       `json:"id"`
	State ElementState `json:"state"`
}

// NewID generates a new unique identifier for elements and traces.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }

// NewElements wraps raw values in Elements with fresh identities.
func NewElements(values []float64) []Element {
	elements := make([]Element, len(values))
	for i, v := range values {
		elements[i] = Element{Value: v, ID: NewID(), State: StateDefault}
	}
	return elements
}
