package algorithm

import "github.com/hupe1980/sorttrace/core"

// Bubble is the classic ascending bubble sort with early exit. Each pass
// floats the largest remaining value to the end of the unsorted prefix and
// marks that position sorted; a pass without swaps marks the rest in one step.
type Bubble struct {
	BaseAlgorithm
}

// NewBubble creates a bubble sort instance.
func NewBubble() *Bubble {
	return &Bubble{NewBaseAlgorithm("bubble", "Repeatedly swaps adjacent out-of-order pairs until no swaps remain.")}
}

// Run sorts the container in place.
func (a *Bubble) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n < 2 {
		o.markAllSorted()
		return o.err
	}

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if o.compare(j, j+1) > 0 {
				o.swap(j, j+1)
				swapped = true
			}
			if o.err != nil {
				return o.err
			}
		}
		o.markSorted(n - 1 - i)
		if !swapped {
			// Everything below the settled suffix is already in order.
			o.markRange(0, n-2-i)
			return o.err
		}
	}
	// The pass counter stops before position 0.
	o.markSorted(0)
	return o.err
}
