package algorithm

import "github.com/hupe1980/sorttrace/core"

// Comb is bubble sort with a shrinking gap (factor 1.3), eliminating turtles
// before finishing with gap-1 passes.
type Comb struct {
	BaseAlgorithm
}

// NewComb creates a comb sort instance.
func NewComb() *Comb {
	return &Comb{NewBaseAlgorithm("comb", "Bubble sort over a shrinking gap to eliminate small values near the end.")}
}

// Run sorts the container in place.
func (a *Comb) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n < 2 {
		o.markAllSorted()
		return o.err
	}

	gap := n
	swapped := true
	for gap > 1 || swapped {
		gap = gap * 10 / 13
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := 0; i+gap < n; i++ {
			if o.compare(i, i+gap) > 0 {
				o.swap(i, i+gap)
				swapped = true
			}
			if o.err != nil {
				return o.err
			}
		}
	}
	o.markAllSorted()
	return o.err
}
