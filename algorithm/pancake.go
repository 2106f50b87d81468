package algorithm

import "github.com/hupe1980/sorttrace/core"

// Pancake sorts by prefix reversals: find the maximum of the unsorted prefix,
// flip it to the front, then flip it into its final position. Flips are
// expressed as instrumented swap chains so every reversal is replayable.
type Pancake struct {
	BaseAlgorithm
}

// NewPancake creates a pancake sort instance.
func NewPancake() *Pancake {
	return &Pancake{NewBaseAlgorithm("pancake", "Sorts with prefix reversals, flipping each maximum into place.")}
}

// Run sorts the container in place.
func (a *Pancake) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n < 2 {
		o.markAllSorted()
		return o.err
	}

	for size := n; size > 1; size-- {
		max := 0
		for i := 1; i < size; i++ {
			if o.compare(i, max) > 0 {
				max = i
			}
			if o.err != nil {
				return o.err
			}
		}
		if max != size-1 {
			if max > 0 {
				o.describe("Flipping first " + itoa(max+1) + " elements to bring the maximum to the front")
				a.flip(o, max)
			}
			o.describe("Flipping first " + itoa(size) + " elements to sink the maximum into place")
			a.flip(o, size-1)
		}
		o.markSorted(size - 1)
	}
	o.markSorted(0)
	return o.err
}

// flip reverses the prefix [0, k] with pairwise swaps.
func (a *Pancake) flip(o *ops, k int) {
	for i, j := 0, k; i < j; i, j = i+1, j-1 {
		o.swap(i, j)
		if o.err != nil {
			return
		}
	}
}
