package algorithm

import "github.com/hupe1980/sorttrace/core"

// Quick is an in-place quicksort with Lomuto partitioning on the last
// element. Each partition settles the pivot's final position and marks it
// sorted immediately, mirroring how partition boundaries freeze.
type Quick struct {
	BaseAlgorithm
}

// NewQuick creates a quicksort instance.
func NewQuick() *Quick {
	return &Quick{NewBaseAlgorithm("quick", "Partitions around a pivot and recursively sorts both sides.")}
}

// Run sorts the container in place.
func (a *Quick) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n == 0 {
		return nil
	}
	a.sort(o, 0, n-1)
	return o.err
}

func (a *Quick) sort(o *ops, low, high int) {
	if o.err != nil {
		return
	}
	if low > high {
		return
	}
	if low == high {
		o.markSorted(low)
		return
	}

	p := a.partition(o, low, high)
	if o.err != nil {
		return
	}
	o.markSorted(p)
	a.sort(o, low, p-1)
	a.sort(o, p+1, high)
}

// partition uses the element at high as the pivot and returns its settled
// position.
func (a *Quick) partition(o *ops, low, high int) int {
	o.describe("Partitioning: pivot at position " + itoa(high))
	i := low
	for j := low; j < high; j++ {
		if o.compare(j, high) < 0 {
			o.swap(i, j)
			i++
		}
		if o.err != nil {
			return i
		}
	}
	o.swap(i, high)
	return i
}
