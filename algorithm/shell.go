package algorithm

import "github.com/hupe1980/sorttrace/core"

// Shell is shellsort with the halving gap sequence. Gapped insertion moves
// elements by swapping across the gap so every displacement stays observable.
type Shell struct {
	BaseAlgorithm
}

// NewShell creates a shellsort instance.
func NewShell() *Shell {
	return &Shell{NewBaseAlgorithm("shell", "Gapped insertion sort with a halving gap sequence.")}
}

// Run sorts the container in place.
func (a *Shell) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()

	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			for j := i; j >= gap && o.compare(j-gap, j) > 0; j -= gap {
				o.swap(j-gap, j)
				if o.err != nil {
					return o.err
				}
			}
		}
	}
	o.markAllSorted()
	return o.err
}
