package algorithm

import "github.com/hupe1980/sorttrace/core"

// Selection repeatedly selects the minimum of the unsorted suffix and swaps
// it into place, marking each settled position as it goes.
type Selection struct {
	BaseAlgorithm
}

// NewSelection creates a selection sort instance.
func NewSelection() *Selection {
	return &Selection{NewBaseAlgorithm("selection", "Selects the minimum of the remaining elements and swaps it into place.")}
}

// Run sorts the container in place.
func (a *Selection) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n < 2 {
		o.markAllSorted()
		return o.err
	}

	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if o.compare(j, min) < 0 {
				min = j
			}
			if o.err != nil {
				return o.err
			}
		}
		o.swap(i, min)
		o.markSorted(i)
	}
	o.markSorted(n - 1)
	return o.err
}
