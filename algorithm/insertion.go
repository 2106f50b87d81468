package algorithm

import "github.com/hupe1980/sorttrace/core"

// Insertion grows a sorted prefix by sinking each new element into place with
// adjacent swaps. Positions are only marked sorted at the end, because the
// prefix keeps shifting until the final element is inserted.
type Insertion struct {
	BaseAlgorithm
}

// NewInsertion creates an insertion sort instance.
func NewInsertion() *Insertion {
	return &Insertion{NewBaseAlgorithm("insertion", "Inserts each element into the sorted prefix with adjacent swaps.")}
}

// Run sorts the container in place.
func (a *Insertion) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()

	for i := 1; i < n; i++ {
		for j := i; j > 0 && o.compare(j-1, j) > 0; j-- {
			o.swap(j-1, j)
			if o.err != nil {
				return o.err
			}
		}
	}
	o.markAllSorted()
	return o.err
}
