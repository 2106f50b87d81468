package algorithm

import "github.com/hupe1980/sorttrace/core"

// timRunSize is the fixed run length for the simplified timsort below.
const timRunSize = 32

// Tim is a simplified timsort: insertion-sort fixed-size runs, then merge
// neighbouring runs with doubling width. It keeps timsort's shape without the
// galloping and adaptive run detection, which add nothing observable at
// visualization scale.
type Tim struct {
	BaseAlgorithm
}

// NewTim creates a timsort instance.
func NewTim() *Tim {
	return &Tim{NewBaseAlgorithm("tim", "Insertion-sorts fixed runs, then merges them with doubling width.")}
}

// Run sorts the container in place.
func (a *Tim) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()

	for start := 0; start < n; start += timRunSize {
		end := start + timRunSize - 1
		if end >= n {
			end = n - 1
		}
		a.insertionRange(o, start, end)
		if o.err != nil {
			return o.err
		}
	}

	for width := timRunSize; width < n; width *= 2 {
		for low := 0; low+width < n; low += 2 * width {
			mid := low + width - 1
			high := low + 2*width - 1
			if high >= n {
				high = n - 1
			}
			mergeRuns(o, low, mid, high)
			if o.err != nil {
				return o.err
			}
		}
	}
	o.markAllSorted()
	return o.err
}

// insertionRange insertion-sorts [start, end] with adjacent swaps.
func (a *Tim) insertionRange(o *ops, start, end int) {
	for i := start + 1; i <= end; i++ {
		for j := i; j > start && o.compare(j-1, j) > 0; j-- {
			o.swap(j-1, j)
			if o.err != nil {
				return
			}
		}
	}
}
