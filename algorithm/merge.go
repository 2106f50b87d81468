package algorithm

import "github.com/hupe1980/sorttrace/core"

// Merge is a top-down merge sort. Because merging is not an exchange, merged
// values are written back through Set so every placement is observable. The
// placement decisions compare staged copies of the runs rather than container
// positions, since indices go stale as winners are written back.
type Merge struct {
	BaseAlgorithm
}

// NewMerge creates a merge sort instance.
func NewMerge() *Merge {
	return &Merge{NewBaseAlgorithm("merge", "Recursively splits the array and merges the sorted halves.")}
}

// Run sorts the container in place.
func (a *Merge) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n > 1 {
		a.sort(o, 0, n-1)
	}
	o.markAllSorted()
	return o.err
}

func (a *Merge) sort(o *ops, low, high int) {
	if o.err != nil || low >= high {
		return
	}
	mid := low + (high-low)/2
	a.sort(o, low, mid)
	a.sort(o, mid+1, high)
	mergeRuns(o, low, mid, high)
}

// mergeRuns combines the sorted runs [low,mid] and [mid+1,high]. Run contents
// are read out first, then each winner is written back through Set. Shared
// with timsort's run merging.
func mergeRuns(o *ops, low, mid, high int) {
	left := make([]float64, 0, mid-low+1)
	for i := low; i <= mid; i++ {
		left = append(left, o.get(i))
	}
	right := make([]float64, 0, high-mid)
	for i := mid + 1; i <= high; i++ {
		right = append(right, o.get(i))
	}
	if o.err != nil {
		return
	}

	i, j := 0, 0
	for k := low; k <= high; k++ {
		var v float64
		switch {
		case i >= len(left):
			v = right[j]
			j++
		case j >= len(right):
			v = left[i]
			i++
		case left[i] <= right[j]:
			v = left[i]
			i++
		default:
			v = right[j]
			j++
		}
		o.describe("Merging runs [" + itoa(low) + "," + itoa(mid) + "] and [" + itoa(mid+1) + "," + itoa(high) + "]")
		o.set(k, v)
		if o.err != nil {
			return
		}
	}
}
