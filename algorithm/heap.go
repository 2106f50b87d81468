package algorithm

import "github.com/hupe1980/sorttrace/core"

// Heap builds a max-heap in place and repeatedly extracts the maximum to the
// end of the shrinking unsorted prefix. Extracted positions are marked sorted
// as soon as they settle.
type Heap struct {
	BaseAlgorithm
}

// NewHeap creates a heapsort instance.
func NewHeap() *Heap {
	return &Heap{NewBaseAlgorithm("heap", "Builds a max-heap, then repeatedly moves the maximum to the end.")}
}

// Run sorts the container in place.
func (a *Heap) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n < 2 {
		o.markAllSorted()
		return o.err
	}

	for i := n/2 - 1; i >= 0; i-- {
		a.siftDown(o, i, n)
	}
	for end := n - 1; end > 0; end-- {
		o.swap(0, end)
		o.markSorted(end)
		a.siftDown(o, 0, end)
		if o.err != nil {
			return o.err
		}
	}
	o.markSorted(0)
	return o.err
}

// siftDown restores the max-heap property for the subtree rooted at i within
// the heap of the given size.
func (a *Heap) siftDown(o *ops, i, size int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < size && o.compare(left, largest) > 0 {
			largest = left
		}
		if right < size && o.compare(right, largest) > 0 {
			largest = right
		}
		if o.err != nil || largest == i {
			return
		}
		o.swap(i, largest)
		i = largest
	}
}
