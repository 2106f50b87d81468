package algorithm

import "github.com/hupe1980/sorttrace/core"

// Cocktail is a bidirectional bubble sort: a forward pass settles the maximum
// at the right edge, a backward pass settles the minimum at the left edge,
// and both edges are marked sorted as they freeze.
type Cocktail struct {
	BaseAlgorithm
}

// NewCocktail creates a cocktail shaker sort instance.
func NewCocktail() *Cocktail {
	return &Cocktail{NewBaseAlgorithm("cocktail", "Bubble sort sweeping alternately forward and backward.")}
}

// Run sorts the container in place.
func (a *Cocktail) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n < 2 {
		o.markAllSorted()
		return o.err
	}

	start, end := 0, n-1
	for start < end {
		swapped := false
		for i := start; i < end; i++ {
			if o.compare(i, i+1) > 0 {
				o.swap(i, i+1)
				swapped = true
			}
			if o.err != nil {
				return o.err
			}
		}
		o.markSorted(end)
		end--
		if !swapped {
			if start <= end {
				o.markRange(start, end)
			}
			return o.err
		}

		swapped = false
		for i := end; i > start; i-- {
			if o.compare(i-1, i) > 0 {
				o.swap(i-1, i)
				swapped = true
			}
			if o.err != nil {
				return o.err
			}
		}
		o.markSorted(start)
		start++
		if !swapped {
			if start <= end {
				o.markRange(start, end)
			}
			return o.err
		}
	}
	if start == end {
		o.markSorted(start)
	}
	return o.err
}
