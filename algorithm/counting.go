package algorithm

import (
	"fmt"
	"math"

	"github.com/hupe1980/sorttrace/core"
)

// maxCountingRange caps the value span counting sort will allocate for.
const maxCountingRange = 1 << 20

// Counting sorts integer values by tallying occurrences over the value range
// and writing the tallied order back. It is not comparison based: the only
// recorded steps are the Set placements.
type Counting struct {
	BaseAlgorithm
}

// NewCounting creates a counting sort instance.
func NewCounting() *Counting {
	return &Counting{NewBaseAlgorithm("counting", "Tallies integer occurrences over the value range and writes them back in order.")}
}

// Run sorts the container in place. It fails with core.ErrInvalidInput when
// the input is empty, non-integer, or spans a wider range than counting can
// reasonably bucket.
func (a *Counting) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n == 0 {
		return fmt.Errorf("%w: counting sort requires nonempty input", core.ErrInvalidInput)
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = o.get(i)
	}
	if o.err != nil {
		return o.err
	}

	min, max, err := integerBounds("counting sort", values)
	if err != nil {
		return err
	}
	span := int(max-min) + 1
	if span > maxCountingRange {
		return fmt.Errorf("%w: counting sort range %d exceeds %d", core.ErrInvalidInput, span, maxCountingRange)
	}

	counts := make([]int, span)
	for _, v := range values {
		counts[int(v-min)]++
	}

	i := 0
	for offset, count := range counts {
		for ; count > 0; count-- {
			o.set(i, min+float64(offset))
			i++
			if o.err != nil {
				return o.err
			}
		}
	}
	o.markAllSorted()
	return o.err
}

// integerBounds validates that every value is a finite integer and returns
// the inclusive min/max.
func integerBounds(algo string, values []float64) (float64, float64, error) {
	min, max := values[0], values[0]
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
			return 0, 0, fmt.Errorf("%w: %s requires finite integer values, got %v", core.ErrInvalidInput, algo, v)
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, nil
}
