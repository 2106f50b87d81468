package algorithm

import (
	"fmt"

	"github.com/hupe1980/sorttrace/core"
)

// Radix is an LSD base-10 radix sort over non-negative integers. Each digit
// pass distributes values into ten buckets and writes them back in bucket
// order through instrumented Set operations.
type Radix struct {
	BaseAlgorithm
}

// NewRadix creates a radix sort instance.
func NewRadix() *Radix {
	return &Radix{NewBaseAlgorithm("radix", "Distributes values by decimal digit, least significant first.")}
}

// Run sorts the container in place. It fails with core.ErrInvalidInput when
// the input is empty or contains non-integer or negative values.
func (a *Radix) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n == 0 {
		return fmt.Errorf("%w: radix sort requires nonempty input", core.ErrInvalidInput)
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = o.get(i)
	}
	if o.err != nil {
		return o.err
	}
	min, max, err := integerBounds("radix sort", values)
	if err != nil {
		return err
	}
	if min < 0 {
		return fmt.Errorf("%w: radix sort requires non-negative values, got %v", core.ErrInvalidInput, min)
	}

	for exp, pass := 1.0, 1; max/exp >= 1; exp, pass = exp*10, pass+1 {
		buckets := make([][]float64, 10)
		for i := 0; i < n; i++ {
			v := o.get(i)
			d := int(v/exp) % 10
			buckets[d] = append(buckets[d], v)
		}
		if o.err != nil {
			return o.err
		}

		i := 0
		for d, bucket := range buckets {
			for _, v := range bucket {
				o.describe(fmt.Sprintf("Digit pass %d: placing %s from bucket %d", pass, formatRadixValue(v), d))
				o.set(i, v)
				i++
				if o.err != nil {
					return o.err
				}
			}
		}
	}
	o.markAllSorted()
	return o.err
}

func formatRadixValue(v float64) string { return fmt.Sprintf("%.0f", v) }
