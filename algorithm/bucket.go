package algorithm

import (
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/sorttrace/core"
)

// Bucket distributes values into n evenly spaced buckets over the value
// range, sorts each bucket, and writes them back in bucket order. Bucket
// contents are staged off to the side; placements back into the container go
// through instrumented Set operations.
type Bucket struct {
	BaseAlgorithm
}

// NewBucket creates a bucket sort instance.
func NewBucket() *Bucket {
	return &Bucket{NewBaseAlgorithm("bucket", "Distributes values into range buckets and concatenates the sorted buckets.")}
}

// Run sorts the container in place. It fails with core.ErrInvalidInput when
// the input is empty or contains non-finite values, since the bucket index
// math needs a defined min/max.
func (a *Bucket) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()
	if n == 0 {
		return fmt.Errorf("%w: bucket sort requires nonempty input", core.ErrInvalidInput)
	}

	values := make([]float64, n)
	min, max := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		v := o.get(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bucket sort requires finite values, got %v", core.ErrInvalidInput, v)
		}
		values[i] = v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if o.err != nil {
		return o.err
	}

	if min == max {
		// All values equal; already sorted.
		o.markAllSorted()
		return o.err
	}

	buckets := make([][]float64, n)
	span := max - min
	for _, v := range values {
		idx := int(float64(n-1) * (v - min) / span)
		buckets[idx] = append(buckets[idx], v)
	}

	i := 0
	for b, bucket := range buckets {
		sort.Float64s(bucket)
		for _, v := range bucket {
			o.describe(fmt.Sprintf("Placing value from bucket %d", b))
			o.set(i, v)
			i++
			if o.err != nil {
				return o.err
			}
		}
	}
	o.markAllSorted()
	return o.err
}
