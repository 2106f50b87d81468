package algorithm

import (
	"fmt"

	"github.com/hupe1980/sorttrace/core"
)

// miracleObservations is how many times a miracle run re-checks the array
// before conceding that no miracle is coming.
const miracleObservations = 3

// Miracle is the joke algorithm that performs no mutations and waits for the
// array to sort itself. An already sorted input is reported as success; an
// unsorted one is re-observed a few times and then honestly reported as
// non-converged. It never fabricates a sorted result.
type Miracle struct {
	BaseAlgorithm
}

// NewMiracle creates a miracle sort instance.
func NewMiracle() *Miracle {
	return &Miracle{NewBaseAlgorithm("miracle", "Checks whether a miracle has sorted the array; never mutates it.")}
}

// Run observes the container without mutating it.
func (a *Miracle) Run(c *core.Container) error {
	o := &ops{c: c}

	for observation := 1; observation <= miracleObservations; observation++ {
		o.note(fmt.Sprintf("Observation %d: checking for a miracle", observation))
		if o.sorted() {
			o.note("A miracle has occurred: the array is sorted")
			o.markAllSorted()
			return o.err
		}
		if o.err != nil {
			return o.err
		}
	}
	c.Fail(fmt.Sprintf("No miracle after %d observations; the array remains unsorted", miracleObservations))
	return nil
}
