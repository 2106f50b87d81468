package algorithm

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hupe1980/sorttrace/core"
)

// MaxShuffles caps the number of shuffle attempts one bogo run may make.
// Reaching the cap is a normal terminal state, not an error: the run records
// a gave-up narrative step and flags the trace as non-converged.
const MaxShuffles = 50

// Bogo shuffles until sorted, up to MaxShuffles attempts. All randomness is
// drawn from the injected source so tests can reproduce exact shuffle
// sequences. Sortedness checks and shuffle exchanges are fully instrumented.
type Bogo struct {
	BaseAlgorithm

	rng *rand.Rand
}

// NewBogo creates a bogo sort instance backed by the given random source. A
// nil rng falls back to a time-seeded source.
func NewBogo(rng *rand.Rand) *Bogo {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bogo{
		BaseAlgorithm: NewBaseAlgorithm("bogo", "Shuffles until sorted, giving up after a fixed attempt budget."),
		rng:           rng,
	}
}

// Run shuffles the container until it is sorted or the attempt budget runs
// out. Exhaustion is reported through the trace, never as an error.
func (a *Bogo) Run(c *core.Container) error {
	o := &ops{c: c}
	n := o.len()

	for attempt := 0; ; attempt++ {
		if o.sorted() {
			o.markAllSorted()
			return o.err
		}
		if o.err != nil {
			return o.err
		}
		if attempt >= MaxShuffles {
			c.Fail(fmt.Sprintf("Gave up after %d shuffles; the array is still unsorted", MaxShuffles))
			return nil
		}

		o.note(fmt.Sprintf("Shuffle attempt %d of %d", attempt+1, MaxShuffles))
		a.shuffle(o, n)
		if o.err != nil {
			return o.err
		}
	}
}

// shuffle performs a Fisher-Yates pass through instrumented swaps.
func (a *Bogo) shuffle(o *ops, n int) {
	for i := n - 1; i > 0; i-- {
		j := a.rng.Intn(i + 1)
		o.swap(i, j)
		if o.err != nil {
			return
		}
	}
}
