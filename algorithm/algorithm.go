package algorithm

import (
	"math/rand"
	"strconv"

	"github.com/hupe1980/sorttrace/core"
)

// Algorithm is a named sorting procedure that mutates an instrumented
// container using only its primitive operations. Implementations must be
// deterministic for a given input unless they are explicitly randomized, in
// which case all randomness comes from an injected seedable source.
//
// Run returns an error only for programming errors in the procedure itself
// (bad indices, malformed ranges) or for input the procedure's math cannot
// handle (core.ErrInvalidInput). Non-convergence is not an error; it is
// reported through the trace's Converged flag.
type Algorithm interface {
	// Name returns the stable registry key for the algorithm.
	Name() string

	// Description returns a short human readable summary for pickers.
	Description() string

	// Run sorts the container in place through its instrumented primitives.
	Run(c *core.Container) error
}

// BaseAlgorithm provides Name/Description plumbing for concrete algorithms.
// Embed it and implement Run.
type BaseAlgorithm struct {
	name        string
	description string
}

// NewBaseAlgorithm creates the embedded base with the given identity.
func NewBaseAlgorithm(name, description string) BaseAlgorithm {
	return BaseAlgorithm{name: name, description: description}
}

// Name returns the registry key.
func (b BaseAlgorithm) Name() string { return b.name }

// Description returns the human readable summary.
func (b BaseAlgorithm) Description() string { return b.description }

// BuiltIns returns fresh instances of every built-in algorithm. The rng seeds
// the randomized procedures (bogo); pass a deterministic source in tests to
// reproduce exact shuffle sequences.
func BuiltIns(rng *rand.Rand) []Algorithm {
	return []Algorithm{
		NewBubble(),
		NewSelection(),
		NewInsertion(),
		NewQuick(),
		NewMerge(),
		NewHeap(),
		NewShell(),
		NewComb(),
		NewCocktail(),
		NewGnome(),
		NewPancake(),
		NewTim(),
		NewCounting(),
		NewRadix(),
		NewBucket(),
		NewBogo(rng),
		NewMiracle(),
	}
}

// ops wraps a container and latches the first primitive error so algorithm
// bodies read like their textbook form instead of drowning in error checks.
// After the first error every call becomes a no-op; Run returns ops.err.
type ops struct {
	c   *core.Container
	err error
}

func (o *ops) len() int { return o.c.Len() }

func (o *ops) get(i int) float64 {
	if o.err != nil {
		return 0
	}
	v, err := o.c.Get(i)
	if err != nil {
		o.err = err
	}
	return v
}

func (o *ops) set(i int, v float64) {
	if o.err != nil {
		return
	}
	o.err = o.c.Set(i, v)
}

func (o *ops) compare(i, j int) int {
	if o.err != nil {
		return 0
	}
	sign, err := o.c.Compare(i, j)
	if err != nil {
		o.err = err
	}
	return sign
}

func (o *ops) swap(i, j int) {
	if o.err != nil {
		return
	}
	o.err = o.c.Swap(i, j)
}

func (o *ops) markSorted(i int) {
	if o.err != nil {
		return
	}
	o.err = o.c.MarkSorted(i)
}

func (o *ops) markRange(start, end int) {
	if o.err != nil {
		return
	}
	o.err = o.c.MarkRangeSorted(start, end)
}

func (o *ops) describe(text string) {
	if o.err != nil {
		return
	}
	o.c.SetNextDescription(text)
}

func (o *ops) note(text string) {
	if o.err != nil {
		return
	}
	o.c.Note(text)
}

// sorted runs an instrumented adjacent-pair scan and reports whether the
// container is in ascending order. Each pair check records a compare step.
func (o *ops) sorted() bool {
	for i := 0; i+1 < o.len(); i++ {
		if o.compare(i, i+1) > 0 {
			return false
		}
	}
	return o.err == nil
}

// markAllSorted marks the whole container sorted in one step. Safe on empty
// containers, where there is nothing to mark.
func (o *ops) markAllSorted() {
	if o.len() == 0 {
		return
	}
	o.markRange(0, o.len()-1)
}

func itoa(i int) string { return strconv.Itoa(i) }
