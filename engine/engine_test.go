package engine

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/hupe1980/sorttrace/algorithm"
	"github.com/hupe1980/sorttrace/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenAlgorithm indexes past the container bounds to exercise the
// partial-trace-on-failure contract.
type brokenAlgorithm struct {
	algorithm.BaseAlgorithm
}

func newBrokenAlgorithm() *brokenAlgorithm {
	return &brokenAlgorithm{algorithm.NewBaseAlgorithm("broken", "Fails mid-run for testing.")}
}

func (a *brokenAlgorithm) Run(c *core.Container) error {
	if _, err := c.Compare(0, 1); err != nil {
		return err
	}
	if err := c.Swap(0, 1); err != nil {
		return err
	}
	_, err := c.Compare(0, c.Len()) // out of bounds on purpose
	return err
}

func TestEngine_RunBubble(t *testing.T) {
	eng := New()

	tr, err := eng.Run(context.Background(), "bubble", []float64{5, 3, 8, 1})
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, "bubble", tr.Algorithm)
	assert.True(t, tr.Sealed())
	assert.True(t, tr.Converged)

	last, ok := tr.Last()
	require.True(t, ok)
	want := []float64{1, 3, 5, 8}
	for i, e := range last.Snapshot {
		assert.Equal(t, want[i], e.Value)
	}
}

func TestEngine_InputSliceNeverMutated(t *testing.T) {
	eng := New()
	input := []float64{5, 3, 8, 1}

	_, err := eng.Run(context.Background(), "quick", input)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 8, 1}, input)
}

func TestEngine_UnknownAlgorithm(t *testing.T) {
	eng := New()

	tr, err := eng.Run(context.Background(), "does-not-exist", []float64{1})
	assert.Nil(t, tr)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestEngine_CancelledContext(t *testing.T) {
	eng := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, err := eng.Run(ctx, "bubble", []float64{2, 1})
	assert.Nil(t, tr)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEngine_ListSortedByName(t *testing.T) {
	eng := New()
	infos := eng.List()
	require.NotEmpty(t, infos)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
		assert.NotEmpty(t, info.Description, info.Name)
	}
	assert.Contains(t, names, "bubble")
	assert.Contains(t, names, "bogo")
	assert.Contains(t, names, "miracle")
	assert.IsIncreasing(t, names)
}

func TestEngine_RegisterCustomAlgorithm(t *testing.T) {
	eng := New()
	eng.Register(newBrokenAlgorithm())

	a, ok := eng.Get("broken")
	require.True(t, ok)
	assert.Equal(t, "broken", a.Name())
}

func TestEngine_FailedRunStillYieldsPartialTrace(t *testing.T) {
	eng := New()
	eng.Register(newBrokenAlgorithm())

	tr, err := eng.Run(context.Background(), "broken", []float64{2, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidIndices))

	// compare + swap pair recorded before the failure, plus the synthetic
	// trailing step appended at sealing.
	require.NotNil(t, tr)
	assert.True(t, tr.Sealed())
	assert.Equal(t, 4, tr.Len())
	assert.NotNil(t, tr.Steps[0].CompareIndices)
	assert.NotNil(t, tr.Steps[1].SwapIndices)
}

func TestEngine_SeededRandomIsDeterministic(t *testing.T) {
	input := []float64{4, 2, 5, 1, 3}

	run := func() *core.Trace {
		eng := New(WithRandom(rand.New(rand.NewSource(99))))
		tr, err := eng.Run(context.Background(), "bogo", input)
		require.NoError(t, err)
		return tr
	}

	t1, t2 := run(), run()
	assert.Equal(t, t1.Len(), t2.Len())
	assert.Equal(t, t1.Converged, t2.Converged)
}

func TestEngine_DisableBuiltIns(t *testing.T) {
	eng := New(func(o *Options) { o.RegisterBuiltIns = false })
	assert.Empty(t, eng.List())

	_, err := eng.Run(context.Background(), "bubble", []float64{1})
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}
