package sandbox

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hupe1980/sorttrace/core"
	"github.com/hupe1980/sorttrace/evaluation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bubbleProgram is a caller-style bubble sort written against the handle.
func bubbleProgram(h Handle) error {
	n := h.Len()
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			sign, err := h.Compare(j, j+1)
			if err != nil {
				return err
			}
			if sign > 0 {
				if err := h.Swap(j, j+1); err != nil {
					return err
				}
			}
		}
		if err := h.MarkSorted(n - 1 - i); err != nil {
			return err
		}
	}
	return h.MarkSorted(0)
}

func TestRunInstrumented_UserBubbleSort(t *testing.T) {
	sb := New()

	tr, err := sb.RunInstrumented(bubbleProgram, []float64{5, 3, 8, 1})
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.True(t, tr.Sealed())
	assert.True(t, tr.Converged)
	assert.Equal(t, "user-program", tr.Algorithm)

	last, ok := tr.Last()
	require.True(t, ok)
	want := []float64{1, 3, 5, 8}
	for i, e := range last.Snapshot {
		assert.Equal(t, want[i], e.Value)
	}

	assert.Empty(t, evaluation.Validate(tr))
}

func TestRunInstrumented_PanicAfterCompare(t *testing.T) {
	sb := New()

	tr, err := sb.RunInstrumented(func(h Handle) error {
		if _, err := h.Compare(0, 1); err != nil {
			return err
		}
		panic("user bug")
	}, []float64{2, 1})

	// The failure is a typed result, never a propagated panic.
	var ucErr *UserCodeError
	require.True(t, errors.As(err, &ucErr))
	assert.Contains(t, ucErr.Message, "user bug")
	assert.NotNil(t, ucErr.Recovered)
	assert.NotEmpty(t, ucErr.Stack)

	// The compare step recorded before the panic survives, followed by the
	// synthetic trailing step.
	require.NotNil(t, tr)
	assert.Equal(t, 2, tr.Len())
	assert.NotNil(t, tr.Steps[0].CompareIndices)
	assert.False(t, tr.Converged)
	assert.Same(t, tr, ucErr.Trace)
}

func TestRunInstrumented_ReturnedError(t *testing.T) {
	sb := New()

	tr, err := sb.RunInstrumented(func(h Handle) error {
		return fmt.Errorf("cannot sort today")
	}, []float64{2, 1})

	var ucErr *UserCodeError
	require.True(t, errors.As(err, &ucErr))
	assert.Contains(t, ucErr.Message, "cannot sort today")
	assert.Nil(t, ucErr.Recovered)
	require.NotNil(t, tr)
	assert.False(t, tr.Converged)
}

func TestRunInstrumented_HandleErrorsSurface(t *testing.T) {
	sb := New()

	_, err := sb.RunInstrumented(func(h Handle) error {
		_, err := h.Get(99)
		return err
	}, []float64{1, 2})

	var ucErr *UserCodeError
	require.True(t, errors.As(err, &ucErr))
	assert.Contains(t, ucErr.Message, "out of range")
}

func TestRunUninstrumented_SortedResult(t *testing.T) {
	sb := New()

	tr, err := sb.RunUninstrumented(func(values []float64) []float64 {
		// simple insertion sort on the plain slice
		for i := 1; i < len(values); i++ {
			for j := i; j > 0 && values[j-1] > values[j]; j-- {
				values[j-1], values[j] = values[j], values[j-1]
			}
		}
		return values
	}, []float64{5, 3, 8, 1})

	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.True(t, tr.Sealed())
	assert.True(t, tr.Converged)
	// Exactly two steps: initial and final snapshot.
	require.Equal(t, 2, tr.Len())

	initial, final := tr.Steps[0], tr.Steps[1]
	assert.Equal(t, float64(5), initial.Snapshot[0].Value)
	assert.Equal(t, float64(1), final.Snapshot[0].Value)
	assert.Len(t, final.SortedIndices, 4)
	for _, e := range final.Snapshot {
		assert.Equal(t, core.StateSorted, e.State)
	}
	// Identity is re-associated by value between the snapshots.
	assert.Equal(t, initial.Snapshot[0].ID, final.Snapshot[2].ID)
}

func TestRunUninstrumented_PartiallySortedResult(t *testing.T) {
	sb := New()

	// Caller returns the input untouched: only positions already matching
	// ascending order count as sorted.
	tr, err := sb.RunUninstrumented(func(values []float64) []float64 {
		return values
	}, []float64{1, 3, 2})

	require.NoError(t, err)
	assert.False(t, tr.Converged)

	final := tr.Steps[1]
	assert.Equal(t, []int{0}, final.SortedIndices)
	assert.Equal(t, core.StateSorted, final.Snapshot[0].State)
	assert.Equal(t, core.StateDefault, final.Snapshot[1].State)
}

func TestRunUninstrumented_MalformedResult(t *testing.T) {
	sb := New()

	for name, fn := range map[string]UninstrumentedFunc{
		"nil":          func([]float64) []float64 { return nil },
		"wrong length": func(values []float64) []float64 { return values[:1] },
	} {
		t.Run(name, func(t *testing.T) {
			tr, err := sb.RunUninstrumented(fn, []float64{2, 1})
			var ucErr *UserCodeError
			require.True(t, errors.As(err, &ucErr))
			assert.Contains(t, ucErr.Message, "malformed result")
			require.NotNil(t, tr)
			assert.Equal(t, 1, tr.Len(), "only the initial snapshot is recorded")
			assert.False(t, tr.Converged)
		})
	}
}

func TestRunUninstrumented_Panic(t *testing.T) {
	sb := New()

	tr, err := sb.RunUninstrumented(func([]float64) []float64 {
		panic("boom")
	}, []float64{2, 1})

	var ucErr *UserCodeError
	require.True(t, errors.As(err, &ucErr))
	assert.Contains(t, ucErr.Message, "boom")
	require.NotNil(t, tr)
	assert.Equal(t, 1, tr.Len())
}

func TestRunUninstrumented_CallerCannotCorruptInitialSnapshot(t *testing.T) {
	sb := New()

	tr, err := sb.RunUninstrumented(func(values []float64) []float64 {
		values[0] = -999 // mutating the plain slice must not rewrite history
		return values
	}, []float64{2, 1})

	require.NoError(t, err)
	assert.Equal(t, float64(2), tr.Steps[0].Snapshot[0].Value)
}
