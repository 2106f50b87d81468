package core

// Trace is the complete ordered sequence of steps produced by exactly one run
// of one algorithm against one input. It is created empty at run start, grows
// monotonically while the run executes, and becomes immutable once the
// producing run seals it. A sealed trace is handed wholesale to a consumer;
// the engine keeps no reference afterwards.
//
// Converged reports whether the producing run claims to have reached sorted
// order. Randomized algorithms that exhaust their attempt budget and joke
// algorithms that decline to sort leave it false; the synthetic trailing
// all-sorted step appended at sealing time is a presentation artifact, not a
// correctness claim, so consumers checking actual sortedness must inspect
// the final snapshot values rather than state annotations.
type Trace struct {
	ID        string `json:"id"`
	Algorithm string `json:"algorithm"`
	Steps     []Step `json:"steps"`
	Converged bool   `json:"converged"`

	sealed bool
}

// NewTrace creates an empty, unsealed trace for one run of the named
// algorithm. Converged starts true and is cleared by MarkNonConverged.
func NewTrace(algorithm string) *Trace {
	return &Trace{ID: NewID(), Algorithm: algorithm, Converged: true}
}

// Append adds a step to the trace. It fails with ErrTraceSealed once the
// producing run has finished.
func (t *Trace) Append(s Step) error {
	if t.sealed {
		return ErrTraceSealed
	}
	t.Steps = append(t.Steps, s)
	return nil
}

// MarkNonConverged records that the producing run did not reach sorted order.
func (t *Trace) MarkNonConverged() { t.Converged = false }

// Seal freezes the trace. Further Append calls fail. Seal is idempotent.
func (t *Trace) Seal() { t.sealed = true }

// Sealed reports whether the trace has been frozen by its producing run.
func (t *Trace) Sealed() bool { return t.sealed }

// Len returns the number of recorded steps.
func (t *Trace) Len() int { return len(t.Steps) }

// Last returns the final step. The boolean is false for an empty trace.
func (t *Trace) Last() (Step, bool) {
	if len(t.Steps) == 0 {
		return Step{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}
