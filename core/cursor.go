package core

import "fmt"

// Cursor provides forward/backward navigation over a sealed trace for
// step-oriented players. Because a trace is fully materialized, backward
// navigation never re-runs the producing algorithm. A Cursor never mutates
// the trace it reads.
type Cursor struct {
	trace *Trace
	pos   int // index of the step returned by the last Next/Prev; -1 before the first
}

// NewCursor creates a cursor positioned before the first step.
func NewCursor(t *Trace) *Cursor {
	return &Cursor{trace: t, pos: -1}
}

// Next advances to the following step. The boolean is false when the cursor
// is already past the final step; the position is left unchanged in that case.
func (c *Cursor) Next() (Step, bool) {
	if c.pos+1 >= c.trace.Len() {
		return Step{}, false
	}
	c.pos++
	return c.trace.Steps[c.pos], true
}

// Prev steps back to the preceding step. The boolean is false when the cursor
// is at or before the first step.
func (c *Cursor) Prev() (Step, bool) {
	if c.pos <= 0 {
		c.pos = -1
		return Step{}, false
	}
	c.pos--
	return c.trace.Steps[c.pos], true
}

// Seek positions the cursor on step i so the next Next returns step i+1.
func (c *Cursor) Seek(i int) error {
	if i < 0 || i >= c.trace.Len() {
		return fmt.Errorf("%w: step %d outside [0,%d)", ErrOutOfRange, i, c.trace.Len())
	}
	c.pos = i
	return nil
}

// Pos returns the index of the current step, or -1 before the first step.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total number of steps in the underlying trace.
func (c *Cursor) Len() int { return c.trace.Len() }

// Reset rewinds the cursor to before the first step.
func (c *Cursor) Reset() { c.pos = -1 }
