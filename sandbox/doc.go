// Package sandbox executes caller-authored sorting logic against the same
// instrumented contract as the built-in algorithms while isolating the host
// from caller failures.
//
// Two execution modes are offered:
//
//   - Instrumented: the caller's function receives a Handle exposing exactly
//     the container primitives (Get, Set, Len, Compare, Swap, MarkSorted,
//     MarkRangeSorted, SetNextDescription) and no other way to read or mutate
//     the backing values. Every call records steps exactly like a built-in.
//   - Uninstrumented: the caller's function receives a plain value slice and
//     returns the sorted slice. Exactly two steps are recorded: the initial
//     snapshot and a final snapshot whose per-position sorted state is
//     computed by comparing the returned order against ascending order.
//
// Execution is synchronous and single-shot: one invocation, no retries, no
// ambient I/O. Panics and returned errors are caught at this boundary and
// reported as a *UserCodeError carrying the partial trace, never allowed to
// terminate the host. Running untrusted code in-process cannot confine a
// hostile caller; the boundary isolates failures, not malice. Hosts that
// need hard isolation should run the sandbox behind process-level controls.
package sandbox
