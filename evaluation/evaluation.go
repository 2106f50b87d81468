// Package evaluation checks finished traces against the structural invariants
// the replay contract depends on. Renderers and tests use it to verify that a
// producer (built-in or sandboxed) emitted a trace that can be replayed
// faithfully in both directions.
package evaluation

import (
	"fmt"

	"github.com/hupe1980/sorttrace/core"
)

// Issue describes one invariant violation found in a trace. Step is the index
// of the offending step, or -1 for trace-level problems.
type Issue struct {
	Step    int    `json:"step"`
	Message string `json:"message"`
}

// String renders the issue for logs and test failures.
func (i Issue) String() string {
	if i.Step < 0 {
		return i.Message
	}
	return fmt.Sprintf("step %d: %s", i.Step, i.Message)
}

// Validate checks the structural invariants of a finished trace:
//
//   - the trace is sealed
//   - every snapshot has the same length
//   - element identities form the same set in every snapshot
//   - at most one of compare/swap markers is set per step, and marker
//     indices are within bounds
//   - a position marked sorted stays sorted in later snapshots, except for
//     the transient comparing/swapping markers on that step's own index pair
//   - a converged trace ends with an all-sorted snapshot
//
// It returns the violations found; an empty slice means the trace is
// structurally valid. Validate never mutates the trace.
func Validate(t *core.Trace) []Issue {
	var issues []Issue

	if !t.Sealed() {
		issues = append(issues, Issue{Step: -1, Message: "trace is not sealed"})
	}
	if len(t.Steps) == 0 {
		issues = append(issues, Issue{Step: -1, Message: "trace has no steps"})
		return issues
	}

	length := len(t.Steps[0].Snapshot)
	ids := idSet(t.Steps[0].Snapshot)
	sorted := make(map[int]bool, length)

	for si, step := range t.Steps {
		if len(step.Snapshot) != length {
			issues = append(issues, Issue{Step: si, Message: fmt.Sprintf("snapshot length %d, want %d", len(step.Snapshot), length)})
			continue
		}
		if step.CompareIndices != nil && step.SwapIndices != nil {
			issues = append(issues, Issue{Step: si, Message: "both compare and swap markers set"})
		}
		issues = append(issues, checkMarker(si, "compare", step.CompareIndices, length)...)
		issues = append(issues, checkMarker(si, "swap", step.SwapIndices, length)...)
		for _, idx := range step.SortedIndices {
			if idx < 0 || idx >= length {
				issues = append(issues, Issue{Step: si, Message: fmt.Sprintf("sorted index %d out of bounds", idx)})
			}
		}

		stepIDs := idSet(step.Snapshot)
		for id := range ids {
			if !stepIDs[id] {
				issues = append(issues, Issue{Step: si, Message: fmt.Sprintf("element identity %s missing from snapshot", id)})
			}
		}

		transient := transientIndices(step)
		for i, e := range step.Snapshot {
			if sorted[i] && e.State != core.StateSorted && !transient[i] {
				issues = append(issues, Issue{Step: si, Message: fmt.Sprintf("position %d lost sorted state", i)})
			}
			if e.State == core.StateSorted {
				sorted[i] = true
			}
		}
	}

	if t.Converged {
		last := t.Steps[len(t.Steps)-1]
		for i, e := range last.Snapshot {
			if e.State != core.StateSorted {
				issues = append(issues, Issue{Step: len(t.Steps) - 1, Message: fmt.Sprintf("converged trace ends with position %d not sorted", i)})
			}
		}
	}

	return issues
}

func checkMarker(step int, kind string, pair *[2]int, length int) []Issue {
	if pair == nil {
		return nil
	}
	var issues []Issue
	for _, idx := range pair {
		if idx < 0 || idx >= length {
			issues = append(issues, Issue{Step: step, Message: fmt.Sprintf("%s index %d out of bounds", kind, idx)})
		}
	}
	return issues
}

func idSet(snapshot []core.Element) map[string]bool {
	ids := make(map[string]bool, len(snapshot))
	for _, e := range snapshot {
		ids[e.ID] = true
	}
	return ids
}

// transientIndices returns the positions allowed to show a transient state in
// this step despite being permanently sorted.
func transientIndices(step core.Step) map[int]bool {
	out := map[int]bool{}
	if step.CompareIndices != nil {
		out[step.CompareIndices[0]] = true
		out[step.CompareIndices[1]] = true
	}
	if step.SwapIndices != nil {
		out[step.SwapIndices[0]] = true
		out[step.SwapIndices[1]] = true
	}
	return out
}
