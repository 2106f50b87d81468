package core

import "fmt"

var (
	// ErrOutOfRange is returned when a single index falls outside [0, length).
	ErrOutOfRange = fmt.Errorf("index out of range")

	// ErrInvalidIndices is returned when an index pair passed to Compare or
	// Swap contains at least one index outside [0, length).
	ErrInvalidIndices = fmt.Errorf("invalid index pair")

	// ErrInvalidRange is returned when a start/end pair passed to
	// MarkRangeSorted is malformed (start > end, negative start, or end
	// beyond the container length).
	ErrInvalidRange = fmt.Errorf("invalid range")

	// ErrInvalidInput is returned by algorithms whose math requires nonempty
	// or bounded input (distribution sorts) when the input cannot satisfy it.
	ErrInvalidInput = fmt.Errorf("invalid input")

	// ErrTraceSealed is returned when appending to a trace whose producing
	// run has already finished.
	ErrTraceSealed = fmt.Errorf("trace is sealed")
)
