// Package engine implements the run orchestration layer for sorttrace.
//
// The Engine serves as the central coordination hub between callers and
// algorithm implementations. It owns the algorithm registry and the run
// lifecycle, providing a stable foundation for trace production.
//
// # Core Responsibilities
//
// Algorithm Management:
//   - Thread-safe algorithm registry with name-based lookup
//   - Built-in algorithms registered at construction
//   - Dynamic registration and replacement of custom algorithms
//
// Run Orchestration:
//   - One private container and trace per run; nothing is shared between runs
//   - Synchronous execution: a run completes (or fails) before Run returns
//   - Context checked before start; no generalized timeout at this layer
//   - Partial traces returned alongside errors so progress stays inspectable
//
// Observability:
//   - Structured logging of run outcome (algorithm, steps, duration,
//     convergence) through the logging.Logger interface
//
// The design intentionally separates orchestration concerns from algorithm
// bodies, keeping implementations focused on their textbook procedure while
// the Engine handles cross-cutting concerns like logging and trace handoff.
package engine
