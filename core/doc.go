// Package core provides the foundational domain types for sorttrace. It
// defines the core abstractions for:
//
//   - Elements (identity-stable values with a presentation state)
//   - Steps (immutable snapshots of instrumentation state plus operation metadata)
//   - Traces (append-only, sealable sequences of steps produced by one run)
//   - Containers (the instrumented wrapper executing observable primitive
//     operations against a fixed-length value sequence)
//   - Cursors (forward/backward navigation over a sealed trace)
//
// The package intentionally keeps implementation concerns (algorithm bodies,
// run orchestration, sandboxing) out of scope, exposing small types to enable
// custom producers and consumers. All exported identifiers include concise
// documentation to aid discoverability and external consumption.
package core
