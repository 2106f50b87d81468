// Package algorithm contains the built-in sorting procedures expressed purely
// in terms of the instrumented container primitives. The package focuses on
// three concerns:
//
//  1. The Algorithm contract (Name, Description, Run against a core.Container)
//  2. Deterministic comparison and distribution sorts (bubble through bucket)
//  3. Non-deterministic and joke procedures (bogo, miracle) with explicit
//     non-convergence reporting instead of fabricated success
//
// Design principles:
//   - No direct mutation of backing values: every read/compare/move goes
//     through the container so replay fidelity is preserved
//   - Determinism: the same input yields the same trace for every algorithm
//     except bogo, whose shuffles come from an injected seedable source
//   - Failure honesty: runs that cannot reach sorted order flag the trace as
//     non-converged rather than claiming success
//
// The package intentionally keeps run orchestration (registry, logging,
// partial-trace handling) in the engine package to avoid cyclic deps.
package algorithm
