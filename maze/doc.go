// Package maze generates race-ready grids with guaranteed start→goal
// connectivity.
//
// What:
//
//   - Generate(width, height, kind, opts...) builds a *grid.Grid using one
//     of three strategies:
//
//     Scattered   — walls dropped at random coordinates up to a target
//     density, with a local guard that refuses placements
//     next to a nearly-sealed endpoint; Mud sprinkled over
//     the remaining Floor.
//     Backtracker — a perfect maze carved by an iterative depth-first
//     backtracker with 2-cell steps; every pair of carved
//     cells is connected by exactly one simple path.
//     Open        — a mostly-open field with scattered obstacles; the
//     endpoints and their immediate neighbors are never
//     walled, and extra Mud is seeded along the interior to
//     make cost-aware and cost-blind searches diverge.
//
//   - PathExists(g) is the correctness gate: a plain BFS reachability
//     check from Start to Goal over walkable cells.
//
// Scattered and Open are validated by that gate after placement; on
// failure they retry with wall density relaxed (×0.9 and ×0.7). Retries
// are capped, and after the cap the generator falls back to an all-Floor
// grid, which is trivially connected. Backtracker needs no gate.
//
// Determinism: all randomness flows from a single seed. Seed 0 selects a
// fixed default, so unseeded runs are reproducible too.
//
// Complexity: every builder and the gate are O(W×H).
//
// Errors:
//
//   - ErrUnknownKind:     unrecognized maze kind.
//   - ErrOptionViolation: option outside its valid range.
//   - grid.ErrBadDimensions is passed through from grid construction.
package maze
