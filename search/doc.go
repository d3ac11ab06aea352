// Package search implements the six racing algorithms — BFS, DFS, UCS,
// Greedy Best-First, A* and IDA* — as resumable, step-observable
// computations over a grid.Grid.
//
// What:
//
//   - New(g, algo) returns a Stepper: an explicit state machine holding
//     the algorithm's frontier, explored set and parent pointers. Each
//     Step() advances exactly one node expansion and returns a Snapshot
//     of the search at that suspension point. A Stepper is never rewound;
//     restart by constructing a new one.
//   - Snapshots are value-like: Frontier, Explored, CameFrom and GScores
//     are fresh copies, so retaining historical snapshots for animation
//     is always safe.
//   - Run(g, algo) drains a Stepper to completion and reports aggregate
//     metrics (path, cost, nodes explored, peak frontier, wall time).
//
// Step protocol, common to all six algorithms:
//
//   - Pop one node from the frontier by the algorithm's ordering policy.
//     Nodes already explored are skipped silently (duplicates are legal
//     in every frontier); a skip is not an iteration.
//   - Mark the node explored, bump the iteration counter, emit a
//     Snapshot with Found=false.
//   - If the node is the goal, the NEXT Step emits a terminal Snapshot
//     with Found=true and the reconstructed path, and the sequence ends.
//   - If the frontier drains without reaching the goal, one final
//     Snapshot with Found=false and Current=nil is emitted.
//   - Every Step past the end returns ErrDone. "No path" is a normal
//     terminal outcome, never a distinguished error.
//
// Ordering policies:
//
//   - BFS:    FIFO queue; each cell enqueued at most once.
//   - DFS:    LIFO stack; neighbors pushed in reverse of the grid's
//     fixed order so the natural first direction is explored first.
//   - UCS:    min-heap keyed by g (cost so far); lazy decrease-key.
//   - Greedy: min-heap keyed by h only, computed once at discovery.
//   - A*:     min-heap keyed by f = g + h with admissible Manhattan h.
//   - IDA*:   no explicit frontier; iterative-deepening depth-first
//     bounded by an f threshold that grows to the minimum overflow
//     of the previous round.
//
// All heap frontiers break ties between equal keys by insertion order
// (a strictly increasing counter), so a given grid always produces the
// same snapshot sequence.
//
// Concurrency: a Stepper is single-threaded by contract; two Steppers
// may share one Grid because racing grids are read-only.
//
// Complexity:
//
//   - BFS/DFS: O(V+E) total across all steps.
//   - UCS/Greedy/A*: O((V+E) log V) with the lazy-decrease-key heap.
//   - IDA*: worst-case revisits nodes across rounds; bounded on the
//     finite grid, linear memory in path depth.
//
// Errors:
//
//   - ErrNilGrid:          nil grid handed to New or Run.
//   - ErrUnknownAlgorithm: algorithm tag not recognized.
//   - ErrDone:             the step sequence already finished.
package search
