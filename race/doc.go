// Package race pits two search algorithms against each other on one
// shared grid and decides a winner.
//
// What: a Race owns two independent steppers over the same read-only
// grid. Tick advances both lanes by a speed-dependent number of steps
// and returns the freshest snapshot per lane, so a renderer can draw
// the two searches side by side as they unfold. Once both lanes have
// finished, Verdict applies the ruling ladder:
//
//  1. neither lane reached the goal      → Outcome NoPath;
//  2. exactly one lane reached it        → that lane wins;
//  3. both reached it, costs differ      → the cheaper path wins;
//  4. equal cost, explored counts differ → the smaller footprint wins;
//  5. everything equal                   → Tie.
//
// Why: the point of the engine is watching strategies diverge on the
// same maze, and the ladder turns the raw snapshot streams into a
// verdict a viewer can argue with.
//
// Complexity: Tick is O(steps·b) for branching factor b ≤ 4; a full
// race is bounded by the two underlying searches.
//
// Errors: New reports ErrNilGrid from the search package for a nil
// grid; Verdict returns ErrNotFinished while either lane still runs.
package race
