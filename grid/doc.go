// Package grid models the weighted 4-connected grid that every pathrace
// search runs on.
//
// What:
//
//   - Cell is a pure (X, Y) coordinate value. Cells compare and hash by
//     coordinates, so they can key maps and sets directly.
//   - Terrain tags each position as Floor (cost 1), Mud (cost 5) or Wall
//     (impassable, cost +Inf).
//   - Grid owns a fixed Width×Height terrain matrix plus the designated
//     Start and Goal cells. Topology is fixed at construction; terrain is
//     mutable through SetTerrain and is only meant to change during maze
//     generation. Once a grid is handed to a search it must be treated as
//     read-only.
//
// Movement cost between two adjacent cells is the cost of the destination
// cell's terrain. Neighbors are reported in a fixed up, right, down, left
// order; that order is what makes equal-priority tie-breaking in the
// search package deterministic.
//
// Why:
//
//   - One substrate shared by maze generation, the six search algorithms
//     and the renderers, with no aliasing surprises.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - All lookups (Cell, Terrain, Cost, InBounds): O(1).
//   - Neighbors / AllNeighbors: O(1) (at most four candidates).
//
// Errors:
//
//   - ErrBadDimensions: width or height below 2.
//   - ErrBadPosition:   Start/Goal placement out of bounds or on a Wall.
package grid
