// Package pathrace is a watchable pathfinding laboratory: generate a
// maze, pick two search strategies, and race them cell by cell across
// the same terrain.
//
// 🚀 What is pathrace?
//
//	An engine for observing classic searches as they run:
//		• Grid model: Floor, Mud and Wall terrain with per-cell costs
//		• Maze generators: scattered obstacles, recursive backtracker,
//		  open rooms — all guaranteed start→goal connected
//		• Six steppable searches: BFS, DFS, UCS, Greedy, A*, IDA*
//		• Snapshots: every expansion yields the full frontier, closed
//		  set, parent pointers and costs, detached and replayable
//		• Races: two algorithms on one maze, ruled by the cost →
//		  footprint → tie ladder
//
// ✨ Why choose pathrace?
//
//   - Step, don't block – every algorithm suspends after each expansion,
//     so rendering and instrumentation need no goroutine gymnastics
//   - Deterministic – seeded mazes and insertion-ordered tie-breaking
//     make every run replayable
//   - Honest metrics – iterations, explored counts and frontier peaks
//     come from the same snapshots the renderer draws
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/   — terrain, cells, neighbors & movement costs
//	maze/   — seeded generators with connectivity retry & fallback
//	search/ — the six steppers, snapshots & path reconstruction
//	race/   — lockstep driver, speeds & the verdict ladder
//
// Quick ASCII example:
//
//	S . . ~ .
//	█ █ . █ .
//	. . . █ G
//
//	S races to G around walls (█), paying extra to wade through mud (~).
//
// See cmd/pathrace for the animated terminal race and cmd/mazeimage
// for PNG export.
//
//	go get github.com/katalvlaran/pathrace
package pathrace
