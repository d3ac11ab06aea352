package search

import (
	"math"

	"github.com/katalvlaran/pathrace/grid"
)

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(c, goal grid.Cell) float64

// Manhattan returns |Δx| + |Δy|: admissible and consistent for
// 4-connected movement with per-cell costs ≥ 1. This is the default
// heuristic for every informed algorithm in the package.
func Manhattan(c, goal grid.Cell) float64 {
	dx, dy := c.X-goal.X, c.Y-goal.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return float64(dx + dy)
}

// Euclidean returns the straight-line distance. Admissible for diagonal
// movement; kept for completeness but unused by the default 4-connected
// configuration.
func Euclidean(c, goal grid.Cell) float64 {
	dx, dy := float64(c.X-goal.X), float64(c.Y-goal.Y)

	return math.Sqrt(dx*dx + dy*dy)
}
