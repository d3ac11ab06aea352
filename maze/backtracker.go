package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathrace/grid"
)

// carveSteps lists the 2-cell carving moves in up, right, down, left
// order. The intervening cell is opened together with the destination.
var carveSteps = [4][2]int{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// buildBacktracker carves a perfect maze: start fully walled, then open
// corridors with an iterative depth-first backtracker stepping two cells
// at a time. The carved cells form a spanning tree, so any two of them
// are connected by exactly one simple path and no connectivity gate is
// needed. Mud is sprinkled over the corridors afterwards.
//
// Odd dimensions give the cleanest results; even ones just leave an
// extra wall rim on the far edges, same as the classic formulation.
//
// Complexity: O(W×H) time, O(W×H) memory for the backtracking stack.
func buildBacktracker(width, height int, mudPercent float64, rng *rand.Rand) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.SetTerrain(x, y, grid.Wall)
		}
	}

	origin := grid.Cell{X: 1, Y: 1}
	g.SetTerrain(origin.X, origin.Y, grid.Floor)

	// Explicit stack instead of recursion: memory stays bounded by the
	// corridor count even on large grids.
	stack := []grid.Cell{origin}
	visited := map[grid.Cell]bool{origin: true}

	candidates := make([]grid.Cell, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range carveSteps {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			next := grid.Cell{X: nx, Y: ny}
			if nx >= 1 && nx < width-1 && ny >= 1 && ny < height-1 && !visited[next] {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		// Open the destination and the wall cell between.
		g.SetTerrain(next.X, next.Y, grid.Floor)
		g.SetTerrain(cur.X+(next.X-cur.X)/2, cur.Y+(next.Y-cur.Y)/2, grid.Floor)
		visited[next] = true
		stack = append(stack, next)
	}

	// Endpoints sit on carved (odd,odd) coordinates.
	gx, gy := width-2, height-2
	if width%2 == 0 {
		gx = width - 3
	}
	if height%2 == 0 {
		gy = height - 3
	}
	// Tiny grids collapse onto the origin corridor.
	if gx < 1 {
		gx = 1
	}
	if gy < 1 {
		gy = 1
	}
	if err = g.SetStart(origin.X, origin.Y); err != nil {
		return nil, fmt.Errorf("maze: backtracker start placement: %w", err)
	}
	if err = g.SetGoal(gx, gy); err != nil {
		return nil, fmt.Errorf("maze: backtracker goal placement: %w", err)
	}

	// Mud over the corridors.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := grid.Cell{X: x, Y: y}
			if c == g.Start || c == g.Goal || g.Terrain(c) != grid.Floor {
				continue
			}
			if rng.Float64() < mudPercent {
				g.SetTerrain(x, y, grid.Mud)
			}
		}
	}

	return g, nil
}
