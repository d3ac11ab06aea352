package maze

import (
	"math/rand"

	"github.com/katalvlaran/pathrace/grid"
)

// openAcceptChance is the per-candidate probability of actually placing
// a wall while walking the shuffled interior list.
const openAcceptChance = 0.7

// openMudChance is the per-cell probability used by the scattered Mud
// pass of the Open builder.
const openMudChance = 0.35

// buildOpen produces a mostly-open field with scattered obstacles. The
// endpoints and their four immediate neighbors are structurally
// protected from ever becoming Walls, so at least one exit always
// survives independent of the connectivity retry. Extra Mud is seeded
// across the interior so cost-aware and cost-blind searches diverge
// visibly.
//
// Complexity: O(W×H).
func buildOpen(width, height int, wallPercent, mudPercent float64, rng *rand.Rand) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	// Endpoints plus their 4-neighborhoods are never walled.
	protected := map[grid.Cell]bool{g.Start: true, g.Goal: true}
	for _, nb := range g.AllNeighbors(g.Start) {
		protected[nb] = true
	}
	for _, nb := range g.AllNeighbors(g.Goal) {
		protected[nb] = true
	}

	// One shuffled pass over the unprotected interior.
	interior := make([]grid.Cell, 0, (width-2)*(height-2))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if c := (grid.Cell{X: x, Y: y}); !protected[c] {
				interior = append(interior, c)
			}
		}
	}
	shuffleCellsInPlace(interior, rng)

	targetWalls := int(float64(width*height) * wallPercent)
	placed := 0
	for _, c := range interior {
		if placed >= targetWalls {
			break
		}
		if rng.Float64() < openAcceptChance {
			g.SetTerrain(c.X, c.Y, grid.Wall)
			placed++
		}
	}

	// Scattered Mud pass in scan order.
	targetMud := int(float64(width*height) * mudPercent)
	mudPlaced := 0
	for y := 1; y < height-1 && mudPlaced < targetMud; y++ {
		for x := 1; x < width-1 && mudPlaced < targetMud; x++ {
			c := grid.Cell{X: x, Y: y}
			if protected[c] || g.Terrain(c) != grid.Floor {
				continue
			}
			if rng.Float64() < openMudChance {
				g.SetTerrain(x, y, grid.Mud)
				mudPlaced++
			}
		}
	}

	// A few extra Mud cells at random interior coordinates, roughly along
	// the start→goal diagonal band, to season the typical shortest paths.
	if width >= 5 && height >= 5 {
		for i := 0; i < min(width, height)/2; i++ {
			c := grid.Cell{X: rng.Intn(width-4) + 2, Y: rng.Intn(height-4) + 2}
			if !protected[c] && g.Terrain(c) == grid.Floor {
				g.SetTerrain(c.X, c.Y, grid.Mud)
			}
		}
	}

	return g, nil
}
