package maze

import (
	"math/rand"

	"github.com/katalvlaran/pathrace/grid"
)

// buildScattered places walls at random coordinates up to the density
// target, then sprinkles Mud over the remaining Floor. The endpoint
// guard below is a local, best-effort filter; the authoritative
// correctness mechanism is the PathExists gate in Generate.
//
// Complexity: O(W×H).
func buildScattered(width, height int, wallPercent, mudPercent float64, rng *rand.Rand) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	total := width * height
	numWalls := int(float64(total) * wallPercent)

	// Random placement with an attempt cap so an unlucky stream cannot
	// spin forever on a nearly-full grid.
	placed, attempts := 0, 0
	maxAttempts := numWalls * 4
	for placed < numWalls && attempts < maxAttempts {
		attempts++
		c := grid.Cell{X: rng.Intn(width), Y: rng.Intn(height)}
		if c == g.Start || c == g.Goal || g.Terrain(c) != grid.Floor {
			continue
		}
		if wouldSealEndpoint(g, c) {
			continue
		}
		g.SetTerrain(c.X, c.Y, grid.Wall)
		placed++
	}

	// Mud pass over whatever stayed Floor.
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

// wouldSealEndpoint reports whether placing a wall at c risks cutting
// off Start or Goal: the candidate is adjacent to (or on top of) an
// endpoint that already has two or fewer walkable neighbors. A local
// check only — global connectivity is still verified afterwards.
func wouldSealEndpoint(g *grid.Grid, c grid.Cell) bool {
	if manhattan(c, g.Start) <= 1 && len(g.Neighbors(g.Start)) <= 2 {
		return true
	}
	if manhattan(c, g.Goal) <= 1 && len(g.Neighbors(g.Goal)) <= 2 {
		return true
	}

	return false
}

func manhattan(a, b grid.Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}
