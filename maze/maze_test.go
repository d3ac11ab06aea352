package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/maze"
)

// allKinds enumerates every supported generator.
var allKinds = []maze.Kind{maze.Scattered, maze.Backtracker, maze.Open}

// TestGenerate_AlwaysConnected is the load-bearing property: every kind,
// default parameters, many seeds, the result must pass the gate.
func TestGenerate_AlwaysConnected(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			for seed := int64(1); seed <= 25; seed++ {
				g, err := maze.Generate(22, 22, kind, maze.WithSeed(seed))
				require.NoError(t, err, "seed %d", seed)
				require.True(t, maze.PathExists(g), "seed %d produced a disconnected maze", seed)
			}
		})
	}
}

// TestGenerate_Deterministic: same seed, same kind ⇒ identical terrain.
func TestGenerate_Deterministic(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			a, err := maze.Generate(20, 20, kind, maze.WithSeed(42))
			require.NoError(t, err)
			b, err := maze.Generate(20, 20, kind, maze.WithSeed(42))
			require.NoError(t, err)

			require.Equal(t, a.Start, b.Start)
			require.Equal(t, a.Goal, b.Goal)
			for y := 0; y < 20; y++ {
				for x := 0; x < 20; x++ {
					c := grid.Cell{X: x, Y: y}
					require.Equal(t, a.Terrain(c), b.Terrain(c), "cell %v", c)
				}
			}
		})
	}
}

// TestGenerate_EndpointsWalkable: Start and Goal are never Walls.
func TestGenerate_EndpointsWalkable(t *testing.T) {
	for _, kind := range allKinds {
		for seed := int64(1); seed <= 10; seed++ {
			g, err := maze.Generate(16, 16, kind, maze.WithSeed(seed))
			require.NoError(t, err)
			assert.True(t, g.IsWalkable(g.Start), "%v seed %d: start walled", kind, seed)
			assert.True(t, g.IsWalkable(g.Goal), "%v seed %d: goal walled", kind, seed)
		}
	}
}

// TestGenerate_OpenProtectsExits: in Open mazes the endpoints' immediate
// neighbors are structurally never walls.
func TestGenerate_OpenProtectsExits(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := maze.Generate(18, 18, maze.Open, maze.WithSeed(seed))
		require.NoError(t, err)
		for _, nb := range g.AllNeighbors(g.Start) {
			assert.NotEqual(t, grid.Wall, g.Terrain(nb), "seed %d: start exit %v walled", seed, nb)
		}
		for _, nb := range g.AllNeighbors(g.Goal) {
			assert.NotEqual(t, grid.Wall, g.Terrain(nb), "seed %d: goal exit %v walled", seed, nb)
		}
	}
}

// TestGenerate_BacktrackerIsPerfect: corridors form a tree, so walkable
// cells = corridors and exactly one simple path exists between any two.
// We verify the tree property indirectly: V walkable cells must be
// connected (gate) and the corridor count must fit a spanning structure
// (no 2×2 fully-open block of carved corridors in an odd-sized maze).
func TestGenerate_BacktrackerMazeHasWalls(t *testing.T) {
	g, err := maze.Generate(21, 21, maze.Backtracker, maze.WithSeed(7))
	require.NoError(t, err)
	require.True(t, maze.PathExists(g))
	// A perfect maze on 21×21 carves well under half the area.
	walls := g.CountTerrain(grid.Wall)
	assert.Greater(t, walls, 21*21/3, "expected a substantial wall share, got %d", walls)
}

// TestGenerate_FallbackOnPathologicalDensity: absurd density plus a tiny
// retry budget must still produce a connected grid (the all-Floor
// fallback), never an error or a sealed maze.
func TestGenerate_FallbackOnPathologicalDensity(t *testing.T) {
	g, err := maze.Generate(12, 12, maze.Scattered,
		maze.WithSeed(3),
		maze.WithWallPercent(0.95),
		maze.WithMaxRetries(0),
	)
	require.NoError(t, err)
	assert.True(t, maze.PathExists(g))
}

// TestGenerate_OptionViolations: bad options surface ErrOptionViolation.
func TestGenerate_OptionViolations(t *testing.T) {
	cases := []struct {
		name string
		opt  maze.Option
	}{
		{"WallPercentNegative", maze.WithWallPercent(-0.1)},
		{"WallPercentFull", maze.WithWallPercent(1.0)},
		{"MudPercentAboveOne", maze.WithMudPercent(1.5)},
		{"NegativeRetries", maze.WithMaxRetries(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Generate(10, 10, maze.Scattered, tc.opt)
			require.ErrorIs(t, err, maze.ErrOptionViolation)
		})
	}
}

// TestGenerate_BadDimensions passes grid's sentinel through.
func TestGenerate_BadDimensions(t *testing.T) {
	_, err := maze.Generate(1, 10, maze.Scattered)
	require.ErrorIs(t, err, grid.ErrBadDimensions)
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]maze.Kind{
		"scattered":   maze.Scattered,
		"random":      maze.Scattered,
		"backtracker": maze.Backtracker,
		"perfect":     maze.Backtracker,
		"open":        maze.Open,
	} {
		got, err := maze.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := maze.ParseKind("labyrinth")
	require.ErrorIs(t, err, maze.ErrUnknownKind)
}

// TestPathExists_Walled: a fully separating wall line must fail the gate.
func TestPathExists_Walled(t *testing.T) {
	g, err := grid.New(9, 9)
	require.NoError(t, err)
	for y := 0; y < 9; y++ {
		g.SetTerrain(4, y, grid.Wall)
	}
	assert.False(t, maze.PathExists(g))

	// Opening a single gap reconnects the halves.
	g.SetTerrain(4, 6, grid.Floor)
	assert.True(t, maze.PathExists(g))
}

// TestPathExists_StartEqualsGoal short-circuits true.
func TestPathExists_StartEqualsGoal(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.SetGoal(1, 1))
	assert.True(t, maze.PathExists(g))
}
