package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/search"
)

// openField returns a 5×5 all-Floor grid with corner endpoints.
func openField(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetGoal(4, 4))

	return g
}

// mudCorridor returns a grid where the shortest route in steps crosses
// Mud at (2,0) for a cost of 8, while a two-step-longer detour through
// row 1 costs only 6.
func mudCorridor(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetGoal(4, 0))
	g.SetTerrain(2, 0, grid.Mud)

	return g
}

// sealedStart returns a grid whose start cell is boxed in by Walls, so
// the goal is unreachable however hard an algorithm tries.
func sealedStart(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetGoal(4, 4))
	g.SetTerrain(1, 0, grid.Wall)
	g.SetTerrain(0, 1, grid.Wall)

	return g
}

// drain steps st to exhaustion and returns every emitted snapshot.
func drain(t *testing.T, st search.Stepper) []*search.Snapshot {
	t.Helper()
	var snaps []*search.Snapshot
	for {
		snap, err := st.Step()
		if errors.Is(err, search.ErrDone) {
			return snaps
		}
		require.NoError(t, err)
		require.NotNil(t, snap)
		snaps = append(snaps, snap)
		require.Less(t, len(snaps), 100_000, "stepper failed to terminate")
	}
}

func terminal(t *testing.T, snaps []*search.Snapshot) *search.Snapshot {
	t.Helper()
	require.NotEmpty(t, snaps)

	return snaps[len(snaps)-1]
}

func TestBFS_OpenField_ShortestInSteps(t *testing.T) {
	res, err := search.Run(openField(t), search.BFS)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Len(t, res.Path, 9)
	assert.Equal(t, 8.0, res.PathCost)
	assert.Equal(t, grid.Cell{X: 0, Y: 0}, res.Path[0])
	assert.Equal(t, grid.Cell{X: 4, Y: 4}, res.Path[len(res.Path)-1])
}

func TestAStar_ExploresNoMoreThanBFS(t *testing.T) {
	g := openField(t)
	bfs, err := search.Run(g, search.BFS)
	require.NoError(t, err)
	astar, err := search.Run(g, search.AStar)
	require.NoError(t, err)

	require.True(t, bfs.Found)
	require.True(t, astar.Found)
	assert.LessOrEqual(t, astar.NodesExplored, bfs.NodesExplored)
}

func TestMudCorridor_CostAwareDetour(t *testing.T) {
	g := mudCorridor(t)

	bfs, err := search.Run(g, search.BFS)
	require.NoError(t, err)
	require.True(t, bfs.Found)
	assert.Len(t, bfs.Path, 5, "BFS takes the step-shortest row")
	assert.Equal(t, 8.0, bfs.PathCost, "and pays for the mud")

	for _, algo := range []search.Algorithm{search.UCS, search.AStar, search.IDAStar} {
		res, err := search.Run(g, algo)
		require.NoError(t, err, algo.String())
		require.True(t, res.Found, algo.String())
		assert.Equal(t, 6.0, res.PathCost, "%s must find the cheap detour", algo)
	}
}

func TestAllAlgorithms_PathValidity(t *testing.T) {
	g := mudCorridor(t)
	g.SetTerrain(1, 2, grid.Wall)
	g.SetTerrain(3, 2, grid.Wall)

	for _, algo := range search.Algorithms {
		res, err := search.Run(g, algo)
		require.NoError(t, err, algo.String())
		require.True(t, res.Found, algo.String())

		path := res.Path
		assert.Equal(t, g.Start, path[0], algo.String())
		assert.Equal(t, g.Goal, path[len(path)-1], algo.String())
		for i := 1; i < len(path); i++ {
			dx := path[i].X - path[i-1].X
			dy := path[i].Y - path[i-1].Y
			assert.Equal(t, 1, abs(dx)+abs(dy), "%s: step %d not 4-adjacent", algo, i)
			assert.True(t, g.IsWalkable(path[i]), "%s: path crosses a wall at %s", algo, path[i])
		}
		assert.Equal(t, search.PathCost(path, g), res.PathCost, algo.String())
	}
}

func TestUCSAndAStar_GoalScoreMatchesPathCost(t *testing.T) {
	g := mudCorridor(t)
	for _, algo := range []search.Algorithm{search.UCS, search.AStar} {
		st, err := search.New(g, algo)
		require.NoError(t, err)
		snaps := drain(t, st)
		term := terminal(t, snaps)
		require.True(t, term.Found, algo.String())
		require.NotNil(t, term.GScores, algo.String())
		assert.Equal(t, term.GScores[g.Goal], term.PathCost, algo.String())
	}
}

func TestStartEqualsGoal_TrivialPath(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(2, 2))
	require.NoError(t, g.SetGoal(2, 2))

	for _, algo := range search.Algorithms {
		res, err := search.Run(g, algo)
		require.NoError(t, err, algo.String())
		require.True(t, res.Found, algo.String())
		assert.Equal(t, []grid.Cell{{X: 2, Y: 2}}, res.Path, algo.String())
		assert.Equal(t, 0.0, res.PathCost, algo.String())
	}
}

func TestUnreachableGoal_AllTerminateNotFound(t *testing.T) {
	g := sealedStart(t)
	for _, algo := range search.Algorithms {
		res, err := search.Run(g, algo)
		require.NoError(t, err, algo.String())
		assert.False(t, res.Found, algo.String())
		assert.Nil(t, res.Path, algo.String())
		assert.Positive(t, res.Iterations, algo.String())
	}
}

func TestStep_ErrDoneAfterTerminal(t *testing.T) {
	for _, algo := range search.Algorithms {
		st, err := search.New(openField(t), algo)
		require.NoError(t, err)
		drain(t, st)

		for i := 0; i < 3; i++ {
			snap, err := st.Step()
			assert.Nil(t, snap, algo.String())
			assert.ErrorIs(t, err, search.ErrDone, algo.String())
		}
	}
}

func TestSnapshot_IsolatedFromLaterSteps(t *testing.T) {
	st, err := search.New(openField(t), search.AStar)
	require.NoError(t, err)

	first, err := st.Step()
	require.NoError(t, err)
	exploredBefore := len(first.Explored)
	gScoresBefore := len(first.GScores)
	cameFromBefore := len(first.CameFrom)

	for i := 0; i < 10; i++ {
		_, err := st.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, exploredBefore, len(first.Explored))
	assert.Equal(t, gScoresBefore, len(first.GScores))
	assert.Equal(t, cameFromBefore, len(first.CameFrom))
}

func TestStepSequence_Deterministic(t *testing.T) {
	g := mudCorridor(t)
	for _, algo := range search.Algorithms {
		a, err := search.New(g, algo)
		require.NoError(t, err)
		b, err := search.New(g, algo)
		require.NoError(t, err)

		sa := drain(t, a)
		sb := drain(t, b)
		require.Equal(t, len(sa), len(sb), algo.String())
		for i := range sa {
			assert.Equal(t, sa[i].Iteration, sb[i].Iteration, algo.String())
			assert.Equal(t, sa[i].Current, sb[i].Current, algo.String())
			assert.Equal(t, sa[i].Frontier, sb[i].Frontier, algo.String())
			assert.Equal(t, sa[i].Found, sb[i].Found, algo.String())
		}
	}
}

func TestIteration_Monotonic(t *testing.T) {
	for _, algo := range search.Algorithms {
		st, err := search.New(mudCorridor(t), algo)
		require.NoError(t, err)
		snaps := drain(t, st)

		prev := 0
		for i, snap := range snaps {
			assert.GreaterOrEqual(t, snap.Iteration, prev, "%s snapshot %d", algo, i)
			prev = snap.Iteration
		}
	}
}

func TestIDAStar_ThresholdDeepens(t *testing.T) {
	st, err := search.New(mudCorridor(t), search.IDAStar)
	require.NoError(t, err)
	snaps := drain(t, st)

	prevRound := 0
	prevThreshold := math.Inf(-1)
	for i, snap := range snaps {
		require.GreaterOrEqual(t, snap.Round, 1, "snapshot %d", i)
		require.GreaterOrEqual(t, snap.Round, prevRound, "snapshot %d", i)
		if snap.Round > prevRound {
			require.Greater(t, snap.Threshold, prevThreshold, "round %d must raise the bound", snap.Round)
			prevThreshold = snap.Threshold
			prevRound = snap.Round
		}
	}
	assert.Greater(t, prevRound, 1, "the mud detour must force at least one deepening")
}

func TestGreedy_NoCostBookkeeping(t *testing.T) {
	st, err := search.New(openField(t), search.Greedy)
	require.NoError(t, err)
	snap, err := st.Step()
	require.NoError(t, err)
	assert.Nil(t, snap.GScores)
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want search.Algorithm
	}{
		{"bfs", search.BFS},
		{"BFS", search.BFS},
		{"dfs", search.DFS},
		{"ucs", search.UCS},
		{"greedy", search.Greedy},
		{"a*", search.AStar},
		{"astar", search.AStar},
		{"ida*", search.IDAStar},
		{"IDAstar", search.IDAStar},
	}
	for _, tc := range cases {
		got, err := search.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := search.ParseAlgorithm("dijkstra's")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestNew_NilGrid(t *testing.T) {
	_, err := search.New(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestReconstructPath_UndiscoveredGoal(t *testing.T) {
	cameFrom := map[grid.Cell]*grid.Cell{{X: 0, Y: 0}: nil}
	assert.Nil(t, search.ReconstructPath(cameFrom, grid.Cell{X: 3, Y: 3}))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
