package race_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/race"
	"github.com/katalvlaran/pathrace/search"
)

// mudField returns a course where the step-shortest route crosses Mud,
// so cost-aware lanes win on price.
func mudField(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetGoal(4, 0))
	g.SetTerrain(2, 0, grid.Mud)

	return g
}

func TestRun_CheaperPathWins(t *testing.T) {
	v, err := race.Run(mudField(t), search.UCS, search.BFS)
	require.NoError(t, err)

	assert.Equal(t, race.WinnerA, v.Outcome)
	assert.Equal(t, 6.0, v.A.PathCost)
	assert.Equal(t, 8.0, v.B.PathCost)
	assert.True(t, v.A.Found)
	assert.True(t, v.B.Found)
	assert.NotEmpty(t, v.Reason)
}

func TestRun_OrderDecidesTheLabel(t *testing.T) {
	v, err := race.Run(mudField(t), search.BFS, search.AStar)
	require.NoError(t, err)

	assert.Equal(t, race.WinnerB, v.Outcome)
}

func TestRun_NoPathWhenSealed(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	g.SetTerrain(1, 0, grid.Wall)
	g.SetTerrain(0, 1, grid.Wall)

	v, err := race.Run(g, search.BFS, search.AStar)
	require.NoError(t, err)

	assert.Equal(t, race.NoPath, v.Outcome)
	assert.False(t, v.A.Found)
	assert.False(t, v.B.Found)
}

func TestRun_SameAlgorithmTies(t *testing.T) {
	v, err := race.Run(mudField(t), search.AStar, search.AStar)
	require.NoError(t, err)

	assert.Equal(t, race.Tie, v.Outcome)
	assert.Equal(t, v.A.PathCost, v.B.PathCost)
	assert.Equal(t, v.A.NodesExplored, v.B.NodesExplored)
}

func TestVerdict_BeforeFinish(t *testing.T) {
	r, err := race.New(mudField(t), search.BFS, search.DFS, race.WithSpeed(race.Slow))
	require.NoError(t, err)

	_, err = r.Verdict()
	assert.ErrorIs(t, err, race.ErrNotFinished)
}

func TestTick_AdvancesBothLanes(t *testing.T) {
	r, err := race.New(mudField(t), search.BFS, search.UCS, race.WithSpeed(race.Slow))
	require.NoError(t, err)
	require.False(t, r.Finished())

	snaps, err := r.Tick()
	require.NoError(t, err)
	require.NotNil(t, snaps[0])
	require.NotNil(t, snaps[1])
	assert.Equal(t, 1, snaps[0].Iteration)
	assert.Equal(t, 1, snaps[1].Iteration)

	for i := 0; !r.Finished(); i++ {
		_, err := r.Tick()
		require.NoError(t, err)
		require.Less(t, i, 10_000, "race failed to finish")
	}

	v, err := r.Verdict()
	require.NoError(t, err)
	assert.Equal(t, race.WinnerB, v.Outcome, "UCS should beat BFS on cost")
}

func TestNew_NilGrid(t *testing.T) {
	_, err := race.New(nil, search.BFS, search.DFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestWithSpeed_RejectsNegative(t *testing.T) {
	_, err := race.New(mudField(t), search.BFS, search.DFS, race.WithSpeed(race.Speed(-5)))
	assert.Error(t, err)
}

func TestSpeed_StepsPerTick(t *testing.T) {
	cases := []struct {
		speed race.Speed
		want  int
	}{
		{race.Slow, 1},
		{race.Normal, 1},
		{race.Fast, 5},
		{race.Instant, 1},
		{race.Speed(600), 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.speed.StepsPerTick(), tc.speed.String())
	}
}

func TestParseSpeed(t *testing.T) {
	for _, name := range []string{"slow", "normal", "fast", "instant"} {
		s, err := race.ParseSpeed(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	_, err := race.ParseSpeed("ludicrous")
	assert.Error(t, err)
}
