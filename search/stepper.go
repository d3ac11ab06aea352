package search

import "github.com/katalvlaran/pathrace/grid"

// tracker carries the state common to every stepper: the grid, the
// closed set, parent pointers, the iteration counter, and the one-step
// lookahead used to deliver the terminal snapshot on the Step after the
// goal is expanded.
type tracker struct {
	g         *grid.Grid
	cameFrom  map[grid.Cell]*grid.Cell
	explored  map[grid.Cell]bool
	iteration int

	pending *Snapshot // terminal snapshot awaiting delivery
	done    bool
}

func newTracker(g *grid.Grid) tracker {
	t := tracker{
		g:        g,
		cameFrom: make(map[grid.Cell]*grid.Cell),
		explored: make(map[grid.Cell]bool),
	}
	// Root discovers itself; its parent is the nil sentinel.
	t.cameFrom[g.Start] = nil

	return t
}

// takePending delivers a queued terminal snapshot, ending the sequence.
func (t *tracker) takePending() (*Snapshot, error) {
	if t.done {
		return nil, ErrDone
	}
	if t.pending == nil {
		return nil, nil
	}
	snap := t.pending
	t.pending = nil
	t.done = true

	return snap, nil
}

// snapshot builds a detached Snapshot at the current suspension point.
// frontier must already be a fresh slice owned by the snapshot.
func (t *tracker) snapshot(current *grid.Cell, frontier []grid.Cell, gScores map[grid.Cell]float64) *Snapshot {
	return &Snapshot{
		Current:      current,
		Frontier:     frontier,
		FrontierSize: len(frontier),
		Explored:     copyExplored(t.explored),
		CameFrom:     copyCameFrom(t.cameFrom),
		GScores:      copyScores(gScores),
		Iteration:    t.iteration,
	}
}

// finish marks the sequence exhausted after the snapshot being returned.
func (t *tracker) finish() {
	t.done = true
}

// cellRef returns a pointer to a private copy of c. Used for Current and
// cameFrom entries; the copy is immutable, so snapshots can share it.
func cellRef(c grid.Cell) *grid.Cell {
	p := c

	return &p
}
