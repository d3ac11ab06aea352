package search

import (
	"errors"
	"time"

	"github.com/katalvlaran/pathrace/grid"
)

// Result summarizes a search driven to completion.
type Result struct {
	// Algorithm is the strategy that produced this result.
	Algorithm Algorithm
	// Found reports whether the goal was reached.
	Found bool
	// Path is the start→goal sequence when Found, nil otherwise.
	Path []grid.Cell
	// PathCost is the terrain cost of Path; 0 when not Found.
	PathCost float64
	// NodesExplored is the final closed-set size.
	NodesExplored int
	// FrontierMax is the largest open set observed at any step.
	FrontierMax int
	// Iterations is the total number of expansion events.
	Iterations int
	// Elapsed is the wall time spent stepping.
	Elapsed time.Duration
}

// Run drains a fresh stepper for algo over g and aggregates the
// sequence into a Result. It is the non-animated path: races and
// renderers step manually, batch callers use Run.
func Run(g *grid.Grid, algo Algorithm) (*Result, error) {
	st, err := New(g, algo)
	if err != nil {
		return nil, err
	}

	res := &Result{Algorithm: algo}
	begin := time.Now()
	for {
		snap, err := st.Step()
		if errors.Is(err, ErrDone) {
			break
		}
		if err != nil {
			return nil, err
		}
		res.Iterations = snap.Iteration
		res.NodesExplored = len(snap.Explored)
		if snap.FrontierSize > res.FrontierMax {
			res.FrontierMax = snap.FrontierSize
		}
		if snap.Found {
			res.Found = true
			res.Path = snap.Path
			res.PathCost = snap.PathCost
		}
	}
	res.Elapsed = time.Since(begin)

	return res, nil
}
