package search

import (
	"math"

	"github.com/katalvlaran/pathrace/grid"
)

// idaFrame is one suspended depth-first visit: the cell, its cost from
// the start, and a cursor over its walkable neighbors. A frame is
// "entered" once its own visit event has been emitted; after that the
// cursor drains and the frame is popped.
type idaFrame struct {
	cell      grid.Cell
	g         float64
	entered   bool
	neighbors []grid.Cell
	next      int
}

// idaStepper runs iterative-deepening A*: bounded depth-first rounds
// where the f bound starts at h(start) and grows to the smallest f that
// overflowed the previous round. There is no heap frontier; the open
// state is the frame stack itself, and on-path cells are refused as
// neighbors to keep each round cycle-free.
//
// Every node event is one Step: entering a node within the bound, or
// pruning a node whose f exceeds it. Pruned nodes count toward the
// iteration total and emit snapshots like any other visit. The closed
// set accumulates across rounds so a renderer sees the full footprint.
type idaStepper struct {
	tracker
	h           Heuristic
	stack       []*idaFrame
	onPath      map[grid.Cell]bool
	gScores     map[grid.Cell]float64
	threshold   float64
	round       int
	minOverflow float64
}

func newIDAStar(g *grid.Grid) *idaStepper {
	s := &idaStepper{
		tracker:     newTracker(g),
		h:           Manhattan,
		onPath:      make(map[grid.Cell]bool),
		gScores:     make(map[grid.Cell]float64),
		minOverflow: math.Inf(1),
		round:       1,
	}
	s.threshold = s.h(g.Start, g.Goal)
	s.stack = []*idaFrame{{cell: g.Start, g: 0}}

	return s
}

// Algorithm implements Stepper.
func (s *idaStepper) Algorithm() Algorithm { return IDAStar }

// Step implements Stepper. One call resolves exactly one node event;
// bookkeeping moves (draining a cursor, popping a finished frame,
// starting the next round) happen silently in between.
func (s *idaStepper) Step() (*Snapshot, error) {
	if snap, err := s.takePending(); snap != nil || err != nil {
		return snap, err
	}

	for {
		if len(s.stack) == 0 {
			if math.IsInf(s.minOverflow, 1) {
				// Nothing overflowed the bound: the reachable space is spent.
				snap := s.emit(nil)
				s.finish()
				return snap, nil
			}
			// Deepen: rerun from the root under the smallest overflowed f.
			s.threshold = s.minOverflow
			s.minOverflow = math.Inf(1)
			s.round++
			s.onPath = make(map[grid.Cell]bool)
			s.stack = append(s.stack, &idaFrame{cell: s.g.Start, g: 0})
			continue
		}

		top := s.stack[len(s.stack)-1]

		if !top.entered {
			f := top.g + s.h(top.cell, s.g.Goal)
			s.gScores[top.cell] = top.g

			if f > s.threshold {
				// Prune: the bound cuts this branch here.
				s.minOverflow = math.Min(s.minOverflow, f)
				s.iteration++
				snap := s.emit(cellRef(top.cell))
				s.stack = s.stack[:len(s.stack)-1]
				return snap, nil
			}

			top.entered = true
			s.onPath[top.cell] = true
			s.explored[top.cell] = true
			s.iteration++
			snap := s.emit(cellRef(top.cell))

			if top.cell == s.g.Goal {
				path := s.pathFromStack()
				term := s.emit(cellRef(top.cell))
				term.Found = true
				term.Path = path
				term.PathCost = PathCost(path, s.g)
				s.pending = term
				return snap, nil
			}

			top.neighbors = s.g.Neighbors(top.cell)
			return snap, nil
		}

		// Advance the cursor past on-path cells; descend into the first
		// fresh neighbor, or pop when the cursor is spent.
		advanced := false
		for top.next < len(top.neighbors) {
			nb := top.neighbors[top.next]
			top.next++
			if s.onPath[nb] {
				continue
			}
			s.cameFrom[nb] = cellRef(top.cell)
			s.stack = append(s.stack, &idaFrame{cell: nb, g: top.g + s.g.Cost(top.cell, nb)})
			advanced = true
			break
		}
		if !advanced {
			delete(s.onPath, top.cell)
			s.stack = s.stack[:len(s.stack)-1]
		}
	}
}

// emit builds a snapshot carrying the deepening state. IDA* publishes
// no frontier slice; the open state is implicit in the path.
func (s *idaStepper) emit(current *grid.Cell) *Snapshot {
	snap := s.snapshot(current, nil, s.gScores)
	snap.Threshold = s.threshold
	snap.Round = s.round

	return snap
}

// pathFromStack reads the start→goal path straight off the entered
// frames; the stack IS the path when the goal is on top.
func (s *idaStepper) pathFromStack() []grid.Cell {
	path := make([]grid.Cell, 0, len(s.stack))
	for _, fr := range s.stack {
		path = append(path, fr.cell)
	}

	return path
}
