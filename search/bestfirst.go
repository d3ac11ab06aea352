package search

import (
	"container/heap"

	"github.com/katalvlaran/pathrace/grid"
)

// bestFirstStepper drives the three cost-ordered algorithms — UCS,
// Greedy and A* — over one shared frontier machine. Only two things
// differ per algorithm: the priority key of a neighbor, and whether a
// better path may rewrite an earlier discovery (relaxation) or the
// first discovery sticks (Greedy).
//
// Relaxing algorithms use the lazy decrease-key pattern: push a fresh
// entry on every improvement and drop stale entries at pop time via
// the explored check.
type bestFirstStepper struct {
	tracker
	algo     Algorithm
	h        Heuristic
	frontier frontierHeap
	gScores  map[grid.Cell]float64 // nil for Greedy
	seq      uint64
}

func newBestFirst(g *grid.Grid, algo Algorithm) *bestFirstStepper {
	s := &bestFirstStepper{
		tracker: newTracker(g),
		algo:    algo,
		h:       Manhattan,
	}
	heap.Init(&s.frontier)

	var start float64
	switch algo {
	case UCS:
		s.gScores = map[grid.Cell]float64{g.Start: 0}
		start = 0
	case Greedy:
		start = s.h(g.Start, g.Goal)
	case AStar:
		s.gScores = map[grid.Cell]float64{g.Start: 0}
		start = s.h(g.Start, g.Goal) // f = 0 + h
	}
	s.push(g.Start, start)

	return s
}

// Algorithm implements Stepper.
func (s *bestFirstStepper) Algorithm() Algorithm { return s.algo }

func (s *bestFirstStepper) push(c grid.Cell, priority float64) {
	s.seq++
	heap.Push(&s.frontier, &frontierItem{cell: c, priority: priority, seq: s.seq})
}

// Step implements Stepper.
func (s *bestFirstStepper) Step() (*Snapshot, error) {
	if snap, err := s.takePending(); snap != nil || err != nil {
		return snap, err
	}

	var current grid.Cell
	for {
		if s.frontier.Len() == 0 {
			snap := s.snapshot(nil, nil, s.gScores)
			s.finish()
			return snap, nil
		}
		current = heap.Pop(&s.frontier).(*frontierItem).cell
		if !s.explored[current] {
			break
		}
		// Stale lazy-decrease-key entry: discard silently.
	}

	s.explored[current] = true
	s.iteration++

	snap := s.snapshot(cellRef(current), s.frontier.cells(), s.gScores)

	if current == s.g.Goal {
		path := ReconstructPath(s.cameFrom, s.g.Goal)
		term := s.snapshot(cellRef(current), s.frontier.cells(), s.gScores)
		term.Found = true
		term.Path = path
		term.PathCost = s.pathCost(path)
		s.pending = term

		return snap, nil
	}

	s.expand(current)

	return snap, nil
}

// expand applies the per-algorithm discovery policy to the walkable
// neighbors of current.
func (s *bestFirstStepper) expand(current grid.Cell) {
	for _, nb := range s.g.Neighbors(current) {
		switch s.algo {
		case Greedy:
			// First discovery sticks; priority is h alone, computed once.
			if s.explored[nb] {
				continue
			}
			if _, seen := s.cameFrom[nb]; seen {
				continue
			}
			s.cameFrom[nb] = cellRef(current)
			s.push(nb, s.h(nb, s.g.Goal))

		case UCS, AStar:
			newCost := s.gScores[current] + s.g.Cost(current, nb)
			old, seen := s.gScores[nb]
			if seen && newCost >= old {
				continue
			}
			s.gScores[nb] = newCost
			s.cameFrom[nb] = cellRef(current)
			key := newCost
			if s.algo == AStar {
				key += s.h(nb, s.g.Goal)
			}
			s.push(nb, key)
		}
	}
}

// pathCost reports the terminal cost: the recorded g for the cost-aware
// algorithms, a fresh summation for Greedy.
func (s *bestFirstStepper) pathCost(path []grid.Cell) float64 {
	if s.gScores != nil {
		return s.gScores[s.g.Goal]
	}

	return PathCost(path, s.g)
}
