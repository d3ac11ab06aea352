package search

import "github.com/katalvlaran/pathrace/grid"

// dfsStepper dives depth-first through a LIFO stack. Neighbors are
// pushed in reverse of the grid's fixed order so that the natural first
// direction (up) is the one actually explored first. Not optimal and,
// in general graphs, not complete; the finite grid makes it terminate.
type dfsStepper struct {
	tracker
	frontier []grid.Cell // stack: top is the last element
}

func newDFS(g *grid.Grid) *dfsStepper {
	s := &dfsStepper{tracker: newTracker(g)}
	s.frontier = append(s.frontier, g.Start)

	return s
}

// Algorithm implements Stepper.
func (s *dfsStepper) Algorithm() Algorithm { return DFS }

// Step implements Stepper.
func (s *dfsStepper) Step() (*Snapshot, error) {
	if snap, err := s.takePending(); snap != nil || err != nil {
		return snap, err
	}

	var current grid.Cell
	for {
		if len(s.frontier) == 0 {
			snap := s.snapshot(nil, nil, nil)
			s.finish()
			return snap, nil
		}
		last := len(s.frontier) - 1
		current, s.frontier = s.frontier[last], s.frontier[:last]
		if !s.explored[current] {
			break
		}
	}

	s.explored[current] = true
	s.iteration++

	frontier := make([]grid.Cell, len(s.frontier))
	copy(frontier, s.frontier)
	snap := s.snapshot(cellRef(current), frontier, nil)

	if current == s.g.Goal {
		path := ReconstructPath(s.cameFrom, s.g.Goal)
		term := s.snapshot(cellRef(current), frontier, nil)
		term.Found = true
		term.Path = path
		term.PathCost = PathCost(path, s.g)
		s.pending = term

		return snap, nil
	}

	neighbors := s.g.Neighbors(current)
	for i := len(neighbors) - 1; i >= 0; i-- {
		nb := neighbors[i]
		if s.explored[nb] {
			continue
		}
		if _, seen := s.cameFrom[nb]; seen {
			continue
		}
		s.cameFrom[nb] = cellRef(current)
		s.frontier = append(s.frontier, nb)
	}

	return snap, nil
}
