package search

import "github.com/katalvlaran/pathrace/grid"

// bfsStepper explores level by level through a FIFO queue. Each cell is
// enqueued at most once (discovery check on cameFrom), so the frontier
// never holds duplicates; the explored skip-check stays anyway to keep
// the shared step protocol uniform.
type bfsStepper struct {
	tracker
	frontier []grid.Cell
}

func newBFS(g *grid.Grid) *bfsStepper {
	s := &bfsStepper{tracker: newTracker(g)}
	s.frontier = append(s.frontier, g.Start)

	return s
}

// Algorithm implements Stepper.
func (s *bfsStepper) Algorithm() Algorithm { return BFS }

// Step implements Stepper. One call expands one node: pop, mark
// explored, snapshot, then either queue the terminal snapshot (goal) or
// enqueue undiscovered neighbors.
func (s *bfsStepper) Step() (*Snapshot, error) {
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
		current, s.frontier = s.frontier[0], s.frontier[1:]
		if !s.explored[current] {
			break
		}
		// Duplicate pop: skip without counting an iteration.
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

	for _, nb := range s.g.Neighbors(current) {
		if _, seen := s.cameFrom[nb]; seen {
			continue
		}
		s.cameFrom[nb] = cellRef(current)
		s.frontier = append(s.frontier, nb)
	}

	return snap, nil
}
