package search

import "github.com/katalvlaran/pathrace/grid"

// ReconstructPath walks parent pointers from goal back to the root (the
// cell whose parent is nil) and returns the start→goal sequence. If the
// goal was never discovered the result is nil.
//
// Complexity: O(path length).
func ReconstructPath(cameFrom map[grid.Cell]*grid.Cell, goal grid.Cell) []grid.Cell {
	if _, ok := cameFrom[goal]; !ok {
		return nil
	}

	path := []grid.Cell{goal}
	cur := goal
	for {
		parent := cameFrom[cur]
		if parent == nil {
			break
		}
		cur = *parent
		path = append(path, cur)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums the destination-terrain cost over consecutive pairs of
// path. Paths shorter than two cells cost 0.
//
// Complexity: O(path length).
func PathCost(path []grid.Cell, g *grid.Grid) float64 {
	if len(path) < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += g.Cost(path[i], path[i+1])
	}

	return total
}
