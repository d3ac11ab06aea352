package maze

import "github.com/katalvlaran/pathrace/grid"

// PathExists reports whether the grid's Goal is reachable from its Start
// over walkable cells. This is the generator's only correctness gate, so
// it stays as plain as possible: a FIFO reachability sweep.
//
// Complexity: O(W×H) time and memory.
func PathExists(g *grid.Grid) bool {
	if g.Start == g.Goal {
		return true
	}

	queue := make([]grid.Cell, 0, g.Width*g.Height)
	queue = append(queue, g.Start)
	visited := map[grid.Cell]bool{g.Start: true}

	var current grid.Cell
	for len(queue) > 0 {
		current, queue = queue[0], queue[1:]
		if current == g.Goal {
			return true
		}
		for _, nb := range g.Neighbors(current) {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return false
}
