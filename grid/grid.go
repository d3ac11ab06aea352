package grid

import "math"

// Grid is a fixed-size 4-connected terrain field with designated Start
// and Goal cells. Size is fixed at construction; terrain mutates only
// through SetTerrain.
type Grid struct {
	// Width and Height are the grid dimensions in cells.
	Width, Height int
	// Start and Goal are the race endpoints. Both always reference
	// in-bounds cells.
	Start, Goal Cell

	terrain []Terrain // row-major, len == Width*Height
}

// New constructs an all-Floor grid with default endpoints: Start at
// (1,1) and Goal at (Width-2, Height-2). Returns ErrBadDimensions when
// either dimension is below 2.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		Width:   width,
		Height:  height,
		Start:   Cell{X: 1, Y: 1},
		Goal:    Cell{X: width - 2, Y: height - 2},
		terrain: make([]Terrain, width*height),
	}

	return g, nil
}

// index maps (x,y) to the row-major terrain slot: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cell returns the cell at (x,y) and true, or the zero Cell and false
// when the coordinates fall outside the grid. No error is ever raised
// for out-of-range queries.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}

	return Cell{X: x, Y: y}, true
}

// Terrain returns the terrain tag at c. Out-of-bounds cells report Wall,
// so callers never walk off the edge.
func (g *Grid) Terrain(c Cell) Terrain {
	if !g.InBounds(c.X, c.Y) {
		return Wall
	}

	return g.terrain[g.index(c.X, c.Y)]
}

// SetTerrain mutates the terrain at (x,y). Out-of-bounds writes are a
// no-op, matching the read side's sentinel behavior.
func (g *Grid) SetTerrain(x, y int, t Terrain) {
	if !g.InBounds(x, y) {
		return
	}
	g.terrain[g.index(x, y)] = t
}

// SetStart moves the start endpoint. Returns ErrBadPosition when (x,y)
// is out of bounds or a Wall.
func (g *Grid) SetStart(x, y int) error {
	c, ok := g.Cell(x, y)
	if !ok || g.Terrain(c) == Wall {
		return ErrBadPosition
	}
	g.Start = c

	return nil
}

// SetGoal moves the goal endpoint. Returns ErrBadPosition when (x,y)
// is out of bounds or a Wall.
func (g *Grid) SetGoal(x, y int) error {
	c, ok := g.Cell(x, y)
	if !ok || g.Terrain(c) == Wall {
		return ErrBadPosition
	}
	g.Goal = c

	return nil
}

// Neighbors returns the walkable 4-connected neighbors of c in the
// fixed up, right, down, left order, excluding Walls and out-of-bounds
// positions. This order is what downstream tie-breaking depends on.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n, ok := g.Cell(c.X+d[0], c.Y+d[1])
		if !ok || g.Terrain(n) == Wall {
			continue
		}
		out = append(out, n)
	}

	return out
}

// AllNeighbors returns every in-bounds 4-connected neighbor of c,
// including Walls. Rendering uses this; traversal must not.
// Complexity: O(1).
func (g *Grid) AllNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		if n, ok := g.Cell(c.X+d[0], c.Y+d[1]); ok {
			out = append(out, n)
		}
	}

	return out
}

// Cost returns the cost of moving from one cell to an adjacent one.
// The cost depends only on the destination cell's terrain: 1 for Floor,
// 5 for Mud, +Inf for Walls or out-of-bounds destinations.
func (g *Grid) Cost(_, to Cell) float64 {
	if !g.InBounds(to.X, to.Y) {
		return math.Inf(1)
	}

	return g.Terrain(to).Cost()
}

// IsWalkable reports whether c is an in-bounds, non-Wall cell.
func (g *Grid) IsWalkable(c Cell) bool {
	return g.InBounds(c.X, c.Y) && g.Terrain(c) != Wall
}

// Clear resets every cell back to Floor. Endpoints are untouched.
// Complexity: O(W×H).
func (g *Grid) Clear() {
	for i := range g.terrain {
		g.terrain[i] = Floor
	}
}

// Clone returns a deep copy of the grid, including endpoints.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		Width:   g.Width,
		Height:  g.Height,
		Start:   g.Start,
		Goal:    g.Goal,
		terrain: make([]Terrain, len(g.terrain)),
	}
	copy(dup.terrain, g.terrain)

	return dup
}

// CountTerrain returns the number of cells tagged t.
// Complexity: O(W×H).
func (g *Grid) CountTerrain(t Terrain) int {
	n := 0
	for _, cur := range g.terrain {
		if cur == t {
			n++
		}
	}

	return n
}
