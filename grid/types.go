// Package grid defines core types and sentinel errors for the pathrace
// grid substrate.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction and placement.
var (
	// ErrBadDimensions indicates a grid smaller than 2×2 was requested.
	ErrBadDimensions = errors.New("grid: width and height must be at least 2")
	// ErrBadPosition indicates a Start/Goal placement that is out of
	// bounds or on a Wall cell.
	ErrBadPosition = errors.New("grid: position out of bounds or not walkable")
)

// Terrain classifies a single grid position.
type Terrain uint8

const (
	// Floor is walkable at unit cost.
	Floor Terrain = iota
	// Mud is walkable at five times the Floor cost.
	Mud
	// Wall is impassable.
	Wall
)

// Movement costs per destination terrain.
const (
	// CostFloor is the cost of stepping onto a Floor cell.
	CostFloor = 1.0
	// CostMud is the cost of stepping onto a Mud cell.
	CostMud = 5.0
)

// Cost returns the cost of stepping onto a cell with this terrain.
// Walls cost +Inf.
func (t Terrain) Cost() float64 {
	switch t {
	case Floor:
		return CostFloor
	case Mud:
		return CostMud
	case Wall:
		return math.Inf(1)
	}
	// Unknown tags behave like Floor, mirroring the permissive lookup
	// semantics of the rest of the package.
	return CostFloor
}

// String implements fmt.Stringer.
func (t Terrain) String() string {
	switch t {
	case Floor:
		return "Floor"
	case Mud:
		return "Mud"
	case Wall:
		return "Wall"
	}
	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// Cell is a coordinate pair within a Grid. It is a comparable value:
// two Cells with the same coordinates are the same cell, which is what
// lets search algorithms key maps and sets by Cell directly.
type Cell struct {
	X, Y int
}

// Less reports lexicographic (X, Y) order. Used for deterministic
// ordering wherever no other priority applies.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// neighborOffsets lists the 4-connected moves in the fixed expansion
// order: up, right, down, left. Search determinism depends on this order.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
