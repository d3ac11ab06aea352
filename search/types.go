// Package search defines the algorithm tags, the Snapshot contract, and
// sentinel errors shared by the six steppers.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathrace/grid"
)

// Sentinel errors for stepper construction and driving.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrUnknownAlgorithm indicates an unrecognized Algorithm tag.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
	// ErrDone signals that the step sequence already emitted its terminal
	// snapshot. It is the end-of-sequence marker, not a failure: drivers
	// must treat it as "already finished".
	ErrDone = errors.New("search: step sequence finished")
)

// Algorithm tags one of the six search strategies.
type Algorithm uint8

const (
	// BFS is breadth-first search: FIFO frontier, level by level.
	BFS Algorithm = iota
	// DFS is depth-first search: LIFO frontier, deepest first.
	DFS
	// UCS is uniform-cost search: expands the cheapest g first.
	UCS
	// Greedy is greedy best-first: rushes toward the goal on h alone.
	Greedy
	// AStar orders by f = g + h with an admissible heuristic.
	AStar
	// IDAStar is iterative-deepening A*: depth-first under an f bound.
	IDAStar
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case UCS:
		return "UCS"
	case Greedy:
		return "Greedy"
	case AStar:
		return "A*"
	case IDAStar:
		return "IDA*"
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a (case-insensitive) name to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "ucs":
		return UCS, nil
	case "greedy":
		return Greedy, nil
	case "a*", "astar":
		return AStar, nil
	case "ida*", "idastar":
		return IDAStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms lists every supported tag in display order.
var Algorithms = []Algorithm{BFS, DFS, UCS, Greedy, AStar, IDAStar}

// Snapshot is the unit of observability: the full search state at one
// suspension point. All collection fields are fresh copies, detached
// from the stepper's internals, so a renderer may keep any number of
// historical snapshots.
//
// Field presence varies by algorithm: GScores is nil for BFS, DFS and
// Greedy; Threshold and Round are meaningful only for IDA*. Consumers
// must treat everything beyond Current, Explored, Found, Path and
// Iteration as optional.
type Snapshot struct {
	// Current is the cell being expanded, nil on the exhaustion snapshot.
	Current *grid.Cell
	// Frontier holds the open set at this instant, in the frontier's own
	// order (queue order for BFS/DFS, heap-internal order for the
	// cost-driven algorithms). Nil for IDA*, which keeps no explicit
	// frontier.
	Frontier []grid.Cell
	// FrontierSize is len(Frontier) at emission time, kept separately so
	// metrics survive even if a consumer drops the slice.
	FrontierSize int
	// Explored is the closed set: cells whose expansion is finalized.
	Explored map[grid.Cell]bool
	// CameFrom maps each discovered cell to the cell that first (or, for
	// relaxing algorithms, best) discovered it. The root maps to nil.
	CameFrom map[grid.Cell]*grid.Cell
	// GScores is the cost-so-far map; nil for cost-blind algorithms.
	GScores map[grid.Cell]float64
	// Found is true only on the terminal success snapshot.
	Found bool
	// Path is the start→goal cell sequence, populated only when Found.
	Path []grid.Cell
	// PathCost is the total terrain cost of Path, set alongside it.
	PathCost float64
	// Iteration counts non-skipped expansions so far, monotonically.
	Iteration int
	// Threshold is IDA*'s current f bound; zero elsewhere.
	Threshold float64
	// Round is IDA*'s deepening round (1-based); zero elsewhere.
	Round int
}

// Stepper is a resumable search computation over a fixed grid. Step
// advances one expansion and returns the snapshot emitted at that
// suspension point, or ErrDone once the sequence has finished.
type Stepper interface {
	Step() (*Snapshot, error)
	Algorithm() Algorithm
}

// New constructs a Stepper for the given algorithm over g. The grid is
// treated as read-only from here on.
func New(g *grid.Grid, algo Algorithm) (Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	switch algo {
	case BFS:
		return newBFS(g), nil
	case DFS:
		return newDFS(g), nil
	case UCS, Greedy, AStar:
		return newBestFirst(g, algo), nil
	case IDAStar:
		return newIDAStar(g), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
}

// copyExplored clones a closed set for snapshot isolation.
func copyExplored(m map[grid.Cell]bool) map[grid.Cell]bool {
	out := make(map[grid.Cell]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// copyCameFrom clones a parent-pointer map. The pointed-to cells are
// immutable once created, so sharing the pointees is safe.
func copyCameFrom(m map[grid.Cell]*grid.Cell) map[grid.Cell]*grid.Cell {
	out := make(map[grid.Cell]*grid.Cell, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// copyScores clones a g-score map; nil stays nil.
func copyScores(m map[grid.Cell]float64) map[grid.Cell]float64 {
	if m == nil {
		return nil
	}
	out := make(map[grid.Cell]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
