package maze

import (
	"github.com/katalvlaran/pathrace/grid"
)

// Density relaxation factors applied between connectivity retries.
const (
	scatteredRelax = 0.9
	openRelax      = 0.7
)

// Generate builds a maze of the requested kind and guarantees that the
// returned grid satisfies PathExists. Scattered and Open retry with the
// wall density relaxed after every failed gate, up to MaxRetries rounds;
// past the cap the generator falls back to an all-Floor grid, which is
// trivially connected. Backtracker mazes are spanning trees and skip the
// gate entirely.
//
// Validation order: option violations first, then grid dimensions.
//
// Complexity: O(R×W×H) with R ≤ MaxRetries+1.
func Generate(width, height int, kind Kind, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions(kind)
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rng := rngFromSeed(o.Seed)

	switch kind {
	case Backtracker:
		return buildBacktracker(width, height, o.MudPercent, rng)
	case Scattered, Open:
		// handled below
	default:
		return nil, ErrUnknownKind
	}

	wallPercent := o.WallPercent
	relax := scatteredRelax
	if kind == Open {
		relax = openRelax
	}

	for round := 0; round <= o.MaxRetries; round++ {
		var (
			g   *grid.Grid
			err error
		)
		if kind == Open {
			g, err = buildOpen(width, height, wallPercent, o.MudPercent, rng)
		} else {
			g, err = buildScattered(width, height, wallPercent, o.MudPercent, rng)
		}
		if err != nil {
			return nil, err
		}
		if PathExists(g) {
			return g, nil
		}
		// Strictly decreasing density; the gate is the authority, this
		// loop just shrinks the obstacle budget until it passes.
		wallPercent *= relax
	}

	// Retry budget exhausted: hand back the trivially-connected field.
	return grid.New(width, height)
}
