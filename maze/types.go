// Package maze defines kinds, tunable options, and sentinel errors for
// maze generation.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze generation.
var (
	// ErrUnknownKind is returned for a Kind this package does not know.
	ErrUnknownKind = errors.New("maze: unknown maze kind")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Kind selects the generation strategy.
type Kind uint8

const (
	// Scattered drops walls at random coordinates up to a density target.
	Scattered Kind = iota
	// Backtracker carves a perfect maze (spanning tree of corridors).
	Backtracker
	// Open produces a mostly-open field with scattered obstacles and
	// protected endpoints.
	Open
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Scattered:
		return "scattered"
	case Backtracker:
		return "backtracker"
	case Open:
		return "open"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a name to its Kind. Returns ErrUnknownKind otherwise.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "scattered", "random":
		return Scattered, nil
	case "backtracker", "recursive", "perfect":
		return Backtracker, nil
	case "open":
		return Open, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Default densities, matching the arena's stock presets.
const (
	// DefaultWallPercent is the wall density for Scattered mazes.
	DefaultWallPercent = 0.25
	// DefaultMudPercent is the mud density for Scattered and Backtracker.
	DefaultMudPercent = 0.15
	// DefaultOpenWallPercent is the wall density for Open mazes.
	DefaultOpenWallPercent = 0.20
	// DefaultOpenMudPercent is the mud density for Open mazes.
	DefaultOpenMudPercent = 0.25
	// DefaultMaxRetries caps the relax-and-retry loop before the
	// all-Floor fallback kicks in.
	DefaultMaxRetries = 8
)

// Options holds the tunable parameters for one Generate call.
type Options struct {
	// WallPercent is the target fraction of cells that become Walls.
	// Ignored by Backtracker.
	WallPercent float64
	// MudPercent is the chance for an eligible Floor cell to become Mud.
	MudPercent float64
	// Seed drives all randomness. Seed 0 selects a fixed default seed so
	// unseeded runs stay reproducible.
	Seed int64
	// MaxRetries caps connectivity retries before the all-Floor fallback.
	MaxRetries int

	// internal error recorded during option parsing
	err error
}

// Option configures generation via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when Generate runs.
type Option func(*Options)

// DefaultOptions returns the stock parameters for the given kind.
func DefaultOptions(kind Kind) Options {
	o := Options{
		WallPercent: DefaultWallPercent,
		MudPercent:  DefaultMudPercent,
		MaxRetries:  DefaultMaxRetries,
	}
	if kind == Open {
		o.WallPercent = DefaultOpenWallPercent
		o.MudPercent = DefaultOpenMudPercent
	}

	return o
}

// WithWallPercent sets the wall density target, in [0,1).
func WithWallPercent(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: WallPercent %v outside [0,1)", ErrOptionViolation, p)
			return
		}
		o.WallPercent = p
	}
}

// WithMudPercent sets the mud density, in [0,1].
func WithMudPercent(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: MudPercent %v outside [0,1]", ErrOptionViolation, p)
			return
		}
		o.MudPercent = p
	}
}

// WithSeed fixes the random seed. Seed 0 keeps the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxRetries caps the relax-and-retry rounds (must be ≥ 0).
func WithMaxRetries(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRetries cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRetries = n
	}
}
