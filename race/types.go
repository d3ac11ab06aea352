package race

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathrace/search"
)

// Sentinel errors for race construction and adjudication.
var (
	// ErrNotFinished indicates Verdict was asked for while a lane is
	// still stepping.
	ErrNotFinished = errors.New("race: not finished")
)

// Speed expresses how many search steps a lane advances per second of
// animation, assuming the driver ticks at 60 Hz. Instant disables
// animation entirely: every Tick drains the lanes to completion.
type Speed int

const (
	// Slow crawls at one step per tick.
	Slow Speed = 30
	// Normal is the default pace.
	Normal Speed = 60
	// Fast runs several expansions per frame.
	Fast Speed = 300
	// Instant skips the animation and jumps straight to the verdict.
	Instant Speed = 0
)

// StepsPerTick converts the speed into a per-tick step budget.
func (s Speed) StepsPerTick() int {
	if n := int(s) / 60; n > 1 {
		return n
	}

	return 1
}

// String implements fmt.Stringer.
func (s Speed) String() string {
	switch s {
	case Slow:
		return "slow"
	case Normal:
		return "normal"
	case Fast:
		return "fast"
	case Instant:
		return "instant"
	}
	return fmt.Sprintf("Speed(%d)", int(s))
}

// ParseSpeed maps a preset name to its Speed.
func ParseSpeed(name string) (Speed, error) {
	switch name {
	case "slow":
		return Slow, nil
	case "normal":
		return Normal, nil
	case "fast":
		return Fast, nil
	case "instant":
		return Instant, nil
	}
	return 0, fmt.Errorf("race: unknown speed %q", name)
}

// Outcome is the top rung of the verdict ladder.
type Outcome uint8

const (
	// NoPath means neither lane reached the goal.
	NoPath Outcome = iota
	// WinnerA means the first lane won.
	WinnerA
	// WinnerB means the second lane won.
	WinnerB
	// Tie means both lanes found equally cheap paths with equal
	// exploration footprints.
	Tie
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case NoPath:
		return "no path"
	case WinnerA:
		return "A wins"
	case WinnerB:
		return "B wins"
	case Tie:
		return "tie"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// LaneStats is the per-lane summary folded out of the snapshot stream.
type LaneStats struct {
	Algorithm     search.Algorithm
	Found         bool
	PathCost      float64
	PathLen       int
	NodesExplored int
	Iterations    int
}

// Verdict is the ruling over a finished race.
type Verdict struct {
	Outcome Outcome
	A, B    LaneStats
	// Reason is a short human-readable justification of the outcome.
	Reason string
}

// Options configures a Race.
type Options struct {
	Speed Speed

	err error
}

// Option mutates Options; invalid values are recorded and surfaced by
// New.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Speed: Normal}
}

// WithSpeed selects the per-tick step budget preset.
func WithSpeed(s Speed) Option {
	return func(o *Options) {
		switch s {
		case Slow, Normal, Fast, Instant:
			o.Speed = s
		default:
			if s < 0 {
				o.err = fmt.Errorf("race: negative speed %d", int(s))
				return
			}
			// Any positive step rate is acceptable between the presets.
			o.Speed = s
		}
	}
}
