package race

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/search"
)

// lane is one contestant: a stepper plus the running summary folded
// out of its snapshots.
type lane struct {
	stepper  search.Stepper
	stats    LaneStats
	last     *search.Snapshot
	finished bool
}

// step advances the lane once; a finished lane is a no-op.
func (l *lane) step() error {
	if l.finished {
		return nil
	}
	snap, err := l.stepper.Step()
	if errors.Is(err, search.ErrDone) {
		l.finished = true
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "lane %s", l.stats.Algorithm)
	}

	l.last = snap
	l.stats.Iterations = snap.Iteration
	l.stats.NodesExplored = len(snap.Explored)
	if snap.Found {
		l.stats.Found = true
		l.stats.PathCost = snap.PathCost
		l.stats.PathLen = len(snap.Path)
	}

	return nil
}

// Race drives two lanes over one grid in lockstep.
type Race struct {
	g     *grid.Grid
	speed Speed
	lanes [2]*lane
}

// New builds a race between algorithms a and b on g. Both lanes see
// the same grid; steppers never mutate it.
func New(g *grid.Grid, a, b search.Algorithm, opts ...Option) (*Race, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &Race{g: g, speed: o.Speed}
	for i, algo := range [2]search.Algorithm{a, b} {
		st, err := search.New(g, algo)
		if err != nil {
			return nil, errors.Wrapf(err, "lane %d", i)
		}
		r.lanes[i] = &lane{stepper: st, stats: LaneStats{Algorithm: algo}}
	}

	return r, nil
}

// Grid exposes the shared course for rendering.
func (r *Race) Grid() *grid.Grid { return r.g }

// Speed reports the configured pace.
func (r *Race) Speed() Speed { return r.speed }

// Lane reports the algorithm running in lane i (0 or 1).
func (r *Race) Lane(i int) search.Algorithm { return r.lanes[i].stats.Algorithm }

// Tick advances every unfinished lane by the speed's step budget (or
// to completion at Instant) and returns the freshest snapshot per
// lane. A lane's entry stays at its last snapshot once it finishes.
func (r *Race) Tick() ([2]*search.Snapshot, error) {
	budget := r.speed.StepsPerTick()
	for _, l := range r.lanes {
		for n := 0; !l.finished && (r.speed == Instant || n < budget); n++ {
			if err := l.step(); err != nil {
				return [2]*search.Snapshot{}, err
			}
		}
	}

	return [2]*search.Snapshot{r.lanes[0].last, r.lanes[1].last}, nil
}

// Finished reports whether both lanes have emitted their terminal
// snapshots.
func (r *Race) Finished() bool {
	return r.lanes[0].finished && r.lanes[1].finished
}

// Verdict applies the ruling ladder to a finished race.
func (r *Race) Verdict() (Verdict, error) {
	if !r.Finished() {
		return Verdict{}, ErrNotFinished
	}

	a, b := r.lanes[0].stats, r.lanes[1].stats
	v := Verdict{A: a, B: b}

	switch {
	case !a.Found && !b.Found:
		v.Outcome = NoPath
		v.Reason = "neither algorithm reached the goal"
	case a.Found != b.Found:
		if a.Found {
			v.Outcome = WinnerA
			v.Reason = fmt.Sprintf("only %s reached the goal", a.Algorithm)
		} else {
			v.Outcome = WinnerB
			v.Reason = fmt.Sprintf("only %s reached the goal", b.Algorithm)
		}
	case a.PathCost != b.PathCost:
		if a.PathCost < b.PathCost {
			v.Outcome = WinnerA
		} else {
			v.Outcome = WinnerB
		}
		v.Reason = fmt.Sprintf("cheaper path: %.0f vs %.0f", a.PathCost, b.PathCost)
	case a.NodesExplored != b.NodesExplored:
		if a.NodesExplored < b.NodesExplored {
			v.Outcome = WinnerA
		} else {
			v.Outcome = WinnerB
		}
		v.Reason = fmt.Sprintf("equal cost, smaller footprint: %d vs %d nodes", a.NodesExplored, b.NodesExplored)
	default:
		v.Outcome = Tie
		v.Reason = "equal cost and equal footprint"
	}

	return v, nil
}

// Run drains the race to completion and rules on it in one call.
func Run(g *grid.Grid, a, b search.Algorithm, opts ...Option) (Verdict, error) {
	opts = append(opts, WithSpeed(Instant))
	r, err := New(g, a, b, opts...)
	if err != nil {
		return Verdict{}, err
	}
	if _, err := r.Tick(); err != nil {
		return Verdict{}, err
	}

	return r.Verdict()
}
