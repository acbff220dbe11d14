package parameter

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/chaos-pong/constants"
)

// scalar is one independently-scheduled continuous parameter.
// Boolean parameters ride the same schedule with min=0, max=1 and threshold
// at 0.5. Invariant: current stays within [min, max] because targets are
// drawn from the range and current only moves a fraction of the remaining
// gap per tick.
type scalar struct {
	min, max float64
	def      float64

	current, target float64
	nextChange      time.Time
	transitionStart time.Time
	transitionDur   time.Duration
}

func newScalar(def, min, max float64) *scalar {
	return &scalar{min: min, max: max, def: def, current: def, target: def}
}

// advance retargets when due and moves current toward target.
// Per-tick convergence is capped at TransitionMaxStep of the remaining gap,
// so transitions stay gradual and track the tick rate.
func (s *scalar) advance(now time.Time, rng *rand.Rand) {
	if !now.Before(s.nextChange) {
		s.target = s.min + rng.Float64()*(s.max-s.min)
		s.nextChange = now.Add(constants.ScalarRerollBase + jitter(rng, constants.ScalarRerollJitter))
		s.transitionStart = now
		s.transitionDur = constants.TransitionBase + jitter(rng, constants.TransitionJitter)
	}

	frac := float64(now.Sub(s.transitionStart)) / float64(s.transitionDur)
	if frac < 0 {
		frac = 0
	}
	if frac > constants.TransitionMaxStep {
		frac = constants.TransitionMaxStep
	}
	s.current += (s.target - s.current) * frac
}

// enabled derives the boolean reading of a 0..1 scalar
func (s *scalar) enabled() bool {
	return s.current > 0.5
}

// reset restores the default value and re-arms the schedule for an
// immediate retarget once chaos is ungated again
func (s *scalar) reset() {
	s.current = s.def
	s.target = s.def
	s.nextChange = time.Time{}
	s.transitionStart = time.Time{}
	s.transitionDur = 0
}

// jitter draws a uniform duration from [0, max)
func jitter(rng *rand.Rand, max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rng.Int63n(int64(max)))
}
