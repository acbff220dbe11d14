package parameter

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/chaos-pong/constants"
)

// colorGen produces a random target color from a parameter's domain
type colorGen func(rng *rand.Rand) colorful.Color

// randomColor draws uniformly over RGB space
func randomColor(rng *rand.Rand) colorful.Color {
	return colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
}

// randomDarkColor draws a dark-biased color (backgrounds must not wash out
// the playfield)
func randomDarkColor(rng *rand.Rand) colorful.Color {
	return colorful.Color{
		R: rng.Float64() * 0.3,
		G: rng.Float64() * 0.3,
		B: rng.Float64() * 0.3,
	}
}

// colorParam is one independently-scheduled color parameter.
// current converges toward target by a fixed per-channel fraction each tick,
// an exponential decay that tracks the tick rate rather than wall time.
type colorParam struct {
	def      colorful.Color
	gen      colorGen
	current  colorful.Color
	target   colorful.Color
	nextGoal time.Time
}

func newColorParam(defHex string, gen colorGen) *colorParam {
	def, err := colorful.Hex(defHex)
	if err != nil {
		def = colorful.Color{}
	}
	return &colorParam{def: def, gen: gen, current: def, target: def}
}

// advance retargets when due and blends every tick regardless
func (c *colorParam) advance(now time.Time, rng *rand.Rand) {
	if !now.Before(c.nextGoal) {
		c.target = c.gen(rng)
		c.nextGoal = now.Add(constants.ColorRerollBase + jitter(rng, constants.ColorRerollJitter))
	}
	c.current = c.current.BlendRgb(c.target, constants.ColorBlendStep)
}

// hex returns the current color as "#rrggbb"
func (c *colorParam) hex() string {
	return c.current.Clamped().Hex()
}

// reset restores the default color and re-arms the schedule
func (c *colorParam) reset() {
	c.current = c.def
	c.target = c.def
	c.nextGoal = time.Time{}
}
