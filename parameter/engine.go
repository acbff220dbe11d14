package parameter

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/chaos-pong/constants"
)

// Engine owns the chaos schedules: one per scalar, boolean and color
// parameter plus the control-inversion coin. Each schedule advances
// independently; Advance merges them into the tick's Snapshot.
//
// Mutation is gated: nothing moves until ChaosStartDelay has elapsed since
// the first observed timestamp. Reset re-arms the gate.
type Engine struct {
	rng *rand.Rand

	started   bool
	startTime time.Time

	ballSpeed   *scalar
	ballSize    *scalar
	paddleSize  *scalar
	paddleWidth *scalar
	paddleSpeed *scalar
	gravityX    *scalar
	gravityY    *scalar
	fieldWidth  *scalar
	fieldHeight *scalar

	multiball   *scalar
	trailEffect *scalar
	screenShake *scalar
	neonEffects *scalar

	ballColor   *colorParam
	paddleColor *colorParam
	background  *colorParam
	fieldBorder *colorParam

	inverted       bool
	nextInvertRoll time.Time
}

// NewEngine creates a chaos engine with default parameter values.
// A nil rng falls back to a time-seeded source; randomness is a gameplay
// feature, not something reproducible.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		rng: rng,

		ballSpeed:   newScalar(constants.BallSpeedDefault, constants.BallSpeedMin, constants.BallSpeedMax),
		ballSize:    newScalar(constants.BallSizeDefault, constants.BallSizeMin, constants.BallSizeMax),
		paddleSize:  newScalar(constants.PaddleSizeDefault, constants.PaddleSizeMin, constants.PaddleSizeMax),
		paddleWidth: newScalar(constants.PaddleWidthDefault, constants.PaddleWidthMin, constants.PaddleWidthMax),
		paddleSpeed: newScalar(constants.PaddleSpeedDefault, constants.PaddleSpeedMin, constants.PaddleSpeedMax),
		gravityX:    newScalar(constants.BallGravityDefault, constants.BallGravityMin, constants.BallGravityMax),
		gravityY:    newScalar(constants.BallGravityDefault, constants.BallGravityMin, constants.BallGravityMax),
		fieldWidth:  newScalar(constants.FieldRatioDefault, constants.FieldRatioMin, constants.FieldRatioMax),
		fieldHeight: newScalar(constants.FieldRatioDefault, constants.FieldRatioMin, constants.FieldRatioMax),

		multiball:   newScalar(0, 0, 1),
		trailEffect: newScalar(0, 0, 1),
		screenShake: newScalar(0, 0, 1),
		neonEffects: newScalar(0, 0, 1),

		ballColor:   newColorParam(constants.BallColorDefault, randomColor),
		paddleColor: newColorParam(constants.PaddleColorDefault, randomColor),
		background:  newColorParam(constants.BackgroundColorDefault, randomDarkColor),
		fieldBorder: newColorParam(constants.FieldBorderColorDefault, randomColor),
	}
}

// Advance moves every schedule to now and returns the merged snapshot.
// Before the start delay elapses the untouched default snapshot is returned.
func (e *Engine) Advance(now time.Time) Snapshot {
	if !e.started {
		e.started = true
		e.startTime = now
	}
	if now.Sub(e.startTime) < constants.ChaosStartDelay {
		return DefaultSnapshot()
	}

	for _, s := range e.scalars() {
		s.advance(now, e.rng)
	}
	for _, c := range e.colors() {
		c.advance(now, e.rng)
	}

	// Inversion is an independent re-roll, not a toggle: consecutive
	// windows can both come up false
	if !now.Before(e.nextInvertRoll) {
		e.inverted = e.rng.Float64() < constants.InvertChance
		e.nextInvertRoll = now.Add(constants.InvertRerollBase + jitter(e.rng, constants.InvertRerollJitter))
	}

	return Snapshot{
		BallSpeed:    e.ballSpeed.current,
		BallSize:     e.ballSize.current,
		PaddleSize:   e.paddleSize.current,
		PaddleWidth:  e.paddleWidth.current,
		PaddleSpeed:  e.paddleSpeed.current,
		BallGravityX: e.gravityX.current,
		BallGravityY: e.gravityY.current,
		FieldWidth:   e.fieldWidth.current,
		FieldHeight:  e.fieldHeight.current,

		Multiball:      e.multiball.enabled(),
		InvertControls: e.inverted,
		TrailEffect:    e.trailEffect.enabled(),
		ScreenShake:    e.screenShake.enabled(),
		NeonEffects:    e.neonEffects.enabled(),

		BallColor:        e.ballColor.hex(),
		PaddleColor:      e.paddleColor.hex(),
		BackgroundColor:  e.background.hex(),
		FieldBorderColor: e.fieldBorder.hex(),
	}
}

// Reset restores every schedule to its default value and re-arms the start
// gate; chaos resumes only after ChaosStartDelay elapses again.
func (e *Engine) Reset() {
	for _, s := range e.scalars() {
		s.reset()
	}
	for _, c := range e.colors() {
		c.reset()
	}
	e.inverted = false
	e.nextInvertRoll = time.Time{}
	e.started = false
	e.startTime = time.Time{}
}

func (e *Engine) scalars() []*scalar {
	return []*scalar{
		e.ballSpeed, e.ballSize, e.paddleSize, e.paddleWidth, e.paddleSpeed,
		e.gravityX, e.gravityY, e.fieldWidth, e.fieldHeight,
		e.multiball, e.trailEffect, e.screenShake, e.neonEffects,
	}
}

func (e *Engine) colors() []*colorParam {
	return []*colorParam{e.ballColor, e.paddleColor, e.background, e.fieldBorder}
}
