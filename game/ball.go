package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/chaos-pong/constants"
	"github.com/lixenwraith/chaos-pong/core"
	"github.com/lixenwraith/chaos-pong/parameter"
	"github.com/lixenwraith/chaos-pong/physics"
)

// ballState tracks the ball lifecycle: Active -> ScoreCooldown -> Active
// (respawn) or Active -> Removed (terminal)
type ballState uint8

const (
	ballActive ballState = iota
	ballScoreCooldown
	ballRemoved
)

// TrailPoint is one past ball position retained for the trail effect
type TrailPoint struct {
	X, Y float64
	Size float64
}

// Hooks are the collaborator callbacks a ball fires during its tick.
// Nil members are tolerated as no-ops.
type Hooks struct {
	// Score is called once per scoring event with the side that scored
	Score func(Side)
	// PaddleHit is a fire-and-forget sound trigger
	PaddleHit func()
	// SpawnMultiball is invoked with the source ball on the multiball roll
	SpawnMultiball func(*Ball)
}

// Ball is one ball in play. Size is the collision radius in world units.
// The orchestrator owns every ball and pushes the tick's snapshot in before
// calling Tick.
type Ball struct {
	core.Kinetic
	Size  float64
	Color string

	trail    []TrailPoint
	maxTrail int

	state          ballState
	cooldownUntil  time.Time
	respawnOnScore bool

	snap parameter.Snapshot
}

// NewBall creates a ball at the field center with a randomized serve
func NewBall(field core.Rect, snap parameter.Snapshot, rng *rand.Rand) *Ball {
	b := &Ball{
		Size:           snap.BallSize,
		Color:          snap.BallColor,
		maxTrail:       constants.TrailLength,
		respawnOnScore: true,
		snap:           snap,
	}
	b.Reset(field, snap.BallSpeed, rng)
	return b
}

// NewBallAt creates a ball with fully explicit position and velocity
// (multiball spawns)
func NewBallAt(x, y, dx, dy float64, snap parameter.Snapshot) *Ball {
	return &Ball{
		Kinetic:        core.Kinetic{X: x, Y: y, DX: dx, DY: dy},
		Size:           snap.BallSize,
		Color:          snap.BallColor,
		maxTrail:       constants.TrailLength,
		respawnOnScore: true,
		snap:           snap,
	}
}

// Reset repositions the ball to the field center with a fresh serve: a
// horizontally-biased random angle, random left/right direction, and speed
// drawn from [max(floor, 0.8*ballSpeed), ballSpeed]
func (b *Ball) Reset(field core.Rect, ballSpeed float64, rng *rand.Rand) {
	angle := constants.LaunchAngleMin + rng.Float64()*(constants.LaunchAngleMax-constants.LaunchAngleMin)
	direction := 1.0
	if rng.Intn(2) == 0 {
		direction = -1.0
	}
	b.launch(field, angle, direction, ballSpeed, rng)
}

// launch applies a serve with explicit angle and direction. |dx| is floored
// at MinHorizontalLaunch so a ball can never travel purely vertically and
// stall the game.
func (b *Ball) launch(field core.Rect, angle, direction, ballSpeed float64, rng *rand.Rand) {
	lo := math.Max(constants.LaunchSpeedFloor, constants.LaunchSpeedFraction*ballSpeed)
	speed := lo + rng.Float64()*(ballSpeed-lo)

	b.X = field.CenterX()
	b.Y = field.CenterY()
	b.DX = math.Cos(angle) * speed * direction
	b.DY = math.Sin(angle) * speed

	if math.Abs(b.DX) < constants.MinHorizontalLaunch {
		if direction < 0 {
			b.DX = -constants.MinHorizontalLaunch
		} else {
			b.DX = constants.MinHorizontalLaunch
		}
	}
}

// SetSnapshot pushes the tick's parameter snapshot into the ball
func (b *Ball) SetSnapshot(snap parameter.Snapshot) {
	b.snap = snap
	b.Size = snap.BallSize
	b.Color = snap.BallColor
}

// Trail returns the retained past positions, oldest first
func (b *Ball) Trail() []TrailPoint {
	return b.trail
}

// Removed reports whether the ball has left play permanently
func (b *Ball) Removed() bool {
	return b.state == ballRemoved
}

// InCooldown reports whether the ball is dwelling after a score
func (b *Ball) InCooldown(now time.Time) bool {
	return b.state == ballScoreCooldown && now.Before(b.cooldownUntil)
}

// Tick advances the ball one step: trail, integration, wall and paddle
// collision, scoring. Returns the updated shake accumulator.
func (b *Ball) Tick(now time.Time, field core.Rect, left, right *Paddle, shake float64, rng *rand.Rand, hooks Hooks) float64 {
	if b.state == ballScoreCooldown {
		if now.Before(b.cooldownUntil) {
			return shake
		}
		b.state = ballActive
	}
	if b.state == ballRemoved {
		return shake
	}

	b.recordTrail()

	physics.Integrate(&b.Kinetic, b.snap.BallGravityX, b.snap.BallGravityY)

	if physics.ReflectBoundsY(&b.Kinetic, field, b.Size) {
		shake += constants.ShakeWallHit
	}

	if b.collidePaddle(left, right) {
		shake += constants.ShakePaddleHit
		if hooks.PaddleHit != nil {
			hooks.PaddleHit()
		}
		if b.snap.Multiball && hooks.SpawnMultiball != nil && rng.Float64() < constants.MultiballSpawnChance {
			hooks.SpawnMultiball(b)
		}
	}

	b.checkScoring(now, field, rng, hooks)
	return shake
}

// recordTrail appends the current state to the bounded trail buffer, or
// clears it while the effect is off
func (b *Ball) recordTrail() {
	if !b.snap.TrailEffect {
		b.trail = b.trail[:0]
		return
	}
	b.trail = append(b.trail, TrailPoint{X: b.X, Y: b.Y, Size: b.Size})
	if len(b.trail) > b.maxTrail {
		b.trail = b.trail[1:]
	}
}

// collidePaddle tests at most one paddle per tick: the left paddle only
// when moving left, the right only when moving right. A ball moving away
// from a paddle cannot collide with it, even at touching distance.
func (b *Ball) collidePaddle(left, right *Paddle) bool {
	switch {
	case b.DX < 0:
		return physics.ResolvePaddleCollision(&b.Kinetic, left.Rect(), b.Size) != physics.FaceNone
	case b.DX > 0:
		return physics.ResolvePaddleCollision(&b.Kinetic, right.Rect(), b.Size) != physics.FaceNone
	}
	return false
}

// checkScoring fires when the ball's far edge fully clears a side boundary.
// Left exit scores for the right side and vice versa; the two exits are
// mutually exclusive in a tick.
func (b *Ball) checkScoring(now time.Time, field core.Rect, rng *rand.Rand, hooks Hooks) {
	var scorer Side
	switch {
	case b.X+b.Size < field.X:
		scorer = SideRight
	case b.X-b.Size > field.Right():
		scorer = SideLeft
	default:
		return
	}

	if hooks.Score != nil {
		hooks.Score(scorer)
	}

	if b.respawnOnScore {
		b.state = ballScoreCooldown
		b.cooldownUntil = now.Add(constants.ScoreCooldown)
		b.Reset(field, b.snap.BallSpeed, rng)
	} else {
		b.state = ballRemoved
	}
}
