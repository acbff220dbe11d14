package constants

import "math"

// Ball Launch
const (
	// LaunchAngleMin and LaunchAngleMax bound the serve angle relative to
	// horizontal; the range is horizontally biased so serves always carry
	// lateral momentum
	LaunchAngleMin = -math.Pi / 5
	LaunchAngleMax = math.Pi / 2.5

	// LaunchSpeedFloor is the absolute minimum serve speed
	LaunchSpeedFloor = 2.0

	// LaunchSpeedFraction is the lower bound of the serve speed draw as a
	// fraction of the current ball speed parameter
	LaunchSpeedFraction = 0.8

	// MinHorizontalLaunch guarantees a serve is never purely vertical
	MinHorizontalLaunch = 1.0
)

// Collision Response
const (
	// PaddleBounceAccel multiplies both velocity components on every paddle
	// hit; growth is unbounded
	PaddleBounceAccel = 1.1

	// MinHorizontalBounce floors the horizontal speed after a paddle bounce
	MinHorizontalBounce = 2.0

	// AIFollowFactor scales paddle speed for AI-driven movement
	AIFollowFactor = 0.8
)

// Multiball Spawn Velocity
const (
	// SpawnReverseJitter randomizes the reversed horizontal velocity of a
	// paddle-hit spawned ball by up to this fraction either way
	SpawnReverseJitter = 0.2
)

// Screen Shake Weights
const (
	ShakeWallHit   = 1.0
	ShakePaddleHit = 3.0
)
