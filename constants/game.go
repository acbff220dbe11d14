package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// World Canvas
// Simulation runs in world units; the renderer scales to terminal cells
const (
	// DefaultCanvasWidth is the simulation canvas width in world units
	DefaultCanvasWidth = 800.0

	// DefaultCanvasHeight is the simulation canvas height in world units
	DefaultCanvasHeight = 480.0
)

// Paddle Placement
const (
	// PaddleMargin is the gap between a paddle and its field side edge
	PaddleMargin = 15.0
)

// Ball Population
const (
	// MaxBalls is the hard cap on simultaneous balls in play
	MaxBalls = 5

	// TrailLength is the number of past positions retained per ball
	TrailLength = 8
)

// Scoring
const (
	// ScoreCooldown is the dwell after a score before the ball resets
	ScoreCooldown = 500 * time.Millisecond
)

// Multiball Spawning
const (
	// MultiballSequenceInterval is the delay between spawn-sequence balls
	MultiballSequenceInterval = 300 * time.Millisecond

	// MultiballSpawnCooldown rate-limits paddle-hit-triggered spawns
	MultiballSpawnCooldown = 500 * time.Millisecond

	// MultiballSpawnChance is the per-paddle-hit probability of a spawn
	MultiballSpawnChance = 0.05
)
