package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/chaos-pong/constants"
	"github.com/lixenwraith/chaos-pong/core"
	"github.com/lixenwraith/chaos-pong/input"
	"github.com/lixenwraith/chaos-pong/parameter"
)

// Controller selects how a paddle is driven
type Controller uint8

const (
	ControllerManual Controller = iota
	ControllerAI
)

// Config wires the orchestrator's collaborators. Zero-value fields are
// defaulted; nil callbacks degrade to no-ops.
type Config struct {
	Time TimeProvider
	Rng  *rand.Rand

	// CanvasSize supplies current canvas dimensions on demand; it may change
	// between ticks
	CanvasSize func() (w, h float64)

	// OnScore is called once per scoring event with the scoring side
	OnScore func(Side)
	// OnPaddleHit is a fire-and-forget sound trigger
	OnPaddleHit func()

	LeftController  Controller
	RightController Controller

	MaxBalls int

	// TrailLength caps the retained trail positions per ball
	TrailLength int
}

// Game is the simulation orchestrator. It exclusively owns the chaos
// engine, the paddle pair and the ball collection, and is the sole mutator
// of their state. One Tick runs the full per-frame sequence; presentation
// pulls the post-tick state through the accessors.
type Game struct {
	chaos *parameter.Engine
	time  TimeProvider
	rng   *rand.Rand

	canvasSize  func() (float64, float64)
	onScore     func(Side)
	onPaddleHit func()

	snap  parameter.Snapshot
	field core.Rect
	now   time.Time

	left, right *Paddle
	leftCtrl    Controller
	rightCtrl   Controller
	leftIntent  input.Intent
	rightIntent input.Intent

	balls    []*Ball
	maxBalls int
	trailLen int

	shake float64

	// Multiball spawn sequence, advanced inside Tick; at most one active
	// sequence at a time
	prevMultiball bool
	spawnPending  int
	spawnNextAt   time.Time

	// Rate limiter for paddle-hit-triggered spawns
	lastHitSpawn time.Time
}

// New creates an orchestrator with the given wiring
func New(cfg Config) *Game {
	if cfg.Time == nil {
		cfg.Time = NewTimeProvider()
	}
	if cfg.Rng == nil {
		cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.CanvasSize == nil {
		cfg.CanvasSize = func() (float64, float64) {
			return constants.DefaultCanvasWidth, constants.DefaultCanvasHeight
		}
	}
	if cfg.MaxBalls <= 0 {
		cfg.MaxBalls = constants.MaxBalls
	}
	if cfg.TrailLength <= 0 {
		cfg.TrailLength = constants.TrailLength
	}

	g := &Game{
		chaos:       parameter.NewEngine(cfg.Rng),
		time:        cfg.Time,
		rng:         cfg.Rng,
		canvasSize:  cfg.CanvasSize,
		onScore:     cfg.OnScore,
		onPaddleHit: cfg.OnPaddleHit,
		leftCtrl:    cfg.LeftController,
		rightCtrl:   cfg.RightController,
		maxBalls:    cfg.MaxBalls,
		trailLen:    cfg.TrailLength,
	}

	g.snap = parameter.DefaultSnapshot()
	w, h := g.canvasSize()
	g.field = core.FieldRect(w, h, g.snap.FieldWidth, g.snap.FieldHeight)
	g.left = NewPaddle(SideLeft, g.field)
	g.right = NewPaddle(SideRight, g.field)
	g.placePaddles()
	return g
}

// SetIntent records a paddle's movement intent for the next tick. The input
// layer applies control inversion before calling this.
func (g *Game) SetIntent(side Side, intent input.Intent) {
	if side == SideLeft {
		g.leftIntent = intent
	} else {
		g.rightIntent = intent
	}
}

// Tick runs one full simulation step
func (g *Game) Tick() {
	g.now = g.time.Now()
	g.snap = g.chaos.Advance(g.now)

	w, h := g.canvasSize()
	g.field = core.FieldRect(w, h, g.snap.FieldWidth, g.snap.FieldHeight)

	g.left.SyncDimensions(g.snap)
	g.right.SyncDimensions(g.snap)
	g.placePaddles()

	g.drivePaddle(g.left, g.leftCtrl, g.leftIntent)
	g.drivePaddle(g.right, g.rightCtrl, g.rightIntent)

	// Shake decays between impacts so the accumulated magnitude settles
	g.shake *= 0.9
	if g.shake < 0.01 {
		g.shake = 0
	}

	hooks := Hooks{
		Score:          g.onScore,
		PaddleHit:      g.onPaddleHit,
		SpawnMultiball: g.spawnFromHit,
	}
	for _, b := range g.balls {
		b.SetSnapshot(g.snap)
		g.shake = b.Tick(g.now, g.field, g.left, g.right, g.shake, g.rng, hooks)
	}

	g.reapRemoved()

	if len(g.balls) == 0 {
		g.balls = append(g.balls, g.adopt(NewBall(g.field, g.snap, g.rng)))
	}

	g.advanceSpawnSequence()
	g.syncRespawnFlags()
	g.prevMultiball = g.snap.Multiball
}

// placePaddles pins each paddle to its side of the current field and clamps
// the vertical position; the field can move or shrink between ticks
func (g *Game) placePaddles() {
	g.left.X = g.field.X + constants.PaddleMargin
	g.right.X = g.field.Right() - constants.PaddleMargin - g.right.Width
	g.left.ClampToField(g.field)
	g.right.ClampToField(g.field)
}

func (g *Game) drivePaddle(p *Paddle, ctrl Controller, intent input.Intent) {
	if ctrl == ControllerManual {
		p.MoveByIntent(intent, g.snap.PaddleSpeed, g.field)
		return
	}
	target, ok := g.aiTarget(p)
	if !ok {
		target = g.field.CenterY()
	}
	p.MoveByAI(target, g.field, g.snap.PaddleSpeed)
}

// aiTarget picks the nearest eligible ball for an AI paddle: balls moving
// toward this side win, ranked by vertical distance to the paddle center;
// balls moving away are the fallback. Reports false with no balls in play.
func (g *Game) aiTarget(p *Paddle) (float64, bool) {
	bestY, bestDist := 0.0, math.MaxFloat64
	found := false
	fallbackY, fallbackDist := 0.0, math.MaxFloat64

	center := p.CenterY()
	for _, b := range g.balls {
		if b.Removed() {
			continue
		}
		dist := math.Abs(b.Y - center)
		approaching := (p.Side == SideLeft && b.DX < 0) || (p.Side == SideRight && b.DX > 0)
		if approaching {
			if dist < bestDist {
				bestY, bestDist = b.Y, dist
				found = true
			}
		} else if dist < fallbackDist {
			fallbackY, fallbackDist = b.Y, dist
		}
	}
	if found {
		return bestY, true
	}
	if fallbackDist < math.MaxFloat64 {
		return fallbackY, true
	}
	return 0, false
}

// reapRemoved drops balls marked removed, keeping order
func (g *Game) reapRemoved() {
	kept := g.balls[:0]
	for _, b := range g.balls {
		if !b.Removed() {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(g.balls); i++ {
		g.balls[i] = nil
	}
	g.balls = kept
}

// advanceSpawnSequence runs the multiball population ramp as tick-driven
// state: when multiball turns on with headroom, one ball is added every
// interval until the cap is reached, the flag drops, or the game restarts.
func (g *Game) advanceSpawnSequence() {
	if !g.snap.Multiball {
		g.spawnPending = 0
		return
	}
	if !g.prevMultiball && len(g.balls) < g.maxBalls && g.spawnPending == 0 {
		g.spawnPending = g.maxBalls - len(g.balls)
		g.spawnNextAt = g.now
	}
	if g.spawnPending > 0 && !g.now.Before(g.spawnNextAt) {
		if len(g.balls) < g.maxBalls {
			g.balls = append(g.balls, g.sequenceBall())
		}
		g.spawnPending--
		g.spawnNextAt = g.now.Add(constants.MultiballSequenceInterval)
	}
}

// sequenceBall serves from the field center at the current ball speed with
// an angle drawn over the full circle
func (g *Game) sequenceBall() *Ball {
	angle := g.rng.Float64() * 2 * math.Pi
	speed := g.snap.BallSpeed
	return g.adopt(NewBallAt(
		g.field.CenterX(), g.field.CenterY(),
		math.Cos(angle)*speed, math.Sin(angle)*speed,
		g.snap,
	))
}

// adopt applies orchestrator-level settings a constructor cannot know
func (g *Game) adopt(b *Ball) *Ball {
	b.maxTrail = g.trailLen
	return b
}

// spawnFromHit is the 5% paddle-hit multiball spawn: capped by the ball
// limit and rate-limited regardless of how many hits occur. The new ball
// inherits the source position with dx reversed and jittered and dy
// re-rolled in magnitude and sign.
func (g *Game) spawnFromHit(source *Ball) {
	if !g.snap.Multiball || len(g.balls) >= g.maxBalls {
		return
	}
	if !g.lastHitSpawn.IsZero() && g.now.Sub(g.lastHitSpawn) < constants.MultiballSpawnCooldown {
		return
	}
	g.lastHitSpawn = g.now

	dx := -source.DX * (1 + (g.rng.Float64()*2-1)*constants.SpawnReverseJitter)
	dy := g.rng.Float64() * g.snap.BallSpeed
	if g.rng.Intn(2) == 0 {
		dy = -dy
	}
	g.balls = append(g.balls, g.adopt(NewBallAt(source.X, source.Y, dx, dy, g.snap)))
}

// syncRespawnFlags keeps the first ball respawning; extra balls respawn
// only while multiball is on, otherwise their next score removes them
func (g *Game) syncRespawnFlags() {
	for i, b := range g.balls {
		b.respawnOnScore = i == 0 || g.snap.Multiball
	}
}

// Restart clears the session: chaos re-gates, the ball collection empties
// (the next tick serves a fresh ball), and any in-flight spawn sequence is
// cancelled.
func (g *Game) Restart() {
	g.chaos.Reset()
	g.balls = nil
	g.shake = 0
	g.spawnPending = 0
	g.prevMultiball = false
	g.lastHitSpawn = time.Time{}
	g.leftIntent = input.IntentNone
	g.rightIntent = input.IntentNone
}

// Accessors for presentation; the renderer pulls after each tick.

// Snapshot returns the current tick's parameter snapshot
func (g *Game) Snapshot() parameter.Snapshot { return g.snap }

// Field returns the current playfield rectangle
func (g *Game) Field() core.Rect { return g.field }

// Balls returns the live ball collection; callers must not mutate
func (g *Game) Balls() []*Ball { return g.balls }

// Paddles returns the left and right paddles; callers must not mutate
func (g *Game) Paddles() (left, right *Paddle) { return g.left, g.right }

// Shake returns the accumulated impact magnitude for screen-shake rendering
func (g *Game) Shake() float64 { return g.shake }
