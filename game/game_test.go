package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/chaos-pong/constants"
	"github.com/lixenwraith/chaos-pong/core"
	"github.com/lixenwraith/chaos-pong/parameter"
)

func newTestGame(t *testing.T) (*Game, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(ballTestStart)
	g := New(Config{
		Time: clock,
		Rng:  rand.New(rand.NewSource(31)),
	})
	return g, clock
}

func TestGame_FirstTickServesOneBall(t *testing.T) {
	g, _ := newTestGame(t)

	if len(g.Balls()) != 0 {
		t.Fatalf("balls before first tick = %d", len(g.Balls()))
	}
	g.Tick()
	if len(g.Balls()) != 1 {
		t.Fatalf("balls after first tick = %d, want 1", len(g.Balls()))
	}

	b := g.Balls()[0]
	if b.X != g.Field().CenterX() || b.Y != g.Field().CenterY() {
		t.Errorf("serve position (%v,%v), want field center", b.X, b.Y)
	}
}

func TestGame_EmptyCollectionAlwaysRefilled(t *testing.T) {
	g, clock := newTestGame(t)
	g.Tick()

	// Force the single ball out without respawn
	g.balls[0].respawnOnScore = false
	g.balls[0].X = g.Field().X - 100
	g.balls[0].DX = -3

	clock.Advance(16 * time.Millisecond)
	g.Tick()
	if len(g.Balls()) != 1 {
		t.Fatalf("balls = %d, want structural refill to 1", len(g.Balls()))
	}
}

func TestGame_PaddlePlacement(t *testing.T) {
	g, _ := newTestGame(t)

	// Full-width field of 800 with default 15-unit paddles puts the right
	// paddle at x=770
	g.field = core.Rect{X: 0, Y: 24, Width: 800, Height: 432}
	g.left.Width = 15
	g.right.Width = 15
	g.placePaddles()

	if g.left.X != constants.PaddleMargin {
		t.Errorf("left X = %v, want %v", g.left.X, constants.PaddleMargin)
	}
	if g.right.X != 770 {
		t.Errorf("right X = %v, want 770", g.right.X)
	}
}

func TestGame_TickInvariants(t *testing.T) {
	g, clock := newTestGame(t)

	for i := 0; i < 3000; i++ {
		clock.Advance(16 * time.Millisecond)
		g.Tick()

		if n := len(g.Balls()); n < 1 || n > constants.MaxBalls {
			t.Fatalf("tick %d: population %d outside [1,%d]", i, n, constants.MaxBalls)
		}

		field := g.Field()
		left, right := g.Paddles()
		for _, p := range []*Paddle{left, right} {
			if p.Y < field.Y-1e-9 || p.Y+p.Height > field.Bottom()+1e-9 {
				t.Fatalf("tick %d: paddle %v outside field", i, p.Side)
			}
		}
		for _, b := range g.Balls() {
			if b.InCooldown(clock.Now()) || b.Removed() {
				continue
			}
			// A paddle-face flush can briefly park a ball one diameter past
			// the wall band, so the bound allows that much slack
			if b.Y < field.Y-b.Size-1e-9 || b.Y > field.Bottom()+b.Size+1e-9 {
				t.Fatalf("tick %d: ball y=%v escaped the field", i, b.Y)
			}
		}
	}
}

func TestGame_SpawnSequenceRampsToCap(t *testing.T) {
	g, clock := newTestGame(t)
	g.Tick()

	// Simulate the multiball flag turning on
	g.snap.Multiball = true
	g.prevMultiball = false
	g.now = clock.Now()

	for i := 0; i < 30; i++ {
		g.advanceSpawnSequence()
		g.prevMultiball = true
		if len(g.balls) > constants.MaxBalls {
			t.Fatalf("step %d: population %d exceeds cap", i, len(g.balls))
		}
		clock.Advance(constants.MultiballSequenceInterval)
		g.now = clock.Now()
	}
	if len(g.balls) != constants.MaxBalls {
		t.Errorf("population = %d, want ramp to %d", len(g.balls), constants.MaxBalls)
	}
	if g.spawnPending != 0 {
		t.Errorf("spawnPending = %d, want drained sequence", g.spawnPending)
	}
}

func TestGame_SpawnSequenceCancelledWhenFlagDrops(t *testing.T) {
	g, clock := newTestGame(t)
	g.Tick()

	g.snap.Multiball = true
	g.prevMultiball = false
	g.now = clock.Now()
	g.advanceSpawnSequence()
	if g.spawnPending == 0 {
		t.Fatal("expected an in-flight sequence")
	}

	g.snap.Multiball = false
	g.advanceSpawnSequence()
	if g.spawnPending != 0 {
		t.Errorf("spawnPending = %d after flag drop, want 0", g.spawnPending)
	}
}

func TestGame_SpawnSequenceRespectsInterval(t *testing.T) {
	g, clock := newTestGame(t)
	g.Tick()

	g.snap.Multiball = true
	g.prevMultiball = false
	g.now = clock.Now()
	g.advanceSpawnSequence() // starts sequence, first spawn fires
	count := len(g.balls)

	// Before the interval elapses nothing more spawns
	g.prevMultiball = true
	clock.Advance(constants.MultiballSequenceInterval / 2)
	g.now = clock.Now()
	g.advanceSpawnSequence()
	if len(g.balls) != count {
		t.Errorf("spawned %d balls before interval elapsed", len(g.balls)-count)
	}

	clock.Advance(constants.MultiballSequenceInterval)
	g.now = clock.Now()
	g.advanceSpawnSequence()
	if len(g.balls) != count+1 {
		t.Errorf("population = %d, want %d after interval", len(g.balls), count+1)
	}
}

func TestGame_HitSpawnRateLimited(t *testing.T) {
	g, clock := newTestGame(t)
	g.Tick()
	g.snap.Multiball = true
	g.now = clock.Now()

	source := g.balls[0]
	g.spawnFromHit(source)
	if len(g.balls) != 2 {
		t.Fatalf("balls = %d, want 2 after first hit spawn", len(g.balls))
	}

	// Second spawn inside the cooldown is ignored
	g.spawnFromHit(source)
	if len(g.balls) != 2 {
		t.Errorf("balls = %d, rate limiter failed", len(g.balls))
	}

	clock.Advance(constants.MultiballSpawnCooldown)
	g.now = clock.Now()
	g.spawnFromHit(source)
	if len(g.balls) != 3 {
		t.Errorf("balls = %d, want 3 after cooldown", len(g.balls))
	}
}

func TestGame_HitSpawnReversesAndJitters(t *testing.T) {
	g, clock := newTestGame(t)
	g.Tick()
	g.snap.Multiball = true
	g.now = clock.Now()

	source := g.balls[0]
	source.DX = 3
	g.spawnFromHit(source)

	spawned := g.balls[len(g.balls)-1]
	if spawned.X != source.X || spawned.Y != source.Y {
		t.Errorf("spawn position (%v,%v), want source position", spawned.X, spawned.Y)
	}
	if spawned.DX >= 0 {
		t.Errorf("spawned DX = %v, want reversed", spawned.DX)
	}
	lo, hi := 3*(1-constants.SpawnReverseJitter), 3*(1+constants.SpawnReverseJitter)
	if -spawned.DX < lo || -spawned.DX > hi {
		t.Errorf("|DX| = %v outside jitter range [%v,%v]", -spawned.DX, lo, hi)
	}
}

func TestGame_HitSpawnRequiresMultiballAndHeadroom(t *testing.T) {
	g, clock := newTestGame(t)
	g.Tick()
	g.now = clock.Now()

	source := g.balls[0]
	g.snap.Multiball = false
	g.spawnFromHit(source)
	if len(g.balls) != 1 {
		t.Error("spawned without multiball enabled")
	}

	g.snap.Multiball = true
	for len(g.balls) < constants.MaxBalls {
		g.balls = append(g.balls, NewBallAt(400, 240, 2, 1, g.snap))
	}
	g.lastHitSpawn = time.Time{}
	g.spawnFromHit(source)
	if len(g.balls) != constants.MaxBalls {
		t.Errorf("balls = %d, cap breached", len(g.balls))
	}
}

func TestGame_MultiballOffDropsExtraBalls(t *testing.T) {
	g, clock := newTestGame(t)
	g.Tick()

	g.snap.Multiball = true
	g.balls = append(g.balls,
		NewBallAt(400, 200, 2, 1, g.snap),
		NewBallAt(400, 280, -2, 1, g.snap),
	)
	g.syncRespawnFlags()

	// Flag drops: extras become non-respawning, the first ball keeps
	// respawning
	g.snap.Multiball = false
	g.syncRespawnFlags()
	if !g.balls[0].respawnOnScore {
		t.Error("first ball lost respawn")
	}
	if g.balls[1].respawnOnScore || g.balls[2].respawnOnScore {
		t.Error("extra balls still respawn with multiball off")
	}

	// The extra ball that scores is removed; the count drops by exactly one
	g.balls[1].X = g.Field().X - 100
	g.balls[1].DX = -3
	g.now = clock.Now()

	hooks := Hooks{}
	for _, b := range g.balls {
		b.SetSnapshot(g.snap)
		g.shake = b.Tick(g.now, g.field, g.left, g.right, g.shake, g.rng, hooks)
	}
	g.reapRemoved()

	if len(g.balls) != 2 {
		t.Fatalf("balls = %d, want 2 after scoring removal", len(g.balls))
	}
	if !g.balls[0].respawnOnScore {
		t.Error("surviving first ball lost respawn")
	}
}

func TestGame_AITargetPrefersApproachingBall(t *testing.T) {
	g, _ := newTestGame(t)
	g.Tick()
	g.balls = nil

	// For the right paddle: a far approaching ball beats a close receding one
	approaching := NewBallAt(400, 100, 3, 0, g.snap)
	receding := NewBallAt(400, g.right.CenterY(), -3, 0, g.snap)
	g.balls = []*Ball{receding, approaching}

	target, ok := g.aiTarget(g.right)
	if !ok {
		t.Fatal("expected a target")
	}
	if target != approaching.Y {
		t.Errorf("target = %v, want approaching ball at %v", target, approaching.Y)
	}
}

func TestGame_AITargetFallsBackToRecedingBall(t *testing.T) {
	g, _ := newTestGame(t)
	g.Tick()

	g.balls = []*Ball{NewBallAt(400, 150, -3, 0, g.snap)}
	target, ok := g.aiTarget(g.right)
	if !ok {
		t.Fatal("expected fallback target")
	}
	if target != 150 {
		t.Errorf("target = %v, want 150", target)
	}
}

func TestGame_AITargetNoBalls(t *testing.T) {
	g, _ := newTestGame(t)
	g.Tick()
	g.balls = nil

	if _, ok := g.aiTarget(g.right); ok {
		t.Error("expected no target with no balls")
	}
}

func TestGame_AITargetPicksNearestApproaching(t *testing.T) {
	g, _ := newTestGame(t)
	g.Tick()

	near := NewBallAt(300, g.right.CenterY()+10, 2, 0, g.snap)
	far := NewBallAt(300, g.right.CenterY()+200, 2, 0, g.snap)
	g.balls = []*Ball{far, near}

	target, ok := g.aiTarget(g.right)
	if !ok || target != near.Y {
		t.Errorf("target = %v ok = %v, want nearest approaching %v", target, ok, near.Y)
	}
}

func TestGame_RestartClearsSession(t *testing.T) {
	g, clock := newTestGame(t)

	for i := 0; i < 100; i++ {
		clock.Advance(16 * time.Millisecond)
		g.Tick()
	}
	g.spawnPending = 3
	g.shake = 5

	g.Restart()
	if len(g.Balls()) != 0 {
		t.Errorf("balls = %d after restart, want 0", len(g.Balls()))
	}
	if g.spawnPending != 0 {
		t.Error("restart left an in-flight spawn sequence")
	}
	if g.Shake() != 0 {
		t.Error("restart left residual shake")
	}

	// Next tick serves a fresh ball
	clock.Advance(16 * time.Millisecond)
	g.Tick()
	if len(g.Balls()) != 1 {
		t.Errorf("balls = %d after post-restart tick, want 1", len(g.Balls()))
	}
}

func TestGame_SnapshotIsDefaultBeforeGate(t *testing.T) {
	g, clock := newTestGame(t)
	def := parameter.DefaultSnapshot()

	for i := 0; i < 50; i++ {
		clock.Advance(16 * time.Millisecond)
		g.Tick()
		if g.Snapshot() != def {
			t.Fatalf("tick %d: snapshot mutated inside chaos start delay", i)
		}
	}
}
