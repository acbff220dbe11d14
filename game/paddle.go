package game

import (
	"github.com/lixenwraith/chaos-pong/constants"
	"github.com/lixenwraith/chaos-pong/core"
	"github.com/lixenwraith/chaos-pong/input"
	"github.com/lixenwraith/chaos-pong/parameter"
)

// Side identifies one of the two paddles
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Paddle holds position and size for one side. Width and height are slaved
// to the chaos snapshot every tick; the orchestrator owns placement and
// movement.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Side          Side
}

// NewPaddle creates a paddle for the given side with default dimensions,
// vertically centered in the field
func NewPaddle(side Side, field core.Rect) *Paddle {
	p := &Paddle{
		Width:  constants.PaddleWidthDefault,
		Height: constants.PaddleSizeDefault,
		Side:   side,
	}
	p.Y = field.CenterY() - p.Height/2
	return p
}

// SyncDimensions slaves width and height to the current snapshot. A size
// change can leave the paddle outside the field; the next clamp resolves it.
func (p *Paddle) SyncDimensions(snap parameter.Snapshot) {
	p.Width = snap.PaddleWidth
	p.Height = snap.PaddleSize
}

// MoveByIntent adjusts y by the paddle speed in the intent direction, then
// clamps into the field. IntentNone is a no-op apart from the clamp.
func (p *Paddle) MoveByIntent(intent input.Intent, speed float64, field core.Rect) {
	switch intent {
	case input.IntentUp:
		p.Y -= speed
	case input.IntentDown:
		p.Y += speed
	}
	p.ClampToField(field)
}

// MoveByAI steps the full AI speed toward targetY using only the sign of
// the offset. The paddle overshoots and oscillates when the target is within
// one step of its center; this jitter is the intended "AI" feel, not a
// controller to smooth out.
func (p *Paddle) MoveByAI(targetY float64, field core.Rect, speed float64) {
	step := speed * constants.AIFollowFactor
	center := p.CenterY()
	if targetY > center {
		p.Y += step
	} else if targetY < center {
		p.Y -= step
	}
	p.ClampToField(field)
}

// ClampToField limits the paddle's vertical span to the field
func (p *Paddle) ClampToField(field core.Rect) {
	p.Y = core.Clamp(p.Y, field.Y, field.Bottom()-p.Height)
}

// CenterY returns the paddle's vertical center
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Rect returns the paddle's bounding rectangle
func (p *Paddle) Rect() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
