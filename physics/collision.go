package physics

import (
	"math"

	"github.com/lixenwraith/chaos-pong/constants"
	"github.com/lixenwraith/chaos-pong/core"
)

// Face identifies which paddle face a ball struck
type Face uint8

const (
	FaceNone Face = iota
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

// ResolvePaddleCollision tests a ball of the given radius against a paddle
// rectangle and, on overlap, resolves by minimum penetration depth.
// Horizontal faces flip dx, reposition flush on the exit side, and re-derive
// dy from the strike position along the paddle height (center hits fly flat,
// edge hits fly steep), flooring |dx| at MinHorizontalBounce. Vertical faces
// flip dy and reposition flush. Every hit accelerates both components by
// PaddleBounceAccel. Returns the struck face, FaceNone if no overlap.
//
// Callers gate by direction (left paddle only when dx<0, right only when
// dx>0); a ball moving away from a paddle cannot collide with it.
func ResolvePaddleCollision(k *core.Kinetic, paddle core.Rect, radius float64) Face {
	if k.X+radius < paddle.X || k.X-radius > paddle.Right() ||
		k.Y+radius < paddle.Y || k.Y-radius > paddle.Bottom() {
		return FaceNone
	}

	overlapLeft := k.X + radius - paddle.X
	overlapRight := paddle.Right() - (k.X - radius)
	overlapTop := k.Y + radius - paddle.Y
	overlapBottom := paddle.Bottom() - (k.Y - radius)

	face := FaceLeft
	minOverlap := overlapLeft
	if overlapRight < minOverlap {
		face, minOverlap = FaceRight, overlapRight
	}
	if overlapTop < minOverlap {
		face, minOverlap = FaceTop, overlapTop
	}
	if overlapBottom < minOverlap {
		face = FaceBottom
	}

	switch face {
	case FaceLeft, FaceRight:
		k.DX = -k.DX
		if math.Abs(k.DX) < constants.MinHorizontalBounce {
			if k.DX < 0 {
				k.DX = -constants.MinHorizontalBounce
			} else {
				k.DX = constants.MinHorizontalBounce
			}
		}
		// Flush on the side the ball now travels toward
		if k.DX < 0 {
			k.X = paddle.X - radius
		} else {
			k.X = paddle.Right() + radius
		}
		hit := (k.Y - paddle.Y) / paddle.Height
		k.DY = (hit - 0.5) * 2 * math.Abs(k.DX)
	case FaceTop:
		k.DY = -math.Abs(k.DY)
		k.Y = paddle.Y - radius
	case FaceBottom:
		k.DY = math.Abs(k.DY)
		k.Y = paddle.Bottom() + radius
	}

	k.DX *= constants.PaddleBounceAccel
	k.DY *= constants.PaddleBounceAccel
	return face
}
