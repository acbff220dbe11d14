package physics

import (
	"github.com/lixenwraith/chaos-pong/core"
)

// Integrate performs physics integration: v = v + g; p = p + v
// Gravity accumulates without a terminal velocity clamp.
func Integrate(k *core.Kinetic, gravityX, gravityY float64) {
	k.DX += gravityX
	k.DY += gravityY
	k.X += k.DX
	k.Y += k.DY
}

// ReflectBoundsY handles top/bottom boundary collision for a ball of the
// given radius, returns true if reflection occurred.
// Clamps position to the boundary and forces the velocity sign outward;
// reflection is a sign flip regardless of approach angle (arcade feel).
func ReflectBoundsY(k *core.Kinetic, field core.Rect, radius float64) bool {
	if k.Y-radius < field.Y {
		k.Y = field.Y + radius
		if k.DY < 0 {
			k.DY = -k.DY
		}
		return true
	}
	if k.Y+radius > field.Bottom() {
		k.Y = field.Bottom() - radius
		if k.DY > 0 {
			k.DY = -k.DY
		}
		return true
	}
	return false
}
