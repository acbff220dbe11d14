package core

// Rect is an axis-aligned rectangle in world units
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// FieldRect maps canvas dimensions and field-size ratios to the active
// playfield rectangle, centered in the canvas. Pure; ratios outside (0,1]
// produce an off-canvas or inverted rectangle without error.
func FieldRect(canvasWidth, canvasHeight, widthRatio, heightRatio float64) Rect {
	w := canvasWidth * widthRatio
	h := canvasHeight * heightRatio
	return Rect{
		X:      (canvasWidth - w) / 2,
		Y:      (canvasHeight - h) / 2,
		Width:  w,
		Height: h,
	}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the vertical center
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Clamp limits v into [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
