package core

// Kinetic holds position and velocity in world units per tick.
// Physics constants are expressed per-tick, not per-second, so simulation
// speed follows the frame rate.
type Kinetic struct {
	X, Y   float64
	DX, DY float64
}
