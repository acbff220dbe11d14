package parameter

import "github.com/lixenwraith/chaos-pong/constants"

// Snapshot is the merged, read-only set of chaos parameter values valid for
// exactly one simulation tick. Produced by Engine.Advance and distributed by
// value; consumers never mutate it.
type Snapshot struct {
	BallSpeed    float64
	BallSize     float64
	PaddleSize   float64
	PaddleWidth  float64
	PaddleSpeed  float64
	BallGravityX float64
	BallGravityY float64
	FieldWidth   float64
	FieldHeight  float64

	Multiball      bool
	InvertControls bool
	TrailEffect    bool
	ScreenShake    bool
	NeonEffects    bool

	BallColor        string
	PaddleColor      string
	BackgroundColor  string
	FieldBorderColor string
}

// DefaultSnapshot returns the pre-chaos parameter values
func DefaultSnapshot() Snapshot {
	return Snapshot{
		BallSpeed:    constants.BallSpeedDefault,
		BallSize:     constants.BallSizeDefault,
		PaddleSize:   constants.PaddleSizeDefault,
		PaddleWidth:  constants.PaddleWidthDefault,
		PaddleSpeed:  constants.PaddleSpeedDefault,
		BallGravityX: constants.BallGravityDefault,
		BallGravityY: constants.BallGravityDefault,
		FieldWidth:   constants.FieldRatioDefault,
		FieldHeight:  constants.FieldRatioDefault,

		BallColor:        constants.BallColorDefault,
		PaddleColor:      constants.PaddleColorDefault,
		BackgroundColor:  constants.BackgroundColorDefault,
		FieldBorderColor: constants.FieldBorderColorDefault,
	}
}
