package constants

import "time"

// Chaos Scheduling
const (
	// ChaosStartDelay gates all parameter mutation after engine start
	ChaosStartDelay = 10 * time.Second

	// ScalarRerollBase is the minimum interval between scalar retargets
	ScalarRerollBase = 5 * time.Second

	// ScalarRerollJitter is the random extra added to each retarget interval
	ScalarRerollJitter = 5 * time.Second

	// TransitionBase is the minimum scalar transition window
	TransitionBase = 2 * time.Second

	// TransitionJitter is the random extra added to each transition window
	TransitionJitter = 1 * time.Second

	// TransitionMaxStep caps per-tick convergence to 10% of the remaining gap
	TransitionMaxStep = 0.1

	// ColorRerollBase is the minimum interval between color retargets
	ColorRerollBase = 2 * time.Second

	// ColorRerollJitter is the random extra added to each color interval
	ColorRerollJitter = 6 * time.Second

	// ColorBlendStep is the per-tick per-channel fraction moved toward target
	ColorBlendStep = 0.02

	// InvertRerollBase is the minimum interval between inversion re-rolls
	InvertRerollBase = 10 * time.Second

	// InvertRerollJitter is the random extra added to each inversion interval
	InvertRerollJitter = 10 * time.Second

	// InvertChance is the probability that a re-roll enables inversion
	InvertChance = 0.15
)

// Scalar Parameter Ranges
// Defaults sit inside [min, max]; targets are drawn uniformly from the range
const (
	BallSpeedDefault = 3.5
	BallSpeedMin     = 2.0
	BallSpeedMax     = 8.0

	BallSizeDefault = 8.0
	BallSizeMin     = 4.0
	BallSizeMax     = 15.0

	PaddleSizeDefault = 100.0
	PaddleSizeMin     = 40.0
	PaddleSizeMax     = 160.0

	PaddleWidthDefault = 15.0
	PaddleWidthMin     = 8.0
	PaddleWidthMax     = 25.0

	PaddleSpeedDefault = 6.0
	PaddleSpeedMin     = 3.0
	PaddleSpeedMax     = 10.0

	BallGravityDefault = 0.0
	BallGravityMin     = -0.05
	BallGravityMax     = 0.05

	FieldRatioDefault = 0.9
	FieldRatioMin     = 0.5
	FieldRatioMax     = 1.0
)

// Default Colors (hex)
const (
	BallColorDefault        = "#ffffff"
	PaddleColorDefault      = "#ffffff"
	BackgroundColorDefault  = "#000000"
	FieldBorderColorDefault = "#444444"
)
