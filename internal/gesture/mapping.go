package gesture

import (
	"math"

	"hand-showreel/internal/mathutil"
)

// Raw pinch working range of the tracker, and the zoom range it maps onto.
const (
	PinchMin   = 0.04
	PinchRange = 0.36

	MinScale  = 0.4
	ScaleSpan = 29.6
)

// RotationGain maps a hand excursion from screen centre to radians. It is
// larger than a full turn so a comfortable hand range reaches every side.
const RotationGain = math.Pi * 3.5

// NormalizeDistance rescales a raw pinch distance into [0, 1], saturating
// outside the working range.
func NormalizeDistance(distance float64) float64 {
	return mathutil.Clamp((distance-PinchMin)/PinchRange, 0, 1)
}

// TargetScale maps a normalized pinch distance to a zoom factor, linearly
// from MinScale (d=0) to MinScale+ScaleSpan (d=1).
func TargetScale(d float64) float64 {
	return MinScale + d*ScaleSpan
}

// TargetRotation maps a hand position to group rotation. Screen Y drives
// rotation about X and screen X drives rotation about Y, both centred on 0.5.
// Positions are clamped to [0, 1] first.
func TargetRotation(p Point2) (rotX, rotY float64) {
	x := mathutil.Clamp(p.X, 0, 1)
	y := mathutil.Clamp(p.Y, 0, 1)
	return (y - 0.5) * RotationGain, (x - 0.5) * RotationGain
}

// Target is the transform the tracked branch steers toward for a sample.
func Target(h HandSample) Transform {
	rx, ry := TargetRotation(h.Position)
	return Transform{
		Scale:     TargetScale(NormalizeDistance(h.Distance)),
		RotationX: rx,
		RotationY: ry,
	}
}
