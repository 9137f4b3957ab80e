// Package gesture turns hand-tracking samples into a smoothed camera
// transform for the gallery sphere.
package gesture

import "hand-showreel/internal/mathutil"

// Point2 is a normalized screen position; each axis is nominally in [0, 1].
type Point2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// HandSample is one reading from the hand tracker. When Present is false the
// other fields are stale and must not be read.
type HandSample struct {
	Present  bool    `json:"present" yaml:"present"`
	Distance float64 `json:"distance" yaml:"distance"`
	Position Point2  `json:"position" yaml:"position"`
}

// Usable reports whether the sample carries a hand with finite readings.
// Non-finite values are treated as a lost hand rather than propagated.
func (h HandSample) Usable() bool {
	return h.Present &&
		mathutil.IsFinite(h.Distance) &&
		mathutil.IsFinite(h.Position.X) &&
		mathutil.IsFinite(h.Position.Y)
}

// Transform is the camera-facing group transform: uniform scale plus
// rotation about X then Y, in radians.
type Transform struct {
	Scale     float64 `json:"scale"`
	RotationX float64 `json:"rotation_x"`
	RotationY float64 `json:"rotation_y"`
}

// Rotation is the group orientation as a quaternion (x, y, z, w), XYZ order.
func (t Transform) Rotation() mathutil.Quat {
	return mathutil.EulerXYZToQuat(t.RotationX, t.RotationY, 0)
}

// Matrix returns the group's linear transform S · Rx · Ry.
func (t Transform) Matrix() mathutil.Mat3 {
	return mathutil.Mat3Mul(mathutil.Mat3Scale(t.Scale), mathutil.EulerXYZ(t.RotationX, t.RotationY, 0))
}
