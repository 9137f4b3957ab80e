package gesture

import "hand-showreel/internal/mathutil"

// Smoothing factors, applied once per frame. The tracked factor is
// intentionally not scaled by delta, so responsiveness follows frame rate.
const (
	TrackSmoothing     = 0.12
	IdleScaleSmoothing = 0.05
	IdleTiltSmoothing  = 0.03

	// IdleSpin is the idle autorotation about Y in radians per second.
	IdleSpin = 0.05

	// RestScale is the zoom the idle branch relaxes toward.
	RestScale = 0.8

	// StartScale is the zoom of a freshly mounted gallery, before any frame.
	StartScale = 1.0

	// MaxDelta caps a single frame's elapsed time so a stalled loop (for
	// example a backgrounded window) does not jump the autorotation.
	MaxDelta = 0.1
)

// RestTransform is the neutral framing the idle branch settles into.
func RestTransform() Transform {
	return Transform{Scale: RestScale}
}

// ClampDelta limits delta to [0, MaxDelta]. Non-positive and NaN deltas
// become 0.
func ClampDelta(delta float64) float64 {
	if !(delta > 0) {
		return 0
	}
	if delta > MaxDelta {
		return MaxDelta
	}
	return delta
}

// Step advances the transform by one frame. With a usable hand every field
// moves TrackSmoothing of the way to the hand's target; otherwise the group
// spins slowly about Y while zoom and tilt relax toward rest. Neither branch
// assigns a target directly, so toggling between them never jumps.
func Step(state Transform, delta float64, hand HandSample) Transform {
	if hand.Usable() {
		target := Target(hand)
		return Transform{
			Scale:     mathutil.Lerp(state.Scale, target.Scale, TrackSmoothing),
			RotationX: mathutil.Lerp(state.RotationX, target.RotationX, TrackSmoothing),
			RotationY: mathutil.Lerp(state.RotationY, target.RotationY, TrackSmoothing),
		}
	}

	return Transform{
		Scale:     mathutil.Lerp(state.Scale, RestScale, IdleScaleSmoothing),
		RotationX: mathutil.Lerp(state.RotationX, 0, IdleTiltSmoothing),
		RotationY: state.RotationY + ClampDelta(delta)*IdleSpin,
	}
}

// Controller owns the camera transform across frames. It is driven by a
// single render loop and is not safe for concurrent use.
type Controller struct {
	state Transform
}

// NewController starts at unit scale with no rotation. With no hand in view
// it settles into RestTransform from there.
func NewController() *Controller {
	return &Controller{state: Transform{Scale: StartScale}}
}

// Update runs one frame and returns the new transform.
func (c *Controller) Update(delta float64, hand HandSample) Transform {
	c.state = Step(c.state, delta, hand)
	return c.state
}

// Transform returns the current transform.
func (c *Controller) Transform() Transform {
	return c.state
}
