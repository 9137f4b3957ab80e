package layout

import (
	"hand-showreel/internal/mathutil"
	"hand-showreel/internal/showreel"
)

// Facing returns the orientation that turns an item at worldPos so its
// forward (+Z) axis points at the origin, with world +Y as up. It holds no
// state and is meant to be recomputed every frame from the item's current
// world position.
func Facing(worldPos mathutil.Vec3) mathutil.Mat3 {
	return mathutil.LookAt(worldPos, mathutil.Vec3{}, mathutil.Up)
}

// Pose is an item's world placement for one frame.
type Pose struct {
	Center      mathutil.Vec3 `json:"center"`
	Orientation mathutil.Quat `json:"orientation"`
	Basis       mathutil.Mat3 `json:"-"`
}

// Poses applies the group's linear transform to each placed item and turns
// every item to face the origin from where it ends up.
func Poses(placed []showreel.PlacedItem, group mathutil.Mat3) []Pose {
	poses := make([]Pose, len(placed))
	for i, p := range placed {
		c := group.MulVec3(p.Position)
		f := Facing(c)
		poses[i] = Pose{Center: c, Orientation: mathutil.Mat3ToQuat(f), Basis: f}
	}
	return poses
}
