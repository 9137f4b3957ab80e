// Package layout places gallery items on the surface of a sphere.
//
// Placement is a closed-form spherical spiral: the polar angle walks evenly
// in cos(phi) from one pole to the other while the azimuth grows with
// sqrt(n·π)·phi. The result depends only on index and count, so the same
// list always lands in the same spots.
package layout

import (
	"math"

	"hand-showreel/internal/mathutil"
	"hand-showreel/internal/showreel"
)

// DefaultRadius keeps the whole sphere in frame at the default camera
// distance while individual cards stay legible.
const DefaultRadius = 7.0

// Sphere returns n points on a sphere of the given radius centred at the origin.
// n <= 0 yields an empty slice.
func Sphere(n int, radius float64) []mathutil.Vec3 {
	if n <= 0 {
		return []mathutil.Vec3{}
	}
	count := float64(n)
	spin := math.Sqrt(count * math.Pi)

	pts := make([]mathutil.Vec3, n)
	for i := range pts {
		phi := math.Acos(-1 + 2*float64(i)/count)
		theta := spin * phi

		sinPhi := math.Sin(phi)
		pts[i] = mathutil.Vec3{
			radius * math.Cos(theta) * sinPhi,
			radius * math.Sin(theta) * sinPhi,
			radius * math.Cos(phi),
		}
	}
	return pts
}

// Place pairs each item with its sphere position, preserving order.
func Place(items []showreel.Item, radius float64) []showreel.PlacedItem {
	pts := Sphere(len(items), radius)
	placed := make([]showreel.PlacedItem, len(items))
	for i, it := range items {
		placed[i] = showreel.PlacedItem{Item: it, Position: pts[i]}
	}
	return placed
}
