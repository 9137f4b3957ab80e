package raster

import (
	"math"

	"hand-showreel/internal/mathutil"
)

// Camera is a perspective camera on the +Z axis looking at the origin.
type Camera struct {
	Distance float64 // position is (0, 0, Distance)
	FOV      float64 // vertical field of view, degrees
	Near     float64
	Far      float64
}

// DefaultCamera frames a radius-7 sphere at rest zoom with room to spare.
func DefaultCamera() Camera {
	return Camera{Distance: 22, FOV: 38, Near: 0.1, Far: 1000}
}

// Projector maps world points to screen pixels for one viewport.
type Projector struct {
	cam    Camera
	focal  float64 // 1/tan(fov/2)
	aspect float64
	halfW  float64
	halfH  float64
}

// NewProjector prepares a projector for a w×h viewport.
func NewProjector(cam Camera, w, h int) Projector {
	return Projector{
		cam:    cam,
		focal:  1 / math.Tan(mathutil.Deg2Rad(cam.FOV)/2),
		aspect: float64(w) / float64(h),
		halfW:  float64(w) / 2,
		halfH:  float64(h) / 2,
	}
}

// Vertex is a projected point: screen position, 1/depth and view depth.
type Vertex struct {
	X, Y    float64
	InvW    float64
	Depth   float64
	Visible bool // within [Near, Far]
}

// Project transforms a world point to screen space.
func (p Projector) Project(v mathutil.Vec3) Vertex {
	depth := p.cam.Distance - v[2]
	if depth < p.cam.Near || depth > p.cam.Far {
		return Vertex{Depth: depth}
	}
	ndcX := p.focal * v[0] / (depth * p.aspect)
	ndcY := p.focal * v[1] / depth
	return Vertex{
		X:       (ndcX + 1) * p.halfW,
		Y:       (1 - ndcY) * p.halfH,
		InvW:    1 / depth,
		Depth:   depth,
		Visible: true,
	}
}
