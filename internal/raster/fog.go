package raster

import "image/color"

// Fog blends distant fragments toward a color between Near and Far depth.
type Fog struct {
	Color color.NRGBA
	Near  float64
	Far   float64
}

// Factor returns the fog amount for a view depth: smoothstep(Near, Far, depth).
func (f Fog) Factor(depth float64) float64 {
	if f.Far <= f.Near {
		return 0
	}
	t := (depth - f.Near) / (f.Far - f.Near)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
