package raster

import (
	"image"
	"image/color"
	"math"
)

// RasterizeTriangle draws one textured triangle with a z-buffer,
// perspective-correct UVs, fog and straight alpha blending. Both windings
// are drawn.
//
// Hot path: no allocation in the inner loop.
func RasterizeTriangle(
	fb *FrameBuffer,
	v [3]Vertex,
	uv [3][2]float64,
	tex *image.NRGBA,
	base color.NRGBA,
	fog Fog,
) {
	for _, p := range v {
		if !p.Visible {
			return
		}
	}

	x0, y0, w0i := v[0].X, v[0].Y, v[0].InvW
	x1, y1, w1i := v[1].X, v[1].Y, v[1].InvW
	x2, y2, w2i := v[2].X, v[2].Y, v[2].InvW

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// UVs pre-divided by depth for perspective-correct interpolation.
	u0w, v0w := uv[0][0]*w0i, uv[0][1]*w0i
	u1w, v1w := uv[1][0]*w1i, uv[1][1]*w1i
	u2w, v2w := uv[2][0]*w2i, uv[2][1]*w2i

	// Pixel loop
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			b0 := (dy12*dsx + dx21*dsy) * invDet
			b1 := (dy20*dsx + dx02*dsy) * invDet
			b2 := 1.0 - b0 - b1

			if b0 < -1e-6 || b1 < -1e-6 || b2 < -1e-6 {
				continue
			}

			invW := b0*w0i + b1*w1i + b2*w2i
			zIdx := rowOff + sx
			if invW <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := base.R, base.G, base.B, base.A
			if tex != nil {
				u := (b0*u0w + b1*u1w + b2*u2w) / invW
				vv := (b0*v0w + b1*v1w + b2*v2w) / invW
				cr, cg, cb, ca = SampleTexture(tex, u, vv)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = invW

			fr, fg, ffb := float64(cr), float64(cg), float64(cb)
			if f := fog.Factor(1 / invW); f > 0 {
				fr += (float64(fog.Color.R) - fr) * f
				fg += (float64(fog.Color.G) - fg) * f
				ffb += (float64(fog.Color.B) - ffb) * f
			}

			pxIdx := zIdx * 4
			if ca == 255 {
				fb.Color[pxIdx] = clamp255(fr)
				fb.Color[pxIdx+1] = clamp255(fg)
				fb.Color[pxIdx+2] = clamp255(ffb)
				fb.Color[pxIdx+3] = 255
				continue
			}

			a := float64(ca) / 255
			fb.Color[pxIdx] = clamp255(fr*a + float64(fb.Color[pxIdx])*(1-a))
			fb.Color[pxIdx+1] = clamp255(fg*a + float64(fb.Color[pxIdx+1])*(1-a))
			fb.Color[pxIdx+2] = clamp255(ffb*a + float64(fb.Color[pxIdx+2])*(1-a))
			fb.Color[pxIdx+3] = clamp255(float64(ca) + float64(fb.Color[pxIdx+3])*(1-a))
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
