// Package postprocess finishes rendered frames before encoding.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample resolves a supersampled frame to w×h. When the frame is an exact
// integer multiple of the target it is box-filtered, so each output pixel is
// the mean of its k×k samples. Any other ratio goes through Catmull-Rom.
// Both paths average in premultiplied alpha, so transparent samples never
// darken an opaque neighbour. Frames already at or below the target size are
// returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}
	if b.Dx()%w == 0 && b.Dy()%h == 0 && b.Dx()/w == b.Dy()/h {
		return boxResolve(img, w, h, b.Dx()/w)
	}

	// x/image/draw scales in premultiplied space and converts back on store.
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func boxResolve(img *image.NRGBA, w, h, k int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := float64(k * k)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, bl, a float64
			for sy := 0; sy < k; sy++ {
				row := img.PixOffset(b.Min.X+x*k, b.Min.Y+y*k+sy)
				for sx := 0; sx < k; sx++ {
					i := row + sx*4
					pa := float64(img.Pix[i+3])
					r += float64(img.Pix[i]) * pa
					g += float64(img.Pix[i+1]) * pa
					bl += float64(img.Pix[i+2]) * pa
					a += pa
				}
			}
			o := dst.PixOffset(x, y)
			if a > 0 {
				dst.Pix[o] = clamp8(r / a)
				dst.Pix[o+1] = clamp8(g / a)
				dst.Pix[o+2] = clamp8(bl / a)
			}
			dst.Pix[o+3] = clamp8(a / n)
		}
	}
	return dst
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
