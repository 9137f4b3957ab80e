package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // 1/depth per pixel (larger is nearer), 0 = empty
}

// NewFrameBuffer allocates a buffer cleared to bg with an empty z-buffer.
func NewFrameBuffer(w, h int, bg color.NRGBA) *FrameBuffer {
	n := w * h
	pix := make([]uint8, n*4)
	for i := 0; i < n; i++ {
		pix[i*4] = bg.R
		pix[i*4+1] = bg.G
		pix[i*4+2] = bg.B
		pix[i*4+3] = bg.A
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  pix,
		ZBuf:   make([]float64, n),
	}
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
