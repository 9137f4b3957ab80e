package raster

import (
	"image"
	"image/color"

	"hand-showreel/internal/gesture"
	"hand-showreel/internal/layout"
	"hand-showreel/internal/mathutil"
	"hand-showreel/internal/showreel"
	"hand-showreel/internal/texture"
)

// Scene is everything fixed across frames: the placed cards and how they are viewed.
type Scene struct {
	Items       []showreel.PlacedItem
	Camera      Camera
	Fog         Fog
	Background  color.NRGBA
	CardSize    [2]float64  // width, height in world units before group scale
	Placeholder color.NRGBA // card color when an image is unavailable
}

// DefaultScene is a white studio: white background and matching fog from
// 25 to 40 units, with 1×1.4 cards.
func DefaultScene(items []showreel.PlacedItem) Scene {
	white := color.NRGBA{255, 255, 255, 255}
	return Scene{
		Items:       items,
		Camera:      DefaultCamera(),
		Fog:         Fog{Color: white, Near: 25, Far: 40},
		Background:  white,
		CardSize:    [2]float64{1, 1.4},
		Placeholder: color.NRGBA{200, 200, 205, 255},
	}
}

// fullUV maps the whole texture onto a card, corners counter-clockwise from
// bottom-left.
var fullUV = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// CoverUV returns corner UVs that fill a cardW×cardH card with a texW×texH
// image at its own aspect ratio, cropping the overflow evenly from both
// sides (CSS object-fit: cover). Degenerate sizes map the full texture.
func CoverUV(texW, texH int, cardW, cardH float64) [4][2]float64 {
	if texW <= 0 || texH <= 0 || !(cardW > 0) || !(cardH > 0) {
		return fullUV
	}
	u0, u1, v0, v1 := 0.0, 1.0, 0.0, 1.0
	texAspect := float64(texW) / float64(texH)
	cardAspect := cardW / cardH
	switch {
	case texAspect > cardAspect:
		span := cardAspect / texAspect
		u0 = (1 - span) / 2
		u1 = u0 + span
	case texAspect < cardAspect:
		span := texAspect / cardAspect
		v0 = (1 - span) / 2
		v1 = v0 + span
	}
	return [4][2]float64{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
}

// Render draws the scene under the group transform tr at w×h pixels,
// multiplied by supersample on each axis. Callers downsample afterwards.
func Render(sc Scene, tr gesture.Transform, res texture.Resolver, w, h, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	rw, rh := w*supersample, h*supersample
	fb := NewFrameBuffer(rw, rh, sc.Background)
	proj := NewProjector(sc.Camera, rw, rh)

	hw, hh := sc.CardSize[0]/2, sc.CardSize[1]/2
	corners := [4]mathutil.Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
	scale := mathutil.Mat3Scale(tr.Scale)

	for i, pose := range layout.Poses(sc.Items, tr.Matrix()) {
		model := mathutil.FromMat3Translation(mathutil.Mat3Mul(pose.Basis, scale), pose.Center)

		var pv [4]Vertex
		for k, c := range corners {
			pv[k] = proj.Project(model.MulPoint(c))
		}

		var tex *image.NRGBA
		if res != nil {
			tex = res.Resolve(sc.Items[i].URL)
		}
		uv := fullUV
		if tex != nil {
			uv = CoverUV(tex.Rect.Dx(), tex.Rect.Dy(), sc.CardSize[0], sc.CardSize[1])
		}

		RasterizeTriangle(fb, [3]Vertex{pv[0], pv[1], pv[2]}, [3][2]float64{uv[0], uv[1], uv[2]}, tex, sc.Placeholder, sc.Fog)
		RasterizeTriangle(fb, [3]Vertex{pv[0], pv[2], pv[3]}, [3][2]float64{uv[0], uv[2], uv[3]}, tex, sc.Placeholder, sc.Fog)
	}

	return fb.Image()
}
