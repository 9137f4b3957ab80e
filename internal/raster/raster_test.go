package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hand-showreel/internal/gesture"
	"hand-showreel/internal/layout"
	"hand-showreel/internal/mathutil"
	"hand-showreel/internal/showreel"
)

var white = color.NRGBA{255, 255, 255, 255}

type fixedResolver map[string]*image.NRGBA

func (r fixedResolver) Resolve(url string) *image.NRGBA { return r[url] }

func oneCard(url string) []showreel.PlacedItem {
	// A single item sits on the -Z pole, square to the camera.
	return layout.Place([]showreel.Item{{ID: "solo", URL: url}}, layout.DefaultRadius)
}

func isBackground(img *image.NRGBA) bool {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 || img.Pix[i+1] != 255 || img.Pix[i+2] != 255 {
			return false
		}
	}
	return true
}

func TestFogFactor(t *testing.T) {
	f := Fog{Near: 25, Far: 40}
	assert.Equal(t, 0.0, f.Factor(10))
	assert.Equal(t, 0.0, f.Factor(25))
	assert.InDelta(t, 0.5, f.Factor(32.5), 1e-12)
	assert.Equal(t, 1.0, f.Factor(40))
	assert.Equal(t, 1.0, f.Factor(400))
	assert.Equal(t, 0.0, Fog{}.Factor(100))
}

func TestProjectCentreAndClip(t *testing.T) {
	p := NewProjector(DefaultCamera(), 200, 100)

	v := p.Project(mathutil.Vec3{})
	require.True(t, v.Visible)
	assert.InDelta(t, 100, v.X, 1e-9)
	assert.InDelta(t, 50, v.Y, 1e-9)
	assert.InDelta(t, 22, v.Depth, 1e-12)

	up := p.Project(mathutil.Vec3{0, 1, 0})
	assert.Less(t, up.Y, 50.0)

	behind := p.Project(mathutil.Vec3{0, 0, 30})
	assert.False(t, behind.Visible)
}

func TestRenderEmptyScene(t *testing.T) {
	img := Render(DefaultScene(nil), gesture.RestTransform(), nil, 32, 24, 1)
	assert.Equal(t, image.Rect(0, 0, 32, 24), img.Bounds())
	assert.True(t, isBackground(img))
}

func TestRenderSupersampleSize(t *testing.T) {
	img := Render(DefaultScene(nil), gesture.RestTransform(), nil, 40, 30, 2)
	assert.Equal(t, image.Rect(0, 0, 80, 60), img.Bounds())
}

func TestRenderPlaceholderCard(t *testing.T) {
	sc := DefaultScene(oneCard("missing"))
	sc.Fog = Fog{}
	img := Render(sc, gesture.Transform{Scale: 1}, nil, 200, 200, 1)

	assert.Equal(t, sc.Placeholder, img.NRGBAAt(100, 100))
	assert.Equal(t, white, img.NRGBAAt(10, 10))
	assert.Equal(t, white, img.NRGBAAt(100, 120))
}

// stripes builds a w×h texture whose columns are colored by cols, split
// evenly across the width.
func stripes(w, h int, cols ...color.NRGBA) *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tex.SetNRGBA(x, y, cols[x*len(cols)/w])
		}
	}
	return tex
}

func TestRenderTexturedCardOrientation(t *testing.T) {
	// Same aspect as the card, so nothing is cropped.
	tex := stripes(10, 14, color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 0, 255, 255})
	sc := DefaultScene(oneCard("img"))
	sc.Fog = Fog{}
	img := Render(sc, gesture.Transform{Scale: 1}, fixedResolver{"img": tex}, 200, 200, 1)

	left := img.NRGBAAt(96, 100)
	right := img.NRGBAAt(103, 100)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, left)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, right)
}

func TestCoverUV(t *testing.T) {
	// 2:1 landscape on a 1×1.4 card: full height, centred horizontal slice.
	uv := CoverUV(200, 100, 1, 1.4)
	span := (1 / 1.4) / 2
	assert.InDelta(t, (1-span)/2, uv[0][0], 1e-12)
	assert.InDelta(t, (1+span)/2, uv[1][0], 1e-12)
	assert.Equal(t, 0.0, uv[0][1])
	assert.Equal(t, 1.0, uv[2][1])

	// 1:4 portrait is taller than the card: full width, centred vertical slice.
	uv = CoverUV(50, 200, 1, 1.4)
	vspan := 0.25 / (1 / 1.4)
	assert.Equal(t, 0.0, uv[0][0])
	assert.Equal(t, 1.0, uv[1][0])
	assert.InDelta(t, (1-vspan)/2, uv[0][1], 1e-12)
	assert.InDelta(t, (1+vspan)/2, uv[2][1], 1e-12)

	assert.Equal(t, fullUV, CoverUV(10, 14, 1, 1.4))
	assert.Equal(t, fullUV, CoverUV(0, 10, 1, 1.4))
}

func TestRenderLandscapeImageIsCroppedNotSquashed(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	green := color.NRGBA{0, 255, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	// Quarter red, half green, quarter blue. A cover fit of 2:1 onto the card
	// keeps only the middle ~36%, which is all green.
	tex := stripes(200, 100, red, green, green, blue)

	sc := DefaultScene(oneCard("wide"))
	sc.Fog = Fog{}
	img := Render(sc, gesture.Transform{Scale: 1}, fixedResolver{"wide": tex}, 600, 600, 1)

	covered := 0
	for x := 0; x < 600; x++ {
		c := img.NRGBAAt(x, 300)
		if c == white {
			continue
		}
		covered++
		assert.Equal(t, green, c, "x=%d", x)
	}
	assert.Greater(t, covered, 20)
}

func TestRenderFogLightensDistantCard(t *testing.T) {
	sc := DefaultScene(oneCard("x"))
	img := Render(sc, gesture.Transform{Scale: 1}, nil, 200, 200, 1)

	c := img.NRGBAAt(100, 100)
	assert.Greater(t, c.R, sc.Placeholder.R)
	assert.Less(t, c.R, uint8(255))
}

func TestRenderCullsBehindCamera(t *testing.T) {
	sc := DefaultScene(oneCard("x"))
	// Spin the pole item round to +Z and push it past the camera.
	img := Render(sc, gesture.Transform{Scale: 10, RotationY: math.Pi}, nil, 64, 64, 1)
	assert.True(t, isBackground(img))
}

func TestRenderGalleryDeterministic(t *testing.T) {
	sc := DefaultScene(layout.Place(showreel.Presets(), layout.DefaultRadius))
	tr := gesture.Transform{Scale: 1.2, RotationX: 0.3, RotationY: -0.8}

	a := Render(sc, tr, nil, 96, 72, 1)
	b := Render(sc, tr, nil, 96, 72, 1)
	assert.Equal(t, a.Pix, b.Pix)
	assert.False(t, isBackground(a))
}

func TestSampleTextureClamps(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	tex.SetNRGBA(0, 1, color.NRGBA{10, 0, 0, 255}) // bottom-left
	tex.SetNRGBA(1, 0, color.NRGBA{0, 20, 0, 255}) // top-right

	r, _, _, _ := SampleTexture(tex, -3, -3)
	assert.Equal(t, uint8(10), r)
	_, g, _, _ := SampleTexture(tex, 5, 5)
	assert.Equal(t, uint8(20), g)
}

func TestRasterizeSkipsTransparent(t *testing.T) {
	fb := NewFrameBuffer(8, 8, white)
	v := [3]Vertex{
		{X: 0, Y: 0, InvW: 1, Depth: 1, Visible: true},
		{X: 8, Y: 0, InvW: 1, Depth: 1, Visible: true},
		{X: 0, Y: 8, InvW: 1, Depth: 1, Visible: true},
	}
	RasterizeTriangle(fb, v, [3][2]float64{}, nil, color.NRGBA{0, 0, 0, 0}, Fog{})
	assert.True(t, isBackground(fb.Image()))

	RasterizeTriangle(fb, v, [3][2]float64{}, nil, color.NRGBA{0, 0, 0, 255}, Fog{})
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, fb.Image().NRGBAAt(1, 1))
}

func TestRasterizeDepthTest(t *testing.T) {
	fb := NewFrameBuffer(8, 8, white)
	tri := func(invW float64) [3]Vertex {
		return [3]Vertex{
			{X: 0, Y: 0, InvW: invW, Visible: true},
			{X: 8, Y: 0, InvW: invW, Visible: true},
			{X: 0, Y: 8, InvW: invW, Visible: true},
		}
	}
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}

	RasterizeTriangle(fb, tri(0.5), [3][2]float64{}, nil, red, Fog{})
	RasterizeTriangle(fb, tri(0.1), [3][2]float64{}, nil, blue, Fog{}) // farther
	assert.Equal(t, red, fb.Image().NRGBAAt(1, 1))
}
