package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hand-showreel/internal/showreel"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadImagePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.png")
	writePNG(t, path, solid(4, 3, color.NRGBA{255, 0, 0, 255}))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(2, 1))
}

func TestLoadImageWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blue.webp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, nativewebp.Encode(f, solid(8, 8, color.NRGBA{0, 0, 255, 255}), nil))
	require.NoError(t, f.Close())

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, img.NRGBAAt(3, 3))
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadImage(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "texture: open")

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = LoadImage(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "texture: decode")
}

func TestToNRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.Set(10, 10, color.RGBA{0, 255, 0, 255})
	got := toNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 4, 2), got.Bounds())
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, got.NRGBAAt(0, 0))
}

func TestFit(t *testing.T) {
	img := solid(400, 200, color.NRGBA{1, 2, 3, 255})
	assert.Equal(t, image.Rect(0, 0, 100, 50), Fit(img, 100).Bounds())
	assert.Equal(t, image.Rect(0, 0, 50, 100), Fit(solid(200, 400, color.NRGBA{}), 100).Bounds())
	assert.Same(t, img, Fit(img, 0))
	assert.Same(t, img, Fit(img, 400))
}

func TestIndexAndCache(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writePNG(t, good, solid(64, 64, color.NRGBA{10, 20, 30, 255}))
	broken := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0644))

	items := []showreel.Item{
		{ID: "a", URL: good},
		{ID: "b", URL: "file://" + good},
		{ID: "c", URL: broken},
		{ID: "d", URL: "https://example.com/x.png"},
		{ID: "e", URL: filepath.Join(dir, "missing.png")},
		{ID: "f", URL: filepath.Join(dir, "notes.txt")},
	}
	idx := BuildIndex(items)
	assert.Equal(t, 3, idx.Len())

	cache := NewCache(idx, 16)
	img := cache.Resolve(good)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	assert.Same(t, img, cache.Resolve(good))
	assert.Same(t, img, cache.Resolve("file://"+good))

	assert.Nil(t, cache.Resolve(broken))
	assert.Nil(t, cache.Resolve("https://example.com/x.png"))
}

func TestCacheConcurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.png")
	writePNG(t, path, solid(8, 8, color.NRGBA{9, 9, 9, 255}))
	cache := NewCache(BuildIndex([]showreel.Item{{ID: "c", URL: path}}), 0)

	var wg sync.WaitGroup
	results := make([]*image.NRGBA, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.Resolve(path)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
