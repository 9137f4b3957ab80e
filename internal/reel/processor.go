package reel

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"hand-showreel/internal/postprocess"
	"hand-showreel/internal/raster"
	"hand-showreel/internal/texture"
)

// Config holds all shared resources for a render run.
type Config struct {
	OutputDir   string
	Scene       raster.Scene
	Resolver    texture.Resolver
	Width       int
	Height      int
	Supersample int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// FramePath is the manifest-relative image path for frame i.
func FramePath(i int) string {
	return filepath.Join("frames", fmt.Sprintf("%05d.webp", i))
}

// Run renders all frames using a worker pool. Transforms are already fixed
// in frames, so rendering order does not matter.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					slog.Info("rendering", "done", p, "total", total, "fps", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, f Frame) Result {
	rel := FramePath(f.Index)
	fail := func(err error) Result {
		return Result{Index: f.Index, Image: rel, Error: err.Error()}
	}

	img := raster.Render(cfg.Scene, f.Transform, cfg.Resolver, cfg.Width, cfg.Height, cfg.Supersample)

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	// Save as WebP
	outPath := filepath.Join(cfg.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail(err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fail(err)
	}

	if err := nativewebp.Encode(out, img, nil); err != nil {
		out.Close()
		return fail(fmt.Errorf("webp encode: %w", err))
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}

	return Result{Index: f.Index, Image: rel, Success: true}
}
