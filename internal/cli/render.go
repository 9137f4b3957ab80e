package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"hand-showreel/internal/gesture"
	"hand-showreel/internal/layout"
	"hand-showreel/internal/raster"
	"hand-showreel/internal/reel"
	"hand-showreel/internal/texture"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the showreel to WebP frames",
		Long: `Simulate the camera over the hand trace and render every frame of the
image sphere to <output>/frames/NNNNN.webp, plus <output>/manifest.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&rootOpts.Flags.OutputDir, "output", "o", "", "output directory (default showreel-out)")
	f.IntVar(&rootOpts.Flags.Width, "width", 0, "frame width in pixels (default 640)")
	f.IntVar(&rootOpts.Flags.Height, "height", 0, "frame height in pixels (default 480)")
	f.IntVar(&rootOpts.Flags.Supersample, "supersample", 0, "supersampling factor (default 2)")
	f.IntVar(&rootOpts.Flags.Workers, "workers", 0, "worker goroutines (default NumCPU)")

	return cmd
}

func runRender(opts *RenderOptions) error {
	cfg := opts.Config

	items, err := loadItems(cfg)
	if err != nil {
		return err
	}
	tr, err := loadTrace(cfg)
	if err != nil {
		return err
	}

	placed := layout.Place(items, cfg.Radius)

	texIndex := texture.BuildIndex(items)
	texCache := texture.NewCache(texIndex, cfg.TextureSize)

	scene := raster.DefaultScene(placed)
	scene.Camera.Distance = cfg.CameraDistance
	scene.Camera.FOV = cfg.FOV
	scene.Fog.Near = cfg.FogNear
	scene.Fog.Far = cfg.FogFar

	frames := reel.Simulate(tr, gesture.NewController(), cfg.FPS, cfg.Duration)

	slog.Info("rendering showreel",
		"items", len(items),
		"images", texIndex.Len(),
		"frames", len(frames),
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"workers", cfg.Workers,
		"output", cfg.OutputDir,
	)

	start := time.Now()
	results := reel.Run(reel.Config{
		OutputDir:   cfg.OutputDir,
		Scene:       scene,
		Resolver:    texCache,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, frames)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			if failed <= 20 {
				slog.Error("frame failed", "index", r.Index, "error", r.Error)
			}
		}
	}
	slog.Info("done", "elapsed", time.Since(start).Round(time.Millisecond), "rendered", len(results)-failed, "failed", failed)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := reel.WriteManifest(manifestPath, reel.BuildManifest(cfg.FPS, placed, frames, results)); err != nil {
		slog.Warn("manifest write failed", "error", err)
	} else {
		slog.Info("manifest written", "path", manifestPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d frames failed", failed, len(results))
	}
	return nil
}
