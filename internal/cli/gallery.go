package cli

import (
	"fmt"
	"log/slog"

	"hand-showreel/internal/config"
	"hand-showreel/internal/handtrack"
	"hand-showreel/internal/showreel"
)

// loadItems picks the gallery: an image directory wins over a catalog, which
// wins over the built-in presets. Uploads are padded to the minimum count.
func loadItems(cfg config.Config) ([]showreel.Item, error) {
	switch {
	case cfg.ImageDir != "":
		paths, err := showreel.ScanDir(cfg.ImageDir)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no images found in %s", cfg.ImageDir)
		}
		items := showreel.Expand(showreel.FromFiles(paths), cfg.MinCount)
		slog.Debug("gallery from upload", "files", len(paths), "items", len(items))
		return items, nil

	case cfg.Catalog != "":
		items, err := showreel.LoadCatalog(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		slog.Debug("gallery from catalog", "path", cfg.Catalog, "items", len(items))
		return items, nil
	}
	return showreel.Presets(), nil
}

// loadTrace reads the configured trace, or synthesizes a demo covering the
// configured duration.
func loadTrace(cfg config.Config) (*handtrack.Trace, error) {
	if cfg.Trace != "" {
		return handtrack.Load(cfg.Trace)
	}
	return handtrack.Synthesize(cfg.Duration, 30), nil
}
