package reel

import (
	"encoding/json"
	"os"

	"hand-showreel/internal/gesture"
	"hand-showreel/internal/mathutil"
	"hand-showreel/internal/showreel"
)

// Manifest describes a rendered reel: where every item sits and what the
// camera did on each frame.
type Manifest struct {
	FPS    float64               `json:"fps"`
	Items  []showreel.PlacedItem `json:"items"`
	Frames []ManifestFrame       `json:"frames"`
}

// ManifestFrame is one rendered frame.
type ManifestFrame struct {
	Index     int               `json:"index"`
	Time      float64           `json:"time"`
	Tracked   bool              `json:"tracked"`
	Transform gesture.Transform `json:"transform"`
	Rotation  mathutil.Quat     `json:"rotation"`
	Image     string            `json:"image,omitempty"`
}

// BuildManifest pairs frames with their render results. Frames that failed
// to render are listed without an image.
func BuildManifest(fps float64, items []showreel.PlacedItem, frames []Frame, results []Result) Manifest {
	byIndex := make(map[int]Result, len(results))
	for _, r := range results {
		byIndex[r.Index] = r
	}

	m := Manifest{FPS: fps, Items: items, Frames: make([]ManifestFrame, len(frames))}
	for i, f := range frames {
		mf := ManifestFrame{
			Index:     f.Index,
			Time:      f.Time,
			Tracked:   f.Hand.Usable(),
			Transform: f.Transform,
			Rotation:  f.Transform.Rotation(),
		}
		if r, ok := byIndex[f.Index]; ok && r.Success {
			mf.Image = r.Image
		}
		m.Frames[i] = mf
	}
	return m
}

// WriteManifest writes manifest.json to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
