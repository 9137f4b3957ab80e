package showreel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MinCount is the smallest gallery that still reads as a sphere. Smaller
// uploads are repeated up to this size.
const MinCount = 50

// UploadCategory tags items created from user files.
const UploadCategory = "Upload"

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".bmp": true, ".tga": true,
}

// IsImage reports whether path has a supported image extension.
func IsImage(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// FromFiles builds one upload item per path. IDs are unique per batch so a
// re-upload of the same files never collides with the previous list.
func FromFiles(paths []string) []Item {
	batch := uuid.Must(uuid.NewV7()).String()
	items := make([]Item, len(paths))
	for i, p := range paths {
		items[i] = Item{
			ID:       fmt.Sprintf("custom-%d-%s", i, batch),
			URL:      p,
			Title:    filepath.Base(p),
			Category: UploadCategory,
		}
	}
	return items
}

// ScanDir lists image files directly inside dir, sorted by name.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("showreel: scan %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Expand repeats items cyclically until there are exactly min of them. Each
// copy gets the ID "<id>-<k>" where k is the copy's slot in the result.
// Empty lists and lists already at or above min are returned unchanged.
func Expand(items []Item, min int) []Item {
	if len(items) == 0 || len(items) >= min {
		return items
	}
	out := make([]Item, min)
	for k := range out {
		it := items[k%len(items)]
		it.ID = fmt.Sprintf("%s-%d", it.ID, k)
		out[k] = it
	}
	return out
}
