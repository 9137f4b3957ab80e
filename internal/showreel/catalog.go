package showreel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PresetCount is the size of the built-in gallery.
const PresetCount = 64

var presetCategories = []string{"Motion", "Brand", "Editorial", "3D", "Product", "Campaign"}

// Presets returns the built-in gallery shown before anything is uploaded.
func Presets() []Item {
	items := make([]Item, PresetCount)
	for i := range items {
		items[i] = Item{
			ID:       fmt.Sprintf("preset-%02d", i),
			URL:      fmt.Sprintf("https://picsum.photos/seed/showreel-%d/400/560", i),
			Title:    fmt.Sprintf("Project %02d", i+1),
			Category: presetCategories[i%len(presetCategories)],
		}
	}
	return items
}

// catalogFile is the on-disk catalog schema. JSON is valid YAML, so one
// decoder reads both.
type catalogFile struct {
	Items []Item `yaml:"items"`
}

// LoadCatalog reads an item list from a YAML or JSON file. Relative URLs that
// do not look like remote resources are resolved against the catalog's directory.
func LoadCatalog(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("showreel: read catalog %s: %w", path, err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("showreel: parse catalog %s: %w", path, err)
	}

	base := filepath.Dir(path)
	seen := make(map[string]bool, len(cf.Items))
	items := make([]Item, 0, len(cf.Items))
	for i, it := range cf.Items {
		if it.ID == "" {
			it.ID = fmt.Sprintf("item-%d", i)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("showreel: catalog %s: duplicate id %q", path, it.ID)
		}
		seen[it.ID] = true
		if it.URL != "" && !isRemote(it.URL) && !filepath.IsAbs(it.URL) {
			it.URL = filepath.Join(base, it.URL)
		}
		items = append(items, it)
	}
	return items, nil
}

func isRemote(url string) bool {
	for _, p := range []string{"http://", "https://", "blob:", "data:"} {
		if strings.HasPrefix(url, p) {
			return true
		}
	}
	return false
}
