package texture

import (
	"os"
	"strings"

	"hand-showreel/internal/showreel"
)

// Index maps item URLs to readable local image files. Remote URLs are never
// fetched; they simply have no entry.
type Index struct {
	entries map[string]string // url → path
}

// BuildIndex checks every item's URL against the filesystem.
func BuildIndex(items []showreel.Item) *Index {
	idx := &Index{entries: make(map[string]string)}
	for _, it := range items {
		if _, done := idx.entries[it.URL]; done {
			continue
		}
		path := strings.TrimPrefix(it.URL, "file://")
		if path == "" || !showreel.IsImage(path) {
			continue
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		idx.entries[it.URL] = path
	}
	return idx
}

// ResolvePath returns the file for a URL, or ("", false).
func (idx *Index) ResolvePath(url string) (string, bool) {
	path, ok := idx.entries[url]
	return path, ok
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	return len(idx.entries)
}
