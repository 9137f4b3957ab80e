package texture

import (
	"image"
	"log/slog"
	"sync"
)

// Resolver resolves an item URL to a decoded image, or nil when unavailable.
type Resolver interface {
	Resolve(url string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached as nil so
// a broken file is only attempted once.
type Cache struct {
	mu     sync.RWMutex
	items  map[string]*image.NRGBA
	index  *Index
	maxDim int
}

// NewCache creates a cache backed by index. Loaded images are shrunk to at
// most maxDim pixels per side (0 keeps full size).
func NewCache(index *Index, maxDim int) *Cache {
	return &Cache{
		items:  make(map[string]*image.NRGBA),
		index:  index,
		maxDim: maxDim,
	}
}

// Resolve loads and caches an image by URL. Returns nil if not found.
func (c *Cache) Resolve(url string) *image.NRGBA {
	path, ok := c.index.ResolvePath(url)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if img, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadImage(path)
	if err != nil {
		slog.Debug("texture load failed", "url", url, "error", err)
	} else {
		img = Fit(img, c.maxDim)
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, exists := c.items[path]; exists {
		return existing
	}
	c.items[path] = img
	return img
}
