// Package showreel holds the gallery item model: the items shown on the
// sphere, where they come from, and their placed form.
package showreel

import "hand-showreel/internal/mathutil"

// Item is one gallery entry. Identity is ID; the rest is opaque to layout.
type Item struct {
	ID       string `json:"id" yaml:"id"`
	URL      string `json:"url" yaml:"url"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
}

// PlacedItem is an Item with its world-space position on the sphere.
// Recomputed whenever the item list changes; never persisted.
type PlacedItem struct {
	Item
	Position mathutil.Vec3 `json:"position"`
}
