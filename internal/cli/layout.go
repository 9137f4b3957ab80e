package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hand-showreel/internal/gesture"
	"hand-showreel/internal/layout"
	"hand-showreel/internal/mathutil"
	"hand-showreel/internal/showreel"
)

// LayoutOptions holds flags for the layout command.
type LayoutOptions struct {
	*RootOptions
	Count int
}

// LayoutEntry is one placed item as printed by the layout command.
type LayoutEntry struct {
	ID          string        `json:"id"`
	Title       string        `json:"title,omitempty"`
	Position    mathutil.Vec3 `json:"position"`
	Orientation mathutil.Quat `json:"orientation"`
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LayoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print sphere positions for the gallery",
		Long: `Place the gallery on the sphere and print each item's position and
its face-the-centre orientation at rest framing, as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 0, "lay out N placeholder items instead of the gallery")

	return cmd
}

func runLayout(opts *LayoutOptions, cmd *cobra.Command) error {
	var items []showreel.Item
	if opts.Count > 0 {
		items = make([]showreel.Item, opts.Count)
		for i := range items {
			items[i] = showreel.Item{ID: fmt.Sprintf("item-%d", i)}
		}
	} else {
		var err error
		if items, err = loadItems(opts.Config); err != nil {
			return err
		}
	}

	placed := layout.Place(items, opts.Config.Radius)
	poses := layout.Poses(placed, gesture.RestTransform().Matrix())

	entries := make([]LayoutEntry, len(placed))
	for i, p := range placed {
		entries[i] = LayoutEntry{
			ID:          p.ID,
			Title:       p.Title,
			Position:    p.Position,
			Orientation: poses[i].Orientation,
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
