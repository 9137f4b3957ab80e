package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// NewItemsCommand creates the items command.
func NewItemsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Print the resolved gallery",
		Long: `Resolve the gallery the same way layout and render do (image directory,
then catalog, then built-in presets, padded to the minimum count for
uploads) and print the item list as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(rootOpts.Config)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}
	return cmd
}
