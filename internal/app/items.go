package app

import (
	"fmt"

	"github.com/blackwell-systems/zoteroxy/internal/view"
	"github.com/blackwell-systems/zoteroxy/internal/zotero"
	"github.com/spf13/cobra"
)

func newItemsCmd() *cobra.Command {
	var (
		flags itemFlags
		key   string
	)

	cmd := &cobra.Command{
		Use:   "items [file|-]",
		Short: "Map raw item records to JSON",
		Long: `Reads Zotero item records (a JSON array or a single object) and prints the
normalized items as JSON.

Unless --all or --tag is given, only items carrying one of the tags in
settings.tags are printed.

Examples:
  zoteroxy items items.json
  curl -s "$API/groups/$ID/items" | zoteroxy items --search turing
  zoteroxy items items.json --key ABCD1234`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(cmd, args)
			if err != nil {
				return err
			}
			if key != "" {
				it := zotero.ByKey(items, key)
				if it == nil {
					return fmt.Errorf("item %q not found", key)
				}
				return writeJSON(cmd.OutOrStdout(), it)
			}
			return writeJSON(cmd.OutOrStdout(), flags.filter().Apply(items))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&key, "key", "", "Print only the item with this key")
	return cmd
}

func newAttachmentsCmd() *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "attachments [file|-]",
		Short: "Map raw attachment item records to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			atts, err := zotero.NewDecoder(logger).Attachments(data)
			if err != nil {
				return err
			}
			if parent != "" {
				kept := []zotero.AttachmentMetadata{}
				for _, a := range atts {
					if a.ParentKey != nil && *a.ParentKey == parent {
						kept = append(kept, a)
					}
				}
				atts = kept
			}
			return writeJSON(cmd.OutOrStdout(), atts)
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Only attachments of the item with this key")
	return cmd
}

func newLibraryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "library [file|-]",
		Short: "Summarise the configured library and its items as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(cmd, args)
			if err != nil {
				return err
			}
			lib := view.Library{Config: cfg.Library, Items: items}
			return writeJSON(cmd.OutOrStdout(), lib.KeyInfo())
		},
	}
}
