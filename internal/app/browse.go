package app

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/zoteroxy/internal/tui"
	"github.com/blackwell-systems/zoteroxy/internal/util"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var flags itemFlags

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Pick an item interactively and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !util.IsTTY() {
				return fmt.Errorf("browse needs a terminal; use 'zoteroxy items' when piping")
			}
			items, err := loadItems(cmd, args)
			if err != nil {
				return err
			}
			items = flags.filter().Apply(items)

			title := cfg.Library.Name
			if title == "" {
				title = "Library " + cfg.Library.ID
			}
			picked, err := tui.RunItemPicker(items, title)
			if errors.Is(err, tui.ErrCanceled) {
				return nil
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), picked)
		},
	}

	flags.register(cmd)
	return cmd
}
