package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/zoteroxy/internal/zotero"
	"github.com/spf13/cobra"
)

// readInput returns the file named by args[0], or stdin for no argument or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return data, nil
}

func loadItems(cmd *cobra.Command, args []string) ([]zotero.LibraryItem, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	return zotero.NewDecoder(logger).Items(data)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// itemFlags are the filter flags shared by items and browse.
type itemFlags struct {
	tags   []string
	search string
	all    bool
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "Only items carrying one of these tags (overrides settings.tags)")
	cmd.Flags().StringVar(&f.search, "search", "", "Match key, title, author or tag")
	cmd.Flags().BoolVar(&f.all, "all", false, "Ignore the tags configured in settings.tags")
}

// filter combines the flags with the configured tag set.
func (f *itemFlags) filter() zotero.Filter {
	tags := f.tags
	if len(tags) == 0 && !f.all && cfg != nil {
		tags = cfg.Settings.Tags.Sorted()
	}
	return zotero.Filter{Tags: tags, Search: f.search}
}
