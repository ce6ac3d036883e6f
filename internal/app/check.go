package app

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		Long: `Resolves the configuration against the built-in defaults and reports every
missing required setting at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			ok(w, "configuration is valid")

			header(w, "Library")
			printField(w, "type", string(cfg.Library.Type))
			printField(w, "id", cfg.Library.ID)
			printField(w, "name", cfg.Library.Name)
			if cfg.Library.Owner != "" {
				printField(w, "owner", cfg.Library.Owner)
			}

			header(w, "Settings")
			printField(w, "base_url", cfg.Settings.BaseURL)
			if len(cfg.Settings.Tags) > 0 {
				printField(w, "tags", strings.Join(cfg.Settings.Tags.Sorted(), ", "))
			}
			printField(w, "cache", strconv.Itoa(cfg.Settings.CacheDuration)+"s")
			printField(w, "file cache", strconv.Itoa(cfg.Settings.CacheFileDuration)+"s in "+cfg.Settings.CacheDirectory)
			return nil
		},
	}
}
