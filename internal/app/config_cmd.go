package app

import (
	"github.com/blackwell-systems/zoteroxy/internal/config"
	"github.com/blackwell-systems/zoteroxy/internal/view"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var (
		asJSON     bool
		showSecret bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Prints the configuration after defaults are applied, as a YAML document that
is itself a valid config file. With --json, prints the public settings view
instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view.NewSettings(cfg.Settings))
			}
			resolved := *cfg
			if !showSecret {
				resolved = cfg.Redacted()
			}
			out, err := config.Marshal(&resolved)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the public settings as JSON")
	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "Do not mask the API key")
	return cmd
}
