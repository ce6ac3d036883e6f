package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/zoteroxy/internal/config"
	"github.com/blackwell-systems/zoteroxy/internal/logging"
	"github.com/blackwell-systems/zoteroxy/internal/util"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// annotationNoConfig marks commands that run without a resolved config.
const annotationNoConfig = "zoteroxy/no-config"

var (
	cfg    *config.Config
	logger = zerolog.Nop()

	flagNoColor  bool
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "zoteroxy",
	Short: "Render Zotero library records as normalized JSON",
	Long: `zoteroxy fronts a Zotero library: it resolves the operator configuration
and maps raw Zotero web API records into the JSON shape the proxy serves.

Records are read from a file argument or stdin, e.g. the body of
GET /groups/<id>/items saved with curl.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	var missing *config.MissingConfigurationError
	if errors.As(err, &missing) {
		_, _ = fmt.Fprintln(w, color.RedString("error:"), "configuration is incomplete")
		for _, path := range missing.Missing {
			_, _ = fmt.Fprintf(w, "  %s %s is required\n", color.RedString("✗"), path)
		}
		return
	}
	_, _ = fmt.Fprintln(w, color.RedString("error:"), err)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file path (default: $"+config.EnvConfig+" or ~/.config/zoteroxy/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)
		logger = logging.New(os.Stderr, flagLogLevel, util.IsTerminal(os.Stderr))

		if cmd.Annotations[annotationNoConfig] == "true" {
			return nil
		}
		return loadConfig(config.Path(flagConfig))
	}

	rootCmd.AddCommand(
		newCheckCmd(),
		newConfigCmd(),
		newItemsCmd(),
		newAttachmentsCmd(),
		newLibraryCmd(),
		newBrowseCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)
}

func loadConfig(path string) error {
	logger.Debug().Str("path", path).Msg("loading configuration")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = c
	logger.Debug().
		Str("library", c.Library.ID).
		Str("base_url", c.Settings.BaseURL).
		Int("tags", len(c.Settings.Tags)).
		Msg("configuration resolved")
	return nil
}

// ok prints a green success line.
func ok(w io.Writer, format string, a ...interface{}) {
	_, _ = fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...interface{}) {
	_, _ = fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(w io.Writer, label, value string) {
	_, _ = fmt.Fprintf(w, "  %-16s %s\n", color.CyanString(label+":"), value)
}
