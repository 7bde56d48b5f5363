package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"bkfetch/ascii"
	"bkfetch/config"
	"bkfetch/display"
	"bkfetch/logging"
	"bkfetch/registry"
	"bkfetch/render"
	"bkfetch/sysinfo"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"color":           "color",
	"art":             "art",
	"gap":             "gap",
	"bias":            "bias",
	"delimiter":       "delimiter",
	"delimiter-width": "delimiter_width",
	"max-width":       "max_width",
	"no-color":        "no_color",
}

type rootOptions struct {
	verbosity  int
	configPath string
}

// NewRootCmd builds the bkfetch command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bkfetch",
		Short: "Print ASCII art beside a column of system facts",
		Long: `bkfetch prints a block of ASCII art with user@host, the operating system,
kernel, shell, display, network, CPU, memory and color swatches next to it.

Settings are read from the built-in defaults, then ` + "`" + config.DefaultPath() + "`" + `,
then BKFETCH_* environment variables, then flags.`,
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			p := sysinfo.Default()
			reg := registry.Build(registry.Current(), p)
			return renderBanner(cmd.OutOrStdout(), cfg, reg, p.User)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&opts.configPath, "config", "", "config file (default is "+config.DefaultPath()+")")

	// Flag defaults are for help output only; unset flags never override config.
	f := cmd.PersistentFlags()
	f.StringP("color", "c", display.DefaultTheme, "color theme (see `bkfetch themes`)")
	f.StringP("art", "b", ascii.Random, "art name, 1-based index or \"random\" (see `bkfetch art`)")
	f.Int("gap", 3, "number of spaces between the art and the facts")
	f.Int("bias", render.DefaultBias, "rows the facts are lifted above the art's midpoint")
	f.String("delimiter", "-", "pattern drawn on delimiter rows")
	f.Int("delimiter-width", 0, "delimiter width in cells (0 matches the user@host row)")
	f.Int("max-width", 0, "maximum line width (0 uses the terminal width)")
	f.Bool("no-color", false, "disable colors")

	cmd.AddCommand(
		newArtCmd(),
		newThemesCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load resolves the configuration, applying only the flags the user set.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]interface{})
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		if key, ok := flagKeys[fl.Name]; ok {
			overrides[key] = fl.Value.String()
		}
	})

	cfg, err := config.Load(config.LoadOptions{Path: o.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	log.Debug().Interface("config", cfg).Msg("Configuration resolved")
	return cfg, nil
}

// renderBanner prints one banner pass for reg to w.
func renderBanner(w io.Writer, cfg *config.Config, reg registry.Registry, user sysinfo.Provider) error {
	theme, err := display.Lookup(cfg.Color)
	if err != nil {
		return err
	}
	art, err := ascii.Select(cfg.Art)
	if err != nil {
		return err
	}

	printer := display.NewPrinter(theme,
		display.WithProfile(outputProfile(w, cfg.NoColor)),
		display.WithGap(cfg.Gap),
		display.WithDelimiter(cfg.Delimiter, cfg.DelimiterWidth),
		display.WithMaxWidth(maxWidth(w, cfg.MaxWidth)),
	)

	done := logging.LogOperationStart(logging.GetLogger("render"), "banner")
	defer done()

	engine := render.New(printer, user,
		render.WithBias(cfg.Bias),
		render.WithLogger(logging.GetLogger("render")),
	)
	if err := engine.Render(w, art, reg); err != nil {
		return fmt.Errorf("failed to write banner: %w", err)
	}
	return nil
}

// outputProfile detects colors for terminals and disables them for anything else.
func outputProfile(w io.Writer, noColor bool) termenv.Profile {
	if f, ok := w.(*os.File); ok {
		return display.DetectProfile(f, noColor)
	}
	return termenv.Ascii
}

// maxWidth returns configured, or the terminal width of w when configured is zero.
func maxWidth(w io.Writer, configured int) int {
	if configured > 0 {
		return configured
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		log.Debug().Err(err).Msg("Could not read terminal size")
		return 0
	}
	return width
}
