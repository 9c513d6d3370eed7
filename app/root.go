// Package app implements the pwdgen commands.
package app

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pwdgen/pwdgen/internal/clipboard"
	"github.com/pwdgen/pwdgen/internal/config"
	"github.com/pwdgen/pwdgen/internal/generator"
	"github.com/pwdgen/pwdgen/internal/logger"
	"github.com/pwdgen/pwdgen/internal/metrics"
	"github.com/pwdgen/pwdgen/internal/platform"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "directory holding pwdgen.toml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	rootCmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "do not copy the password to the clipboard")
}

var (
	configPath  string // directory holding pwdgen.toml
	logLevel    string
	noClipboard bool

	cfg config.Config
	met *metrics.Metrics

	rootCmd = &cobra.Command{
		Use:   "pwdgen [length] [caseSensitivity] [numbers] [symbols]",
		Short: "pwdgen generates a random password and copies it to the clipboard",
		Long: `pwdgen generates a random password of configurable length and
character composition and tries to place it on the system clipboard.

All positional values are optional. Case sensitivity, numbers and symbols
are enabled by passing 1 and disabled by anything else.
The generator is not cryptographically secure.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := platform.Parse(cfg.Clipboard.Platform)
			if cfg.Clipboard.Platform == "" {
				p = platform.Detect(cmd.Context())
			}

			r := &runner{
				out:      cmd.OutOrStdout(),
				defaults: cfg.Defaults.Request(),
				gen:      generator.New(nil),
				metrics:  met,
				sink: clipboard.New(p, clipboard.Options{
					Disabled: cfg.Clipboard.Disabled || noClipboard,
					Timeout:  cfg.Clipboard.Timeout,
				}),
			}

			r.run(cmd.Context(), args)

			return writeMetrics()
		},
	}
)

// setup reads the configuration and initialises logging and metrics.
func setup(_ *cobra.Command, _ []string) error {
	var err error

	// nothing below warn may reach stderr before the configured logger exists
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Log.LogLevel = logLevel
	}

	met = metrics.New()

	if err = logger.Init(cfg.Log, met.Registry); err != nil {
		return errors.Wrap(err, "can't init logger")
	}

	return nil
}

func writeMetrics() error {
	if cfg.Metrics.Textfile == "" {
		return nil
	}

	if err := met.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		return err
	}

	log.Debug().Str("file", cfg.Metrics.Textfile).Msg("metrics written")

	return nil
}

// Execute runs the root command.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	rootCmd.SetArgs(separateNegativeNumbers(rootCmd, args))

	return rootCmd.Execute()
}
