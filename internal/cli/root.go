// Package cli provides the command-line interface for substance.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/substance/internal/config"
	"github.com/jmylchreest/substance/internal/render"
	"github.com/jmylchreest/substance/internal/version"
)

// app holds the state shared by every command of one invocation.
type app struct {
	fs       afero.Fs
	v        *viper.Viper
	logger   hclog.Logger
	settings config.Settings

	// Global flags
	verbose int
	quiet   bool
	color   render.ColorFlag
}

// NewRootCmd returns the substance command tree working on the real
// filesystem. This is called by main.main().
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

// newRootCmd returns the command tree. Config files and images are read
// from fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{
		fs:     fs,
		v:      viper.New(),
		logger: hclog.NewNullLogger(),
		color:  render.ColorAuto,
	}

	build := version.Get()
	rootCmd := &cobra.Command{
		Use:   "substance",
		Short: "Balanced colour schemes from a single seed",
		Long: `Substance derives light and dark colour schemes from a seed colour.

Six hues are spread evenly around the seed, each becomes a tier of
colour, container and fixed tones, and the semantic roles (error,
warning, link and friends) are matched to the closest tier. Every
foreground is pushed until it meets its contrast target.

Settings are read from flags, SUBSTANCE_* environment variables and
$XDG_CONFIG_HOME/substance/substance.toml, in that order.`,
		Version:           build.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (repeat for trace)")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Var(&a.color, config.KeyColor, "colour output (auto, always, never)")

	rootCmd.SetVersionTemplate(build.String() + "\n")

	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newParamsCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newSeedCmd(a))
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup binds the flags of cmd to their settings, loads the config file and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for _, f := range config.Fields {
		if flag := cmd.Flags().Lookup(f.Key); flag != nil {
			if err := a.v.BindPFlag(f.Key, flag); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", f.Key, err)
			}
		}
	}

	if err := config.Load(a.fs, a.v, config.Dir(), "."); err != nil {
		return err
	}
	settings, err := config.Resolve(a.v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.settings = settings

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   config.Name,
		Level:  a.level(),
		Output: cmd.ErrOrStderr(),
		Color:  logColor(settings.Color),
	})
	a.logger.Trace("configuration resolved", "file", a.v.ConfigFileUsed(), "settings", fmt.Sprintf("%+v", settings))
	return nil
}

func (a *app) level() hclog.Level {
	switch {
	case a.quiet:
		return hclog.Error
	case a.verbose >= 2:
		return hclog.Trace
	case a.verbose == 1:
		return hclog.Debug
	default:
		return hclog.Warn
	}
}

func logColor(when render.ColorFlag) hclog.ColorOption {
	switch when {
	case render.ColorAlways:
		return hclog.ForceColor
	case render.ColorNever:
		return hclog.ColorOff
	default:
		return hclog.AutoColor
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		},
	}
}
