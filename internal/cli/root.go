// Package cli provides the command-line interface for varia.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/settings"
	"github.com/jmylchreest/varia/internal/version"
)

var (
	// Global settings file flag
	globalSettingsPath string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "varia",
		Short: "Colour variations generator",
		Long: `Varia derives colour variations from up to three base colours.

Each row perturbs one component of its base colour (HSL hue, HSL saturation,
HSL lightness or Lab lightness) by a shared strength, producing four darker /
less / earlier variations on one side of the base and four on the other.

Rows, axes and strength are remembered between sessions in a settings file.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: configureOutput,
	}
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&globalSettingsPath, "settings", "", "settings file (default: $"+settings.EnvPath+" or the user config directory)")
	rootCmd.PersistentFlags().Bool("no-colour", false, "disable ANSI colour previews")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(axesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tuiCmd)
}

// configureOutput decides whether ANSI previews are written to stdout.
func configureOutput(cmd *cobra.Command, _ []string) error {
	noColour, _ := cmd.Flags().GetBool("no-colour")
	colour.DisableColourOutput = noColour || !colour.SupportsANSIColours(os.Stdout)
	return nil
}

// newLogger builds the command logger from the verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "varia",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

// openStore returns the settings store selected by --settings or the environment.
func openStore(logger hclog.Logger) (*settings.Store, error) {
	path := globalSettingsPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return settings.NewStore(path, logger), nil
}

// loadSettings opens the store and reads the persisted settings.
func loadSettings(logger hclog.Logger) (*settings.Store, settings.Settings, error) {
	store, err := openStore(logger)
	if err != nil {
		return nil, settings.Settings{}, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to load settings: %w", err)
	}
	return store, cfg, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
