package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/varia/internal/settings"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit stored settings",
	Long: `Inspect and edit the settings remembered between sessions.

Keys:
  strength        variation strength (1-100)
  type0..type2    axis id of each row (see 'varia axes')
  color0..color2  base colour of each row
  all_colors      colour applied to every row by the all-colours swatch`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a stored value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(newLogger(cmd))
		if err != nil {
			return err
		}
		v, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		store, cfg, err := loadSettings(logger)
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := store.Save(cfg); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		logger.Debug("setting updated", "key", args[0], "value", args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every stored value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, cfg, err := loadSettings(newLogger(cmd))
		if err != nil {
			return err
		}
		var b strings.Builder
		for _, key := range settings.Keys() {
			v, _ := cfg.Get(key)
			fmt.Fprintf(&b, "%s = %s\n", key, v)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(newLogger(cmd))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), store.Path())
		return err
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger(cmd)
		store, err := openStore(logger)
		if err != nil {
			return err
		}
		if err := store.Save(settings.Default()); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		logger.Info("settings reset", "path", store.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}
