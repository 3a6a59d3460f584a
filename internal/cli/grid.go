package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/panel"
	"github.com/jmylchreest/varia/internal/settings"
	"github.com/jmylchreest/varia/internal/variation"
)

var (
	// Grid command flags
	gridColours  []string
	gridAxes     []string
	gridAll      string
	gridStrength float64
	gridFormat   string
	gridSave     bool
)

// gridCmd represents the grid command
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the variations grid",
	Long: `Print the three rows of variations for the stored base colours.

Stored settings are used unless overridden by flags. Colours and axes are
assigned to rows in order, or to a specific row with N=value.

Examples:
  # Show the stored grid
  varia grid

  # Vary red by hue and teal by HSL saturation
  varia grid --colour '#ff0000' --axis hsl_hue --colour 2=#008080 --axis 2=hsl_saturation

  # Start every row from the same colour and remember the result
  varia grid --all '#336699' --strength 45 --save

  # Machine readable output
  varia grid --format json`,
	Args: cobra.NoArgs,
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().StringArrayVarP(&gridColours, "colour", "c", nil, "base colour as hex or N=hex (repeatable)")
	gridCmd.Flags().StringArrayVarP(&gridAxes, "axis", "a", nil, "row axis as id or N=id (repeatable)")
	gridCmd.Flags().StringVar(&gridAll, "all", "", "set every row to this colour")
	gridCmd.Flags().Float64VarP(&gridStrength, "strength", "s", 0, "variation strength (1-100)")
	gridCmd.Flags().StringVarP(&gridFormat, "format", "f", formatPreview, "output format (preview, hex, json, table)")
	gridCmd.Flags().BoolVar(&gridSave, "save", false, "persist the resulting rows and strength")
}

func runGrid(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)

	store, cfg, err := loadSettings(logger)
	if err != nil {
		return err
	}

	p := panel.New(cfg)
	if err := applyGridOverrides(cmd, p); err != nil {
		return err
	}

	if err := renderGrid(cmd.OutOrStdout(), p, gridFormat); err != nil {
		return err
	}

	if gridSave {
		if err := store.Save(p.Snapshot()); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		logger.Info("settings saved", "path", store.Path())
	}
	return nil
}

// applyGridOverrides applies the command line flags to the panel. The
// all-colours swatch is applied first so per-row colours can refine it.
func applyGridOverrides(cmd *cobra.Command, p *panel.Panel) error {
	if gridAll != "" {
		c, err := colour.ParseHex(gridAll)
		if err != nil {
			return fmt.Errorf("invalid --all colour: %w", err)
		}
		p.SetAllColours(c)
	}

	next := 0
	for _, spec := range gridColours {
		row, c, err := parseRowColour(spec, next)
		if err != nil {
			return fmt.Errorf("invalid --colour: %w", err)
		}
		if err := p.SetBase(row, c); err != nil {
			return err
		}
		next = row + 1
	}

	next = 0
	for _, spec := range gridAxes {
		row, a, err := parseRowAxis(spec, next)
		if err != nil {
			return fmt.Errorf("invalid --axis: %w", err)
		}
		if err := p.SetAxis(row, a); err != nil {
			return err
		}
		next = row + 1
	}

	if cmd.Flags().Changed("strength") {
		if !variation.ValidStrength(gridStrength) {
			return fmt.Errorf("strength %g out of range [%g, %g]", gridStrength, variation.MinStrength, variation.MaxStrength)
		}
		p.SetStrength(gridStrength)
	}
	return nil
}

// newPanel loads the stored panel, used by commands that only read it.
func newPanel(cmd *cobra.Command) (*panel.Panel, *settings.Store, error) {
	logger := newLogger(cmd)
	store, cfg, err := loadSettings(logger)
	if err != nil {
		return nil, nil, err
	}
	return panel.New(cfg), store, nil
}
