package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/palette"
	"github.com/jmylchreest/varia/internal/panel"
	"github.com/jmylchreest/varia/internal/variation"
)

var (
	// Export command flags
	exportRow         int
	exportSlot        int
	exportAll         bool
	exportImprecision bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <palette-file>",
	Short: "Add variations to a palette file",
	Long: `Add colours from the stored grid to a palette file.

Files ending in .json are written as a JSON palette; anything else is
written as a GIMP palette (.gpl). Existing files are appended to.

Each colour is named after the nearest colour keyword and its position,
for example "Steelblue variations result 3 line 1".

Examples:
  # Add all 27 colours
  varia export ~/palettes/variations.gpl

  # Add the base colour of row 2
  varia export --row 2 --slot 0 palette.json

  # Add the all-colours swatch
  varia export --all palette.gpl`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportRow, "row", 0, fmt.Sprintf("row to export (1-%d); omit for every row", panel.MaxRows))
	exportCmd.Flags().IntVar(&exportSlot, "slot", 0, fmt.Sprintf("offset within the row (-%d..%d, 0 is the base)", variation.HalfWidth, variation.HalfWidth))
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export the all-colours swatch")
	exportCmd.Flags().BoolVar(&exportImprecision, "imprecision-postfix", true, "mark approximate colour names with ~")
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	p, _, err := newPanel(cmd)
	if err != nil {
		return err
	}

	sel, single, err := exportSelection(cmd)
	if err != nil {
		return err
	}

	sink := palette.NewFileSink(args[0])
	namer := colour.NewNameTable()
	namer.ImprecisionPostfix = exportImprecision

	if single {
		if err := p.AddToPalette(sink, namer, sel); err != nil {
			return fmt.Errorf("failed to export %s: %w", sel, err)
		}
		logger.Info("exported colour", "selection", sel.String(), "path", sink.Path())
		return nil
	}

	if err := p.AddAllToPalette(sink, namer); err != nil {
		return fmt.Errorf("failed to export variations: %w", err)
	}
	logger.Info("exported variations", "count", panel.MaxRows*variation.Slots, "path", sink.Path())
	return nil
}

// exportSelection converts the export flags into a panel selection.
// single is false when every slot should be exported.
func exportSelection(cmd *cobra.Command) (sel panel.Selection, single bool, err error) {
	if exportAll {
		return panel.AllColours(), true, nil
	}
	if !cmd.Flags().Changed("row") {
		if cmd.Flags().Changed("slot") {
			return sel, false, fmt.Errorf("--slot requires --row")
		}
		return sel, false, nil
	}
	if exportRow < 1 || exportRow > panel.MaxRows {
		return sel, false, fmt.Errorf("row %d out of range [1, %d]", exportRow, panel.MaxRows)
	}
	if exportSlot < -variation.HalfWidth || exportSlot > variation.HalfWidth {
		return sel, false, fmt.Errorf("slot %d out of range [-%d, %d]", exportSlot, variation.HalfWidth, variation.HalfWidth)
	}
	return panel.Result(exportRow-1, variation.SlotForOffset(exportSlot)), true, nil
}
