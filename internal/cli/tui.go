package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/palette"
	"github.com/jmylchreest/varia/internal/panel"
	"github.com/jmylchreest/varia/internal/tui"
)

var (
	// TUI command flags
	tuiPalette string
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the variations interactively",
	Long: `Open the interactive variations panel.

The panel starts from the stored settings and saves them again on exit.
Paste a hex colour onto the all-colours swatch or a base colour to change
it, or press e to type one.

Colours added with enter (or all of them with A) are written to the
palette file given by --palette, or printed on exit if none is given.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiPalette, "palette", "p", "", "palette file (.gpl or .json) receiving added colours")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)

	store, cfg, err := loadSettings(logger)
	if err != nil {
		return err
	}

	var (
		sink palette.Sink
		list *palette.List
	)
	if tuiPalette != "" {
		sink = palette.NewFileSink(tuiPalette)
	} else {
		list = palette.NewList()
		sink = list
	}

	model := tui.New(panel.New(cfg), sink, colour.NewNameTable(), logger)
	program := tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run panel: %w", err)
	}

	p := final.(tui.Model).Panel()
	if err := store.Save(p.Snapshot()); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	logger.Debug("settings saved", "path", store.Path())

	if list == nil {
		return nil
	}
	out := cmd.OutOrStdout()
	for _, e := range list.All() {
		if _, err := fmt.Fprintln(out, colour.FormatColourWithLabel(e.Colour, e.Name, swatchWidth)); err != nil {
			return err
		}
	}
	return nil
}
