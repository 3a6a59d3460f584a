package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/varia/internal/variation"
)

// axesCmd represents the axes command
var axesCmd = &cobra.Command{
	Use:   "axes",
	Short: "List the variation axes",
	Long:  `List every axis a row can vary, with the identifier used in settings and flags.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		table := NewTable([]string{"ID", "NAME", "SYMBOL", "MULTIPLIER"})
		for _, a := range variation.Axes() {
			info := a.Info()
			id := info.ID
			if a == variation.DefaultAxis {
				id += " (default)"
			}
			table.AddRow([]string{id, info.Name, info.Symbol, strconv.FormatFloat(info.Multiplier, 'g', -1, 64)})
		}
		_, err := fmt.Fprint(cmd.OutOrStdout(), table.Render())
		return err
	},
}
