package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/variation"
)

var (
	// Compute command flags
	computeAxis     string
	computeStrength float64
	computeOffset   int
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute <hex>",
	Short: "Compute variations of a single colour",
	Long: `Compute variations of a colour without touching the stored settings.

With --offset a single variation is printed; otherwise the whole row is
printed from offset -4 to +4, with the base in the middle.

Examples:
  # Whole row, Lab lightness, default strength
  varia compute '#3366cc'

  # The third lighter HSL lightness variation at strength 60
  varia compute '#3366cc' --axis hsl_lightness --strength 60 --offset 3`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVarP(&computeAxis, "axis", "a", variation.DefaultAxis.String(), "axis id (see 'varia axes')")
	computeCmd.Flags().Float64VarP(&computeStrength, "strength", "s", variation.DefaultStrength, "variation strength (1-100)")
	computeCmd.Flags().IntVarP(&computeOffset, "offset", "o", 0, fmt.Sprintf("single offset in [-%d, %d], excluding 0", variation.HalfWidth, variation.HalfWidth))
}

func runCompute(cmd *cobra.Command, args []string) error {
	base, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}
	axis, err := variation.ParseAxis(computeAxis)
	if err != nil {
		return err
	}
	if !variation.ValidStrength(computeStrength) {
		return fmt.Errorf("strength %g out of range [%g, %g]", computeStrength, variation.MinStrength, variation.MaxStrength)
	}

	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("offset") {
		if computeOffset == 0 || computeOffset < -variation.HalfWidth || computeOffset > variation.HalfWidth {
			return fmt.Errorf("offset %d out of range: expected ±1..±%d", computeOffset, variation.HalfWidth)
		}
		c := variation.Compute(base, axis, computeStrength, computeOffset)
		_, err := fmt.Fprintln(out, colour.FormatColourWithLabel(c, fmt.Sprintf("%s %+d", axis, computeOffset), swatchWidth))
		return err
	}

	row := variation.Row(base, axis, computeStrength)
	var b strings.Builder
	for slot, c := range row {
		label := fmt.Sprintf("%s %+d", axis, variation.OffsetForSlot(slot))
		if slot == variation.CenterSlot {
			label = "base"
		}
		b.WriteString(colour.FormatColourWithLabel(c, label, swatchWidth))
		b.WriteString("\n")
	}
	_, err = fmt.Fprint(out, b.String())
	return err
}
