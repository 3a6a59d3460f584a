package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/varia/internal/colour"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - titles
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - help text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Width(labelWidth).Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleCursor  = lipgloss.NewStyle().Width(swatchWidth).Align(lipgloss.Center).Foreground(colorCyan)
	styleInput   = lipgloss.NewStyle().Foreground(colorWhite).Underline(true)
)

const (
	swatchWidth = 9
	labelWidth  = 12
)

// swatch renders c as a block of background colour. The selected swatch
// carries its hex value in a contrasting foreground.
func swatch(c colour.Colour, selected bool) string {
	style := lipgloss.NewStyle().
		Width(swatchWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(colour.TextColour(c).Hex()))

	text := ""
	if selected {
		text = c.Hex()
		style = style.Bold(true)
	}
	return style.Render(text)
}

// cursor renders the marker line under a row of swatches.
func cursor(slots, selected int) string {
	cells := make([]string, 0, slots+1)
	cells = append(cells, styleLabel.Render(""))
	for i := range slots {
		mark := ""
		if i == selected {
			mark = "▲"
		}
		cells = append(cells, styleCursor.Render(mark))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
