package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// SupportsANSIColours reports whether f is a terminal that should receive
// 24-bit colour escapes. NO_COLOR is honoured.
func SupportsANSIColours(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

func bg(rgb RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
}

func fg(rgb RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
}

// ColourPreview returns a solid block of width cells in the given colour.
// With colour output disabled the block is rendered as the hex code.
func ColourPreview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if DisableColourOutput {
		return padCentre(c.Hex(), width)
	}
	return bg(c.RGB()) + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour block with text overlaid in
// whichever of black or white contrasts better.
func ColourPreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	displayText := padCentre(text, width)
	if DisableColourOutput {
		return displayText
	}
	return bg(c.RGB()) + fg(TextColour(c).RGB()) + displayText + ansiReset
}

// FormatColourWithLabel formats a colour with a label and preview.
func FormatColourWithLabel(c Colour, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", ColourPreview(c, width), label, c.Hex())
}

// ColourString returns text in the given foreground colour if colour output is enabled.
func ColourString(c Colour, text string) string {
	if DisableColourOutput {
		return text
	}
	return fg(c.RGB()) + text + ansiReset
}

// padCentre pads or truncates text to exactly width cells.
func padCentre(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
}
