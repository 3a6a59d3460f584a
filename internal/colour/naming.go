package colour

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// exactMatchThreshold is the CIEDE2000 distance below which a name is
// considered an exact match rather than an approximation.
const exactMatchThreshold = 0.005

// Namer names colours.
type Namer interface {
	Name(c Colour) string
}

type namedColour struct {
	name   string
	colour colorful.Color
}

// NameTable finds the nearest SVG 1.1 colour keyword for a colour.
type NameTable struct {
	entries []namedColour
	// ImprecisionPostfix appends "~" to names that are not an exact match.
	ImprecisionPostfix bool
}

// NewNameTable builds a table over golang.org/x/image/colornames.
// Keyword aliases (grey/gray, aqua/cyan, fuchsia/magenta) resolve to the
// alphabetically first spelling.
func NewNameTable() *NameTable {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]namedColour, 0, len(names))
	for _, name := range names {
		cf, _ := colorful.MakeColor(colornames.Map[name])
		entries = append(entries, namedColour{name: name, colour: cf})
	}
	return &NameTable{entries: entries}
}

// Name returns the nearest colour keyword, title-cased.
func (t *NameTable) Name(c Colour) string {
	if len(t.entries) == 0 {
		return c.Hex()
	}

	target := c.colorful().Clamped()
	best := t.entries[0]
	bestDist := target.DistanceCIEDE2000(best.colour)
	for _, e := range t.entries[1:] {
		if d := target.DistanceCIEDE2000(e.colour); d < bestDist {
			best, bestDist = e, d
		}
	}

	name := titleCase(best.name)
	if t.ImprecisionPostfix && bestDist > exactMatchThreshold {
		name += " ~"
	}
	return name
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
