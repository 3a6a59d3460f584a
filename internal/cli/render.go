package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/panel"
	"github.com/jmylchreest/varia/internal/variation"
)

// Output formats for the grid command.
const (
	formatPreview = "preview"
	formatHex     = "hex"
	formatJSON    = "json"
	formatTable   = "table"
)

const swatchWidth = 9

// GridJSON is the JSON representation of the panel.
type GridJSON struct {
	Strength  float64   `json:"strength"`
	AllColors string    `json:"all_colors"`
	Rows      []RowJSON `json:"rows"`
}

// RowJSON is one row of the grid. Colors are in offset order, base in the middle.
type RowJSON struct {
	Axis   string   `json:"axis"`
	Base   string   `json:"base"`
	Colors []string `json:"colors"`
}

// renderGrid writes the panel in the requested format.
func renderGrid(w io.Writer, p *panel.Panel, format string) error {
	switch format {
	case formatPreview:
		_, err := io.WriteString(w, renderPreview(p))
		return err
	case formatHex:
		_, err := io.WriteString(w, renderHex(p))
		return err
	case formatTable:
		_, err := io.WriteString(w, renderTable(p))
		return err
	case formatJSON:
		data, err := json.MarshalIndent(gridJSON(p), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode grid: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return fmt.Errorf("unknown format %q (valid: %s, %s, %s, %s)", format, formatPreview, formatHex, formatJSON, formatTable)
}

func gridJSON(p *panel.Panel) GridJSON {
	out := GridJSON{
		Strength:  p.Strength(),
		AllColors: p.AllColours().Hex(),
	}
	grid := p.Grid()
	for i, r := range p.Rows() {
		row := RowJSON{Axis: r.Axis.String(), Base: r.Base.Hex()}
		for _, c := range grid[i] {
			row.Colors = append(row.Colors, c.Hex())
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func renderHex(p *panel.Panel) string {
	var b strings.Builder
	for _, set := range p.Grid() {
		hexes := make([]string, len(set))
		for i, c := range set {
			hexes[i] = c.Hex()
		}
		b.WriteString(strings.Join(hexes, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// renderPreview draws the panel as rows of swatches: the all-colours swatch
// above the centre column, each base labelled with its axis symbol.
func renderPreview(p *panel.Panel) string {
	var b strings.Builder
	indent := strings.Repeat(" ", variation.CenterSlot*(swatchWidth+1))

	fmt.Fprintf(&b, "%s%s  all colours\n", indent, colour.ColourPreview(p.AllColours(), swatchWidth))

	grid := p.Grid()
	for i, r := range p.Rows() {
		cells := make([]string, variation.Slots)
		for slot, c := range grid[i] {
			if slot == variation.CenterSlot {
				cells[slot] = colour.ColourPreviewWithText(c, r.Axis.Info().Symbol, swatchWidth)
				continue
			}
			cells[slot] = colour.ColourPreview(c, swatchWidth)
		}
		fmt.Fprintf(&b, "%s  %s\n", strings.Join(cells, " "), r.Axis.Info().Name)
	}
	fmt.Fprintf(&b, "strength %s\n", strconv.FormatFloat(p.Strength(), 'f', -1, 64))
	return b.String()
}

func renderTable(p *panel.Panel) string {
	headers := []string{"ROW", "AXIS"}
	for slot := range variation.Slots {
		headers = append(headers, fmt.Sprintf("%+d", variation.OffsetForSlot(slot)))
	}
	// "+0" reads oddly for the base column.
	headers[2+variation.CenterSlot] = "BASE"

	table := NewTable(headers)
	grid := p.Grid()
	for i, r := range p.Rows() {
		row := []string{strconv.Itoa(i + 1), r.Axis.String()}
		for _, c := range grid[i] {
			row = append(row, colour.ColourString(c, c.Hex()))
		}
		table.AddRow(row)
	}
	return table.Render()
}

// parseRowColour parses "hex" or "N=hex", where N is a 1-based row number.
// Plain hex values take the next row after the previous flag.
func parseRowColour(spec string, next int) (int, colour.Colour, error) {
	row := next
	value := spec
	if idx, hex, ok := strings.Cut(spec, "="); ok {
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil || n < 1 || n > panel.MaxRows {
			return 0, colour.Colour{}, fmt.Errorf("invalid row %q in %q: expected 1-%d", idx, spec, panel.MaxRows)
		}
		row = n - 1
		value = hex
	}
	if row >= panel.MaxRows {
		return 0, colour.Colour{}, fmt.Errorf("too many colours: at most %d rows", panel.MaxRows)
	}
	c, err := colour.ParseHex(value)
	if err != nil {
		return 0, colour.Colour{}, err
	}
	return row, c, nil
}

// parseRowAxis parses "id" or "N=id" the same way parseRowColour does.
func parseRowAxis(spec string, next int) (int, variation.Axis, error) {
	row := next
	value := spec
	if idx, id, ok := strings.Cut(spec, "="); ok {
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil || n < 1 || n > panel.MaxRows {
			return 0, 0, fmt.Errorf("invalid row %q in %q: expected 1-%d", idx, spec, panel.MaxRows)
		}
		row = n - 1
		value = id
	}
	if row >= panel.MaxRows {
		return 0, 0, fmt.Errorf("too many axes: at most %d rows", panel.MaxRows)
	}
	a, err := variation.ParseAxis(strings.TrimSpace(value))
	if err != nil {
		return 0, 0, err
	}
	return row, a, nil
}
