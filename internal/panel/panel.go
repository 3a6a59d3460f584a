// Package panel holds the state of the variations panel: the rows, the shared
// strength, the all-colours swatch and the current selection.
//
// Every mutation recomputes the whole grid. There are only
// MaxRows*variation.Slots colours so nothing is cached between updates.
package panel

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/palette"
	"github.com/jmylchreest/varia/internal/settings"
	"github.com/jmylchreest/varia/internal/variation"
)

// MaxRows is the number of base colours the panel holds.
const MaxRows = settings.Rows

// ErrNoTarget is returned when a colour is set on a swatch that cannot
// receive one, such as a derived result.
var ErrNoTarget = errors.New("selection cannot receive a colour")

// Row is one base colour and the axis its variations perturb.
type Row struct {
	Axis variation.Axis
	Base colour.Colour
}

// Panel is the variations panel state.
type Panel struct {
	rows       [MaxRows]Row
	allColours colour.Colour
	strength   float64
	selection  Selection
	grid       [MaxRows]variation.Set
}

// New restores a panel from persisted settings.
func New(cfg settings.Settings) *Panel {
	p := &Panel{
		allColours: cfg.AllColours(),
		strength:   cfg.ClampedStrength(),
		selection:  Primary(0),
	}
	for i := range p.rows {
		p.rows[i] = Row{Axis: cfg.Axis(i), Base: cfg.Colour(i)}
	}
	p.recompute()
	return p
}

func (p *Panel) recompute() {
	for i, r := range p.rows {
		p.grid[i] = variation.Row(r.Base, r.Axis, p.strength)
	}
}

// Strength returns the shared strength.
func (p *Panel) Strength() float64 {
	return p.strength
}

// SetStrength changes the shared strength, limited to [MinStrength, MaxStrength].
func (p *Panel) SetStrength(v float64) {
	p.strength = variation.ClampStrength(v)
	p.recompute()
}

// Row returns row i.
func (p *Panel) Row(i int) Row {
	return p.rows[i]
}

// Rows returns every row.
func (p *Panel) Rows() [MaxRows]Row {
	return p.rows
}

// SetBase changes the base colour of row i.
func (p *Panel) SetBase(i int, c colour.Colour) error {
	if i < 0 || i >= MaxRows {
		return fmt.Errorf("row %d out of range [0, %d)", i, MaxRows)
	}
	p.rows[i].Base = c
	p.recompute()
	return nil
}

// SetAxis changes the axis of row i. The row keeps its base colour.
func (p *Panel) SetAxis(i int, a variation.Axis) error {
	if i < 0 || i >= MaxRows {
		return fmt.Errorf("row %d out of range [0, %d)", i, MaxRows)
	}
	if !a.Valid() {
		return fmt.Errorf("%w: %d", variation.ErrUnknownAxis, int(a))
	}
	p.rows[i].Axis = a
	p.recompute()
	return nil
}

// AllColours returns the all-colours swatch.
func (p *Panel) AllColours() colour.Colour {
	return p.allColours
}

// SetAllColours sets the all-colours swatch and the base of every row.
func (p *Panel) SetAllColours(c colour.Colour) {
	p.allColours = c
	for i := range p.rows {
		p.rows[i].Base = c
	}
	p.recompute()
}

// Grid returns the result of the last recomputation.
func (p *Panel) Grid() [MaxRows]variation.Set {
	return p.grid
}

// Selection returns the current selection.
func (p *Panel) Selection() Selection {
	return p.selection
}

// Select changes the current selection. Invalid selections are ignored.
func (p *Panel) Select(s Selection) {
	if s.Valid() {
		p.selection = s
	}
}

// Move shifts the selection by dRow rows and dSlot slots.
func (p *Panel) Move(dRow, dSlot int) {
	p.selection = p.selection.move(dRow, dSlot)
}

// ColourAt returns the colour shown at s.
func (p *Panel) ColourAt(s Selection) (colour.Colour, bool) {
	switch {
	case !s.Valid():
		return colour.Colour{}, false
	case s.All:
		return p.allColours, true
	}
	return p.grid[s.Row][s.Slot], true
}

// SelectedColour returns the selected colour and its description.
func (p *Panel) SelectedColour() (colour.Colour, string) {
	c, _ := p.ColourAt(p.selection)
	return c, p.selection.String()
}

// SetColourAt applies a pasted, dropped or edited colour to s. The
// all-colours swatch updates every row; a primary updates its row. Derived
// results return ErrNoTarget.
func (p *Panel) SetColourAt(s Selection, c colour.Colour) error {
	switch {
	case s.All:
		p.SetAllColours(c)
		return nil
	case !s.Valid() || !s.IsPrimary():
		return fmt.Errorf("%w: %s", ErrNoTarget, s)
	}
	return p.SetBase(s.Row, c)
}

// SetSelectedColour applies c to the current selection.
func (p *Panel) SetSelectedColour(c colour.Colour) error {
	return p.SetColourAt(p.selection, c)
}

// entry names the colour at s as "<colour name> variations <selection>".
func (p *Panel) entry(namer colour.Namer, s Selection) (palette.Entry, bool) {
	c, ok := p.ColourAt(s)
	if !ok {
		return palette.Entry{}, false
	}
	return palette.Entry{
		Name:   fmt.Sprintf("%s variations %s", namer.Name(c), s),
		Colour: c,
	}, true
}

// AddToPalette adds the colour at s to sink.
func (p *Panel) AddToPalette(sink palette.Sink, namer colour.Namer, s Selection) error {
	e, ok := p.entry(namer, s)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoTarget, s)
	}
	return sink.Add(e)
}

// AddAllToPalette adds every slot of every row to sink, row by row.
func (p *Panel) AddAllToPalette(sink palette.Sink, namer colour.Namer) error {
	entries := make([]palette.Entry, 0, MaxRows*variation.Slots)
	for row := range MaxRows {
		for slot := range variation.Slots {
			e, _ := p.entry(namer, Result(row, slot))
			entries = append(entries, e)
		}
	}
	return sink.Add(entries...)
}

// Snapshot captures the state that outlives the session.
func (p *Panel) Snapshot() settings.Settings {
	cfg := settings.Default()
	cfg.Strength = p.strength
	for i, r := range p.rows {
		cfg.SetAxis(i, r.Axis)
		cfg.SetColour(i, r.Base)
	}
	cfg.AllColors = p.allColours.Hex()
	return cfg
}
