// Package tui is the interactive variations panel.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/palette"
	"github.com/jmylchreest/varia/internal/panel"
	"github.com/jmylchreest/varia/internal/variation"
)

const (
	strengthStep      = 1.0
	strengthLargeStep = 10.0
	maxInputLength    = 7
)

// Model is the bubbletea model of the variations panel.
type Model struct {
	panel  *panel.Panel
	sink   palette.Sink
	namer  colour.Namer
	logger hclog.Logger

	editing bool
	input   string
	status  string
	failed  bool
}

// New creates a model over p. Colours added with enter or A go to sink.
func New(p *panel.Panel, sink palette.Sink, namer colour.Namer, logger hclog.Logger) Model {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return Model{
		panel:  p,
		sink:   sink,
		namer:  namer,
		logger: logger.Named("tui"),
	}
}

// Panel returns the panel the model edits.
func (m Model) Panel() *panel.Panel {
	return m.panel
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if key.Paste {
		m.editing = false
		m.input = ""
		m.applyHex(string(key.Runes))
		return m, nil
	}
	if m.editing {
		return m.updateEditor(key), nil
	}

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.panel.Move(-1, 0)
	case "down", "j":
		m.panel.Move(1, 0)
	case "left", "h":
		m.panel.Move(0, -1)
	case "right", "l":
		m.panel.Move(0, 1)
	case "+", "=":
		m.changeStrength(strengthStep)
	case "-":
		m.changeStrength(-strengthStep)
	case "]":
		m.changeStrength(strengthLargeStep)
	case "[":
		m.changeStrength(-strengthLargeStep)
	case "a":
		m.cycleAxis()
	case "1", "2", "3", "4":
		m.pickAxis(int(key.Runes[0] - '1'))
	case "e":
		m.editing = true
		m.input = ""
		m.setStatus("enter a hex colour", false)
	case "enter":
		m.addSelected()
	case "A":
		m.addAll()
	}
	return m, nil
}

func (m Model) updateEditor(key tea.KeyMsg) Model {
	switch key.Type {
	case tea.KeyEsc:
		m.editing = false
		m.setStatus("", false)
	case tea.KeyEnter:
		m.editing = false
		m.applyHex(m.input)
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		m.input += string(key.Runes)
		if len(m.input) > maxInputLength {
			m.input = m.input[:maxInputLength]
		}
	}
	return m
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

func (m *Model) fail(err error) {
	m.logger.Debug("action failed", "error", err)
	m.setStatus(err.Error(), true)
}

func (m *Model) changeStrength(delta float64) {
	m.panel.SetStrength(m.panel.Strength() + delta)
	m.setStatus("", false)
}

// selectedRow returns the row the selection belongs to.
func (m *Model) selectedRow() (int, bool) {
	sel := m.panel.Selection()
	if sel.All {
		return 0, false
	}
	return sel.Row, true
}

func (m *Model) cycleAxis() {
	row, ok := m.selectedRow()
	if !ok {
		m.setStatus("select a row to change its axis", true)
		return
	}
	m.setAxis(row, m.panel.Row(row).Axis.Next())
}

func (m *Model) pickAxis(i int) {
	axes := variation.Axes()
	if i < 0 || i >= len(axes) {
		return
	}
	row, ok := m.selectedRow()
	if !ok {
		m.setStatus("select a row to change its axis", true)
		return
	}
	m.setAxis(row, axes[i])
}

func (m *Model) setAxis(row int, a variation.Axis) {
	if err := m.panel.SetAxis(row, a); err != nil {
		m.fail(err)
		return
	}
	m.setStatus(fmt.Sprintf("row %d varies %s", row+1, a.Info().Name), false)
}

// applyHex sets the selected swatch from pasted or typed text.
func (m *Model) applyHex(text string) {
	c, err := colour.ParseHex(text)
	if err != nil {
		m.fail(err)
		return
	}
	if err := m.panel.SetSelectedColour(c); err != nil {
		if errors.Is(err, panel.ErrNoTarget) {
			m.setStatus(fmt.Sprintf("%s cannot be changed", m.panel.Selection()), true)
			return
		}
		m.fail(err)
		return
	}
	m.setStatus(fmt.Sprintf("set %s to %s", m.panel.Selection(), c.Hex()), false)
}

func (m *Model) addSelected() {
	sel := m.panel.Selection()
	if err := m.panel.AddToPalette(m.sink, m.namer, sel); err != nil {
		m.fail(err)
		return
	}
	m.logger.Debug("added colour to palette", "selection", sel.String())
	m.setStatus(fmt.Sprintf("added %s to palette", sel), false)
}

func (m *Model) addAll() {
	if err := m.panel.AddAllToPalette(m.sink, m.namer); err != nil {
		m.fail(err)
		return
	}
	n := panel.MaxRows * variation.Slots
	m.logger.Debug("added all colours to palette", "count", n)
	m.setStatus(fmt.Sprintf("added %d colours to palette", n), false)
}

func (m Model) View() string {
	var b strings.Builder
	sel := m.panel.Selection()

	b.WriteString(styleTitle.Render("Variations"))
	b.WriteString(styleDim.Render(fmt.Sprintf("  strength %.0f", m.panel.Strength())))
	b.WriteString("\n\n")

	// The all-colours swatch sits above the base column.
	all := lipgloss.JoinHorizontal(lipgloss.Top,
		styleLabel.Render("all colors"),
		strings.Repeat(" ", variation.CenterSlot*swatchWidth),
		swatch(m.panel.AllColours(), sel.All),
	)
	b.WriteString(all)
	b.WriteString("\n")
	if sel.All {
		b.WriteString(cursor(variation.Slots, variation.CenterSlot))
	}
	b.WriteString("\n")

	grid := m.panel.Grid()
	for row, set := range grid {
		cells := make([]string, 0, variation.Slots+1)
		cells = append(cells, styleLabel.Render(fmt.Sprintf("%d %s", row+1, m.panel.Row(row).Axis.Info().Symbol)))
		for slot, c := range set {
			cells = append(cells, swatch(c, !sel.All && sel.Row == row && sel.Slot == slot))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
		if !sel.All && sel.Row == row {
			b.WriteString(cursor(variation.Slots, sel.Slot))
		}
		b.WriteString("\n")
	}

	c, desc := m.panel.SelectedColour()
	fmt.Fprintf(&b, "%s  %s  %s\n", desc, c.Hex(), m.namer.Name(c))

	switch {
	case m.editing:
		b.WriteString("hex: " + styleInput.Render(m.input+" "))
	case m.failed:
		b.WriteString(styleError.Render(m.status))
	case m.status != "":
		b.WriteString(styleSuccess.Render(m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(styleDim.Render("arrows/hjkl move  +/- strength  [/] ×10  a/1-4 axis  e edit  enter add  A add all  q quit"))
	return b.String()
}
