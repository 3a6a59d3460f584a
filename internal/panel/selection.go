package panel

import (
	"fmt"

	"github.com/jmylchreest/varia/internal/variation"
)

// Selection identifies one swatch of the panel: either the all-colours
// swatch or a slot of a row. It is the source of copy and add-to-palette
// actions and the target of paste and drop actions.
type Selection struct {
	// All selects the all-colours swatch; Row and Slot are ignored.
	All  bool
	Row  int
	Slot int
}

// AllColours selects the all-colours swatch.
func AllColours() Selection {
	return Selection{All: true}
}

// Primary selects the base colour of row.
func Primary(row int) Selection {
	return Selection{Row: row, Slot: variation.CenterSlot}
}

// Result selects a slot of row.
func Result(row, slot int) Selection {
	return Selection{Row: row, Slot: slot}
}

// IsPrimary reports whether the selection is a row's base colour.
func (s Selection) IsPrimary() bool {
	return !s.All && s.Slot == variation.CenterSlot
}

// Valid reports whether the selection refers to an existing swatch.
func (s Selection) Valid() bool {
	if s.All {
		return true
	}
	return s.Row >= 0 && s.Row < MaxRows && s.Slot >= 0 && s.Slot < variation.Slots
}

// String describes the selection the way generated palette names do:
// "all colors", "primary 2", "result 3 line 1".
func (s Selection) String() string {
	switch {
	case s.All:
		return "all colors"
	case !s.Valid():
		return "unknown"
	case s.IsPrimary():
		return fmt.Sprintf("primary %d", s.Row+1)
	}
	// Results are numbered 1..Slots-1, skipping the base.
	j := s.Slot
	if j > variation.CenterSlot {
		j--
	}
	return fmt.Sprintf("result %d line %d", j+1, s.Row+1)
}

// move returns the selection shifted by dRow rows and dSlot slots.
// The all-colours swatch sits above the centre of the first row.
func (s Selection) move(dRow, dSlot int) Selection {
	if s.All {
		if dRow > 0 {
			return Primary(0)
		}
		return s
	}

	row := s.Row + dRow
	if row < 0 {
		return AllColours()
	}
	row = min(row, MaxRows-1)
	slot := max(0, min(variation.Slots-1, s.Slot+dSlot))
	return Selection{Row: row, Slot: slot}
}
