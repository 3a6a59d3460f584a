// Package palette provides destinations for colours added from the variations grid.
package palette

import (
	"github.com/jmylchreest/varia/internal/colour"
)

// Entry is a named colour.
type Entry struct {
	Name   string
	Colour colour.Colour
}

// Sink receives colours the user adds to their palette.
type Sink interface {
	Add(entries ...Entry) error
}

// List is an in-memory, ordered sink.
type List struct {
	entries []Entry
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Add appends entries to the list.
func (l *List) Add(entries ...Entry) error {
	l.entries = append(l.entries, entries...)
	return nil
}

// Entries returns the colours added so far.
func (l *List) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// All returns an iterator over the entries.
func (l *List) All() func(func(int, Entry) bool) {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}
