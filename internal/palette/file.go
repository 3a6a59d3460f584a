package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/variation"
)

// Format is an on-disk palette format.
type Format string

const (
	FormatGPL  Format = "gpl"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from the file extension. Anything other
// than .json is written as a GIMP palette.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatGPL
}

// FileSink appends colours to a palette file.
type FileSink struct {
	path   string
	format Format
	name   string
}

// NewFileSink creates a sink writing to path in the format implied by its extension.
func NewFileSink(path string) *FileSink {
	return &FileSink{
		path:   path,
		format: FormatForPath(path),
		name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}
}

// Path returns the palette file location.
func (f *FileSink) Path() string {
	return f.path
}

// Add appends entries to the palette file, creating it if necessary.
func (f *FileSink) Add(entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	switch f.format {
	case FormatJSON:
		return f.addJSON(entries)
	default:
		return f.addGPL(entries)
	}
}

func (f *FileSink) addGPL(entries []Entry) error {
	_, statErr := os.Stat(f.path)
	isNew := errors.Is(statErr, os.ErrNotExist)

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) // #nosec G302 G304 - user-selected palette file
	if err != nil {
		return fmt.Errorf("failed to open palette: %w", err)
	}

	var buf bytes.Buffer
	if isNew {
		fmt.Fprintf(&buf, "GIMP Palette\nName: %s\nColumns: %d\n#\n", f.name, variation.Slots)
	}
	for _, e := range entries {
		rgb := e.Colour.RGB()
		fmt.Fprintf(&buf, "%3d %3d %3d\t%s\n", rgb.R, rgb.G, rgb.B, e.Name)
	}

	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write palette: %w", err)
	}
	return file.Close()
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Name string     `json:"name,omitempty"`
	Hex  string     `json:"hex"`
	RGB  colour.RGB `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts entries to the JSON palette document.
func ToJSON(entries []Entry) PaletteJSON {
	doc := PaletteJSON{Colors: make([]ColorJSON, 0, len(entries))}
	for _, e := range entries {
		rgb := e.Colour.RGB()
		doc.Colors = append(doc.Colors, ColorJSON{Name: e.Name, Hex: rgb.Hex(), RGB: rgb})
	}
	doc.Count = len(doc.Colors)
	return doc
}

func (f *FileSink) addJSON(entries []Entry) error {
	var doc PaletteJSON
	data, err := os.ReadFile(f.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse palette %s: %w", f.path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to read palette: %w", err)
	}

	doc.Colors = append(doc.Colors, ToJSON(entries).Colors...)
	doc.Count = len(doc.Colors)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	return writeFileAtomic(f.path, append(out, '\n'))
}

// writeFileAtomic replaces path with data through a temporary file in the
// same directory, so an interrupted write leaves the old palette intact.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".palette-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary palette: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write palette: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil { // #nosec G302 - palette files are meant to be shared
		tmp.Close()
		return fmt.Errorf("failed to set palette permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write palette: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace palette: %w", err)
	}
	return nil
}
