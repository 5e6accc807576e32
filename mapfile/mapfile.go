// Package mapfile reads tile maps from YAML documents and renders search
// results back onto them.
//
// A document looks like:
//
//	name: demo
//	diagonal: true
//	solid: "#"
//	start: {x: 0, y: 0}
//	end:   {x: 4, y: 2}
//	rows:
//	  - "....."
//	  - ".###."
//	  - "....."
//
// Solid defaults to "#". Start, end and diagonal are hints for drivers such as
// cmd/tilepath; the grid itself only needs rows.
package mapfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Sentinel errors for map documents.
var (
	// ErrNoRows indicates a document without any rows.
	ErrNoRows = errors.New("mapfile: document has no rows")
	// ErrBadSolidRune indicates a solid marker that is not exactly one rune.
	ErrBadSolidRune = errors.New("mapfile: solid marker must be a single character")
)

// DefaultSolid marks solid tiles when a document does not set one.
const DefaultSolid = "#"

// Point is a YAML-friendly coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Position converts p to a tilemap.Position.
func (p Point) Position() tilemap.Position {
	return tilemap.Pos(p.X, p.Y)
}

// Map is one decoded document.
type Map struct {
	Name     string   `yaml:"name"`
	Diagonal bool     `yaml:"diagonal"`
	Solid    string   `yaml:"solid"`
	Start    *Point   `yaml:"start,omitempty"`
	End      *Point   `yaml:"end,omitempty"`
	Rows     []string `yaml:"rows"`
}

// Decode reads one YAML document from r and checks it can describe a grid.
func Decode(r io.Reader) (*Map, error) {
	var m Map
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("mapfile: decode: %w", err)
	}
	if m.Solid == "" {
		m.Solid = DefaultSolid
	}
	if utf8.RuneCountInString(m.Solid) != 1 {
		return nil, fmt.Errorf("%w: %q", ErrBadSolidRune, m.Solid)
	}
	if len(m.Rows) == 0 {
		return nil, ErrNoRows
	}

	return &m, nil
}

// Load opens path and decodes it.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Grid builds the registry described by the rows.
func (m *Map) Grid() (*tilemap.Grid, error) {
	solid, _ := utf8.DecodeRuneInString(m.Solid)

	return tilemap.FromRows(m.Rows, solid)
}

// Encode writes m as YAML.
func (m *Map) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("mapfile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("mapfile: encode: %w", err)
	}

	return nil
}

// Overlay renders g with the route drawn on it: 'S' start, 'E' end, '*' for
// every other path cell, '#' solid, '.' walkable, '?' cells without a tile.
func Overlay(g *tilemap.Grid, start, end tilemap.Position, path []tilemap.Position) string {
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	cells := make([][]byte, len(lines))
	for y, line := range lines {
		cells[y] = []byte(line)
	}
	mark := func(p tilemap.Position, c byte) {
		if g.InBounds(p.X, p.Y) {
			cells[p.Y][p.X] = c
		}
	}
	for _, p := range path {
		mark(p, '*')
	}
	mark(start, 'S')
	mark(end, 'E')

	var sb strings.Builder
	for _, row := range cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
