// Package components provides shared UI components for the TUI.
package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/unichar/internal/ucd"
)

// CellWidth is the number of terminal columns one grid cell occupies.
const CellWidth = 2

// Cell returns the printable form of a record for the grid. Marks are drawn
// on a dotted circle; controls, formats and other invisible characters
// become a middle dot.
func Cell(rec ucd.Record) string {
	r := rec.Code
	switch {
	case rec.Category.Group() == ucd.GroupMark:
		return runewidth.FillRight("◌"+string(r), CellWidth)
	case rec.Category.Group() == ucd.GroupOther, !unicode.IsGraphic(r):
		return runewidth.FillRight("·", CellWidth)
	case rec.Category.Group() == ucd.GroupSeparator:
		return strings.Repeat(" ", CellWidth)
	}

	s := string(r)
	if runewidth.StringWidth(s) > CellWidth {
		s = runewidth.Truncate(s, CellWidth, "")
	}
	return runewidth.FillRight(s, CellWidth)
}

// Grid lays records out in rows of Columns cells.
type Grid struct {
	Columns  int // cells per row
	Rows     int // visible rows
	Cursor   int // index of the highlighted record
	FirstRow int // first visible row
}

// Move shifts the cursor by delta records, clamped to [0, n), and scrolls so
// the cursor stays visible.
func (g *Grid) Move(delta, n int) {
	if n == 0 {
		g.Cursor, g.FirstRow = 0, 0
		return
	}
	g.Cursor += delta
	if g.Cursor < 0 {
		g.Cursor = 0
	}
	if g.Cursor >= n {
		g.Cursor = n - 1
	}
	g.scroll()
}

// Reset moves the cursor back to the first record.
func (g *Grid) Reset() {
	g.Cursor, g.FirstRow = 0, 0
}

func (g *Grid) scroll() {
	cols := max(g.Columns, 1)
	rows := max(g.Rows, 1)
	row := g.Cursor / cols
	if row < g.FirstRow {
		g.FirstRow = row
	}
	if row >= g.FirstRow+rows {
		g.FirstRow = row - rows + 1
	}
}

// Render draws the visible part of the grid.
func (g Grid) Render(records []ucd.Record, cell, cursor lipgloss.Style) string {
	cols := max(g.Columns, 1)
	rows := max(g.Rows, 1)

	var lines []string
	start := g.FirstRow * cols
	for row := 0; row < rows; row++ {
		lo := start + row*cols
		if lo >= len(records) {
			break
		}
		hi := min(lo+cols, len(records))

		var b strings.Builder
		for i := lo; i < hi; i++ {
			style := cell
			if i == g.Cursor {
				style = cursor
			}
			b.WriteString(style.Render(Cell(records[i])))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// TotalRows returns how many rows n records fill.
func (g Grid) TotalRows(n int) int {
	cols := max(g.Columns, 1)
	return (n + cols - 1) / cols
}
