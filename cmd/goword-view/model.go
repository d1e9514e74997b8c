package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Radisovik/goword/document"
	"github.com/Radisovik/goword/metrics"
)

type cell struct {
	r  rune
	st tcell.Style
}

// docModel is a views.CellModel over a laid out document: one terminal
// cell per text column.
type docModel struct {
	cells  map[[2]int]cell
	width  int
	height int
	lines  int

	curX, curY int
}

func load(path string, width int) (*docModel, error) {
	d := document.New(metrics.NewCache(metrics.Cell{}), document.WithGeometry(document.Geometry{
		Width:  max(width, 1),
		Height: math.MaxInt32,
	}))
	if err := d.LoadFile(path); err != nil {
		return nil, err
	}
	return newDocModel(d), nil
}

func newDocModel(d *document.Document) *docModel {
	m := &docModel{
		cells: map[[2]int]cell{},
		width: d.Geometry().Width,
		lines: d.LineCount(),
	}
	frame := d.Layout()
	for _, g := range frame.Glyphs {
		m.cells[[2]int{g.X, g.Y}] = cell{r: g.Char.Rune, st: g.Char.TcellStyle()}
		m.height = max(m.height, g.Y+g.Height)
	}
	m.height = max(m.height, frame.Cursor.Y+frame.CursorHeight, 1)
	return m
}

func (m *docModel) GetCell(x, y int) (rune, tcell.Style, []rune, int) {
	c, ok := m.cells[[2]int{x, y}]
	if !ok {
		return ' ', tcell.StyleDefault, nil, 1
	}
	return c.r, c.st, nil, 1
}

func (m *docModel) GetBounds() (int, int) {
	return m.width, m.height
}

func (m *docModel) SetCursor(x, y int) {
	m.curX = min(max(x, 0), m.width-1)
	m.curY = min(max(y, 0), m.height-1)
}

// GetCursor reports a hidden, disabled cursor so the view scrolls instead.
func (m *docModel) GetCursor() (int, int, bool, bool) {
	return m.curX, m.curY, false, false
}

func (m *docModel) MoveCursor(offx, offy int) {
	m.SetCursor(m.curX+offx, m.curY+offy)
}
