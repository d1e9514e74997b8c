// Package document holds the attributed-text model of the word processor:
// lines of formatted characters, a single insertion cursor, the formatting
// applied to the next insertion, and vertical scrolling.
//
// A Document is owned by one goroutine. Every mutation goes through the
// command methods (or Apply), which keep the cursor within bounds.
package document

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	DefaultSize = 20
	MinSize     = 6
)

// Pos is a cursor position: a line index and a character index within it.
// Char may equal the line length (cursor after the last character).
type Pos struct {
	Line int
	Char int
}

type Point struct {
	X, Y int
}

// Geometry is the canvas the document is laid out on. Text starts at
// Origin offset by Padding on both axes; Width and Height are the canvas
// size including padding.
type Geometry struct {
	Origin  Point
	Width   int
	Height  int
	Padding int
}

func (g Geometry) textOrigin() Point {
	return Point{X: g.Origin.X + g.Padding, Y: g.Origin.Y + g.Padding}
}

// right is the x coordinate past which glyphs soft wrap.
func (g Geometry) right() int {
	return g.Origin.X + g.Width - g.Padding
}

// LinePitch selects how the vertical distance between logical lines is
// derived.
type LinePitch int

const (
	// PitchActive spaces every line by the active size.
	PitchActive LinePitch = iota
	// PitchTallest spaces each line by its tallest character, falling back
	// to the active size for empty lines.
	PitchTallest
)

type Option func(*Document)

func WithGeometry(g Geometry) Option {
	return func(d *Document) { d.geom = g }
}

func WithColor(c RGB) Option {
	return func(d *Document) { d.color = c }
}

func WithSize(size int) Option {
	return func(d *Document) { d.size = max(size, MinSize) }
}

func WithLinePitch(p LinePitch) Option {
	return func(d *Document) { d.pitch = p }
}

// Document is a sequence of lines, never empty, plus editing state.
type Document struct {
	lines  []Line
	cursor Pos

	style Style
	size  int
	color RGB

	scroll int

	geom    Geometry
	pitch   LinePitch
	metrics Metrics
}

// New returns an empty document measured with m.
func New(m Metrics, opts ...Option) *Document {
	d := &Document{
		lines:   []Line{{}},
		size:    DefaultSize,
		color:   Black,
		metrics: m,
		geom:    Geometry{Width: 600, Height: 800, Padding: 5},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns a copy of line i.
func (d *Document) Line(i int) Line {
	return NewLine(d.lines[i].chars...)
}

// Lines returns a copy of every line.
func (d *Document) Lines() []Line {
	out := make([]Line, len(d.lines))
	for i, l := range d.lines {
		out[i] = NewLine(l.chars...)
	}
	return out
}

// Text returns the plain text with lines joined by '\n'.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, l := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

func (d *Document) Cursor() Pos          { return d.cursor }
func (d *Document) ActiveStyle() Style   { return d.style }
func (d *Document) ActiveSize() int      { return d.size }
func (d *Document) ActiveColor() RGB     { return d.color }
func (d *Document) ScrollOffset() int    { return d.scroll }
func (d *Document) Geometry() Geometry   { return d.geom }
func (d *Document) Metrics() Metrics     { return d.metrics }
func (d *Document) LinePitch() LinePitch { return d.pitch }

// SetGeometry changes the canvas, for example after a window resize, and
// re-clamps the scroll offset against the new viewport.
func (d *Document) SetGeometry(g Geometry) {
	d.geom = g
	d.scroll = ClampScroll(d.scroll, d.viewportHeight(), d.ContentHeight())
}

// Equal reports whether both documents hold the same characters with the
// same attributes. Cursor, scroll and active formatting are not compared.
func (d *Document) Equal(o *Document) bool {
	return slices.EqualFunc(d.lines, o.lines, Line.equal)
}

func (d *Document) clampPos(p Pos) Pos {
	line := min(max(p.Line, 0), len(d.lines)-1)
	char := min(max(p.Char, 0), d.lines[line].Len())
	return Pos{Line: line, Char: char}
}

// InsertChar inserts r at the cursor with the active formatting.
// Surrogates and values outside the Unicode range are rejected.
func (d *Document) InsertChar(r rune) error {
	if !utf8.ValidRune(r) {
		return fmt.Errorf("insert %#x: %w", r, ErrInvalidRune)
	}
	ch := Char{Rune: r, Style: d.style, Size: d.size, Color: d.color}
	if err := d.lines[d.cursor.Line].InsertAt(d.cursor.Char, ch); err != nil {
		return err
	}
	d.cursor.Char++
	return nil
}

// InsertText inserts every rune of s, treating '\n' as Enter.
func (d *Document) InsertText(s string) error {
	for _, r := range s {
		var err error
		switch r {
		case '\r':
			continue
		case '\n':
			err = d.Enter()
		default:
			err = d.InsertChar(r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Enter breaks the current line at the cursor.
func (d *Document) Enter() error {
	left, right, err := d.lines[d.cursor.Line].SplitAt(d.cursor.Char)
	if err != nil {
		return err
	}
	d.lines[d.cursor.Line] = left
	d.lines = slices.Insert(d.lines, d.cursor.Line+1, right)
	d.cursor = Pos{Line: d.cursor.Line + 1, Char: 0}
	return nil
}

// Backspace removes the character before the cursor, or joins the current
// line onto the previous one when the cursor is at a line start. At (0,0)
// it does nothing.
func (d *Document) Backspace() error {
	if d.cursor.Char > 0 {
		if err := d.lines[d.cursor.Line].RemoveAt(d.cursor.Char - 1); err != nil {
			return err
		}
		d.cursor.Char--
		return nil
	}
	if d.cursor.Line == 0 {
		return nil
	}
	prev := d.cursor.Line - 1
	joint := d.lines[prev].Len()
	d.lines[prev].Append(d.lines[d.cursor.Line])
	d.lines = slices.Delete(d.lines, d.cursor.Line, d.cursor.Line+1)
	d.cursor = Pos{Line: prev, Char: joint}
	d.scroll = ClampScroll(d.scroll, d.viewportHeight(), d.ContentHeight())
	return nil
}

// MoveCursorTo places the cursor at p, clamped into the document.
func (d *Document) MoveCursorTo(p Pos) {
	d.cursor = d.clampPos(p)
}

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	Home
	End
)

// MoveCursor steps the cursor one unit in dir. Left and Right cross line
// boundaries; Up and Down keep the character index where the target line
// is long enough.
func (d *Document) MoveCursor(dir Direction) {
	c := d.cursor
	switch dir {
	case Left:
		if c.Char > 0 {
			c.Char--
		} else if c.Line > 0 {
			c.Line--
			c.Char = d.lines[c.Line].Len()
		}
	case Right:
		if c.Char < d.lines[c.Line].Len() {
			c.Char++
		} else if c.Line < len(d.lines)-1 {
			c.Line++
			c.Char = 0
		}
	case Up:
		c.Line--
	case Down:
		c.Line++
	case Home:
		c.Char = 0
	case End:
		c.Char = d.lines[c.Line].Len()
	}
	d.cursor = d.clampPos(c)
}

// ToggleStyle flips flag in the active style. Existing characters keep
// their own style.
func (d *Document) ToggleStyle(flag Style) {
	d.style = d.style.Toggle(flag)
}

// SetSize adjusts the active size by delta, never going below MinSize.
func (d *Document) SetSize(delta int) {
	d.size = max(d.size+delta, MinSize)
	d.scroll = ClampScroll(d.scroll, d.viewportHeight(), d.ContentHeight())
}

func (d *Document) SetColor(c RGB) {
	d.color = c
}

// Scroll moves the view by delta pixels; positive values scroll towards
// the top of the document.
func (d *Document) Scroll(delta int) {
	d.scroll = ClampScroll(d.scroll+delta, d.viewportHeight(), d.ContentHeight())
}

// PointerToCursor moves the cursor to the character under (x, y).
func (d *Document) PointerToCursor(x, y int) {
	d.cursor = d.CoordinateToCursor(x, y)
}

func (d *Document) viewportHeight() int {
	return d.geom.Height
}

// ContentHeight is the height of all logical lines plus top and bottom
// padding.
func (d *Document) ContentHeight() int {
	h := 2 * d.geom.Padding
	for i := range d.lines {
		h += d.linePitch(i)
	}
	return h
}

// ClampScroll limits offset to [min(0, viewport-content), 0].
func ClampScroll(offset, viewport, content int) int {
	lo := min(0, viewport-content)
	return min(max(offset, lo), 0)
}
