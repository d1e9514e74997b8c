package document

import "strings"

// Glyph is a character positioned on the canvas. Line and Index locate it
// in the document; X and Y are the top-left corner with scrolling applied.
type Glyph struct {
	Char   Char
	Line   int
	Index  int
	X, Y   int
	Width  int
	Height int
}

// Run is a horizontal stretch of glyphs on one visual row that share every
// attribute, ready to be drawn in one call.
type Run struct {
	Text   string
	Style  Style
	Size   int
	Color  RGB
	Line   int
	Index  int // index of the first glyph in its line
	X, Y   int
	Width  int
	Height int
}

// Frame is everything a renderer needs to draw the document once.
type Frame struct {
	Glyphs       []Glyph
	Runs         []Run
	Cursor       Point
	CursorHeight int
}

// Layout positions every character left to right. A glyph that would
// cross the right edge of the canvas starts a new visual row; this soft
// wrap never changes the lines themselves.
func (d *Document) Layout() Frame {
	o := d.geom.textOrigin()
	right := d.geom.right()

	var glyphs []Glyph
	y := o.Y + d.scroll
	for i, line := range d.lines {
		x := o.X
		for j, c := range line.chars {
			w, h := d.measure(c)
			if x+w > right && x > o.X {
				x = o.X
				y += d.lineHeight(c.Size)
			}
			glyphs = append(glyphs, Glyph{Char: c, Line: i, Index: j, X: x, Y: y, Width: w, Height: h})
			x += w
		}
		y += d.linePitch(i)
	}

	return Frame{
		Glyphs:       glyphs,
		Runs:         runsOf(glyphs),
		Cursor:       d.CursorPoint(),
		CursorHeight: d.lineHeight(d.size),
	}
}

func runsOf(glyphs []Glyph) []Run {
	var runs []Run
	var text strings.Builder
	flush := func() {
		if len(runs) > 0 {
			runs[len(runs)-1].Text = text.String()
		}
		text.Reset()
	}
	for _, g := range glyphs {
		if n := len(runs); n > 0 {
			r := &runs[n-1]
			if r.Line == g.Line && r.Y == g.Y && r.X+r.Width == g.X &&
				r.Style == g.Char.Style && r.Size == g.Char.Size && r.Color == g.Char.Color {
				text.WriteRune(g.Char.Rune)
				r.Width += g.Width
				r.Height = max(r.Height, g.Height)
				continue
			}
		}
		flush()
		runs = append(runs, Run{
			Style:  g.Char.Style,
			Size:   g.Char.Size,
			Color:  g.Char.Color,
			Line:   g.Line,
			Index:  g.Index,
			X:      g.X,
			Y:      g.Y,
			Width:  g.Width,
			Height: g.Height,
		})
		text.WriteRune(g.Char.Rune)
	}
	flush()
	return runs
}
