package document

// Metrics reports rendered glyph sizes. Implementations must be pure: the
// same arguments always give the same answer.
type Metrics interface {
	// Measure returns the advance width and height of r drawn with style at
	// size points.
	Measure(r rune, style Style, size int) (width, height int)
	// LineHeight returns the vertical pitch of a line of the given size.
	LineHeight(size int) int
}

// halfWidth measures glyphs as half as wide as they are tall. Used when a
// document is created without metrics.
type halfWidth struct{}

func (halfWidth) Measure(_ rune, _ Style, size int) (int, int) { return size / 2, size }
func (halfWidth) LineHeight(size int) int                      { return size }

func (d *Document) measure(c Char) (int, int) {
	if d.metrics == nil {
		return halfWidth{}.Measure(c.Rune, c.Style, c.Size)
	}
	return d.metrics.Measure(c.Rune, c.Style, c.Size)
}

func (d *Document) lineHeight(size int) int {
	if d.metrics == nil {
		return halfWidth{}.LineHeight(size)
	}
	return max(d.metrics.LineHeight(size), 1)
}

// linePitch is the vertical distance from the top of line i to the next.
func (d *Document) linePitch(i int) int {
	if d.pitch == PitchTallest {
		tallest := 0
		for _, c := range d.lines[i].chars {
			tallest = max(tallest, d.lineHeight(c.Size))
		}
		if tallest > 0 {
			return tallest
		}
	}
	return d.lineHeight(d.size)
}

// lineTop is the unscrolled offset of line i below the text origin.
func (d *Document) lineTop(i int) int {
	if d.pitch == PitchActive {
		return i * d.lineHeight(d.size)
	}
	top := 0
	for j := 0; j < i; j++ {
		top += d.linePitch(j)
	}
	return top
}

// lineAt returns the logical line whose band contains relY, clamped to the
// first and last lines.
func (d *Document) lineAt(relY int) int {
	if relY < 0 {
		return 0
	}
	if d.pitch == PitchActive {
		return min(relY/d.lineHeight(d.size), len(d.lines)-1)
	}
	top := 0
	for i := range d.lines {
		top += d.linePitch(i)
		if relY < top {
			return i
		}
	}
	return len(d.lines) - 1
}

// CoordinateToCursor maps a pointer position on the canvas to the nearest
// cursor position. A pointer lands before a glyph while it is left of the
// glyph's horizontal midpoint.
func (d *Document) CoordinateToCursor(x, y int) Pos {
	o := d.geom.textOrigin()
	line := d.lineAt(y - o.Y - d.scroll)

	relX := x - o.X
	cum := 0
	idx := 0
	for _, c := range d.lines[line].chars {
		w, _ := d.measure(c)
		if 2*cum+w >= 2*relX {
			break
		}
		cum += w
		idx++
	}
	return Pos{Line: line, Char: idx}
}

// CursorToCoordinate returns the unscrolled canvas position of the top of
// a cursor placed at p. p is clamped into the document first.
func (d *Document) CursorToCoordinate(p Pos) Point {
	p = d.clampPos(p)
	o := d.geom.textOrigin()
	x := o.X
	for _, c := range d.lines[p.Line].chars[:p.Char] {
		w, _ := d.measure(c)
		x += w
	}
	return Point{X: x, Y: o.Y + d.lineTop(p.Line)}
}

// CursorPoint is the on-screen position of the cursor, scroll applied.
func (d *Document) CursorPoint() Point {
	p := d.CursorToCoordinate(d.cursor)
	p.Y += d.scroll
	return p
}
