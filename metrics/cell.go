package metrics

import (
	"github.com/mattn/go-runewidth"

	"github.com/Radisovik/goword/document"
)

// Cell measures in terminal cells: East Asian wide runes take two columns,
// everything else one, and every line is one row whatever its size.
type Cell struct{}

func (Cell) Measure(r rune, _ document.Style, _ int) (int, int) {
	return max(runewidth.RuneWidth(r), 1), 1
}

func (Cell) LineHeight(int) int {
	return 1
}

// Fixed gives every glyph the same advance and makes lines as tall as
// their size.
type Fixed struct {
	Advance int
}

func (f Fixed) Measure(_ rune, _ document.Style, size int) (int, int) {
	return f.Advance, size
}

func (Fixed) LineHeight(size int) int {
	return size
}
