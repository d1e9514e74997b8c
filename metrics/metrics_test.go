package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radisovik/goword/document"
)

func TestFontMeasure(t *testing.T) {
	f, err := NewFont()
	require.NoError(t, err)

	wi, hi := f.Measure('i', 0, 20)
	wW, hW := f.Measure('W', 0, 20)
	assert.Positive(t, wi)
	assert.Less(t, wi, wW)
	assert.Equal(t, hi, hW)
	assert.Equal(t, f.LineHeight(20), hi)
	assert.GreaterOrEqual(t, f.LineHeight(20), 20)

	big, _ := f.Measure('W', 0, 40)
	assert.Greater(t, big, wW)
	assert.Greater(t, f.LineHeight(40), f.LineHeight(20))

	bold, _ := f.Measure('W', document.Bold, 20)
	assert.GreaterOrEqual(t, bold, wW)

	under, _ := f.Measure('W', document.Underline|document.Strikethrough, 20)
	assert.Equal(t, wW, under, "decorations do not change advance")

	w, _ := f.Measure('\U000F0000', 0, 20)
	assert.GreaterOrEqual(t, w, 0)

	zero, _ := f.Measure('a', 0, 0)
	assert.GreaterOrEqual(t, zero, 0)
}

func TestFontDrivesDocument(t *testing.T) {
	f, err := NewFont()
	require.NoError(t, err)

	d := document.New(NewCache(f), document.WithGeometry(document.Geometry{Width: 400, Height: 300}))
	require.NoError(t, d.InsertText("Hello"))

	w, _ := f.Measure('H', 0, document.DefaultSize)
	assert.Equal(t, document.Pos{Line: 0, Char: 1}, d.CoordinateToCursor(w, 1))
	assert.Equal(t, w, d.CursorToCoordinate(document.Pos{Line: 0, Char: 1}).X)
}

func TestCell(t *testing.T) {
	c := Cell{}
	w, h := c.Measure('a', document.Bold, 40)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	w, _ = c.Measure('世', 0, 20)
	assert.Equal(t, 2, w)

	w, _ = c.Measure('\u0301', 0, 20)
	assert.Equal(t, 1, w)

	assert.Equal(t, 1, c.LineHeight(72))
}

func TestFixed(t *testing.T) {
	f := Fixed{Advance: 7}
	w, h := f.Measure('x', 0, 30)
	assert.Equal(t, 7, w)
	assert.Equal(t, 30, h)
	assert.Equal(t, 30, f.LineHeight(30))
}

type counting struct {
	measures int
	lines    int
}

func (c *counting) Measure(r rune, s document.Style, size int) (int, int) {
	c.measures++
	return int(r) + int(s) + size, size
}

func (c *counting) LineHeight(size int) int {
	c.lines++
	return size
}

func TestCache(t *testing.T) {
	inner := &counting{}
	c := NewCache(inner)

	w1, _ := c.Measure('a', 0, 20)
	w2, _ := c.Measure('a', 0, 20)
	assert.Equal(t, w1, w2)
	assert.Equal(t, 1, inner.measures)

	// every attribute that affects width is part of the key
	wb, _ := c.Measure('a', document.Bold, 20)
	ws, _ := c.Measure('a', 0, 21)
	wr, _ := c.Measure('b', 0, 20)
	assert.NotEqual(t, w1, wb)
	assert.NotEqual(t, w1, ws)
	assert.NotEqual(t, w1, wr)
	assert.Equal(t, 4, inner.measures)
	assert.Equal(t, 4, c.Len())

	assert.Equal(t, 20, c.LineHeight(20))
	assert.Equal(t, 20, c.LineHeight(20))
	assert.Equal(t, 1, inner.lines)
}
