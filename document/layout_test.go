package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutSoftWrap(t *testing.T) {
	d := New(fixed{10}, WithGeometry(Geometry{Width: 50, Height: 200}))
	require.NoError(t, d.InsertText("abcdefg\nh"))

	f := d.Layout()
	require.Len(t, f.Glyphs, 8)

	type at struct{ x, y int }
	var got []at
	for _, g := range f.Glyphs {
		got = append(got, at{g.X, g.Y})
	}
	assert.Equal(t, []at{
		{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0},
		{0, 20}, {10, 20},
		{0, 40},
	}, got)

	assert.Equal(t, 2, d.LineCount(), "soft wrap keeps logical lines")
	assert.Equal(t, 0, f.Glyphs[6].Line)
	assert.Equal(t, 6, f.Glyphs[6].Index)
	assert.Equal(t, 1, f.Glyphs[7].Line)
}

func TestLayoutWideGlyphDoesNotLeaveEmptyRow(t *testing.T) {
	d := New(fixed{80}, WithGeometry(Geometry{Width: 50, Height: 200}))
	require.NoError(t, d.InsertText("ab"))

	f := d.Layout()
	require.Len(t, f.Glyphs, 2)
	assert.Equal(t, 0, f.Glyphs[0].Y)
	assert.Equal(t, 20, f.Glyphs[1].Y)
}

func TestLayoutRuns(t *testing.T) {
	d := newTestDoc()
	require.NoError(t, d.InsertText("ab"))
	d.ToggleStyle(Bold)
	require.NoError(t, d.InsertText("cd"))
	d.ToggleStyle(Bold)
	require.NoError(t, d.InsertText("e\nfg"))

	f := d.Layout()
	require.Len(t, f.Runs, 4)

	assert.Equal(t, "ab", f.Runs[0].Text)
	assert.Equal(t, Style(0), f.Runs[0].Style)
	assert.Equal(t, 20, f.Runs[0].Width)

	assert.Equal(t, "cd", f.Runs[1].Text)
	assert.Equal(t, Bold, f.Runs[1].Style)
	assert.Equal(t, 20, f.Runs[1].X)
	assert.Equal(t, 2, f.Runs[1].Index)

	assert.Equal(t, "e", f.Runs[2].Text)
	assert.Equal(t, 40, f.Runs[2].X)

	assert.Equal(t, "fg", f.Runs[3].Text)
	assert.Equal(t, 1, f.Runs[3].Line)
	assert.Equal(t, 20, f.Runs[3].Y)
}

func TestLayoutRunsSplitOnWrap(t *testing.T) {
	d := New(fixed{10}, WithGeometry(Geometry{Width: 30, Height: 200}))
	require.NoError(t, d.InsertText("abcde"))

	f := d.Layout()
	require.Len(t, f.Runs, 2)
	assert.Equal(t, "abc", f.Runs[0].Text)
	assert.Equal(t, "de", f.Runs[1].Text)
	assert.Equal(t, 20, f.Runs[1].Y)
}

func TestLayoutScrollAndCursor(t *testing.T) {
	d := New(fixed{10}, WithGeometry(Geometry{Width: 200, Height: 40, Padding: 5}))
	require.NoError(t, d.InsertText("a\nb\nc\nd"))
	d.Scroll(-30)
	require.Equal(t, -30, d.ScrollOffset())

	f := d.Layout()
	assert.Equal(t, 5-30, f.Glyphs[0].Y)
	assert.Equal(t, Point{X: 15, Y: 5 + 60 - 30}, f.Cursor)
	assert.Equal(t, DefaultSize, f.CursorHeight)
}

func TestLayoutEmpty(t *testing.T) {
	f := newTestDoc().Layout()
	assert.Empty(t, f.Glyphs)
	assert.Empty(t, f.Runs)
	assert.Equal(t, Point{}, f.Cursor)
}
