package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Radisovik/goword/config"
	"github.com/Radisovik/goword/document"
	"github.com/Radisovik/goword/keycodes"
	"github.com/Radisovik/goword/metrics"
)

// palette is what F4 cycles through, standing in for a color picker.
var palette = []document.RGB{
	{R: 0, G: 0, B: 0},
	{R: 200, G: 0, B: 0},
	{R: 0, G: 150, B: 0},
	{R: 0, G: 80, B: 200},
	{R: 150, G: 0, B: 150},
	{R: 200, G: 120, B: 0},
}

// app is the terminal front end: row 0 shows the active formatting, the
// last row shows status, and the rows in between are the canvas.
type app struct {
	screen tcell.Screen
	cfg    config.Config
	doc    *document.Document
	path   string
	status string
	color  int
}

func newApp(screen tcell.Screen, cfg config.Config, path string) *app {
	a := &app{screen: screen, cfg: cfg, path: path}
	opts := append(cfg.Options(document.Point{}), document.WithGeometry(a.canvas()))
	a.doc = document.New(metrics.NewCache(metrics.Cell{}), opts...)
	return a
}

// canvas is the document area of the screen, in cells.
func (a *app) canvas() document.Geometry {
	w, h := a.screen.Size()
	return document.Geometry{
		Origin: document.Point{X: 0, Y: 1},
		Width:  w,
		Height: max(h-2, 1),
	}
}

func (a *app) inCanvas(x, y int) bool {
	g := a.doc.Geometry()
	return x >= g.Origin.X && x < g.Origin.X+g.Width &&
		y >= g.Origin.Y && y < g.Origin.Y+g.Height
}

func (a *app) run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil || a.handle(ev) {
			return
		}
		a.draw()
	}
}

// handle applies one event and reports whether the editor should quit.
func (a *app) handle(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
		a.doc.SetGeometry(a.canvas())
		return false
	}
	if m, ok := ev.(*tcell.EventMouse); ok && !a.inCanvas(m.Position()) {
		return false
	}

	a.status = ""
	cmd, action := keycodes.Translate(ev, a.doc.Metrics().LineHeight(a.doc.ActiveSize()))
	if cmd != nil {
		if err := a.doc.Apply(cmd); err != nil {
			logf("Rejected %T: %v", cmd, err)
			a.status = err.Error()
		}
	}

	switch action {
	case keycodes.Save:
		if err := a.doc.SaveFile(a.path); err != nil {
			logf("Error saving %s: %v", a.path, err)
			a.status = err.Error()
		} else {
			logf("Saved %s", a.path)
			a.status = "saved " + a.path
		}
	case keycodes.Load:
		if err := a.open(); err != nil {
			a.status = err.Error()
		}
	case keycodes.NextColor:
		a.color = (a.color + 1) % len(palette)
		a.doc.SetColor(palette[a.color])
	case keycodes.Quit:
		return true
	}
	return false
}

func (a *app) open() error {
	if err := a.doc.LoadFile(a.path); err != nil {
		logf("Error loading %s: %v", a.path, err)
		return err
	}
	logf("Loaded %s: %d lines", a.path, a.doc.LineCount())
	a.status = "opened " + a.path
	return nil
}

func rgb(c document.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (a *app) draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	g := a.doc.Geometry()

	bg := tcell.StyleDefault.Background(rgb(a.cfg.CanvasColor())).Foreground(rgb(a.cfg.TextColor()))
	bar := tcell.StyleDefault.Background(rgb(a.cfg.WindowColor())).Foreground(tcell.ColorBlack)
	for y := g.Origin.Y; y < g.Origin.Y+g.Height; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, bg)
		}
	}

	frame := a.doc.Layout()
	for _, gl := range frame.Glyphs {
		if gl.Y < g.Origin.Y || gl.Y >= g.Origin.Y+g.Height {
			continue
		}
		st := gl.Char.TcellStyle().Background(rgb(a.cfg.CanvasColor()))
		s.SetContent(gl.X, gl.Y, gl.Char.Rune, nil, st)
	}

	a.drawToolbar(bar, w)
	status := a.status
	if status == "" {
		status = keycodes.Bindings
	}
	drawText(s, 0, h-1, w, bar, status)

	if c := frame.Cursor; c.Y >= g.Origin.Y && c.Y < g.Origin.Y+g.Height {
		s.SetCursorStyle(tcell.CursorStyleDefault, rgb(a.cfg.CursorColor()))
		s.ShowCursor(c.X, c.Y)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func (a *app) drawToolbar(bar tcell.Style, w int) {
	x := 0
	toggles := []struct {
		label string
		flag  document.Style
		style tcell.Style
	}{
		{" B ", document.Bold, bar.Bold(true)},
		{" I ", document.Italic, bar.Italic(true)},
		{" U ", document.Underline, bar.Underline(true)},
		{" S ", document.Strikethrough, bar.StrikeThrough(true)},
	}
	active := a.doc.ActiveStyle()
	for _, t := range toggles {
		x += drawText(a.screen, x, 0, w-x, t.style.Reverse(active.Has(t.flag)), t.label)
	}
	color := a.doc.ActiveColor()
	info := fmt.Sprintf(" size %d  color %s  %s ", a.doc.ActiveSize(), config.FormatColor(color), a.path)
	x += drawText(a.screen, x, 0, w-x, bar, info)
	if x < w {
		a.screen.SetContent(x, 0, '█', nil, bar.Foreground(rgb(color)))
		x++
	}
	for ; x < w; x++ {
		a.screen.SetContent(x, 0, ' ', nil, bar)
	}
}

// drawText writes text starting at (x, y), clipped to width cells, and
// returns the number of cells used.
func drawText(s tcell.Screen, x, y, width int, st tcell.Style, text string) int {
	n := 0
	for _, r := range text {
		if n >= width {
			break
		}
		s.SetContent(x+n, y, r, nil, st)
		n++
	}
	return n
}
