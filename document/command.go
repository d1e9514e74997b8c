package document

import "fmt"

// Command is one edit request from the input loop. Commands are applied in
// arrival order with Document.Apply.
type Command interface {
	apply(d *Document) error
}

type InsertChar struct{ Rune rune }

type InsertText struct{ Text string }

type Enter struct{}

type Backspace struct{}

type MoveCursorTo struct{ Pos Pos }

type MoveCursor struct{ Dir Direction }

type ToggleStyle struct{ Flag Style }

// SetSize changes the active size by Delta points.
type SetSize struct{ Delta int }

type SetColor struct{ Color RGB }

// Scroll moves the view by Delta pixels.
type Scroll struct{ Delta int }

type PointerToCursor struct{ X, Y int }

func (c InsertChar) apply(d *Document) error      { return d.InsertChar(c.Rune) }
func (c InsertText) apply(d *Document) error      { return d.InsertText(c.Text) }
func (Enter) apply(d *Document) error             { return d.Enter() }
func (Backspace) apply(d *Document) error         { return d.Backspace() }
func (c MoveCursorTo) apply(d *Document) error    { d.MoveCursorTo(c.Pos); return nil }
func (c MoveCursor) apply(d *Document) error      { d.MoveCursor(c.Dir); return nil }
func (c ToggleStyle) apply(d *Document) error     { d.ToggleStyle(c.Flag); return nil }
func (c SetSize) apply(d *Document) error         { d.SetSize(c.Delta); return nil }
func (c SetColor) apply(d *Document) error        { d.SetColor(c.Color); return nil }
func (c Scroll) apply(d *Document) error          { d.Scroll(c.Delta); return nil }
func (c PointerToCursor) apply(d *Document) error { d.PointerToCursor(c.X, c.Y); return nil }

// Apply runs cmd against the document. A failing command leaves the cursor
// within bounds.
func (d *Document) Apply(cmd Command) error {
	if cmd == nil {
		return nil
	}
	if err := cmd.apply(d); err != nil {
		d.cursor = d.clampPos(d.cursor)
		return fmt.Errorf("%T: %w", cmd, err)
	}
	return nil
}
