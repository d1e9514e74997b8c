// Package keycodes turns terminal input events into document commands.
package keycodes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Radisovik/goword/document"
)

// Action is a request for the front end rather than for the document.
type Action int

const (
	None Action = iota
	Save
	Load
	Quit
	NextColor
)

func (a Action) String() string {
	switch a {
	case Save:
		return "save"
	case Load:
		return "load"
	case Quit:
		return "quit"
	case NextColor:
		return "next-color"
	}
	return "none"
}

// Bindings lists the key map for the status line.
const Bindings = "^B bold  ^T italic  ^U underline  ^K strike  F2/F3 size  F4 color  ^S save  ^O open  ^Q quit"

// Translate maps one event to either a document command or a front-end
// action. scrollStep is the number of pixels one wheel notch scrolls.
// Events that mean nothing to the editor return (nil, None).
func Translate(ev tcell.Event, scrollStep int) (document.Command, Action) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev, scrollStep)
	case *tcell.EventMouse:
		return translateMouse(ev, scrollStep), None
	}
	return nil, None
}

func translateKey(ev *tcell.EventKey, scrollStep int) (document.Command, Action) {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return nil, None
		}
		return document.InsertChar{Rune: ev.Rune()}, None
	case tcell.KeyEnter:
		return document.Enter{}, None
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return document.Backspace{}, None
	case tcell.KeyTab:
		return document.InsertText{Text: "    "}, None

	case tcell.KeyLeft:
		return document.MoveCursor{Dir: document.Left}, None
	case tcell.KeyRight:
		return document.MoveCursor{Dir: document.Right}, None
	case tcell.KeyUp:
		return document.MoveCursor{Dir: document.Up}, None
	case tcell.KeyDown:
		return document.MoveCursor{Dir: document.Down}, None
	case tcell.KeyHome:
		return document.MoveCursor{Dir: document.Home}, None
	case tcell.KeyEnd:
		return document.MoveCursor{Dir: document.End}, None
	case tcell.KeyPgUp:
		return document.Scroll{Delta: 10 * scrollStep}, None
	case tcell.KeyPgDn:
		return document.Scroll{Delta: -10 * scrollStep}, None

	case tcell.KeyCtrlB:
		return document.ToggleStyle{Flag: document.Bold}, None
	case tcell.KeyCtrlT:
		return document.ToggleStyle{Flag: document.Italic}, None
	case tcell.KeyCtrlU:
		return document.ToggleStyle{Flag: document.Underline}, None
	case tcell.KeyCtrlK:
		return document.ToggleStyle{Flag: document.Strikethrough}, None
	case tcell.KeyF2:
		return document.SetSize{Delta: 1}, None
	case tcell.KeyF3:
		return document.SetSize{Delta: -1}, None

	case tcell.KeyF4:
		return nil, NextColor
	case tcell.KeyCtrlS:
		return nil, Save
	case tcell.KeyCtrlO:
		return nil, Load
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		return nil, Quit
	}
	return nil, None
}

func translateMouse(ev *tcell.EventMouse, scrollStep int) document.Command {
	x, y := ev.Position()
	b := ev.Buttons()
	switch {
	case b&tcell.Button1 != 0:
		return document.PointerToCursor{X: x, Y: y}
	case b&tcell.WheelUp != 0:
		return document.Scroll{Delta: scrollStep}
	case b&tcell.WheelDown != 0:
		return document.Scroll{Delta: -scrollStep}
	}
	return nil
}
