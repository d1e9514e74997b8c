package keycodes

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Radisovik/goword/document"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		cmd    document.Command
		action Action
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), document.InsertChar{Rune: 'é'}, None},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), document.InsertChar{Rune: 'A'}, None},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), nil, None},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), document.Enter{}, None},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), document.Backspace{}, None},
		{"delete-backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), document.Backspace{}, None},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), document.InsertText{Text: "    "}, None},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), document.MoveCursor{Dir: document.Left}, None},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), document.MoveCursor{Dir: document.End}, None},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), document.Scroll{Delta: 30}, None},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), document.Scroll{Delta: -30}, None},
		{"bold", tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl), document.ToggleStyle{Flag: document.Bold}, None},
		{"italic", tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl), document.ToggleStyle{Flag: document.Italic}, None},
		{"underline", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), document.ToggleStyle{Flag: document.Underline}, None},
		{"strike", tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModCtrl), document.ToggleStyle{Flag: document.Strikethrough}, None},
		{"size up", tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), document.SetSize{Delta: 1}, None},
		{"size down", tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), document.SetSize{Delta: -1}, None},
		{"color", tcell.NewEventKey(tcell.KeyF4, 0, tcell.ModNone), nil, NextColor},
		{"save", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), nil, Save},
		{"open", tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModCtrl), nil, Load},
		{"quit", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), nil, Quit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), nil, Quit},
		{"unbound", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), nil, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, action := Translate(tt.ev, 3)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	cmd, action := Translate(tcell.NewEventMouse(7, 4, tcell.Button1, tcell.ModNone), 2)
	assert.Equal(t, document.PointerToCursor{X: 7, Y: 4}, cmd)
	assert.Equal(t, None, action)

	cmd, _ = Translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone), 2)
	assert.Equal(t, document.Scroll{Delta: 2}, cmd)

	cmd, _ = Translate(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone), 2)
	assert.Equal(t, document.Scroll{Delta: -2}, cmd)

	cmd, _ = Translate(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone), 2)
	assert.Nil(t, cmd)
}

func TestTranslateOtherEvents(t *testing.T) {
	cmd, action := Translate(tcell.NewEventResize(80, 24), 1)
	assert.Nil(t, cmd)
	assert.Equal(t, None, action)
}

func TestTranslatedCommandsApply(t *testing.T) {
	d := document.New(nil)
	for _, r := range "hi" {
		cmd, _ := Translate(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), 1)
		assert.NoError(t, d.Apply(cmd))
	}
	cmd, _ := Translate(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), 1)
	assert.NoError(t, d.Apply(cmd))
	assert.Equal(t, "h", d.Text())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "save", Save.String())
	assert.Equal(t, "none", None.String())
}
