// goword-view shows a saved goword document read-only in a scrollable
// terminal panel.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
)

func main() {
	width := flag.Int("width", 80, "wrap column")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: goword-view [-width n] document.json")
		os.Exit(2)
	}
	path := flag.Arg(0)

	model, err := load(path, *width)
	poe(err)

	screen, err := tcell.NewScreen()
	poe(err)

	ap := views.Application{}
	ap.SetScreen(screen)

	panels := views.NewPanel()
	area := views.NewCellView()
	area.SetModel(model)
	panels.SetContent(area)

	title := views.NewText()
	title.SetText(path)
	title.SetAlignment(views.AlignMiddle)
	panels.SetTitle(title)

	status := views.NewTextBar()
	status.SetLeft(fmt.Sprintf("%d lines", model.lines), tcell.StyleDefault)
	status.SetRight("arrows scroll", tcell.StyleDefault)
	panels.SetStatus(status)

	ap.SetRootWidget(&quitter{Panel: panels, ap: &ap})
	poe(ap.Run())
}

// quitter closes the viewer on Esc or q.
type quitter struct {
	*views.Panel
	ap *views.Application
}

func (q *quitter) HandleEvent(ev tcell.Event) bool {
	if k, ok := ev.(*tcell.EventKey); ok {
		if k.Key() == tcell.KeyEscape || k.Key() == tcell.KeyCtrlQ || k.Rune() == 'q' {
			q.ap.Quit()
			return true
		}
	}
	return q.Panel.HandleEvent(ev)
}

func poe(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
