package document

import (
	"github.com/gdamore/tcell/v2"
)

// Style is the set of formatting toggles a character was inserted with.
type Style uint8

const (
	Bold Style = 1 << iota
	Italic
	Underline
	Strikethrough
)

// styleNames is the canonical flag order used in snapshots.
var styleNames = []struct {
	flag Style
	name string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Underline, "underline"},
	{Strikethrough, "strikethrough"},
}

func (s Style) Has(flag Style) bool {
	return s&flag == flag
}

func (s Style) Toggle(flag Style) Style {
	return s ^ flag
}

// Flags returns the names of the set flags in canonical order.
func (s Style) Flags() []string {
	flags := []string{}
	for _, sn := range styleNames {
		if s.Has(sn.flag) {
			flags = append(flags, sn.name)
		}
	}
	return flags
}

func (s Style) String() string {
	flags := s.Flags()
	if len(flags) == 0 {
		return "plain"
	}
	out := flags[0]
	for _, f := range flags[1:] {
		out += "+" + f
	}
	return out
}

// ParseStyle builds a Style from flag names. Unknown names are ignored.
func ParseStyle(names ...string) Style {
	var s Style
	for _, n := range names {
		for _, sn := range styleNames {
			if sn.name == n {
				s |= sn.flag
			}
		}
	}
	return s
}

type RGB struct {
	R, G, B uint8
}

var Black = RGB{}

// Char is a single character together with the formatting that was active
// when it was inserted. Lines hold Chars by value.
type Char struct {
	Rune  rune
	Style Style
	Size  int
	Color RGB
}

// TcellStyle maps the character's attributes onto a terminal style.
// Size has no terminal equivalent and is dropped.
func (c Char) TcellStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B))).
		Bold(c.Style.Has(Bold)).
		Italic(c.Style.Has(Italic)).
		Underline(c.Style.Has(Underline)).
		StrikeThrough(c.Style.Has(Strikethrough))
}
