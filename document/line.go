package document

import (
	"slices"
	"strings"
)

// Line is an ordered run of characters. The zero value is an empty line.
type Line struct {
	chars []Char
}

func NewLine(chars ...Char) Line {
	return Line{chars: slices.Clone(chars)}
}

func (l Line) Len() int {
	return len(l.chars)
}

func (l Line) At(i int) Char {
	return l.chars[i]
}

// Chars returns a copy of the line's characters.
func (l Line) Chars() []Char {
	return slices.Clone(l.chars)
}

func (l Line) String() string {
	var sb strings.Builder
	for _, c := range l.chars {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// InsertAt inserts ch before position index. index may equal Len.
func (l *Line) InsertAt(index int, ch Char) error {
	if index < 0 || index > len(l.chars) {
		return &IndexError{Op: "insert", Index: index, Length: len(l.chars)}
	}
	l.chars = slices.Insert(l.chars, index, ch)
	return nil
}

func (l *Line) RemoveAt(index int) error {
	if index < 0 || index >= len(l.chars) {
		return &IndexError{Op: "remove", Index: index, Length: len(l.chars)}
	}
	l.chars = slices.Delete(l.chars, index, index+1)
	return nil
}

// SplitAt returns [0,index) and [index,Len) as two independent lines.
func (l Line) SplitAt(index int) (Line, Line, error) {
	if index < 0 || index > len(l.chars) {
		return Line{}, Line{}, &IndexError{Op: "split", Index: index, Length: len(l.chars)}
	}
	left := Line{chars: slices.Clone(l.chars[:index])}
	right := Line{chars: slices.Clone(l.chars[index:])}
	return left, right, nil
}

func (l *Line) Append(other Line) {
	l.chars = append(l.chars, other.chars...)
}

func (l Line) equal(o Line) bool {
	return slices.Equal(l.chars, o.chars)
}
