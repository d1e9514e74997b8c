package document

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrMalformedSnapshot = errors.New("malformed snapshot")
	ErrInvalidRune       = errors.New("not a unicode scalar value")
)

// IndexError reports a line buffer primitive called with a bad index.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d with length %d: %v", e.Op, e.Index, e.Length, ErrIndexOutOfRange)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// SnapshotError locates the offending entry in a snapshot. Char is -1 when
// the problem concerns a whole line or the document.
type SnapshotError struct {
	Line   int
	Char   int
	Reason string
}

func (e *SnapshotError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedSnapshot, e.Reason)
	}
	if e.Char < 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrMalformedSnapshot, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v: line %d char %d: %s", ErrMalformedSnapshot, e.Line, e.Char, e.Reason)
}

func (e *SnapshotError) Unwrap() error {
	return ErrMalformedSnapshot
}
