package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Snapshot is the persisted form of a document:
//
//	{"lines": [[[character, [flags...], size, [r,g,b]], ...], ...]}
type Snapshot struct {
	Lines [][]Tuple `json:"lines"`
}

// Tuple is one serialized character.
type Tuple struct {
	Char  string
	Flags []string
	Size  int
	Color [3]int
}

func (t Tuple) MarshalJSON() ([]byte, error) {
	flags := t.Flags
	if flags == nil {
		flags = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]any{t.Char, flags, t.Size, t.Color}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (t *Tuple) UnmarshalJSON(b []byte) error {
	pt, reason := parseTuple(b)
	if reason != "" {
		return &SnapshotError{Line: -1, Char: -1, Reason: reason}
	}
	*t = pt
	return nil
}

func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var raw struct {
		Lines *[][]json.RawMessage `json:"lines"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return &SnapshotError{Line: -1, Char: -1, Reason: err.Error()}
	}
	if raw.Lines == nil {
		return &SnapshotError{Line: -1, Char: -1, Reason: `missing "lines"`}
	}
	lines := make([][]Tuple, len(*raw.Lines))
	for i, rl := range *raw.Lines {
		if rl == nil {
			return &SnapshotError{Line: i, Char: -1, Reason: "line is not an array"}
		}
		lines[i] = make([]Tuple, len(rl))
		for j, rt := range rl {
			t, reason := parseTuple(rt)
			if reason != "" {
				return &SnapshotError{Line: i, Char: j, Reason: reason}
			}
			lines[i][j] = t
		}
	}
	s.Lines = lines
	return nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

func integral(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32
}

// parseTuple decodes the shape of a tuple. It returns a non-empty reason
// when b is malformed.
func parseTuple(b []byte) (Tuple, string) {
	var fields []json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return Tuple{}, "character entry is not an array"
	}
	if len(fields) < 4 {
		return Tuple{}, fmt.Sprintf("character entry has %d fields, want 4", len(fields))
	}

	var t Tuple
	if isNull(fields[0]) || json.Unmarshal(fields[0], &t.Char) != nil {
		return Tuple{}, "character is not a string"
	}
	if isNull(fields[1]) || json.Unmarshal(fields[1], &t.Flags) != nil {
		return Tuple{}, "style flags are not a list of strings"
	}
	var size float64
	if isNull(fields[2]) || json.Unmarshal(fields[2], &size) != nil || !integral(size) {
		return Tuple{}, "size is not an integer"
	}
	t.Size = int(size)
	var color []float64
	if isNull(fields[3]) || json.Unmarshal(fields[3], &color) != nil || len(color) != 3 {
		return Tuple{}, "color is not an [r,g,b] triple"
	}
	for k, c := range color {
		if !integral(c) {
			return Tuple{}, "color component is not an integer"
		}
		t.Color[k] = int(c)
	}
	if reason := t.invalid(); reason != "" {
		return Tuple{}, reason
	}
	return t, ""
}

// invalid checks field values. It returns the reason t is unusable, or "".
func (t Tuple) invalid() string {
	if utf8.RuneCountInString(t.Char) != 1 || !utf8.ValidString(t.Char) {
		return fmt.Sprintf("character %q is not a single scalar", t.Char)
	}
	if t.Size <= 0 {
		return fmt.Sprintf("size %d is not positive", t.Size)
	}
	for _, c := range t.Color {
		if c < 0 || c > 255 {
			return fmt.Sprintf("color component %d outside [0,255]", c)
		}
	}
	return ""
}

func (t Tuple) char() Char {
	r, _ := utf8.DecodeRuneInString(t.Char)
	return Char{
		Rune:  r,
		Style: ParseStyle(t.Flags...),
		Size:  t.Size,
		Color: RGB{R: uint8(t.Color[0]), G: uint8(t.Color[1]), B: uint8(t.Color[2])},
	}
}

func tupleOf(c Char) Tuple {
	return Tuple{
		Char:  string(c.Rune),
		Flags: c.Style.Flags(),
		Size:  c.Size,
		Color: [3]int{int(c.Color.R), int(c.Color.G), int(c.Color.B)},
	}
}

// Serialize captures the characters of d. Cursor, scroll and active
// formatting are not part of a snapshot.
func Serialize(d *Document) Snapshot {
	s := Snapshot{Lines: make([][]Tuple, len(d.lines))}
	for i, l := range d.lines {
		s.Lines[i] = make([]Tuple, 0, l.Len())
		for _, c := range l.chars {
			s.Lines[i] = append(s.Lines[i], tupleOf(c))
		}
	}
	return s
}

func linesOf(s Snapshot) ([]Line, error) {
	lines := make([]Line, 0, max(len(s.Lines), 1))
	for i, sl := range s.Lines {
		chars := make([]Char, 0, len(sl))
		for j, t := range sl {
			if reason := t.invalid(); reason != "" {
				return nil, &SnapshotError{Line: i, Char: j, Reason: reason}
			}
			chars = append(chars, t.char())
		}
		lines = append(lines, Line{chars: chars})
	}
	if len(lines) == 0 {
		lines = append(lines, Line{})
	}
	return lines, nil
}

// Deserialize builds a new document from s, measured with m.
func Deserialize(s Snapshot, m Metrics, opts ...Option) (*Document, error) {
	lines, err := linesOf(s)
	if err != nil {
		return nil, err
	}
	d := New(m, opts...)
	d.replace(lines)
	return d, nil
}

// replace swaps in lines and resets the cursor to the end of the first line
// and the scroll offset to the top.
func (d *Document) replace(lines []Line) {
	d.lines = lines
	d.cursor = Pos{Line: 0, Char: lines[0].Len()}
	d.scroll = 0
}

// Restore replaces the content of d with s. Active formatting, geometry and
// metrics are kept. On error d is unchanged.
func (d *Document) Restore(s Snapshot) error {
	lines, err := linesOf(s)
	if err != nil {
		return err
	}
	d.replace(lines)
	return nil
}

func (d *Document) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Serialize(d)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Load reads a whole snapshot from r and replaces the document's content
// with it. On error d is unchanged.
func (d *Document) Load(r io.Reader) error {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		var se *SnapshotError
		if errors.As(err, &se) {
			return err
		}
		return &SnapshotError{Line: -1, Char: -1, Reason: err.Error()}
	}
	if _, err := dec.Token(); err != io.EOF {
		return &SnapshotError{Line: -1, Char: -1, Reason: "trailing data after snapshot"}
	}
	return d.Restore(s)
}

// SaveFile writes the document to path through a temporary file in the
// same directory, so path holds either the old or the new content.
func (d *Document) SaveFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := d.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

func (d *Document) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := d.Load(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
