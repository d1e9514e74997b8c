// Package metrics provides glyph measurement for document layout and hit
// testing: pixel metrics from the Go fonts, terminal cell metrics, and a
// uniform-width oracle.
package metrics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Radisovik/goword/document"
)

// variant indexes the font files by bold and italic bits.
type variant uint8

func variantOf(s document.Style) variant {
	var v variant
	if s.Has(document.Bold) {
		v |= 1
	}
	if s.Has(document.Italic) {
		v |= 2
	}
	return v
}

type faceKey struct {
	v    variant
	size int
}

// Font measures glyphs in pixels with the Go font family at 72 DPI, so a
// size in points is a size in pixels. Underline and strikethrough are drawn
// over the glyph and do not change its metrics.
type Font struct {
	mu    sync.Mutex
	fonts [4]*opentype.Font
	faces map[faceKey]font.Face
}

func NewFont() (*Font, error) {
	f := &Font{faces: map[faceKey]font.Face{}}
	for v, ttf := range [4][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		parsed, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse go font variant %d: %w", v, err)
		}
		f.fonts[v] = parsed
	}
	return f, nil
}

func (f *Font) face(v variant, size int) font.Face {
	k := faceKey{v: v, size: size}
	if face, ok := f.faces[k]; ok {
		return face
	}
	face, err := opentype.NewFace(f.fonts[v], &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil { // only on invalid options, which size > 0 rules out
		panic(err)
	}
	f.faces[k] = face
	return face
}

func lineHeight(m font.Metrics) fixed.Int26_6 {
	return max(m.Ascent+m.Descent, m.Height)
}

func (f *Font) Measure(r rune, style document.Style, size int) (int, int) {
	size = max(size, 1)
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.face(variantOf(style), size)
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		adv, _ = face.GlyphAdvance('�')
	}
	return adv.Ceil(), lineHeight(face.Metrics()).Ceil()
}

func (f *Font) LineHeight(size int) int {
	size = max(size, 1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return lineHeight(f.face(0, size).Metrics()).Ceil()
}
