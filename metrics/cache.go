package metrics

import (
	"sync"

	"github.com/Radisovik/goword/document"
)

type glyphKey struct {
	r     rune
	style document.Style
	size  int
}

type glyphSize struct {
	w, h int
}

// Cache memoizes another oracle. The key holds every attribute that can
// change a measurement, so cached answers never go stale.
type Cache struct {
	m document.Metrics

	mu     sync.Mutex
	glyphs map[glyphKey]glyphSize
	lines  map[int]int
}

func NewCache(m document.Metrics) *Cache {
	return &Cache{
		m:      m,
		glyphs: map[glyphKey]glyphSize{},
		lines:  map[int]int{},
	}
}

func (c *Cache) Measure(r rune, style document.Style, size int) (int, int) {
	k := glyphKey{r: r, style: style, size: size}
	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.glyphs[k]; ok {
		return g.w, g.h
	}
	w, h := c.m.Measure(r, style, size)
	c.glyphs[k] = glyphSize{w: w, h: h}
	return w, h
}

func (c *Cache) LineHeight(size int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok := c.lines[size]; ok {
		return h
	}
	h := c.m.LineHeight(size)
	c.lines[size] = h
	return h
}

// Len is the number of memoized glyph measurements.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.glyphs)
}
