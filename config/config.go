// Package config loads goword settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/Radisovik/goword/document"
)

type Config struct {
	General General `yaml:"general"`
	Colors  Colors  `yaml:"colors"`
}

type General struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	DocumentWidth  int    `yaml:"document_width"`
	DocumentHeight int    `yaml:"document_height"`
	Padding        int    `yaml:"padding"`
	FontSize       int    `yaml:"font_size"`
	LinePitch      string `yaml:"line_pitch"` // "active" or "tallest"
}

// Colors are #rrggbb strings.
type Colors struct {
	Text   string `yaml:"text"`
	Canvas string `yaml:"canvas"`
	Window string `yaml:"window"`
	Cursor string `yaml:"cursor"`
}

func Default() Config {
	return Config{
		General: General{
			Width:          1000,
			Height:         800,
			DocumentWidth:  800,
			DocumentHeight: 700,
			Padding:        5,
			FontSize:       document.DefaultSize,
			LinePitch:      "active",
		},
		Colors: Colors{
			Text:   "#000000",
			Canvas: "#ffffff",
			Window: "#c8c8c8",
			Cursor: "#000000",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	g := c.General
	if g.Width <= 0 || g.Height <= 0 || g.DocumentWidth <= 0 || g.DocumentHeight <= 0 {
		return errors.New("window and document sizes must be positive")
	}
	if g.Padding < 0 || 2*g.Padding >= g.DocumentWidth {
		return fmt.Errorf("padding %d does not fit document width %d", g.Padding, g.DocumentWidth)
	}
	if g.FontSize < document.MinSize {
		return fmt.Errorf("font_size %d below minimum %d", g.FontSize, document.MinSize)
	}
	if _, err := c.Pitch(); err != nil {
		return err
	}
	for name, hex := range map[string]string{
		"text":   c.Colors.Text,
		"canvas": c.Colors.Canvas,
		"window": c.Colors.Window,
		"cursor": c.Colors.Cursor,
	} {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}
	return nil
}

func (c Config) Pitch() (document.LinePitch, error) {
	switch c.General.LinePitch {
	case "", "active":
		return document.PitchActive, nil
	case "tallest":
		return document.PitchTallest, nil
	}
	return 0, fmt.Errorf("unknown line_pitch %q", c.General.LinePitch)
}

// ParseColor parses a #rrggbb (or #rgb) string.
func ParseColor(hex string) (document.RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return document.RGB{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return document.RGB{R: r, G: g, B: b}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c document.RGB) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// TextColor returns the parsed default text color. Validate must have
// succeeded.
func (c Config) TextColor() document.RGB {
	rgb, _ := ParseColor(c.Colors.Text)
	return rgb
}

func (c Config) CanvasColor() document.RGB {
	rgb, _ := ParseColor(c.Colors.Canvas)
	return rgb
}

func (c Config) WindowColor() document.RGB {
	rgb, _ := ParseColor(c.Colors.Window)
	return rgb
}

func (c Config) CursorColor() document.RGB {
	rgb, _ := ParseColor(c.Colors.Cursor)
	return rgb
}

// Options turns the configuration into document options for a canvas
// placed at origin.
func (c Config) Options(origin document.Point) []document.Option {
	pitch, _ := c.Pitch()
	return []document.Option{
		document.WithGeometry(document.Geometry{
			Origin:  origin,
			Width:   c.General.DocumentWidth,
			Height:  c.General.DocumentHeight,
			Padding: c.General.Padding,
		}),
		document.WithColor(c.TextColor()),
		document.WithSize(c.General.FontSize),
		document.WithLinePitch(pitch),
	}
}
