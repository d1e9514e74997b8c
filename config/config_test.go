package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radisovik/goword/document"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goword.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
general:
  document_width: 500
  font_size: 14
  line_pitch: tallest
colors:
  text: "#ff8000"
  cursor: "#0f0"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.General.DocumentWidth)
	assert.Equal(t, 700, cfg.General.DocumentHeight, "unset keys keep defaults")
	assert.Equal(t, document.RGB{R: 255, G: 128}, cfg.TextColor())
	assert.Equal(t, document.RGB{G: 255}, cfg.CursorColor())
	assert.Equal(t, document.RGB{R: 255, G: 255, B: 255}, cfg.CanvasColor())
	assert.Equal(t, document.RGB{R: 200, G: 200, B: 200}, cfg.WindowColor())

	pitch, err := cfg.Pitch()
	require.NoError(t, err)
	assert.Equal(t, document.PitchTallest, pitch)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "general: [1, 2"},
		{"bad color", "colors:\n  text: chartreuse\n"},
		{"bad pitch", "general:\n  line_pitch: sideways\n"},
		{"tiny font", "general:\n  font_size: 2\n"},
		{"zero width", "general:\n  width: 0\n"},
		{"padding too wide", "general:\n  padding: 400\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#0c80fe"} {
		rgb, err := ParseColor(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, FormatColor(rgb))
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.General.FontSize = 12
	d := document.New(nil, cfg.Options(document.Point{X: 3, Y: 4})...)

	assert.Equal(t, 12, d.ActiveSize())
	assert.Equal(t, document.Black, d.ActiveColor())
	assert.Equal(t, document.Geometry{Origin: document.Point{X: 3, Y: 4}, Width: 800, Height: 700, Padding: 5}, d.Geometry())
	assert.Equal(t, document.PitchActive, d.LinePitch())
}
