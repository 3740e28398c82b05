package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/internship-tracker/internal/config"
)

func TestShadeColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		percent int
		want    string
	}{
		{name: "darken red", hex: "#E50046", percent: -15, want: "#c2003b"},
		{name: "no change", hex: "#6fcffb", percent: 0, want: "#6fcffb"},
		{name: "lighten caps at 255", hex: "#FF7D29", percent: 50, want: "#ffbb3d"},
		{name: "black stays black", hex: "#000000", percent: 40, want: "#000000"},
		{name: "malformed is returned as is", hex: "blue", percent: -15, want: "blue"},
		{name: "bad digits are returned as is", hex: "#zz0000", percent: -15, want: "#zz0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShadeColor(tt.hex, tt.percent))
		})
	}
}

func TestNextAccent(t *testing.T) {
	assert.Equal(t, "#FF7D29", NextAccent("#6fcffb"))
	assert.Equal(t, "#E50046", NextAccent("#FF7D29"), "wraps around")
	assert.Equal(t, "#03A6A1", NextAccent("#e50046"), "case-insensitive")
	assert.Equal(t, "#E50046", NextAccent("#123456"), "unknown colour starts over")
}

func TestActionColor_SkipsCurrentAccent(t *testing.T) {
	current := "#03A6A1"
	seen := map[string]bool{}
	for i := range 8 {
		c := ActionColor(current, i)
		assert.NotEqual(t, current, c)
		seen[c] = true
	}
	assert.Len(t, seen, len(Palette)-1)

	assert.Equal(t, "#E50046", ActionColor(current, 0))
	assert.Equal(t, "#B13BFF", ActionColor(current, 1))
}

func TestNormalizeTheme(t *testing.T) {
	assert.Equal(t, DefaultAccent, normalizeTheme(config.Theme{}).Color)
	assert.Equal(t, "#B13BFF", normalizeTheme(config.Theme{Color: "#B13BFF"}).Color)
}
