// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/internship-tracker/internal/config"
)

// Accent is a named palette colour.
type Accent struct {
	Name  string
	Color string
}

// Palette lists the accent colours the dashboard cycles through.
var Palette = []Accent{
	{Name: "Red", Color: "#E50046"},
	{Name: "Teal", Color: "#03A6A1"},
	{Name: "Purple", Color: "#B13BFF"},
	{Name: "Blue", Color: "#6fcffb"},
	{Name: "Orange", Color: "#FF7D29"},
}

// DefaultAccent is used when no colour was configured or saved.
const DefaultAccent = "#6fcffb"

// ShadeColor scales every channel of a #rrggbb colour by (100+percent)%.
// Channels are capped at 255. Malformed input is returned unchanged.
func ShadeColor(hex string, percent int) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}

	var out strings.Builder
	out.WriteByte('#')
	for i := 1; i < 7; i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return hex
		}
		c := int(v) * (100 + percent) / 100
		c = max(0, min(c, 255))
		fmt.Fprintf(&out, "%02x", c)
	}
	return out.String()
}

// accentIndex finds color in Palette, ignoring case. -1 when absent.
func accentIndex(color string) int {
	for i, a := range Palette {
		if strings.EqualFold(a.Color, color) {
			return i
		}
	}
	return -1
}

// NextAccent returns the palette colour after current, wrapping around.
func NextAccent(current string) string {
	idx := accentIndex(current)
	return Palette[(idx+1)%len(Palette)].Color
}

// ActionColor picks the colour of the index-th action hint. It cycles the
// palette without the current accent so actions never blend into it.
func ActionColor(current string, index int) string {
	skip := accentIndex(current)
	available := make([]string, 0, len(Palette))
	for i, a := range Palette {
		if i != skip {
			available = append(available, a.Color)
		}
	}
	return available[index%len(available)]
}

// normalizeTheme fills an empty accent with [DefaultAccent].
func normalizeTheme(theme config.Theme) config.Theme {
	if theme.Color == "" {
		theme.Color = DefaultAccent
	}
	return theme
}
