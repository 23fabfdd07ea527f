// Package palette assigns deterministic display colors to activity labels.
package palette

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// Saturation is shared by every activity color.
	Saturation = 0.7
	// Lightness is shared by every activity color.
	Lightness = 0.5
	// Alpha makes activity colors semi-transparent so overlaps stay visible.
	Alpha = 0.5
)

// Color is an HSL color with an alpha channel.
type Color struct {
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Lightness  float64 `json:"lightness" yaml:"lightness"`
	Alpha      float64 `json:"alpha" yaml:"alpha"`
}

// Fallback is the opaque gray given to intervals whose activity has no color.
var Fallback = Color{Hue: 0, Saturation: 0, Lightness: 0.5, Alpha: 1}

// CSS renders the color as an hsla() token, e.g. "hsla(120, 70%, 50%, 0.50)".
func (c Color) CSS() string {
	return fmt.Sprintf("hsla(%.0f, %.0f%%, %.0f%%, %.2f)", c.Hue, c.Saturation*100, c.Lightness*100, c.Alpha)
}

// Hex renders the opaque part of the color as "#rrggbb" for terminal styling.
func (c Color) Hex() string {
	return colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Clamped().Hex()
}

// Assign maps every distinct non-empty label to a color.
// Labels are sorted so the mapping depends only on the label set, never on input order.
// Hues are spaced by floor(360 / n) degrees starting at 0.
func Assign(labels []string) map[string]Color {
	distinct := Distinct(labels)
	colors := make(map[string]Color, len(distinct))
	if len(distinct) == 0 {
		return colors
	}

	step := 360 / len(distinct)
	for i, label := range distinct {
		colors[label] = Color{
			Hue:        float64(i * step),
			Saturation: Saturation,
			Lightness:  Lightness,
			Alpha:      Alpha,
		}
	}
	return colors
}

// Lookup returns the color for label, or Fallback when the label has none.
func Lookup(colors map[string]Color, label string) Color {
	if c, ok := colors[label]; ok {
		return c
	}
	return Fallback
}

// Distinct returns the sorted set of non-empty labels.
func Distinct(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, l := range labels {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
