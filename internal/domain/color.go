package domain

import (
	"fmt"
	"strings"
)

// Color is a single channel tuple applied uniformly to a pixel.
// A is only written to grids that carry an alpha channel.
type Color struct {
	R, G, B, A uint8
}

// White is the default marker color.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// RGBColor returns an opaque color.
func RGBColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

func (c Color) put(dst []uint8) {
	dst[0], dst[1], dst[2] = c.R, c.G, c.B
	if len(dst) > 3 {
		dst[3] = c.A
	}
}

// Matches reports whether the samples of a pixel equal the color.
func (c Color) Matches(px []uint8) bool {
	if len(px) < 3 || px[0] != c.R || px[1] != c.G || px[2] != c.B {
		return false
	}
	return len(px) < 4 || px[3] == c.A
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa (the leading # is optional).
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Marker describes the vertical seam drawn at the boundary column.
type Marker struct {
	// Width is the band width in pixels; 0 disables the marker.
	Width int
	Color Color
}

// DefaultMarker returns a 3 pixel white marker.
func DefaultMarker() Marker {
	return Marker{Width: 3, Color: White}
}
