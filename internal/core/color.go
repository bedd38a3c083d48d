package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB colour for a screen cell.
// The zero value is ColorDefault, meaning "use the terminal's colour".
type Color uint32

// ColorDefault leaves the terminal colour untouched.
const ColorDefault Color = 0

const colorSet Color = 1 << 24

// Predefined colors for HUD elements.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorGray  = RGB(138, 138, 138)
)

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ParseHex parses "#rrggbb", "rrggbb" or the short "#rgb" form.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return ColorDefault, fmt.Errorf("core: invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return ColorDefault, fmt.Errorf("core: invalid hex colour %q: %w", s, err)
	}
	return colorSet | Color(v), nil
}

// IsDefault reports whether c is ColorDefault.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
