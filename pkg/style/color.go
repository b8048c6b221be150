// Package style defines colors, per-category styles, and themes for the
// renderers, including the built-in palettes and YAML theme files.
package style

import "fmt"

// Color is an 8-bit-per-channel RGB triple.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Normalized returns the channels scaled to 0.0..1.0 for LaTeX's rgb color
// model. Callers render the values with two decimal places.
func (c Color) Normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// ParseColor reads a color from exactly six hex digits with an optional
// leading "#", tolerating either letter case. Anything else (shorthand,
// named colors, garbage) yields ok=false: an unparseable color means an
// absent color, never a hard failure.
func ParseColor(s string) (Color, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, false
	}
	var ch [6]uint8
	for i := 0; i < 6; i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return Color{}, false
		}
		ch[i] = d
	}
	return Color{
		R: ch[0]<<4 | ch[1],
		G: ch[2]<<4 | ch[3],
		B: ch[4]<<4 | ch[5],
	}, true
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// hex parses a built-in palette literal, panicking on a typo so malformed
// tables fail loudly at init instead of rendering wrong colors.
func hex(s string) *Color {
	c, ok := ParseColor(s)
	if !ok {
		panic(fmt.Sprintf("style: bad color literal %q", s))
	}
	return &c
}
