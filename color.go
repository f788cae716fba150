package thickline

import "image/color"

// Color is a line color with red, green and blue components in [0, 1].
// Transparency is a separate line property (opacity).
type Color struct {
	R, G, B float64
}

// RGB creates a color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts a standard color.Color, dropping its alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
}

// NRGBA converts the color to a non-premultiplied color.NRGBA with the
// given opacity.
func (c Color) NRGBA(opacity float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(opacity * 255)),
	}
}

// Hex creates a color from a hex string in "RGB" or "RRGGBB" form, with or
// without a leading '#'. Malformed input yields black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			*val = 0
			return
		}
	}
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors.
var (
	Black  = RGB(0, 0, 0)
	White  = RGB(1, 1, 1)
	Red    = RGB(1, 0, 0)
	Green  = RGB(0, 1, 0)
	Blue   = RGB(0, 0, 1)
	Yellow = RGB(1, 1, 0)
)
