package pdfoverlay

import (
	"fmt"
	"strconv"
)

// ParseHexColor parses a "#RRGGBB" string into a Color with channels in [0, 1].
// Hex digits may be upper or lower case. Any other form, including the
// three-digit shorthand, returns ErrInvalidColor.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		ch[i] = float64(v) / 255
	}

	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ResolveColor parses s and substitutes Black when it is malformed.
func ResolveColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		return Black
	}
	return c
}
