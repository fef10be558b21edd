package surface

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses CSS-style hex colors: #rgb, #rgba, #rrggbb and #rrggbbaa.
func ParseHex(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("color %q: missing leading #", s)
	}

	digits := s[1:]
	rgb, alpha := digits, "ff"
	switch len(digits) {
	case 3, 6:
	case 4:
		rgb, alpha = digits[:3], strings.Repeat(digits[3:], 2)
	case 8:
		rgb, alpha = digits[:6], digits[6:]
	default:
		return color.NRGBA{}, fmt.Errorf("color %q: want 3, 4, 6 or 8 hex digits", s)
	}

	c, err := colorful.Hex("#" + rgb)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: bad alpha: %w", s, err)
	}

	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}, nil
}

// MustHex is ParseHex for literals known to be valid.
func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hue returns a fully opaque color at hue h (degrees, wrapped into [0, 360)).
func Hue(h, saturation, value float64) color.NRGBA {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	r, g, b := colorful.Hsv(h, saturation, value).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
