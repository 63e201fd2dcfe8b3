package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ErrBadColor is returned when a colour string cannot be parsed.
var ErrBadColor = errors.New("bad color")

// ParseColor understands the CSS notations used in the backdrop config:
// #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r, g, b) and rgba(r, g, b, a) with a in [0, 1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex checks the digits itself, since gg.Hex turns malformed input into
// opaque black, then leaves the decoding to gg.
func parseHex(h string) (color.NRGBA, error) {
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: #%s", ErrBadColor, h)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: #%s", ErrBadColor, h)
	}
	c := gg.Hex(h)
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}, nil
}

// channel rounds a [0, 1] gg component to 8 bits; gg.RGBA.Color truncates.
func channel(f float64) uint8 {
	return uint8(math.Round(f * 255))
}

func parseFunc(body string, n int) (color.NRGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("%w: want %d components in %q", ErrBadColor, n, body)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("%w: component %q", ErrBadColor, parts[i])
		}
		ch[i] = uint8(v)
	}
	a := uint8(255)
	if n == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return color.NRGBA{}, fmt.Errorf("%w: alpha %q", ErrBadColor, parts[3])
		}
		a = uint8(f*255 + 0.5)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

// WithAlpha scales the alpha of c by f, f in [0, 1].
func WithAlpha(c color.Color, f float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	n.A = uint8(float64(n.A)*f + 0.5)
	return n
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// toFloats returns straight (non-premultiplied) channels in [0, 1].
func toFloats(c color.Color) (r, g, b, a float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255, float64(n.A) / 255
}
