package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA colour with components in [0, 1].
// Obstacles and providers work in this space; the platform converts it to
// terminal truecolor when rendering.
type Color struct {
	R, G, B, A float64
}

// FadeFactor is the alpha multiplier applied by Faded.
const FadeFactor = 0.25

// Predefined colours.
var (
	Black   = Color{0, 0, 0, 1}
	White   = Color{1, 1, 1, 1}
	Red     = Color{1, 0, 0, 1}
	SkyBlue = Color{0.4, 0.75, 1, 1}
	Pink    = Color{1, 0, 0.5, 1}
	Clear   = Color{}
)

// RGBA builds a colour from components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Mix interpolates every channel, alpha included, towards other.
func (c Color) Mix(other Color, factor float64) Color {
	return Color{
		R: Lerp(c.R, other.R, factor),
		G: Lerp(c.G, other.G, factor),
		B: Lerp(c.B, other.B, factor),
		A: Lerp(c.A, other.A, factor),
	}
}

// Faded returns c with its alpha scaled by FadeFactor.
func (c Color) Faded() Color {
	c.A *= FadeFactor
	return c
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Over composites c on top of an opaque dst and returns an opaque colour.
func (c Color) Over(dst Color) Color {
	a := ClampF(c.A, 0, 1)
	return Color{
		R: Lerp(dst.R, c.R, a),
		G: Lerp(dst.G, c.G, a),
		B: Lerp(dst.B, c.B, a),
		A: 1,
	}
}

// Hex formats the colour as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("%s@%.2f", c.Hex(), c.A)
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && s[0] == '#' {
		base, err := colorful.Hex(s[:7])
		if err != nil {
			return Color{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
		}
		alpha, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("core: invalid alpha in %q: %w", s, err)
		}
		return Color{R: base.R, G: base.G, B: base.B, A: float64(alpha) / 255}, nil
	}

	base, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return Color{R: base.R, G: base.G, B: base.B, A: 1}, nil
}

// Sinebow returns a fully saturated rainbow colour for phase (radians).
func Sinebow(phase float64) Color {
	const third = math.Pi * 2 / 3
	return Color{
		R: math.Sin(phase+third*3)/2 + 0.5,
		G: math.Sin(phase+third*2)/2 + 0.5,
		B: math.Sin(phase+third)/2 + 0.5,
		A: 1,
	}
}
