package skeleton

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/skeleton/pkg/graphics"
)

const (
	darkenFactor  = 0.94
	lightenFactor = 1.35
	// minLighten keeps near-black bases from producing a flat gradient.
	minLighten = 0.1
)

// DeriveGradient returns the gradient stops for base. The second stop is
// secondary, or when nil a complement of base that is slightly darker than
// a light base and lighter than a dark one. With repeat, base closes the
// palette again: [base, secondary, base]. Otherwise it is [base, secondary].
func DeriveGradient(base graphics.Color, secondary *graphics.Color, repeat bool) []graphics.Color {
	second := complement(base)
	if secondary != nil {
		second = *secondary
	}
	if repeat {
		return []graphics.Color{base, second, base}
	}
	return []graphics.Color{base, second}
}

// IsLight reports whether c reads as a light color using the perceived
// brightness weights 299/587/114.
func IsLight(c graphics.Color) bool {
	r, g, b, _ := c.RGBAF()
	return (r*299+g*587+b*114)/1000 >= 0.5
}

func complement(c graphics.Color) graphics.Color {
	r, g, b, a := c.RGBAF()
	h, s, v := colorful.Color{R: r, G: g, B: b}.Hsv()
	if IsLight(c) {
		v *= darkenFactor
	} else {
		v = math.Min(1, math.Max(v*lightenFactor, v+minLighten))
	}
	r8, g8, b8 := colorful.Hsv(h, s, v).Clamped().RGB255()
	return graphics.RGBA(r8, g8, b8, a)
}

// ColorGradient is a palette for gradient skeletons.
type ColorGradient struct {
	colors []graphics.Color
}

// GradientOption customizes NewColorGradient.
type GradientOption func(*gradientSettings)

type gradientSettings struct {
	secondary *graphics.Color
	repeat    bool
}

// WithSecondary replaces the derived complement with an explicit color.
func WithSecondary(c graphics.Color) GradientOption {
	return func(s *gradientSettings) { s.secondary = &c }
}

// WithRepeat closes the palette with base again.
func WithRepeat(repeat bool) GradientOption {
	return func(s *gradientSettings) { s.repeat = repeat }
}

// NewColorGradient builds a palette from base. It holds the same stops as
// DeriveGradient with the given secondary and repeat.
func NewColorGradient(base graphics.Color, opts ...GradientOption) ColorGradient {
	var settings gradientSettings
	for _, opt := range opts {
		opt(&settings)
	}
	return ColorGradient{colors: DeriveGradient(base, settings.secondary, settings.repeat)}
}

// GradientFromColors wraps an explicit palette.
func GradientFromColors(colors ...graphics.Color) ColorGradient {
	return ColorGradient{colors: slices.Clone(colors)}
}

// Colors returns a copy of the palette.
func (g ColorGradient) Colors() []graphics.Color {
	return slices.Clone(g.colors)
}

// Base returns the first color, or transparent for an empty palette.
func (g ColorGradient) Base() graphics.Color {
	if len(g.colors) == 0 {
		return graphics.ColorTransparent
	}
	return g.colors[0]
}
