package graphics

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// Gradient describes a gradient fill.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// EvenStops spreads colors evenly over [0, 1].
// A single color yields one stop at position 0.
func EvenStops(colors []Color) []GradientStop {
	if len(colors) == 0 {
		return nil
	}
	stops := make([]GradientStop, len(colors))
	if len(colors) == 1 {
		stops[0] = GradientStop{Position: 0, Color: colors[0]}
		return stops
	}
	last := float64(len(colors) - 1)
	for i, c := range colors {
		stops[i] = GradientStop{Position: float64(i) / last, Color: c}
	}
	return stops
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil || g.Type != GradientTypeLinear {
		return nil
	}
	return g.Linear.Stops
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return g.Type == GradientTypeLinear
}

// ColorAt evaluates the gradient at point p. Points before the first stop
// take its color; points past the last stop take the last color.
func (g *Gradient) ColorAt(p Offset) Color {
	stops := g.Stops()
	switch len(stops) {
	case 0:
		return ColorTransparent
	case 1:
		return stops[0].Color
	}

	s, e := g.Linear.Start, g.Linear.End
	dx, dy := e.X-s.X, e.Y-s.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((p.X-s.X)*dx + (p.Y-s.Y)*dy) / lenSq
	}

	if t <= stops[0].Position {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if t <= next.Position {
			span := next.Position - prev.Position
			if span <= 0 {
				return next.Color
			}
			return lerpColor(prev.Color, next.Color, (t-prev.Position)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b Color, t float64) Color {
	ar, ag, ab, aa := a.Components()
	br, bg, bb, ba := b.Components()
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGBA8(mix(ar, br), mix(ag, bg), mix(ab, bb), mix(aa, ba))
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
