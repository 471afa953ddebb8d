package graphics

// Paint describes how a shape is filled. When Gradient is valid it takes
// precedence over Color.
type Paint struct {
	Color    Color
	Gradient *Gradient
}

// DefaultPaint returns an opaque black fill.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack}
}

// SolidPaint returns a paint that fills with a single color.
func SolidPaint(c Color) Paint {
	return Paint{Color: c}
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// SaveLayerAlpha saves a new layer with the given opacity (0.0 to 1.0).
	// All drawing until the matching Restore() call will be composited with this opacity.
	SaveLayerAlpha(bounds Rect, alpha float64)

	// Restore pops the most recent saved state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// Size returns the canvas size in pixels.
	Size() Size
}
