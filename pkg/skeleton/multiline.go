package skeleton

import (
	"math"

	"github.com/go-drift/skeleton/pkg/graphics"
)

// LineConfig describes the bars synthesized for a text host.
type LineConfig struct {
	// Type decides the kind of newly created bars.
	Type Type
	// Lines is the requested count. Zero or negative means "as many as fit".
	Lines int
	// LineHeight is the bar height. Non-positive uses the appearance default.
	LineHeight float64
	// LastLineFillPercent is the width fraction of the last bar. Values
	// outside (0, 1] use the appearance default.
	LastLineFillPercent float64
	// Spacing is the vertical gap between bars.
	Spacing float64
	// CornerRadius rounds each bar.
	CornerRadius float64
	// Bounds is the area the bars are laid out in, in the mask's coordinates.
	Bounds graphics.Rect
	// Padding insets the bars from Bounds.
	Padding graphics.EdgeInsets
	RightToLeft bool
	// SingleLineAsView lets a one-line host fill its whole height.
	SingleLineAsView bool
}

// QualifiesForLines reports whether a host showing lineCount lines gets bars
// rather than a single block.
func QualifiesForLines(lineCount int, renderSingleLineAsView bool) bool {
	return lineCount <= 0 || lineCount > 1 || !renderSingleLineAsView
}

// LineCount returns how many bars cfg produces. The requested count is used
// when it fits the usable height; otherwise as many bars as fit. At least
// one bar is always produced. With no usable height the requested count is
// taken as is.
func LineCount(cfg LineConfig) int {
	cfg = cfg.normalized()
	usable := cfg.usable().Height()
	capacity := 0
	if usable > 0 {
		capacity = max(int(math.Round((usable+cfg.Spacing)/(cfg.LineHeight+cfg.Spacing))), 1)
	}
	switch {
	case cfg.Lines > 0 && (capacity == 0 || cfg.Lines <= capacity):
		return cfg.Lines
	case capacity > 0:
		return capacity
	default:
		return 1
	}
}

// LineFrames returns the bar rectangles for cfg, top to bottom. Every bar
// spans the usable width except the last of several, which is shortened to
// LastLineFillPercent. Right-to-left configs align bars to the right edge.
func LineFrames(cfg LineConfig) []graphics.Rect {
	cfg = cfg.normalized()
	n := LineCount(cfg)
	usable := cfg.usable()

	height := cfg.LineHeight
	if n == 1 && cfg.SingleLineAsView && usable.Height() > 0 {
		height = usable.Height()
	}

	frames := make([]graphics.Rect, n)
	for i := 0; i < n; i++ {
		width := usable.Width()
		if i == n-1 && n > 1 {
			width *= cfg.LastLineFillPercent
		}
		x := cfg.Bounds.Left + cfg.Padding.Left
		if cfg.RightToLeft {
			x = cfg.Bounds.Right - cfg.Padding.Right - width
		}
		y := cfg.Bounds.Top + cfg.Padding.Top + float64(i)*(cfg.LineHeight+cfg.Spacing)
		frames[i] = graphics.RectFromLTWH(x, y, width, height)
	}
	return frames
}

// SynthesizeLines builds fresh bars for cfg.
func SynthesizeLines(cfg LineConfig) []*Shape {
	return ReconcileLines(nil, cfg)
}

// ReconcileLines adjusts existing to match cfg. Bars are reused in order;
// missing bars are created and surplus bars are detached and stopped. Every
// returned bar is repositioned.
func ReconcileLines(existing []*Shape, cfg LineConfig) []*Shape {
	frames := LineFrames(cfg)
	n := len(frames)

	bars := make([]*Shape, 0, n)
	bars = append(bars, existing[:min(len(existing), n)]...)
	for _, surplus := range existing[min(len(existing), n):] {
		surplus.RemoveAllAnimations()
		surplus.RemoveFromParent()
	}
	for len(bars) < n {
		bars = append(bars, newShapeForType(cfg.Type))
	}

	for i, bar := range bars {
		bar.SetFrame(frames[i])
		bar.SetCornerRadius(cfg.CornerRadius)
	}
	return bars
}

func (cfg LineConfig) normalized() LineConfig {
	a := CurrentAppearance()
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = a.MultilineHeight
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = 1
	}
	if cfg.LastLineFillPercent <= 0 || cfg.LastLineFillPercent > 1 {
		cfg.LastLineFillPercent = a.LastLineFillPercent
	}
	cfg.Spacing = max(cfg.Spacing, 0)
	return cfg
}

func (cfg LineConfig) usable() graphics.Rect {
	return cfg.Bounds.Deflate(cfg.Padding)
}
