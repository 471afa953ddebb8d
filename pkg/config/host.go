package config

import (
	"github.com/go-drift/skeleton/pkg/graphics"
)

// StaticView is a fixed-geometry host for previews.
type StaticView struct {
	Bounds graphics.Rect
	Radius float64
	RTL    bool
}

func (v *StaticView) ContentBounds() graphics.Rect { return v.Bounds }
func (v *StaticView) CornerRadius() float64        { return v.Radius }
func (v *StaticView) IsRightToLeft() bool          { return v.RTL }

// Resize keeps the origin and changes the size.
func (v *StaticView) Resize(width, height float64) {
	v.Bounds = graphics.RectFromLTWH(v.Bounds.Left, v.Bounds.Top, width, height)
}

// StaticLabel is a fixed text host for previews.
type StaticLabel struct {
	StaticView
	Lines       int
	BarHeight   float64
	Spacing     float64
	FillPercent float64
	Insets      graphics.EdgeInsets
	Vertical    bool
}

func (l *StaticLabel) LineCount() int                      { return l.Lines }
func (l *StaticLabel) LastLineFillPercent() float64        { return l.FillPercent }
func (l *StaticLabel) LineSpacing() float64                { return l.Spacing }
func (l *StaticLabel) ContentPadding() graphics.EdgeInsets { return l.Insets }
func (l *StaticLabel) IsVerticalTextContainer() bool       { return l.Vertical }

// LineHeight reports BarHeight when it is set.
func (l *StaticLabel) LineHeight() (float64, bool) {
	return l.BarHeight, l.BarHeight > 0
}
