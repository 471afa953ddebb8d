package skeleton_test

import (
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

type fakeView struct {
	bounds graphics.Rect
	radius float64
	rtl    bool
}

func (v *fakeView) ContentBounds() graphics.Rect { return v.bounds }
func (v *fakeView) CornerRadius() float64        { return v.radius }
func (v *fakeView) IsRightToLeft() bool          { return v.rtl }

type fakeLabel struct {
	fakeView
	lines      int
	lineHeight float64
	fill       float64
	spacing    float64
	padding    graphics.EdgeInsets
}

func (l *fakeLabel) LineCount() int                      { return l.lines }
func (l *fakeLabel) LastLineFillPercent() float64        { return l.fill }
func (l *fakeLabel) LineSpacing() float64                { return l.spacing }
func (l *fakeLabel) ContentPadding() graphics.EdgeInsets { return l.padding }

func (l *fakeLabel) LineHeight() (float64, bool) {
	return l.lineHeight, l.lineHeight > 0
}

type fakeTextView struct {
	fakeLabel
}

func (*fakeTextView) IsVerticalTextContainer() bool { return true }

func newLabel(lines int) *fakeLabel {
	return &fakeLabel{
		fakeView:   fakeView{bounds: graphics.RectFromLTWH(0, 0, 100, 48)},
		lines:      lines,
		lineHeight: 10,
		fill:       0.6,
		spacing:    2,
	}
}

func register(host skeleton.Geometry) (*skeleton.HostRegistry, skeleton.HostRef) {
	registry := skeleton.NewHostRegistry()
	return registry, registry.Register(host)
}
