package skeleton

import (
	"slices"

	"github.com/go-drift/skeleton/pkg/graphics"
)

// ShapeKind tags which fill payload a Shape carries.
type ShapeKind int

const (
	// ShapeFill paints a single color.
	ShapeFill ShapeKind = iota
	// ShapeGradient paints a linear gradient between unit points.
	ShapeGradient
)

func (k ShapeKind) String() string {
	if k == ShapeGradient {
		return "gradient"
	}
	return "fill"
}

// gradientFill is the ShapeGradient payload.
type gradientFill struct {
	colors []graphics.Color
	points Points
	// sliding records that the shape was built for an animated gradient.
	sliding bool
}

// Shape is a node in the skeleton render tree. A shape with sublayers is a
// container: it is not painted itself and only its descendants are tinted.
//
// Shapes are not safe for concurrent use; drive them from the frame loop.
type Shape struct {
	kind     ShapeKind
	fill     graphics.Color
	gradient gradientFill

	frame        graphics.Rect
	cornerRadius float64
	opacity      float64

	parent    *Shape
	sublayers []*Shape

	animations map[string]*runningAnimation
	order      []string
}

// NewFillShape returns a solid shape painted with c.
func NewFillShape(c graphics.Color) *Shape {
	return &Shape{kind: ShapeFill, fill: c, opacity: 1}
}

// NewGradientShape returns a gradient shape. sliding marks it as belonging to
// an animated gradient skeleton.
func NewGradientShape(colors []graphics.Color, points Points, sliding bool) *Shape {
	return &Shape{
		kind: ShapeGradient,
		gradient: gradientFill{
			colors:  slices.Clone(colors),
			points:  points,
			sliding: sliding,
		},
		opacity: 1,
	}
}

// newShapeForType builds an empty shape for a skeleton type.
func newShapeForType(t Type) *Shape {
	if t == Solid {
		return NewFillShape(graphics.ColorTransparent)
	}
	return NewGradientShape(nil, DefaultPoints, t == AnimatedGradient)
}

// Kind returns the fill tag.
func (s *Shape) Kind() ShapeKind {
	return s.kind
}

// Sliding reports whether a gradient shape belongs to an animated gradient.
func (s *Shape) Sliding() bool {
	return s.kind == ShapeGradient && s.gradient.sliding
}

// Frame returns the shape's rectangle in its parent's coordinates.
func (s *Shape) Frame() graphics.Rect {
	return s.frame
}

// SetFrame positions the shape in its parent's coordinates.
func (s *Shape) SetFrame(r graphics.Rect) {
	s.frame = r
}

// Bounds returns the shape's rectangle in its own coordinates.
func (s *Shape) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, s.frame.Width(), s.frame.Height())
}

func (s *Shape) CornerRadius() float64 {
	return s.cornerRadius
}

func (s *Shape) SetCornerRadius(r float64) {
	s.cornerRadius = max(r, 0)
}

// Opacity returns the model opacity, ignoring running animations.
func (s *Shape) Opacity() float64 {
	return s.opacity
}

// SetOpacity sets the model opacity, clamped to [0, 1].
func (s *Shape) SetOpacity(o float64) {
	s.opacity = min(max(o, 0), 1)
}

// PresentationOpacity returns the opacity currently on screen. The most
// recently attached animation with an opacity track wins.
func (s *Shape) PresentationOpacity() float64 {
	opacity := s.opacity
	for _, key := range s.order {
		if o, ok := s.animations[key].opacity(); ok {
			opacity = o
		}
	}
	return min(max(opacity, 0), 1)
}

// Colors returns the fill palette. A fill shape returns its single color.
func (s *Shape) Colors() []graphics.Color {
	if s.kind == ShapeFill {
		return []graphics.Color{s.fill}
	}
	return slices.Clone(s.gradient.colors)
}

// Points returns the model gradient vector. Fill shapes return DefaultPoints.
func (s *Shape) Points() Points {
	if s.kind == ShapeFill {
		return DefaultPoints
	}
	return s.gradient.points
}

// SetPoints sets the gradient vector. It is a no-op on fill shapes.
func (s *Shape) SetPoints(p Points) {
	if s.kind == ShapeGradient {
		s.gradient.points = p
	}
}

// PresentationPoints returns the gradient vector currently on screen.
func (s *Shape) PresentationPoints() Points {
	p := s.Points()
	for _, key := range s.order {
		p = s.animations[key].points(p)
	}
	return p
}

// Tint applies colors to the shape. Containers pass the colors down to their
// sublayers; only leaves change what is painted. Fill shapes use the first
// color. An empty palette is ignored.
func (s *Shape) Tint(colors []graphics.Color) {
	if len(colors) == 0 {
		return
	}
	s.setColors(colors)
	for _, sub := range s.sublayers {
		sub.Tint(colors)
	}
}

func (s *Shape) setColors(colors []graphics.Color) {
	if s.kind == ShapeFill {
		s.fill = colors[0]
		return
	}
	s.gradient.colors = slices.Clone(colors)
}

// Parent returns the containing shape, or nil.
func (s *Shape) Parent() *Shape {
	return s.parent
}

// Sublayers returns a copy of the child list.
func (s *Shape) Sublayers() []*Shape {
	return slices.Clone(s.sublayers)
}

// IsLeaf reports whether the shape has no sublayers.
func (s *Shape) IsLeaf() bool {
	return len(s.sublayers) == 0
}

// AddSublayer appends child, detaching it from any previous parent.
func (s *Shape) AddSublayer(child *Shape) {
	if child == nil || child == s {
		return
	}
	child.RemoveFromParent()
	child.parent = s
	s.sublayers = append(s.sublayers, child)
}

// RemoveFromParent detaches the shape. It is a no-op for detached shapes.
func (s *Shape) RemoveFromParent() {
	p := s.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.sublayers, s); i >= 0 {
		p.sublayers = slices.Delete(p.sublayers, i, i+1)
	}
	s.parent = nil
}

// Leaves returns the shape itself if it is a leaf, else every leaf below it
// in paint order.
func (s *Shape) Leaves() []*Shape {
	if s.IsLeaf() {
		return []*Shape{s}
	}
	var leaves []*Shape
	for _, sub := range s.sublayers {
		leaves = append(leaves, sub.Leaves()...)
	}
	return leaves
}

// AddAnimation attaches anim under key. An animation already under key is
// removed first, firing its completion. completion runs once, when anim
// finishes or is removed. Repeating animations only finish by removal.
func (s *Shape) AddAnimation(key string, anim *Animation, completion func()) {
	if anim == nil {
		return
	}
	s.RemoveAnimation(key)
	if s.animations == nil {
		s.animations = make(map[string]*runningAnimation)
	}

	var ra *runningAnimation
	ra = startAnimation(anim, func() {
		if s.animations[key] == ra {
			s.detachAnimation(key)
		}
		ra.finish()
	})
	ra.completion = completion
	s.animations[key] = ra
	s.order = append(s.order, key)
}

// RemoveAnimation stops and detaches the animation under key, if any.
func (s *Shape) RemoveAnimation(key string) {
	ra, ok := s.animations[key]
	if !ok {
		return
	}
	s.detachAnimation(key)
	ra.finish()
}

// RemoveAllAnimations removes every animation on the shape and its
// descendants.
func (s *Shape) RemoveAllAnimations() {
	for _, key := range slices.Clone(s.order) {
		s.RemoveAnimation(key)
	}
	for _, sub := range s.sublayers {
		sub.RemoveAllAnimations()
	}
}

// Animation returns the animation attached under key.
func (s *Shape) Animation(key string) (*Animation, bool) {
	ra, ok := s.animations[key]
	if !ok {
		return nil, false
	}
	return ra.anim, true
}

// AnimationKeys returns the attached keys in attach order.
func (s *Shape) AnimationKeys() []string {
	return slices.Clone(s.order)
}

// takeAnimation stops and detaches the animation under key without firing
// its completion.
func (s *Shape) takeAnimation(key string) bool {
	ra, ok := s.animations[key]
	if !ok {
		return false
	}
	s.detachAnimation(key)
	ra.completion = nil
	ra.finish()
	return true
}

func (s *Shape) detachAnimation(key string) {
	delete(s.animations, key)
	if i := slices.Index(s.order, key); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// Paint draws the shape tree at its frame. Fully transparent subtrees are
// skipped; partial opacity is composited as a layer.
func (s *Shape) Paint(canvas graphics.Canvas) {
	if s == nil {
		return
	}
	opacity := s.PresentationOpacity()
	if opacity <= 0 {
		return
	}

	canvas.Save()
	canvas.Translate(s.frame.Left, s.frame.Top)
	bounds := s.Bounds()
	layered := opacity < 1
	if layered {
		canvas.SaveLayerAlpha(bounds, opacity)
	}

	if s.IsLeaf() {
		rrect := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(s.cornerRadius))
		canvas.DrawRRect(rrect, s.paint(bounds))
	} else {
		for _, sub := range s.sublayers {
			sub.Paint(canvas)
		}
	}

	if layered {
		canvas.Restore()
	}
	canvas.Restore()
}

// paint resolves the leaf fill in local coordinates. A gradient with fewer
// than two colors degrades to a solid fill of its first color.
func (s *Shape) paint(bounds graphics.Rect) graphics.Paint {
	if s.kind == ShapeFill {
		return graphics.SolidPaint(s.fill)
	}
	colors := s.gradient.colors
	if len(colors) == 0 {
		return graphics.SolidPaint(graphics.ColorTransparent)
	}
	p := s.PresentationPoints()
	w, h := bounds.Width(), bounds.Height()
	return graphics.Paint{
		Color: colors[0],
		Gradient: graphics.NewLinearGradient(
			graphics.Offset{X: p.Start.X * w, Y: p.Start.Y * h},
			graphics.Offset{X: p.End.X * w, Y: p.End.Y * h},
			graphics.EvenStops(colors),
		),
	}
}
