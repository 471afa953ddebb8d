package skeleton

import (
	stderrors "errors"
	"fmt"
	"slices"

	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/graphics"
)

var errAlreadyBuilt = stderrors.New("skeleton: layer already built")

// State is the lifecycle position of a Layer.
type State int

const (
	StateUninitialized State = iota
	StateBuilt
	StateAnimating
	StateRemoving
	StateRemoved
)

var stateNames = [...]string{
	StateUninitialized: "uninitialized",
	StateBuilt:         "built",
	StateAnimating:     "animating",
	StateRemoving:      "removing",
	StateRemoved:       "removed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Layer is the skeleton overlay for one host view. It owns a mask shape
// sized to the host's content bounds and, for text hosts, one bar per line.
//
// The lifecycle is Uninitialized, Built, Animating, Removing, Removed.
// Operations that do not apply to the current state are no-ops, so a zero
// Layer can be driven safely and a removed layer stays removed.
//
// A Layer must only be used from the frame loop goroutine.
type Layer struct {
	state     State
	mask      *Shape
	host      HostRef
	reversed  bool
	bounds    graphics.Rect
	rtl       bool
	// active is the run of the latest Start while it has leaves animating.
	active *animationRun
}

// animationRun counts the leaves one Start call still animates. Leaves
// that layout adds or drops are moved in and out of the count, so only
// finished or stopped animations bring it down to zero.
type animationRun struct {
	factory    AnimationFactory
	pending    int
	completion func()
	settled    bool
}

// NewLayer builds a layer for host. Gradient colors are applied in the given
// order, or reversed for vertical text containers. A nil direction uses
// DefaultPoints.
func NewLayer(typ Type, colors []graphics.Color, host HostRef, direction *Points) (*Layer, error) {
	l := &Layer{}
	if err := l.Build(typ, colors, host, direction); err != nil {
		return nil, err
	}
	return l, nil
}

// NewLayerFromConfig builds a layer from a validated config.
func NewLayerFromConfig(cfg Config, host HostRef) (*Layer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	points := cfg.Direction()
	return NewLayer(cfg.Type, cfg.Colors, host, &points)
}

// Build initializes a zero Layer. It fails on an empty palette or if the
// layer was already built.
func (l *Layer) Build(typ Type, colors []graphics.Color, host HostRef, direction *Points) error {
	const op = "skeleton.Layer.Build"
	if l.state != StateUninitialized {
		return errors.New(op, errors.KindContract, errAlreadyBuilt)
	}
	if len(colors) == 0 {
		return errors.New(op, errors.KindContract, ErrNoColors)
	}

	points := DefaultPoints
	if direction != nil {
		points = *direction
	}

	l.host = host
	if g, ok := host.Resolve(); ok {
		if v, isVertical := g.(VerticalTextContainer); isVertical {
			l.reversed = v.IsVerticalTextContainer()
		}
	}
	l.mask = newShapeForType(typ)
	l.mask.SetPoints(points)
	l.mask.Tint(l.orient(colors))
	l.state = StateBuilt
	l.LayoutIfNeeded()
	return nil
}

// State returns the lifecycle state.
func (l *Layer) State() State {
	return l.state
}

// Type recovers the skeleton type from the mask.
func (l *Layer) Type() Type {
	switch {
	case l.mask == nil || l.mask.Kind() == ShapeFill:
		return Solid
	case l.mask.Sliding():
		return AnimatedGradient
	default:
		return Gradient
	}
}

// Mask returns the root shape, or nil before Build.
func (l *Layer) Mask() *Shape {
	return l.mask
}

// Host returns the host reference.
func (l *Layer) Host() HostRef {
	return l.host
}

// IsAttached reports whether the layer is on screen.
func (l *Layer) IsAttached() bool {
	return l.live()
}

// Paint draws the mask while the layer is attached.
func (l *Layer) Paint(canvas graphics.Canvas) {
	if !l.live() {
		return
	}
	l.mask.Paint(canvas)
}

// LayoutIfNeeded matches the mask to the host's current geometry and
// reconciles the line bars. If the host is gone, the last known geometry is
// kept.
func (l *Layer) LayoutIfNeeded() {
	if !l.live() {
		return
	}
	g, ok := l.host.Resolve()
	if !ok {
		return
	}
	l.bounds = g.ContentBounds()
	l.rtl = g.IsRightToLeft()
	l.mask.SetFrame(l.bounds)
	l.mask.SetCornerRadius(g.CornerRadius())
	l.layoutLines(g)
}

func (l *Layer) layoutLines(g Geometry) {
	tm, ok := g.(TextMetrics)
	if !ok {
		return
	}
	a := CurrentAppearance()
	existing := l.mask.Sublayers()
	if !QualifiesForLines(tm.LineCount(), a.RenderSingleLineAsView) {
		if len(existing) == 0 {
			return
		}
		for _, bar := range existing {
			l.detachLeaf(bar)
			bar.RemoveFromParent()
		}
		l.attachLeaf(l.mask)
		l.settleIfIdle()
		return
	}

	lineHeight, ok := tm.LineHeight()
	if !ok {
		lineHeight = a.MultilineHeight
	}
	radius := a.MultilineCornerRadius
	if lc, ok := g.(LineCornerRadius); ok {
		radius = lc.LineCornerRadius()
	}
	cfg := LineConfig{
		Type:                l.Type(),
		Lines:               tm.LineCount(),
		LineHeight:          lineHeight,
		LastLineFillPercent: tm.LastLineFillPercent(),
		Spacing:             tm.LineSpacing(),
		CornerRadius:        radius,
		Bounds:              l.mask.Bounds(),
		Padding:             tm.ContentPadding(),
		RightToLeft:         g.IsRightToLeft(),
		SingleLineAsView:    a.RenderSingleLineAsView,
	}

	n := LineCount(cfg)
	if len(existing) == 0 {
		l.detachLeaf(l.mask)
	}
	for _, bar := range existing[min(len(existing), n):] {
		l.detachLeaf(bar)
	}
	bars := ReconcileLines(existing, cfg)
	for _, bar := range bars[min(len(existing), len(bars)):] {
		l.mask.AddSublayer(bar)
		bar.Tint(l.mask.Colors())
		bar.SetPoints(l.mask.Points())
		l.attachLeaf(bar)
	}
	l.settleIfIdle()
}

// Update lays the layer out again and re-tints it with colors.
func (l *Layer) Update(colors []graphics.Color) error {
	if !l.live() {
		return nil
	}
	if len(colors) == 0 {
		err := errors.New("skeleton.Layer.Update", errors.KindContract, ErrNoColors)
		errors.Report(err)
		return err
	}
	l.LayoutIfNeeded()
	l.mask.Tint(l.orient(colors))
	return nil
}

// Start attaches an animation to every leaf shape, replacing any running
// skeleton animation. A nil factory uses DefaultAnimation for the layer's
// type and reading direction. completion fires once, after every leaf
// finished or was stopped. A layer whose animations all ran to the end
// returns to StateBuilt. Start reports whether an animation was attached;
// it is false for static gradients without a factory and for layers that
// are not built.
func (l *Layer) Start(factory AnimationFactory, completion func()) bool {
	if l.state != StateBuilt && l.state != StateAnimating {
		return false
	}
	if factory == nil {
		var ok bool
		if factory, ok = DefaultAnimation(l.Type(), l.isRightToLeft()); !ok {
			return false
		}
	}

	l.removeSkeletonAnimations()

	r := &animationRun{factory: factory, completion: completion}
	l.active = r
	l.state = StateAnimating
	for _, leaf := range l.mask.Leaves() {
		l.attachLeaf(leaf)
	}
	l.settleIfIdle()
	return true
}

// attachLeaf starts the active run's animation on leaf.
func (l *Layer) attachLeaf(leaf *Shape) {
	r := l.active
	if r == nil || l.state != StateAnimating {
		return
	}
	anim := r.factory(leaf)
	if anim == nil {
		return
	}
	r.pending++
	leaf.AddAnimation(AnimationKey, anim, func() {
		r.pending--
		if r.pending == 0 {
			l.settle(r)
		}
	})
}

// detachLeaf stops the skeleton animation on a leaf that layout is about
// to drop or cover with bars, without counting it as finished.
func (l *Layer) detachLeaf(leaf *Shape) {
	if leaf.takeAnimation(AnimationKey) && l.active != nil {
		l.active.pending--
	}
}

func (l *Layer) settleIfIdle() {
	if r := l.active; r != nil && r.pending == 0 {
		l.settle(r)
	}
}

// settle ends r, returning the layer to StateBuilt if r is still its run.
func (l *Layer) settle(r *animationRun) {
	if r.settled {
		return
	}
	r.settled = true
	if l.active == r {
		l.active = nil
		if l.state == StateAnimating {
			l.state = StateBuilt
		}
	}
	if r.completion != nil {
		r.completion()
	}
}

// StopAnimation removes the skeleton animation. It is a no-op unless the
// layer is animating.
func (l *Layer) StopAnimation() {
	if l.state != StateAnimating {
		return
	}
	l.state = StateBuilt
	l.removeSkeletonAnimations()
}

// RemoveLayer detaches the layer, fading it out first for a cross-dissolve.
// completion fires once, after the layer is detached. Calls on a layer that
// is already removing or removed are ignored.
func (l *Layer) RemoveLayer(t Transition, completion func()) {
	if l.state != StateBuilt && l.state != StateAnimating {
		return
	}
	l.state = StateRemoving

	finish := func() {
		l.state = StateRemoved
		l.active = nil
		l.mask.RemoveFromParent()
		l.mask.RemoveAllAnimations()
		if completion != nil {
			completion()
		}
	}
	if !t.fades() {
		finish()
		return
	}
	l.mask.AddAnimation(fadeKey, fadeOut(t.Duration), func() {
		l.mask.SetOpacity(0)
		finish()
	})
}

func (l *Layer) live() bool {
	return l.state == StateBuilt || l.state == StateAnimating || l.state == StateRemoving
}

func (l *Layer) isRightToLeft() bool {
	if g, ok := l.host.Resolve(); ok {
		return g.IsRightToLeft()
	}
	return l.rtl
}

func (l *Layer) orient(colors []graphics.Color) []graphics.Color {
	if !l.reversed || l.mask == nil || l.mask.Kind() != ShapeGradient {
		return colors
	}
	out := slices.Clone(colors)
	slices.Reverse(out)
	return out
}

func (l *Layer) removeSkeletonAnimations() {
	var walk func(*Shape)
	walk = func(s *Shape) {
		s.RemoveAnimation(AnimationKey)
		for _, sub := range s.sublayers {
			walk(sub)
		}
	}
	walk(l.mask)
}
