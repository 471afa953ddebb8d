package config

import (
	"time"

	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

const (
	defaultHostWidth  = 320
	defaultHostHeight = 120
)

// Resolved holds the runtime values a file describes.
type Resolved struct {
	Config     skeleton.Config
	Appearance skeleton.Appearance
	// Host is a *StaticView or, for text hosts, a *StaticLabel.
	Host skeleton.Geometry
}

// Resolve turns a validated file into runtime values. An empty palette falls
// back to the appearance tint: solid skeletons use it directly and gradient
// skeletons derive a gradient from it.
func Resolve(f *File) (*Resolved, error) {
	const op = "config.Resolve"
	if err := Validate(f); err != nil {
		return nil, err
	}

	appearance, err := resolveAppearance(f.Appearance)
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}

	typ, err := skeleton.ParseType(f.Type)
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}
	colors, err := resolveColors(f, typ, appearance)
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}

	opts := []skeleton.Option{
		skeleton.WithAnimated(f.Animated),
		skeleton.WithTransition(resolveTransition(f.Transition)),
	}
	if f.Direction != "" {
		d, err := skeleton.ParseDirection(f.Direction)
		if err != nil {
			return nil, errors.New(op, errors.KindConfig, err)
		}
		opts = append(opts, skeleton.WithGradientDirection(d))
	}

	return &Resolved{
		Config:     skeleton.NewConfig(typ, colors, opts...),
		Appearance: appearance,
		Host:       resolveHost(f.Host, appearance.MultilineSpacing),
	}, nil
}

func resolveAppearance(a Appearance) (skeleton.Appearance, error) {
	out := skeleton.DefaultAppearance()
	if a.Tint != "" {
		tint, err := ParseColor(a.Tint)
		if err != nil {
			return out, err
		}
		out.TintColor = tint
		out.Gradient = skeleton.NewColorGradient(tint, skeleton.WithRepeat(true))
	}
	if a.MultilineHeight != nil {
		out.MultilineHeight = *a.MultilineHeight
	}
	if a.MultilineSpacing != nil {
		out.MultilineSpacing = *a.MultilineSpacing
	}
	if a.MultilineCornerRadius != nil {
		out.MultilineCornerRadius = *a.MultilineCornerRadius
	}
	if a.LastLineFillPercent != nil {
		out.LastLineFillPercent = *a.LastLineFillPercent
	}
	out.RenderSingleLineAsView = a.RenderSingleLineAsView
	return out, nil
}

func resolveColors(f *File, typ skeleton.Type, a skeleton.Appearance) ([]graphics.Color, error) {
	colors, err := ParseColors(f.Colors)
	if err != nil {
		return nil, err
	}
	if typ == skeleton.Solid {
		if len(colors) == 0 {
			colors = []graphics.Color{a.TintColor}
		}
		return colors, nil
	}

	if len(colors) > 1 {
		return colors, nil
	}
	base := a.TintColor
	if len(colors) == 1 {
		base = colors[0]
	}
	var opts []skeleton.GradientOption
	if f.Secondary != "" {
		secondary, err := ParseColor(f.Secondary)
		if err != nil {
			return nil, err
		}
		opts = append(opts, skeleton.WithSecondary(secondary))
	}
	if f.RepeatColors {
		opts = append(opts, skeleton.WithRepeat(true))
	}
	return skeleton.NewColorGradient(base, opts...).Colors(), nil
}

func resolveTransition(t Transition) skeleton.Transition {
	if t.Style == "none" {
		return skeleton.TransitionNone
	}
	d := skeleton.DefaultFadeDuration
	if t.Duration != "" {
		if parsed, err := time.ParseDuration(t.Duration); err == nil {
			d = parsed
		}
	}
	return skeleton.CrossDissolve(d)
}

func resolveHost(h Host, spacing float64) skeleton.Geometry {
	width, height := h.Width, h.Height
	if width == 0 {
		width = defaultHostWidth
	}
	if height == 0 {
		height = defaultHostHeight
	}
	view := StaticView{
		Bounds: graphics.RectFromLTWH(0, 0, width, height),
		Radius: h.CornerRadius,
		RTL:    h.RTL,
	}
	if h.Lines == nil {
		return &view
	}

	label := &StaticLabel{
		StaticView:  view,
		Lines:       *h.Lines,
		BarHeight:   h.LineHeight,
		FillPercent: h.LastLineFillPercent,
		Insets: graphics.EdgeInsets{
			Left:   h.Padding.Left,
			Top:    h.Padding.Top,
			Right:  h.Padding.Right,
			Bottom: h.Padding.Bottom,
		},
		Vertical: h.Vertical,
	}
	label.Spacing = spacing
	if h.LineSpacing != nil {
		label.Spacing = *h.LineSpacing
	}
	return label
}
