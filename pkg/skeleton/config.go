package skeleton

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/graphics"
)

// ErrNoColors is returned when a skeleton is configured with an empty palette.
var ErrNoColors = stderrors.New("skeleton: at least one color is required")

// Type selects how the mask is filled.
type Type int

const (
	// Solid fills the mask with a single color and pulses by default.
	Solid Type = iota
	// Gradient fills the mask with a static gradient. It has no default animation.
	Gradient
	// AnimatedGradient fills the mask with a gradient that slides by default.
	AnimatedGradient
)

// String returns the configuration name of the type.
func (t Type) String() string {
	switch t {
	case Solid:
		return "solid"
	case Gradient:
		return "gradient"
	case AnimatedGradient:
		return "animatedGradient"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses a type name as written by Type.String. Matching ignores case.
func ParseType(s string) (Type, error) {
	for _, t := range []Type{Solid, Gradient, AnimatedGradient} {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return Solid, fmt.Errorf("unknown skeleton type %q", s)
}

// TransitionStyle identifies how a skeleton leaves the screen.
type TransitionStyle int

const (
	// TransitionStyleNone removes the skeleton immediately.
	TransitionStyleNone TransitionStyle = iota
	// TransitionStyleCrossDissolve fades the skeleton out before removing it.
	TransitionStyleCrossDissolve
)

// String returns the configuration name of the style.
func (s TransitionStyle) String() string {
	switch s {
	case TransitionStyleNone:
		return "none"
	case TransitionStyleCrossDissolve:
		return "crossDissolve"
	default:
		return fmt.Sprintf("TransitionStyle(%d)", int(s))
	}
}

// Transition describes the removal of a skeleton.
type Transition struct {
	Style TransitionStyle
	// Duration is the fade length for cross-dissolve.
	Duration time.Duration
}

// TransitionNone removes the skeleton synchronously.
var TransitionNone = Transition{Style: TransitionStyleNone}

// DefaultFadeDuration is the cross-dissolve length used when none is configured.
const DefaultFadeDuration = 250 * time.Millisecond

// CrossDissolve returns a fade-out transition of the given length.
func CrossDissolve(d time.Duration) Transition {
	return Transition{Style: TransitionStyleCrossDissolve, Duration: d}
}

// fades reports whether the transition animates. A cross-dissolve without a
// positive duration removes synchronously.
func (t Transition) fades() bool {
	return t.Style == TransitionStyleCrossDissolve && t.Duration > 0
}

func (t Transition) String() string {
	if t.Style == TransitionStyleCrossDissolve {
		return fmt.Sprintf("crossDissolve(%s)", t.Duration)
	}
	return t.Style.String()
}

// Config holds the choices for one show request. Treat it as read-only once
// built with NewConfig.
type Config struct {
	// Type selects the mask fill.
	Type Type
	// Colors is the palette, in gradient order. Must not be empty.
	Colors []graphics.Color
	// GradientDirection is the gradient flow, if any.
	GradientDirection *Direction
	// CustomDirection overrides GradientDirection with explicit unit points.
	CustomDirection *Points
	// Animated asks the presenter to start an animation after building.
	Animated bool
	// Animation replaces the type's default animation.
	Animation AnimationFactory
	// Transition controls removal.
	Transition Transition
}

// Option customizes a Config.
type Option func(*Config)

// WithGradientDirection sets the gradient flow direction.
func WithGradientDirection(d Direction) Option {
	return func(c *Config) { c.GradientDirection = &d }
}

// WithCustomDirection sets explicit gradient start and end points in unit
// coordinates. It takes precedence over WithGradientDirection.
func WithCustomDirection(start, end graphics.Offset) Option {
	return func(c *Config) { c.CustomDirection = &Points{Start: start, End: end} }
}

// WithAnimated marks the skeleton as animated.
func WithAnimated(animated bool) Option {
	return func(c *Config) { c.Animated = animated }
}

// WithAnimation sets a custom animation. It implies WithAnimated(true).
func WithAnimation(f AnimationFactory) Option {
	return func(c *Config) {
		c.Animation = f
		if f != nil {
			c.Animated = true
		}
	}
}

// WithTransition sets the removal transition.
func WithTransition(t Transition) Option {
	return func(c *Config) { c.Transition = t }
}

// NewConfig builds a Config. Defaults: no direction, not animated, default
// animation, and a 250ms cross-dissolve on removal.
func NewConfig(typ Type, colors []graphics.Color, opts ...Option) Config {
	cfg := Config{
		Type:       typ,
		Colors:     slices.Clone(colors),
		Transition: CrossDissolve(DefaultFadeDuration),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate reports caller contract violations.
func (c Config) Validate() error {
	if len(c.Colors) == 0 {
		return errors.New("skeleton.Config.Validate", errors.KindContract, ErrNoColors)
	}
	return nil
}

// Direction returns the gradient points the config resolves to: the custom
// points, else the resting vector of GradientDirection, else left to right.
func (c Config) Direction() Points {
	switch {
	case c.CustomDirection != nil:
		return *c.CustomDirection
	case c.GradientDirection != nil:
		return c.GradientDirection.Points()
	default:
		return DefaultPoints
	}
}
