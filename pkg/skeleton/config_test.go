package skeleton_test

import (
	"errors"
	"testing"
	"time"

	skerrors "github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

func TestNewConfigDefaults(t *testing.T) {
	colors := []graphics.Color{graphics.ColorRed}
	cfg := skeleton.NewConfig(skeleton.Solid, colors)
	colors[0] = graphics.ColorBlue

	if cfg.Colors[0] != graphics.ColorRed {
		t.Error("NewConfig should copy the palette")
	}
	if cfg.Animated || cfg.Animation != nil {
		t.Error("default config should not be animated")
	}
	if cfg.Transition != skeleton.CrossDissolve(250*time.Millisecond) {
		t.Errorf("default transition = %v, want crossDissolve(250ms)", cfg.Transition)
	}
	if cfg.Direction() != skeleton.DefaultPoints {
		t.Errorf("default direction = %+v, want %+v", cfg.Direction(), skeleton.DefaultPoints)
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := skeleton.NewConfig(skeleton.Gradient, skeleton.DeriveGradient(skeleton.DefaultTint, nil, true),
		skeleton.WithGradientDirection(skeleton.TopBottom),
		skeleton.WithTransition(skeleton.TransitionNone),
		skeleton.WithAnimation(skeleton.PulseAnimation(0, 0.5)),
	)
	if !cfg.Animated {
		t.Error("WithAnimation should mark the config animated")
	}
	if cfg.Transition != skeleton.TransitionNone {
		t.Errorf("transition = %v, want none", cfg.Transition)
	}
	if got, want := cfg.Direction(), skeleton.TopBottom.Points(); got != want {
		t.Errorf("direction = %+v, want %+v", got, want)
	}

	custom := skeleton.NewConfig(skeleton.Gradient, []graphics.Color{graphics.ColorRed},
		skeleton.WithGradientDirection(skeleton.TopBottom),
		skeleton.WithCustomDirection(graphics.Offset{X: 0.2, Y: 0}, graphics.Offset{X: 0.8, Y: 1}),
	)
	if got := custom.Direction(); got.Start.X != 0.2 || got.End.Y != 1 {
		t.Errorf("custom direction should win, got %+v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := skeleton.NewConfig(skeleton.Solid, []graphics.Color{graphics.ColorRed}).Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	err := skeleton.NewConfig(skeleton.Solid, nil).Validate()
	if !errors.Is(err, skeleton.ErrNoColors) {
		t.Fatalf("Validate() = %v, want ErrNoColors", err)
	}
	var se *skerrors.SkeletonError
	if !errors.As(err, &se) || se.Kind != skerrors.KindContract {
		t.Errorf("want contract SkeletonError, got %#v", err)
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []skeleton.Type{skeleton.Solid, skeleton.Gradient, skeleton.AnimatedGradient} {
		got, err := skeleton.ParseType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if got, err := skeleton.ParseType("ANIMATEDGRADIENT"); err != nil || got != skeleton.AnimatedGradient {
		t.Errorf("ParseType should ignore case, got %v, %v", got, err)
	}
	if _, err := skeleton.ParseType("shimmer"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestDirections(t *testing.T) {
	for d := skeleton.LeftRight; d <= skeleton.BottomRightTopLeft; d++ {
		parsed, err := skeleton.ParseDirection(d.String())
		if err != nil || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, err)
		}

		rest := d.Points()
		from, to := d.Trajectory()
		// Each slide moves both points by the same vector, the length of the
		// resting gradient doubled.
		wantDX := 2 * (rest.End.X - rest.Start.X)
		wantDY := 2 * (rest.End.Y - rest.Start.Y)
		if to.Start.X-from.Start.X != wantDX || to.Start.Y-from.Start.Y != wantDY {
			t.Errorf("%v start travels %+v -> %+v, want delta (%v, %v)", d, from.Start, to.Start, wantDX, wantDY)
		}
		if to.End.X-from.End.X != wantDX || to.End.Y-from.End.Y != wantDY {
			t.Errorf("%v end travels %+v -> %+v, want delta (%v, %v)", d, from.End, to.End, wantDX, wantDY)
		}
	}
	if _, err := skeleton.ParseDirection("diagonal"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestDefaultAnimation(t *testing.T) {
	if _, ok := skeleton.DefaultAnimation(skeleton.Gradient, false); ok {
		t.Error("static gradients have no default animation")
	}
	solid, ok := skeleton.DefaultAnimation(skeleton.Solid, false)
	if !ok {
		t.Fatal("solid should pulse")
	}
	if a := solid(nil); a.Opacity == nil || !a.Repeat || !a.Autoreverse {
		t.Errorf("pulse = %+v, want a repeating autoreversed opacity track", a)
	}

	ltr, _ := skeleton.DefaultAnimation(skeleton.AnimatedGradient, false)
	rtl, _ := skeleton.DefaultAnimation(skeleton.AnimatedGradient, true)
	a, b := ltr(nil), rtl(nil)
	if a.Duration != 1500*time.Millisecond || !a.Repeat {
		t.Errorf("slide = %+v, want 1.5s repeating", a)
	}
	if a.Start.Begin.X != -1 || b.Start.Begin.X != 1 {
		t.Errorf("slide origins = %v, %v, want -1 for LTR and 1 for RTL", a.Start.Begin, b.Start.Begin)
	}
}
