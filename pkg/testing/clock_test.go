package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	if elapsed := clk.Now().Sub(start); elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestInstallFakeClock_DrivesAnimationClock(t *testing.T) {
	clk := InstallFakeClock(t)
	if !animation.Now().Equal(clk.Now()) {
		t.Fatal("animation clock not replaced")
	}
	clk.Advance(time.Second)
	if !animation.Now().Equal(clk.Now()) {
		t.Error("advance not visible through animation.Now")
	}
}

func TestPumpAndSettle_Fade(t *testing.T) {
	clk := InstallFakeClock(t)
	layer, _ := newLabelLayer(t)

	removed := false
	layer.RemoveLayer(skeleton.CrossDissolve(100*time.Millisecond), func() { removed = true })

	Pump(clk, 50*time.Millisecond)
	if removed {
		t.Fatal("removed before the fade finished")
	}
	if err := PumpAndSettle(clk, time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if !removed || layer.State() != skeleton.StateRemoved {
		t.Errorf("removed = %v, state = %v", removed, layer.State())
	}
}

func TestPumpAndSettle_RepeatingPulseTimesOut(t *testing.T) {
	clk := InstallFakeClock(t)
	layer, _ := newLabelLayer(t)
	if !layer.Start(nil, nil) {
		t.Fatal("solid layer should pulse by default")
	}

	err := PumpAndSettle(clk, 200*time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("PumpAndSettle() = %v, want ErrSettleTimeout", err)
	}
}

func TestPumpFrames(t *testing.T) {
	clk := InstallFakeClock(t)
	start := clk.Now()

	PumpFrames(clk, 50*time.Millisecond, 0)
	if got := clk.Now().Sub(start); got != 50*time.Millisecond {
		t.Errorf("PumpFrames advanced %v, want 50ms", got)
	}
}
