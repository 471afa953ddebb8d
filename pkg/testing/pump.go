package testing

import (
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
)

// Pump advances the clock by d and runs one animation frame.
func Pump(clk *FakeClock, d time.Duration) {
	clk.Advance(d)
	animation.StepTickers()
}

// PumpFrames advances the clock in frame-sized steps until total has
// elapsed, running one animation frame per step. A non-positive frame
// duration defaults to 16ms.
func PumpFrames(clk *FakeClock, total, frame time.Duration) {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	for elapsed := time.Duration(0); elapsed < total; {
		step := min(frame, total-elapsed)
		Pump(clk, step)
		elapsed += step
	}
}

// PumpAndSettle runs frames until no ticker is active or timeout elapses.
// Returns ErrSettleTimeout if the animations are still running, which is
// expected for repeating pulses and slides.
func PumpAndSettle(clk *FakeClock, timeout time.Duration) error {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); animation.HasActiveTickers(); elapsed += frame {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		Pump(clk, frame)
	}
	return nil
}
