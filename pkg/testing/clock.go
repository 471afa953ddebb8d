package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// InstallFakeClock swaps the animation clock for a FakeClock and restores
// the previous clock when the test ends. Tickers left running by the test are
// drained first so they do not leak into later tests.
func InstallFakeClock(tb testing.TB) *FakeClock {
	tb.Helper()
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	tb.Cleanup(func() {
		animation.StopAllTickers()
		animation.SetClock(prev)
	})
	return clk
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
