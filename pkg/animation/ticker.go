// Package animation provides the frame-driven animation primitives that
// skeleton layers attach their pulse, slide and fade effects to.
//
// # Core Components
//
//   - [AnimationController]: drives a value from LowerBound to UpperBound over
//     a Duration with an easing Curve. Controllers can run once or repeat,
//     optionally reversing direction on every cycle.
//
//   - [Tween]: interpolates between begin and end values of any type using
//     the controller's current value.
//
//   - [Ticker]: the low-level frame callback. All active tickers are
//     advanced by [StepTickers], which the host's frame loop calls once per
//     frame.
//
// Time comes from the package [Clock]. Swap it with [SetClock] to control
// animation time in tests.
package animation

import (
	"sync"
	"time"

	"github.com/go-drift/skeleton/pkg/errors"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the frame loop.
// A panicking callback is reported through the errors package and does not
// stop the remaining tickers.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			stepTicker(ticker, now.Sub(ticker.start))
		}
	}
}

func stepTicker(ticker *Ticker, elapsed time.Duration) {
	defer errors.RecoverWithCallback("animation.StepTickers", func(any) {
		ticker.Stop()
	})
	ticker.callback(elapsed)
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// ActiveTickerCount returns the number of running tickers.
func ActiveTickerCount() int {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers)
}

// StopAllTickers deactivates every running ticker. Tests use it to keep
// repeating animations from leaking between cases.
func StopAllTickers() {
	tickerMu.Lock()
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		ticker.Stop()
	}
}
