package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock via SetClock so that fades and
// slides advance deterministically.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = ClockFunc(time.Now)

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup. A nil clock restores system time.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = ClockFunc(time.Now)
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
