package animation

import "time"

// Clock is the time source behind every animation and delayed callback in
// the engine: ticker elapsed times, long-press timers and frame scheduling
// all read it. Swapping in a controllable clock makes those paths
// deterministic under test.
type Clock interface {
	// Now reports the current time.
	Now() time.Time
	// AfterFunc schedules fn to run once d has elapsed. The returned
	// function cancels the callback if it has not fired yet.
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// realClock reads system time and schedules on runtime timers.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the active clock and returns the one it displaced so
// callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the active clock.
func Now() time.Time { return clock.Now() }

// After schedules fn on the active clock. The returned function cancels a
// callback that has not fired yet.
func After(d time.Duration, fn func()) (cancel func()) {
	return clock.AfterFunc(d, fn)
}
