package animation

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// AfterFunc falls through to a runtime timer; controller tests step
// tickers directly and never schedule callbacks.
func (c *fakeClock) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

func installFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	c := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(c)
	t.Cleanup(func() { SetClock(prev) })
	return c
}

func TestControllerForward(t *testing.T) {
	clock := installFakeClock(t)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	values := 0
	c.AddListener(func() { values++ })

	c.Forward()
	if c.Status() != AnimationForward {
		t.Errorf("status = %v, want forward", c.Status())
	}
	if !c.IsAnimating() {
		t.Error("not animating after Forward")
	}

	clock.advance(50 * time.Millisecond)
	StepTickers()
	if c.Value != 0.5 {
		t.Errorf("halfway value = %v, want 0.5", c.Value)
	}

	clock.advance(60 * time.Millisecond)
	StepTickers()
	if c.Value != 1 {
		t.Errorf("final value = %v, want 1", c.Value)
	}
	if c.Status() != AnimationCompleted {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if c.IsAnimating() {
		t.Error("still animating after completion")
	}
	if values != 2 {
		t.Errorf("listener fired %d times, want 2", values)
	}
	if HasActiveTickers() {
		t.Error("ticker still active after completion")
	}
}

func TestControllerReverse(t *testing.T) {
	clock := installFakeClock(t)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Value = 1
	c.Reverse()

	clock.advance(150 * time.Millisecond)
	StepTickers()

	if c.Value != 0 {
		t.Errorf("value = %v, want 0", c.Value)
	}
	if c.Status() != AnimationDismissed {
		t.Errorf("status = %v, want dismissed", c.Status())
	}
}

func TestControllerStatusListener(t *testing.T) {
	clock := installFakeClock(t)

	c := NewAnimationController(50 * time.Millisecond)
	defer c.Dispose()

	var statuses []AnimationStatus
	c.AddStatusListener(func(s AnimationStatus) { statuses = append(statuses, s) })

	c.Forward()
	clock.advance(60 * time.Millisecond)
	StepTickers()

	if len(statuses) != 2 || statuses[0] != AnimationForward || statuses[1] != AnimationCompleted {
		t.Errorf("statuses = %v, want [forward completed]", statuses)
	}
}

func TestControllerReset(t *testing.T) {
	clock := installFakeClock(t)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	clock.advance(50 * time.Millisecond)
	StepTickers()

	c.Reset()
	if c.Value != 0 {
		t.Errorf("value after Reset = %v, want 0", c.Value)
	}
	if c.Status() != AnimationDismissed {
		t.Errorf("status after Reset = %v", c.Status())
	}
	if HasActiveTickers() {
		t.Error("ticker survived Reset")
	}
}

func TestControllerUnsubscribe(t *testing.T) {
	clock := installFakeClock(t)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	calls := 0
	unsub := c.AddListener(func() { calls++ })
	unsub()

	c.Forward()
	clock.advance(50 * time.Millisecond)
	StepTickers()

	if calls != 0 {
		t.Errorf("unsubscribed listener fired %d times", calls)
	}
}

func TestControllerZeroDurationCompletesImmediately(t *testing.T) {
	installFakeClock(t)

	c := NewAnimationController(0)
	defer c.Dispose()

	c.Forward()
	StepTickers()

	if c.Value != 1 {
		t.Errorf("value = %v, want 1", c.Value)
	}
	if c.Status() != AnimationCompleted {
		t.Errorf("status = %v, want completed", c.Status())
	}
}

func TestTickerElapsed(t *testing.T) {
	clock := installFakeClock(t)

	var elapsed []time.Duration
	ticker := NewTicker(func(d time.Duration) { elapsed = append(elapsed, d) })
	ticker.Start()
	defer ticker.Stop()

	clock.advance(16 * time.Millisecond)
	StepTickers()
	clock.advance(16 * time.Millisecond)
	StepTickers()

	if len(elapsed) != 2 || elapsed[0] != 16*time.Millisecond || elapsed[1] != 32*time.Millisecond {
		t.Errorf("elapsed = %v", elapsed)
	}

	ticker.Stop()
	if ticker.IsActive() {
		t.Error("ticker active after Stop")
	}
	clock.advance(16 * time.Millisecond)
	StepTickers()
	if len(elapsed) != 2 {
		t.Error("stopped ticker still ticked")
	}
}
