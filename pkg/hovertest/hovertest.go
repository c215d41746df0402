// Package hovertest provides test doubles for the overlay engine: a
// recording surface, a recording event sink, an in-memory config store
// and a controllable clock.
//
// Typical use:
//
//	func TestWidget(t *testing.T) {
//	    clock := hovertest.InstallFakeClock(t)
//	    surface := hovertest.NewFakeSurface()
//	    sink := hovertest.NewRecordingSink()
//
//	    e, err := engine.New(engine.Deps{
//	        Surface: surface,
//	        Screen:  engine.FixedScreen{Width: 1080, Height: 1920},
//	        Sink:    sink,
//	    })
//	    ...
//	    clock.Advance(100 * time.Millisecond)
//	}
package hovertest

import (
	"sync"
	"testing"
	"time"

	"github.com/go-hover/hover/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation and
// timer tests. Callbacks scheduled through AfterFunc fire from Advance, in
// deadline order, with Now reporting each deadline as its callback runs.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers map[int]*fakeTimer
	nextID int
}

type fakeTimer struct {
	id       int
	deadline time.Time
	fn       func()
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{
		now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		timers: make(map[int]*fakeTimer),
	}
}

// InstallFakeClock makes a FakeClock the animation time source for the
// duration of the test and restores real time afterwards.
func InstallFakeClock(t *testing.T) *FakeClock {
	t.Helper()
	c := NewFakeClock()
	prev := animation.SetClock(c)
	t.Cleanup(func() { animation.SetClock(prev) })
	return c
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d, firing every scheduled callback
// whose deadline falls inside the window. Callbacks run outside the clock
// lock, so they may read Now or schedule further timers.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		timer := c.popDue(target)
		if timer == nil {
			break
		}
		c.now = timer.deadline
		c.mu.Unlock()
		timer.fn()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// popDue removes and returns the earliest timer due at or before target.
// Caller holds mu.
func (c *FakeClock) popDue(target time.Time) *fakeTimer {
	var due *fakeTimer
	for _, t := range c.timers {
		if t.deadline.After(target) {
			continue
		}
		if due == nil || t.deadline.Before(due.deadline) ||
			(t.deadline.Equal(due.deadline) && t.id < due.id) {
			due = t
		}
	}
	if due != nil {
		delete(c.timers, due.id)
	}
	return due
}

// AfterFunc schedules fn to fire when the clock advances past d from now.
func (c *FakeClock) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timers == nil {
		c.timers = make(map[int]*fakeTimer)
	}
	id := c.nextID
	c.nextID++
	c.timers[id] = &fakeTimer{id: id, deadline: c.now.Add(d), fn: fn}
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.timers, id)
	}
}

// Set moves the clock to an exact time without firing timers.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
