package platform

import (
	"sync"
	"time"
)

// ForegroundMonitor exposes the host's "is the app in front" boolean.
// Implementations may poll the host or receive pushed transitions; either
// way listeners only hear about value changes, never repeats.
type ForegroundMonitor interface {
	// Foreground returns the last observed value.
	Foreground() bool
	// Listen subscribes to transitions. Returns an unsubscribe function.
	Listen(handler func(foreground bool)) (unsubscribe func())
	// Start begins observing. Safe to call once.
	Start()
	// Stop ends observation and releases the underlying timer or stream.
	Stop()
}

// monitorCore holds the dedupe-and-notify logic shared by the polling and
// push monitors, modeled on the lifecycle handler registry pattern: handler
// slice copied before notification, unsubscribe by index.
type monitorCore struct {
	mu       sync.Mutex
	value    bool
	handlers map[int]func(bool)
	nextID   int
}

func newMonitorCore(initial bool) monitorCore {
	return monitorCore{value: initial, handlers: make(map[int]func(bool))}
}

func (c *monitorCore) Foreground() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *monitorCore) Listen(handler func(bool)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.handlers[id] = handler
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.handlers, id)
		c.mu.Unlock()
	}
}

// update records a new sample and notifies on change. Repeated identical
// samples are dropped.
func (c *monitorCore) update(foreground bool) {
	c.mu.Lock()
	if c.value == foreground {
		c.mu.Unlock()
		return
	}
	c.value = foreground
	handlers := make([]func(bool), 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(foreground)
	}
}

// PollingMonitor samples a probe function on a fixed interval and reports
// transitions. Samples run on the provided Loop so they serialize with the
// rest of the engine.
type PollingMonitor struct {
	monitorCore

	probe    func() bool
	interval time.Duration
	loop     *Loop

	stopMu sync.Mutex
	stop   func()
}

// NewPollingMonitor builds a monitor sampling probe every interval on loop.
func NewPollingMonitor(loop *Loop, probe func() bool, interval time.Duration) *PollingMonitor {
	return &PollingMonitor{
		monitorCore: newMonitorCore(false),
		probe:       probe,
		interval:    interval,
		loop:        loop,
	}
}

// SetInterval changes the polling period. A running monitor picks it up
// when the next tick reschedules; a stopped one on Start.
func (m *PollingMonitor) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	m.stopMu.Lock()
	defer m.stopMu.Unlock()
	m.interval = d
}

// Start begins polling. The first sample fires after one interval.
func (m *PollingMonitor) Start() {
	m.stopMu.Lock()
	defer m.stopMu.Unlock()
	if m.stop != nil {
		return
	}
	m.schedule()
}

// schedule arms the next poll tick. Caller holds stopMu.
func (m *PollingMonitor) schedule() {
	m.stop = m.loop.PostDelayed(m.tick, m.interval)
}

func (m *PollingMonitor) tick() {
	m.update(m.probe())

	m.stopMu.Lock()
	defer m.stopMu.Unlock()
	if m.stop == nil {
		return
	}
	m.schedule()
}

// Stop cancels the pending poll tick.
func (m *PollingMonitor) Stop() {
	m.stopMu.Lock()
	defer m.stopMu.Unlock()
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}

// PushMonitor receives foreground transitions pushed by the host
// environment. The host calls Push whenever its lifecycle observer fires.
type PushMonitor struct {
	monitorCore
}

// NewPushMonitor builds a push-driven monitor with the given initial value.
func NewPushMonitor(initial bool) *PushMonitor {
	return &PushMonitor{monitorCore: newMonitorCore(initial)}
}

// Push records a host-reported foreground value.
func (m *PushMonitor) Push(foreground bool) {
	m.update(foreground)
}

// Start is a no-op; push monitors are driven by the host.
func (m *PushMonitor) Start() {}

// Stop is a no-op; push monitors are driven by the host.
func (m *PushMonitor) Stop() {}
