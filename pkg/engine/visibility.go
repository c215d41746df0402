package engine

import (
	"time"

	"github.com/go-hover/hover/pkg/animation"
	"github.com/go-hover/hover/pkg/errors"
)

// intervalMonitor is implemented by monitors that sample the foreground
// signal on a period, such as [platform.PollingMonitor]. Push-driven
// monitors have no period and are left alone.
type intervalMonitor interface {
	SetInterval(d time.Duration)
}

// visibilityCoordinator decides when the widget is on screen, driven by the
// host's foreground signal.
//
// Two states, Shown and Hidden. With hideOnAppOpen the widget shows while
// the host app is backgrounded and hides while it is foregrounded. Without
// it the widget stays shown once started; the signal is then observed only
// to emit foreground/background lifecycle events.
//
// Attachment failure is fatal for the instance: the coordinator stops
// itself instead of retrying in a loop.
type visibilityCoordinator struct {
	e       *Engine
	unsub   func()
	running bool
}

// start wires the foreground monitor and applies the initial state.
// Runs on the UI context.
func (v *visibilityCoordinator) start() error {
	cfg := v.e.cfg.Visibility
	v.running = true

	if cfg.MonitorEnabled && v.e.monitor != nil {
		if m, ok := v.e.monitor.(intervalMonitor); ok {
			m.SetInterval(cfg.CheckInterval)
		}
		v.unsub = v.e.monitor.Listen(v.onSignal)
		v.e.monitor.Start()
	}

	shown := true
	if cfg.HideOnAppOpen && v.e.monitor != nil {
		shown = !v.e.monitor.Foreground()
	}
	return v.apply(shown)
}

// stop detaches from the monitor. The engine owns view teardown.
func (v *visibilityCoordinator) stop() {
	v.running = false
	if v.unsub != nil {
		v.unsub()
		v.unsub = nil
	}
	if v.e.monitor != nil {
		v.e.monitor.Stop()
	}
}

// onSignal receives deduplicated foreground transitions from the monitor.
// The monitor may call from any goroutine; the work is posted to the UI
// context.
func (v *visibilityCoordinator) onSignal(foreground bool) {
	v.e.loop.Post(func() {
		if !v.running {
			return
		}

		if wants(v.e.cfg.Flags, EventForeground) {
			kind := EventBackground
			if foreground {
				kind = EventForeground
			}
			v.e.emit(Event{Kind: kind, Timestamp: animation.Now()})
		}

		if !v.e.cfg.Visibility.HideOnAppOpen {
			return
		}
		if err := v.apply(!foreground); err != nil {
			v.e.failAttach(err)
		}
	})
}

// apply transitions between Shown and Hidden, emitting show/hide on every
// real transition. Runs on the UI context.
func (v *visibilityCoordinator) apply(shown bool) error {
	if shown {
		if v.e.attached || v.e.dismissed {
			return nil
		}
		if err := v.e.attachSurface(); err != nil {
			return errors.E("engine.visibility.show", errors.KindAttach, err)
		}
		if wants(v.e.cfg.Flags, EventShow) {
			v.e.emit(Event{Kind: EventShow, Timestamp: animation.Now()})
		}
		return nil
	}

	if !v.e.attached {
		return nil
	}
	v.e.detachView()
	if wants(v.e.cfg.Flags, EventHide) {
		v.e.emit(Event{Kind: EventHide, Timestamp: animation.Now()})
	}
	return nil
}
