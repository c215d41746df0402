package engine

import (
	"time"

	"github.com/go-hover/hover/pkg/animation"
	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/graphics"
)

// dragSlop is the displacement in pixels a pointer must travel from its
// down point before a press becomes a drag.
const dragSlop = 10.0

// hapticPulse is the vibration length for long-press feedback.
const hapticPulse = 50 * time.Millisecond

type gestureState int

const (
	gestureIdle gestureState = iota
	gesturePressStarted
	gestureDragging
	gestureLongPressed
)

// session tracks one pointer-down-to-up/cancel cycle. It is created on
// pointer-down, destroyed on pointer-up or cancel, and never persisted.
type session struct {
	// startPos is the widget position when the pointer went down.
	startPos graphics.Offset
	// startTouch is where the pointer went down.
	startTouch graphics.Offset

	lastTouch graphics.Offset
	lastTime  time.Time
	velocity  graphics.Offset

	moved           bool
	longPressFired  bool
	cancelLongPress func()
}

// gestureMachine interprets raw pointer events into click, drag and
// long-press interactions and drives the constraint solver, the dismiss
// zone and the edge-snap animator. All methods run on the engine's UI
// context.
//
// States: Idle -> PressStarted -> {Dragging | LongPressed} -> Idle.
// A long-pressed widget may still transition into Dragging so the
// on-long-press dismiss zone can be reached.
type gestureMachine struct {
	e     *Engine
	state gestureState
	sess  *session
}

func (g *gestureMachine) pointerDown(pos graphics.Offset, t time.Time) {
	if !g.e.attached {
		return
	}
	if g.sess != nil {
		// A second down without up means the previous cycle was torn;
		// treat it like a cancel before starting fresh.
		g.pointerCancel()
	}

	// A new press takes over from any in-flight edge snap.
	g.e.cancelSnap()

	g.sess = &session{
		startPos:   g.e.position,
		startTouch: pos,
		lastTouch:  pos,
		lastTime:   t,
	}
	g.state = gesturePressStarted

	cfg := g.e.cfg
	if wants(cfg.Flags, EventLongPress) || zoneTriggersOnLongPress(cfg.Zone) {
		g.sess.cancelLongPress = g.e.loop.PostDelayed(g.fireLongPress, cfg.Animations.LongPressDuration)
	}
	if cfg.Animations.PressScale > 0 {
		g.e.startPressScale()
	}
	if cfg.Zone.Enabled && cfg.Zone.Trigger == config.TriggerAlways {
		g.e.showZone()
	}
}

func (g *gestureMachine) pointerMove(pos graphics.Offset, t time.Time) {
	if g.sess == nil {
		return
	}

	if g.state != gestureDragging && pos.Distance(g.sess.startTouch) > dragSlop {
		if !g.e.cfg.Draggable {
			return
		}
		g.beginDrag()
	}
	if g.state != gestureDragging {
		return
	}

	sess := g.sess
	if dt := t.Sub(sess.lastTime); dt > 0 {
		delta := pos.Sub(sess.lastTouch)
		sess.velocity = graphics.Offset{
			X: delta.X / dt.Seconds(),
			Y: delta.Y / dt.Seconds(),
		}
	}
	sess.lastTouch = pos
	sess.lastTime = t

	candidate := sess.startPos.Add(pos.Sub(sess.startTouch))
	solved := SolveConstraints(candidate, g.e.cfg.Constraint, g.e.cfg.Size, g.e.screen.Bounds())
	g.e.applyPosition(solved)

	inside := false
	if g.e.cfg.Zone.Enabled {
		inside = ZoneContains(solved.Y, g.e.cfg.Zone, g.e.screen.Bounds())
		if g.e.zoneShown && inside != g.e.zoneActive {
			g.e.setZoneActive(inside)
		}
	}

	if wants(g.e.cfg.Flags, EventDrag) {
		g.e.emit(Event{
			Kind:          EventDrag,
			Timestamp:     t,
			X:             solved.X,
			Y:             solved.Y,
			InDismissZone: inside,
		})
	}
}

// beginDrag transitions into Dragging: the long-press timer and any
// press-scale animation die with the press.
func (g *gestureMachine) beginDrag() {
	g.stopLongPressTimer()
	g.e.cancelPressScale()
	g.sess.moved = true
	g.state = gestureDragging
}

func (g *gestureMachine) pointerUp(pos graphics.Offset, t time.Time) {
	if g.sess == nil {
		return
	}
	sess := g.sess

	g.stopLongPressTimer()
	g.e.cancelPressScale()

	switch {
	case !sess.moved && !sess.longPressFired:
		g.e.deliverClick(t)

	case g.e.zoneShown && ZoneContains(g.e.position.Y, g.e.cfg.Zone, g.e.screen.Bounds()):
		// A dismissed widget emits dismiss and nothing else; in
		// particular no positionChange for the drop position.
		if wants(g.e.cfg.Flags, EventDismiss) {
			g.e.emit(Event{Kind: EventDismiss, Timestamp: t})
		}
		g.finish()
		g.e.applyDismissBehavior()
		return

	case sess.moved:
		if wants(g.e.cfg.Flags, EventPositionChange) {
			g.e.emit(Event{
				Kind:      EventPositionChange,
				Timestamp: t,
				X:         g.e.position.X,
				Y:         g.e.position.Y,
			})
		}
		if g.e.cfg.Animations.SnapToEdge {
			g.e.startSnap()
		}
	}

	g.finish()
}

// pointerCancel performs the same cleanup as pointerUp but never emits
// click, dismiss or positionChange.
func (g *gestureMachine) pointerCancel() {
	if g.sess == nil {
		return
	}
	g.stopLongPressTimer()
	g.e.cancelPressScale()
	g.finish()
}

// finish deactivates any dismiss-zone overlay and resets to Idle.
func (g *gestureMachine) finish() {
	g.e.hideZone()
	g.sess = nil
	g.state = gestureIdle
}

// fireLongPress runs when the long-press timer elapses while the press is
// still stationary.
func (g *gestureMachine) fireLongPress() {
	if g.sess == nil || g.state != gesturePressStarted || g.sess.moved {
		return
	}
	g.sess.longPressFired = true
	g.state = gestureLongPressed

	cfg := g.e.cfg
	if wants(cfg.Flags, EventLongPress) {
		g.e.emit(Event{
			Kind:      EventLongPress,
			Timestamp: animation.Now(),
			Duration:  cfg.Animations.LongPressDuration,
		})
	}
	if cfg.Animations.HapticFeedback {
		g.e.haptics.Vibrate(hapticPulse)
	}
	if zoneTriggersOnLongPress(cfg.Zone) {
		g.e.showZone()
	}
}

func (g *gestureMachine) stopLongPressTimer() {
	if g.sess != nil && g.sess.cancelLongPress != nil {
		g.sess.cancelLongPress()
		g.sess.cancelLongPress = nil
	}
}

func zoneTriggersOnLongPress(zone config.DismissZone) bool {
	return zone.Enabled && zone.Trigger == config.TriggerOnLongPress
}
