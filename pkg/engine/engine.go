// Package engine implements the Hover overlay interaction engine: the
// gesture state machine that interprets raw pointer input, the constraint
// solver bounding widget positions, the dismiss-zone geometry, the
// edge-snap animator and the visibility coordinator that shows or hides
// the widget as the host app moves between foreground and background.
//
// The engine is headless. The actual overlay view, the permission prompt
// and the foreground signal live behind the [Surface],
// [platform.OverlayPermission] and [platform.ForegroundMonitor] contracts
// supplied by the host bridge.
//
// All engine state is owned by one serialized UI context; pointer entry
// points and commands enqueue onto it and never block on I/O.
package engine

import (
	"fmt"
	"time"

	"github.com/go-hover/hover/pkg/animation"
	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/errors"
	"github.com/go-hover/hover/pkg/graphics"
	"github.com/go-hover/hover/pkg/icon"
	"github.com/go-hover/hover/pkg/platform"
)

// frameInterval is the animation frame period while tickers are active.
const frameInterval = 16 * time.Millisecond

// pressScaleDuration is the length of the press-scale feedback animation.
const pressScaleDuration = 100 * time.Millisecond

// Deps are the host collaborators an engine instance is built from.
// Surface and Screen are required; the rest default to no-ops.
type Deps struct {
	Surface    Surface
	Screen     Screen
	Sink       EventSink
	Monitor    platform.ForegroundMonitor
	Permission platform.OverlayPermission
	Haptics    platform.Haptics
	Activator  platform.AppActivator
	Store      config.Store
}

// Engine owns one overlay widget instance. Create with [New], configure
// with [Engine.Init], then [Engine.Start]. Commands are safe to call from
// any goroutine; the engine serializes them internally.
type Engine struct {
	loop       *platform.Loop
	surface    Surface
	screen     Screen
	sink       EventSink
	monitor    platform.ForegroundMonitor
	permission platform.OverlayPermission
	haptics    platform.Haptics
	activator  platform.AppActivator
	store      config.Store

	cfg       config.Snapshot
	hasConfig bool
	face      *icon.Resource

	// Widget runtime state, owned by the UI context.
	position   graphics.Offset
	zoneShown  bool
	zoneActive bool
	snap       *edgeSnapAnimator
	pressCtrl  *animation.AnimationController

	gesture    gestureMachine
	visibility visibilityCoordinator

	attached  bool
	started   bool
	dismissed bool

	framesRunning bool
	frameStop     func()
}

// New builds an engine around the given collaborators.
func New(deps Deps) (*Engine, error) {
	if deps.Surface == nil {
		return nil, errors.E("engine.New", errors.KindConfig, fmt.Errorf("nil Surface"))
	}
	if deps.Screen == nil {
		return nil, errors.E("engine.New", errors.KindConfig, fmt.Errorf("nil Screen"))
	}
	if deps.Permission == nil {
		deps.Permission = platform.GrantedPermission{}
	}
	if deps.Haptics == nil {
		deps.Haptics = platform.NopHaptics{}
	}
	if deps.Activator == nil {
		deps.Activator = platform.NopActivator{}
	}

	e := &Engine{
		loop:       platform.NewLoop(),
		surface:    deps.Surface,
		screen:     deps.Screen,
		sink:       deps.Sink,
		monitor:    deps.Monitor,
		permission: deps.Permission,
		haptics:    deps.Haptics,
		activator:  deps.Activator,
		store:      deps.Store,
	}
	e.gesture.e = e
	e.visibility.e = e
	return e, nil
}

// Init installs the configuration snapshot and the decoded face icon
// (nil for no icon). Calling Init on an already configured engine behaves
// like [Engine.Update].
func (e *Engine) Init(snap config.Snapshot, face *icon.Resource) error {
	var err error
	e.loop.Sync(func() {
		err = e.install(snap, face)
	})
	return err
}

// Update replaces the whole snapshot. A displayed view is torn down and
// rebuilt with the new configuration; visibility state carries over.
func (e *Engine) Update(snap config.Snapshot, face *icon.Resource) error {
	return e.Init(snap, face)
}

// install runs on the UI context.
func (e *Engine) install(snap config.Snapshot, face *icon.Resource) error {
	wasShown := e.attached
	if wasShown {
		e.detachView()
	}
	if e.face != nil && e.face != face {
		e.face.Dispose()
	}

	e.cfg = snap
	e.face = face
	e.hasConfig = true
	e.dismissed = false
	e.position = SolveConstraints(snap.InitialPosition, snap.Constraint, snap.Size, e.screen.Bounds())

	if e.store != nil {
		if err := e.store.Save(snap); err != nil {
			// Persistence is best-effort; a failed save must not take
			// down the running widget.
			errors.Report(errors.E("engine.install", errors.KindConfig, err))
		}
	}

	if wasShown {
		if err := e.attachSurface(); err != nil {
			// A refused attachment is fatal here like anywhere else: the
			// instance stops instead of letting the visibility
			// coordinator retry on the next foreground transition.
			e.shutdown()
			return errors.E("engine.Update", errors.KindAttach, err)
		}
	}
	return nil
}

// Boot restores a previously persisted snapshot from the store and
// installs it. It reports false when nothing was persisted.
func (e *Engine) Boot() (bool, error) {
	if e.store == nil {
		return false, nil
	}
	snap, found, err := e.store.Load()
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return true, e.Init(snap, nil)
}

// Start checks the overlay permission and hands the widget to the
// visibility coordinator. A missing permission and a refused attachment
// both fail Start synchronously; neither is retried.
func (e *Engine) Start() error {
	var err error
	e.loop.Sync(func() {
		if !e.hasConfig {
			err = errors.E("engine.Start", errors.KindConfig, fmt.Errorf("Init not called"))
			return
		}
		if e.started {
			return
		}
		if !e.permission.Granted() {
			err = errors.E("engine.Start", errors.KindPermission, fmt.Errorf("overlay permission not granted"))
			return
		}
		if startErr := e.visibility.start(); startErr != nil {
			e.visibility.stop()
			err = startErr
			return
		}
		e.started = true
	})
	return err
}

// Stop tears the instance down: pending timers and animations are
// canceled, the view detached, the icon released and the foreground
// monitor stopped. The engine keeps its configuration and can be started
// again.
func (e *Engine) Stop() {
	e.loop.Sync(e.shutdown)
}

// shutdown runs on the UI context.
func (e *Engine) shutdown() {
	if !e.started && !e.attached {
		return
	}
	e.visibility.stop()
	e.detachView()
	if e.face != nil {
		e.face.Dispose()
	}
	e.stopFrames()
	e.started = false
}

// Close stops the engine and shuts down its UI context. The engine is
// unusable afterwards.
func (e *Engine) Close() {
	e.Stop()
	e.loop.Stop()
}

// UpdateAppearance restyles the widget face in place, without tearing the
// view down.
func (e *Engine) UpdateAppearance(a config.Appearance) error {
	if a.Opacity < 0 || a.Opacity > 1 {
		return errors.Config("engine.UpdateAppearance", "opacity", fmt.Errorf("must be in [0,1], got %v", a.Opacity))
	}
	if a.BorderWidth < 0 {
		return errors.Config("engine.UpdateAppearance", "borderWidth", fmt.Errorf("must not be negative, got %v", a.BorderWidth))
	}
	e.loop.Sync(func() {
		e.cfg.Appearance = a
		if e.attached {
			e.surface.ApplyAppearance(a)
		}
	})
	return nil
}

// UpdateBadge replaces the corner badge; nil removes it.
func (e *Engine) UpdateBadge(b *config.Badge) error {
	if b != nil {
		if b.Label == "" {
			return errors.Config("engine.UpdateBadge", "label", fmt.Errorf("must not be empty"))
		}
		if b.Size <= 0 {
			return errors.Config("engine.UpdateBadge", "size", fmt.Errorf("must be positive, got %v", b.Size))
		}
		clone := *b
		b = &clone
	}
	e.loop.Sync(func() {
		e.cfg.Badge = b
		if e.attached {
			e.surface.SetBadge(b)
		}
	})
	return nil
}

// UpdatePosition moves the widget programmatically. The requested position
// runs through the constraint solver like any drag would.
func (e *Engine) UpdatePosition(x, y float64) {
	e.loop.Post(func() {
		e.cancelSnap()
		solved := SolveConstraints(graphics.Offset{X: x, Y: y}, e.cfg.Constraint, e.cfg.Size, e.screen.Bounds())
		e.applyPosition(solved)
		if wants(e.cfg.Flags, EventPositionChange) {
			e.emit(Event{
				Kind:      EventPositionChange,
				Timestamp: animation.Now(),
				X:         solved.X,
				Y:         solved.Y,
			})
		}
	})
}

// Position returns the current widget position.
func (e *Engine) Position() graphics.Offset {
	var pos graphics.Offset
	e.loop.Sync(func() { pos = e.position })
	return pos
}

// IsShown reports whether the widget view is currently attached.
func (e *Engine) IsShown() bool {
	var shown bool
	e.loop.Sync(func() { shown = e.attached })
	return shown
}

// Sync runs fn on the UI context and waits for it. Exposed for host
// bridges that need to coordinate with engine state.
func (e *Engine) Sync(fn func()) {
	e.loop.Sync(fn)
}

// PointerDown feeds a raw pointer-down at (x, y).
func (e *Engine) PointerDown(x, y float64) {
	e.loop.Post(func() {
		e.gesture.pointerDown(graphics.Offset{X: x, Y: y}, animation.Now())
	})
}

// PointerMove feeds a raw pointer-move at (x, y).
func (e *Engine) PointerMove(x, y float64) {
	e.loop.Post(func() {
		e.gesture.pointerMove(graphics.Offset{X: x, Y: y}, animation.Now())
	})
}

// PointerUp feeds a raw pointer-up at (x, y).
func (e *Engine) PointerUp(x, y float64) {
	e.loop.Post(func() {
		e.gesture.pointerUp(graphics.Offset{X: x, Y: y}, animation.Now())
	})
}

// PointerCancel aborts the current pointer session without emitting
// interaction events.
func (e *Engine) PointerCancel() {
	e.loop.Post(func() {
		e.gesture.pointerCancel()
	})
}

// emit delivers an event to the sink, fire-and-forget. An unreachable
// observer loses the event; it is never queued or retried.
func (e *Engine) emit(ev Event) {
	if e.sink == nil {
		return
	}
	_ = e.sink.Emit(ev)
}

// deliverClick emits a click when an observer registered for it; otherwise
// the default action brings the host app to the foreground.
func (e *Engine) deliverClick(t time.Time) {
	if wants(e.cfg.Flags, EventClick) {
		e.emit(Event{Kind: EventClick, Timestamp: t})
		return
	}
	if err := e.activator.BringToForeground(); err != nil {
		errors.Report(errors.E("engine.clickFallback", errors.KindUnknown, err))
	}
}

// applyPosition commits a solved position to the runtime state and the
// displayed view.
func (e *Engine) applyPosition(pos graphics.Offset) {
	e.position = pos
	if e.attached && e.surface.Alive() {
		e.surface.SetPosition(pos)
	}
}

// attachSurface materializes the overlay view at the current position.
func (e *Engine) attachSurface() error {
	err := e.surface.Attach(WidgetSpec{
		Config:   e.cfg,
		Icon:     e.face.Image(),
		Position: e.position,
	})
	if err != nil {
		return err
	}
	e.attached = true
	return nil
}

// detachView removes the view and cancels everything tied to it: the
// gesture session, the zone overlay, the press-scale animation and any
// in-flight edge snap.
func (e *Engine) detachView() {
	e.gesture.pointerCancel()
	e.hideZone()
	e.cancelSnap()
	e.cancelPressScale()
	if e.attached {
		e.surface.Detach()
		e.attached = false
	}
}

// failAttach handles a refused attachment after start: fatal, no retry.
func (e *Engine) failAttach(err error) {
	errors.Report(errors.E("engine.attach", errors.KindAttach, err))
	e.shutdown()
}

// applyDismissBehavior runs after a dismiss has been confirmed.
func (e *Engine) applyDismissBehavior() {
	switch e.cfg.Zone.Behavior {
	case config.BehaviorDestroy:
		if e.store != nil {
			if err := e.store.Clear(); err != nil {
				errors.Report(errors.E("engine.dismiss", errors.KindConfig, err))
			}
		}
		e.shutdown()
	default:
		// Hide the view but keep the coordinator alive. The dismissed
		// flag stops the coordinator from re-attaching on the next
		// foreground transition; Init/Update clears it.
		e.detachView()
		if e.face != nil {
			e.face.Dispose()
		}
		e.dismissed = true
		if wants(e.cfg.Flags, EventHide) {
			e.emit(Event{Kind: EventHide, Timestamp: animation.Now()})
		}
	}
}

// Dismiss-zone overlay control.

func (e *Engine) showZone() {
	if e.zoneShown || !e.cfg.Zone.Enabled || !e.attached {
		return
	}
	e.zoneShown = true
	e.zoneActive = false
	e.surface.ShowDismissZone(ResolveZoneAppearance(e.cfg.Zone, e.screen.Bounds(), false))
}

func (e *Engine) setZoneActive(active bool) {
	if active == e.zoneActive {
		return
	}
	e.zoneActive = active
	if e.zoneShown {
		e.surface.UpdateDismissZone(ResolveZoneAppearance(e.cfg.Zone, e.screen.Bounds(), active))
	}
}

func (e *Engine) hideZone() {
	if !e.zoneShown {
		return
	}
	e.zoneShown = false
	e.zoneActive = false
	e.surface.HideDismissZone()
}

// Press-scale feedback.

func (e *Engine) startPressScale() {
	if e.pressCtrl == nil {
		e.pressCtrl = animation.NewAnimationController(pressScaleDuration)
		e.pressCtrl.Curve = animation.EaseOut
		e.pressCtrl.AddListener(func() {
			if !e.attached || !e.surface.Alive() {
				return
			}
			scale := 1 + (e.cfg.Animations.PressScale-1)*e.pressCtrl.Value
			e.surface.SetScale(scale)
		})
	}
	e.pressCtrl.Forward()
	e.ensureFrames()
}

func (e *Engine) cancelPressScale() {
	if e.pressCtrl == nil {
		return
	}
	e.pressCtrl.Reset()
	if e.attached && e.surface.Alive() {
		e.surface.SetScale(1)
	}
}

// Edge snapping.

func (e *Engine) startSnap() {
	e.cancelSnap()
	target := snapTargetX(e.position.X, e.cfg.Size, e.screen.Bounds())
	if target == e.position.X {
		return
	}
	e.snap = startEdgeSnap(e.position.X, target, e.cfg.Animations,
		e.surface.Alive,
		func(x float64) {
			e.applyPosition(graphics.Offset{X: x, Y: e.position.Y})
		},
		nil,
	)
	e.ensureFrames()
}

func (e *Engine) cancelSnap() {
	if e.snap.running() {
		e.snap.cancel()
	}
	e.snap = nil
}

// Frame driving: while any ticker is active the engine steps the animation
// registry on the UI context every frameInterval.

func (e *Engine) ensureFrames() {
	if e.framesRunning {
		return
	}
	e.framesRunning = true
	e.scheduleFrame()
}

func (e *Engine) scheduleFrame() {
	e.frameStop = e.loop.PostDelayed(e.frameTick, frameInterval)
}

func (e *Engine) frameTick() {
	animation.StepTickers()
	if animation.HasActiveTickers() {
		e.scheduleFrame()
		return
	}
	e.framesRunning = false
	e.frameStop = nil
}

func (e *Engine) stopFrames() {
	if e.frameStop != nil {
		e.frameStop()
		e.frameStop = nil
	}
	e.framesRunning = false
	if e.pressCtrl != nil {
		e.pressCtrl.Dispose()
		e.pressCtrl = nil
	}
}
