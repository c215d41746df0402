package engine

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-hover/hover/pkg/animation"
	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/graphics"
)

// curveEase adapts one of the animation curves to the tween signature:
// t elapsed, b begin, delta total change, d duration.
func curveEase(curve func(float64) float64) ease.TweenFunc {
	return func(t, b, delta, d float32) float32 {
		return b + delta*float32(curve(float64(t/d)))
	}
}

// easeFor maps the configured interpolator family to its easing function.
// Accelerate and decelerate reuse the animation curves so the snap eases
// exactly like the controller-driven animations; bounce and overshoot come
// from the tween library. The curves match the named family, not any
// platform bit-for-bit.
func easeFor(i config.Interpolator) ease.TweenFunc {
	switch i {
	case config.InterpolatorAccelerate:
		return curveEase(animation.Accelerate)
	case config.InterpolatorLinear:
		return ease.Linear
	case config.InterpolatorBounce:
		return ease.OutBounce
	case config.InterpolatorOvershoot:
		return ease.OutBack
	default:
		return curveEase(animation.Decelerate)
	}
}

// snapTargetX picks the nearer horizontal screen edge for the given widget
// x position.
func snapTargetX(x, widgetSize float64, screen graphics.Size) float64 {
	rightEdge := screen.Width - widgetSize
	if x < rightEdge-x {
		return 0
	}
	return rightEdge
}

// edgeSnapAnimator interpolates the widget x from its drop position to the
// nearer screen edge. Frames are driven by an animation Ticker on the UI
// context; at most one animator runs at a time and starting a new one
// cancels the previous.
type edgeSnapAnimator struct {
	tween   *gween.Tween
	ticker  *animation.Ticker
	last    time.Duration
	alive   func() bool
	onFrame func(x float64)
	onDone  func()
	done    bool
}

// startEdgeSnap builds and starts the animator.
//
// alive is consulted every frame: when the underlying view no longer exists
// (widget hidden or destroyed mid-animation) the animator self-cancels
// without error.
func startEdgeSnap(fromX, toX float64, cfg config.Animations, alive func() bool, onFrame func(x float64), onDone func()) *edgeSnapAnimator {
	a := &edgeSnapAnimator{
		tween:   gween.New(float32(fromX), float32(toX), float32(cfg.SnapDuration.Seconds()), easeFor(cfg.Interpolator)),
		alive:   alive,
		onFrame: onFrame,
		onDone:  onDone,
	}
	a.ticker = animation.NewTicker(a.frame)
	a.ticker.Start()
	return a
}

func (a *edgeSnapAnimator) frame(elapsed time.Duration) {
	if a.done {
		return
	}
	if a.alive != nil && !a.alive() {
		a.cancel()
		return
	}

	dt := elapsed - a.last
	a.last = elapsed

	x, finished := a.tween.Update(float32(dt.Seconds()))
	a.onFrame(float64(x))

	if finished {
		a.cancel()
		if a.onDone != nil {
			a.onDone()
		}
	}
}

// cancel stops the animator at its current value.
func (a *edgeSnapAnimator) cancel() {
	if a.done {
		return
	}
	a.done = true
	a.ticker.Stop()
}

// running reports whether the animator is still producing frames.
func (a *edgeSnapAnimator) running() bool {
	return a != nil && !a.done
}
