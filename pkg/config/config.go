// Package config defines the immutable configuration snapshot consumed by
// the Hover engine, the typed builder that validates raw values into a
// snapshot, and the persisted store used to restore a widget across restarts.
//
// A [Snapshot] never mutates after construction. Updating a running widget
// means building a new snapshot and handing it to the engine, which tears
// down and rebuilds the displayed view.
package config

import (
	"fmt"
	"time"

	"github.com/go-hover/hover/pkg/graphics"
)

// Shape selects the widget face outline.
type Shape int

const (
	// ShapeCircle renders the widget as a circle.
	ShapeCircle Shape = iota
	// ShapeRounded renders the widget as a rounded rectangle using the
	// appearance corner radius.
	ShapeRounded
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRounded:
		return "rounded"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ZonePosition places the dismiss zone at a screen edge.
type ZonePosition int

const (
	// ZoneBottom anchors the dismiss zone to the bottom of the screen.
	ZoneBottom ZonePosition = iota
	// ZoneTop anchors the dismiss zone to the top of the screen.
	ZoneTop
)

func (p ZonePosition) String() string {
	if p == ZoneTop {
		return "top"
	}
	return "bottom"
}

// ZoneTrigger controls when the dismiss zone becomes visible.
type ZoneTrigger int

const (
	// TriggerAlways shows the zone as soon as a pointer goes down.
	TriggerAlways ZoneTrigger = iota
	// TriggerOnLongPress shows the zone only after a long press fires.
	TriggerOnLongPress
)

func (t ZoneTrigger) String() string {
	if t == TriggerOnLongPress {
		return "on_long_press"
	}
	return "always"
}

// ZoneBehavior controls what a dismiss inside the zone does.
type ZoneBehavior int

const (
	// BehaviorHide hides the widget but keeps the engine instance alive.
	BehaviorHide ZoneBehavior = iota
	// BehaviorDestroy fully tears the widget instance down.
	BehaviorDestroy
)

func (b ZoneBehavior) String() string {
	if b == BehaviorDestroy {
		return "destroy"
	}
	return "hide"
}

// Interpolator names the easing family used by the edge-snap animation.
type Interpolator int

const (
	// InterpolatorDecelerate starts fast and slows down (default).
	InterpolatorDecelerate Interpolator = iota
	// InterpolatorAccelerate starts slow and speeds up.
	InterpolatorAccelerate
	// InterpolatorLinear applies no easing.
	InterpolatorLinear
	// InterpolatorBounce bounces at the target edge.
	InterpolatorBounce
	// InterpolatorOvershoot overshoots the target and settles back.
	InterpolatorOvershoot
)

func (i Interpolator) String() string {
	switch i {
	case InterpolatorAccelerate:
		return "accelerate"
	case InterpolatorLinear:
		return "linear"
	case InterpolatorBounce:
		return "bounce"
	case InterpolatorOvershoot:
		return "overshoot"
	default:
		return "decelerate"
	}
}

// ParseInterpolator maps an interpolator name to its enum value.
func ParseInterpolator(name string) (Interpolator, error) {
	switch name {
	case "decelerate", "":
		return InterpolatorDecelerate, nil
	case "accelerate":
		return InterpolatorAccelerate, nil
	case "linear":
		return InterpolatorLinear, nil
	case "bounce":
		return InterpolatorBounce, nil
	case "overshoot":
		return InterpolatorOvershoot, nil
	default:
		return InterpolatorDecelerate, fmt.Errorf("unknown interpolator %q", name)
	}
}

// BadgeCorner places the badge at one of the widget's four corners.
type BadgeCorner int

const (
	BadgeTopRight BadgeCorner = iota
	BadgeTopLeft
	BadgeBottomRight
	BadgeBottomLeft
)

func (c BadgeCorner) String() string {
	switch c {
	case BadgeTopLeft:
		return "top_left"
	case BadgeBottomRight:
		return "bottom_right"
	case BadgeBottomLeft:
		return "bottom_left"
	default:
		return "top_right"
	}
}

// Appearance holds the widget face styling.
type Appearance struct {
	BackgroundColor graphics.Color
	BorderColor     graphics.Color
	BorderWidth     float64
	Padding         float64
	Opacity         float64
	CornerRadius    float64
}

// ZoneStyle holds the dismiss-zone fill for both visual states. When a
// gradient is present for a state it takes precedence over the solid color.
type ZoneStyle struct {
	NormalColor    graphics.Color
	ActiveColor    graphics.Color
	NormalGradient *graphics.Gradient
	ActiveGradient *graphics.Gradient
	CornerRadius   float64
}

// DismissZone configures the screen-edge region that removes the widget.
type DismissZone struct {
	Enabled  bool
	Trigger  ZoneTrigger
	Height   float64
	Position ZonePosition
	Style    ZoneStyle
	Behavior ZoneBehavior
}

// Animations configures motion behavior.
type Animations struct {
	// SnapToEdge opts into the post-drag edge-snap animation. It is a pure
	// opt-in flag, independent of the interpolator choice.
	SnapToEdge bool
	// SnapDuration is the length of the edge-snap animation.
	SnapDuration time.Duration
	// Interpolator selects the easing family for the edge snap.
	Interpolator Interpolator
	// PressScale shrinks the widget to this factor while pressed.
	// Zero disables the press-scale animation.
	PressScale float64
	// HapticFeedback vibrates on long press.
	HapticFeedback bool
	// LongPressDuration is how long a press must hold before a long press
	// fires. Defaults to 500ms.
	LongPressDuration time.Duration
}

// Constraints bound the widget position. Nil bounds are unset.
type Constraints struct {
	MinX, MaxX   *float64
	MinY, MaxY   *float64
	KeepOnScreen bool
	// SnapToGrid floors each axis to the nearest lower multiple of this
	// many pixels. Zero disables grid snapping.
	SnapToGrid float64
}

// Badge configures the optional corner badge.
type Badge struct {
	Label           string
	Position        BadgeCorner
	BackgroundColor graphics.Color
	TextColor       graphics.Color
	Size            float64
}

// Visibility configures foreground-driven show/hide behavior.
type Visibility struct {
	// HideOnAppOpen hides the widget while the host app is foregrounded.
	HideOnAppOpen bool
	// MonitorEnabled turns the foreground signal observer on.
	MonitorEnabled bool
	// CheckInterval is the polling period for the foreground signal.
	// Defaults to one second.
	CheckInterval time.Duration
}

// CallbackFlags mark which event kinds an observer wants delivered. The
// engine skips event construction entirely for unset flags.
type CallbackFlags struct {
	Click          bool
	LongPress      bool
	Drag           bool
	Show           bool
	Hide           bool
	Dismiss        bool
	PositionChange bool
	AppState       bool
}

// Snapshot is the resolved, validated configuration for one widget
// instance. Construct one through [Builder.Build]; never mutate it after.
// The engine holds exactly one snapshot for an instance's lifetime and a
// config update replaces the whole snapshot.
type Snapshot struct {
	Size       float64
	Shape      Shape
	Draggable  bool
	Appearance Appearance
	Zone       DismissZone
	Animations Animations
	Constraint Constraints
	Badge      *Badge
	Visibility Visibility
	Flags      CallbackFlags
	// InitialPosition is where the widget first appears.
	InitialPosition graphics.Offset
}

// Default durations applied by the builder when unset.
const (
	DefaultLongPress     = 500 * time.Millisecond
	DefaultSnapDuration  = 300 * time.Millisecond
	DefaultCheckInterval = time.Second
)
