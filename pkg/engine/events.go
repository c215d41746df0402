package engine

import (
	"fmt"
	"time"

	"github.com/go-hover/hover/pkg/config"
)

// EventKind identifies an interaction or lifecycle notification.
type EventKind int

const (
	// EventClick fires when a press ends without movement or long press.
	EventClick EventKind = iota
	// EventLongPress fires when a press holds past the configured duration.
	EventLongPress
	// EventDrag fires on every position update while dragging.
	EventDrag
	// EventShow fires when the widget becomes visible.
	EventShow
	// EventHide fires when the widget is removed from view.
	EventHide
	// EventDismiss fires when the widget is released inside the dismiss zone.
	EventDismiss
	// EventPositionChange fires once when a drag ends outside the dismiss zone.
	EventPositionChange
	// EventForeground fires when the host app comes to the front.
	EventForeground
	// EventBackground fires when the host app leaves the front.
	EventBackground
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventLongPress:
		return "long_press"
	case EventDrag:
		return "drag"
	case EventShow:
		return "show"
	case EventHide:
		return "hide"
	case EventDismiss:
		return "dismiss"
	case EventPositionChange:
		return "position_change"
	case EventForeground:
		return "foreground"
	case EventBackground:
		return "background"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one notification delivered to the observer. Only the fields
// relevant for the kind are populated: X/Y for drag and positionChange,
// InDismissZone for drag, Duration for longPress.
type Event struct {
	Kind          EventKind
	Timestamp     time.Time
	X, Y          float64
	InDismissZone bool
	Duration      time.Duration
}

// EventSink is the external observer receiving interaction and lifecycle
// notifications. Delivery is fire-and-forget: the engine discards the
// returned error, because a failing emit reflects a stale host bridge, not
// stale widget state. Emit must not block.
type EventSink interface {
	Emit(ev Event) error
}

// wants reports whether the observer registered for the event kind. The
// engine skips event construction entirely for unwanted kinds.
func wants(flags config.CallbackFlags, kind EventKind) bool {
	switch kind {
	case EventClick:
		return flags.Click
	case EventLongPress:
		return flags.LongPress
	case EventDrag:
		return flags.Drag
	case EventShow:
		return flags.Show
	case EventHide:
		return flags.Hide
	case EventDismiss:
		return flags.Dismiss
	case EventPositionChange:
		return flags.PositionChange
	case EventForeground, EventBackground:
		return flags.AppState
	default:
		return false
	}
}
