package engine

import (
	"testing"

	"github.com/go-hover/hover/pkg/config"
)

func TestWants(t *testing.T) {
	tests := []struct {
		kind  EventKind
		flags config.CallbackFlags
		want  bool
	}{
		{EventClick, config.CallbackFlags{Click: true}, true},
		{EventClick, config.CallbackFlags{}, false},
		{EventLongPress, config.CallbackFlags{LongPress: true}, true},
		{EventDrag, config.CallbackFlags{Drag: true}, true},
		{EventShow, config.CallbackFlags{Show: true}, true},
		{EventHide, config.CallbackFlags{Hide: true}, true},
		{EventDismiss, config.CallbackFlags{Dismiss: true}, true},
		{EventPositionChange, config.CallbackFlags{PositionChange: true}, true},
		// foreground and background share the app-state flag
		{EventForeground, config.CallbackFlags{AppState: true}, true},
		{EventBackground, config.CallbackFlags{AppState: true}, true},
		{EventForeground, config.CallbackFlags{Click: true, Drag: true}, false},
	}

	for _, tt := range tests {
		if got := wants(tt.flags, tt.kind); got != tt.want {
			t.Errorf("wants(%+v, %v) = %v, want %v", tt.flags, tt.kind, got, tt.want)
		}
	}
}

func TestEventKindString(t *testing.T) {
	kinds := map[EventKind]string{
		EventClick:          "click",
		EventLongPress:      "long_press",
		EventDrag:           "drag",
		EventShow:           "show",
		EventHide:           "hide",
		EventDismiss:        "dismiss",
		EventPositionChange: "position_change",
		EventForeground:     "foreground",
		EventBackground:     "background",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(k), k.String(), want)
		}
	}
	if got := EventKind(99).String(); got != "EventKind(99)" {
		t.Errorf("unknown kind = %q", got)
	}
}
