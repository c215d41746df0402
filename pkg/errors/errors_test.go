package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	base := fmt.Errorf("boom")

	e := E("engine.Start", KindPermission, base)
	if got := e.Error(); got != "engine.Start [permission]: boom" {
		t.Errorf("Error() = %q", got)
	}

	c := Config("config.Build", "size", fmt.Errorf("must be positive"))
	if got := c.Error(); got != "config.Build [config] field=size: must be positive" {
		t.Errorf("Error() = %q", got)
	}

	if !errors.Is(e, base) {
		t.Error("wrapped error not reachable via errors.Is")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(nil) != KindUnknown {
		t.Error("nil should be KindUnknown")
	}
	if KindOf(fmt.Errorf("plain")) != KindUnknown {
		t.Error("plain error should be KindUnknown")
	}
	if KindOf(E("op", KindAttach, fmt.Errorf("x"))) != KindAttach {
		t.Error("direct HoverError kind lost")
	}

	wrapped := fmt.Errorf("outer: %w", E("op", KindResource, fmt.Errorf("x")))
	if KindOf(wrapped) != KindResource {
		t.Error("wrapped HoverError kind lost")
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		pred func(error) bool
	}{
		{KindConfig, IsConfig},
		{KindPermission, IsPermission},
		{KindAttach, IsAttach},
		{KindResource, IsResource},
	}
	for _, tt := range tests {
		err := E("op", tt.kind, fmt.Errorf("x"))
		if !tt.pred(err) {
			t.Errorf("predicate for %v rejected its own kind", tt.kind)
		}
		if tt.pred(fmt.Errorf("plain")) {
			t.Errorf("predicate for %v accepted a plain error", tt.kind)
		}
	}
}

type captureHandler struct {
	errs   []*HoverError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *HoverError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func withCaptureHandler(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })
	return h
}

func TestReport(t *testing.T) {
	h := withCaptureHandler(t)

	Report(E("engine.install", KindConfig, fmt.Errorf("save failed")))
	Report(nil) // ignored

	if len(h.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
}

func TestRecover(t *testing.T) {
	h := withCaptureHandler(t)

	func() {
		defer Recover("engine.pointerMove")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("handler received %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "engine.pointerMove" || p.Value != "boom" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("no stack captured")
	}
	if !strings.Contains(p.Error(), "engine.pointerMove") {
		t.Errorf("Error() = %q", p.Error())
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	h := withCaptureHandler(t)
	func() {
		defer Recover("op")
	}()
	if len(h.panics) != 0 {
		t.Error("Recover reported without a panic")
	}
}
