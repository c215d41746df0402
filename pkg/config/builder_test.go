package config

import (
	"strings"
	"testing"
	"time"

	"github.com/go-hover/hover/pkg/errors"
	"github.com/go-hover/hover/pkg/graphics"
)

func TestBuilderDefaults(t *testing.T) {
	snap, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if snap.Size != 60 {
		t.Errorf("size = %v, want 60", snap.Size)
	}
	if snap.Shape != ShapeCircle {
		t.Errorf("shape = %v, want circle", snap.Shape)
	}
	if !snap.Draggable {
		t.Error("not draggable by default")
	}
	if snap.Appearance.Opacity != 1 {
		t.Errorf("opacity = %v, want 1", snap.Appearance.Opacity)
	}
	if snap.Animations.LongPressDuration != DefaultLongPress {
		t.Errorf("long press = %v, want %v", snap.Animations.LongPressDuration, DefaultLongPress)
	}
	if snap.Animations.SnapDuration != DefaultSnapDuration {
		t.Errorf("snap duration = %v, want %v", snap.Animations.SnapDuration, DefaultSnapDuration)
	}
	if snap.Visibility.CheckInterval != DefaultCheckInterval {
		t.Errorf("check interval = %v, want %v", snap.Visibility.CheckInterval, DefaultCheckInterval)
	}
}

func TestBuilderFillsZeroDurations(t *testing.T) {
	snap, err := NewBuilder().
		Animations(Animations{SnapToEdge: true}).
		Visibility(Visibility{MonitorEnabled: true}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if snap.Animations.LongPressDuration != DefaultLongPress {
		t.Errorf("long press = %v, want default", snap.Animations.LongPressDuration)
	}
	if snap.Animations.SnapDuration != DefaultSnapDuration {
		t.Errorf("snap duration = %v, want default", snap.Animations.SnapDuration)
	}
	if snap.Visibility.CheckInterval != DefaultCheckInterval {
		t.Errorf("check interval = %v, want default", snap.Visibility.CheckInterval)
	}
}

func TestBuilderValidation(t *testing.T) {
	twoStops := graphics.NewGradient([]graphics.Color{graphics.ColorBlack, graphics.ColorWhite}, graphics.GradientTopBottom)
	oneStop := graphics.NewGradient([]graphics.Color{graphics.ColorBlack}, graphics.GradientTopBottom)
	sixStops := graphics.NewGradient(make([]graphics.Color, 6), graphics.GradientTopBottom)

	tests := []struct {
		name  string
		build func(*Builder)
		field string
	}{
		{"zero size", func(b *Builder) { b.Size(0) }, "size"},
		{"negative size", func(b *Builder) { b.Size(-5) }, "size"},
		{"opacity above one", func(b *Builder) { b.Appearance(Appearance{Opacity: 1.2}) }, "appearance.opacity"},
		{"negative opacity", func(b *Builder) { b.Appearance(Appearance{Opacity: -0.1}) }, "appearance.opacity"},
		{"negative border", func(b *Builder) { b.Appearance(Appearance{Opacity: 1, BorderWidth: -1}) }, "appearance.borderWidth"},
		{"enabled zone without height", func(b *Builder) { b.DismissZone(DismissZone{Enabled: true}) }, "dismissZone.height"},
		{"single-stop gradient", func(b *Builder) {
			b.DismissZone(DismissZone{Enabled: true, Height: 100, Style: ZoneStyle{NormalGradient: &oneStop}})
		}, "dismissZone.style.gradient"},
		{"six-stop gradient", func(b *Builder) {
			b.DismissZone(DismissZone{Enabled: true, Height: 100, Style: ZoneStyle{ActiveGradient: &sixStops}})
		}, "dismissZone.style.activeGradient"},
		{"negative press scale", func(b *Builder) { b.Animations(Animations{PressScale: -0.5}) }, "animations.pressScale"},
		{"negative grid", func(b *Builder) { b.Constraints(Constraints{SnapToGrid: -10}) }, "constraints.snapToGrid"},
		{"inverted x bounds", func(b *Builder) {
			b.Constraints(Constraints{MinX: Bound(500), MaxX: Bound(100)})
		}, "constraints.minX"},
		{"inverted y bounds", func(b *Builder) {
			b.Constraints(Constraints{MinY: Bound(500), MaxY: Bound(100)})
		}, "constraints.minY"},
		{"badge without label", func(b *Builder) { b.Badge(&Badge{Size: 18}) }, "badge.label"},
		{"badge without size", func(b *Builder) { b.Badge(&Badge{Label: "1"}) }, "badge.size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.build(b)
			_, err := b.Build()
			if !errors.IsConfig(err) {
				t.Fatalf("got %v, want config error", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %q", err, tt.field)
			}
		})
	}

	// A valid two-stop gradient passes.
	_, err := NewBuilder().
		DismissZone(DismissZone{Enabled: true, Height: 100, Style: ZoneStyle{NormalGradient: &twoStops}}).
		Build()
	if err != nil {
		t.Errorf("valid gradient rejected: %v", err)
	}
}

func TestLegacyAliases(t *testing.T) {
	t.Run("legacy size applies when canonical unset", func(t *testing.T) {
		snap, err := NewBuilder().LegacySize(48).Build()
		if err != nil {
			t.Fatal(err)
		}
		if snap.Size != 48 {
			t.Errorf("size = %v, want legacy 48", snap.Size)
		}
	})

	t.Run("canonical size wins over legacy", func(t *testing.T) {
		snap, err := NewBuilder().LegacySize(48).Size(72).Build()
		if err != nil {
			t.Fatal(err)
		}
		if snap.Size != 72 {
			t.Errorf("size = %v, want canonical 72", snap.Size)
		}
	})

	t.Run("legacy snap-to-edge applies when animations unset", func(t *testing.T) {
		snap, err := NewBuilder().LegacySnapToEdge(true).Build()
		if err != nil {
			t.Fatal(err)
		}
		if !snap.Animations.SnapToEdge {
			t.Error("legacy snapToEdge not applied")
		}
	})

	t.Run("explicit animations win over legacy snap", func(t *testing.T) {
		snap, err := NewBuilder().
			LegacySnapToEdge(true).
			Animations(Animations{SnapToEdge: false, SnapDuration: 100 * time.Millisecond}).
			Build()
		if err != nil {
			t.Fatal(err)
		}
		if snap.Animations.SnapToEdge {
			t.Error("legacy snapToEdge overrode explicit animations")
		}
	})

	t.Run("legacy zone color expands to both states", func(t *testing.T) {
		snap, err := NewBuilder().LegacyZoneColor(graphics.ColorRed).Build()
		if err != nil {
			t.Fatal(err)
		}
		if snap.Zone.Style.NormalColor != graphics.ColorRed.WithAlpha(0.5) {
			t.Errorf("normal color = %v, want half-transparent red", snap.Zone.Style.NormalColor)
		}
		if snap.Zone.Style.ActiveColor != graphics.ColorRed.WithAlpha(1) {
			t.Errorf("active color = %v, want opaque red", snap.Zone.Style.ActiveColor)
		}
	})
}

func TestBuildClonesPointerMembers(t *testing.T) {
	badge := &Badge{Label: "9", Size: 18}
	min := Bound(100)
	grad := graphics.NewGradient([]graphics.Color{graphics.ColorBlack, graphics.ColorWhite}, graphics.GradientTopBottom)

	snap, err := NewBuilder().
		Badge(badge).
		Constraints(Constraints{MinX: min}).
		DismissZone(DismissZone{Enabled: true, Height: 100, Style: ZoneStyle{NormalGradient: &grad}}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	badge.Label = "mutated"
	*min = 999
	grad.Colors[0] = graphics.ColorRed

	if snap.Badge.Label != "9" {
		t.Error("snapshot badge aliases caller's badge")
	}
	if *snap.Constraint.MinX != 100 {
		t.Error("snapshot bound aliases caller's bound")
	}
	if snap.Zone.Style.NormalGradient.Colors[0] != graphics.ColorBlack {
		t.Error("snapshot gradient aliases caller's colors")
	}
}
