package config

import (
	"fmt"

	"github.com/go-hover/hover/pkg/errors"
	"github.com/go-hover/hover/pkg/graphics"
)

// Builder assembles and validates a [Snapshot]. Zero value is usable; unset
// fields receive defaults at Build time.
//
// Deprecated aliases from the legacy configuration surface are accepted via
// the Legacy* setters. When both a legacy and a canonical field are present
// the canonical value wins only if it was explicitly set; otherwise the
// legacy value applies.
type Builder struct {
	snap Snapshot
	set  map[string]bool

	legacySize       float64
	legacySnapToEdge bool
	legacyZoneColor  graphics.Color
}

// NewBuilder returns a builder seeded with engine defaults.
func NewBuilder() *Builder {
	return &Builder{
		snap: Snapshot{
			Size:      60,
			Shape:     ShapeCircle,
			Draggable: true,
			Appearance: Appearance{
				BackgroundColor: graphics.RGB(0x21, 0x96, 0xF3),
				Opacity:         1,
			},
			Animations: Animations{
				SnapDuration:      DefaultSnapDuration,
				LongPressDuration: DefaultLongPress,
			},
			Visibility: Visibility{
				MonitorEnabled: true,
				CheckInterval:  DefaultCheckInterval,
			},
		},
		set: make(map[string]bool),
	}
}

func (b *Builder) mark(field string) *Builder {
	b.set[field] = true
	return b
}

// Size sets the widget face size in pixels.
func (b *Builder) Size(px float64) *Builder {
	b.snap.Size = px
	return b.mark("size")
}

// LegacySize sets the deprecated bubble-size alias for [Builder.Size].
func (b *Builder) LegacySize(px float64) *Builder {
	b.legacySize = px
	return b.mark("legacy_size")
}

// Shape sets the widget outline.
func (b *Builder) Shape(s Shape) *Builder {
	b.snap.Shape = s
	return b.mark("shape")
}

// Draggable controls whether pointer drags move the widget.
func (b *Builder) Draggable(v bool) *Builder {
	b.snap.Draggable = v
	return b.mark("draggable")
}

// Appearance sets the widget face styling.
func (b *Builder) Appearance(a Appearance) *Builder {
	b.snap.Appearance = a
	return b.mark("appearance")
}

// DismissZone configures the dismiss zone.
func (b *Builder) DismissZone(z DismissZone) *Builder {
	b.snap.Zone = z
	return b.mark("zone")
}

// LegacyZoneColor sets the deprecated single dismiss-zone color alias. It
// applies to the zone's normal state; the active state reuses it fully
// opaque.
func (b *Builder) LegacyZoneColor(c graphics.Color) *Builder {
	b.legacyZoneColor = c
	return b.mark("legacy_zone_color")
}

// Animations configures motion behavior.
func (b *Builder) Animations(a Animations) *Builder {
	b.snap.Animations = a
	return b.mark("animations")
}

// LegacySnapToEdge sets the deprecated top-level snap-to-edge alias.
func (b *Builder) LegacySnapToEdge(v bool) *Builder {
	b.legacySnapToEdge = v
	return b.mark("legacy_snap")
}

// Constraints bounds the widget position.
func (b *Builder) Constraints(c Constraints) *Builder {
	b.snap.Constraint = c
	return b.mark("constraints")
}

// Badge attaches a corner badge. Pass nil to remove.
func (b *Builder) Badge(badge *Badge) *Builder {
	b.snap.Badge = badge
	return b.mark("badge")
}

// Visibility configures foreground-driven show/hide behavior.
func (b *Builder) Visibility(v Visibility) *Builder {
	b.snap.Visibility = v
	return b.mark("visibility")
}

// Flags marks which event kinds the observer wants delivered.
func (b *Builder) Flags(f CallbackFlags) *Builder {
	b.snap.Flags = f
	return b.mark("flags")
}

// InitialPosition sets where the widget first appears.
func (b *Builder) InitialPosition(p graphics.Offset) *Builder {
	b.snap.InitialPosition = p
	return b.mark("position")
}

// Build resolves legacy aliases, applies defaults, validates every field and
// returns the immutable snapshot. All violations carry KindConfig and name
// the offending field.
func (b *Builder) Build() (Snapshot, error) {
	snap := b.snap

	// Legacy aliases apply unless the canonical field was explicitly set.
	if b.set["legacy_size"] && !b.set["size"] {
		snap.Size = b.legacySize
	}
	if b.set["legacy_snap"] && !b.set["animations"] {
		snap.Animations.SnapToEdge = b.legacySnapToEdge
	}
	if b.set["legacy_zone_color"] && !b.set["zone"] {
		snap.Zone.Style.NormalColor = b.legacyZoneColor.WithAlpha(0.5)
		snap.Zone.Style.ActiveColor = b.legacyZoneColor.WithAlpha(1)
	}

	applyDefaults(&snap)

	if err := validate(snap); err != nil {
		return Snapshot{}, err
	}

	// Clone pointer-valued members so the snapshot cannot alias builder
	// state that the caller keeps mutating.
	if snap.Badge != nil {
		badge := *snap.Badge
		snap.Badge = &badge
	}
	snap.Zone.Style.NormalGradient = cloneGradient(snap.Zone.Style.NormalGradient)
	snap.Zone.Style.ActiveGradient = cloneGradient(snap.Zone.Style.ActiveGradient)
	snap.Constraint.MinX = cloneBound(snap.Constraint.MinX)
	snap.Constraint.MaxX = cloneBound(snap.Constraint.MaxX)
	snap.Constraint.MinY = cloneBound(snap.Constraint.MinY)
	snap.Constraint.MaxY = cloneBound(snap.Constraint.MaxY)

	return snap, nil
}

func applyDefaults(snap *Snapshot) {
	if snap.Animations.LongPressDuration <= 0 {
		snap.Animations.LongPressDuration = DefaultLongPress
	}
	if snap.Animations.SnapDuration <= 0 {
		snap.Animations.SnapDuration = DefaultSnapDuration
	}
	if snap.Visibility.CheckInterval <= 0 {
		snap.Visibility.CheckInterval = DefaultCheckInterval
	}
}

func validate(snap Snapshot) error {
	const op = "config.Build"

	if snap.Size <= 0 {
		return errors.Config(op, "size", fmt.Errorf("must be positive, got %v", snap.Size))
	}
	if snap.Appearance.Opacity < 0 || snap.Appearance.Opacity > 1 {
		return errors.Config(op, "appearance.opacity", fmt.Errorf("must be in [0,1], got %v", snap.Appearance.Opacity))
	}
	if snap.Appearance.BorderWidth < 0 {
		return errors.Config(op, "appearance.borderWidth", fmt.Errorf("must not be negative, got %v", snap.Appearance.BorderWidth))
	}
	if snap.Zone.Enabled && snap.Zone.Height <= 0 {
		return errors.Config(op, "dismissZone.height", fmt.Errorf("must be positive, got %v", snap.Zone.Height))
	}
	if err := validateGradient("dismissZone.style.gradient", snap.Zone.Style.NormalGradient); err != nil {
		return err
	}
	if err := validateGradient("dismissZone.style.activeGradient", snap.Zone.Style.ActiveGradient); err != nil {
		return err
	}
	if snap.Animations.PressScale < 0 {
		return errors.Config(op, "animations.pressScale", fmt.Errorf("must not be negative, got %v", snap.Animations.PressScale))
	}
	if snap.Constraint.SnapToGrid < 0 {
		return errors.Config(op, "constraints.snapToGrid", fmt.Errorf("must not be negative, got %v", snap.Constraint.SnapToGrid))
	}
	if bad, lo, hi := boundsInverted(snap.Constraint.MinX, snap.Constraint.MaxX); bad {
		return errors.Config(op, "constraints.minX", fmt.Errorf("minX %v exceeds maxX %v", lo, hi))
	}
	if bad, lo, hi := boundsInverted(snap.Constraint.MinY, snap.Constraint.MaxY); bad {
		return errors.Config(op, "constraints.minY", fmt.Errorf("minY %v exceeds maxY %v", lo, hi))
	}
	if snap.Badge != nil {
		if snap.Badge.Label == "" {
			return errors.Config(op, "badge.label", fmt.Errorf("must not be empty"))
		}
		if snap.Badge.Size <= 0 {
			return errors.Config(op, "badge.size", fmt.Errorf("must be positive, got %v", snap.Badge.Size))
		}
	}
	return nil
}

func validateGradient(field string, g *graphics.Gradient) error {
	if g == nil {
		return nil
	}
	if !g.IsValid() {
		return errors.Config("config.Build", field,
			fmt.Errorf("needs %d to %d color stops, got %d",
				graphics.MinGradientStops, graphics.MaxGradientStops, len(g.Colors)))
	}
	return nil
}

func boundsInverted(lo, hi *float64) (bool, float64, float64) {
	if lo != nil && hi != nil && *lo > *hi {
		return true, *lo, *hi
	}
	return false, 0, 0
}

func cloneGradient(g *graphics.Gradient) *graphics.Gradient {
	if g == nil {
		return nil
	}
	clone := graphics.NewGradient(g.Colors, g.Orientation)
	return &clone
}

func cloneBound(v *float64) *float64 {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

// Bound is a convenience for building optional constraint bounds.
func Bound(v float64) *float64 { return &v }
