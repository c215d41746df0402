package engine

import (
	"image"

	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/graphics"
)

// Screen reports the dimensions of the display the widget floats over.
type Screen interface {
	Bounds() graphics.Size
}

// FixedScreen is a Screen with static dimensions.
type FixedScreen graphics.Size

func (s FixedScreen) Bounds() graphics.Size { return graphics.Size(s) }

// WidgetSpec carries everything a surface needs to materialize the widget
// view: the configuration snapshot, the decoded face bitmap (nil for no
// icon), and the initial position.
type WidgetSpec struct {
	Config   config.Snapshot
	Icon     image.Image
	Position graphics.Offset
}

// ZoneAppearance is the resolved dismiss-zone fill for one visual state.
// When Gradient is non-nil it takes precedence over Color.
type ZoneAppearance struct {
	Rect         graphics.Rect
	Color        graphics.Color
	Gradient     *graphics.Gradient
	CornerRadius float64
	Active       bool
}

// Surface is the host-side overlay view the engine drives. Implementations
// belong to the host bridge; the engine only ever talks to one surface and
// owns its attachment lifecycle.
//
// All calls happen on the engine's serialized UI context.
type Surface interface {
	// Attach materializes the overlay view. An error here is fatal for the
	// instance: the engine stops instead of retrying attachment.
	Attach(spec WidgetSpec) error
	// Detach removes the overlay view.
	Detach()
	// Alive reports whether the attached view still exists. Animations
	// self-cancel when it returns false.
	Alive() bool

	// SetPosition moves the widget.
	SetPosition(pos graphics.Offset)
	// SetScale applies the press-scale factor (1 = natural size).
	SetScale(scale float64)
	// ApplyAppearance restyles the widget face without re-attaching.
	ApplyAppearance(a config.Appearance)
	// SetBadge replaces the corner badge; nil removes it.
	SetBadge(b *config.Badge)

	// ShowDismissZone displays the dismiss-zone overlay.
	ShowDismissZone(z ZoneAppearance)
	// UpdateDismissZone restyles the visible dismiss-zone overlay.
	UpdateDismissZone(z ZoneAppearance)
	// HideDismissZone removes the dismiss-zone overlay.
	HideDismissZone()
}
