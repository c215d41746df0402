package engine

import (
	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/graphics"
)

// ZoneContains reports whether a widget y position lies inside the dismiss
// zone. The zone is a horizontal band of the configured height anchored to
// the top or bottom screen edge; membership is a pure threshold test, so a
// fixed position is never "sometimes" inside.
func ZoneContains(y float64, zone config.DismissZone, screen graphics.Size) bool {
	if !zone.Enabled {
		return false
	}
	if zone.Position == config.ZoneTop {
		return y <= zone.Height
	}
	return y >= screen.Height-zone.Height
}

// ZoneRect returns the on-screen rectangle of the dismiss zone band.
func ZoneRect(zone config.DismissZone, screen graphics.Size) graphics.Rect {
	if zone.Position == config.ZoneTop {
		return graphics.RectFromLTWH(0, 0, screen.Width, zone.Height)
	}
	return graphics.RectFromLTWH(0, screen.Height-zone.Height, screen.Width, zone.Height)
}

// ResolveZoneAppearance selects the fill for the requested visual state.
// The zone has exactly two variants: inactive (the default, typically
// half-transparent) and active (saturated, shown while the widget hovers
// inside). A configured gradient takes precedence over the solid color for
// its state.
func ResolveZoneAppearance(zone config.DismissZone, screen graphics.Size, active bool) ZoneAppearance {
	z := ZoneAppearance{
		Rect:         ZoneRect(zone, screen),
		CornerRadius: zone.Style.CornerRadius,
		Active:       active,
	}
	if active {
		z.Color = zone.Style.ActiveColor
		z.Gradient = zone.Style.ActiveGradient
	} else {
		z.Color = zone.Style.NormalColor
		z.Gradient = zone.Style.NormalGradient
	}
	return z
}
