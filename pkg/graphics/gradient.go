package graphics

import "fmt"

// GradientOrientation describes the axis a linear gradient runs along.
type GradientOrientation int

const (
	// GradientTopBottom runs from the top edge to the bottom edge.
	GradientTopBottom GradientOrientation = iota
	// GradientBottomTop runs from the bottom edge to the top edge.
	GradientBottomTop
	// GradientLeftRight runs from the left edge to the right edge.
	GradientLeftRight
	// GradientRightLeft runs from the right edge to the left edge.
	GradientRightLeft
	// GradientTLBR runs from the top-left corner to the bottom-right corner.
	GradientTLBR
	// GradientBLTR runs from the bottom-left corner to the top-right corner.
	GradientBLTR
)

// String returns a human-readable representation of the orientation.
func (o GradientOrientation) String() string {
	switch o {
	case GradientTopBottom:
		return "top_bottom"
	case GradientBottomTop:
		return "bottom_top"
	case GradientLeftRight:
		return "left_right"
	case GradientRightLeft:
		return "right_left"
	case GradientTLBR:
		return "tl_br"
	case GradientBLTR:
		return "bl_tr"
	default:
		return fmt.Sprintf("GradientOrientation(%d)", int(o))
	}
}

// Gradient limits match the dismiss-zone styling contract: a gradient fill
// needs at least two stops and supports at most five.
const (
	MinGradientStops = 2
	MaxGradientStops = 5
)

// Gradient describes a linear multi-stop gradient fill. Stops are spread
// evenly along the orientation axis.
type Gradient struct {
	Colors      []Color
	Orientation GradientOrientation
}

// NewGradient constructs a gradient, cloning the color slice so the value
// stays immutable for callers that reuse their slice.
func NewGradient(colors []Color, orientation GradientOrientation) Gradient {
	clone := make([]Color, len(colors))
	copy(clone, colors)
	return Gradient{Colors: clone, Orientation: orientation}
}

// IsValid reports whether the gradient has a usable stop count.
func (g Gradient) IsValid() bool {
	return len(g.Colors) >= MinGradientStops && len(g.Colors) <= MaxGradientStops
}

// Axis returns the start and end points of the gradient axis within rect.
func (g Gradient) Axis(rect Rect) (start, end Offset) {
	switch g.Orientation {
	case GradientBottomTop:
		return Offset{X: rect.Left, Y: rect.Bottom}, Offset{X: rect.Left, Y: rect.Top}
	case GradientLeftRight:
		return Offset{X: rect.Left, Y: rect.Top}, Offset{X: rect.Right, Y: rect.Top}
	case GradientRightLeft:
		return Offset{X: rect.Right, Y: rect.Top}, Offset{X: rect.Left, Y: rect.Top}
	case GradientTLBR:
		return Offset{X: rect.Left, Y: rect.Top}, Offset{X: rect.Right, Y: rect.Bottom}
	case GradientBLTR:
		return Offset{X: rect.Left, Y: rect.Bottom}, Offset{X: rect.Right, Y: rect.Top}
	default:
		return Offset{X: rect.Left, Y: rect.Top}, Offset{X: rect.Left, Y: rect.Bottom}
	}
}
