package engine

import (
	"math"

	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/graphics"
)

// SolveConstraints resolves a candidate widget position against the
// configured constraints. The order is fixed and observable:
//
//  1. clamp to the explicit minX/maxX/minY/maxY bounds where present,
//  2. when keepOnScreen is set, clamp both axes to
//     [0, screenDimension - widgetSize],
//  3. when snapToGrid is positive, floor each axis to the nearest lower
//     grid multiple.
//
// Grid snapping runs last so explicit bounds and screen keeping are applied
// to the raw candidate, never to an already-snapped value. The function is
// pure and idempotent: solving a solved position returns it unchanged.
func SolveConstraints(candidate graphics.Offset, c config.Constraints, widgetSize float64, screen graphics.Size) graphics.Offset {
	pos := candidate

	if c.MinX != nil && pos.X < *c.MinX {
		pos.X = *c.MinX
	}
	if c.MaxX != nil && pos.X > *c.MaxX {
		pos.X = *c.MaxX
	}
	if c.MinY != nil && pos.Y < *c.MinY {
		pos.Y = *c.MinY
	}
	if c.MaxY != nil && pos.Y > *c.MaxY {
		pos.Y = *c.MaxY
	}

	if c.KeepOnScreen {
		pos.X = clampAxis(pos.X, screen.Width-widgetSize)
		pos.Y = clampAxis(pos.Y, screen.Height-widgetSize)
	}

	if c.SnapToGrid > 0 {
		pos.X = math.Floor(pos.X/c.SnapToGrid) * c.SnapToGrid
		pos.Y = math.Floor(pos.Y/c.SnapToGrid) * c.SnapToGrid
	}

	return pos
}

func clampAxis(v, upper float64) float64 {
	if upper < 0 {
		upper = 0
	}
	if v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}
