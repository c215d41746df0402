package engine

import (
	"testing"

	"github.com/go-hover/hover/pkg/config"
	"github.com/go-hover/hover/pkg/graphics"
)

func TestSolveConstraints(t *testing.T) {
	screen := graphics.Size{Width: 1080, Height: 1920}

	tests := []struct {
		name      string
		candidate graphics.Offset
		c         config.Constraints
		size      float64
		want      graphics.Offset
	}{
		{
			name:      "no constraints passes through",
			candidate: graphics.Offset{X: 37, Y: 1500},
			size:      60,
			want:      graphics.Offset{X: 37, Y: 1500},
		},
		{
			name:      "explicit min bounds clamp low values",
			candidate: graphics.Offset{X: -20, Y: 5},
			c:         config.Constraints{MinX: config.Bound(0), MinY: config.Bound(10)},
			size:      60,
			want:      graphics.Offset{X: 0, Y: 10},
		},
		{
			name:      "explicit max bounds clamp high values",
			candidate: graphics.Offset{X: 2000, Y: 3000},
			c:         config.Constraints{MaxX: config.Bound(900), MaxY: config.Bound(1700)},
			size:      60,
			want:      graphics.Offset{X: 900, Y: 1700},
		},
		{
			name:      "keep on screen clamps right and bottom by widget size",
			candidate: graphics.Offset{X: 1075, Y: 1915},
			c:         config.Constraints{KeepOnScreen: true},
			size:      60,
			want:      graphics.Offset{X: 1020, Y: 1860},
		},
		{
			name:      "keep on screen clamps negatives to zero",
			candidate: graphics.Offset{X: -5, Y: -80},
			c:         config.Constraints{KeepOnScreen: true},
			size:      60,
			want:      graphics.Offset{X: 0, Y: 0},
		},
		{
			name:      "grid snap floors to lower multiple",
			candidate: graphics.Offset{X: 37, Y: 59},
			c:         config.Constraints{SnapToGrid: 20},
			size:      60,
			want:      graphics.Offset{X: 20, Y: 40},
		},
		{
			name:      "grid snap runs after screen clamp",
			candidate: graphics.Offset{X: 1075, Y: 0},
			c:         config.Constraints{KeepOnScreen: true, SnapToGrid: 50},
			size:      60,
			// clamp to 1020 first, then floor to 1000; snapping the raw
			// 1075 first would have clamped to 1020 instead.
			want: graphics.Offset{X: 1000, Y: 0},
		},
		{
			name:      "bounds apply before screen clamp",
			candidate: graphics.Offset{X: 500, Y: 500},
			c:         config.Constraints{MinX: config.Bound(1100), KeepOnScreen: true},
			size:      60,
			want:      graphics.Offset{X: 1020, Y: 500},
		},
		{
			name:      "widget larger than screen pins to origin",
			candidate: graphics.Offset{X: 300, Y: 300},
			c:         config.Constraints{KeepOnScreen: true},
			size:      3000,
			want:      graphics.Offset{X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveConstraints(tt.candidate, tt.c, tt.size, screen)
			if got != tt.want {
				t.Errorf("SolveConstraints(%v) = %v, want %v", tt.candidate, got, tt.want)
			}

			// Solving a solved position must return it unchanged.
			again := SolveConstraints(got, tt.c, tt.size, screen)
			if again != got {
				t.Errorf("not idempotent: second solve of %v gave %v", got, again)
			}
		})
	}
}
