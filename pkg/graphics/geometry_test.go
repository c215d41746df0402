package graphics

import (
	"math"
	"testing"
)

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: 2}

	if got := a.Add(b); got != (Offset{X: 4, Y: 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Distance(Offset{}); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestSizeIsEmpty(t *testing.T) {
	if (Size{Width: 10, Height: 10}).IsEmpty() {
		t.Error("non-empty size reported empty")
	}
	if !(Size{Width: 0, Height: 10}).IsEmpty() {
		t.Error("zero width not empty")
	}
	if !(Size{Width: 10, Height: -1}).IsEmpty() {
		t.Error("negative height not empty")
	}
}

func TestRect(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)

	if r.Right != 110 || r.Bottom != 70 {
		t.Errorf("rect = %+v", r)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("dimensions = %v x %v", r.Width(), r.Height())
	}

	if !r.Contains(Offset{X: 10, Y: 20}) {
		t.Error("top-left edge should count as inside")
	}
	if !r.Contains(Offset{X: 110, Y: 70}) {
		t.Error("bottom-right edge should count as inside")
	}
	if r.Contains(Offset{X: 111, Y: 30}) {
		t.Error("point past right edge should be outside")
	}

	if got := r.Clamp(Offset{X: 500, Y: -5}); got != (Offset{X: 110, Y: 20}) {
		t.Errorf("Clamp = %v", got)
	}
	inside := Offset{X: 50, Y: 40}
	if got := r.Clamp(inside); got != inside {
		t.Errorf("Clamp of inside point = %v", got)
	}
}
