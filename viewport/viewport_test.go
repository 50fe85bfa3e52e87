package viewport

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	testWidth  = 1920
	testHeight = 1080
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestToPlaneCenterIsOrigin(t *testing.T) {
	v := New(testWidth, testHeight, 300)
	if z := v.ToPlane(v.Center()); z != 0 {
		t.Fatalf("ToPlane(center) = %v, want 0", z)
	}

	v.Pan(mgl64.Vec2{-37, 12.5})
	v.ZoomAtCursor(mgl64.Vec2{100, 900}, 3.5)
	if z := v.ToPlane(v.Center()); z != 0 {
		t.Fatalf("ToPlane(center) after transform = %v, want 0", z)
	}
}

func TestToPlane(t *testing.T) {
	v := New(testWidth, testHeight, 300)

	tests := []struct {
		pixel mgl64.Vec2
		want  complex128
	}{
		{mgl64.Vec2{960, 540}, 0},
		{mgl64.Vec2{1260, 540}, 1},
		{mgl64.Vec2{960, 240}, -1i},
		{mgl64.Vec2{0, 0}, complex(-3.2, -1.8)},
	}
	for _, tt := range tests {
		got := v.ToPlane(tt.pixel)
		if !closeTo(real(got), real(tt.want)) || !closeTo(imag(got), imag(tt.want)) {
			t.Errorf("ToPlane(%v) = %v, want %v", tt.pixel, got, tt.want)
		}
	}
}

func TestToPixelInverse(t *testing.T) {
	v := New(testWidth, testHeight, 300)
	v.ZoomAtCursor(mgl64.Vec2{400, 300}, 7)
	v.Pan(mgl64.Vec2{15, -40})

	for _, p := range []mgl64.Vec2{{0, 0}, {1919, 1079}, {400, 300}, {12.25, 800.5}} {
		got := v.ToPixel(v.ToPlane(p))
		if !closeTo(got.X(), p.X()) || !closeTo(got.Y(), p.Y()) {
			t.Errorf("ToPixel(ToPlane(%v)) = %v", p, got)
		}
	}
}

func TestPanInverse(t *testing.T) {
	v := New(testWidth, testHeight, 300)
	before := v

	for _, d := range []mgl64.Vec2{{10, -4}, {-250, 3}, {0.5, 0.25}} {
		v.Pan(d)
		v.Pan(d.Mul(-1))
		if v != before {
			t.Fatalf("Pan(%v) then Pan(-%v) = %+v, want %+v", d, d, v, before)
		}
	}
}

func TestZoomAtCursorComposition(t *testing.T) {
	cursor := mgl64.Vec2{300, 200}

	tests := []struct{ f1, f2 float64 }{
		{1.15, 1.15},
		{1.15, 1 / 1.15},
		{2, 0.25},
		{10, 3},
	}
	for _, tt := range tests {
		a := New(testWidth, testHeight, 300)
		a.ZoomAtCursor(cursor, tt.f1)
		a.ZoomAtCursor(cursor, tt.f2)

		b := New(testWidth, testHeight, 300)
		b.ZoomAtCursor(cursor, tt.f1*tt.f2)

		if !closeTo(a.Scale(), b.Scale()) ||
			!closeTo(a.Center().X(), b.Center().X()) ||
			!closeTo(a.Center().Y(), b.Center().Y()) {
			t.Errorf("f1=%v f2=%v: got center %v scale %v, want center %v scale %v",
				tt.f1, tt.f2, a.Center(), a.Scale(), b.Center(), b.Scale())
		}
	}
}

func TestZoomAtCursorKeepsPointUnderCursor(t *testing.T) {
	v := New(testWidth, testHeight, 300)
	cursor := mgl64.Vec2{1500, 100}
	before := v.ToPlane(cursor)

	v.ZoomAtCursor(cursor, 1.15)
	after := v.ToPlane(cursor)
	if !closeTo(real(before), real(after)) || !closeTo(imag(before), imag(after)) {
		t.Fatalf("plane point under cursor moved from %v to %v", before, after)
	}
}

func TestZoomAtCursorRejectsBadFactor(t *testing.T) {
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		v := New(testWidth, testHeight, 300)
		before := v
		if v.ZoomAtCursor(mgl64.Vec2{5, 5}, f) {
			t.Errorf("ZoomAtCursor(%v) reported success", f)
		}
		if v != before {
			t.Errorf("ZoomAtCursor(%v) changed the viewport", f)
		}
	}
}

func TestZoomToRectHalfWidthDoublesScale(t *testing.T) {
	v := New(testWidth, testHeight, 300)
	center := v.Center()

	a := mgl64.Vec2{center.X() - testWidth/4, center.Y() - 100}
	b := mgl64.Vec2{center.X() + testWidth/4, center.Y() + 100}
	if !v.ZoomToRect(b, a) {
		t.Fatal("ZoomToRect rejected a valid rectangle")
	}

	if v.Center() != center {
		t.Errorf("center = %v, want %v", v.Center(), center)
	}
	if v.Scale() != 600 {
		t.Errorf("scale = %v, want 600", v.Scale())
	}
}

func TestZoomToRectCentersSelection(t *testing.T) {
	v := New(testWidth, testHeight, 300)
	a, b := mgl64.Vec2{100, 100}, mgl64.Vec2{292, 208}
	target := v.ToPlane(mgl64.Vec2{196, 154})

	v.ZoomToRect(a, b)

	got := v.ToPlane(mgl64.Vec2{testWidth / 2, testHeight / 2})
	if !closeTo(real(got), real(target)) || !closeTo(imag(got), imag(target)) {
		t.Errorf("screen center maps to %v, want %v", got, target)
	}
	if !closeTo(v.Scale(), 300*testWidth/192.0) {
		t.Errorf("scale = %v, want %v", v.Scale(), 300*testWidth/192.0)
	}
}

func TestZoomToRectRejectsDegenerate(t *testing.T) {
	v := New(testWidth, testHeight, 300)
	before := v

	if v.ZoomToRect(mgl64.Vec2{50, 10}, mgl64.Vec2{50, 300}) {
		t.Error("zero width rectangle accepted")
	}
	if v != before {
		t.Errorf("viewport changed: %+v", v)
	}
}

func TestReset(t *testing.T) {
	v := New(testWidth, testHeight, 300)
	before := v

	v.Pan(mgl64.Vec2{3, 4})
	v.ZoomAtCursor(mgl64.Vec2{1, 2}, 5)
	v.Reset()
	if v != before {
		t.Fatalf("Reset = %+v, want %+v", v, before)
	}
}
