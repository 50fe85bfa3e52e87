package engine

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFrameImageSharesPixels(t *testing.T) {
	f := NewFrame(3, 2)
	if len(f.Pix) != 3*2*4 {
		t.Fatalf("len(Pix) = %d, want 24", len(f.Pix))
	}

	img := f.Image()
	copy(f.At(2, 1), []byte{1, 2, 3, 4})
	if c := img.RGBAAt(2, 1); c.R != 1 || c.G != 2 || c.B != 3 || c.A != 4 {
		t.Fatalf("Image().RGBAAt(2, 1) = %v", c)
	}
}

func TestStrokeRect(t *testing.T) {
	f := NewFrame(8, 8)
	white := [4]byte{255, 255, 255, 255}

	// Corners out of order and partly off screen.
	f.StrokeRect(mgl64.Vec2{5, 6}, mgl64.Vec2{-2, 2}, white)

	for y := range 8 {
		for x := range 8 {
			onEdge := (y == 2 || y == 6) && x <= 5 || x == 5 && y >= 2 && y <= 6
			got := bytes.Equal(f.At(x, y), white[:])
			if got != onEdge {
				t.Errorf("pixel (%d,%d) painted = %v, want %v", x, y, got, onEdge)
			}
		}
	}
}

func TestClocks(t *testing.T) {
	fc := &FrameClock{Step: 0.5}
	for i, want := range []float64{0, 0.5, 1, 1.5} {
		if got := fc.Phase(); got != want {
			t.Errorf("frame %d phase = %v, want %v", i, got, want)
		}
	}

	if got := FixedClock(2.25).Phase(); got != 2.25 {
		t.Errorf("FixedClock phase = %v", got)
	}

	wc := NewWallClock()
	a := wc.Phase()
	b := wc.Phase()
	if a < 0 || b < a {
		t.Errorf("wall clock went backwards: %v then %v", a, b)
	}
}
