package engine

import (
	"errors"
	"image"
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrFrameBusy = errors.New("frame is already being rendered")

// Frame is a W x H RGBA8 buffer, row major, four bytes per pixel.
type Frame struct {
	Width  int
	Height int
	Pix    []byte

	busy atomic.Bool
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 4*width*height),
	}
}

// Image wraps the frame's pixels without copying them.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// At returns the 4 bytes of pixel (x, y).
func (f *Frame) At(x, y int) []byte {
	i := 4 * (y*f.Width + x)
	return f.Pix[i : i+4 : i+4]
}

// StrokeRect draws a one pixel outline of the rectangle spanned by a and b,
// clipped to the frame.
func (f *Frame) StrokeRect(a, b mgl64.Vec2, rgba [4]byte) {
	x0, x1 := int(math.Min(a.X(), b.X())), int(math.Max(a.X(), b.X()))
	y0, y1 := int(math.Min(a.Y(), b.Y())), int(math.Max(a.Y(), b.Y()))

	for x := x0; x <= x1; x++ {
		f.set(x, y0, rgba)
		f.set(x, y1, rgba)
	}
	for y := y0; y <= y1; y++ {
		f.set(x0, y, rgba)
		f.set(x1, y, rgba)
	}
}

func (f *Frame) set(x, y int, rgba [4]byte) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	copy(f.At(x, y), rgba[:])
}
