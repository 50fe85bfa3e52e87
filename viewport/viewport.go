// Package viewport maps screen pixels onto the complex plane.
//
// A Viewport stores the screen-pixel position of the plane origin and the
// number of pixels per unit of plane distance. Pixel coordinates grow right
// and down from the top left corner of the output.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewport is a value type; copy it to take a snapshot.
// The zero value is not usable, create one with New.
type Viewport struct {
	center mgl64.Vec2
	scale  float64
	width  int
	height int

	initCenter mgl64.Vec2
	initScale  float64
}

// New returns a viewport for a width x height output with the plane origin
// in the middle of the screen.
// scale must be positive; non-positive values are replaced by 1.
func New(width, height int, scale float64) Viewport {
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}

	center := mgl64.Vec2{float64(width) / 2, float64(height) / 2}
	return Viewport{
		center:     center,
		scale:      scale,
		width:      width,
		height:     height,
		initCenter: center,
		initScale:  scale,
	}
}

func (v Viewport) Center() mgl64.Vec2 { return v.center }
func (v Viewport) Scale() float64     { return v.scale }

// Size returns the output dimensions in pixels.
func (v Viewport) Size() (width, height int) { return v.width, v.height }

// ToPlane converts a pixel position to a point on the complex plane.
func (v Viewport) ToPlane(p mgl64.Vec2) complex128 {
	d := p.Sub(v.center)
	return complex(d.X()/v.scale, d.Y()/v.scale)
}

// ToPixel is the inverse of ToPlane.
func (v Viewport) ToPixel(z complex128) mgl64.Vec2 {
	return v.center.Add(mgl64.Vec2{real(z), imag(z)}.Mul(v.scale))
}

// Pan moves the view by delta screen pixels.
func (v *Viewport) Pan(delta mgl64.Vec2) {
	v.center = v.center.Add(delta)
}

// ZoomAtCursor scales the view by factor, keeping the plane point under cursor
// where it is. Factors above 1 zoom in.
// It reports false and leaves the viewport untouched if factor is not a
// positive finite number, or if the new scale would leave that range.
func (v *Viewport) ZoomAtCursor(cursor mgl64.Vec2, factor float64) bool {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return false
	}
	scale := v.scale * factor
	if !validScale(scale) {
		return false
	}

	v.center = cursor.Add(v.center.Sub(cursor).Mul(factor))
	v.scale = scale
	return true
}

// ZoomToRect fits the screen rectangle spanned by corners a and b to the full
// output width, moving its center to the middle of the screen.
// Rectangles without positive width are ignored and false is returned.
func (v *Viewport) ZoomToRect(a, b mgl64.Vec2) bool {
	left, right := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	top, bottom := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())

	rectWidth := right - left
	if !(rectWidth > 0) {
		return false
	}

	k := float64(v.width) / rectWidth
	scale := v.scale * k
	if !validScale(scale) || math.IsInf(k, 0) {
		return false
	}

	rectCenter := mgl64.Vec2{(left + right) / 2, (top + bottom) / 2}
	v.center = v.center.Sub(rectCenter).Mul(k).
		Add(mgl64.Vec2{float64(v.width) / 2, float64(v.height) / 2})
	v.scale = scale
	return true
}

// Reset restores the state the viewport was created with.
func (v *Viewport) Reset() {
	v.center = v.initCenter
	v.scale = v.initScale
}

func validScale(scale float64) bool {
	return scale > 0 && !math.IsInf(scale, 0)
}
