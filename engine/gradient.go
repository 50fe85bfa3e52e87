package engine

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrEmptyGradient = errors.New("gradient has no samples")

// Gradient is a cyclic sequence of non-premultiplied RGBA samples.
// It is never modified after construction and is safe to share between
// goroutines.
type Gradient struct {
	pix []byte
}

// NewGradient copies pix, which must hold whole RGBA tuples.
func NewGradient(pix []byte) (*Gradient, error) {
	if len(pix) == 0 {
		return nil, ErrEmptyGradient
	}
	if len(pix)%4 != 0 {
		return nil, fmt.Errorf("gradient length %d is not a multiple of 4", len(pix))
	}

	g := &Gradient{pix: make([]byte, len(pix))}
	copy(g.pix, pix)
	return g, nil
}

// GradientFromImage reads img row by row into a gradient.
func GradientFromImage(img image.Image) (*Gradient, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyGradient
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*b.Dx() {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return NewGradient(nrgba.Pix[:4*b.Dx()*b.Dy()])
}

// DecodeGradient decodes an image in any registered format into a gradient.
func DecodeGradient(r io.Reader) (*Gradient, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image.Decode: %w", err)
	}

	g, err := GradientFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s gradient: %w", format, err)
	}
	return g, nil
}

// LoadGradient decodes the gradient image at path.
func LoadGradient(path string) (*Gradient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := DecodeGradient(f)
	if err != nil {
		return nil, fmt.Errorf("loading gradient %v: %w", path, err)
	}
	return g, nil
}

// Len returns the gradient's length in bytes.
func (g *Gradient) Len() int {
	return len(g.pix)
}

// Offset maps a smoothed escape value to the byte offset of a sample.
// m*repeat is truncated toward zero before wrapping, and the result always
// lies in [0, Len()) on a tuple boundary.
func (g *Gradient) Offset(m, repeat float64) int {
	samples := float64(len(g.pix) / 4)

	t := math.Mod(math.Trunc(m*repeat), samples)
	if math.IsNaN(t) {
		return 0
	}

	i := int(t)
	if i < 0 {
		i += len(g.pix) / 4
	}
	return 4 * i
}

// Sample returns the 4 bytes starting at offset.
func (g *Gradient) Sample(offset int) []byte {
	return g.pix[offset : offset+4 : offset+4]
}
