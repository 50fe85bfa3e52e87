// Command gradientgen writes a cyclic gradient image for juliaview.
//
// The stops are spread evenly along a single row and the first stop is
// blended back in at the end, so the gradient wraps without a seam.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/lucasb-eyer/go-colorful"
)

var defaultStops = []string{
	"#000764", "#206bcb", "#edffff", "#ffaa00", "#000200",
}

type Args struct {
	Output  string   `arg:"-o,--output" default:"gradient.png" help:"PNG file to write"`
	Samples int      `arg:"-n,--samples" default:"2048" help:"number of colours in the gradient"`
	Blend   string   `arg:"-b,--blend" default:"hcl" help:"colour space to blend in: hcl, lab, luv or rgb"`
	Stops   []string `arg:"positional" help:"hex colour stops"`
}

func (Args) Description() string {
	return "gradientgen writes a cyclic colour gradient as a one pixel high PNG."
}

type blendFunc func(a, b colorful.Color, t float64) colorful.Color

var blends = map[string]blendFunc{
	"hcl": colorful.Color.BlendHcl,
	"lab": colorful.Color.BlendLab,
	"luv": colorful.Color.BlendLuv,
	"rgb": colorful.Color.BlendRgb,
}

func main() {
	var args Args
	arg.MustParse(&args)

	if err := run(args); err != nil {
		slog.Error("gradientgen", "err", err)
		os.Exit(1)
	}
}

func run(args Args) error {
	if len(args.Stops) == 0 {
		args.Stops = defaultStops
	}

	stops, err := parseStops(args.Stops)
	if err != nil {
		return err
	}

	blend, ok := blends[args.Blend]
	if !ok {
		return fmt.Errorf("unknown blend %q", args.Blend)
	}

	img, err := build(stops, args.Samples, blend)
	if err != nil {
		return err
	}

	file, err := os.Create(args.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(args.Output)
		return fmt.Errorf("png.Encode: %w", err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	slog.Info("gradient written", "file", args.Output, "samples", args.Samples, "stops", len(stops))
	return nil
}

func parseStops(hex []string) ([]colorful.Color, error) {
	stops := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		stops[i] = c
	}
	return stops, nil
}

// build samples the closed loop through stops at n evenly spaced points.
func build(stops []colorful.Color, n int, blend blendFunc) (*image.NRGBA, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("no colour stops")
	}
	if n <= 0 {
		return nil, fmt.Errorf("invalid sample count %d", n)
	}

	img := image.NewNRGBA(image.Rect(0, 0, n, 1))
	segments := float64(len(stops))
	for x := range n {
		pos := float64(x) / float64(n) * segments
		i := int(pos)
		a, b := stops[i], stops[(i+1)%len(stops)]

		r, g, bl := blend(a, b, pos-float64(i)).Clamped().RGB255()
		img.SetNRGBA(x, 0, color.NRGBA{R: r, G: g, B: bl, A: 0xff})
	}
	return img, nil
}
