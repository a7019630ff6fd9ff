package export

import (
	"fmt"
	"image/png"
	"io"
	"math"
	"os"

	letterplay "github.com/sixtyjones/letter-playground"
	"github.com/sixtyjones/letter-playground/internal/raster"
)

// RenderOptions controls PNG rasterization.
type RenderOptions struct {
	// Scale multiplies glyph units into pixels. Values <= 0 default to 1.
	Scale float64
	// Background fills the canvas before drawing. Zero value means
	// transparent.
	Background raster.RGBA
	// Foreground is the fill color. Zero value means opaque black.
	Foreground raster.RGBA
}

// Render rasterizes the path into a pixmap: even-odd fill of the glyph
// with the viewBox padding around it, plus an outline stroke of width
// |Weight| when the weight parameter is non-zero.
func Render(path *letterplay.Path, params letterplay.TransformParams, opts RenderOptions) *raster.Pixmap {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	fg := opts.Foreground
	if fg == (raster.RGBA{}) {
		fg = raster.Black
	}

	box := path.BoundingBox().Pad(Padding)
	width := int(math.Ceil(box.W * scale))
	height := int(math.Ceil(box.H * scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	pm := raster.NewPixmap(width, height)
	if opts.Background != (raster.RGBA{}) {
		pm.Clear(opts.Background)
	}

	// Map the padded box onto the pixel grid.
	device := path.Transform(
		letterplay.ScaleAbout(scale, scale, 0, 0).
			Multiply(letterplay.Translate(-box.X, -box.Y)))

	rings := raster.Flatten(device)
	raster.Fill(pm, rings, raster.FillRuleEvenOdd, fg)
	if params.Weight != 0 {
		raster.Stroke(pm, rings, math.Abs(params.Weight)*scale, fg)
	}
	return pm
}

// WritePNG renders the path and encodes it as PNG to w.
func WritePNG(w io.Writer, path *letterplay.Path, params letterplay.TransformParams, opts RenderOptions) error {
	pm := Render(path, params, opts)
	if err := png.Encode(w, pm.ToImage()); err != nil {
		return fmt.Errorf("export: failed to encode png: %w", err)
	}
	return nil
}

// SavePNG renders the path and writes it to a PNG file.
func SavePNG(name string, path *letterplay.Path, params letterplay.TransformParams, opts RenderOptions) error {
	f, err := os.Create(name) //nolint:gosec // output path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("export: failed to create %s: %w", name, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return WritePNG(f, path, params, opts)
}
