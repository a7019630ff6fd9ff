package letterplay

import "math"

// TransformParams is the global parameter set applied to a glyph outline.
// Weight is a rendering-time stroke width; it never modifies geometry.
type TransformParams struct {
	Width     float64 // horizontal scale factor, > 0
	Height    float64 // vertical scale factor, > 0
	Weight    float64 // stroke width for rendering, 0 means fill only
	Slant     float64 // in [-1, 1]; ±1 shears by 45°
	Roundness float64 // in [0, 1]; 1 collapses controls onto their anchors
}

// DefaultParams returns the neutral parameter set.
func DefaultParams() TransformParams {
	return TransformParams{Width: 1, Height: 1}
}

// IsNeutral reports whether the parameters leave geometry unchanged.
func (tp TransformParams) IsNeutral() bool {
	return tp.Width == 1 && tp.Height == 1 && tp.Slant == 0 && tp.Roundness == 0
}

// ApplyParams derives a working path from an original path and a parameter
// set. It is pure: the original is never modified, and the same inputs
// always produce the same output.
//
// The step order is fixed and observable in the result:
//
//  1. slant, applied in pre-scale coordinate space;
//  2. scale, pivoting on the top-left of the slanted path's bounding box;
//  3. roundness, pulling each control point toward its end anchor.
//
// Scaling is skipped entirely when the slanted bounding box has zero width
// or height; a zero-extent box makes scaling meaningless.
func ApplyParams(original *Path, params TransformParams) *Path {
	p := original.Clone()

	if params.Slant != 0 {
		p = p.Transform(ShearX(math.Tan(params.Slant * math.Pi / 4)))
	}

	if params.Width != 1 || params.Height != 1 {
		box := p.BoundingBox()
		if !box.IsEmpty() {
			p = p.Transform(ScaleAbout(params.Width, params.Height, box.X, box.Y))
		}
	}

	if params.Roundness != 0 {
		p = applyRoundness(p, params.Roundness)
	}

	return p
}

// applyRoundness lerps every off-curve control point toward the end anchor
// of its command by factor t. t=1 collapses the controls exactly onto the
// anchor, degenerating the curve to a line.
func applyRoundness(p *Path, t float64) *Path {
	result := p.Clone()
	for i, cmd := range result.commands {
		switch c := cmd.(type) {
		case QuadTo:
			c.Control = c.Control.Lerp(c.Point, t)
			result.commands[i] = c
		case CubicTo:
			c.Control1 = c.Control1.Lerp(c.Point, t)
			c.Control2 = c.Control2.Lerp(c.Point, t)
			result.commands[i] = c
		}
	}
	return result
}
