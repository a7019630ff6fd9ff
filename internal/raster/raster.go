package raster

import (
	"math"
	"sort"

	letterplay "github.com/sixtyjones/letter-playground"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleEvenOdd fills points crossed by an odd number of edges.
	// Glyphs use this rule so counters become holes regardless of
	// contour winding direction.
	FillRuleEvenOdd FillRule = iota
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero
)

// edge is a non-horizontal polygon edge prepared for scanline testing.
type edge struct {
	y0, y1 float64 // y0 < y1
	x0     float64 // x at y0
	dxdy   float64
	dir    int // +1 if the original edge pointed downward
}

// active is an edge crossing the current scanline.
type active struct {
	x   float64
	dir int
}

// newEdge builds an edge from two ring points, normalizing direction.
func newEdge(p0, p1 letterplay.Point) edge {
	dir := 1
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		dir = -1
	}
	return edge{
		y0:   p0.Y,
		y1:   p1.Y,
		x0:   p0.X,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
	}
}

// Fill rasterizes the rings onto the pixmap with the given fill rule.
// All rings contribute edges to one pool, so parity across an outer
// contour and its counters produces holes.
func Fill(pm *Pixmap, rings [][]letterplay.Point, rule FillRule, c RGBA) {
	var edges []edge
	for _, ring := range rings {
		for i := 0; i+1 < len(ring); i++ {
			p0, p1 := ring[i], ring[i+1]
			if math.Abs(p1.Y-p0.Y) < 1e-9 {
				continue // horizontal edges never cross a scanline
			}
			edges = append(edges, newEdge(p0, p1))
		}
	}
	if len(edges) == 0 {
		return
	}

	yMin, yMax := edges[0].y0, edges[0].y1
	for _, e := range edges[1:] {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	top := int(math.Floor(yMin))
	bottom := int(math.Ceil(yMax))
	if top < 0 {
		top = 0
	}
	if bottom > pm.Height() {
		bottom = pm.Height()
	}

	crossings := make([]active, 0, 16)
	for y := top; y < bottom; y++ {
		scanY := float64(y) + 0.5

		crossings = crossings[:0]
		for _, e := range edges {
			if e.y0 <= scanY && scanY < e.y1 {
				crossings = append(crossings, active{
					x:   e.x0 + (scanY-e.y0)*e.dxdy,
					dir: e.dir,
				})
			}
		}
		if len(crossings) == 0 {
			continue
		}
		sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

		if rule == FillRuleEvenOdd {
			for i := 0; i+1 < len(crossings); i += 2 {
				fillSpan(pm, crossings[i].x, crossings[i+1].x, y, c)
			}
		} else {
			winding := 0
			var spanStart float64
			for _, cr := range crossings {
				if winding == 0 {
					spanStart = cr.x
				}
				winding += cr.dir
				if winding == 0 {
					fillSpan(pm, spanStart, cr.x, y, c)
				}
			}
		}
	}
}

// Stroke draws the ring outlines with the given width by filling one
// quad per flattened segment. Good enough for preview strokes; no joins
// or caps are constructed.
func Stroke(pm *Pixmap, rings [][]letterplay.Point, width float64, c RGBA) {
	if width <= 0 {
		return
	}
	half := width / 2
	for _, ring := range rings {
		for i := 0; i+1 < len(ring); i++ {
			p0, p1 := ring[i], ring[i+1]
			n := p1.Sub(p0).Normalize()
			if n.Length() == 0 {
				continue
			}
			// Perpendicular offset on both sides of the segment.
			perp := letterplay.Pt(-n.Y, n.X).Mul(half)
			quad := [][]letterplay.Point{{
				p0.Add(perp), p1.Add(perp), p1.Sub(perp), p0.Sub(perp), p0.Add(perp),
			}}
			Fill(pm, quad, FillRuleNonZero, c)
		}
	}
}

// fillSpan fills pixels between two x crossings on one scanline.
func fillSpan(pm *Pixmap, x0, x1 float64, y int, c RGBA) {
	start := int(math.Round(x0))
	end := int(math.Round(x1))
	if start < 0 {
		start = 0
	}
	if end > pm.Width() {
		end = pm.Width()
	}
	for x := start; x < end; x++ {
		pm.SetPixel(x, y, c)
	}
}
