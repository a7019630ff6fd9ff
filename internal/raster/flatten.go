// Package raster provides scanline rasterization of glyph paths for PNG
// export and terminal previews.
package raster

import (
	letterplay "github.com/sixtyjones/letter-playground"
)

// Tolerance is the maximum distance from the true curve when flattening.
const Tolerance = 0.1

// Flatten converts a path into one closed polygon ring per subpath.
// Keeping subpaths separate is what makes even-odd parity between an
// outer contour and its counters come out right; merging them into one
// ring would create phantom edges between contours.
func Flatten(p *letterplay.Path) [][]letterplay.Point {
	var rings [][]letterplay.Point
	var ring []letterplay.Point
	var current letterplay.Point

	flush := func() {
		if len(ring) >= 2 {
			// Close the ring for fill purposes, explicit Close or not.
			if ring[0] != ring[len(ring)-1] {
				ring = append(ring, ring[0])
			}
			rings = append(rings, ring)
		}
		ring = nil
	}

	for _, cmd := range p.Commands() {
		switch c := cmd.(type) {
		case letterplay.MoveTo:
			flush()
			current = c.Point
			ring = append(ring, current)

		case letterplay.LineTo:
			current = c.Point
			ring = append(ring, current)

		case letterplay.QuadTo:
			flattenQuadratic(current, c.Control, c.Point, Tolerance, &ring)
			current = c.Point

		case letterplay.CubicTo:
			flattenCubic(current, c.Control1, c.Control2, c.Point, Tolerance, &ring)
			current = c.Point

		case letterplay.Close:
			flush()
		}
	}
	flush()
	return rings
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve.
func flattenQuadratic(p0, p1, p2 letterplay.Point, tolerance float64, points *[]letterplay.Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, points)
	flattenQuadratic(q2, q1, p2, tolerance, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 letterplay.Point, tolerance float64, points *[]letterplay.Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

// distanceToLine calculates the perpendicular distance from point p to
// the segment (a, b).
func distanceToLine(p, a, b letterplay.Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
