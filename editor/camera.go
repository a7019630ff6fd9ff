package editor

import letterplay "github.com/sixtyjones/letter-playground"

// Camera maps between world (glyph) coordinates and editor-local screen
// coordinates: screen = world*zoom + offset.
type Camera struct {
	Offset letterplay.Point
	Zoom   float64
}

// NewCamera returns a camera at the origin with unit zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Matrix returns the world-to-screen transformation.
func (c *Camera) Matrix() letterplay.Matrix {
	return letterplay.Translate(c.Offset.X, c.Offset.Y).
		Multiply(letterplay.ScaleAbout(c.Zoom, c.Zoom, 0, 0))
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(p letterplay.Point) letterplay.Point {
	return c.Matrix().Apply(p)
}

// ScreenToWorld converts a screen point to world coordinates.
func (c *Camera) ScreenToWorld(p letterplay.Point) letterplay.Point {
	return c.Matrix().Invert().Apply(p)
}

// Pan translates the camera by a screen-space delta.
func (c *Camera) Pan(delta letterplay.Point) {
	c.Offset = c.Offset.Add(delta)
}

// SetZoom sets the zoom factor, clamping to a sane positive range.
func (c *Camera) SetZoom(z float64) {
	if z < 0.05 {
		z = 0.05
	}
	if z > 50 {
		z = 50
	}
	c.Zoom = z
}
