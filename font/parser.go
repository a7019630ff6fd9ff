// Package font extracts glyph outlines from TTF/OTF font data and
// converts them into the letterplay path command model.
//
// Parsing is delegated to pluggable backends: "ximage" (the default,
// golang.org/x/image/font/opentype) and "gotext"
// (github.com/go-text/typesetting). Both produce outlines in the same
// coordinate convention: y grows downward and the outline's bounding box
// is translated to start at the origin.
package font

import "sync"

// SegmentOp is the type of outline segment operation.
type SegmentOp uint8

const (
	// SegMoveTo starts a new contour.
	SegMoveTo SegmentOp = iota
	// SegLineTo draws a line to the target point.
	SegLineTo
	// SegQuadTo draws a quadratic bezier curve.
	SegQuadTo
	// SegCubicTo draws a cubic bezier curve.
	SegCubicTo
)

// SegmentPoint is one outline coordinate in pixels.
type SegmentPoint struct {
	X, Y float64
}

// Segment is one outline segment in backend-neutral form.
//   - SegMoveTo / SegLineTo: Args[0] is the target point
//   - SegQuadTo: Args[0] is the control, Args[1] the target
//   - SegCubicTo: Args[0] and Args[1] are controls, Args[2] the target
type Segment struct {
	Op   SegmentOp
	Args [3]SegmentPoint
}

// ParsedFont abstracts a parsed font file so the parsing library can be
// swapped without touching callers.
type ParsedFont interface {
	// Name returns the font family name, or "" if unavailable.
	Name() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the design units per em.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune. The second return
	// value is false when the rune is unmapped.
	GlyphIndex(r rune) (uint16, bool)

	// GlyphSegments returns the outline of a glyph scaled to sizePx
	// pixels per em, with y growing downward and the baseline at y=0.
	GlyphSegments(glyphIndex uint16, sizePx float64) ([]Segment, error)

	// GlyphAdvance returns the horizontal advance at sizePx pixels per em.
	GlyphAdvance(glyphIndex uint16, sizePx float64) float64
}

// Parser is a font parsing backend.
type Parser interface {
	// Parse parses TTF or OTF data.
	Parse(data []byte) (ParsedFont, error)
}

// DefaultParser is the name of the backend used when none is requested.
const DefaultParser = "ximage"

var (
	parsersMu sync.RWMutex
	parsers   = map[string]Parser{}
)

// RegisterParser makes a backend available under the given name,
// replacing any previous registration.
func RegisterParser(name string, p Parser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parsers[name] = p
}

// lookupParser returns the named backend.
func lookupParser(name string) (Parser, bool) {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	p, ok := parsers[name]
	return p, ok
}

func init() {
	RegisterParser("ximage", &ximageParser{})
	RegisterParser("gotext", &gotextParser{})
}
