package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements Parser using go-text/typesetting. It is an
// alternative backend to ximage; both expose the same coordinate
// convention to callers.
type gotextParser struct{}

func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &gotextFont{face: face, numGlyphs: countGlyphs(face)}, nil
}

// countGlyphs derives a glyph count from the character map. The face
// does not expose the maxp table total, so this is the number of glyphs
// addressable through a rune: a lower bound, but the meaningful one here
// because unmapped glyphs cannot be requested through this package.
func countGlyphs(face *gotext.Face) int {
	maxGID := gotext.GID(0)
	for iter := face.Cmap.Iter(); iter.Next(); {
		if _, gid := iter.Char(); gid > maxGID {
			maxGID = gid
		}
	}
	if maxGID == 0 {
		return 0
	}
	return int(maxGID) + 1
}

// gotextFont implements ParsedFont on top of a typesetting face.
// typesetting outlines are in font units with y growing upward, so both
// the em scale and a y flip are applied on extraction.
type gotextFont struct {
	face      *gotext.Face
	numGlyphs int
}

func (f *gotextFont) Name() string {
	desc := f.face.Describe()
	return desc.Family
}

func (f *gotextFont) NumGlyphs() int {
	return f.numGlyphs
}

func (f *gotextFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

func (f *gotextFont) GlyphIndex(r rune) (uint16, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0, false
	}
	return uint16(gid), true
}

func (f *gotextFont) GlyphSegments(glyphIndex uint16, sizePx float64) ([]Segment, error) {
	data := f.face.GlyphData(gotext.GID(glyphIndex))
	outline, ok := data.(gotext.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("font: glyph %d: %w", glyphIndex, ErrEmptyOutline)
	}

	scale := sizePx / float64(f.face.Upem())
	segments := make([]Segment, 0, len(outline.Segments))
	for _, seg := range outline.Segments {
		out := Segment{}
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			out.Op = SegMoveTo
		case opentype.SegmentOpLineTo:
			out.Op = SegLineTo
		case opentype.SegmentOpQuadTo:
			out.Op = SegQuadTo
		case opentype.SegmentOpCubeTo:
			out.Op = SegCubicTo
		default:
			continue
		}
		for i, arg := range seg.Args {
			out.Args[i] = SegmentPoint{
				X: float64(arg.X) * scale,
				Y: -float64(arg.Y) * scale,
			}
		}
		segments = append(segments, out)
	}
	return segments, nil
}

func (f *gotextFont) GlyphAdvance(glyphIndex uint16, sizePx float64) float64 {
	scale := sizePx / float64(f.face.Upem())
	return float64(f.face.HorizontalAdvance(gotext.GID(glyphIndex))) * scale
}
