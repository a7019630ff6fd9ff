package font

import (
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements Parser using golang.org/x/image/font/opentype.
type ximageParser struct{}

func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont on top of sfnt.Font. The sfnt buffer
// is reused across calls; ParsedFont instances are therefore not safe
// for concurrent use, matching the single event loop driving them.
type ximageFont struct {
	font *opentype.Font
	buf  sfnt.Buffer
}

func (f *ximageFont) Name() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (f *ximageFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

func (f *ximageFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

func (f *ximageFont) GlyphIndex(r rune) (uint16, bool) {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return uint16(gid), true
}

func (f *ximageFont) GlyphSegments(glyphIndex uint16, sizePx float64) ([]Segment, error) {
	ppem := fixed.Int26_6(sizePx * 64)
	raw, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(glyphIndex), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("font: failed to load glyph %d: %w", glyphIndex, err)
	}

	segments := make([]Segment, 0, len(raw))
	for _, seg := range raw {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegMoveTo
			out.Args[0] = fixedToSegmentPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = SegLineTo
			out.Args[0] = fixedToSegmentPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = SegQuadTo
			out.Args[0] = fixedToSegmentPoint(seg.Args[0])
			out.Args[1] = fixedToSegmentPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = SegCubicTo
			out.Args[0] = fixedToSegmentPoint(seg.Args[0])
			out.Args[1] = fixedToSegmentPoint(seg.Args[1])
			out.Args[2] = fixedToSegmentPoint(seg.Args[2])
		default:
			continue
		}
		segments = append(segments, out)
	}
	return segments, nil
}

func (f *ximageFont) GlyphAdvance(glyphIndex uint16, sizePx float64) float64 {
	ppem := fixed.Int26_6(sizePx * 64)
	advance, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(glyphIndex), ppem, 0)
	if err != nil {
		return 0
	}
	return float64(advance) / 64
}

// fixedToSegmentPoint converts a 26.6 fixed-point coordinate to pixels.
// sfnt already delivers y-down coordinates with the baseline at zero.
func fixedToSegmentPoint(p fixed.Point26_6) SegmentPoint {
	return SegmentPoint{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	}
}
