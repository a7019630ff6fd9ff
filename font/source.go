package font

import (
	"fmt"
	"os"

	letterplay "github.com/sixtyjones/letter-playground"
)

// Source is a loaded font. It implements letterplay.OutlineSource.
// A Source is immutable after creation; replacing the active font means
// creating a new Source, so a failed load never disturbs the last good
// one.
type Source struct {
	data   []byte
	parsed ParsedFont
	name   string
}

// sourceConfig holds creation options.
type sourceConfig struct {
	parserName string
}

// SourceOption configures font loading.
type SourceOption func(*sourceConfig)

// WithParser selects a parsing backend by name ("ximage" or "gotext").
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) { c.parserName = name }
}

// NewSource creates a Source from TTF or OTF data. The data slice is
// copied internally and can be reused after this call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := sourceConfig{parserName: DefaultParser}
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := lookupParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &Source{
		data:   dataCopy,
		parsed: parsed,
		name:   parsed.Name(),
	}, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- the font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewSource(data, opts...)
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *Source) Name() string { return s.name }

// NumGlyphs returns the number of glyphs in the font.
func (s *Source) NumGlyphs() int { return s.parsed.NumGlyphs() }

// UnitsPerEm returns the design units per em.
func (s *Source) UnitsPerEm() int { return s.parsed.UnitsPerEm() }

// GlyphAdvance returns the horizontal advance of r at sizePx pixels.
func (s *Source) GlyphAdvance(r rune, sizePx float64) (float64, error) {
	gid, ok := s.parsed.GlyphIndex(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	return s.parsed.GlyphAdvance(gid, sizePx), nil
}

// GlyphPath returns the outline of r as a path, scaled to sizePx pixels
// per em and translated so its bounding box starts at the origin. This
// keeps editing coordinates stable regardless of each font's side
// bearings and baseline placement.
func (s *Source) GlyphPath(r rune, sizePx float64) (*letterplay.Path, error) {
	gid, ok := s.parsed.GlyphIndex(r)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}

	segments, err := s.parsed.GlyphSegments(gid, sizePx)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyOutline, r)
	}

	path := segmentsToPath(segments)
	box := path.BoundingBox()
	return path.Transform(letterplay.Translate(-box.X, -box.Y)), nil
}

// segmentsToPath converts neutral outline segments into the path command
// model. Fonts encode contours without explicit close commands; a new
// MoveTo implicitly closes the previous contour, as does the end of the
// outline.
func segmentsToPath(segments []Segment) *letterplay.Path {
	p := letterplay.NewPath()
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case SegMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(seg.Args[0].X, seg.Args[0].Y)
			open = true
		case SegLineTo:
			p.LineTo(seg.Args[0].X, seg.Args[0].Y)
		case SegQuadTo:
			p.QuadraticTo(seg.Args[0].X, seg.Args[0].Y, seg.Args[1].X, seg.Args[1].Y)
		case SegCubicTo:
			p.CubicTo(seg.Args[0].X, seg.Args[0].Y,
				seg.Args[1].X, seg.Args[1].Y,
				seg.Args[2].X, seg.Args[2].Y)
		}
	}
	if open {
		p.Close()
	}
	return p
}
