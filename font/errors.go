package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrNoGlyph is returned when a font maps a rune to no glyph.
	ErrNoGlyph = errors.New("font: no glyph for character")

	// ErrEmptyOutline is returned when a glyph exists but has no outline
	// (for example the space character).
	ErrEmptyOutline = errors.New("font: glyph has no outline")

	// ErrUnknownParser is returned when an unregistered parser backend
	// is requested.
	ErrUnknownParser = errors.New("font: unknown parser backend")
)
