package cli

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	letterplay "github.com/sixtyjones/letter-playground"
	"github.com/sixtyjones/letter-playground/font"
)

var errNotSingleRune = errors.New("cli: argument must be a single character")

// parseChar extracts exactly one rune from s. Input is normalized to NFC
// first, so a decomposed form like "é" resolves to the single
// precomposed rune "é" when one exists.
func parseChar(s string) (rune, error) {
	s = norm.NFC.String(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: %q", errNotSingleRune, s)
	}
	return r, nil
}

// loadSource opens the font at path, or the embedded fallback when path
// is empty. parser selects the outline backend; empty means the default.
func loadSource(path, parser string) (*font.Source, error) {
	var opts []font.SourceOption
	if parser != "" {
		opts = append(opts, font.WithParser(parser))
	}
	if path == "" {
		if parser == "" {
			return font.Builtin(), nil
		}
		return font.NewSource(font.BuiltinData(), opts...)
	}
	return font.NewSourceFromFile(path, opts...)
}

// buildModel constructs a model for char from the given source with the
// requested transform parameters applied. When the source cannot supply
// an outline the model holds the fallback glyph; the source error is
// returned alongside the usable model so callers can warn and continue.
func buildModel(src letterplay.OutlineSource, char rune, size float64, params letterplay.TransformParams) (*letterplay.Model, error) {
	var opts []letterplay.ModelOption
	if size > 0 {
		opts = append(opts, letterplay.WithGlyphSize(size))
	}
	m := letterplay.NewModel(src, opts...)
	err := m.Regenerate(char)
	// IsNeutral ignores Weight because weight never moves geometry, but
	// the exporters read it from the stored params, so a weight-only
	// request must still be applied.
	if !params.IsNeutral() || params.Weight != 0 {
		m.SetParams(params)
	}
	return m, err
}
