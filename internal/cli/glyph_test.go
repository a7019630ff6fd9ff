package cli

import (
	"errors"
	"testing"

	letterplay "github.com/sixtyjones/letter-playground"
	"github.com/sixtyjones/letter-playground/font"
)

func TestParseChar(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    rune
		wantErr bool
	}{
		{name: "ascii letter", in: "A", want: 'A'},
		{name: "multibyte rune", in: "ß", want: 'ß'},
		{name: "precomposed accent", in: "é", want: 'é'},
		{name: "decomposed accent normalizes", in: "é", want: 'é'},
		{name: "empty", in: "", wantErr: true},
		{name: "two runes", in: "ab", wantErr: true},
		{name: "invalid utf8", in: "\xff", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseChar(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseChar(%q): expected error, got %q", tc.in, got)
				}
				if !errors.Is(err, errNotSingleRune) {
					t.Errorf("error = %v, want errNotSingleRune", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseChar(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("parseChar(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLoadSourceDefaultsToBuiltin(t *testing.T) {
	src, err := loadSource("", "")
	if err != nil {
		t.Fatalf("loadSource: %v", err)
	}
	if src.NumGlyphs() == 0 {
		t.Error("builtin source reports zero glyphs")
	}
}

func TestLoadSourceWithExplicitParser(t *testing.T) {
	src, err := loadSource("", "gotext")
	if err != nil {
		t.Fatalf("loadSource: %v", err)
	}
	if src.NumGlyphs() == 0 {
		t.Error("gotext source reports zero glyphs")
	}
}

func TestLoadSourceUnknownParser(t *testing.T) {
	if _, err := loadSource("", "harfbuzz"); !errors.Is(err, font.ErrUnknownParser) {
		t.Errorf("error = %v, want ErrUnknownParser", err)
	}
}

func TestLoadSourceMissingFile(t *testing.T) {
	if _, err := loadSource("/nonexistent/font.ttf", ""); err == nil {
		t.Error("expected error for missing font file")
	}
}

func TestBuildModelAppliesParams(t *testing.T) {
	params := letterplay.TransformParams{Width: 2, Height: 1, Slant: 0.5}
	m, err := buildModel(font.Builtin(), 'A', 0, params)
	if err != nil {
		t.Fatalf("buildModel: %v", err)
	}
	if m.Char() != 'A' {
		t.Errorf("Char = %q, want 'A'", m.Char())
	}
	if got := m.Params(); got != params {
		t.Errorf("Params = %+v, want %+v", got, params)
	}
	if m.Path().IsEmpty() {
		t.Error("model path is empty")
	}
}

func TestBuildModelStoresWeightOnlyParams(t *testing.T) {
	// Weight does not move geometry, so these params count as neutral,
	// but the exporters read the stroke width from the stored params.
	params := letterplay.TransformParams{Width: 1, Height: 1, Weight: 5}
	m, err := buildModel(font.Builtin(), 'A', 0, params)
	if err != nil {
		t.Fatalf("buildModel: %v", err)
	}
	if got := m.Params().Weight; got != 5 {
		t.Errorf("model weight = %v, want 5", got)
	}
}

func TestBuildModelUnmappedRuneFallsBack(t *testing.T) {
	m, err := buildModel(font.Builtin(), '\U000E0000', 0, letterplay.DefaultParams())
	if err == nil {
		t.Fatal("expected error for unmapped rune")
	}
	if m == nil || m.Path().IsEmpty() {
		t.Fatal("model should hold the fallback glyph")
	}
	if got := m.Path().BoundingBox(); got != letterplay.FallbackGlyph().BoundingBox() {
		t.Errorf("bounding box = %+v, want fallback glyph box", got)
	}
}
