package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	letterplay "github.com/sixtyjones/letter-playground"
)

func TestNewSourceRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty data", nil, ErrEmptyFontData},
		{"garbage data", []byte("definitely not a font"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource(tt.data)
			if err == nil {
				t.Fatal("NewSource succeeded on invalid data")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewSourceUnknownParser(t *testing.T) {
	_, err := NewSource(goregular.TTF, WithParser("nope"))
	if !errors.Is(err, ErrUnknownParser) {
		t.Errorf("error = %v, want ErrUnknownParser", err)
	}
}

func TestGlyphPathProducesClosedOutline(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	path, err := src.GlyphPath('A', 120)
	if err != nil {
		t.Fatalf("GlyphPath: %v", err)
	}
	if path.IsEmpty() {
		t.Fatal("empty path for 'A'")
	}

	cmds := path.Commands()
	if _, ok := cmds[0].(letterplay.MoveTo); !ok {
		t.Errorf("first command is %T, want MoveTo", cmds[0])
	}
	if _, ok := cmds[len(cmds)-1].(letterplay.Close); !ok {
		t.Errorf("last command is %T, want Close", cmds[len(cmds)-1])
	}

	// 'A' has a counter, so the outline must contain several contours.
	var moves int
	for _, cmd := range cmds {
		if _, ok := cmd.(letterplay.MoveTo); ok {
			moves++
		}
	}
	if moves < 2 {
		t.Errorf("contours = %d, want at least 2 (outer shape plus counter)", moves)
	}
}

func TestGlyphPathNormalizedToOrigin(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	path, err := src.GlyphPath('H', 120)
	if err != nil {
		t.Fatalf("GlyphPath: %v", err)
	}
	box := path.BoundingBox()
	if box.X != 0 || box.Y != 0 {
		t.Errorf("bounding box origin = (%v,%v), want (0,0)", box.X, box.Y)
	}
	if box.W <= 0 || box.H <= 0 {
		t.Errorf("bounding box extent = (%v,%v), want positive", box.W, box.H)
	}
}

func TestGlyphPathScalesWithSize(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	small, err := src.GlyphPath('o', 60)
	if err != nil {
		t.Fatalf("GlyphPath(60): %v", err)
	}
	large, err := src.GlyphPath('o', 120)
	if err != nil {
		t.Fatalf("GlyphPath(120): %v", err)
	}

	ratio := large.BoundingBox().H / small.BoundingBox().H
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("height ratio = %v, want about 2 for doubled size", ratio)
	}
}

func TestGlyphPathUnmappedRune(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if _, err := src.GlyphPath('\U000E0000', 120); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("error = %v, want ErrNoGlyph", err)
	}
}

func TestBuiltinSource(t *testing.T) {
	src := Builtin()
	if src.Name() == "" {
		t.Error("builtin font has no family name")
	}
	if src.NumGlyphs() == 0 {
		t.Error("builtin font reports zero glyphs")
	}
	if src.UnitsPerEm() == 0 {
		t.Error("builtin font reports zero units per em")
	}
}

func TestGlyphAdvance(t *testing.T) {
	src := Builtin()
	adv, err := src.GlyphAdvance('M', 120)
	if err != nil {
		t.Fatalf("GlyphAdvance: %v", err)
	}
	if adv <= 0 || adv > 240 {
		t.Errorf("advance = %v, want a plausible positive width", adv)
	}
}
