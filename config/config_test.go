package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letterplay.toml")
	doc := `
font_path = "/fonts/test.ttf"
parser = "gotext"

[editor]
snap_to_grid = true
collinear_lock = true
history_cap = 30
glyph_size = 200

[export]
png_scale = 4
transparent = true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		FontPath: "/fonts/test.ttf",
		Parser:   "gotext",
		Editor: Editor{
			SnapToGrid:    true,
			CollinearLock: true,
			HistoryCap:    30,
			GlyphSize:     200,
		},
		Export: Export{
			PNGScale:    4,
			Transparent: true,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letterplay.toml")
	if err := os.WriteFile(path, []byte("[editor]\nsnap_to_grid = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Editor.SnapToGrid {
		t.Error("snap_to_grid not applied")
	}
	if cfg.Export.PNGScale != 1 {
		t.Errorf("PNGScale = %v, want default 1", cfg.Export.PNGScale)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("font_path = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}
