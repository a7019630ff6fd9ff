// Package config loads editor settings from a TOML file.
//
// Settings cover interaction preferences (grid snap, collinear lock),
// history depth, and export defaults. All fields are optional; missing
// values keep their defaults, so an empty or absent file is valid.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Editor holds interaction preferences.
type Editor struct {
	// SnapToGrid rounds dragged anchors to the nearest 10 units.
	SnapToGrid bool `toml:"snap_to_grid"`
	// CollinearLock mirrors opposite control handles during drags.
	CollinearLock bool `toml:"collinear_lock"`
	// HistoryCap bounds the undo stack. Zero keeps the default of 60.
	HistoryCap int `toml:"history_cap"`
	// GlyphSize is the nominal glyph generation size in pixels. Zero
	// keeps the default.
	GlyphSize float64 `toml:"glyph_size"`
}

// Export holds output defaults.
type Export struct {
	// PNGScale multiplies glyph units into pixels. Zero means 1.
	PNGScale float64 `toml:"png_scale"`
	// Transparent skips the white background in PNG output.
	Transparent bool `toml:"transparent"`
}

// Config is the root settings document.
type Config struct {
	// FontPath is the default font file loaded at startup. Empty means
	// the embedded fallback font.
	FontPath string `toml:"font_path"`
	// Parser selects the font parsing backend ("ximage" or "gotext").
	// Empty means the default backend.
	Parser string `toml:"parser"`

	Editor Editor `toml:"editor"`
	Export Export `toml:"export"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Export: Export{PNGScale: 1},
	}
}

// Load reads a TOML configuration file. A missing file is not an error;
// the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if cfg.Export.PNGScale <= 0 {
		cfg.Export.PNGScale = 1
	}
	return cfg, nil
}
