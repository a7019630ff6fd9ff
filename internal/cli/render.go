package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	letterplay "github.com/sixtyjones/letter-playground"
	"github.com/sixtyjones/letter-playground/config"
	"github.com/sixtyjones/letter-playground/export"
	"github.com/sixtyjones/letter-playground/internal/raster"
)

// renderOpts holds the command-line flags shared by render and randomize.
type renderOpts struct {
	output     string  // output file path; format follows the extension
	fontPath   string  // font file, empty for the embedded fallback
	parser     string  // outline backend: "ximage" or "gotext"
	configPath string  // TOML settings file
	size       float64 // glyph generation size in pixels
	width      float64 // horizontal scale factor
	height     float64 // vertical scale factor
	weight     float64 // stroke weight added on top of the fill
	slant      float64 // slant amount in [-1, 1]
	roundness  float64 // control-point pull toward anchors in [0, 1]
	scale      float64 // PNG pixels per glyph unit
}

func (o *renderOpts) params() letterplay.TransformParams {
	return letterplay.TransformParams{
		Width:     o.width,
		Height:    o.height,
		Weight:    o.weight,
		Slant:     o.slant,
		Roundness: o.roundness,
	}
}

// addRenderFlags registers the shared glyph and output flags on cmd.
func addRenderFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.svg or .png); defaults to <char>.svg")
	cmd.Flags().StringVarP(&opts.fontPath, "font", "f", "", "font file to load (default: embedded Go Regular)")
	cmd.Flags().StringVar(&opts.parser, "parser", "", "font parsing backend: ximage (default), gotext")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML settings file")
	cmd.Flags().Float64Var(&opts.size, "size", 0, "glyph generation size in pixels (default 120)")
	cmd.Flags().Float64Var(&opts.width, "width", 1, "horizontal scale factor")
	cmd.Flags().Float64Var(&opts.height, "height", 1, "vertical scale factor")
	cmd.Flags().Float64Var(&opts.weight, "weight", 0, "stroke weight in glyph units")
	cmd.Flags().Float64Var(&opts.slant, "slant", 0, "slant in [-1, 1]; 1 is a 45 degree shear")
	cmd.Flags().Float64Var(&opts.roundness, "roundness", 0, "pull control points toward anchors, in [0, 1]")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG pixels per glyph unit (default 1)")
}

// applyConfig folds file settings into opts. Flags the user set on the
// command line win over the file.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg config.Config) {
	if opts.fontPath == "" {
		opts.fontPath = cfg.FontPath
	}
	if opts.parser == "" {
		opts.parser = cfg.Parser
	}
	if !cmd.Flags().Changed("size") && cfg.Editor.GlyphSize > 0 {
		opts.size = cfg.Editor.GlyphSize
	}
	if !cmd.Flags().Changed("scale") && cfg.Export.PNGScale > 0 {
		opts.scale = cfg.Export.PNGScale
	}
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <char>",
		Short: "Render a glyph outline to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts, 0, false)
		},
	}
	addRenderFlags(cmd, &opts)
	return cmd
}

func newRandomizeCmd() *cobra.Command {
	var opts renderOpts
	var seed int64

	cmd := &cobra.Command{
		Use:   "randomize <char>",
		Short: "Render a glyph with seeded point jitter",
		Long:  `Randomize renders a glyph after offsetting every path point by a reproducible pseudo-random amount. The same seed always produces the same output.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts, seed, true)
		},
	}
	addRenderFlags(cmd, &opts)
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for reproducible jitter")
	return cmd
}

func runRender(cmd *cobra.Command, arg string, opts *renderOpts, seed int64, jitter bool) error {
	logger := loggerFromContext(cmd.Context())

	char, err := parseChar(arg)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		if opts.configPath != "" {
			return err
		}
		logger.Warn("ignoring config", "err", err)
	}
	applyConfig(cmd, opts, cfg)

	src, err := loadSource(opts.fontPath, opts.parser)
	if err != nil {
		return err
	}

	m, err := buildModel(src, char, opts.size, opts.params())
	if err != nil {
		logger.Warn("using fallback glyph", "char", string(char), "err", err)
	}
	if jitter {
		m.Randomize(seed)
		logger.Debug("randomized", "seed", seed)
	}

	out := opts.output
	if out == "" {
		out = fmt.Sprintf("%c.svg", char)
	}
	if err := writeOutput(out, m, opts, cfg); err != nil {
		return err
	}
	logger.Info("wrote glyph", "char", string(char), "file", out)
	return nil
}

// writeOutput serializes the model's current path to out, choosing the
// format from the file extension.
func writeOutput(out string, m *letterplay.Model, opts *renderOpts, cfg config.Config) error {
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".svg":
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("cli: failed to create %s: %w", out, err)
		}
		export.WriteSVG(f, m.Path(), m.Params())
		return f.Close()
	case ".png":
		ro := export.RenderOptions{Scale: opts.scale}
		if !cfg.Export.Transparent {
			ro.Background = raster.White
		}
		return export.SavePNG(out, m.Path(), m.Params(), ro)
	default:
		return fmt.Errorf("cli: unsupported output format %q (use .svg or .png)", ext)
	}
}
