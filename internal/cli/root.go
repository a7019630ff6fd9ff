// Package cli implements the letterplay command-line interface.
//
// The CLI loads a font, generates an editable glyph outline, and exports
// it as SVG or PNG. Commands:
//   - render: generate a glyph outline and write it to a file
//   - randomize: jitter a glyph's points with a reproducible seed
//   - info: print font metadata
//   - edit: interactive terminal editor
//
// All commands support --verbose (-v) for debug-level logging and
// --config for a TOML settings file. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the letterplay CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose switches to
// debug level. The logger is attached to the command context.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "letterplay",
		Short:        "Letterplay edits and exports single-glyph outlines",
		Long:         `Letterplay is a playground for letterform outlines. It extracts a glyph from a font as editable cubic Bézier paths, applies width, weight, slant, and roundness transforms, and exports the result as SVG or PNG.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("letterplay %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newRandomizeCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newEditCmd())

	return root.ExecuteContext(context.Background())
}
