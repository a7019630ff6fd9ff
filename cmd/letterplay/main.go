// Command letterplay edits and exports single-glyph outlines.
package main

import (
	"os"

	"github.com/sixtyjones/letter-playground/internal/cli"
)

// Set via ldflags at build time, e.g.
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=$(git rev-parse --short HEAD)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
