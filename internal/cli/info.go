package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var fontPath, parser string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print font metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(fontPath, parser)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:         %s\n", src.Name())
			fmt.Fprintf(out, "glyphs:       %d\n", src.NumGlyphs())
			fmt.Fprintf(out, "units per em: %d\n", src.UnitsPerEm())
			return nil
		},
	}
	cmd.Flags().StringVarP(&fontPath, "font", "f", "", "font file to inspect (default: embedded Go Regular)")
	cmd.Flags().StringVar(&parser, "parser", "", "font parsing backend: ximage (default), gotext")
	return cmd
}
