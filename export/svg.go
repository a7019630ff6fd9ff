// Package export serializes glyph paths to SVG documents and rasterizes
// them to PNG images.
package export

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	letterplay "github.com/sixtyjones/letter-playground"
)

// Padding is the margin added around the glyph bounding box in the SVG
// viewBox, in glyph units per side.
const Padding = 20

// SVG serializes the path to a standalone SVG document. The viewBox is
// the path bounding box padded by Padding units on each side, the fill
// is black with the even-odd rule, and a non-zero Weight adds a stroke
// of width |Weight|.
func SVG(path *letterplay.Path, params letterplay.TransformParams) string {
	var buf bytes.Buffer
	WriteSVG(&buf, path, params)
	return buf.String()
}

// WriteSVG writes the SVG document to w.
func WriteSVG(w io.Writer, path *letterplay.Path, params letterplay.TransformParams) {
	box := path.BoundingBox().Pad(Padding)
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(box.X), num(box.Y), num(box.W), num(box.H))

	stroke := ""
	if params.Weight != 0 {
		stroke = fmt.Sprintf(` stroke="black" stroke-width="%s"`, num(math.Abs(params.Weight)))
	}
	fmt.Fprintf(w, `  <path d="%s" fill="black" fill-rule="evenodd"%s/>`+"\n", PathData(path), stroke)
	fmt.Fprint(w, "</svg>\n")
}

// PathData serializes the path commands to an SVG path "d" attribute.
func PathData(path *letterplay.Path) string {
	var buf bytes.Buffer
	for i, cmd := range path.Commands() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		switch c := cmd.(type) {
		case letterplay.MoveTo:
			fmt.Fprintf(&buf, "M%s,%s", num(c.Point.X), num(c.Point.Y))
		case letterplay.LineTo:
			fmt.Fprintf(&buf, "L%s,%s", num(c.Point.X), num(c.Point.Y))
		case letterplay.QuadTo:
			fmt.Fprintf(&buf, "Q%s,%s %s,%s",
				num(c.Control.X), num(c.Control.Y), num(c.Point.X), num(c.Point.Y))
		case letterplay.CubicTo:
			fmt.Fprintf(&buf, "C%s,%s %s,%s %s,%s",
				num(c.Control1.X), num(c.Control1.Y),
				num(c.Control2.X), num(c.Control2.Y),
				num(c.Point.X), num(c.Point.Y))
		case letterplay.Close:
			buf.WriteByte('Z')
		}
	}
	return buf.String()
}

// num formats a coordinate rounded to three decimals with trailing
// zeros trimmed, so exported files stay compact and reproducible.
func num(v float64) string {
	rounded := math.Round(v*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
