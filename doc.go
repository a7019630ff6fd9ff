// Package letterplay implements the core data model of a single-glyph
// editing playground: a Bézier path command model, a parameter-driven
// transform engine (scale, slant, roundness), snapshot-based undo/redo,
// and seeded outline randomization.
//
// The package is UI-agnostic. Interactive editing lives in the editor
// package, font outline extraction in the font package, and SVG/PNG
// output in the export package.
//
// A minimal session:
//
//	src, _ := font.NewSource(ttfBytes)
//	model := letterplay.NewModel(src)
//	model.Regenerate('A')
//	model.SetParams(letterplay.TransformParams{Width: 1, Height: 1.2, Slant: 0.3})
//	svg := export.SVG(model.Path(), model.Params())
package letterplay
