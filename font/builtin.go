package font

import "golang.org/x/image/font/gofont/goregular"

// Builtin returns a Source backed by the embedded Go Regular typeface.
// It is used when no font file is supplied or an uploaded font fails to
// parse, so the editor always has real outlines to work with.
func Builtin() *Source {
	src, err := NewSource(BuiltinData())
	if err != nil {
		// The embedded font is compiled into the binary; failing to
		// parse it means the build itself is broken.
		panic("font: embedded fallback font failed to parse: " + err.Error())
	}
	return src
}

// BuiltinData returns the raw bytes of the embedded fallback typeface,
// for callers that want to construct a Source with non-default options.
func BuiltinData() []byte {
	return goregular.TTF
}
