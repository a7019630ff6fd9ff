// Package editor translates pointer input into glyph model mutations:
// hit testing, selection, point dragging with optional grid snap and
// collinear handle locking, and canvas panning.
//
// The package holds only transient view state (camera, selection, hover).
// All durable state lives in the letterplay.Model it drives.
package editor

import letterplay "github.com/sixtyjones/letter-playground"

// Button identifies which pointer button an event refers to.
type Button int

const (
	// ButtonNone means no button is involved (hover movement).
	ButtonNone Button = iota
	// ButtonPrimary is the main pointer button.
	ButtonPrimary
)

// PointerEvent is an explicit input event in editor-local (screen)
// coordinates. Controllers receive these instead of polling any ambient
// input state, so any frontend (terminal, test harness) can drive them.
type PointerEvent struct {
	Pos    letterplay.Point
	Button Button
	// Multi is the multi-select modifier (shift or equivalent).
	Multi bool
}
