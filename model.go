package letterplay

import "log/slog"

// DefaultGlyphSize is the nominal pixel size glyph outlines are generated
// at. Editing coordinates, randomization magnitudes, and the grid snap
// unit all assume roughly this scale.
const DefaultGlyphSize = 120

// OutlineSource supplies glyph outlines for characters. The font package
// provides the production implementation; tests supply fakes.
type OutlineSource interface {
	// GlyphPath returns the outline of r scaled to sizePx pixels per em.
	GlyphPath(r rune, sizePx float64) (*Path, error)
}

// Change describes what part of the model a notification refers to.
type Change int

const (
	// ChangeGeometry means the working path mutated (drag, randomize).
	ChangeGeometry Change = iota
	// ChangeParams means the transform parameters changed and the working
	// path was recomputed from the original.
	ChangeParams
	// ChangeGlyph means a new glyph replaced the current one.
	ChangeGlyph
	// ChangeHistory means undo or redo restored an earlier state.
	ChangeHistory
)

// Observer receives change notifications from a Model. Observers must not
// mutate the model from inside the callback.
type Observer interface {
	ModelChanged(Change)
}

// Model owns the editable state of one glyph: the immutable original
// outline, the current working path, the transform parameters, and the
// undo/redo history. All mutation goes through its methods; there is no
// ambient shared instance.
//
// Model is not safe for concurrent use. The intended usage is a single
// event loop driving all mutations.
type Model struct {
	source    OutlineSource
	char      rune
	original  *Path
	path      *Path
	params    TransformParams
	history   *History
	observers []Observer
	glyphSize float64
}

// ModelOption configures a Model during creation.
type ModelOption func(*Model)

// WithHistoryCap overrides the history capacity.
func WithHistoryCap(n int) ModelOption {
	return func(m *Model) { m.history = NewHistory(n) }
}

// WithGlyphSize overrides the nominal glyph generation size in pixels.
func WithGlyphSize(px float64) ModelOption {
	return func(m *Model) {
		if px > 0 {
			m.glyphSize = px
		}
	}
}

// NewModel creates a model backed by the given outline source. The source
// may be nil, in which case every glyph is the built-in fallback outline.
// The model starts with the fallback glyph for 'A' so there is always
// something to render.
func NewModel(source OutlineSource, opts ...ModelOption) *Model {
	m := &Model{
		source:    source,
		history:   NewHistory(DefaultHistoryCap),
		params:    DefaultParams(),
		glyphSize: DefaultGlyphSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Regenerate('A')
	return m
}

// AddObserver registers an observer for change notifications.
func (m *Model) AddObserver(o Observer) {
	m.observers = append(m.observers, o)
}

func (m *Model) notify(c Change) {
	for _, o := range m.observers {
		o.ModelChanged(c)
	}
}

// Char returns the character of the current glyph.
func (m *Model) Char() rune { return m.char }

// Path returns the current working path. Callers must treat it as
// read-only; all mutation goes through model methods.
func (m *Model) Path() *Path { return m.path }

// OriginalPath returns the immutable loaded outline.
func (m *Model) OriginalPath() *Path { return m.original }

// Params returns the current transform parameters.
func (m *Model) Params() TransformParams { return m.params }

// History exposes the undo/redo stacks, mainly for status display.
func (m *Model) History() *History { return m.history }

// Regenerate replaces the current glyph with the outline of r. A zero
// rune is ignored and the current glyph retained. When the source is
// missing or cannot produce an outline the built-in fallback glyph is
// used instead, so the model always holds something renderable; the
// source error is returned for display.
//
// Regeneration resets the parameters to defaults and discards all undo
// history for the previous glyph.
func (m *Model) Regenerate(r rune) error {
	if r == 0 {
		return nil
	}

	var srcErr error
	var outline *Path
	if m.source != nil {
		outline, srcErr = m.source.GlyphPath(r, m.glyphSize)
	}
	if outline == nil || outline.IsEmpty() {
		if srcErr != nil {
			Logger().Warn("glyph generation failed, using fallback outline",
				slog.String("char", string(r)), slog.Any("error", srcErr))
		}
		outline = FallbackGlyph()
	}

	m.char = r
	m.original = outline
	m.params = DefaultParams()
	m.path = m.original.Clone()
	m.history.Reset()
	m.history.Commit(m.path, m.params)
	m.notify(ChangeGlyph)
	return srcErr
}

// SetParams replaces the transform parameters and recomputes the working
// path from the original. Manual point edits made since the last
// parameter change are superseded by the recomputation. The result is
// committed as one history snapshot.
func (m *Model) SetParams(params TransformParams) {
	if params.Width <= 0 {
		params.Width = 1
	}
	if params.Height <= 0 {
		params.Height = 1
	}
	m.params = params
	m.path = ApplyParams(m.original, params)
	m.history.Commit(m.path, m.params)
	m.notify(ChangeParams)
}

// MovePoint translates one referenced point of the working path, moving
// adjacent control points rigidly when an anchor is dragged. It does not
// commit history; callers commit once per completed gesture via
// CommitEdit. It reports whether the reference was valid.
func (m *Model) MovePoint(ref PointRef, delta Point) bool {
	if !m.path.TranslatePoint(ref, delta) {
		return false
	}
	m.notify(ChangeGeometry)
	return true
}

// SetPoint overwrites one referenced point without touching its
// neighbors. Used for control-point drags where rigid translation is not
// wanted.
func (m *Model) SetPoint(ref PointRef, pt Point) bool {
	if !m.path.SetPoint(ref, pt) {
		return false
	}
	m.notify(ChangeGeometry)
	return true
}

// CommitEdit records the current state as one history snapshot. Called by
// the interaction controller at the end of a point drag.
func (m *Model) CommitEdit() {
	m.history.Commit(m.path, m.params)
}

// Randomize perturbs every point of the working path with a deterministic
// seeded offset and commits the result. The same seed applied to the same
// path always produces identical coordinates.
func (m *Model) Randomize(seed int64) {
	m.path = RandomizePath(m.path, seed)
	m.history.Commit(m.path, m.params)
	m.notify(ChangeGeometry)
}

// Undo restores the previous snapshot. Returns false at the baseline.
func (m *Model) Undo() bool {
	snap, ok := m.history.Undo()
	if !ok {
		return false
	}
	m.path = snap.Path
	m.params = snap.Params
	m.notify(ChangeHistory)
	return true
}

// Redo re-applies the most recently undone snapshot, if any.
func (m *Model) Redo() bool {
	snap, ok := m.history.Redo()
	if !ok {
		return false
	}
	m.path = snap.Path
	m.params = snap.Params
	m.notify(ChangeHistory)
	return true
}

// FallbackGlyph returns the built-in placeholder outline used when no
// font glyph is available: a triangle spanning 80x120 units.
func FallbackGlyph() *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(40, 120)
	p.LineTo(80, 0)
	p.Close()
	return p
}
