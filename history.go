package letterplay

// DefaultHistoryCap is the default maximum number of retained snapshots.
const DefaultHistoryCap = 60

// Snapshot is a deep copy of the editable state at one point in time.
type Snapshot struct {
	Path   *Path
	Params TransformParams
}

// clone returns an independent copy of the snapshot.
func (s Snapshot) clone() Snapshot {
	return Snapshot{Path: s.Path.Clone(), Params: s.Params}
}

// History is a bounded two-stack undo/redo manager. The past stack holds
// at most cap entries with the oldest evicted first; the bottom entry is
// the baseline and is never popped. The future stack is cleared whenever
// a new snapshot is committed.
type History struct {
	past   []Snapshot
	future []Snapshot
	cap    int
}

// NewHistory creates a history with the given capacity. Capacities below 1
// fall back to DefaultHistoryCap.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCap
	}
	return &History{cap: capacity}
}

// Commit pushes a deep copy of the state onto the past stack, evicting the
// oldest entry when over capacity, and clears the redo stack.
func (h *History) Commit(path *Path, params TransformParams) {
	h.past = append(h.past, Snapshot{Path: path.Clone(), Params: params})
	if len(h.past) > h.cap {
		h.past = h.past[1:]
	}
	h.future = h.future[:0]
}

// Undo moves the newest past entry onto the future stack and returns a
// copy of the state to restore (the new top of the past stack). It reports
// false, leaving the stacks untouched, when only the baseline remains.
func (h *History) Undo() (Snapshot, bool) {
	if len(h.past) <= 1 {
		return Snapshot{}, false
	}
	top := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, top)
	return h.past[len(h.past)-1].clone(), true
}

// Redo pops the newest future entry back onto the past stack and returns
// a copy of it. It reports false when there is nothing to redo.
func (h *History) Redo() (Snapshot, bool) {
	if len(h.future) == 0 {
		return Snapshot{}, false
	}
	top := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, top)
	return top.clone(), true
}

// CanUndo reports whether an undo would restore a previous state.
func (h *History) CanUndo() bool { return len(h.past) > 1 }

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// PastLen returns the number of entries on the past stack.
func (h *History) PastLen() int { return len(h.past) }

// FutureLen returns the number of entries on the future stack.
func (h *History) FutureLen() int { return len(h.future) }

// Reset discards both stacks. Used when a new glyph replaces the current
// one; history never spans glyph regenerations.
func (h *History) Reset() {
	h.past = h.past[:0]
	h.future = h.future[:0]
}
