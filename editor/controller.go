package editor

import (
	"math"
	"sort"

	letterplay "github.com/sixtyjones/letter-playground"
)

const (
	// hitRadiusPx is the pick radius in screen pixels. It is divided by
	// the camera zoom before comparing against world-space distances.
	hitRadiusPx = 8.0

	// gridSize is the snap unit for grid-aligned dragging.
	gridSize = 10.0
)

// Controller owns the transient interaction state of one editing session:
// camera, selection, hover, and the in-progress drag gesture. It mutates
// the model through its public methods only and commits one history
// snapshot per completed point drag.
type Controller struct {
	model  *letterplay.Model
	camera *Camera

	selection map[letterplay.PointRef]struct{}
	hover     letterplay.PointRef
	hasHover  bool

	dragging  bool
	dragRef   letterplay.PointRef
	dragMoved bool
	panning   bool
	lastPos   letterplay.Point

	// SnapToGrid rounds dragged anchor targets to the nearest gridSize
	// units in world space.
	SnapToGrid bool

	// CollinearLock mirrors the opposite control point across the shared
	// anchor while a control point is dragged, keeping the curve smooth
	// through that anchor.
	CollinearLock bool
}

// NewController creates a controller bound to the model. It registers
// itself as a model observer so selection is cleared whenever history
// navigation or glyph regeneration replaces the working path.
func NewController(model *letterplay.Model) *Controller {
	c := &Controller{
		model:     model,
		camera:    NewCamera(),
		selection: make(map[letterplay.PointRef]struct{}),
	}
	model.AddObserver(c)
	return c
}

// Camera returns the controller's camera.
func (c *Controller) Camera() *Camera { return c.camera }

// ModelChanged implements letterplay.Observer. Undo, redo, and glyph
// regeneration all invalidate point references, so selection and hover
// are cleared rather than restored; this is a deliberate design choice.
func (c *Controller) ModelChanged(change letterplay.Change) {
	switch change {
	case letterplay.ChangeHistory, letterplay.ChangeGlyph:
		c.clearSelection()
		c.hasHover = false
		c.dragging = false
		c.panning = false
	}
}

// Selection returns the selected point references in deterministic order
// (command index, then role).
func (c *Controller) Selection() []letterplay.PointRef {
	refs := make([]letterplay.PointRef, 0, len(c.selection))
	for ref := range c.selection {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Command != refs[j].Command {
			return refs[i].Command < refs[j].Command
		}
		return refs[i].Role < refs[j].Role
	})
	return refs
}

// IsSelected reports whether ref is part of the current selection.
func (c *Controller) IsSelected(ref letterplay.PointRef) bool {
	_, ok := c.selection[ref]
	return ok
}

// Hover returns the currently hovered point reference, if any.
func (c *Controller) Hover() (letterplay.PointRef, bool) {
	return c.hover, c.hasHover
}

func (c *Controller) clearSelection() {
	for ref := range c.selection {
		delete(c.selection, ref)
	}
}

// PointHit scans the path for a point within the pick radius of the given
// screen position. Commands are scanned in reverse index order so that
// later-drawn points win ties, matching their top-most visual stacking.
func (c *Controller) PointHit(screen letterplay.Point) (letterplay.PointRef, bool) {
	world := c.camera.ScreenToWorld(screen)
	radius := hitRadiusPx / c.camera.Zoom

	var refs []letterplay.PointRef
	var pts []letterplay.Point
	c.model.Path().EachPoint(func(ref letterplay.PointRef, pt letterplay.Point) {
		refs = append(refs, ref)
		pts = append(pts, pt)
	})

	for i := len(refs) - 1; i >= 0; i-- {
		if pts[i].Distance(world) <= radius {
			return refs[i], true
		}
	}
	return letterplay.PointRef{}, false
}

// Press starts a gesture. A hit enters point-drag mode and updates the
// selection per the modifier rules; a miss clears the selection and
// enters canvas-pan mode.
func (c *Controller) Press(ev PointerEvent) {
	c.lastPos = ev.Pos
	c.dragMoved = false

	ref, hit := c.PointHit(ev.Pos)
	if !hit {
		c.clearSelection()
		c.panning = true
		return
	}

	c.dragging = true
	c.dragRef = ref

	switch {
	case ev.Multi:
		// Toggle membership. Toggling a point out must not leave it
		// bound as the drag target.
		if c.IsSelected(ref) {
			delete(c.selection, ref)
			c.dragging = false
		} else {
			c.selection[ref] = struct{}{}
		}
	case c.IsSelected(ref):
		// Dragging a point that is already part of a multi-selection
		// keeps the group intact.
	default:
		c.clearSelection()
		c.selection[ref] = struct{}{}
	}
}

// Drag continues the active gesture with a new pointer position.
func (c *Controller) Drag(ev PointerEvent) {
	defer func() { c.lastPos = ev.Pos }()

	if c.panning {
		c.camera.Pan(ev.Pos.Sub(c.lastPos))
		return
	}
	if !c.dragging {
		return
	}

	current, ok := c.model.Path().PointAt(c.dragRef)
	if !ok {
		c.dragging = false
		return
	}

	target := c.camera.ScreenToWorld(ev.Pos)
	if c.SnapToGrid {
		target = letterplay.Pt(snapToGrid(target.X), snapToGrid(target.Y))
	}
	delta := target.Sub(current)
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	c.dragMoved = true

	// Group drag: the same delta applies to every selected point. Anchors
	// carry their adjacent controls rigidly so curve shape is preserved.
	moved := c.Selection()
	if !c.IsSelected(c.dragRef) {
		moved = append(moved, c.dragRef)
	}
	for _, ref := range moved {
		if ref.Role == letterplay.RoleAnchor {
			c.model.MovePoint(ref, delta)
		} else {
			if pt, ok := c.model.Path().PointAt(ref); ok {
				c.model.SetPoint(ref, pt.Add(delta))
			}
		}
	}

	if c.CollinearLock && c.dragRef.Role != letterplay.RoleAnchor {
		c.mirrorOppositeControl(c.dragRef)
	}
}

// Release ends the gesture. A point drag that actually moved geometry
// commits one history snapshot; canvas pans never touch history.
func (c *Controller) Release(ev PointerEvent) {
	if c.dragging && c.dragMoved {
		c.model.CommitEdit()
	}
	c.dragging = false
	c.panning = false
	c.dragMoved = false
}

// HoverAt updates the hovered point for visual feedback. It never
// mutates the model.
func (c *Controller) HoverAt(ev PointerEvent) {
	c.hover, c.hasHover = c.PointHit(ev.Pos)
}

// mirrorOppositeControl reflects the control point on the other side of
// the shared anchor so that the tangent through the anchor stays
// continuous. The opposite control keeps its original distance from the
// anchor; only its direction changes.
func (c *Controller) mirrorOppositeControl(dragged letterplay.PointRef) {
	anchor, opposite, ok := c.oppositeControl(dragged)
	if !ok {
		return
	}

	draggedPt, ok1 := c.model.Path().PointAt(dragged)
	oppositePt, ok2 := c.model.Path().PointAt(opposite)
	if !ok1 || !ok2 {
		return
	}

	dir := draggedPt.Sub(anchor).Normalize()
	if dir.Length() == 0 {
		return
	}
	dist := oppositePt.Distance(anchor)
	mirrored := anchor.Sub(dir.Mul(dist))
	c.model.SetPoint(opposite, mirrored)
}

// oppositeControl resolves the anchor shared by the dragged control and
// the control on the anchor's far side. A leading control (ControlA)
// pairs with the trailing control of the previous curve command across
// the previous anchor; a trailing control (ControlB) pairs with the
// leading control of the next curve command across its own anchor.
func (c *Controller) oppositeControl(dragged letterplay.PointRef) (anchor letterplay.Point, opposite letterplay.PointRef, ok bool) {
	path := c.model.Path()
	cmds := path.Commands()

	if dragged.Role == letterplay.RoleControlA {
		anchor, ok = path.AnchorBefore(dragged.Command)
		if !ok {
			return letterplay.Point{}, letterplay.PointRef{}, false
		}
		prev := dragged.Command - 1
		if prev < 0 {
			return letterplay.Point{}, letterplay.PointRef{}, false
		}
		switch cmds[prev].(type) {
		case letterplay.CubicTo:
			return anchor, letterplay.PointRef{Command: prev, Role: letterplay.RoleControlB}, true
		case letterplay.QuadTo:
			return anchor, letterplay.PointRef{Command: prev, Role: letterplay.RoleControlA}, true
		}
		return letterplay.Point{}, letterplay.PointRef{}, false
	}

	// RoleControlB: shared anchor is this command's own end point.
	anchorRef := letterplay.PointRef{Command: dragged.Command, Role: letterplay.RoleAnchor}
	anchor, ok = path.PointAt(anchorRef)
	if !ok {
		return letterplay.Point{}, letterplay.PointRef{}, false
	}
	next := dragged.Command + 1
	if next >= len(cmds) {
		return letterplay.Point{}, letterplay.PointRef{}, false
	}
	switch cmds[next].(type) {
	case letterplay.CubicTo, letterplay.QuadTo:
		return anchor, letterplay.PointRef{Command: next, Role: letterplay.RoleControlA}, true
	}
	return letterplay.Point{}, letterplay.PointRef{}, false
}

// snapToGrid rounds a world coordinate to the nearest grid unit.
func snapToGrid(v float64) float64 {
	return math.Round(v/gridSize) * gridSize
}
