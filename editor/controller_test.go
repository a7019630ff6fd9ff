package editor

import (
	"math"
	"testing"

	letterplay "github.com/sixtyjones/letter-playground"
)

// curveSource serves a small two-cubic outline for every rune.
type curveSource struct{}

func (curveSource) GlyphPath(r rune, sizePx float64) (*letterplay.Path, error) {
	p := letterplay.NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(10, 10, 40, 40, 50, 50)
	p.CubicTo(60, 60, 90, 90, 100, 100)
	return p, nil
}

func newCurveController(t *testing.T) (*letterplay.Model, *Controller) {
	t.Helper()
	m := letterplay.NewModel(curveSource{})
	return m, NewController(m)
}

func press(c *Controller, x, y float64) {
	c.Press(PointerEvent{Pos: letterplay.Pt(x, y), Button: ButtonPrimary})
}

func drag(c *Controller, x, y float64) {
	c.Drag(PointerEvent{Pos: letterplay.Pt(x, y), Button: ButtonPrimary})
}

func release(c *Controller, x, y float64) {
	c.Release(PointerEvent{Pos: letterplay.Pt(x, y), Button: ButtonPrimary})
}

func TestPointHit(t *testing.T) {
	_, c := newCurveController(t)

	tests := []struct {
		name    string
		pos     letterplay.Point
		want    letterplay.PointRef
		wantHit bool
	}{
		{"exact anchor", letterplay.Pt(50, 50), letterplay.PointRef{Command: 1, Role: letterplay.RoleAnchor}, true},
		{"within radius", letterplay.Pt(52, 47), letterplay.PointRef{Command: 1, Role: letterplay.RoleAnchor}, true},
		{"control point", letterplay.Pt(10, 10), letterplay.PointRef{Command: 1, Role: letterplay.RoleControlA}, true},
		{"empty space", letterplay.Pt(200, 200), letterplay.PointRef{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := c.PointHit(tt.pos)
			if hit != tt.wantHit || got != tt.want {
				t.Errorf("PointHit(%v) = %+v, %v, want %+v, %v", tt.pos, got, hit, tt.want, tt.wantHit)
			}
		})
	}
}

func TestPointHitLaterPointWinsTies(t *testing.T) {
	// Probing midway between command 1's anchor (50,50) and command 2's
	// leading control (60,60) reaches both within the pick radius; the
	// reverse scan makes the later-drawn point win.
	_, c := newCurveController(t)

	got, hit := c.PointHit(letterplay.Pt(55, 55))
	want := letterplay.PointRef{Command: 2, Role: letterplay.RoleControlA}
	if !hit || got != want {
		t.Errorf("PointHit = %+v, %v, want %+v (reverse scan order)", got, hit, want)
	}
}

func TestPointHitRadiusScalesWithZoom(t *testing.T) {
	_, c := newCurveController(t)
	c.Camera().SetZoom(4)

	// At zoom 4 the world-space radius shrinks to 2 units, and the anchor
	// at world (50,50) sits at screen (200,200).
	if _, hit := c.PointHit(letterplay.Pt(212, 200)); hit {
		t.Error("hit at 3 world units with radius 2, want miss")
	}
	if _, hit := c.PointHit(letterplay.Pt(204, 200)); !hit {
		t.Error("miss at 1 world unit with radius 2, want hit")
	}
}

func TestPressSelectsAndReplaces(t *testing.T) {
	_, c := newCurveController(t)

	press(c, 50, 50)
	release(c, 50, 50)
	if sel := c.Selection(); len(sel) != 1 || sel[0] != (letterplay.PointRef{Command: 1, Role: letterplay.RoleAnchor}) {
		t.Fatalf("selection = %+v, want the pressed anchor", sel)
	}

	press(c, 100, 100)
	release(c, 100, 100)
	if sel := c.Selection(); len(sel) != 1 || sel[0] != (letterplay.PointRef{Command: 2, Role: letterplay.RoleAnchor}) {
		t.Errorf("selection = %+v, want replaced by second anchor", sel)
	}
}

func TestPressMultiToggles(t *testing.T) {
	_, c := newCurveController(t)

	press(c, 50, 50)
	release(c, 50, 50)
	c.Press(PointerEvent{Pos: letterplay.Pt(100, 100), Button: ButtonPrimary, Multi: true})
	release(c, 100, 100)
	if sel := c.Selection(); len(sel) != 2 {
		t.Fatalf("selection = %+v, want 2 entries after multi-add", sel)
	}

	c.Press(PointerEvent{Pos: letterplay.Pt(100, 100), Button: ButtonPrimary, Multi: true})
	release(c, 100, 100)
	if sel := c.Selection(); len(sel) != 1 {
		t.Errorf("selection = %+v, want multi-press to toggle membership off", sel)
	}
}

func TestMultiToggleOffDoesNotDrag(t *testing.T) {
	m, c := newCurveController(t)

	press(c, 50, 50)
	release(c, 50, 50)
	ref, ok := c.PointHit(letterplay.Pt(50, 50))
	if !ok {
		t.Fatal("no point at (50,50)")
	}
	before, _ := m.Path().PointAt(ref)

	// Toggling the point out with the modifier must release it as the
	// drag target: the following motion moves nothing.
	c.Press(PointerEvent{Pos: letterplay.Pt(50, 50), Button: ButtonPrimary, Multi: true})
	drag(c, 70, 70)
	release(c, 70, 70)

	if sel := c.Selection(); len(sel) != 0 {
		t.Errorf("selection = %+v, want empty after toggle-off", sel)
	}
	after, _ := m.Path().PointAt(ref)
	if after != before {
		t.Errorf("point moved from %v to %v after being deselected", before, after)
	}
	if m.History().CanUndo() {
		t.Error("toggle-off drag committed to history")
	}
}

func TestPressOnSelectedKeepsGroup(t *testing.T) {
	_, c := newCurveController(t)

	press(c, 50, 50)
	release(c, 50, 50)
	c.Press(PointerEvent{Pos: letterplay.Pt(100, 100), Button: ButtonPrimary, Multi: true})
	release(c, 100, 100)

	// Plain press on an already-selected point preserves the group.
	press(c, 50, 50)
	release(c, 50, 50)
	if sel := c.Selection(); len(sel) != 2 {
		t.Errorf("selection = %+v, want group preserved", sel)
	}
}

func TestPressMissClearsSelectionAndPans(t *testing.T) {
	_, c := newCurveController(t)

	press(c, 50, 50)
	release(c, 50, 50)
	press(c, 300, 300)
	drag(c, 310, 305)
	release(c, 310, 305)

	if sel := c.Selection(); len(sel) != 0 {
		t.Errorf("selection = %+v, want cleared on miss", sel)
	}
	if c.Camera().Offset != letterplay.Pt(10, 5) {
		t.Errorf("camera offset = %v, want (10,5) after pan", c.Camera().Offset)
	}
}

func TestDragAnchorCarriesControlsAndCommitsOnce(t *testing.T) {
	m, c := newCurveController(t)
	before := m.History().PastLen()

	press(c, 50, 50)
	drag(c, 55, 47)
	release(c, 55, 47)

	path := m.Path()
	if got, _ := path.PointAt(letterplay.PointRef{Command: 1, Role: letterplay.RoleAnchor}); got != letterplay.Pt(55, 47) {
		t.Errorf("anchor = %v, want (55,47)", got)
	}
	// Adjacent controls moved by the identical delta (5,-3).
	if got, _ := path.PointAt(letterplay.PointRef{Command: 1, Role: letterplay.RoleControlB}); got != letterplay.Pt(45, 37) {
		t.Errorf("incoming control = %v, want (45,37)", got)
	}
	if got, _ := path.PointAt(letterplay.PointRef{Command: 2, Role: letterplay.RoleControlA}); got != letterplay.Pt(65, 57) {
		t.Errorf("outgoing control = %v, want (65,57)", got)
	}
	if m.History().PastLen() != before+1 {
		t.Errorf("history grew by %d, want exactly 1 snapshot per drag", m.History().PastLen()-before)
	}
}

func TestPanDoesNotCommit(t *testing.T) {
	m, c := newCurveController(t)
	before := m.History().PastLen()

	press(c, 300, 300)
	drag(c, 320, 320)
	release(c, 320, 320)

	if m.History().PastLen() != before {
		t.Error("canvas pan committed a history snapshot")
	}
}

func TestDragSnapToGrid(t *testing.T) {
	m, c := newCurveController(t)
	c.SnapToGrid = true

	press(c, 50, 50)
	drag(c, 63, 58)
	release(c, 63, 58)

	if got, _ := m.Path().PointAt(letterplay.PointRef{Command: 1, Role: letterplay.RoleAnchor}); got != letterplay.Pt(60, 60) {
		t.Errorf("anchor = %v, want snapped to (60,60)", got)
	}
}

func TestGroupDragAppliesSameDelta(t *testing.T) {
	m, c := newCurveController(t)

	press(c, 50, 50)
	release(c, 50, 50)
	c.Press(PointerEvent{Pos: letterplay.Pt(100, 100), Button: ButtonPrimary, Multi: true})
	release(c, 100, 100)

	press(c, 50, 50)
	drag(c, 60, 50)
	release(c, 60, 50)

	if got, _ := m.Path().PointAt(letterplay.PointRef{Command: 1, Role: letterplay.RoleAnchor}); got != letterplay.Pt(60, 50) {
		t.Errorf("dragged anchor = %v, want (60,50)", got)
	}
	if got, _ := m.Path().PointAt(letterplay.PointRef{Command: 2, Role: letterplay.RoleAnchor}); got != letterplay.Pt(110, 100) {
		t.Errorf("grouped anchor = %v, want (110,100)", got)
	}
}

func TestCollinearLock(t *testing.T) {
	m, c := newCurveController(t)
	c.CollinearLock = true

	// Shared anchor is command 1's end point (50,50); dragging command
	// 2's leading control mirrors command 1's trailing control.
	anchor := letterplay.Pt(50, 50)
	oppositeRef := letterplay.PointRef{Command: 1, Role: letterplay.RoleControlB}
	before, _ := m.Path().PointAt(oppositeRef)
	wantDist := before.Distance(anchor)

	press(c, 60, 60)
	drag(c, 70, 50)
	release(c, 70, 50)

	after, _ := m.Path().PointAt(oppositeRef)
	gotDist := after.Distance(anchor)
	if math.Abs(gotDist-wantDist) > 1e-9 {
		t.Errorf("opposite control distance = %v, want preserved %v", gotDist, wantDist)
	}

	// The opposite control must sit on the ray through the anchor exactly
	// opposite the dragged control's new direction.
	dragged, _ := m.Path().PointAt(letterplay.PointRef{Command: 2, Role: letterplay.RoleControlA})
	d1 := dragged.Sub(anchor)
	d2 := after.Sub(anchor)
	cross := d1.X*d2.Y - d1.Y*d2.X
	dot := d1.X*d2.X + d1.Y*d2.Y
	if math.Abs(cross) > 1e-9 || dot >= 0 {
		t.Errorf("opposite control %v is not mirrored across anchor from %v", after, dragged)
	}
}

func TestHistoryNavigationClearsSelection(t *testing.T) {
	m, c := newCurveController(t)

	press(c, 50, 50)
	drag(c, 60, 60)
	release(c, 60, 60)
	if len(c.Selection()) == 0 {
		t.Fatal("expected a selection after drag")
	}

	m.Undo()
	if sel := c.Selection(); len(sel) != 0 {
		t.Errorf("selection = %+v, want cleared after undo", sel)
	}
}

func TestHoverDoesNotMutate(t *testing.T) {
	m, c := newCurveController(t)
	before := m.History().PastLen()

	c.HoverAt(PointerEvent{Pos: letterplay.Pt(50, 50)})
	if ref, ok := c.Hover(); !ok || ref != (letterplay.PointRef{Command: 1, Role: letterplay.RoleAnchor}) {
		t.Errorf("Hover = %+v, %v, want the anchor", ref, ok)
	}
	if m.History().PastLen() != before {
		t.Error("hover mutated history")
	}

	c.HoverAt(PointerEvent{Pos: letterplay.Pt(500, 500)})
	if _, ok := c.Hover(); ok {
		t.Error("Hover over empty space = true, want none")
	}
}
