package letterplay

// PathCommand represents a single drawing instruction in a glyph outline.
type PathCommand interface {
	isPathCommand()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathCommand() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathCommand() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathCommand() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathCommand() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathCommand() {}

// PointRole identifies which point of a command a reference names.
type PointRole int

const (
	// RoleAnchor is the on-curve end point of a command.
	RoleAnchor PointRole = iota
	// RoleControlA is the first (or only) off-curve control point.
	RoleControlA
	// RoleControlB is the second off-curve control point of a cubic.
	RoleControlB
)

// String returns a readable name for the role.
func (r PointRole) String() string {
	switch r {
	case RoleAnchor:
		return "anchor"
	case RoleControlA:
		return "controlA"
	case RoleControlB:
		return "controlB"
	default:
		return "unknown"
	}
}

// PointRef addresses one editable point inside a path: the command index
// plus the role of the point within that command.
type PointRef struct {
	Command int
	Role    PointRole
}

// Path is an ordered sequence of path commands. Command order is draw
// order; under the even-odd fill rule it determines which enclosed
// regions become counters.
type Path struct {
	commands []PathCommand
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		commands: make([]PathCommand, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.commands = append(p.commands, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.commands = append(p.commands, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.commands = append(p.commands, Close{})
	p.current = p.start
}

// Commands returns the path commands. The returned slice is owned by the
// path and must not be mutated by the caller.
func (p *Path) Commands() []PathCommand {
	return p.commands
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.commands)
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.commands) == 0
}

// Clone creates a structural deep copy of the path. Command variants hold
// point values only, so copying the command slice is a full deep copy.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.commands = make([]PathCommand, len(p.commands))
	copy(result.commands, p.commands)
	result.start = p.start
	result.current = p.current
	return result
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			pt := m.Apply(c.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.Apply(c.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.Apply(c.Control)
			pt := m.Apply(c.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.Apply(c.Control1)
			ctrl2 := m.Apply(c.Control2)
			pt := m.Apply(c.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// BoundingBox returns the axis-aligned box enclosing every anchor and
// control point in the path. Control points count toward the box, matching
// the usual path-bounds convention. An empty path yields a zero-area box.
func (p *Path) BoundingBox() Rect {
	first := true
	var minX, minY, maxX, maxY float64

	extend := func(pt Point) {
		if first {
			minX, maxX = pt.X, pt.X
			minY, maxY = pt.Y, pt.Y
			first = false
			return
		}
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}

	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			extend(c.Point)
		case LineTo:
			extend(c.Point)
		case QuadTo:
			extend(c.Control)
			extend(c.Point)
		case CubicTo:
			extend(c.Control1)
			extend(c.Control2)
			extend(c.Point)
		}
	}

	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// PointAt returns the point addressed by ref. The second return value is
// false when the reference does not name a point of the command (for
// example a control role on a LineTo, or an out-of-range index).
func (p *Path) PointAt(ref PointRef) (Point, bool) {
	if ref.Command < 0 || ref.Command >= len(p.commands) {
		return Point{}, false
	}
	switch c := p.commands[ref.Command].(type) {
	case MoveTo:
		if ref.Role == RoleAnchor {
			return c.Point, true
		}
	case LineTo:
		if ref.Role == RoleAnchor {
			return c.Point, true
		}
	case QuadTo:
		switch ref.Role {
		case RoleAnchor:
			return c.Point, true
		case RoleControlA:
			return c.Control, true
		}
	case CubicTo:
		switch ref.Role {
		case RoleAnchor:
			return c.Point, true
		case RoleControlA:
			return c.Control1, true
		case RoleControlB:
			return c.Control2, true
		}
	}
	return Point{}, false
}

// SetPoint overwrites the point addressed by ref. It reports whether the
// reference named a valid point.
func (p *Path) SetPoint(ref PointRef, pt Point) bool {
	if ref.Command < 0 || ref.Command >= len(p.commands) {
		return false
	}
	switch c := p.commands[ref.Command].(type) {
	case MoveTo:
		if ref.Role == RoleAnchor {
			c.Point = pt
			p.commands[ref.Command] = c
			return true
		}
	case LineTo:
		if ref.Role == RoleAnchor {
			c.Point = pt
			p.commands[ref.Command] = c
			return true
		}
	case QuadTo:
		switch ref.Role {
		case RoleAnchor:
			c.Point = pt
		case RoleControlA:
			c.Control = pt
		default:
			return false
		}
		p.commands[ref.Command] = c
		return true
	case CubicTo:
		switch ref.Role {
		case RoleAnchor:
			c.Point = pt
		case RoleControlA:
			c.Control1 = pt
		case RoleControlB:
			c.Control2 = pt
		default:
			return false
		}
		p.commands[ref.Command] = c
		return true
	}
	return false
}

// TranslatePoint shifts the point addressed by ref by delta. When the
// reference names an anchor, the adjacent control points move rigidly with
// it: the trailing control of the anchor's own command and the leading
// control of the following curve command. This keeps curve shape intact
// when an anchor is dragged.
func (p *Path) TranslatePoint(ref PointRef, delta Point) bool {
	pt, ok := p.PointAt(ref)
	if !ok {
		return false
	}
	p.SetPoint(ref, pt.Add(delta))

	if ref.Role != RoleAnchor {
		return true
	}

	// Incoming control of this anchor lives on the same command.
	switch p.commands[ref.Command].(type) {
	case QuadTo:
		p.translateIfValid(PointRef{Command: ref.Command, Role: RoleControlA}, delta)
	case CubicTo:
		p.translateIfValid(PointRef{Command: ref.Command, Role: RoleControlB}, delta)
	}

	// Outgoing control belongs to the next command, if it is a curve.
	next := ref.Command + 1
	if next < len(p.commands) {
		switch p.commands[next].(type) {
		case QuadTo, CubicTo:
			p.translateIfValid(PointRef{Command: next, Role: RoleControlA}, delta)
		}
	}
	return true
}

func (p *Path) translateIfValid(ref PointRef, delta Point) {
	if pt, ok := p.PointAt(ref); ok {
		p.SetPoint(ref, pt.Add(delta))
	}
}

// EachPoint visits every editable point of the path in a fixed order:
// command index order, and within a command controlA, then controlB, then
// the anchor. Close commands carry no points and are skipped. The visit
// order is part of the package contract; seeded randomization depends on
// it for reproducibility.
func (p *Path) EachPoint(visit func(ref PointRef, pt Point)) {
	for i, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			visit(PointRef{Command: i, Role: RoleAnchor}, c.Point)
		case LineTo:
			visit(PointRef{Command: i, Role: RoleAnchor}, c.Point)
		case QuadTo:
			visit(PointRef{Command: i, Role: RoleControlA}, c.Control)
			visit(PointRef{Command: i, Role: RoleAnchor}, c.Point)
		case CubicTo:
			visit(PointRef{Command: i, Role: RoleControlA}, c.Control1)
			visit(PointRef{Command: i, Role: RoleControlB}, c.Control2)
			visit(PointRef{Command: i, Role: RoleAnchor}, c.Point)
		}
	}
}

// AnchorBefore returns the anchor point in effect before command i within
// the same subpath, i.e. the end point of the previous drawing command.
// The second return value is false when no such anchor exists (the command
// starts a subpath or the index is out of range).
func (p *Path) AnchorBefore(i int) (Point, bool) {
	if i <= 0 || i > len(p.commands) {
		return Point{}, false
	}
	switch c := p.commands[i-1].(type) {
	case MoveTo:
		return c.Point, true
	case LineTo:
		return c.Point, true
	case QuadTo:
		return c.Point, true
	case CubicTo:
		return c.Point, true
	}
	return Point{}, false
}
