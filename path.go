// Package pathlang implements the SVG path micro-language: a parser from
// path data to an editable segment model, a canonical serializer back to
// text, affine transforms and simplification over the model, and a bounded
// undo/redo history of serialized snapshots.
package pathlang

import (
	"fmt"
	"math"
	"sync/atomic"
)

const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Cmd is one of the ten logical path commands. Each has an absolute
// (uppercase) and relative (lowercase) letter form in the wire syntax; the
// model stores resolved absolute coordinates only.
type Cmd int

const (
	MoveToCmd Cmd = iota
	LineToCmd
	HLineToCmd
	VLineToCmd
	CubeToCmd
	SmoothCubeToCmd
	QuadToCmd
	SmoothQuadToCmd
	ArcToCmd
	CloseCmd
)

var cmdLetters = [...]byte{'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z'}

// argNs is the number of wire-format arguments per command instance.
var argNs = [...]int{2, 2, 1, 1, 6, 4, 4, 2, 7, 0}

// Letter returns the absolute command letter.
func (c Cmd) Letter() byte {
	return cmdLetters[c]
}

func (c Cmd) argN() int {
	return argNs[c]
}

func (c Cmd) String() string {
	switch c {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case HLineToCmd:
		return "HLineTo"
	case VLineToCmd:
		return "VLineTo"
	case CubeToCmd:
		return "CubeTo"
	case SmoothCubeToCmd:
		return "SmoothCubeTo"
	case QuadToCmd:
		return "QuadTo"
	case SmoothQuadToCmd:
		return "SmoothQuadTo"
	case ArcToCmd:
		return "ArcTo"
	case CloseCmd:
		return "Close"
	}
	return fmt.Sprintf("Cmd(%d)", int(c))
}

// cmdFromLetter maps a command letter to its command and whether the letter
// is the relative (lowercase) form.
func cmdFromLetter(l byte) (Cmd, bool, bool) {
	rel := 'a' <= l && l <= 'z'
	if rel {
		l -= 'a' - 'A'
	}
	for c, letter := range cmdLetters {
		if l == letter {
			return Cmd(c), rel, true
		}
	}
	return 0, false, false
}

var idCounter atomic.Uint64

// nextID mints an identifier that is unique within the process. IDs are
// opaque: a re-parse of the same text yields fresh IDs, and reconciling
// selection state across re-parses is the caller's responsibility.
func nextID() uint64 {
	return idCounter.Add(1)
}

// Point is a coordinate of the segment model. An anchor lies on the path;
// a control point shapes a Bézier tangent and references its anchor.
type Point struct {
	X, Y    float64
	ID      uint64
	Control bool
	Anchor  uint64 // anchor ID for control points, zero otherwise
}

// Equals returns true if the coordinates of p and q are equal with
// tolerance Epsilon. Identity is not compared.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

func anchor(x, y float64) Point {
	return Point{X: x, Y: y, ID: nextID()}
}

func controlFor(x, y float64, a Point) Point {
	return Point{X: x, Y: y, ID: nextID(), Control: true, Anchor: a.ID}
}

// Segment is one parsed command instance. Points holds the resolved
// absolute coordinates, control handles first and the anchor last. Params
// is non-nil only for ArcToCmd and preserves the five leading arc arguments
// (rx, ry, rotation, large-arc flag, sweep flag) verbatim, flags as 0 or 1;
// they have no derivable fallback and must survive round trips untouched.
type Segment struct {
	ID     uint64
	Cmd    Cmd
	Points []Point
	Params []float64
}

// Anchor returns the segment's on-curve end point, the last of Points.
func (s Segment) Anchor() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

func (s Segment) clone() Segment {
	q := s
	q.Points = append([]Point(nil), s.Points...)
	if s.Params != nil {
		q.Params = append([]float64(nil), s.Params...)
	}
	return q
}

// Path is an ordered sequence of segments, the single mutable document of
// the engine. A well-formed path opens with a MoveTo and its Close
// segments carry no points.
type Path struct {
	Segments []Segment
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	return len(p.Segments) == 0
}

// Clone returns a deep copy. Point and segment IDs are preserved so that
// references into the document survive pure transforms.
func (p *Path) Clone() *Path {
	q := &Path{}
	if p.Segments != nil {
		q.Segments = make([]Segment, len(p.Segments))
		for i, s := range p.Segments {
			q.Segments[i] = s.clone()
		}
	}
	return q
}

// Pos returns the pen position after the last segment. A Close returns the
// pen to the start of its subpath.
func (p *Path) Pos() (float64, float64) {
	x, y := 0.0, 0.0
	x0, y0 := 0.0, 0.0
	for _, s := range p.Segments {
		if s.Cmd == CloseCmd {
			x, y = x0, y0
			continue
		}
		if a, ok := s.Anchor(); ok {
			x, y = a.X, a.Y
			if s.Cmd == MoveToCmd {
				x0, y0 = a.X, a.Y
			}
		}
	}
	return x, y
}

// Coords returns all points of all segments in document order, control
// points included.
func (p *Path) Coords() []Point {
	var pts []Point
	for _, s := range p.Segments {
		pts = append(pts, s.Points...)
	}
	return pts
}

// Equals returns true if both paths have the same segment structure and
// coordinates with tolerance Epsilon. IDs are ignored, they are never
// stable across parses.
func (p *Path) Equals(q *Path) bool {
	if len(p.Segments) != len(q.Segments) {
		return false
	}
	for i, s := range p.Segments {
		t := q.Segments[i]
		if s.Cmd != t.Cmd || len(s.Points) != len(t.Points) || len(s.Params) != len(t.Params) {
			return false
		}
		for j, pt := range s.Points {
			if !pt.Equals(t.Points[j]) || pt.Control != t.Points[j].Control {
				return false
			}
		}
		for j, v := range s.Params {
			if !equal(v, t.Params[j]) {
				return false
			}
		}
	}
	return true
}

// Validate checks the structural invariants of the document: the first
// segment must be a MoveTo, Close segments carry no points, and every other
// segment carries the point count its command implies.
func (p *Path) Validate() error {
	if p.Empty() {
		return nil
	}
	if p.Segments[0].Cmd != MoveToCmd {
		return ErrNoInitialMoveTo
	}
	for i, s := range p.Segments {
		var want int
		switch s.Cmd {
		case MoveToCmd, LineToCmd, HLineToCmd, VLineToCmd, ArcToCmd:
			want = 1
		case QuadToCmd, SmoothQuadToCmd:
			want = 2
		case CubeToCmd, SmoothCubeToCmd:
			want = 3
		case CloseCmd:
			if len(s.Points) != 0 {
				return fmt.Errorf("segment %d: %w", i, ErrClosePoints)
			}
			continue
		}
		if len(s.Points) != want {
			return fmt.Errorf("segment %d: %s carries %d points, want %d", i, s.Cmd, len(s.Points), want)
		}
		if s.Cmd == ArcToCmd && len(s.Params) != 5 {
			return fmt.Errorf("segment %d: arc carries %d parameters, want 5", i, len(s.Params))
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////

func (p *Path) push(cmd Cmd, params []float64, pts ...Point) {
	p.Segments = append(p.Segments, Segment{ID: nextID(), Cmd: cmd, Points: pts, Params: params})
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.push(MoveToCmd, nil, anchor(x, y))
}

// LineTo draws a straight line to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.push(LineToCmd, nil, anchor(x, y))
}

// QuadTo draws a quadratic Bézier with control point (cx,cy) to (x,y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	a := anchor(x, y)
	p.push(QuadToCmd, nil, controlFor(cx, cy, a), a)
}

// CubeTo draws a cubic Bézier with control points (c1x,c1y) and (c2x,c2y)
// to (x,y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	a := anchor(x, y)
	p.push(CubeToCmd, nil, controlFor(c1x, c1y, a), controlFor(c2x, c2y, a), a)
}

// ArcTo draws an elliptical arc with radii rx and ry, rotated by rot
// degrees, to (x,y). The large and sweep flags select among the four
// candidate arcs.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	flarge, fsweep := 0.0, 0.0
	if large {
		flarge = 1.0
	}
	if sweep {
		fsweep = 1.0
	}
	p.push(ArcToCmd, []float64{rx, ry, rot, flarge, fsweep}, anchor(x, y))
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.push(CloseCmd, nil)
}
