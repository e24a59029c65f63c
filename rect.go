package pathlang

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned bounding box with origin (X,Y) and size (W,H).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MaxX() float64 {
	return r.X + r.W
}

func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Add returns the union of both rectangles. A zero-sized rectangle is
// treated as empty.
func (r Rect) Add(q Rect) Rect {
	if q.W == 0.0 || q.H == 0.0 {
		return r
	} else if r.W == 0.0 || r.H == 0.0 {
		return q
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.MaxX(), q.MaxX())
	y1 := math.Max(r.MaxY(), q.MaxY())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.MaxX(), r.MaxY())
}

// BoundingBox returns the min/max box over the given points. It is a
// coordinate scan, not a curve extremum search: control points count as
// plain coordinates. Returns a zero box at the origin for no points.
func BoundingBox(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	x0, y0 := pts[0].X, pts[0].Y
	x1, y1 := x0, y0
	for _, pt := range pts[1:] {
		x0 = math.Min(x0, pt.X)
		y0 = math.Min(y0, pt.Y)
		x1 = math.Max(x1, pt.X)
		y1 = math.Max(y1, pt.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Bounds returns the bounding box over all points of the path.
func (p *Path) Bounds() Rect {
	return BoundingBox(p.Coords())
}
