package pathlang

import "math"

// Matrix is an affine transformation. Concatenated transformations are
// evaluated right-to-left: Identity.Rotate(30).Translate(20, 0) first
// translates, then rotates.
type Matrix [2][3]float64

var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot applies the transformation to a point, keeping its identity.
func (m Matrix) Dot(p Point) Point {
	p.X, p.Y = m[0][0]*p.X+m[0][1]*p.Y+m[0][2], m[1][0]*p.X+m[1][1]*p.Y+m[1][2]
	return p
}

func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate rotates by rot degrees counter clockwise.
func (m Matrix) Rotate(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

// RotateAt rotates by rot degrees counter clockwise about (x,y).
func (m Matrix) RotateAt(rot, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(rot).Translate(-x, -y)
}

// ScaleAt scales about (x,y).
func (m Matrix) ScaleAt(sx, sy, x, y float64) Matrix {
	return m.Translate(x, y).Scale(sx, sy).Translate(-x, -y)
}

func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

func (m Matrix) Inv() Matrix {
	det := m.Det()
	if equal(det, 0.0) {
		panic("determinant of affine transformation matrix is zero")
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}
}

////////////////////////////////////////////////////////////////

// Transform returns a copy of the path with m applied to every point,
// control points included. Arc parameters are preserved verbatim: the
// model has no structured representation for them, so only the arc
// endpoint moves.
func (p *Path) Transform(m Matrix) *Path {
	q := p.Clone()
	for i := range q.Segments {
		pts := q.Segments[i].Points
		for j := range pts {
			pts[j] = m.Dot(pts[j])
		}
	}
	return q
}

// Translate returns a copy of the path moved by (dx,dy).
func (p *Path) Translate(dx, dy float64) *Path {
	if dx == 0.0 && dy == 0.0 {
		return p.Clone()
	}
	return p.Transform(Identity.Translate(dx, dy))
}

// Scale returns a copy of the path scaled by (sx,sy) about (ox,oy).
func (p *Path) Scale(sx, sy, ox, oy float64) *Path {
	if sx == 1.0 && sy == 1.0 {
		return p.Clone()
	}
	return p.Transform(Identity.ScaleAt(sx, sy, ox, oy))
}

// Rotate returns a copy of the path rotated by deg degrees counter
// clockwise about (ox,oy).
func (p *Path) Rotate(deg, ox, oy float64) *Path {
	if deg == 0.0 {
		return p.Clone()
	}
	return p.Transform(Identity.RotateAt(deg, ox, oy))
}
