package pathlang

import "math"

// Simplify returns a copy of the path with line-family segments (LineTo,
// HLineTo, VLineTo) dropped when their anchor lies within tolerance of the
// last retained position. Move, curve, arc and close segments pass through
// unmodified: pruning curve geometry needs curve fitting, which this
// operation deliberately does not attempt.
func (p *Path) Simplify(tolerance float64) *Path {
	if tolerance < 0.0 {
		return p.Clone()
	}
	q := &Path{}
	penX, penY := 0.0, 0.0
	for _, s := range p.Segments {
		switch s.Cmd {
		case LineToCmd, HLineToCmd, VLineToCmd:
			end, _ := s.Anchor()
			if math.Hypot(end.X-penX, end.Y-penY) <= tolerance {
				continue
			}
			penX, penY = end.X, end.Y
		default:
			if end, ok := s.Anchor(); ok {
				penX, penY = end.X, end.Y
			}
		}
		q.Segments = append(q.Segments, s.clone())
	}
	return q
}
