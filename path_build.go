package pathlang

import (
	stdstrconv "strconv"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

func appendNum(b []byte, f float64) []byte {
	if out, ok := strconv.AppendFloat(b, f, -1); ok {
		return out
	}
	return stdstrconv.AppendFloat(b, f, 'g', -1, 64)
}

type pathWriter struct {
	b    []byte
	prec int  // <0 disables number minification
	arg  bool // previous byte belongs to an argument
}

func (w *pathWriter) cmd(letter byte) {
	w.b = append(w.b, letter)
	w.arg = false
}

func (w *pathWriter) num(f float64) {
	num := appendNum(nil, f)
	if 0 <= w.prec {
		num = minify.Number(num, w.prec)
	}
	// canonical form always separates arguments; minified form drops the
	// space when the sign already delimits
	if w.arg && (w.prec < 0 || num[0] != '-') {
		w.b = append(w.b, ' ')
	}
	w.b = append(w.b, num...)
	w.arg = true
}

// String serializes the path to its canonical form: absolute command
// letters only, arguments in the parser's per-command arity, shortest
// faithful number representation. Arc segments re-emit their preserved
// parameters verbatim before the endpoint. Parsing the result yields a
// structurally equivalent path, and serializing is idempotent.
func (p *Path) String() string {
	return string(p.appendData(&pathWriter{prec: -1}))
}

// MinifyString serializes like String but additionally compacts every
// number to at most prec significant digits (0 keeps full precision), for
// compact exports. Arc parameters pass through the same compaction; flags
// are single digits and survive it unchanged.
func (p *Path) MinifyString(prec int) string {
	return string(p.appendData(&pathWriter{prec: prec}))
}

func (p *Path) appendData(w *pathWriter) []byte {
	for _, s := range p.Segments {
		if s.Cmd == CloseCmd {
			w.cmd('z')
			continue
		}
		end, ok := s.Anchor()
		if !ok {
			continue // degrade gracefully, nothing to emit without points
		}
		switch s.Cmd {
		case MoveToCmd, LineToCmd:
			w.cmd(s.Cmd.Letter())
			w.num(end.X)
			w.num(end.Y)
		case HLineToCmd:
			w.cmd('H')
			w.num(end.X)
		case VLineToCmd:
			w.cmd('V')
			w.num(end.Y)
		case CubeToCmd:
			w.cmd('C')
			for _, pt := range s.Points {
				w.num(pt.X)
				w.num(pt.Y)
			}
		case SmoothCubeToCmd:
			// the first control point is the implicit reflection, skip it
			w.cmd('S')
			pts := s.Points
			if 2 < len(pts) {
				pts = pts[len(pts)-2:]
			}
			for _, pt := range pts {
				w.num(pt.X)
				w.num(pt.Y)
			}
		case QuadToCmd:
			w.cmd('Q')
			for _, pt := range s.Points {
				w.num(pt.X)
				w.num(pt.Y)
			}
		case SmoothQuadToCmd:
			w.cmd('T')
			w.num(end.X)
			w.num(end.Y)
		case ArcToCmd:
			w.cmd('A')
			for _, v := range s.Params {
				w.num(v)
			}
			w.num(end.X)
			w.num(end.Y)
		}
	}
	return w.b
}
