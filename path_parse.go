package pathlang

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// DefaultMaxSegments bounds parsing of untrusted input. Every operation of
// the engine is O(segments), so the ceiling also bounds CPU use downstream.
const DefaultMaxSegments = 5000

// Parser parses SVG path data into a segment model. The zero value is
// ready to use.
type Parser struct {
	// MaxSegments is the segment ceiling, DefaultMaxSegments when zero or
	// negative. Parsing stops with ErrTooManySegments when exceeded.
	MaxSegments int

	// Strict rejects a path whose first command is not a MoveTo instead of
	// repairing it with a synthesized M 0 0.
	Strict bool
}

// Parse parses SVG path data using default limits. Recoverable diagnostics
// are dropped; use Parser.Parse to inspect them.
func Parse(d string) (*Path, error) {
	p, _, err := Parser{}.Parse(d)
	return p, err
}

// MustParse parses SVG path data and panics on error. Intended for tests
// and static path literals.
func MustParse(d string) *Path {
	p, _, err := Parser{}.Parse(d)
	if err != nil {
		panic("pathlang: " + err.Error())
	}
	return p
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func nextNum(path []byte, pos *int) (float64, bool) {
	i := *pos + skipCommaWhitespace(path[*pos:])
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		*pos = i
		return 0.0, false
	}
	*pos = i + n
	return f, true
}

// nextFlag scans an arc flag as a single digit, even when glued to the
// following number ("a5 5 0 1130 30" carries flags 1 and 1 before 30 30).
func nextFlag(path []byte, pos *int) (float64, bool) {
	i := *pos + skipCommaWhitespace(path[*pos:])
	*pos = i
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		*pos = i + 1
		return float64(path[i] - '0'), true
	}
	return 0.0, false
}

// skipArgs advances past a run of argument bytes to resynchronize at the
// next command letter after a malformed command. Consumes at least one byte
// when not already at a letter.
func skipArgs(path []byte) int {
	i := 0
	for i < len(path) {
		c := path[i]
		if '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.' || c == ',' ||
			c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == 'e' || c == 'E' {
			i++
		} else if i == 0 && c < 'A' {
			i++ // junk byte, force progress
		} else {
			break
		}
	}
	return i
}

// Parse scans path data left to right into a Path. It never panics: single
// malformed commands are skipped and surfaced as Diagnostics, and the path
// built so far is returned even when err is non-nil (segment ceiling,
// strict-mode structural violation).
func (pr Parser) Parse(d string) (*Path, []Diagnostic, error) {
	maxSegments := pr.MaxSegments
	if maxSegments <= 0 {
		maxSegments = DefaultMaxSegments
	}

	path := []byte(d)
	p := &Path{}
	var diags []Diagnostic

	var prevLetter byte
	prevCmd := Cmd(-1)
	penX, penY := 0.0, 0.0     // pen position, resolves relative commands
	startX, startY := 0.0, 0.0 // subpath start, pen destination of Close
	cpx, cpy := 0.0, 0.0       // last control point of the previous curve

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if i == len(path) {
			break
		}
		cmdStart := i
		explicit := path[i] >= 'A'
		letter := prevLetter
		if explicit {
			letter = path[i]
			i++
		}

		cmd, rel, known := cmdFromLetter(letter)
		if !known {
			msg := "unknown command letter"
			if letter == 0 {
				msg = "number before any command"
			}
			diags = append(diags, Diagnostic{Offset: cmdStart, Command: letter, Message: msg})
			logger().Debug("skipping unknown command", "offset", cmdStart, "letter", string(rune(letter)))
			i += skipArgs(path[i:])
			prevLetter = 0
			prevCmd = -1
			continue
		}
		if !explicit && cmd == CloseCmd {
			// a close takes no arguments and cannot repeat implicitly
			diags = append(diags, Diagnostic{Offset: cmdStart, Command: letter, Message: "number after close"})
			i += skipArgs(path[i:])
			prevLetter = 0
			prevCmd = -1
			continue
		}

		var args [7]float64
		argsOK := true
		if cmd == ArcToCmd {
			for j := 0; j < 3 && argsOK; j++ {
				args[j], argsOK = nextNum(path, &i)
			}
			for j := 3; j < 5 && argsOK; j++ {
				args[j], argsOK = nextFlag(path, &i)
			}
			for j := 5; j < 7 && argsOK; j++ {
				args[j], argsOK = nextNum(path, &i)
			}
		} else {
			for j := 0; j < cmd.argN() && argsOK; j++ {
				args[j], argsOK = nextNum(path, &i)
			}
		}
		if !argsOK {
			diags = append(diags, Diagnostic{Offset: cmdStart, Command: letter, Message: "missing or malformed argument"})
			logger().Debug("skipping malformed command", "offset", cmdStart, "letter", string(rune(letter)))
			i += skipArgs(path[i:])
			prevLetter = 0
			prevCmd = -1
			continue
		}

		if p.Empty() && cmd != MoveToCmd {
			if pr.Strict {
				return p, diags, ErrNoInitialMoveTo
			}
			diags = append(diags, Diagnostic{Offset: cmdStart, Command: letter, Message: "path does not start with a moveto, inserting M 0 0"})
			logger().Debug("repairing missing initial moveto", "offset", cmdStart)
			p.MoveTo(0.0, 0.0)
		}
		if maxSegments <= len(p.Segments) {
			return p, diags, fmt.Errorf("%w (limit %d)", ErrTooManySegments, maxSegments)
		}

		switch cmd {
		case MoveToCmd:
			x, y := args[0], args[1]
			if rel {
				x += penX
				y += penY
			}
			p.MoveTo(x, y)
			penX, penY = x, y
			startX, startY = x, y
		case LineToCmd:
			x, y := args[0], args[1]
			if rel {
				x += penX
				y += penY
			}
			p.LineTo(x, y)
			penX, penY = x, y
		case HLineToCmd:
			x := args[0]
			if rel {
				x += penX
			}
			p.push(HLineToCmd, nil, anchor(x, penY))
			penX = x
		case VLineToCmd:
			y := args[0]
			if rel {
				y += penY
			}
			p.push(VLineToCmd, nil, anchor(penX, y))
			penY = y
		case CubeToCmd:
			c1x, c1y, c2x, c2y, x, y := args[0], args[1], args[2], args[3], args[4], args[5]
			if rel {
				c1x += penX
				c1y += penY
				c2x += penX
				c2y += penY
				x += penX
				y += penY
			}
			p.CubeTo(c1x, c1y, c2x, c2y, x, y)
			cpx, cpy = c2x, c2y
			penX, penY = x, y
		case SmoothCubeToCmd:
			c2x, c2y, x, y := args[0], args[1], args[2], args[3]
			if rel {
				c2x += penX
				c2y += penY
				x += penX
				y += penY
			}
			c1x, c1y := penX, penY
			if prevCmd == CubeToCmd || prevCmd == SmoothCubeToCmd {
				c1x, c1y = 2.0*penX-cpx, 2.0*penY-cpy
			}
			end := anchor(x, y)
			p.push(SmoothCubeToCmd, nil, controlFor(c1x, c1y, end), controlFor(c2x, c2y, end), end)
			cpx, cpy = c2x, c2y
			penX, penY = x, y
		case QuadToCmd:
			cx, cy, x, y := args[0], args[1], args[2], args[3]
			if rel {
				cx += penX
				cy += penY
				x += penX
				y += penY
			}
			p.QuadTo(cx, cy, x, y)
			cpx, cpy = cx, cy
			penX, penY = x, y
		case SmoothQuadToCmd:
			x, y := args[0], args[1]
			if rel {
				x += penX
				y += penY
			}
			cx, cy := penX, penY
			if prevCmd == QuadToCmd || prevCmd == SmoothQuadToCmd {
				cx, cy = 2.0*penX-cpx, 2.0*penY-cpy
			}
			end := anchor(x, y)
			p.push(SmoothQuadToCmd, nil, controlFor(cx, cy, end), end)
			cpx, cpy = cx, cy
			penX, penY = x, y
		case ArcToCmd:
			x, y := args[5], args[6]
			if rel {
				x += penX
				y += penY
			}
			p.push(ArcToCmd, []float64{args[0], args[1], args[2], args[3], args[4]}, anchor(x, y))
			penX, penY = x, y
		case CloseCmd:
			p.Close()
			penX, penY = startX, startY
		}
		prevLetter = letter
		prevCmd = cmd
	}
	return p, diags, nil
}
