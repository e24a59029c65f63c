package pathlang

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestCmd(t *testing.T) {
	test.T(t, MoveToCmd.Letter(), byte('M'))
	test.T(t, CloseCmd.Letter(), byte('Z'))
	test.String(t, CubeToCmd.String(), "CubeTo")
	test.String(t, Cmd(99).String(), "Cmd(99)")

	cmd, rel, ok := cmdFromLetter('a')
	test.That(t, ok && rel)
	test.T(t, cmd, ArcToCmd)
	cmd, rel, ok = cmdFromLetter('V')
	test.That(t, ok && !rel)
	test.T(t, cmd, VLineToCmd)
	_, _, ok = cmdFromLetter('X')
	test.That(t, !ok)
}

func TestPathBuilders(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())
	p.MoveTo(0.0, 0.0)
	p.LineTo(10.0, 0.0)
	p.QuadTo(15.0, 5.0, 10.0, 10.0)
	p.CubeTo(8.0, 12.0, 2.0, 12.0, 0.0, 10.0)
	p.ArcTo(5.0, 5.0, 0.0, false, true, 0.0, 0.0)
	p.Close()
	test.Error(t, p.Validate())
	test.String(t, p.String(), "M0 0L10 0Q15 5 10 10C8 12 2 12 0 10A5 5 0 0 1 0 0z")
}

func TestPathPos(t *testing.T) {
	var tts = []struct {
		orig string
		x, y float64
	}{
		{"", 0.0, 0.0},
		{"M3 4", 3.0, 4.0},
		{"M3 4L10 0", 10.0, 0.0},
		{"M3 4L10 0z", 3.0, 4.0},
		{"M3 4L10 0zM5 5H7", 7.0, 5.0},
		{"M3 4L10 0zL1 1z", 3.0, 4.0},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			x, y := MustParse(tt.orig).Pos()
			test.Float(t, x, tt.x)
			test.Float(t, y, tt.y)
		})
	}
}

func TestPathClone(t *testing.T) {
	p := MustParse("M0 0Q5 5 10 0A3 3 0 0 1 20 0")
	q := p.Clone()
	test.That(t, p.Equals(q))

	// clone preserves identity
	test.T(t, q.Segments[0].Points[0].ID, p.Segments[0].Points[0].ID)

	// but shares no storage
	q.Segments[1].Points[0].X = 99.0
	q.Segments[2].Params[0] = 99.0
	test.Float(t, p.Segments[1].Points[0].X, 5.0)
	test.Float(t, p.Segments[2].Params[0], 3.0)
}

func TestPathEquals(t *testing.T) {
	p := MustParse("M0 0L10 10")
	test.That(t, p.Equals(MustParse("M0 0L10 10")))
	test.That(t, p.Equals(MustParse("M0 0l10 10")))
	test.That(t, !p.Equals(MustParse("M0 0L10 11")))
	test.That(t, !p.Equals(MustParse("M0 0M10 10")))
	test.That(t, !p.Equals(MustParse("M0 0L10 10z")))
	test.That(t, MustParse("M0 0Q1 1 2 0").Equals(MustParse("M0 0Q1 1 2 0")))
}

func TestPathValidate(t *testing.T) {
	test.Error(t, (&Path{}).Validate())
	test.Error(t, MustParse("M0 0L1 1C1 2 2 2 2 1S3 0 3 1Q4 2 4 1T5 1A1 1 0 0 0 6 1z").Validate())

	p := &Path{}
	p.LineTo(1.0, 1.0)
	test.That(t, errors.Is(p.Validate(), ErrNoInitialMoveTo))

	p = MustParse("M0 0z")
	p.Segments[1].Points = []Point{anchor(1.0, 1.0)}
	test.That(t, errors.Is(p.Validate(), ErrClosePoints))

	p = MustParse("M0 0C0 1 1 1 1 0")
	p.Segments[1].Points = p.Segments[1].Points[:2]
	test.That(t, p.Validate() != nil)

	p = MustParse("M0 0A1 1 0 0 0 1 1")
	p.Segments[1].Params = p.Segments[1].Params[:4]
	test.That(t, p.Validate() != nil)
}

func TestPathCoords(t *testing.T) {
	p := MustParse("M0 0Q1 2 3 4z")
	pts := p.Coords()
	test.T(t, len(pts), 3)
	test.That(t, pts[1].Control)
	test.T(t, pts[1].Anchor, pts[2].ID)
}
