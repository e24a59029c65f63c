package pathlang

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTranslate(t *testing.T) {
	p := MustParse("M1 2L3 4Q5 6 7 8")
	test.That(t, p.Translate(10.0, 20.0).Equals(MustParse("M11 22L13 24Q15 26 17 28")))
}

func TestTranslateNoop(t *testing.T) {
	p := MustParse("M1 2L3 4")
	q := p.Translate(0.0, 0.0)
	test.That(t, q.Equals(p))
	test.That(t, q != p)

	// identity survives pure transforms
	test.T(t, q.Segments[0].Points[0].ID, p.Segments[0].Points[0].ID)
}

func TestTransformPure(t *testing.T) {
	p := MustParse("M1 2L3 4")
	_ = p.Translate(5.0, 5.0)
	_ = p.Scale(2.0, 2.0, 0.0, 0.0)
	_ = p.Rotate(45.0, 0.0, 0.0)
	test.String(t, p.String(), "M1 2L3 4")
}

func TestScale(t *testing.T) {
	test.That(t, MustParse("M2 2L4 4").Scale(2.0, 2.0, 0.0, 0.0).Equals(MustParse("M4 4L8 8")))
	test.That(t, MustParse("M2 2L4 4").Scale(2.0, 2.0, 2.0, 2.0).Equals(MustParse("M2 2L6 6")))
	test.That(t, MustParse("M2 2L4 4").Scale(1.0, 1.0, 9.0, 9.0).Equals(MustParse("M2 2L4 4")))
	test.That(t, MustParse("M2 0").Scale(-1.0, 1.0, 0.0, 0.0).Equals(MustParse("M-2 0")))
}

func TestRotate(t *testing.T) {
	test.That(t, MustParse("M1 0L0 1").Rotate(90.0, 0.0, 0.0).Equals(MustParse("M0 1L-1 0")))
	test.That(t, MustParse("M1 0").Rotate(90.0, 1.0, 1.0).Equals(MustParse("M2 1")))
	test.That(t, MustParse("M1 0").Rotate(0.0, 5.0, 5.0).Equals(MustParse("M1 0")))
	test.That(t, MustParse("M1 2").Rotate(360.0, 3.0, 4.0).Equals(MustParse("M1 2")))
}

func TestTransformControlPoints(t *testing.T) {
	p := MustParse("M0 0C1 1 2 2 3 3").Translate(1.0, 0.0)
	s := p.Segments[1]
	test.That(t, s.Points[0].Equals(Point{X: 2.0, Y: 1.0}))
	test.That(t, s.Points[0].Control)
	test.T(t, s.Points[0].Anchor, s.Points[2].ID)
}

func TestTransformArcParams(t *testing.T) {
	// arc parameters have no structured representation and must not move
	p := MustParse("M0 0A50 30 10 1 0 100 50").Rotate(90.0, 0.0, 0.0)
	test.T(t, p.Segments[1].Params[0], 50.0)
	test.T(t, p.Segments[1].Params[1], 30.0)
	test.T(t, p.Segments[1].Params[2], 10.0)
	test.T(t, p.Segments[1].Params[3], 1.0)
	test.T(t, p.Segments[1].Params[4], 0.0)
	end, _ := p.Segments[1].Anchor()
	test.That(t, end.Equals(Point{X: -50.0, Y: 100.0}))
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(3.0, 4.0).Rotate(90.0).Scale(2.0, 2.0)
	inv := m.Inv()
	r := m.Mul(inv)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			test.Float(t, r[i][j], Identity[i][j])
		}
	}
	test.Float(t, m.Det(), 4.0)

	p := Identity.RotateAt(90.0, 1.0, 1.0).Dot(Point{X: 1.0, Y: 0.0})
	test.That(t, p.Equals(Point{X: 2.0, Y: 1.0}))
}
