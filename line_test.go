package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, origin Point, dir Vec2) Line {
	t.Helper()
	l, err := LineThrough(origin, dir)
	require.NoError(t, err)
	return l
}

func TestLineThrough(t *testing.T) {
	l := mustLine(t, Pt(1, 2), Vec(3, 4))
	diff(t, Vec(0.6, 0.8), l.Dir, cmpopts.EquateApprox(0, 1e-9))

	_, err := LineThrough(Pt(1, 2), Vec(0, 0))
	require.ErrorIs(t, err, ErrDegenerateVector)
}

func TestLineContains(t *testing.T) {
	l := mustLine(t, Pt(1, 2), Vec(3, 4))
	if !l.Contains(l.Origin) {
		t.Error("line does not contain its own origin")
	}
	for _, tc := range []float64{-7.5, -1, 0.25, 3, 1e4} {
		if q := l.Eval(tc); !l.Contains(q) {
			t.Errorf("line does not contain %v at t=%g", q, tc)
		}
	}
	if l.Contains(Pt(2, 2)) {
		t.Error("line contains a point off the line")
	}
}

func TestLineIntersect(t *testing.T) {
	xAxis := mustLine(t, Pt(5, 0), Vec(-1, 0))
	yLine := mustLine(t, Pt(0, 5), Vec(0, -1))
	pt, err := xAxis.Intersect(yLine)
	require.NoError(t, err)
	diff(t, Pt(0, 0), pt, cmpopts.EquateApprox(0, 1e-9))

	l1 := mustLine(t, Pt(0, 0), Vec(1, 1))
	l2 := mustLine(t, Pt(2, 0), Vec(-1, 1))
	pt, err = l1.Intersect(l2)
	require.NoError(t, err)
	diff(t, Pt(1, 1), pt, cmpopts.EquateApprox(0, 1e-9))

	if !l1.Contains(pt) || !l2.Contains(pt) {
		t.Errorf("intersection %v does not lie on both lines", pt)
	}
}

func TestLineIntersectParallel(t *testing.T) {
	l1 := mustLine(t, Pt(0, 0), Vec(1, 0))
	l2 := mustLine(t, Pt(0, 1), Vec(1, 0))
	_, err := l1.Intersect(l2)
	require.ErrorIs(t, err, ErrParallelLines)

	// Anti-parallel directions describe the same degenerate case.
	l3 := mustLine(t, Pt(0, 1), Vec(-1, 0))
	_, err = l1.Intersect(l3)
	require.ErrorIs(t, err, ErrParallelLines)
}

func TestSegment(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(3, 4)}
	assert.Equal(t, 5.0, s.Length())
	diff(t, Pt(1.5, 2), s.Midpoint())
	diff(t, Segment{Pt(3, 4), Pt(0, 0)}, s.Reversed())
	assert.Equal(t, s.Length(), s.Reversed().Length())

	tan, err := s.Tangent()
	require.NoError(t, err)
	diff(t, Vec(0.6, 0.8), tan, cmpopts.EquateApprox(0, 1e-9))

	_, err = Segment{Pt(1, 1), Pt(1, 1)}.Tangent()
	require.ErrorIs(t, err, ErrDegenerateVector)
}
