package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRotateToAxis(t *testing.T) {
	// Rotating a vector relative to its own direction lands it on the
	// positive x axis with its magnitude intact.
	diff(t, Vec(5, 0), RotateToAxis(Vec(3, 4), Vec(3, 4)), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Vec(1, 0), RotateToAxis(Vec(0, 1), Vec(0, 1)), cmpopts.EquateApprox(0, 1e-9))

	v := Vec(2, -3)
	if got, want := RotateToAxis(v, Vec(1, 2)).Hypot(), v.Hypot(); math.Abs(got-want) > 1e-9 {
		t.Errorf("rotation changed magnitude: %g != %g", got, want)
	}
}

func TestReflect(t *testing.T) {
	// Across the x axis.
	diff(t, Vec(2, -3), Reflect(Vec(2, 3), Vec(1, 0)), cmpopts.EquateApprox(0, 1e-9))
	// Across the diagonal, which swaps the coordinates.
	diff(t, Vec(0, 1), Reflect(Vec(1, 0), Vec(1, 1)), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Vec(3, 2), Reflect(Vec(2, 3), Vec(1, 1)), cmpopts.EquateApprox(0, 1e-9))
}

func TestReflectInvolution(t *testing.T) {
	vecs := []Vec2{Vec(1, 0), Vec(0, -2), Vec(3, 4), Vec(-2.5, 1.25)}
	axes := []Vec2{Vec(1, 0), Vec(1, 1), Vec(-3, 7), Vec(0, -1)}
	for _, v := range vecs {
		for _, a := range axes {
			diff(t, v, Reflect(Reflect(v, a), a), cmpopts.EquateApprox(0, 1e-9))
			if got, want := Reflect(v, a).Hypot(), v.Hypot(); math.Abs(got-want) > 1e-9 {
				t.Errorf("reflection of %v across %v changed magnitude: %g != %g", v, a, got, want)
			}
		}
	}
}
