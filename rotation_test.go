package planetary

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestR1R2R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r2 := R2(x)
	r3 := R3(x)
	if r1.At(0, 0) != r2.At(1, 1) || r1.At(0, 0) != r3.At(2, 2) || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R2.At(1, 1) = R3.At(2, 2) = 1")
	}
	if r1.At(1, 1) != c || r1.At(1, 2) != s || r1.At(2, 1) != -s {
		t.Fatal("R1 sines/cosines misplaced")
	}
	if r2.At(0, 0) != c || r2.At(2, 0) != s || r2.At(0, 2) != -s {
		t.Fatal("R2 sines/cosines misplaced")
	}
	if r3.At(0, 0) != c || r3.At(0, 1) != s || r3.At(1, 0) != -s {
		t.Fatal("R3 sines/cosines misplaced")
	}
	// Each single-axis rotation leaves its own axis fixed.
	if !vectorsEqual(MxV33(r2, []float64{0, 1, 0}), []float64{0, 1, 0}) {
		t.Fatal("R2 moved the 2nd axis")
	}
	if !vectorsEqual(MxV33(r1, []float64{1, 0, 0}), []float64{1, 0, 0}) {
		t.Fatal("R1 moved the 1st axis")
	}
}

func TestPQW2ECIIdentity(t *testing.T) {
	// With zero angles the perifocal frame is the inertial frame.
	v := []float64{1, 2, 3}
	if !vectorsEqual(PQW2ECI(0, 0, 0, v), v) {
		t.Fatal("zero-angle rotation must be identity")
	}
}

func TestPQW2ECINormPreserving(t *testing.T) {
	v := []float64{42, -7, 13}
	rotated := PQW2ECI(Deg2rad(63.4), Deg2rad(270), Deg2rad(45), v)
	if !floats.EqualWithinRel(norm(rotated), norm(v), 1e-12) {
		t.Fatalf("rotation changed the norm: %f != %f", norm(rotated), norm(v))
	}
}

func TestPQW2ECIEquatorial(t *testing.T) {
	// A 90 degree node rotation in the equatorial plane maps x onto y.
	got := PQW2ECI(0, 0, math.Pi/2, []float64{1, 0, 0})
	if !vectorsEqual(got, []float64{0, 1, 0}) {
		t.Fatalf("got %+v", got)
	}
}
