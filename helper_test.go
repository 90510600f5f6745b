package planetary

import (
	"fmt"
	"math"
	"testing"

	"github.com/gonum/floats"
)

const angleε = (5e-3 / 360) * (2 * math.Pi)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// vectorsEqual compares component-wise with a tolerance scaled to the
// vectors' magnitude, so a tiny numerical residual against an expected
// exact-zero component still compares equal.
func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	absTol := 1e-3 * math.Max(floats.Norm(a, 2), floats.Norm(b, 2))
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbsOrRel(a[i], b[i], absTol, 1e-3) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	if diff < angleε || 2*math.Pi-diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", math.Abs(Rad2deg(diff)))
}

// sunEarth returns a fresh Sun/Earth pair on a circular orbit of the given
// radius, Sun at the origin, Earth moving along +y.
func sunEarth(radius float64) (sun, earth *Body) {
	sun = NewBody("Sun", 1.989e30, 6.957e8, 1408)
	earth = NewBody("Earth", 5.972e24, 6.371e6, 5514)
	earth.R = []float64{radius, 0, 0}
	earth.V = []float64{0, circularSpeed(sun, earth, radius), 0}
	return
}

func circularSpeed(central, b *Body, radius float64) float64 {
	return math.Sqrt(G * (central.Mass + b.Mass) / radius)
}
