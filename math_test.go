package tudat

import (
	"testing"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if !floats.EqualWithinAbs(norm(v), 5, 1e-12) {
		t.Fatalf("norm = %f", norm(v))
	}
	u := unit(v)
	if !floats.EqualWithinAbs(norm(u), 1, 1e-12) {
		t.Fatalf("unit vector norm = %f", norm(u))
	}
	z := unit([]float64{0, 0, 0})
	if norm(z) != 0 {
		t.Fatalf("unit of the zero vector should be the zero vector")
	}
}

func TestCrossDot(t *testing.T) {
	x := []float64{1, 0, 0}
	y := []float64{0, 1, 0}
	c := cross(x, y)
	exp := []float64{0, 0, 1}
	for i := 0; i < 3; i++ {
		if c[i] != exp[i] {
			t.Fatalf("x × y = %+v", c)
		}
	}
	if dot(x, y) != 0 {
		t.Fatalf("x · y = %f", dot(x, y))
	}
	if dot(c, c) != 1 {
		t.Fatalf("|z|² = %f", dot(c, c))
	}
}

func TestVecSlice(t *testing.T) {
	v := mat64.NewVector(3, []float64{1, -2, 3})
	s := vecSlice(v)
	if s[0] != 1 || s[1] != -2 || s[2] != 3 {
		t.Fatalf("vecSlice = %+v", s)
	}
}

func TestClamp(t *testing.T) {
	if clamp(1.5, -1, 1) != 1 || clamp(-1.5, -1, 1) != -1 || clamp(0.3, -1, 1) != 0.3 {
		t.Fatal("clamp bounds incorrect")
	}
}
