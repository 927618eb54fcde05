package tudat

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

func TestVelocitiesInTransferPlane(t *testing.T) {
	R1 := mat64.NewVector(3, []float64{12511166.057776712, 6255583.028888356, 3611662.545666746})
	R2 := mat64.NewVector(3, []float64{-21294007.880833015, 10647003.940416506, 6147050.591062474})
	tof := 8840.5672087469866
	Δt := time.Duration(tof * float64(time.Second))
	μ := 398600.4418e9
	sol, err := SolveLambertProblemIzzo(R1, R2, Δt, μ, false, false)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	geom, err := NewTransferGeometry(R1, R2, false, false)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	v1 := vecSlice(sol.V1)
	v2 := vecSlice(sol.V2)
	if out := math.Abs(dot(v1, geom.Normal)); out > 1e-6 {
		t.Fatalf("V1 leaves the transfer plane by %g m/s", out)
	}
	if out := math.Abs(dot(v2, geom.Normal)); out > 1e-6 {
		t.Fatalf("V2 leaves the transfer plane by %g m/s", out)
	}
	// The specific angular momentum is shared by both ends of the arc and
	// points along the motion normal.
	h1 := cross(vecSlice(R1), v1)
	h2 := cross(vecSlice(R2), v2)
	Δh := []float64{h1[0] - h2[0], h1[1] - h2[1], h1[2] - h2[2]}
	if norm(Δh)/norm(h1) > 1e-9 {
		t.Fatalf("angular momentum differs across the arc: %+v vs %+v", h1, h2)
	}
	if dot(h1, geom.Normal) <= 0 {
		t.Fatalf("angular momentum opposes the motion normal")
	}
	if norm(cross(unit(h1), geom.Normal)) > 1e-9 {
		t.Fatalf("angular momentum is not aligned with the motion normal")
	}
}

func TestVelocitiesEnergyConsistency(t *testing.T) {
	μ := 398600.4418e9
	R1 := mat64.NewVector(3, []float64{13835815.57158037, 2439627.5853759316, 0})
	R2 := mat64.NewVector(3, []float64{-6936492.674099006, -19057856.992299438, 0})
	tof := 21841.504435082079
	Δt := time.Duration(tof * float64(time.Second))
	sol, err := SolveLambertProblemIzzo(R1, R2, Δt, μ, false, false)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	v1 := norm(vecSlice(sol.V1))
	v2 := norm(vecSlice(sol.V2))
	ε1 := v1*v1/2 - μ/mat64.Norm(R1, 2)
	ε2 := v2*v2/2 - μ/mat64.Norm(R2, 2)
	if !floats.EqualWithinRel(ε1, ε2, 1e-9) {
		t.Fatalf("specific energy differs across the arc: %g vs %g", ε1, ε2)
	}
}
