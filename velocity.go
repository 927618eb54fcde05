package tudat

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// Velocities maps a solved shape parameter back to the terminal velocity
// vectors of the arc. Radial and tangential components are assembled first;
// σ = √(1-ρ²) keeps transfer angles near π well conditioned, unlike the
// tan(θ/2) division of the f and g series form.
func (g TransferGeometry) Velocities(x, μ float64) (V1, V2 *mat64.Vector) {
	γ := math.Sqrt(μ * g.SemiPerimeter / 2)
	ρ := (g.R1Norm - g.R2Norm) / g.Chord
	σ := math.Sqrt(1 - ρ*ρ)
	z := math.Sqrt(1 + g.Q*g.Q*(x*x-1))
	vr1 := γ * ((g.Q*z - x) - ρ*(g.Q*z+x)) / g.R1Norm
	vr2 := -γ * ((g.Q*z - x) + ρ*(g.Q*z+x)) / g.R2Norm
	vt1 := γ * σ * (z + g.Q*x) / g.R1Norm
	vt2 := γ * σ * (z + g.Q*x) / g.R2Norm
	it1 := cross(g.Normal, g.ir1)
	it2 := cross(g.Normal, g.ir2)
	V1 = mat64.NewVector(3, nil)
	V2 = mat64.NewVector(3, nil)
	for i := 0; i < 3; i++ {
		V1.SetVec(i, vr1*g.ir1[i]+vt1*it1[i])
		V2.SetVec(i, vr2*g.ir2[i]+vt2*it2[i])
	}
	return
}
