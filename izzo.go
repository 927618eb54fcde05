package tudat

import "math"

// battinBound is the half-width of the near-parabolic window in which the
// closed forms of the time of flight cancel badly and the Battin series takes
// over.
const battinBound = 0.01

// TimeOfFlightIzzo returns the dimensionless time of flight of the arc with
// shape parameter x, semi-perimeter s, chord c and minimum energy semi-major
// axis aMin (all in the same length unit, μ=1). The elliptical (x<1) and
// hyperbolic (x>1) closed forms are replaced by the Battin hypergeometric
// series for |1-x| < 0.01 so both sides join continuously at the parabolic
// boundary.
func TimeOfFlightIzzo(x, s, c float64, longWay bool, aMin float64) float64 {
	if math.Abs(1-x) < battinBound {
		q2 := (s - c) / s
		q := math.Sqrt(q2)
		if longWay {
			q = -q
		}
		E := x*x - 1
		z := math.Sqrt(1 + q2*E)
		η := z - q*x
		S1 := 0.5 * (1 - q - x*η)
		Q := 4. / 3. * hyp2f1b(S1)
		return (η*η*η*Q + 4*q*η) / 2 * math.Sqrt(s*s*s/2)
	}
	a := aMin / (1 - x*x)
	if x < 1 {
		β := 2 * math.Asin(math.Sqrt((s-c)/(2*a)))
		if longWay {
			β = -β
		}
		α := 2 * math.Acos(x)
		return a * math.Sqrt(a) * ((α - math.Sin(α)) - (β - math.Sin(β)))
	}
	α := 2 * math.Acosh(x)
	β := 2 * math.Asinh(math.Sqrt((s-c)/(-2*a)))
	if longWay {
		β = -β
	}
	return -a * math.Sqrt(-a) * ((math.Sinh(α) - α) - (math.Sinh(β) - β))
}

// hyp2f1b sums the Gaussian hypergeometric series 2F1(3, 1; 5/2; z), which
// converges for z < 1.
func hyp2f1b(z float64) float64 {
	Sj, Cj := 1.0, 1.0
	for j := 0.; ; j++ {
		Cj1 := Cj * (3 + j) * (1 + j) / (2.5 + j) * z / (j + 1)
		Sj += Cj1
		if math.Abs(Cj1) < 1e-11 {
			return Sj
		}
		Cj = Cj1
	}
}

// izzoSolve iterates the secant method on ξ=log(1+x) versus log T. Lengths
// are normalized by r1 and times by √(r1³/μ) so the time of flight function
// is evaluated in μ=1 units.
func izzoSolve(geom TransferGeometry, Δt, μ float64) (LambertSolution, error) {
	R := geom.R1Norm
	V := math.Sqrt(μ / R)
	T := Δt / (R / V)
	s := geom.SemiPerimeter / R
	c := geom.Chord / R
	aMin := s / 2
	logT := math.Log(T)
	const in1, in2 = -0.5233, 0.5233
	ξ1, ξ2 := math.Log(1+in1), math.Log(1+in2)
	y1 := math.Log(TimeOfFlightIzzo(in1, s, c, geom.LongWay, aMin)) - logT
	y2 := math.Log(TimeOfFlightIzzo(in2, s, c, geom.LongWay, aMin)) - logT
	Δξ, ξNew := 1.0, 0.0
	var it int
	for it = 0; Δξ > convergenceTol && it < maxIterations && y1 != y2; it++ {
		ξNew = (ξ1*y2 - y1*ξ2) / (y2 - y1)
		yNew := math.Log(TimeOfFlightIzzo(math.Exp(ξNew)-1, s, c, geom.LongWay, aMin)) - logT
		ξ1, y1 = ξ2, y2
		ξ2, y2 = ξNew, yNew
		Δξ = math.Abs(ξ1 - ξNew)
	}
	x := math.Exp(ξNew) - 1
	if Δξ > convergenceTol {
		return LambertSolution{}, &ConvergenceError{Targeter: "izzo", Iterations: it, X: x}
	}
	V1, V2 := geom.Velocities(x, μ)
	return LambertSolution{V1: V1, V2: V2, X: x, Iterations: it}, nil
}
