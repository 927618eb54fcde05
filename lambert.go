package tudat

import (
	"math"
	"time"

	"github.com/gonum/matrix/mat64"
)

const (
	// maxIterations bounds both targeters. Budget exhaustion is an error,
	// never a silent return.
	maxIterations = 50
	// convergenceTol applies to the Izzo log-space step and to the Gooding
	// normalized time residual.
	convergenceTol = 1e-9
	// parabolicε is the half-width of the unclassifiable band around x=1 in
	// the Lancaster-Blanchard equation.
	parabolicε = 1e-12
)

// TransferGeometry holds the planar invariants of a Lambert transfer between
// two position vectors. The transfer angle is selected by the direction of
// motion, prograde unless retrograde is requested (judged from the z
// component of R1xR2). The longWay argument then picks the conjugate arc and
// flips the motion normal.
type TransferGeometry struct {
	R1, R2         *mat64.Vector
	R1Norm, R2Norm float64
	Chord          float64
	SemiPerimeter  float64
	TransferAngle  float64   // radians, in (0, 2π)
	Normal         []float64 // Unit orbit normal along the direction of motion
	LongWay        bool      // Transfer angle exceeds π
	Retrograde     bool
	Q              float64 // Gooding's transfer parameter √(r1 r2) cos(θ/2)/s
	ir1, ir2       []float64
}

// NewTransferGeometry builds the transfer geometry from the initial and final
// radii. Coincident radii return an InputError; collinear radii leave the
// transfer plane undefined and return a GeometryError.
func NewTransferGeometry(R1, R2 *mat64.Vector, longWay, retrograde bool) (TransferGeometry, error) {
	var geom TransferGeometry
	r1rows, _ := R1.Dims()
	r2rows, _ := R2.Dims()
	if r1rows != 3 || r2rows != 3 {
		return geom, &InputError{Msg: "radii must be 3x1 vectors", Value: float64(r1rows)}
	}
	r1 := vecSlice(R1)
	r2 := vecSlice(R2)
	r1m := norm(r1)
	r2m := norm(r2)
	if r1m == 0 || r2m == 0 {
		return geom, &InputError{Msg: "radius vector has zero norm", Value: 0}
	}
	Δr := []float64{r2[0] - r1[0], r2[1] - r1[1], r2[2] - r1[2]}
	c := norm(Δr)
	if c < 1e-12*(r1m+r2m) {
		return geom, &InputError{Msg: "initial and final radii are coincident", Value: c}
	}
	s := (r1m + r2m + c) / 2
	θ := math.Acos(clamp(dot(r1, r2)/(r1m*r2m), -1, 1))
	cr := cross(r1, r2)
	crm := norm(cr)
	if crm < 1e-10*r1m*r2m {
		return geom, &GeometryError{Msg: "collinear radii, transfer plane undefined", TransferAngle: θ}
	}
	n := unit(cr)
	if (cr[2] < 0) != retrograde {
		θ = 2*math.Pi - θ
		n = []float64{-n[0], -n[1], -n[2]}
	}
	if longWay {
		θ = 2*math.Pi - θ
		n = []float64{-n[0], -n[1], -n[2]}
	}
	q := math.Sqrt(r1m*r2m) * math.Cos(θ/2) / s
	geom = TransferGeometry{
		R1: R1, R2: R2,
		R1Norm: r1m, R2Norm: r2m,
		Chord:         c,
		SemiPerimeter: s,
		TransferAngle: θ,
		Normal:        n,
		LongWay:       θ > math.Pi,
		Retrograde:    retrograde,
		Q:             q,
		ir1:           unit(r1),
		ir2:           unit(r2),
	}
	return geom, nil
}

// MinEnergySemiMajorAxis returns the semi-major axis of the minimum energy
// ellipse connecting both radii.
func (g TransferGeometry) MinEnergySemiMajorAxis() float64 {
	return g.SemiPerimeter / 2
}

// LambertSolution holds the terminal velocities of a solved transfer along
// with the converged shape parameter and the iterations it took.
type LambertSolution struct {
	V1, V2     *mat64.Vector
	X          float64
	Iterations int
}

// SolveLambertProblemIzzo solves the zero-revolution Lambert problem with the
// Izzo formulation: a secant iteration on ξ=log(1+x) against log T, started
// from the fixed pair x=±0.5233. The log transform keeps every iterate above
// x=-1.
func SolveLambertProblemIzzo(R1, R2 *mat64.Vector, Δt time.Duration, μ float64, longWay, retrograde bool) (LambertSolution, error) {
	geom, err := solverInputs(R1, R2, Δt, μ, longWay, retrograde)
	if err != nil {
		return LambertSolution{}, err
	}
	return izzoSolve(geom, Δt.Seconds(), μ)
}

// SolveLambertProblemGooding solves the zero-revolution Lambert problem with
// the Gooding formulation: Newton iteration on the Lancaster-Blanchard time
// equation from the single-revolution starter. The starter is only reliable
// for fast transfers; slow transfers (target time beyond the x=0 arc) send
// the first Newton step out of the x > -1 domain and the targeter reports a
// ConvergenceError.
func SolveLambertProblemGooding(R1, R2 *mat64.Vector, Δt time.Duration, μ float64, longWay, retrograde bool) (LambertSolution, error) {
	geom, err := solverInputs(R1, R2, Δt, μ, longWay, retrograde)
	if err != nil {
		return LambertSolution{}, err
	}
	return goodingSolve(geom, Δt.Seconds(), μ)
}

func solverInputs(R1, R2 *mat64.Vector, Δt time.Duration, μ float64, longWay, retrograde bool) (TransferGeometry, error) {
	if Δt <= 0 {
		return TransferGeometry{}, &InputError{Msg: "time of flight must be positive", Value: Δt.Seconds()}
	}
	if μ <= 0 {
		return TransferGeometry{}, &InputError{Msg: "gravitational parameter must be positive", Value: μ}
	}
	return NewTransferGeometry(R1, R2, longWay, retrograde)
}
