package tudat

import "math"

// GoodingFunctions bundles the transfer parameter q and the normalized target
// time of flight T of the Lancaster-Blanchard time equation. The residual
// T - T_LB(x) and its derivative come in two algebraic branches split at the
// parabolic boundary x=1: a logarithmic form above it and an arctangent form
// below it.
type GoodingFunctions struct {
	Q, T float64
}

// Positive evaluates the residual on the hyperbolic side (x > 1), where the
// auxiliary variable takes its logarithmic form.
func (gf GoodingFunctions) Positive(x float64) float64 {
	E := x*x - 1
	y := math.Sqrt(math.Abs(E))
	z := math.Sqrt(1 + gf.Q*gf.Q*E)
	f := y * (z - gf.Q*x)
	g := x*z - gf.Q*E
	d := math.Log(f + g)
	return gf.T - 2*(x-gf.Q*z-d/y)/E
}

// Negative evaluates the residual on the elliptical side (x < 1), where the
// auxiliary variable takes its arctangent form.
func (gf GoodingFunctions) Negative(x float64) float64 {
	E := x*x - 1
	y := math.Sqrt(math.Abs(E))
	z := math.Sqrt(1 + gf.Q*gf.Q*E)
	f := y * (z - gf.Q*x)
	g := x*z - gf.Q*E
	d := math.Atan2(f, g)
	return gf.T - 2*(x-gf.Q*z-d/y)/E
}

// DPositive evaluates the first derivative of the residual for x > 1.
func (gf GoodingFunctions) DPositive(x float64) float64 {
	return gf.residualDerivative(x, gf.Positive(x))
}

// DNegative evaluates the first derivative of the residual for x < 1.
func (gf GoodingFunctions) DNegative(x float64) float64 {
	return gf.residualDerivative(x, gf.Negative(x))
}

func (gf GoodingFunctions) residualDerivative(x, fx float64) float64 {
	E := x*x - 1
	z := math.Sqrt(1 + gf.Q*gf.Q*E)
	tlb := gf.T - fx
	return -(4 - 4*gf.Q*gf.Q*gf.Q*x/z - 3*x*tlb) / E
}

// Eval dispatches the residual on the branch of x. Shape parameters within
// parabolicε of the boundary cannot be classified and return a DomainError.
func (gf GoodingFunctions) Eval(x float64) (float64, error) {
	if math.Abs(x*x-1) < parabolicε {
		return 0, &DomainError{X: x}
	}
	if x > 1 {
		return gf.Positive(x), nil
	}
	return gf.Negative(x), nil
}

// Derivative dispatches the residual derivative on the branch of x.
func (gf GoodingFunctions) Derivative(x float64) (float64, error) {
	if math.Abs(x*x-1) < parabolicε {
		return 0, &DomainError{X: x}
	}
	if x > 1 {
		return gf.DPositive(x), nil
	}
	return gf.DNegative(x), nil
}

// goodingSolve runs Newton iteration on the Lancaster-Blanchard residual.
// The time of flight is normalized as T = Δt √(8μ/s³) so that q and T fully
// parameterize the problem.
func goodingSolve(geom TransferGeometry, Δt, μ float64) (LambertSolution, error) {
	s := geom.SemiPerimeter
	T := Δt * math.Sqrt(8*μ/(s*s*s))
	gf := GoodingFunctions{Q: geom.Q, T: T}
	// Single-revolution starter, anchored on the time of flight T0 of the
	// x=0 arc. It is only derived for T <= T0: beyond that it undershoots
	// badly enough that the first Newton step leaves the domain.
	T0 := T - gf.Negative(0)
	x := T0 * (T0 - T) / (4 * T)
	if x <= -1 || math.IsNaN(x) {
		return LambertSolution{}, &ConvergenceError{Targeter: "gooding", Iterations: 0, X: x}
	}
	for it := 1; it <= maxIterations; it++ {
		F, err := gf.Eval(x)
		if err != nil {
			return LambertSolution{}, err
		}
		if math.Abs(F) < convergenceTol {
			V1, V2 := geom.Velocities(x, μ)
			return LambertSolution{V1: V1, V2: V2, X: x, Iterations: it - 1}, nil
		}
		dF, err := gf.Derivative(x)
		if err != nil {
			return LambertSolution{}, err
		}
		xNew := x - F/dF
		if xNew <= -1 || math.IsNaN(xNew) {
			return LambertSolution{}, &ConvergenceError{Targeter: "gooding", Iterations: it, X: xNew}
		}
		x = xNew
	}
	return LambertSolution{}, &ConvergenceError{Targeter: "gooding", Iterations: maxIterations, X: x}
}
