package tudat

import "fmt"

// InputError is returned when the problem inputs cannot define a boundary
// value problem (wrong vector dimensions, coincident radii, non-positive
// time of flight or gravitational parameter).
type InputError struct {
	Msg   string  // What is wrong with the input
	Value float64 // Offending value
}

// Error returns the error message for InputError.
func (e *InputError) Error() string {
	return fmt.Sprintf("lambert: invalid input: %s (value %g)", e.Msg, e.Value)
}

// GeometryError is returned when the two radii do not span a transfer plane,
// i.e. the transfer angle is 0 or π and the orbit normal is undefined.
type GeometryError struct {
	Msg           string
	TransferAngle float64 // Transfer angle in radians at which the plane degenerated
}

// Error returns the error message for GeometryError.
func (e *GeometryError) Error() string {
	return fmt.Sprintf("lambert: degenerate geometry: %s (transfer angle %g rad)", e.Msg, e.TransferAngle)
}

// ConvergenceError is returned when an iterative targeter exhausts its
// iteration budget or its iterate leaves the x > -1 domain.
type ConvergenceError struct {
	Targeter   string  // "izzo" or "gooding"
	Iterations int     // Iterations performed when the failure was detected
	X          float64 // Last iterate of the shape parameter
}

// Error returns the error message for ConvergenceError.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("lambert: %s targeter did not converge (iteration %d, x=%g)", e.Targeter, e.Iterations, e.X)
}

// DomainError is returned when the shape parameter sits on the parabolic
// boundary and cannot be classified as elliptical or hyperbolic.
type DomainError struct {
	X float64
}

// Error returns the error message for DomainError.
func (e *DomainError) Error() string {
	return fmt.Sprintf("lambert: x=%g is on the parabolic boundary", e.X)
}
