// Package tudat implements zero-revolution Lambert targeters for preliminary
// interplanetary trajectory design.
//
// Two targeters are provided over a shared transfer geometry: the Izzo
// formulation (log-space secant iteration on the time of flight curve) and
// the Gooding formulation (Newton iteration on the Lancaster-Blanchard time
// equation). Both reconstruct the terminal velocities from the same shape
// parameter, so a converged solution from either targeter describes the same
// conic arc. A porkchop generator evaluates a targeter over departure and
// arrival windows and writes Matlab-compatible contour files.
//
// All quantities are SI: positions in meters, velocities in meters per
// second, gravitational parameters in m^3/s^2.
package tudat
