// SPDX-License-Identifier: MIT

package abeles

import "math"

// CosTheta returns sqrt(1 - sin²(theta/n)), the cosine of the in-layer angle
// used by this model. The incidence angle is scaled by 1/n before the sine is
// taken; this is not Snell's law (sin(theta)/n) and is kept as is because
// changing it changes every computed transmittance.
//
// No validation: callers pass |theta| < π/2 and n > 0.
func CosTheta(theta, n float64) float64 {
	s := math.Sin(theta / n)

	return math.Sqrt(1 - s*s)
}

// Beta returns the phase thickness π·cosθ_n·λref / (2·λop).
// At λop == λref the layer is a quarter wave (β = π/2 at normal incidence).
func Beta(theta, n, lambdaRef, lambdaOp float64) float64 {
	return math.Pi * CosTheta(theta, n) * lambdaRef / (2 * lambdaOp)
}

// P returns the TE admittance term n·cosθ_n.
func P(theta, n float64) float64 { return n * CosTheta(theta, n) }

// Q returns the TM admittance term cosθ_n / n.
func Q(theta, n float64) float64 { return CosTheta(theta, n) / n }

// Admittance returns P for TE and Q for TM.
// Unknown polarizations yield NaN so that misuse is visible downstream.
func Admittance(pol Polarization, theta, n float64) float64 {
	switch pol {
	case TE:
		return P(theta, n)
	case TM:
		return Q(theta, n)
	default:
		return math.NaN()
	}
}
