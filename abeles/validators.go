// SPDX-License-Identifier: MIT
// Package: abeles
//
// Purpose:
//   - Single source of truth for the physical-domain checks shared by Set and
//     Transmittance (and reused by the mirror package).
//   - Return plain sentinels so call sites can wrap uniformly.
//
// Check order is fixed: finiteness first, then the domain bound.

package abeles

import (
	"fmt"
	"math"
)

// validatorErrorf tags err with the validator that produced it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// ValidateAngle ensures theta is finite and strictly inside (-π/2, π/2).
// Errors: ErrNaNInf, ErrAngleOutOfRange.
func ValidateAngle(theta float64) error {
	if !finite(theta) {
		return validatorErrorf("ValidateAngle", ErrNaNInf)
	}
	if math.Abs(theta) >= math.Pi/2 {
		return validatorErrorf("ValidateAngle", ErrAngleOutOfRange)
	}

	return nil
}

// ValidateIndex ensures each refractive index is finite and positive.
// Errors: ErrNaNInf, ErrNonPositiveIndex.
func ValidateIndex(ns ...float64) error {
	for _, n := range ns {
		if !finite(n) {
			return validatorErrorf("ValidateIndex", ErrNaNInf)
		}
		if n <= 0 {
			return validatorErrorf("ValidateIndex", ErrNonPositiveIndex)
		}
	}

	return nil
}

// ValidateWavelength ensures each wavelength is finite and positive.
// Errors: ErrNaNInf, ErrNonPositiveWavelength.
func ValidateWavelength(lambdas ...float64) error {
	for _, l := range lambdas {
		if !finite(l) {
			return validatorErrorf("ValidateWavelength", ErrNaNInf)
		}
		if l <= 0 {
			return validatorErrorf("ValidateWavelength", ErrNonPositiveWavelength)
		}
	}

	return nil
}

// validateBoundary is the composite check for Transmittance:
// angle → ambient/substrate indices.
func validateBoundary(theta, nAmbient, nSubstrate float64) error {
	if err := ValidateAngle(theta); err != nil {
		return err
	}

	return ValidateIndex(nAmbient, nSubstrate)
}
