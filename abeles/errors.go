// SPDX-License-Identifier: MIT
// Package abeles: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with call
// context via %w); tests match them with errors.Is.

package abeles

import (
	"errors"
	"fmt"
)

var (
	// ErrAngleOutOfRange is returned when |theta| >= π/2.
	ErrAngleOutOfRange = errors.New("abeles: incidence angle must satisfy |theta| < pi/2")

	// ErrNonPositiveIndex is returned when a refractive index is <= 0.
	ErrNonPositiveIndex = errors.New("abeles: refractive index must be > 0")

	// ErrNonPositiveWavelength is returned when a reference or operating
	// wavelength is <= 0.
	ErrNonPositiveWavelength = errors.New("abeles: wavelength must be > 0")

	// ErrNaNInf signals a NaN or ±Inf physical parameter.
	ErrNaNInf = errors.New("abeles: NaN or Inf encountered")

	// ErrNilLayer indicates a nil *LayerMatrix receiver or operand.
	ErrNilLayer = errors.New("abeles: nil layer matrix")

	// ErrSingular is returned when the boundary formula denominator is zero.
	ErrSingular = errors.New("abeles: singular boundary denominator")

	// ErrUnknownPolarization is returned for a Polarization other than TE/TM.
	ErrUnknownPolarization = errors.New("abeles: unknown polarization")
)

// layerErrorf wraps err with the LayerMatrix method that detected it.
func layerErrorf(method string, err error) error {
	return fmt.Errorf("LayerMatrix.%s: %w", method, err)
}
