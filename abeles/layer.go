// SPDX-License-Identifier: MIT

// Package abeles - LayerMatrix storage & operations.
//
// Purpose:
//   - Hold the TE and TM transfer matrices of one layer, or of a product of
//     layers, as two independent Matrix2 values.
//   - Mutate in place: Set overwrites from physical parameters, Reset returns
//     to identity, Compose right-multiplies by another LayerMatrix.
//   - Convert an accumulated matrix into a transmittance amplitude with the
//     Abeles boundary formula.
//
// Complexity quicksheet:
//   - NewLayerMatrix/Reset/Set/Compose/Transmittance: O(1).

package abeles

import (
	"fmt"
	"math"
)

// method tags used in error wrappers
const (
	ctxSet           = "Set"
	ctxCompose       = "Compose"
	ctxTransmittance = "Transmittance"
)

// LayerMatrix is the Abeles matrix pair (TE, TM) of a layer or a stack.
//
// The zero value holds two zero matrices and is not a usable stack seed;
// obtain instances through NewLayerMatrix or call Reset first.
// A LayerMatrix is not safe for concurrent mutation.
type LayerMatrix struct {
	te Matrix2 // transverse-electric channel
	tm Matrix2 // transverse-magnetic channel
}

// NewLayerMatrix returns a LayerMatrix in the identity state.
func NewLayerMatrix() *LayerMatrix {
	return &LayerMatrix{te: Identity(), tm: Identity()}
}

// Set overwrites both channels with the matrix of a homogeneous layer of
// index n seen at incidence angle theta, for the given reference and
// operating wavelengths:
//
//	TE: [[cos β, -i·sin β / p], [-i·sin β · p, cos β]]
//	TM: [[cos β, -i·sin β / q], [-i·sin β · q, cos β]]
//
// Errors: ErrAngleOutOfRange, ErrNonPositiveIndex, ErrNonPositiveWavelength,
// ErrNaNInf (wrapped); on error the receiver is left untouched.
func (m *LayerMatrix) Set(theta, n, lambdaRef, lambdaOp float64) error {
	if m == nil {
		return layerErrorf(ctxSet, ErrNilLayer)
	}
	if err := ValidateAngle(theta); err != nil {
		return layerErrorf(ctxSet, err)
	}
	if err := ValidateIndex(n); err != nil {
		return layerErrorf(ctxSet, err)
	}
	if err := ValidateWavelength(lambdaRef, lambdaOp); err != nil {
		return layerErrorf(ctxSet, err)
	}

	beta := Beta(theta, n, lambdaRef, lambdaOp)
	c, s := math.Cos(beta), math.Sin(beta)
	m.te = layerMatrix2(c, s, P(theta, n))
	m.tm = layerMatrix2(c, s, Q(theta, n))

	return nil
}

// layerMatrix2 builds [[c, -i·s/z], [-i·s·z, c]].
func layerMatrix2(c, s, z float64) Matrix2 {
	return Matrix2{
		complex(c, 0), complex(0, -s/z),
		complex(0, -s*z), complex(c, 0),
	}
}

// Reset sets both channels to the identity.
func (m *LayerMatrix) Reset() {
	m.te = Identity()
	m.tm = Identity()
}

// Compose replaces the receiver with receiver × other, per channel.
// The receiver is the left (outer, ambient-side) operand, so successive
// Compose calls append layers towards the substrate.
//
// Errors: ErrNilLayer when either operand is nil.
func (m *LayerMatrix) Compose(other *LayerMatrix) error {
	if m == nil || other == nil {
		return layerErrorf(ctxCompose, ErrNilLayer)
	}
	m.te = m.te.Mul(other.te)
	m.tm = m.tm.Mul(other.tm)

	return nil
}

// TE returns a copy of the transverse-electric matrix.
func (m *LayerMatrix) TE() Matrix2 { return m.te }

// TM returns a copy of the transverse-magnetic matrix.
func (m *LayerMatrix) TM() Matrix2 { return m.tm }

// Of returns a copy of the matrix for pol. Unknown values yield the zero matrix.
func (m *LayerMatrix) Of(pol Polarization) Matrix2 {
	switch pol {
	case TE:
		return m.te
	case TM:
		return m.tm
	default:
		return Matrix2{}
	}
}

// Det returns the determinant of the pol channel.
func (m *LayerMatrix) Det(pol Polarization) complex128 { return m.Of(pol).Det() }

// Transmittance applies the Abeles boundary formula to the pol channel:
//
//	t = 2·z_a / (M00·z_a + M11·z_s + M01·z_s·z_a + M10)
//
// where z is P (TE) or Q (TM) evaluated at theta for the ambient (z_a) and
// substrate (z_s) indices.
//
// Errors: ErrUnknownPolarization, ErrAngleOutOfRange, ErrNonPositiveIndex,
// ErrNaNInf, ErrSingular (wrapped).
func (m *LayerMatrix) Transmittance(pol Polarization, theta, nAmbient, nSubstrate float64) (complex128, error) {
	if m == nil {
		return 0, layerErrorf(ctxTransmittance, ErrNilLayer)
	}
	if !pol.valid() {
		return 0, layerErrorf(ctxTransmittance, fmt.Errorf("%d: %w", int(pol), ErrUnknownPolarization))
	}
	if err := validateBoundary(theta, nAmbient, nSubstrate); err != nil {
		return 0, layerErrorf(ctxTransmittance, err)
	}

	mm := m.Of(pol)
	za := complex(Admittance(pol, theta, nAmbient), 0)
	zs := complex(Admittance(pol, theta, nSubstrate), 0)
	den := mm[0]*za + mm[3]*zs + mm[1]*zs*za + mm[2]
	if den == 0 {
		return 0, layerErrorf(ctxTransmittance, ErrSingular)
	}

	return 2 * za / den, nil
}

// TransmittanceTE is Transmittance(TE, ...).
func (m *LayerMatrix) TransmittanceTE(theta, nAmbient, nSubstrate float64) (complex128, error) {
	return m.Transmittance(TE, theta, nAmbient, nSubstrate)
}

// TransmittanceTM is Transmittance(TM, ...).
func (m *LayerMatrix) TransmittanceTM(theta, nAmbient, nSubstrate float64) (complex128, error) {
	return m.Transmittance(TM, theta, nAmbient, nSubstrate)
}

// String implements fmt.Stringer for debugging.
func (m *LayerMatrix) String() string {
	return fmt.Sprintf("TE%v TM%v", m.te, m.tm)
}
