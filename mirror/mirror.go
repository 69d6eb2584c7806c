// SPDX-License-Identifier: MIT

package mirror

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bragg/abeles"
)

// Mirror is the fixed physical configuration of a dielectric mirror:
// incidence angle and the substrate, high-layer and low-layer indices.
type Mirror struct {
	theta   float64 // incidence angle in the ambient medium, radians
	nGround float64 // substrate ("ground") index
	nHigh   float64 // high-index layer
	nLow    float64 // low-index layer
}

// New validates and returns a Mirror.
//
// Preconditions: |theta| < π/2; nGround, nHigh, nLow > 0; nHigh >= nLow;
// all values finite.
// Errors: abeles.ErrAngleOutOfRange, abeles.ErrNonPositiveIndex,
// abeles.ErrNaNInf, ErrIndexOrder (wrapped).
func New(theta, nGround, nHigh, nLow float64) (*Mirror, error) {
	if err := abeles.ValidateAngle(theta); err != nil {
		return nil, mirrorErrorf(opNew, err)
	}
	if err := abeles.ValidateIndex(nGround, nHigh, nLow); err != nil {
		return nil, mirrorErrorf(opNew, err)
	}
	if nHigh < nLow {
		return nil, mirrorErrorf(opNew, fmt.Errorf("high=%g low=%g: %w", nHigh, nLow, ErrIndexOrder))
	}

	return &Mirror{theta: theta, nGround: nGround, nHigh: nHigh, nLow: nLow}, nil
}

// Theta returns the incidence angle in radians.
func (m *Mirror) Theta() float64 { return m.theta }

// Ground returns the substrate index.
func (m *Mirror) Ground() float64 { return m.nGround }

// High returns the high-layer index.
func (m *Mirror) High() float64 { return m.nHigh }

// Low returns the low-layer index.
func (m *Mirror) Low() float64 { return m.nLow }

// String implements fmt.Stringer.
func (m *Mirror) String() string {
	return fmt.Sprintf("Mirror(theta=%.2f°, ground=%g, high=%g, low=%g)",
		m.theta*180/math.Pi, m.nGround, m.nHigh, m.nLow)
}

// SetLayers builds the high- and low-layer matrices for one wavelength pair.
// The returned Layered is read-only; call FirstLayer on it to start a stack.
//
// Errors: abeles.ErrNonPositiveWavelength, abeles.ErrNaNInf (wrapped).
func (m *Mirror) SetLayers(lambdaRef, lambdaOp float64) (*Layered, error) {
	l := &Layered{mirror: m, lambdaRef: lambdaRef, lambdaOp: lambdaOp}
	l.high.Reset()
	l.low.Reset()
	if err := l.high.Set(m.theta, m.nHigh, lambdaRef, lambdaOp); err != nil {
		return nil, mirrorErrorf(opSetLayers, err)
	}
	if err := l.low.Set(m.theta, m.nLow, lambdaRef, lambdaOp); err != nil {
		return nil, mirrorErrorf(opSetLayers, err)
	}

	return l, nil
}

// SetLayersDefault is SetLayers(DefaultWavelength, DefaultWavelength).
func (m *Mirror) SetLayersDefault() (*Layered, error) {
	return m.SetLayers(DefaultWavelength, DefaultWavelength)
}

// Evaluate returns the transmittance of A(HL)^pairs HG at the given
// wavelengths. It is SetLayers, FirstLayer, pairs×NextLayers, Transmittance.
//
// Errors: ErrNegativePairs, plus anything SetLayers/Transmittance return.
// Complexity: O(pairs).
func (m *Mirror) Evaluate(lambdaRef, lambdaOp float64, pairs int) (Result, error) {
	if pairs < 0 {
		return Result{}, mirrorErrorf(opEvaluate, ErrNegativePairs)
	}
	l, err := m.SetLayers(lambdaRef, lambdaOp)
	if err != nil {
		return Result{}, err
	}
	s := l.FirstLayer()
	for i := 0; i < pairs; i++ {
		s.NextLayers()
	}

	return s.Transmittance()
}
