// SPDX-License-Identifier: MIT

package mirror

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/bragg/abeles"
)

// Layered holds the per-wavelength layer matrices of a Mirror.
// It is never mutated after SetLayers returns.
type Layered struct {
	mirror    *Mirror
	lambdaRef float64
	lambdaOp  float64
	high      abeles.LayerMatrix
	low       abeles.LayerMatrix
}

// Wavelengths returns the (reference, operating) pair the layers were built for.
func (l *Layered) Wavelengths() (lambdaRef, lambdaOp float64) { return l.lambdaRef, l.lambdaOp }

// Mirror returns the configuration the layers belong to.
func (l *Layered) Mirror() *Mirror { return l.mirror }

// FirstLayer starts a new stack with the single high-index layer (AHG).
// Each call returns an independent Stack.
func (l *Layered) FirstLayer() *Stack {
	s := &Stack{layers: l}
	s.acc.Reset()
	_ = s.acc.Compose(&l.high) // both operands are non-nil; Compose cannot fail

	return s
}

// Stack is the accumulated matrix of A(HL)^N HG for one Layered.
// Only FirstLayer produces a usable Stack; on the zero value NextLayers does
// nothing and Transmittance returns ErrNotStarted.
type Stack struct {
	layers *Layered
	acc    abeles.LayerMatrix
	pairs  int
	last   Result
}

// NextLayers appends one (low, high) pair: acc = acc × L × H.
// Low goes first; swapping the order describes a different stack.
func (s *Stack) NextLayers() {
	if !s.started() {
		return
	}
	_ = s.acc.Compose(&s.layers.low) // operands are never nil here
	_ = s.acc.Compose(&s.layers.high)
	s.pairs++
}

// Pairs returns N, the number of (HL) pairs appended after the first layer.
func (s *Stack) Pairs() int { return s.pairs }

// Matrix returns a copy of the accumulated LayerMatrix.
func (s *Stack) Matrix() abeles.LayerMatrix { return s.acc }

// Layered returns the layer set this stack was started from.
func (s *Stack) Layered() *Layered { return s.layers }

// Transmittance evaluates the current stack and stores the result
// (see Last). It does not change the stack; repeated calls return the
// same Result.
//
// Intensity = |t|² · z(substrate) / z(ambient), z = p (TE) or q (TM).
func (s *Stack) Transmittance() (Result, error) {
	if !s.started() {
		return Result{}, mirrorErrorf(opTransmittance, ErrNotStarted)
	}
	m := s.layers.mirror
	var r Result
	for _, pol := range abeles.Polarizations {
		t, err := s.acc.Transmittance(pol, m.theta, AmbientIndex, m.nGround)
		if err != nil {
			return Result{}, mirrorErrorf(opTransmittance, err)
		}
		a := cmplx.Abs(t)
		tt := a * a * abeles.Admittance(pol, m.theta, m.nGround) / abeles.Admittance(pol, m.theta, AmbientIndex)
		switch pol {
		case abeles.TE:
			r.AmplitudeTE, r.TE = t, tt
		case abeles.TM:
			r.AmplitudeTM, r.TM = t, tt
		}
	}
	s.last = r

	return r, nil
}

func (s *Stack) started() bool { return s.layers != nil && s.layers.mirror != nil }

// Last returns the Result of the most recent Transmittance call
// (the zero Result before the first one).
func (s *Stack) Last() Result { return s.last }

// Structure returns the notation of the current stack (see Structure).
func (s *Stack) Structure() string { return Structure(s.pairs) }

// Structure returns the notation of a stack with n (HL) pairs:
// "AHG" for n=0, "A(HL)^(n)HG" otherwise.
func Structure(n int) string {
	if n == 0 {
		return "AHG"
	}

	return fmt.Sprintf("A(HL)^(%d)HG", n)
}
