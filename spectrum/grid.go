// SPDX-License-Identifier: MIT

package spectrum

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrBadRange is returned for a non-finite, non-positive or reversed range.
	ErrBadRange = errors.New("spectrum: wavelength range must satisfy 0 < min <= max")

	// ErrBadStep is returned for a non-finite or non-positive step, or one so
	// small that the grid would exceed MaxGridPoints.
	ErrBadStep = errors.New("spectrum: step must be > 0")
)

// MaxGridPoints caps the number of wavelengths in one sweep.
const MaxGridPoints = 1 << 24

// spanTol absorbs the rounding of (max-min)/step so that an endpoint which is
// a whole number of steps away is not dropped.
const spanTol = 1e-9

// Grid returns min, min+step, ... up to and including max when max-min is a
// whole number of steps (otherwise the last point is the largest one below
// max). Points are computed by linear interpolation, not by accumulating
// step, so the grid carries no drift.
//
// Errors: ErrBadRange, ErrBadStep (wrapped with the offending values).
func Grid(min, max, step float64) ([]float64, error) {
	n, err := GridLen(min, max, step)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return []float64{min}, nil
	}
	hi := min + step*float64(n-1)
	if math.Abs(hi-max) <= step*spanTol*float64(n) {
		hi = max
	}

	return floats.Span(make([]float64, n), min, hi), nil
}

// GridLen validates the arguments of Grid and returns the number of points
// it would produce, without allocating them.
func GridLen(min, max, step float64) (int, error) {
	if !finite(min) || !finite(max) || min <= 0 || min > max {
		return 0, fmt.Errorf("Grid(%g, %g): %w", min, max, ErrBadRange)
	}
	if !finite(step) || step <= 0 {
		return 0, fmt.Errorf("Grid step %g: %w", step, ErrBadStep)
	}
	span := math.Floor((max-min)/step + spanTol)
	if !finite(span) || span+1 > MaxGridPoints {
		return 0, fmt.Errorf("Grid step %g over [%g, %g] exceeds %d points: %w", step, min, max, MaxGridPoints, ErrBadStep)
	}

	return int(span) + 1, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
