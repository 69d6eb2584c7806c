// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/bragg/internal/logging"
	"github.com/katalvlaran/bragg/mirror"
)

// ErrLimitExceeded is returned when the pair limit is reached while the
// intensity is still above the threshold.
var ErrLimitExceeded = errors.New("search: layer-pair limit exceeded")

// Report describes a finished search.
type Report struct {
	// Pairs is the number of (HL) pairs of the last evaluated stack.
	Pairs int
	// Structure is the notation of the last evaluated stack, e.g. "A(HL)^(8)HG".
	Structure string
	// Steps holds one Result per evaluated stack, Steps[i] for i pairs.
	Steps []mirror.Result
	// Converged is true when the final intensity is at or below the threshold.
	Converged bool
}

// Final returns the Result of the last evaluated stack.
func (r Report) Final() mirror.Result {
	if len(r.Steps) == 0 {
		return mirror.Result{}
	}

	return r.Steps[len(r.Steps)-1]
}

// LayerCount grows A(HL)^N HG from N=0 until the selected intensity is
// <= threshold or N reaches the limit.
//
// Errors: ErrLimitExceeded (with the partial report), errors from
// mirror.SetLayers / Stack.Transmittance.
func LayerCount(m *mirror.Mirror, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	log := logging.Component(o.logger, "search")

	l, err := m.SetLayers(o.lambdaRef, o.lambdaOp)
	if err != nil {
		return Report{}, fmt.Errorf("search: %w", err)
	}
	s := l.FirstLayer()

	var rep Report
	for {
		r, err := s.Transmittance()
		if err != nil {
			return rep, fmt.Errorf("search: %w", err)
		}
		rep.Steps = append(rep.Steps, r)
		rep.Pairs, rep.Structure = s.Pairs(), s.Structure()
		log.Info("stack evaluated",
			slog.String("structure", rep.Structure),
			slog.String("polarization", o.pol.String()),
			slog.Float64("intensity", r.Intensity(o.pol)),
		)

		if r.Intensity(o.pol) <= o.threshold {
			rep.Converged = true

			return rep, nil
		}
		if s.Pairs() >= o.limit {
			log.Warn("pair limit reached",
				slog.Int("limit", o.limit),
				slog.Float64("threshold", o.threshold),
			)

			return rep, fmt.Errorf("pairs > %d: %w", o.limit, ErrLimitExceeded)
		}
		s.NextLayers()
	}
}
