// SPDX-License-Identifier: MIT

package spectrum

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/bragg/abeles"
	"github.com/katalvlaran/bragg/internal/logging"
	"github.com/katalvlaran/bragg/mirror"
)

// Sample is the evaluation of the stack at one wavelength.
type Sample struct {
	Wavelength float64 `json:"wavelength"`
	TE         float64 `json:"te"`
	TM         float64 `json:"tm"`
	Applicable bool    `json:"applicable"` // TM <= threshold
	Anomalous  bool    `json:"anomalous"`  // an intensity outside [0,1]
}

// Sweep evaluates A(HL)^pairs HG at every grid wavelength, in parallel.
// The returned slice is in grid order.
//
// Errors: ErrBadRange, ErrBadStep, abeles.ErrNonPositiveWavelength for the
// reference, the first evaluation error, or ctx.Err() on cancellation.
// Complexity: O(len(grid)·pairs) work over min(workers, len(grid)) goroutines.
func Sweep(ctx context.Context, m *mirror.Mirror, opts ...Option) ([]Sample, error) {
	o := gatherOptions(opts...)
	grid, err := Grid(o.min, o.max, o.step)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	if err = abeles.ValidateWavelength(o.reference); err != nil {
		return nil, fmt.Errorf("spectrum: reference %g: %w", o.reference, err)
	}
	log := logging.Component(o.logger, "spectrum")

	workers := o.workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(grid) {
		workers = len(grid)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]Sample, len(grid))
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		done     atomic.Int64
	)
	every := int64(len(grid)/10) + 1 // progress roughly every 10%

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			// strided partition: worker w owns indices w, w+workers, ...
			for i := w; i < len(grid); i += workers {
				if ctx.Err() != nil {
					return
				}
				s, err := evaluate(m, o, grid[i])
				if err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})

					return
				}
				out[i] = s
				report(log, s, o.threshold)
				if n := done.Add(1); n%every == 0 {
					log.Debug("progress", slog.Int64("done", n), slog.Int("total", len(grid)))
				}
			}
		}(w)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("spectrum: %w", firstErr)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// evaluate builds and evaluates one independent stack.
func evaluate(m *mirror.Mirror, o Options, lambda float64) (Sample, error) {
	r, err := m.Evaluate(o.reference, lambda, o.pairs)
	if err != nil {
		return Sample{}, fmt.Errorf("lambda=%g: %w", lambda, err)
	}

	return Sample{
		Wavelength: lambda,
		TE:         r.TE,
		TM:         r.TM,
		Applicable: r.TM <= o.threshold,
		Anomalous:  r.Anomalous(),
	}, nil
}

// report logs samples the caller should know about.
func report(log *slog.Logger, s Sample, threshold float64) {
	switch {
	case s.Anomalous:
		log.Warn("physically impossible transmittance",
			slog.Float64("lambda", s.Wavelength),
			slog.Float64("te", s.TE),
			slog.Float64("tm", s.TM),
		)
	case s.Applicable:
		log.Info("mirror applicable",
			slog.Float64("lambda", s.Wavelength),
			slog.Float64("tm", s.TM),
			slog.Float64("threshold", threshold),
		)
	}
}
