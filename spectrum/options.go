// SPDX-License-Identifier: MIT

package spectrum

import (
	"log/slog"
	"math"
)

// Defaults (single source of truth), matching the reference TiO2/quartz run.
const (
	DefaultMin       = 400.0 // nm
	DefaultMax       = 900.0 // nm
	DefaultStep      = 0.1   // nm
	DefaultReference = 632.0 // nm, design wavelength
	DefaultThreshold = 0.002
	DefaultPairs     = 0
	DefaultWorkers   = 0 // 0 ⇒ runtime.NumCPU()
)

const (
	panicPairsInvalid     = "spectrum: WithPairs: pairs must be >= 0"
	panicWorkersInvalid   = "spectrum: WithWorkers: workers must be >= 0"
	panicThresholdInvalid = "spectrum: WithThreshold: threshold must be finite and >= 0"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved sweep configuration. Range, step and reference
// are validated by Sweep (they usually come from user configuration);
// the remaining setters panic on nonsensical values.
type Options struct {
	min, max  float64
	step      float64
	reference float64
	threshold float64
	pairs     int
	workers   int
	logger    *slog.Logger
}

// WithRange sets the inclusive wavelength range [min, max].
func WithRange(min, max float64) Option {
	return func(o *Options) { o.min, o.max = min, max }
}

// WithStep sets the grid spacing.
func WithStep(step float64) Option {
	return func(o *Options) { o.step = step }
}

// WithReference sets the design (reference) wavelength of the layers.
func WithReference(lambda float64) Option {
	return func(o *Options) { o.reference = lambda }
}

// WithPairs sets the number of (HL) pairs after the first high layer.
func WithPairs(n int) Option {
	if n < 0 {
		panic(panicPairsInvalid)
	}

	return func(o *Options) { o.pairs = n }
}

// WithThreshold sets the TM intensity at or below which a sample is applicable.
func WithThreshold(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = v }
}

// WithWorkers bounds the number of goroutines; 0 means runtime.NumCPU().
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger enables per-sample diagnostics (applicable: Info, anomalous:
// Warn, progress: Debug).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		min:       DefaultMin,
		max:       DefaultMax,
		step:      DefaultStep,
		reference: DefaultReference,
		threshold: DefaultThreshold,
		pairs:     DefaultPairs,
		workers:   DefaultWorkers,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
