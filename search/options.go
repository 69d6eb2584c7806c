// SPDX-License-Identifier: MIT

// Package search: functional options with documented defaults.
// WithX constructors panic on nonsensical values (programmer error);
// runtime failures are returned as errors by LayerCount.
package search

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/bragg/abeles"
	"github.com/katalvlaran/bragg/mirror"
)

// Defaults (single source of truth).
const (
	// DefaultThreshold is the target transmittance intensity.
	DefaultThreshold = 0.002

	// DefaultLimit is the maximum number of (HL) pairs tried.
	DefaultLimit = 10

	// DefaultPolarization is the channel compared with the threshold.
	DefaultPolarization = abeles.TM
)

const (
	panicThresholdInvalid    = "search: WithThreshold: threshold must be finite and >= 0"
	panicLimitInvalid        = "search: WithLimit: limit must be >= 0"
	panicPolarizationInvalid = "search: WithPolarization: unknown polarization"
	panicWavelengthInvalid   = "search: WithWavelengths: wavelengths must be finite and > 0"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration of a search.
type Options struct {
	threshold float64
	limit     int
	pol       abeles.Polarization
	lambdaRef float64
	lambdaOp  float64
	logger    *slog.Logger
}

// WithThreshold sets the target intensity.
func WithThreshold(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = v }
}

// WithLimit sets the maximum pair count.
func WithLimit(n int) Option {
	if n < 0 {
		panic(panicLimitInvalid)
	}

	return func(o *Options) { o.limit = n }
}

// WithPolarization selects the channel compared with the threshold.
func WithPolarization(p abeles.Polarization) Option {
	if p != abeles.TE && p != abeles.TM {
		panic(panicPolarizationInvalid)
	}

	return func(o *Options) { o.pol = p }
}

// WithWavelengths sets the reference and operating wavelengths.
// The default evaluates the stack at its design wavelength.
func WithWavelengths(lambdaRef, lambdaOp float64) Option {
	if abeles.ValidateWavelength(lambdaRef, lambdaOp) != nil {
		panic(panicWavelengthInvalid)
	}

	return func(o *Options) { o.lambdaRef, o.lambdaOp = lambdaRef, lambdaOp }
}

// WithLogger makes LayerCount log every evaluated stack at Info level.
// A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		threshold: DefaultThreshold,
		limit:     DefaultLimit,
		pol:       DefaultPolarization,
		lambdaRef: mirror.DefaultWavelength,
		lambdaOp:  mirror.DefaultWavelength,
	}
}

// gatherOptions applies setters on top of the defaults (last writer wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
