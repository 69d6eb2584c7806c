// Package spectrum evaluates a mirror with a fixed number of (HL) pairs over
// an evenly spaced wavelength grid.
//
// Every wavelength is independent: each worker builds its own layer set and
// stack from the shared, immutable *mirror.Mirror, so the sweep runs in
// parallel without locks. Results come back in grid order.
//
//	samples, err := spectrum.Sweep(ctx, m,
//		spectrum.WithPairs(8),
//		spectrum.WithRange(400, 900),
//		spectrum.WithStep(10),
//	)
//
// Samples with TM intensity at or below the threshold are marked Applicable;
// samples with an intensity outside [0,1] are marked Anomalous and logged at
// Warn level instead of failing the sweep.
package spectrum
