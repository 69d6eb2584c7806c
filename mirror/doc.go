// Package mirror models a dielectric Bragg mirror: alternating high/low
// refractive-index layers on a substrate, seen from air.
//
// The build protocol is a typed state machine, so illegal call orders do not
// compile instead of failing at runtime:
//
//	m, _ := mirror.New(theta, nGround, nHigh, nLow)   // CONSTRUCTED
//	l, _ := m.SetLayers(632, 540)                     // LAYERED
//	s := l.FirstLayer()                               // STACKED, AHG
//	s.NextLayers()                                    // A(HL)^1 HG
//	r, _ := s.Transmittance()                         // any STACKED state
//
// Only values returned by New, SetLayers and FirstLayer are usable. A zero
// Stack (or one started from a zero Layered) ignores NextLayers and reports
// ErrNotStarted from Transmittance.
//
// A Mirror is immutable after New and may be shared between goroutines.
// A Layered is read-only after SetLayers and may be shared as well; each
// FirstLayer call returns an independent Stack. A Stack is single-owner and
// must not be mutated concurrently.
//
// Intensities outside [0,1] are returned as computed and flagged by
// Result.Anomalous; they are never turned into errors.
package mirror
