// Package bragg computes the transmittance of multilayer dielectric mirrors
// with the Abeles transfer-matrix method.
//
// What is in the box?
//
//	A small, dependency-light toolkit organized in layers:
//		• abeles/   — per-layer 2x2 complex transfer matrices (TE and TM),
//		              composition and the boundary transmittance formula
//		• mirror/   — A(HL)^N HG stacks built through a typed state machine
//		• search/   — how many (HL) pairs reach a transmittance threshold
//		• spectrum/ — parallel wavelength sweeps of a fixed stack
//		• chart/    — spectrum charts (gonum/plot)
//		• table/    — CSV export (gota dataframes)
//		• config/   — JSON run configuration for cmd/bragg
//
// Quick ASCII picture of A(HL)^2 HG:
//
//	  air  │ H │ L │ H │ L │ H │ substrate
//	 ─────►│   │   │   │   │   │
//	  θ    first  pair 1  pair 2
//
// Light enters from air at angle θ; every extra (L,H) pair is appended on
// the substrate side and lowers the transmittance inside the stop band.
//
// Errors are sentinel values checked with errors.Is; intensities outside
// [0,1] are reported as data (Result.Anomalous), never as errors.
//
//	go install github.com/katalvlaran/bragg/cmd/bragg@latest
package bragg
