// Package abeles implements the Abeles 2x2 transfer-matrix method for thin
// homogeneous dielectric layers.
//
// A LayerMatrix carries two independent 2x2 complex matrices, one per
// polarization channel (TE and TM). A matrix built from physical layer
// parameters describes a single layer; composing matrices describes a stack
// read from the ambient side towards the substrate.
//
// Building blocks:
//   - CosTheta, Beta, P, Q: pure per-layer scalars.
//   - LayerMatrix.Set: layer matrix from (angle, index, wavelengths).
//   - LayerMatrix.Compose: in-place product, receiver as the left operand.
//   - LayerMatrix.Transmittance: boundary formula producing a complex
//     transmittance amplitude for given ambient and substrate indices.
//
// Usage:
//
//	high := abeles.NewLayerMatrix()
//	_ = high.Set(math.Pi/6, 2.4, 632, 632)
//	stack := abeles.NewLayerMatrix()
//	_ = stack.Compose(high)
//	t, err := stack.TransmittanceTM(math.Pi/6, 1.0, 1.457)
//
// Every entry point validates its physical inputs and returns one of the
// sentinel errors from errors.go; nothing panics on user input.
//
// For lossless layers the determinant of each channel equals one. The
// package does not enforce it at runtime; tests do.
//
// Complexity: every operation is O(1) (fixed 2x2 arithmetic).
package abeles
