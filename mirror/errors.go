// SPDX-License-Identifier: MIT

package mirror

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOrder is returned by New when the high-layer index is below
	// the low-layer index.
	ErrIndexOrder = errors.New("mirror: high-layer index must be >= low-layer index")

	// ErrNegativePairs is returned by Evaluate for a negative pair count.
	ErrNegativePairs = errors.New("mirror: pair count must be >= 0")

	// ErrNotStarted is returned by Transmittance on a Stack that did not
	// come from FirstLayer of a Layered built by SetLayers.
	ErrNotStarted = errors.New("mirror: stack not started by FirstLayer")
)

// method tags used in error wrappers
const (
	opNew           = "New"
	opSetLayers     = "SetLayers"
	opTransmittance = "Transmittance"
	opEvaluate      = "Evaluate"
)

// mirrorErrorf wraps err with the Mirror operation that surfaced it.
func mirrorErrorf(op string, err error) error {
	return fmt.Errorf("Mirror.%s: %w", op, err)
}
