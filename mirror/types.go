// SPDX-License-Identifier: MIT

package mirror

import "github.com/katalvlaran/bragg/abeles"

// AmbientIndex is the refractive index of the incidence medium (air).
const AmbientIndex = 1.0

// DefaultWavelength is the reference/operating wavelength used by
// SetLayersDefault. Equal wavelengths make every layer a quarter wave.
const DefaultWavelength = 1.0

// Result is one transmittance evaluation of a stack.
type Result struct {
	AmplitudeTE complex128 // complex transmittance amplitude, TE
	AmplitudeTM complex128 // complex transmittance amplitude, TM
	TE          float64    // transmittance intensity, TE
	TM          float64    // transmittance intensity, TM
}

// Amplitude returns the amplitude for pol (0 for unknown values).
func (r Result) Amplitude(pol abeles.Polarization) complex128 {
	switch pol {
	case abeles.TE:
		return r.AmplitudeTE
	case abeles.TM:
		return r.AmplitudeTM
	default:
		return 0
	}
}

// Intensity returns the intensity for pol (0 for unknown values).
func (r Result) Intensity(pol abeles.Polarization) float64 {
	switch pol {
	case abeles.TE:
		return r.TE
	case abeles.TM:
		return r.TM
	default:
		return 0
	}
}

// Anomalous reports whether either intensity lies outside [0,1], which a
// lossless stack cannot produce physically.
func (r Result) Anomalous() bool {
	return r.TE < 0 || r.TE > 1 || r.TM < 0 || r.TM > 1
}
