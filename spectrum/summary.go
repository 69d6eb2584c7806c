// SPDX-License-Identifier: MIT

package spectrum

import "math"

// Summary condenses a sweep.
type Summary struct {
	Count      int     // number of samples
	Applicable int     // samples with TM <= threshold
	Anomalous  int     // samples with an intensity outside [0,1]
	BandLow    float64 // smallest applicable wavelength (NaN if none)
	BandHigh   float64 // largest applicable wavelength (NaN if none)
	MinTM      float64 // lowest TM intensity (NaN for no samples)
	MinTMAt    float64 // wavelength of MinTM
}

// Summarize scans samples once.
func Summarize(samples []Sample) Summary {
	s := Summary{
		Count:    len(samples),
		BandLow:  math.NaN(),
		BandHigh: math.NaN(),
		MinTM:    math.NaN(),
		MinTMAt:  math.NaN(),
	}
	for _, x := range samples {
		if x.Anomalous {
			s.Anomalous++
		}
		if x.Applicable {
			s.Applicable++
			if math.IsNaN(s.BandLow) || x.Wavelength < s.BandLow {
				s.BandLow = x.Wavelength
			}
			if math.IsNaN(s.BandHigh) || x.Wavelength > s.BandHigh {
				s.BandHigh = x.Wavelength
			}
		}
		if math.IsNaN(s.MinTM) || x.TM < s.MinTM {
			s.MinTM, s.MinTMAt = x.TM, x.Wavelength
		}
	}

	return s
}

// Columns splits samples into parallel wavelength, TE and TM slices.
func Columns(samples []Sample) (lambda, te, tm []float64) {
	lambda = make([]float64, len(samples))
	te = make([]float64, len(samples))
	tm = make([]float64, len(samples))
	for i, s := range samples {
		lambda[i], te[i], tm[i] = s.Wavelength, s.TE, s.TM
	}

	return lambda, te, tm
}
