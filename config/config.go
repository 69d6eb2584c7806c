// Package config loads the JSON run configuration of the bragg CLI.
//
// Angles are given in degrees (friendlier than radians); every other field
// uses the units of the computation (refractive indices are dimensionless,
// wavelengths share one unit, conventionally nm). Missing fields take the
// documented defaults, which reproduce the reference TiO2-on-quartz run.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/bragg/abeles"
	"github.com/katalvlaran/bragg/mirror"
	"github.com/katalvlaran/bragg/spectrum"
)

// ErrInvalid is returned (wrapped with the offending field) by Validate.
var ErrInvalid = errors.New("config: invalid value")

// MirrorCfg describes the physical stack.
type MirrorCfg struct {
	AngleDeg float64 `json:"angleDeg"`
	Ground   float64 `json:"ground"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
}

// SearchCfg drives the layer-count search.
type SearchCfg struct {
	Threshold float64 `json:"threshold"`
	Limit     int     `json:"limit"`
}

// SpectrumCfg drives the wavelength sweep.
type SpectrumCfg struct {
	Reference float64 `json:"reference"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Step      float64 `json:"step"`
	Workers   int     `json:"workers,omitempty"`
}

// OutputCfg names the export files; empty disables the export.
type OutputCfg struct {
	Plot string `json:"plot,omitempty"`
	CSV  string `json:"csv,omitempty"`
}

// Config is the whole run configuration.
type Config struct {
	Mirror   MirrorCfg   `json:"mirror"`
	Search   SearchCfg   `json:"search"`
	Spectrum SpectrumCfg `json:"spectrum"`
	Output   OutputCfg   `json:"output"`
}

// Default returns the reference configuration: 30° incidence, quartz
// substrate, TiO2/quartz pairs, threshold 0.002 within 10 pairs, sweep
// 400..900 nm every 0.1 nm around 632 nm, plot to spectrum.png.
func Default() Config {
	return Config{
		Mirror:   MirrorCfg{AngleDeg: 30, Ground: 1.457, High: 2.4, Low: 1.457},
		Search:   SearchCfg{Threshold: 0.002, Limit: 10},
		Spectrum: SpectrumCfg{Reference: 632, Min: 400, Max: 900, Step: 0.1},
		Output:   OutputCfg{Plot: "spectrum.png"},
	}
}

// Load reads path over Default(); fields absent from the file keep their
// default values. The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes data over Default() and validates the result.
// Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Theta returns the incidence angle in radians.
func (c Config) Theta() float64 { return c.Mirror.AngleDeg * math.Pi / 180 }

// NewMirror builds the configured mirror.
func (c Config) NewMirror() (*mirror.Mirror, error) {
	return mirror.New(c.Theta(), c.Mirror.Ground, c.Mirror.High, c.Mirror.Low)
}

// Validate checks every field; the first violation is returned wrapped
// around ErrInvalid (and the physical sentinel from abeles/mirror when
// one applies).
func (c Config) Validate() error {
	if _, err := c.NewMirror(); err != nil {
		return invalid("mirror", err)
	}
	if math.IsNaN(c.Search.Threshold) || math.IsInf(c.Search.Threshold, 0) || c.Search.Threshold < 0 {
		return invalid("search.threshold", fmt.Errorf("%g", c.Search.Threshold))
	}
	if c.Search.Limit < 0 {
		return invalid("search.limit", fmt.Errorf("%d", c.Search.Limit))
	}
	if err := abeles.ValidateWavelength(c.Spectrum.Reference, c.Spectrum.Min, c.Spectrum.Max); err != nil {
		return invalid("spectrum", err)
	}
	if c.Spectrum.Min > c.Spectrum.Max {
		return invalid("spectrum.min", fmt.Errorf("%g > max %g", c.Spectrum.Min, c.Spectrum.Max))
	}
	if _, err := spectrum.GridLen(c.Spectrum.Min, c.Spectrum.Max, c.Spectrum.Step); err != nil {
		return invalid("spectrum.step", err)
	}
	if c.Spectrum.Workers < 0 {
		return invalid("spectrum.workers", fmt.Errorf("%d", c.Spectrum.Workers))
	}

	return nil
}

// invalid wraps cause and ErrInvalid under the field name.
func invalid(field string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalid, field, cause)
}
