package chart_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/bragg/chart"
	"github.com/katalvlaran/bragg/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples() []spectrum.Sample {
	return []spectrum.Sample{
		{Wavelength: 400, TE: 0.9, TM: 0.95},
		{Wavelength: 632, TE: 0.0001, TM: 0.001, Applicable: true},
		{Wavelength: 900, TE: 0.8, TM: 0.7},
	}
}

func TestRender_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.Render(&buf, "png", samples(), chart.WithReference(632)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "PNG signature expected")

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1920, img.Bounds().Dx())
	assert.Equal(t, 1200, img.Bounds().Dy())
}

func TestSave_PNGUsesDPI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.png")
	require.NoError(t, chart.Save(path, samples(), chart.WithDPI(96)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 614, cfg.Width)
	assert.Equal(t, 384, cfg.Height)
}

func TestRender_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.Render(&buf, "SVG", samples(), chart.WithTitle("stop band")))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, chart.Render(&buf, "bmp42", samples()))
}

func TestSave_PDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.pdf")
	require.NoError(t, chart.Save(path, samples(), chart.WithReference(632)))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}

func TestNoSamples(t *testing.T) {
	assert.ErrorIs(t, chart.Save(filepath.Join(t.TempDir(), "x.png"), nil), chart.ErrNoSamples)
	assert.ErrorIs(t, chart.Render(&bytes.Buffer{}, "png", nil), chart.ErrNoSamples)
}

func TestWithSize_Panics(t *testing.T) {
	assert.Panics(t, func() { chart.WithSize(0, 10) })
	assert.Panics(t, func() { chart.WithDPI(0) })
}
