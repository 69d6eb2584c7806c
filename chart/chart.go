// Package chart renders a transmittance spectrum with gonum/plot.
//
// The figure shows T_TM (solid blue), T_TE (dotted red) and a vertical green
// marker at the design wavelength over λ ∈ [first, last sample], T ∈ [0, 1].
// The output format follows the file extension (or the explicit format for
// Render): png, jpg, svg, pdf, eps, tif.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/bragg/spectrum"
)

// ErrNoSamples is returned when there is nothing to draw.
var ErrNoSamples = errors.New("chart: no samples")

// Defaults: 1920x1200 px at 300 dpi. The DPI applies to raster formats only.
const (
	DefaultDPI    = 300
	DefaultWidth  = 1920 * vg.Inch / DefaultDPI
	DefaultHeight = 1200 * vg.Inch / DefaultDPI
	DefaultTitle  = "Transmittance of wavelength"
)

var (
	colorTM  = color.RGBA{B: 255, A: 255}
	colorTE  = color.RGBA{R: 255, A: 255}
	colorRef = color.RGBA{G: 128, A: 255}
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved chart configuration.
type Options struct {
	reference     float64 // NaN ⇒ no marker
	width, height vg.Length
	dpi           int
	title         string
}

// WithReference draws the design-wavelength marker at lambda.
func WithReference(lambda float64) Option {
	return func(o *Options) { o.reference = lambda }
}

// WithSize sets the canvas size.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic("chart: WithSize: width and height must be > 0")
	}

	return func(o *Options) { o.width, o.height = w, h }
}

// WithDPI sets the resolution of raster output (png, jpg, tif).
func WithDPI(dpi int) Option {
	if dpi <= 0 {
		panic("chart: WithDPI: dpi must be > 0")
	}

	return func(o *Options) { o.dpi = dpi }
}

// WithTitle replaces DefaultTitle.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		reference: math.NaN(),
		width:     DefaultWidth,
		height:    DefaultHeight,
		dpi:       DefaultDPI,
		title:     DefaultTitle,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Save renders samples into path; the extension selects the format.
func Save(path string, samples []spectrum.Sample, opts ...Option) (err error) {
	o := gatherOptions(opts...)
	p, err := build(samples, o)
	if err != nil {
		return err
	}
	wt, err := writerTo(p, o, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("chart: save %s: %w", filepath.Base(path), cerr)
		}
	}()
	if _, err = wt.WriteTo(f); err != nil {
		return fmt.Errorf("chart: save %s: %w", filepath.Base(path), err)
	}

	return nil
}

// Render writes samples to w in the given format ("png", "svg", ...).
func Render(w io.Writer, format string, samples []spectrum.Sample, opts ...Option) error {
	o := gatherOptions(opts...)
	p, err := build(samples, o)
	if err != nil {
		return err
	}
	wt, err := writerTo(p, o, format)
	if err != nil {
		return err
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write %s: %w", format, err)
	}

	return nil
}

// writerTo draws p for the given format. Raster formats are drawn on a
// vgimg canvas at o.dpi; vector formats go through plot's own writers.
func writerTo(p *plot.Plot, o Options, format string) (io.WriterTo, error) {
	format = strings.ToLower(format)
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(o.width, o.height), vgimg.UseDPI(o.dpi))
		p.Draw(draw.New(c))
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: c}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: c}, nil
		default:
			return vgimg.TiffCanvas{Canvas: c}, nil
		}
	}

	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	return wt, nil
}

// build assembles the plot.
func build(samples []spectrum.Sample, o Options) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	tmXY := make(plotter.XYs, len(samples))
	teXY := make(plotter.XYs, len(samples))
	for i, s := range samples {
		tmXY[i].X, tmXY[i].Y = s.Wavelength, s.TM
		teXY[i].X, teXY[i].Y = s.Wavelength, s.TE
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "λ, nm"
	p.Y.Label.Text = "T"
	p.X.Min, p.X.Max = samples[0].Wavelength, samples[len(samples)-1].Wavelength
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	tm, err := plotter.NewLine(tmXY)
	if err != nil {
		return nil, fmt.Errorf("chart: TM line: %w", err)
	}
	tm.LineStyle.Width = vg.Points(1)
	tm.LineStyle.Color = colorTM

	te, err := plotter.NewLine(teXY)
	if err != nil {
		return nil, fmt.Errorf("chart: TE line: %w", err)
	}
	te.LineStyle.Width = vg.Points(1)
	te.LineStyle.Color = colorTE
	te.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}

	p.Add(tm, te)
	p.Legend.Add("T_TM", tm)
	p.Legend.Add("T_TE", te)

	if !math.IsNaN(o.reference) {
		ref, err := plotter.NewLine(plotter.XYs{{X: o.reference, Y: 0}, {X: o.reference, Y: 1}})
		if err != nil {
			return nil, fmt.Errorf("chart: reference line: %w", err)
		}
		ref.LineStyle.Width = vg.Points(1)
		ref.LineStyle.Color = colorRef
		p.Add(ref)
		p.Legend.Add(fmt.Sprintf("λ=%g nm", o.reference), ref)
	}
	p.Legend.Top = true

	return p, nil
}
