// Command bragg sizes a dielectric mirror and plots its spectrum.
//
// It first counts how many (HL) pairs bring the TM transmittance at the
// design wavelength below the threshold, then sweeps the wavelength range
// with that pair count, reports where the mirror is applicable and exports
// the spectrum as a chart and/or CSV.
//
// Usage:
//
//	bragg [-config run.json] [-pairs N] [-plot spectrum.png] [-csv spectrum.csv] [-workers N] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/bragg/chart"
	"github.com/katalvlaran/bragg/config"
	"github.com/katalvlaran/bragg/internal/logging"
	"github.com/katalvlaran/bragg/mirror"
	"github.com/katalvlaran/bragg/search"
	"github.com/katalvlaran/bragg/spectrum"
	"github.com/katalvlaran/bragg/table"
)

// flags holds command-line overrides; nil/negative means "keep config".
type flags struct {
	config  string
	pairs   int
	plot    *string
	csv     *string
	workers int
	verbose bool
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(flagExitCode(err))
	}
	log := logging.Stderr(f.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, log, f); err != nil {
		log.Error("bragg failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("bragg", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "JSON run configuration (defaults: TiO2/quartz at 30°)")
	fs.IntVar(&f.pairs, "pairs", -1, "fixed number of (HL) pairs; skips the layer-count search when >= 0")
	plot := fs.String("plot", "", "chart output file (png, svg, pdf); overrides config")
	csvOut := fs.String("csv", "", "CSV output file; overrides config")
	fs.IntVar(&f.workers, "workers", -1, "sweep goroutines (0 = all CPUs); overrides config")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "plot":
			f.plot = plot
		case "csv":
			f.csv = csvOut
		}
	})

	return f, nil
}

// flagExitCode maps a parseFlags error to the process status: 0 after -h,
// 2 for a usage error.
func flagExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	return 2
}

// run executes the search, the sweep and the exports, writing the human
// report to out.
func run(ctx context.Context, out io.Writer, log *slog.Logger, f flags) error {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return err
		}
	}
	if f.plot != nil {
		cfg.Output.Plot = *f.plot
	}
	if f.csv != nil {
		cfg.Output.CSV = *f.csv
	}
	if f.workers >= 0 {
		cfg.Spectrum.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m, err := cfg.NewMirror()
	if err != nil {
		return err
	}
	log.Debug("configuration", slog.String("mirror", m.String()))

	pairs := f.pairs
	if pairs < 0 {
		if pairs, err = countPairs(out, log, m, cfg); err != nil {
			return err
		}
	}

	samples, err := spectrum.Sweep(ctx, m,
		spectrum.WithPairs(pairs),
		spectrum.WithReference(cfg.Spectrum.Reference),
		spectrum.WithRange(cfg.Spectrum.Min, cfg.Spectrum.Max),
		spectrum.WithStep(cfg.Spectrum.Step),
		spectrum.WithThreshold(cfg.Search.Threshold),
		spectrum.WithWorkers(cfg.Spectrum.Workers),
		spectrum.WithLogger(log),
	)
	if err != nil {
		return err
	}
	printSummary(out, spectrum.Summarize(samples), cfg.Search.Threshold)

	if cfg.Output.Plot != "" {
		if err = chart.Save(cfg.Output.Plot, samples, chart.WithReference(cfg.Spectrum.Reference)); err != nil {
			return err
		}
		log.Info("chart written", slog.String("path", cfg.Output.Plot))
	}
	if cfg.Output.CSV != "" {
		if err = table.SaveCSV(cfg.Output.CSV, samples); err != nil {
			return err
		}
		log.Info("table written", slog.String("path", cfg.Output.CSV))
	}

	return nil
}

// countPairs runs the layer-count search and prints one line per stack.
// Exceeding the limit is reported but not fatal: the sweep then uses the limit.
func countPairs(out io.Writer, log *slog.Logger, m *mirror.Mirror, cfg config.Config) (int, error) {
	rep, err := search.LayerCount(m,
		search.WithThreshold(cfg.Search.Threshold),
		search.WithLimit(cfg.Search.Limit),
		search.WithLogger(log),
	)
	if err != nil && !errors.Is(err, search.ErrLimitExceeded) {
		return 0, err
	}

	fmt.Fprintln(out, "Dependence of mirror transmittance on its structure for TM-polarized rays:")
	for n, r := range rep.Steps {
		fmt.Fprintf(out, "%.6g - %s\n", r.TM, mirror.Structure(n))
	}
	if rep.Converged {
		fmt.Fprintf(out, "Number of double (HL) layers = %d\n", rep.Pairs)
	} else {
		fmt.Fprintf(out, "Number of double (HL) layers > %d, increase the limit!\n", cfg.Search.Limit)
	}

	return rep.Pairs, nil
}

func printSummary(out io.Writer, s spectrum.Summary, threshold float64) {
	fmt.Fprintf(out, "Spectrum: %d samples, %d with T_TM <= %g", s.Count, s.Applicable, threshold)
	if s.Applicable > 0 {
		fmt.Fprintf(out, " (%.1f..%.1f)", s.BandLow, s.BandHigh)
	}
	fmt.Fprintf(out, ", min T_TM = %.3g at %.1f\n", s.MinTM, s.MinTMAt)
	if s.Anomalous > 0 {
		fmt.Fprintf(out, "%d samples with T > 1 or T < 0, physically impossible!\n", s.Anomalous)
	}
}
