// Package table exports sweep results as tabular data using gota dataframes.
//
// Columns: wavelength, te, tm, applicable, anomalous. Frame keeps the
// intensities as Float columns; the CSV writer renders them with the shortest
// exact decimal representation so that deep stop-band values (1e-5 and below)
// survive the round trip.
package table

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/katalvlaran/bragg/spectrum"
)

// ErrNoSamples is returned when there is nothing to export.
var ErrNoSamples = errors.New("table: no samples")

// Column names.
const (
	ColWavelength = "wavelength"
	ColTE         = "te"
	ColTM         = "tm"
	ColApplicable = "applicable"
	ColAnomalous  = "anomalous"
)

// Frame converts samples into a dataframe, one row per sample.
func Frame(samples []spectrum.Sample) (dataframe.DataFrame, error) {
	if len(samples) == 0 {
		return dataframe.DataFrame{}, ErrNoSamples
	}
	n := len(samples)
	lambda := make([]float64, n)
	te := make([]float64, n)
	tm := make([]float64, n)
	ok := make([]bool, n)
	bad := make([]bool, n)
	for i, s := range samples {
		lambda[i] = s.Wavelength
		te[i] = s.TE
		tm[i] = s.TM
		ok[i] = s.Applicable
		bad[i] = s.Anomalous
	}

	df := dataframe.New(
		series.New(lambda, series.Float, ColWavelength),
		series.New(te, series.Float, ColTE),
		series.New(tm, series.Float, ColTM),
		series.New(ok, series.Bool, ColApplicable),
		series.New(bad, series.Bool, ColAnomalous),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("table: %w", df.Err)
	}

	return df, nil
}

// Applicable keeps only the rows whose TM intensity met the threshold.
func Applicable(df dataframe.DataFrame) dataframe.DataFrame {
	return df.Filter(dataframe.F{
		Colname:    ColApplicable,
		Comparator: series.Eq,
		Comparando: true,
	})
}

// WriteCSV writes samples as CSV with a header row.
func WriteCSV(w io.Writer, samples []spectrum.Sample) error {
	df, err := Frame(samples)
	if err != nil {
		return err
	}
	df = exact(df, ColTE, ColTM)
	if df.Err != nil {
		return fmt.Errorf("table: %w", df.Err)
	}
	if err = df.WriteCSV(w); err != nil {
		return fmt.Errorf("table: write csv: %w", err)
	}

	return nil
}

// exact replaces the named Float columns with their shortest exact decimal
// text; gota prints floats with six fixed decimals.
func exact(df dataframe.DataFrame, cols ...string) dataframe.DataFrame {
	for _, name := range cols {
		vals := df.Col(name).Float()
		text := make([]string, len(vals))
		for i, v := range vals {
			text[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		df = df.Mutate(series.New(text, series.String, name))
	}

	return df
}

// SaveCSV writes samples to the file at path, creating or truncating it.
func SaveCSV(path string, samples []spectrum.Sample) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("table: %w", cerr)
		}
	}()

	return WriteCSV(f, samples)
}
