package mirror_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bragg/abeles"
	"github.com/katalvlaran/bragg/mirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	nGround   = 1.457 // quartz
	nHigh     = 2.4   // TiO2
	nLow      = 1.457 // quartz
	lambdaRef = 632.0
	tol       = 1e-3
)

// quartzTiO2 returns the reference mirror used throughout the tests.
func quartzTiO2(t *testing.T) *mirror.Mirror {
	t.Helper()
	m, err := mirror.New(math.Pi/6, nGround, nHigh, nLow)
	require.NoError(t, err)

	return m
}

// grow builds A(HL)^pairs HG from l.
func grow(l *mirror.Layered, pairs int) *mirror.Stack {
	s := l.FirstLayer()
	for i := 0; i < pairs; i++ {
		s.NextLayers()
	}

	return s
}

func TestNew_Preconditions(t *testing.T) {
	cases := []struct {
		name                   string
		theta, ground, hi, low float64
		want                   error
	}{
		{"angle too large", math.Pi / 2, 1.5, 2.4, 1.5, abeles.ErrAngleOutOfRange},
		{"zero substrate", 0, 0, 2.4, 1.5, abeles.ErrNonPositiveIndex},
		{"zero low", 0, 1.5, 2.4, 0, abeles.ErrNonPositiveIndex},
		{"negative high", 0, 1.5, -2.4, -3, abeles.ErrNonPositiveIndex},
		{"high below low", 0, 1.5, 1.4, 1.5, mirror.ErrIndexOrder},
		{"NaN substrate", 0, math.NaN(), 2.4, 1.5, abeles.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mirror.New(tc.theta, tc.ground, tc.hi, tc.low)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

func TestNew_EqualIndicesAllowed(t *testing.T) {
	m, err := mirror.New(0, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.High())
	assert.Equal(t, 1.0, m.Low())
	assert.Equal(t, 1.0, m.Ground())
	assert.Equal(t, 0.0, m.Theta())
}

func TestSetLayers_BadWavelength(t *testing.T) {
	m := quartzTiO2(t)
	_, err := m.SetLayers(lambdaRef, 0)
	require.ErrorIs(t, err, abeles.ErrNonPositiveWavelength)
	_, err = m.SetLayers(-1, lambdaRef)
	require.ErrorIs(t, err, abeles.ErrNonPositiveWavelength)
}

// TestVoidStack: with every index equal to air there is no interface, so the
// stack is fully transparent whatever its length.
func TestVoidStack(t *testing.T) {
	m, err := mirror.New(0, 1, 1, 1)
	require.NoError(t, err)
	l, err := m.SetLayersDefault()
	require.NoError(t, err)

	r, err := grow(l, 10).Transmittance()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.TE, tol, "air should be transparent (TE)")
	assert.InDelta(t, 1.0, r.TM, tol, "air should be transparent (TM)")
}

func TestSpectrum_IntensitiesInsideUnitInterval(t *testing.T) {
	m := quartzTiO2(t)
	for lambda := 400.0; lambda <= 900; lambda += 10 {
		l, err := m.SetLayers(lambdaRef, lambda)
		require.NoError(t, err)
		r, err := grow(l, 10).Transmittance()
		require.NoError(t, err)

		assert.Greaterf(t, r.TE, 0.0, "TE at %g nm", lambda)
		assert.Lessf(t, r.TE, 1.0, "TE at %g nm", lambda)
		assert.Greaterf(t, r.TM, 0.0, "TM at %g nm", lambda)
		assert.Lessf(t, r.TM, 1.0, "TM at %g nm", lambda)
		assert.False(t, r.Anomalous())
	}
}

func TestTransmittance_Idempotent(t *testing.T) {
	m := quartzTiO2(t)
	l, err := m.SetLayers(lambdaRef, 580)
	require.NoError(t, err)
	s := grow(l, 4)

	first, err := s.Transmittance()
	require.NoError(t, err)
	second, err := s.Transmittance()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, second, s.Last())
	assert.Equal(t, 4, s.Pairs(), "Transmittance must not grow the stack")
}

func TestTransmittance_DecreasesAtReference(t *testing.T) {
	// Quarter-wave stack at its design wavelength: every extra pair reflects more.
	want := []float64{0.7070, 0.3855, 0.1814, 0.0798}
	m := quartzTiO2(t)
	l, err := m.SetLayersDefault()
	require.NoError(t, err)
	s := l.FirstLayer()

	prev := math.Inf(1)
	for n := 0; n < 8; n++ {
		if n > 0 {
			s.NextLayers()
		}
		r, err := s.Transmittance()
		require.NoError(t, err)
		if n < len(want) {
			assert.InDeltaf(t, want[n], r.TM, 1e-4, "TM after %d pairs", n)
		}
		assert.Less(t, r.TM, prev)
		prev = r.TM
	}
}

func TestFirstLayer_IndependentStacks(t *testing.T) {
	m := quartzTiO2(t)
	l, err := m.SetLayersDefault()
	require.NoError(t, err)

	a := l.FirstLayer()
	b := l.FirstLayer()
	a.NextLayers()

	assert.Equal(t, 1, a.Pairs())
	assert.Equal(t, 0, b.Pairs())
	am, bm := a.Matrix(), b.Matrix()
	assert.NotEqual(t, am.TE(), bm.TE())
	assert.Same(t, l, b.Layered())
	assert.Same(t, m, l.Mirror())
}

func TestStack_LastBeforeTransmittance(t *testing.T) {
	m := quartzTiO2(t)
	l, err := m.SetLayersDefault()
	require.NoError(t, err)
	assert.Equal(t, mirror.Result{}, l.FirstLayer().Last())
}

func TestStack_Structure(t *testing.T) {
	m := quartzTiO2(t)
	l, err := m.SetLayersDefault()
	require.NoError(t, err)

	s := l.FirstLayer()
	assert.Equal(t, "AHG", s.Structure())
	s.NextLayers()
	s.NextLayers()
	assert.Equal(t, "A(HL)^(2)HG", s.Structure())
}

func TestEvaluate_MatchesManualBuild(t *testing.T) {
	m := quartzTiO2(t)
	l, err := m.SetLayers(lambdaRef, 700)
	require.NoError(t, err)
	manual, err := grow(l, 6).Transmittance()
	require.NoError(t, err)

	got, err := m.Evaluate(lambdaRef, 700, 6)
	require.NoError(t, err)
	assert.Equal(t, manual, got)

	ref, op := l.Wavelengths()
	assert.Equal(t, lambdaRef, ref)
	assert.Equal(t, 700.0, op)
}

func TestEvaluate_Errors(t *testing.T) {
	m := quartzTiO2(t)
	_, err := m.Evaluate(lambdaRef, 700, -1)
	require.ErrorIs(t, err, mirror.ErrNegativePairs)
	_, err = m.Evaluate(lambdaRef, 0, 3)
	require.ErrorIs(t, err, abeles.ErrNonPositiveWavelength)
}

func TestStack_DeterminantStaysOne(t *testing.T) {
	m := quartzTiO2(t)
	l, err := m.SetLayers(lambdaRef, 455)
	require.NoError(t, err)
	acc := grow(l, 30).Matrix()
	for _, pol := range abeles.Polarizations {
		d := acc.Det(pol)
		assert.InDelta(t, 1.0, real(d), tol, pol.String())
		assert.InDelta(t, 0.0, imag(d), tol, pol.String())
	}
}

func TestResult_Accessors(t *testing.T) {
	r := mirror.Result{AmplitudeTE: 0.5i, AmplitudeTM: 0.25, TE: 0.3, TM: 1.02}
	assert.Equal(t, 0.5i, r.Amplitude(abeles.TE))
	assert.Equal(t, complex(0.25, 0), r.Amplitude(abeles.TM))
	assert.Equal(t, 0.3, r.Intensity(abeles.TE))
	assert.Equal(t, 1.02, r.Intensity(abeles.TM))
	assert.Zero(t, r.Intensity(abeles.Polarization(5)))
	assert.True(t, r.Anomalous(), "intensity above one is reported, not rejected")

	r.TM = 0.9
	assert.False(t, r.Anomalous())
}

func TestStack_ZeroValue(t *testing.T) {
	var s mirror.Stack
	require.NotPanics(t, func() { s.NextLayers() })
	assert.Zero(t, s.Pairs())
	_, err := s.Transmittance()
	require.ErrorIs(t, err, mirror.ErrNotStarted)

	var l mirror.Layered
	fromZero := l.FirstLayer()
	fromZero.NextLayers()
	assert.Zero(t, fromZero.Pairs())
	_, err = fromZero.Transmittance()
	assert.ErrorIs(t, err, mirror.ErrNotStarted)
}
