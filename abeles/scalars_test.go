package abeles_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bragg/abeles"
	"github.com/stretchr/testify/assert"
)

func TestCosTheta_ScalesAngleByIndex(t *testing.T) {
	// sin(θ/n), not sin(θ)/n.
	theta, n := math.Pi/6, 2.0
	want := math.Sqrt(1 - math.Pow(math.Sin(theta/n), 2))
	assert.InDelta(t, want, abeles.CosTheta(theta, n), 1e-15)
	assert.Equal(t, 1.0, abeles.CosTheta(0, 1.457))
}

func TestBeta_QuarterWave(t *testing.T) {
	assert.InDelta(t, math.Pi/2, abeles.Beta(0, 2.4, 632, 632), 1e-15)
	assert.InDelta(t, math.Pi/4, abeles.Beta(0, 2.4, 632, 1264), 1e-15)
}

func TestAdmittance(t *testing.T) {
	theta, n := 0.5, 1.7
	assert.Equal(t, abeles.P(theta, n), abeles.Admittance(abeles.TE, theta, n))
	assert.Equal(t, abeles.Q(theta, n), abeles.Admittance(abeles.TM, theta, n))
	assert.True(t, math.IsNaN(abeles.Admittance(abeles.Polarization(-1), theta, n)))

	// p·q = cos²θ_n
	c := abeles.CosTheta(theta, n)
	assert.InDelta(t, c*c, abeles.P(theta, n)*abeles.Q(theta, n), 1e-15)
}

func TestPolarization_String(t *testing.T) {
	assert.Equal(t, "TE", abeles.TE.String())
	assert.Equal(t, "TM", abeles.TM.String())
	assert.Equal(t, "Polarization(?)", abeles.Polarization(9).String())
}

func TestMatrix2_MulDet(t *testing.T) {
	a := abeles.Matrix2{1, 2i, 3, 4}
	b := abeles.Matrix2{0, 1, 1, 0}
	assert.Equal(t, abeles.Matrix2{2i, 1, 4, 3}, a.Mul(b))
	assert.Equal(t, a, a.Mul(abeles.Identity()))
	assert.Equal(t, complex(4, -6), a.Det())
}
