package abeles_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/bragg/abeles"
)

// ExampleLayerMatrix_Compose builds a single quarter-wave TiO2 layer on
// quartz and reads back its TM transmittance intensity.
//
// Scenario:
//
//	ambient (1.0) | H (2.4, λ/4 at 632 nm) | substrate (1.457), θ = 30°
//
// Complexity: O(1).
func ExampleLayerMatrix_Compose() {
	theta := math.Pi / 6
	high := abeles.NewLayerMatrix()
	if err := high.Set(theta, 2.4, 632, 632); err != nil {
		fmt.Println("error:", err)

		return
	}

	stack := abeles.NewLayerMatrix()
	_ = stack.Compose(high)

	t, err := stack.TransmittanceTM(theta, 1.0, 1.457)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	intensity := math.Pow(cmplx.Abs(t), 2) * abeles.Q(theta, 1.457) / abeles.Q(theta, 1.0)
	fmt.Printf("T_TM = %.4f\n", intensity)
	fmt.Printf("det = %.3f\n", real(stack.Det(abeles.TM)))
	// Output:
	// T_TM = 0.7070
	// det = 1.000
}
